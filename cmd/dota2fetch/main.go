// dota2fetch pulls data from the Dota 2 Web API and archives it locally.
//
// Subcommands:
//
//	history -account <id> [-limit n]   fetch recent matches and their details
//	match -id <match id>               fetch one match
//	heroes                             refresh the hero reference data
//	watch [-league <id>]               poll live league games and log scores
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/golobby/config/v3"
	"github.com/golobby/config/v3/pkg/feeder"

	"github.com/go-dota/dota2api"
	"github.com/go-dota/dota2api/archive"
)

type Config struct {
	APIKey      string `env:"D2_API_KEY"`
	Language    string `env:"D2_LANGUAGE"`
	DBPath      string `env:"DB_PATH"`
	LogLevel    string `env:"LOG_LEVEL"`
	PollSeconds int    `env:"POLL_SECONDS"`
}

func (c Config) logLevel() slog.Leveler {
	switch c.LogLevel {
	case "error":
		return slog.LevelError
	case "warning":
		return slog.LevelWarn
	case "debug":
		return slog.LevelDebug
	}
	return slog.LevelInfo
}

func loadConfig() (Config, error) {
	cfg := Config{
		Language:    "en_us",
		DBPath:      "dota2.db",
		PollSeconds: 30,
	}
	c := config.New()
	if _, err := os.Stat(".env"); err == nil {
		c.AddFeeder(feeder.DotEnv{Path: ".env"})
	}
	c.AddFeeder(feeder.Env{})
	c.AddStruct(&cfg)
	if err := c.Feed(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func main() {
	if err := run(os.Args[1:]); err != nil {
		slog.Error("dota2fetch failed", slog.String("stack", err.Error()))
		os.Exit(1)
	}
}

func run(args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: cfg.logLevel(),
	})))

	client, err := dota2api.New(cfg.APIKey)
	if err != nil {
		return err
	}
	client.Language = cfg.Language
	client.HTTPClient.Timeout = 10 * time.Second

	if len(args) == 0 {
		return fmt.Errorf("usage: dota2fetch <history|match|heroes|watch> [flags]")
	}

	switch args[0] {
	case "history":
		fs := flag.NewFlagSet("history", flag.ExitOnError)
		account := fs.Uint("account", 0, "32-bit account id")
		limit := fs.Int("limit", 25, "matches to fetch")
		fs.Parse(args[1:])
		store, err := openStore(cfg)
		if err != nil {
			return err
		}
		return fetchHistory(client, store, uint32(*account), *limit)
	case "match":
		fs := flag.NewFlagSet("match", flag.ExitOnError)
		id := fs.Uint64("id", 0, "match id")
		fs.Parse(args[1:])
		store, err := openStore(cfg)
		if err != nil {
			return err
		}
		return fetchMatch(client, store, *id)
	case "heroes":
		store, err := openStore(cfg)
		if err != nil {
			return err
		}
		return fetchHeroes(client, store)
	case "watch":
		fs := flag.NewFlagSet("watch", flag.ExitOnError)
		league := fs.Int("league", 0, "league id to watch")
		fs.Parse(args[1:])
		return watchLiveGames(client, *league, cfg.PollSeconds)
	}
	return fmt.Errorf("unknown subcommand %q", args[0])
}

func openStore(cfg Config) (*archive.SqliteStore, error) {
	store, err := archive.NewSqliteStore(cfg.DBPath)
	if err != nil {
		return nil, err
	}
	if err := store.ApplyMigrations(); err != nil {
		return nil, err
	}
	return store, nil
}

func fetchHistory(client *dota2api.Client, store archive.Store, account uint32, limit int) error {
	params := []dota2api.Param{dota2api.MatchesRequested(limit)}
	if account != 0 {
		params = append(params, dota2api.AccountID(account))
	}
	resp, err := client.GetMatchHistory(params...)
	if err != nil {
		return err
	}
	var hist dota2api.MatchHistory
	if err := resp.Decode(&hist); err != nil {
		return err
	}
	slog.Info("Fetched match history",
		slog.Int("num_results", hist.NumResults),
		slog.Int("total_results", hist.TotalResults),
	)
	for _, m := range hist.Matches {
		if err := fetchMatch(client, store, m.MatchID); err != nil {
			return err
		}
		// Keep well under the upstream rate limit.
		time.Sleep(time.Second)
	}
	return nil
}

func fetchMatch(client *dota2api.Client, store archive.Store, matchID uint64) error {
	resp, err := client.GetMatchDetails(matchID)
	if err != nil {
		return err
	}
	var details dota2api.MatchDetails
	if err := resp.Decode(&details); err != nil {
		return err
	}
	if err := store.SaveMatch(details); err != nil {
		return err
	}
	slog.Info("Archived match",
		slog.Uint64("match_id", details.MatchID),
		slog.Bool("radiant_win", details.RadiantWin),
		slog.Int("duration", details.Duration),
	)
	return nil
}

func fetchHeroes(client *dota2api.Client, store archive.Store) error {
	resp, err := client.GetHeroes()
	if err != nil {
		return err
	}
	var heroes dota2api.Heroes
	if err := resp.Decode(&heroes); err != nil {
		return err
	}
	if err := store.SaveHeroes(heroes.Heroes); err != nil {
		return err
	}
	slog.Info("Refreshed hero reference data", slog.Int("count", heroes.Count))
	return nil
}

func watchLiveGames(client *dota2api.Client, league int, pollSeconds int) error {
	s := gocron.NewScheduler(time.UTC)

	var params []dota2api.Param
	if league != 0 {
		params = append(params, dota2api.LeagueID(league))
	}

	if _, err := s.Every(pollSeconds).Seconds().Do(func() {
		pollLiveGames(client, params)
	}); err != nil {
		return err
	}

	slog.Info("Watching live league games", slog.Int("poll_seconds", pollSeconds))
	s.StartBlocking()
	return nil
}

func pollLiveGames(client *dota2api.Client, params []dota2api.Param) {
	resp, err := client.GetLiveLeagueGames(params...)
	if err != nil {
		slog.Error("Failed to fetch live league games", slog.String("stack", err.Error()))
		return
	}
	var live dota2api.LiveLeagueGames
	if err := resp.Decode(&live); err != nil {
		slog.Error("Failed to decode live league games", slog.String("stack", err.Error()))
		return
	}
	for _, game := range live.Games {
		slog.Info("Live game",
			slog.Uint64("match_id", game.MatchID),
			slog.String("radiant", game.RadiantTeam.TeamName),
			slog.Int("radiant_score", game.Scoreboard.Radiant.Score),
			slog.String("dire", game.DireTeam.TeamName),
			slog.Int("dire_score", game.Scoreboard.Dire.Score),
			slog.Int("spectators", game.Spectators),
		)
	}
}
