package dota2api

import (
	"net/url"
	"strconv"
)

// Param is an optional query parameter for an endpoint that accepts filters.
// Params are applied in order, so a later Param overrides an earlier one for
// the same key.
type Param func(url.Values)

// RawParam sets an arbitrary query parameter verbatim.
func RawParam(key, value string) Param {
	return func(values url.Values) {
		values.Set(key, value)
	}
}

// RawIntParam sets an arbitrary integer query parameter.
func RawIntParam(key string, value int) Param {
	return RawParam(key, strconv.Itoa(value))
}

// AccountID limits match history to games featuring the given 32-bit account id.
func AccountID(id uint32) Param {
	return RawParam("account_id", strconv.FormatUint(uint64(id), 10))
}

// HeroID limits match history to games featuring the given hero.
func HeroID(id int) Param {
	return RawIntParam("hero_id", id)
}

// LeagueID limits results to the given league. Accepted by GetMatchHistory and
// GetLiveLeagueGames.
func LeagueID(id int) Param {
	return RawIntParam("league_id", id)
}

// GameMode limits match history to the given game mode.
func GameMode(mode int) Param {
	return RawIntParam("game_mode", mode)
}

// Skill limits match history to the given skill bracket.
func Skill(bracket int) Param {
	return RawIntParam("skill", bracket)
}

// DateMin limits match history to games starting at or after the given unix
// timestamp.
func DateMin(ts int64) Param {
	return RawParam("date_min", strconv.FormatInt(ts, 10))
}

// DateMax limits match history to games starting at or before the given unix
// timestamp.
func DateMax(ts int64) Param {
	return RawParam("date_max", strconv.FormatInt(ts, 10))
}

// MinPlayers limits match history to games with at least n human players.
func MinPlayers(n int) Param {
	return RawIntParam("min_players", n)
}

// MatchesRequested caps the number of matches returned per page. The upstream
// default and maximum is 100.
func MatchesRequested(n int) Param {
	return RawIntParam("matches_requested", n)
}

// StartAtMatchID starts match history at matches equal to or older than the
// given match id.
func StartAtMatchID(id uint64) Param {
	return RawParam("start_at_match_id", strconv.FormatUint(id, 10))
}

// TournamentGamesOnly limits match history to tournament games.
func TournamentGamesOnly() Param {
	return RawParam("tournament_games_only", "true")
}

// TeamID starts the team listing at the given team id. The upstream parameter
// is named start_at_team_id.
func TeamID(id uint64) Param {
	return RawParam("start_at_team_id", strconv.FormatUint(id, 10))
}

// TeamsRequested caps the number of teams returned by GetTeamInfoByTeamID.
func TeamsRequested(n int) Param {
	return RawIntParam("teams_requested", n)
}

// Language overrides the client-level language for a single call.
func Language(code string) Param {
	return RawParam("language", code)
}
