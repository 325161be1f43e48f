// Package dota2api is a client for Valve's Dota 2 public Web API. Every call
// is a single synchronous GET with no retries; failures surface as typed
// errors so callers can branch on what went wrong.
package dota2api

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"strings"
)

const (
	// EnvAPIKey is the environment variable NewFromEnv reads the credential from.
	EnvAPIKey = "D2_API_KEY"

	defaultBaseURL   = "https://api.steampowered.com"
	defaultLanguage  = "en_us"
	defaultUserAgent = "go-dota2api/1.0 (github.com/go-dota/dota2api)"

	// steamID64Base is the offset between 32-bit account ids and 64-bit
	// steam ids.
	steamID64Base = 76561197960265728
)

// Client talks to the Dota 2 Web API. Construct one with New or NewFromEnv;
// the exported fields may be adjusted before the first call and must not be
// changed afterwards. The credential itself is fixed at construction.
type Client struct {
	BaseURL    string
	Language   string
	UserAgent  string
	HTTPClient *http.Client

	apiKey string
}

// New returns a client using the given API key. An empty key fails with
// *MissingCredentialError. The default HTTP client applies no timeout; set
// HTTPClient.Timeout or swap in your own client to bound calls.
func New(apiKey string) (*Client, error) {
	if apiKey == "" {
		return nil, &MissingCredentialError{EnvVar: EnvAPIKey}
	}
	return &Client{
		BaseURL:    defaultBaseURL,
		Language:   defaultLanguage,
		UserAgent:  defaultUserAgent,
		HTTPClient: &http.Client{},
		apiKey:     apiKey,
	}, nil
}

// NewFromEnv reads the credential from D2_API_KEY once and constructs a
// client with it. It is meant for bootstrap code; anything embedding a client
// should call New with an explicit key instead.
func NewFromEnv() (*Client, error) {
	return New(os.Getenv(EnvAPIKey))
}

// GetMatchHistory returns the most recent matches, filtered by the given
// params (AccountID, HeroID, LeagueID, Skill, DateMin, DateMax, MinPlayers,
// MatchesRequested, StartAtMatchID, GameMode, TournamentGamesOnly).
func (c *Client) GetMatchHistory(opts ...Param) (*Response, error) {
	return c.get(epMatchHistory, opts...)
}

// GetMatchDetails returns the details of a single match.
func (c *Client) GetMatchDetails(matchID uint64) (*Response, error) {
	if matchID == 0 {
		return nil, &MissingParameterError{Endpoint: epMatchDetails.name, Param: "match_id"}
	}
	return c.get(epMatchDetails, RawParam("match_id", strconv.FormatUint(matchID, 10)))
}

// GetPlayerSummaries returns profile summaries for the given steam ids.
// 32-bit account ids are promoted to 64-bit steam ids before the call, the
// same conversion the upstream service would apply.
func (c *Client) GetPlayerSummaries(steamIDs ...uint64) (*Response, error) {
	if len(steamIDs) == 0 {
		return nil, &MissingParameterError{Endpoint: epPlayerSummaries.name, Param: "steamids"}
	}
	ids := make([]string, len(steamIDs))
	for i, id := range steamIDs {
		ids[i] = strconv.FormatUint(SteamID64(id), 10)
	}
	return c.get(epPlayerSummaries, RawParam("steamids", strings.Join(ids, ",")))
}

// GetLeagueListing returns all ticketed leagues.
func (c *Client) GetLeagueListing() (*Response, error) {
	return c.get(epLeagueListing)
}

// GetLiveLeagueGames returns ticketed games in progress, optionally filtered
// with LeagueID.
func (c *Client) GetLiveLeagueGames(opts ...Param) (*Response, error) {
	return c.get(epLiveLeagueGames, opts...)
}

// GetTeamInfoByTeamID returns registered teams, optionally filtered with
// TeamID and TeamsRequested.
func (c *Client) GetTeamInfoByTeamID(opts ...Param) (*Response, error) {
	return c.get(epTeamInfoByTeamID, opts...)
}

// GetHeroes returns the hero reference data. Names are localised according to
// Client.Language unless overridden with Language.
func (c *Client) GetHeroes(opts ...Param) (*Response, error) {
	return c.get(epHeroes, opts...)
}

// GetGameItems returns the item reference data. Names are localised according
// to Client.Language unless overridden with Language.
func (c *Client) GetGameItems(opts ...Param) (*Response, error) {
	return c.get(epGameItems, opts...)
}

// GetTournamentPrizePool returns the community-funded prize pool of a league.
func (c *Client) GetTournamentPrizePool(leagueID uint32) (*Response, error) {
	return c.get(epTournamentPrizePool, RawParam("leagueid", strconv.FormatUint(uint64(leagueID), 10)))
}

// SteamID64 promotes a 32-bit account id to its 64-bit steam id. Ids that are
// already 64-bit are returned unchanged.
func SteamID64(id uint64) uint64 {
	if id < steamID64Base {
		return id + steamID64Base
	}
	return id
}

// buildURL assembles the request URL. url.Values.Encode sorts keys, so the
// same inputs always produce the same query string.
func (c *Client) buildURL(ep endpoint, opts ...Param) string {
	q := make(url.Values)
	for _, opt := range opts {
		opt(q)
	}
	q.Set("key", c.apiKey)
	if q.Get("language") == "" {
		q.Set("language", c.Language)
	}
	q.Set("format", "json")
	return c.BaseURL + ep.path + "?" + q.Encode()
}

func (c *Client) get(ep endpoint, opts ...Param) (*Response, error) {
	req, err := http.NewRequest("GET", c.buildURL(ep, opts...), nil)
	if err != nil {
		// The parse error would echo the URL, key included.
		return nil, &TransportError{Endpoint: ep.name, Err: errors.New("invalid request URL")}
	}
	req.Header = http.Header{
		"Accept":     []string{"application/json"},
		"User-Agent": []string{c.UserAgent},
	}
	res, err := c.HTTPClient.Do(req)
	if err != nil {
		// url.Error repeats the full request URL, key included. Keep only
		// the cause.
		var uerr *url.Error
		if errors.As(err, &uerr) {
			err = uerr.Err
		}
		return nil, &TransportError{Endpoint: ep.name, Err: err}
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return nil, &APIError{
			Endpoint:   ep.name,
			HTTPStatus: res.StatusCode,
			Detail:     http.StatusText(res.StatusCode),
		}
	}

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, &TransportError{Endpoint: ep.name, Err: err}
	}

	var doc map[string]any
	if err := json.Unmarshal(body, &doc); err != nil {
		return nil, &TransportError{Endpoint: ep.name, Err: fmt.Errorf("decoding response body: %w", err)}
	}

	payload, ok := doc[ep.envelope].(map[string]any)
	if !ok {
		return nil, &APIError{
			Endpoint:   ep.name,
			HTTPStatus: res.StatusCode,
			Detail:     fmt.Sprintf("response has no %q envelope", ep.envelope),
		}
	}

	// Some endpoints report failure inside a 200 response: GetMatchDetails
	// sets an "error" field, the others a "status" other than 1 (match
	// endpoints) or 200 (econ and live game endpoints).
	if msg, ok := payload["error"].(string); ok {
		return nil, &APIError{Endpoint: ep.name, HTTPStatus: res.StatusCode, Detail: msg}
	}
	if raw, ok := payload["status"].(float64); ok {
		status := int(raw)
		if status != 1 && status != 200 {
			detail, _ := payload["statusDetail"].(string)
			return nil, &APIError{
				Endpoint:   ep.name,
				HTTPStatus: res.StatusCode,
				Status:     status,
				Detail:     detail,
			}
		}
	}

	return newResponse(payload), nil
}
