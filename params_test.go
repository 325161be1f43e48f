package dota2api

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
)

func applyParams(params ...Param) url.Values {
	values := make(url.Values)
	for _, p := range params {
		p(values)
	}
	return values
}

func TestParams(t *testing.T) {
	t.Parallel()
	cases := []struct {
		param Param
		key   string
		want  string
	}{
		{AccountID(88713362), "account_id", "88713362"},
		{HeroID(15), "hero_id", "15"},
		{LeagueID(600), "league_id", "600"},
		{GameMode(2), "game_mode", "2"},
		{Skill(3), "skill", "3"},
		{DateMin(1379654667), "date_min", "1379654667"},
		{DateMax(1379741067), "date_max", "1379741067"},
		{MinPlayers(10), "min_players", "10"},
		{MatchesRequested(25), "matches_requested", "25"},
		{StartAtMatchID(1000193456), "start_at_match_id", "1000193456"},
		{TournamentGamesOnly(), "tournament_games_only", "true"},
		{TeamID(36), "start_at_team_id", "36"},
		{TeamsRequested(1), "teams_requested", "1"},
		{Language("ru"), "language", "ru"},
		{RawParam("foo", "bar"), "foo", "bar"},
		{RawIntParam("baz", 7), "baz", "7"},
	}
	for _, tc := range cases {
		values := applyParams(tc.param)
		assert.Equal(t, tc.want, values.Get(tc.key), "key %s", tc.key)
		assert.Len(t, values, 1, "key %s should be the only parameter set", tc.key)
	}
}

func TestParams_LaterOverridesEarlier(t *testing.T) {
	t.Parallel()
	values := applyParams(MatchesRequested(25), MatchesRequested(100))
	assert.Equal(t, "100", values.Get("matches_requested"))
}

func TestParams_EncodeDeterministic(t *testing.T) {
	t.Parallel()
	a := applyParams(HeroID(15), AccountID(88713362), MatchesRequested(25)).Encode()
	b := applyParams(MatchesRequested(25), HeroID(15), AccountID(88713362)).Encode()
	assert.Equal(t, a, b)
	assert.Equal(t, "account_id=88713362&hero_id=15&matches_requested=25", a)
}
