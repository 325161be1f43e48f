package dota2api

// endpoint describes one operation of the Dota 2 Web API: the path it lives at
// on api.steampowered.com and the key of the JSON envelope its payload arrives
// under. Match and econ endpoints answer inside "result", the Steam user
// endpoints inside "response". The table is fixed at startup and never changes.
type endpoint struct {
	name     string
	path     string
	envelope string
}

var (
	epMatchHistory        = endpoint{"GetMatchHistory", "/IDOTA2Match_570/GetMatchHistory/V001/", "result"}
	epMatchDetails        = endpoint{"GetMatchDetails", "/IDOTA2Match_570/GetMatchDetails/v001/", "result"}
	epPlayerSummaries     = endpoint{"GetPlayerSummaries", "/ISteamUser/GetPlayerSummaries/v0002/", "response"}
	epLeagueListing       = endpoint{"GetLeagueListing", "/IDOTA2Match_570/GetLeagueListing/v0001/", "result"}
	epLiveLeagueGames     = endpoint{"GetLiveLeagueGames", "/IDOTA2Match_570/GetLiveLeagueGames/v0001/", "result"}
	epTeamInfoByTeamID    = endpoint{"GetTeamInfoByTeamID", "/IDOTA2Match_570/GetTeamInfoByTeamID/v001/", "result"}
	epHeroes              = endpoint{"GetHeroes", "/IEconDOTA2_570/GetHeroes/v0001/", "result"}
	epGameItems           = endpoint{"GetGameItems", "/IEconDOTA2_570/GetGameItems/v0001/", "result"}
	epTournamentPrizePool = endpoint{"GetTournamentPrizePool", "/IEconDOTA2_570/GetTournamentPrizePool/v1/", "result"}
)
