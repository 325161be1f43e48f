package dota2api

// Typed shapes for the known payloads, for use with Response.Decode. Fields
// mirror what the upstream service actually returns; anything it adds later
// is still reachable through Response.Get.

type MatchHistory struct {
	Status           int            `json:"status"`
	NumResults       int            `json:"num_results"`
	TotalResults     int            `json:"total_results"`
	ResultsRemaining int            `json:"results_remaining"`
	Matches          []MatchSummary `json:"matches"`
}

type MatchSummary struct {
	MatchID       uint64               `json:"match_id"`
	MatchSeqNum   uint64               `json:"match_seq_num"`
	StartTime     int64                `json:"start_time"`
	LobbyType     int                  `json:"lobby_type"`
	RadiantTeamID int                  `json:"radiant_team_id"`
	DireTeamID    int                  `json:"dire_team_id"`
	Players       []MatchSummaryPlayer `json:"players"`
}

type MatchSummaryPlayer struct {
	AccountID  uint32 `json:"account_id"`
	PlayerSlot int    `json:"player_slot"`
	HeroID     int    `json:"hero_id"`
}

type MatchDetails struct {
	MatchID               uint64   `json:"match_id"`
	MatchSeqNum           uint64   `json:"match_seq_num"`
	RadiantWin            bool     `json:"radiant_win"`
	Duration              int      `json:"duration"`
	StartTime             int64    `json:"start_time"`
	TowerStatusRadiant    int      `json:"tower_status_radiant"`
	TowerStatusDire       int      `json:"tower_status_dire"`
	BarracksStatusRadiant int      `json:"barracks_status_radiant"`
	BarracksStatusDire    int      `json:"barracks_status_dire"`
	Cluster               int      `json:"cluster"`
	FirstBloodTime        int      `json:"first_blood_time"`
	LobbyType             int      `json:"lobby_type"`
	HumanPlayers          int      `json:"human_players"`
	LeagueID              int      `json:"leagueid"`
	GameMode              int      `json:"game_mode"`
	PositiveVotes         int      `json:"positive_votes"`
	NegativeVotes         int      `json:"negative_votes"`
	Players               []Player `json:"players"`
}

type Player struct {
	AccountID       uint32           `json:"account_id"`
	PlayerSlot      int              `json:"player_slot"`
	HeroID          int              `json:"hero_id"`
	Item0           int              `json:"item_0"`
	Item1           int              `json:"item_1"`
	Item2           int              `json:"item_2"`
	Item3           int              `json:"item_3"`
	Item4           int              `json:"item_4"`
	Item5           int              `json:"item_5"`
	Kills           int              `json:"kills"`
	Deaths          int              `json:"deaths"`
	Assists         int              `json:"assists"`
	LeaverStatus    int              `json:"leaver_status"`
	Gold            int              `json:"gold"`
	LastHits        int              `json:"last_hits"`
	Denies          int              `json:"denies"`
	GoldPerMin      int              `json:"gold_per_min"`
	XpPerMin        int              `json:"xp_per_min"`
	GoldSpent       int              `json:"gold_spent"`
	HeroDamage      int              `json:"hero_damage"`
	TowerDamage     int              `json:"tower_damage"`
	HeroHealing     int              `json:"hero_healing"`
	Level           int              `json:"level"`
	AbilityUpgrades []AbilityUpgrade `json:"ability_upgrades"`
}

type AbilityUpgrade struct {
	Ability int `json:"ability"`
	Time    int `json:"time"`
	Level   int `json:"level"`
}

type PlayerSummaries struct {
	Players []PlayerSummary `json:"players"`
}

type PlayerSummary struct {
	SteamID                  string `json:"steamid"`
	CommunityVisibilityState int    `json:"communityvisibilitystate"`
	ProfileState             int    `json:"profilestate"`
	PersonaName              string `json:"personaname"`
	LastLogoff               int64  `json:"lastlogoff"`
	ProfileURL               string `json:"profileurl"`
	Avatar                   string `json:"avatar"`
	AvatarMedium             string `json:"avatarmedium"`
	AvatarFull               string `json:"avatarfull"`
	PersonaState             int    `json:"personastate"`
	RealName                 string `json:"realname"`
	PrimaryClanID            string `json:"primaryclanid"`
	TimeCreated              int64  `json:"timecreated"`
	LocCountryCode           string `json:"loccountrycode"`
}

type LeagueListing struct {
	Leagues []League `json:"leagues"`
}

type League struct {
	Name          string `json:"name"`
	LeagueID      uint32 `json:"leagueid"`
	Description   string `json:"description"`
	TournamentURL string `json:"tournament_url"`
	ItemDef       int    `json:"itemdef"`
}

type LiveLeagueGames struct {
	Status int              `json:"status"`
	Games  []LiveLeagueGame `json:"games"`
}

type LiveLeagueGame struct {
	Players     []LiveLeaguePlayer `json:"players"`
	RadiantTeam LiveLeagueTeam     `json:"radiant_team"`
	DireTeam    LiveLeagueTeam     `json:"dire_team"`
	LobbyID     uint64             `json:"lobby_id"`
	MatchID     uint64             `json:"match_id"`
	Spectators  int                `json:"spectators"`
	LeagueID    uint32             `json:"league_id"`
	GameNumber  int                `json:"game_number"`
	StreamDelay int                `json:"stream_delay_s"`
	Scoreboard  Scoreboard         `json:"scoreboard"`
}

type LiveLeaguePlayer struct {
	AccountID uint32 `json:"account_id"`
	Name      string `json:"name"`
	HeroID    int    `json:"hero_id"`
	Team      int    `json:"team"`
}

type LiveLeagueTeam struct {
	TeamName string `json:"team_name"`
	TeamID   uint64 `json:"team_id"`
	TeamLogo uint64 `json:"team_logo"`
	Complete bool   `json:"complete"`
}

type Scoreboard struct {
	Duration           float64        `json:"duration"`
	RoshanRespawnTimer int            `json:"roshan_respawn_timer"`
	Radiant            ScoreboardSide `json:"radiant"`
	Dire               ScoreboardSide `json:"dire"`
}

type ScoreboardSide struct {
	Score         int               `json:"score"`
	TowerState    int               `json:"tower_state"`
	BarracksState int               `json:"barracks_state"`
	Picks         []ScoreboardHero  `json:"picks"`
	Bans          []ScoreboardHero  `json:"bans"`
	Players       []ScoreboardEntry `json:"players"`
}

type ScoreboardHero struct {
	HeroID int `json:"hero_id"`
}

type ScoreboardEntry struct {
	PlayerSlot   int     `json:"player_slot"`
	AccountID    uint32  `json:"account_id"`
	HeroID       int     `json:"hero_id"`
	Kills        int     `json:"kills"`
	Deaths       int     `json:"death"`
	Assists      int     `json:"assists"`
	LastHits     int     `json:"last_hits"`
	Denies       int     `json:"denies"`
	Gold         int     `json:"gold"`
	Level        int     `json:"level"`
	GoldPerMin   int     `json:"gold_per_min"`
	XpPerMin     int     `json:"xp_per_min"`
	PositionX    float64 `json:"position_x"`
	PositionY    float64 `json:"position_y"`
	NetWorth     int     `json:"net_worth"`
	RespawnTimer int     `json:"respawn_timer"`
}

type TeamInfo struct {
	Status int    `json:"status"`
	Teams  []Team `json:"teams"`
}

type Team struct {
	Name                         string `json:"name"`
	Tag                          string `json:"tag"`
	TimeCreated                  int64  `json:"time_created"`
	Rating                       string `json:"rating"`
	Logo                         uint64 `json:"logo"`
	LogoSponsor                  uint64 `json:"logo_sponsor"`
	CountryCode                  string `json:"country_code"`
	URL                          string `json:"url"`
	GamesPlayedWithCurrentRoster int    `json:"games_played_with_current_roster"`
	Player0AccountID             uint32 `json:"player_0_account_id"`
	Player1AccountID             uint32 `json:"player_1_account_id"`
	Player2AccountID             uint32 `json:"player_2_account_id"`
	Player3AccountID             uint32 `json:"player_3_account_id"`
	Player4AccountID             uint32 `json:"player_4_account_id"`
	AdminAccountID               uint32 `json:"admin_account_id"`
}

type Heroes struct {
	Status int    `json:"status"`
	Count  int    `json:"count"`
	Heroes []Hero `json:"heroes"`
}

type Hero struct {
	ID            int    `json:"id"`
	Name          string `json:"name"`
	LocalizedName string `json:"localized_name"`
}

type GameItems struct {
	Status int    `json:"status"`
	Items  []Item `json:"items"`
}

type Item struct {
	ID            int    `json:"id"`
	Name          string `json:"name"`
	Cost          int    `json:"cost"`
	SecretShop    int    `json:"secret_shop"`
	SideShop      int    `json:"side_shop"`
	Recipe        int    `json:"recipe"`
	LocalizedName string `json:"localized_name"`
}

type PrizePool struct {
	PrizePool int    `json:"prize_pool"`
	LeagueID  uint32 `json:"league_id"`
	Status    int    `json:"status"`
}
