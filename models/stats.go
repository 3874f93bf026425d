package models

// WeeklyTeamStats - агрегат событий команды за ISO-неделю.
// Read-model, считается на лету и кешируется (см. cache.WeeklyStatsCache).
type WeeklyTeamStats struct {
	TeamID    int `json:"team_id"`
	Year      int `json:"year"`
	Week      int `json:"week"`
	Matches   int `json:"matches"`
	Goals     int `json:"goals"`
	Shots     int `json:"shots"`
	Turnovers int `json:"turnovers"`
	Sanctions int `json:"sanctions"`

	ShotsByZone map[string]int `json:"shots_by_zone"`
}
