package leaguestanding

// Standing is one row of the league table as rendered on the page.
// Numeric-looking columns are kept as the page text.
type Standing struct {
	Rank         string `json:"rank"`
	TeamName     string `json:"team_name" validate:"required"`
	Points       string `json:"points"`
	GamesPlayed  string `json:"games_played"`
	Wins         string `json:"wins"`
	Draws        string `json:"draws"`
	Losses       string `json:"losses"`
	GoalsFor     string `json:"goals_for"`
	GoalsAgainst string `json:"goals_against"`
}
