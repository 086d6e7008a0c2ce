package fixture

// Fixture is one match row of a round table. Date is the round caption and
// scores are empty for matches that have not been played.
type Fixture struct {
	Date      string `json:"date"`
	HomeTeam  string `json:"home_team" validate:"required"`
	AwayTeam  string `json:"away_team" validate:"required"`
	HomeScore string `json:"home_score"`
	AwayScore string `json:"away_score"`
}
