package usecase

import (
	"github.com/go-playground/validator/v10"
	"github.com/riskibarqy/league-scraper/internal/domain/fixture"
	"github.com/riskibarqy/league-scraper/internal/domain/leaguestanding"
	"github.com/riskibarqy/league-scraper/internal/platform/dom"
)

const (
	StandingsRowSelector = "mat-card .standings-wrapper table tbody tr"
	MatchTableSelector   = "mat-card-content table.extensive"

	matchCaptionSelector   = "caption"
	matchRowSelector       = "tbody tr"
	matchHomeTeamSelector  = "td.team.home span"
	matchAwayTeamSelector  = "td.team.away span"
	matchHomeScoreSelector = "td.result .score span:nth-child(1)"
	matchAwayScoreSelector = "td.result .score span:nth-child(2)"
)

// Standings columns, starting at the second cell of the row.
var standingColumns = [...]string{
	"td:nth-child(2)",
	"td:nth-child(3)",
	"td:nth-child(4)",
	"td:nth-child(5)",
	"td:nth-child(6)",
	"td:nth-child(7)",
	"td:nth-child(8)",
	"td:nth-child(9)",
	"td:nth-child(10)",
}

var recordValidator = validator.New()

// isValidRecord applies the validate tags of the domain records: rows missing
// a team name are dropped.
func isValidRecord(record any) bool {
	return recordValidator.Struct(record) == nil
}

// BuildStandings maps standings rows to records, keeping page order.
func BuildStandings(rows []dom.Node) []leaguestanding.Standing {
	out := make([]leaguestanding.Standing, 0, len(rows))
	for _, row := range rows {
		var cells [len(standingColumns)]string
		for i, selector := range standingColumns {
			cells[i] = dom.Text(row.QueryFirst(selector))
		}

		item := leaguestanding.Standing{
			Rank:         cells[0],
			TeamName:     cells[1],
			Points:       cells[2],
			GamesPlayed:  cells[3],
			Wins:         cells[4],
			Draws:        cells[5],
			Losses:       cells[6],
			GoalsFor:     cells[7],
			GoalsAgainst: cells[8],
		}
		if !isValidRecord(item) {
			continue
		}
		out = append(out, item)
	}
	return out
}

// BuildFixtures flattens round tables into one sequence: table order, then row order.
func BuildFixtures(tables []dom.Node) []fixture.Fixture {
	out := make([]fixture.Fixture, 0)
	for _, table := range tables {
		out = appendRoundFixtures(out, table)
	}
	return out
}

func appendRoundFixtures(out []fixture.Fixture, table dom.Node) []fixture.Fixture {
	date := dom.Text(table.QueryFirst(matchCaptionSelector))
	for _, row := range table.QueryAll(matchRowSelector) {
		item := fixture.Fixture{
			Date:      date,
			HomeTeam:  dom.Text(row.QueryFirst(matchHomeTeamSelector)),
			AwayTeam:  dom.Text(row.QueryFirst(matchAwayTeamSelector)),
			HomeScore: dom.Text(row.QueryFirst(matchHomeScoreSelector)),
			AwayScore: dom.Text(row.QueryFirst(matchAwayScoreSelector)),
		}
		if !isValidRecord(item) {
			continue
		}
		out = append(out, item)
	}
	return out
}
