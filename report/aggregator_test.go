package report

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/covid-briefing/schema"
)

var reportDay = time.Date(2021, 7, 14, 0, 0, 0, 0, time.UTC)

func flaggedState(state string, cases, population int64, positivity, vax float64, summary string) schema.RiskFlaggedState {
	return schema.RiskFlaggedState{
		DailyStateStat: schema.DailyStateStat{
			State:            state,
			Date:             reportDay,
			DailyNewCases:    cases,
			PositiveTestRate: positivity,
			Population:       population,
			VaccinationRate:  vax,
		},
		RiskSummary: summary,
	}
}

func TestAggregateEmptyInput(t *testing.T) {
	r, err := Aggregate(nil)
	assert.NoError(t, err)
	assert.Equal(t, EmptyReportMessage, r.FullReport)
	assert.Equal(t, 0, r.TotalStates)
	assert.True(t, r.ReportDate.IsZero())
}

func TestAggregateFormatsBlocks(t *testing.T) {
	r, err := Aggregate([]schema.RiskFlaggedState{
		flaggedState("TX", 400, 30000000, 12, 48.2, "Outbreak Trend | High Positivity"),
		flaggedState("FL", 600, 21500000, 5, 55.1, "Vaccination stalled"),
	})
	assert.NoError(t, err)

	assert.Equal(t, reportDay, r.ReportDate)
	assert.Equal(t, 2, r.TotalStates)

	blocks := strings.Split(r.FullReport, "\n\n")
	assert.Len(t, blocks, 2)

	// round(400 / 30000000 * 1e6) = 13
	assert.Contains(t, blocks[0], "1. TX (Pop: 30.0M)")
	assert.Contains(t, blocks[0], "New Cases: 400 (13 per million)")
	assert.Contains(t, blocks[0], "Positivity: 12.0% | Vaccinated: 48.2%")
	assert.Contains(t, blocks[0], "Flag: Outbreak Trend | High Positivity")

	// round(600 / 21500000 * 1e6) = 28
	assert.Contains(t, blocks[1], "2. FL (Pop: 21.5M)")
	assert.Contains(t, blocks[1], "New Cases: 600 (28 per million)")
	assert.Contains(t, blocks[1], "Flag: Vaccination stalled")
}

func TestAggregateIsDeterministic(t *testing.T) {
	flagged := []schema.RiskFlaggedState{
		flaggedState("TX", 400, 30000000, 12, 48.2, "Outbreak Trend"),
		flaggedState("FL", 600, 21500000, 5, 55.1, "Vaccination stalled"),
	}

	first, err := Aggregate(flagged)
	assert.NoError(t, err)
	second, err := Aggregate(flagged)
	assert.NoError(t, err)

	assert.Equal(t, first.FullReport, second.FullReport)
}

func TestAggregateRejectsZeroPopulation(t *testing.T) {
	_, err := Aggregate([]schema.RiskFlaggedState{
		flaggedState("PR", 100, 0, 12, 40, "High Positivity"),
	})
	assert.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidPopulation))
	assert.Contains(t, err.Error(), "PR")
}
