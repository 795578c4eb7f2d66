package risk

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/covid-briefing/schema"
)

var day0 = time.Date(2021, 7, 14, 0, 0, 0, 0, time.UTC)

// statsFor builds one state's history ending at day0. cases is ordered most
// recent first; vax is the matching cumulative vaccination rates.
func statsFor(state string, cases []int64, vax []float64, positivity float64, population int64) []schema.DailyStateStat {
	stats := make([]schema.DailyStateStat, 0, len(cases))
	for i := len(cases) - 1; i >= 0; i-- {
		stats = append(stats, schema.DailyStateStat{
			State:            state,
			Date:             day0.AddDate(0, 0, -i),
			DailyNewCases:    cases[i],
			PositiveTestRate: positivity,
			Population:       population,
			VaccinationRate:  vax[i],
		})
	}
	return stats
}

func flatVax(n int, rate float64) []float64 {
	vax := make([]float64, n)
	for i := range vax {
		vax[i] = rate
	}
	return vax
}

func TestConsecutiveRiseNeedsFullHistory(t *testing.T) {
	// two prior days only: the 3-day lag is absent, so the rule must be
	// false even though every present step is rising
	stats := statsFor("NV", []int64{400, 300, 200}, flatVax(3, 60), 2, 3000000)

	flagged := SelectAtRisk(stats, day0)
	assert.Len(t, flagged, 0, "partial history must not trigger consecutive rise")
}

func TestHighPositivityMatchesWithoutHistory(t *testing.T) {
	stats := statsFor("RI", []int64{40}, flatVax(1, 60), 11, 1000000)

	flagged := SelectAtRisk(stats, day0)
	assert.Len(t, flagged, 1)
	assert.Equal(t, ReasonHighPositivity, flagged[0].RiskSummary)
}

func TestStrictInequalityOnTies(t *testing.T) {
	// today equals yesterday: neither consecutive rise nor the rising-case
	// clause of vaccine stall may fire
	stats := statsFor("OH", []int64{600, 600, 500, 400}, flatVax(4, 50), 2, 11000000)

	flagged := SelectAtRisk(stats, day0)
	assert.Len(t, flagged, 0)
}

func TestEmittedRowsAlwaysCarryASummary(t *testing.T) {
	stats := append(
		statsFor("WA", []int64{100, 200, 300, 400}, flatVax(4, 70), 3, 7600000), // declining, no flag
		statsFor("TX", []int64{400, 300, 250, 200}, flatVax(4, 48), 12, 30000000)...,
	)

	flagged := SelectAtRisk(stats, day0)
	assert.Len(t, flagged, 1)
	for _, f := range flagged {
		assert.NotEmpty(t, f.RiskSummary)
	}
}

func TestOutbreakAndPositivityScenario(t *testing.T) {
	stats := statsFor("TX", []int64{400, 300, 250, 200}, flatVax(4, 48), 12, 30000000)

	flagged := SelectAtRisk(stats, day0)
	assert.Len(t, flagged, 1)

	summary := flagged[0].RiskSummary
	assert.Contains(t, summary, "Outbreak Trend")
	assert.Contains(t, summary, "High Positivity")
	assert.NotContains(t, summary, "Vaccination stalled", "cases not above 500")
	assert.Equal(t, ReasonConsecutiveRise+" | "+ReasonHighPositivity, summary)
}

func TestVaccineStallScenario(t *testing.T) {
	stats := statsFor("FL", []int64{600, 550}, []float64{55.05, 55.0}, 5, 21500000)

	flagged := SelectAtRisk(stats, day0)
	assert.Len(t, flagged, 1)
	assert.Equal(t, ReasonVaccineStall, flagged[0].RiskSummary)
	assert.False(t, strings.Contains(flagged[0].RiskSummary, "|"))
}

func TestOnlyTargetDateIsEmitted(t *testing.T) {
	// yesterday's row also satisfies high positivity but must not appear
	stats := statsFor("AZ", []int64{700, 650}, flatVax(2, 40), 14, 7300000)

	flagged := SelectAtRisk(stats, day0)
	assert.Len(t, flagged, 1)
	assert.Equal(t, day0, flagged[0].Date)
}

func TestResultPreservesStateOrder(t *testing.T) {
	stats := append(
		statsFor("AZ", []int64{100}, flatVax(1, 40), 14, 7300000),
		statsFor("FL", []int64{100}, flatVax(1, 40), 14, 21500000)...,
	)

	flagged := SelectAtRisk(stats, day0)
	assert.Len(t, flagged, 2)
	assert.Equal(t, "AZ", flagged[0].State)
	assert.Equal(t, "FL", flagged[1].State)
}
