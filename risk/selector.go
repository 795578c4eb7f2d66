package risk

import (
	"sort"
	"strings"
	"time"

	"github.com/bitmark-inc/covid-briefing/schema"
)

const (
	highPositivityThreshold = 10.0
	vaccineStallGrowthPct   = 0.1
	vaccineStallMinCases    = 500
)

// Human-readable sentences concatenated into risk_summary, always in the
// order consecutive rise, high positivity, vaccine stall.
const (
	ReasonConsecutiveRise = "Outbreak Trend: new cases rose for 3 consecutive days."
	ReasonHighPositivity  = "High Positivity: test positivity rate is above 10%."
	ReasonVaccineStall    = "Vaccination stalled while daily cases are rising."

	reasonSeparator = " | "
)

// stateHistory is one state's rows ordered by date ascending.
type stateHistory struct {
	state string
	rows  []schema.DailyStateStat
}

// SelectAtRisk evaluates the three risk rules over the given warehouse rows
// and returns the flagged rows for exactly the target date.
//
// Rows are grouped per state and ordered by date, so each rule can look up
// 1-, 2- and 3-day lag values by index. A lag that falls before a state's
// first recorded row is absent, and any rule that depends on an absent lag
// evaluates to false. States whose rows for the target date match no rule
// are dropped entirely.
//
// The result preserves the input's state order (the warehouse query orders
// by state, date), which is the order the report presents to readers.
func SelectAtRisk(history []schema.DailyStateStat, target time.Time) []schema.RiskFlaggedState {
	flagged := []schema.RiskFlaggedState{}

	for _, h := range groupByState(history) {
		for i, row := range h.rows {
			if !sameDay(row.Date, target) {
				continue
			}

			summary := evaluate(h.rows, i)
			if summary == "" {
				continue
			}

			flagged = append(flagged, schema.RiskFlaggedState{
				DailyStateStat: row,
				RiskSummary:    summary,
			})
		}
	}

	return flagged
}

// evaluate runs the three rules for the row at index i of a state's ordered
// history and returns the joined risk_summary, or "" when no rule matched.
func evaluate(rows []schema.DailyStateStat, i int) string {
	reasons := []string{}

	if consecutiveRise(rows, i) {
		reasons = append(reasons, ReasonConsecutiveRise)
	}
	if rows[i].PositiveTestRate > highPositivityThreshold {
		reasons = append(reasons, ReasonHighPositivity)
	}
	if vaccineStall(rows, i) {
		reasons = append(reasons, ReasonVaccineStall)
	}

	return strings.Join(reasons, reasonSeparator)
}

// consecutiveRise requires all three case lags to be present and the case
// counts to be strictly decreasing with distance: today > 1 day ago >
// 2 days ago > 3 days ago. A tie on any step does not count as rising.
func consecutiveRise(rows []schema.DailyStateStat, i int) bool {
	if i < 3 {
		return false
	}

	return rows[i].DailyNewCases > rows[i-1].DailyNewCases &&
		rows[i-1].DailyNewCases > rows[i-2].DailyNewCases &&
		rows[i-2].DailyNewCases > rows[i-3].DailyNewCases
}

// vaccineStall matches when the daily vaccination growth dropped below
// 0.1 percentage point while cases are both rising day over day and above
// the 500-case floor. Both lags come from the previous day's row, so a
// state's first recorded day can never stall.
func vaccineStall(rows []schema.DailyStateStat, i int) bool {
	if i < 1 {
		return false
	}

	growth := rows[i].VaccinationRate - rows[i-1].VaccinationRate

	return growth < vaccineStallGrowthPct &&
		rows[i].DailyNewCases > rows[i-1].DailyNewCases &&
		rows[i].DailyNewCases > vaccineStallMinCases
}

// groupByState splits rows into per-state sequences ordered by date,
// keeping states in their first-appearance order.
func groupByState(history []schema.DailyStateStat) []stateHistory {
	order := []string{}
	byState := map[string][]schema.DailyStateStat{}

	for _, row := range history {
		if _, ok := byState[row.State]; !ok {
			order = append(order, row.State)
		}
		byState[row.State] = append(byState[row.State], row)
	}

	grouped := make([]stateHistory, 0, len(order))
	for _, state := range order {
		rows := byState[state]
		sort.SliceStable(rows, func(i, j int) bool {
			return rows[i].Date.Before(rows[j].Date)
		})
		grouped = append(grouped, stateHistory{state: state, rows: rows})
	}

	return grouped
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
