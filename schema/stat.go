package schema

import "time"

// DailyStateStat is one row of the warehouse table `daily_state_stats`:
// per-state, per-day COVID-19 statistics. `vaccination_rate` is cumulative
// and non-decreasing in practice, though the warehouse does not enforce it.
type DailyStateStat struct {
	State            string    `gorm:"column:state" json:"state"`
	Date             time.Time `gorm:"column:date" json:"date"`
	DailyNewCases    int64     `gorm:"column:daily_new_cases" json:"daily_new_cases"`
	PositiveTestRate float64   `gorm:"column:positive_test_rate" json:"positive_test_rate"`
	Population       int64     `gorm:"column:population" json:"population"`
	VaccinationRate  float64   `gorm:"column:vaccination_rate" json:"vaccination_rate"`
}

// TableName - the warehouse table this schema maps to
func (DailyStateStat) TableName() string {
	return "daily_state_stats"
}

// RiskFlaggedState is a warehouse row for the target date that matched at
// least one risk rule. RiskSummary is never empty: a row with no matched
// rule is not emitted at all.
type RiskFlaggedState struct {
	DailyStateStat
	RiskSummary string `json:"risk_summary"`
}
