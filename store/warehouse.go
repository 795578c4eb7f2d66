package store

import (
	"time"

	"github.com/bitmark-inc/covid-briefing/schema"
)

// ListDailyStateStats returns the warehouse rows dated between the cutoff
// and the target date inclusive, ordered by state then date. The cutoff
// only bounds how much history the lag computation sees; the selector
// still decides which rows are at risk.
func (s *BriefingStore) ListDailyStateStats(cutoff, target time.Time) ([]schema.DailyStateStat, error) {
	stats := []schema.DailyStateStat{}

	if err := s.ormDB.Raw(
		`SELECT state, date, daily_new_cases, positive_test_rate, population, vaccination_rate
		FROM daily_state_stats
		WHERE date >= ? AND date <= ?
		ORDER BY state, date;`,
		cutoff, target,
	).Scan(&stats).Error; err != nil {
		return nil, err
	}

	return stats, nil
}
