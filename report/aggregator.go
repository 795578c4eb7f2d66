package report

import (
	"fmt"
	"math"
	"strings"

	"github.com/bitmark-inc/covid-briefing/schema"
)

// EmptyReportMessage is the full report text when no state was flagged.
const EmptyReportMessage = "No critical risks detected today."

var ErrInvalidPopulation = fmt.Errorf("state population is missing or zero")

// Aggregate reshapes the flagged states into one report, preserving input
// order. An empty input is not an error: it yields the sentinel report with
// no date and a zero state count. A zero or negative population is a data
// quality failure and aborts the run rather than emitting a bogus
// cases-per-million figure.
func Aggregate(flagged []schema.RiskFlaggedState) (*schema.AggregatedReport, error) {
	if len(flagged) == 0 {
		return &schema.AggregatedReport{
			FullReport: EmptyReportMessage,
		}, nil
	}

	blocks := make([]string, 0, len(flagged))
	for i, f := range flagged {
		if f.Population <= 0 {
			return nil, fmt.Errorf("%w: state %s on %s", ErrInvalidPopulation, f.State, f.Date.Format(schema.DateFormat))
		}

		casesPerMillion := int64(math.Round(float64(f.DailyNewCases) / float64(f.Population) * 1000000))

		blocks = append(blocks, fmt.Sprintf(
			"%d. %s (Pop: %.1fM)\n   New Cases: %d (%d per million)\n   Positivity: %.1f%% | Vaccinated: %.1f%%\n   Flag: %s",
			i+1,
			f.State,
			float64(f.Population)/1000000,
			f.DailyNewCases,
			casesPerMillion,
			f.PositiveTestRate,
			f.VaccinationRate,
			f.RiskSummary,
		))
	}

	return &schema.AggregatedReport{
		ReportDate:  flagged[0].Date,
		TotalStates: len(flagged),
		FullReport:  strings.Join(blocks, "\n\n"),
	}, nil
}
