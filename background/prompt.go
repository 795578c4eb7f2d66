package background

import (
	"fmt"

	"github.com/bitmark-inc/covid-briefing/schema"
)

// narrativeSystemPrompt fixes the model's role for every run. The contract
// with the model is string in, HTML fragment out; anything fancier belongs
// to the model side, not here.
const narrativeSystemPrompt = `You are a senior public-health strategist writing for state emergency-response leadership.
Given a raw COVID-19 risk report, write a concise strategic briefing: lead with the overall situation, then cover each flagged state with the action its numbers call for.
Respond with an HTML fragment only (headings, paragraphs, lists). No markdown, no preamble, no closing remarks.`

// NarrativePrompt embeds the aggregated report into the user prompt sent
// alongside the fixed system role.
func NarrativePrompt(rep *schema.AggregatedReport) string {
	return fmt.Sprintf(
		"Daily COVID-19 risk report for %s, %d state(s) flagged:\n\n%s",
		rep.ReportDate.Format(schema.DateFormat),
		rep.TotalStates,
		rep.FullReport,
	)
}
