package background

import (
	"context"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"github.com/bitmark-inc/covid-briefing/external/mailer"
	"github.com/bitmark-inc/covid-briefing/external/textgen"
	"github.com/bitmark-inc/covid-briefing/report"
	"github.com/bitmark-inc/covid-briefing/risk"
	"github.com/bitmark-inc/covid-briefing/schema"
	"github.com/bitmark-inc/covid-briefing/store"
)

const (
	// AlertSubject is the fixed subject line of every briefing email.
	AlertSubject = "⚠️ CRITICAL COVID-19 ALERT"

	briefingLogPrefix = "briefing"
)

// Result summarizes one pipeline run for the caller.
type Result struct {
	ReportDate  string `json:"report_date"`
	TotalStates int    `json:"total_states"`
	Delivered   bool   `json:"delivered"`
}

// BriefingPipeline runs the four briefing stages in sequence: select
// at-risk states from the warehouse, aggregate them into one report, ask
// the hosted model for an HTML narrative, and email it. Each run is
// independent; a failed stage aborts the run and the error propagates to
// the caller, which owns any retry policy.
type BriefingPipeline struct {
	store      store.BriefingCore
	textgen    textgen.TextGen
	mailer     mailer.Mailer
	cutoff     time.Time
	recipients []string
}

func NewBriefingPipeline(s store.BriefingCore, t textgen.TextGen, m mailer.Mailer, cutoff time.Time, recipients []string) *BriefingPipeline {
	return &BriefingPipeline{
		store:      s,
		textgen:    t,
		mailer:     m,
		cutoff:     cutoff,
		recipients: recipients,
	}
}

// Run produces and delivers the briefing for the target date.
//
// The ledger record is reserved before the narrative is generated, so a
// concurrent run for the same date loses on the unique report_date index
// and gets store.ErrBriefingAlreadySent without sending anything. With
// force set, an existing record for the date is dropped first.
//
// A day with no flagged state short-circuits after the aggregator: nothing
// is reserved and no email goes out.
func (p *BriefingPipeline) Run(ctx context.Context, target time.Time, force bool) (*Result, error) {
	entry := log.WithFields(log.Fields{"prefix": briefingLogPrefix, "report_date": target.Format(schema.DateFormat)})

	stats, err := p.store.ListDailyStateStats(p.cutoff, target)
	if err != nil {
		return nil, err
	}

	flagged := risk.SelectAtRisk(stats, target)

	rep, err := report.Aggregate(flagged)
	if err != nil {
		sentry.CaptureException(err)
		return nil, err
	}

	result := &Result{
		ReportDate:  target.Format(schema.DateFormat),
		TotalStates: rep.TotalStates,
	}

	if rep.TotalStates == 0 {
		entry.Info("no critical risks detected, skipping briefing delivery")
		return result, nil
	}

	if force {
		if err := p.store.DeleteBriefingRecord(result.ReportDate); err != nil {
			return nil, err
		}
	}

	record := schema.BriefingRecord{
		ID:          uuid.New().String(),
		ReportDate:  result.ReportDate,
		TotalStates: rep.TotalStates,
		FullReport:  rep.FullReport,
		Subject:     AlertSubject,
		Recipients:  p.recipients,
		CreatedAt:   time.Now().Unix(),
	}
	if err := p.store.CreateBriefingRecord(record); err != nil {
		return nil, err
	}

	narrative, err := p.textgen.Generate(ctx, narrativeSystemPrompt, NarrativePrompt(rep))
	if err != nil {
		entry.WithError(err).Error("narrative generation failed")
		sentry.CaptureException(err)
		return nil, err
	}

	body := StripCodeFence(narrative)

	if err := p.mailer.Send(AlertSubject, body, p.recipients); err != nil {
		entry.WithError(err).Error("briefing delivery failed")
		sentry.CaptureException(err)
		return nil, err
	}

	if err := p.store.MarkBriefingDelivered(record.ID, body, time.Now().Unix()); err != nil {
		// the email is already out; keep the run successful but leave a trace
		entry.WithError(err).Warn("delivered briefing could not be marked in the ledger")
	}

	result.Delivered = true
	entry.WithField("total_states", rep.TotalStates).Info("briefing delivered")
	return result, nil
}
