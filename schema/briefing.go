package schema

import "time"

const (
	// BriefingRecordCollection is the mongodb collection keeping one record
	// per delivered (or reserved) briefing date.
	BriefingRecordCollection = "briefingRecord"

	// DateFormat is the canonical report date layout used for warehouse
	// parameters, dedup keys and API paths.
	DateFormat = "2006-01-02"
)

// AggregatedReport is the single per-run summary the aggregator produces
// from the flagged states. It is never persisted as-is; the briefing record
// carries its fields instead.
type AggregatedReport struct {
	ReportDate  time.Time `json:"report_date"`
	TotalStates int       `json:"total_states"`
	FullReport  string    `json:"full_report"`
}

// BriefingRecord is the run ledger entry for one report date. The collection
// holds a unique index on report_date, which is what makes a briefing run
// once per date. A record with a zero delivered_ts was reserved but the
// narrative or delivery stage failed afterwards.
type BriefingRecord struct {
	ID          string   `bson:"id" json:"id"`
	ReportDate  string   `bson:"report_date" json:"report_date"`
	TotalStates int      `bson:"total_states" json:"total_states"`
	FullReport  string   `bson:"full_report" json:"full_report"`
	Narrative   string   `bson:"narrative" json:"narrative"`
	Subject     string   `bson:"subject" json:"subject"`
	Recipients  []string `bson:"recipients" json:"recipients"`
	CreatedAt   int64    `bson:"created_ts" json:"created_ts"`
	DeliveredAt int64    `bson:"delivered_ts" json:"delivered_ts"`
}
