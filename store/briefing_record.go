package store

import (
	"context"
	"fmt"

	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/bitmark-inc/covid-briefing/schema"
)

const DuplicateKeyCode = 11000

var (
	ErrBriefingAlreadySent = fmt.Errorf("a briefing for this date has already been recorded")
	ErrBriefingNotFound    = fmt.Errorf("no briefing recorded for this date")
)

// BriefingLedger keeps one record per report date. The unique report_date
// index turns a repeated insert into ErrBriefingAlreadySent, so two
// overlapping runs for the same date cannot both deliver.
type BriefingLedger interface {
	CreateBriefingRecord(record schema.BriefingRecord) error
	GetBriefingRecord(reportDate string) (*schema.BriefingRecord, error)
	MarkBriefingDelivered(id, narrative string, deliveredAt int64) error
	DeleteBriefingRecord(reportDate string) error
}

func (m *mongoDB) CreateBriefingRecord(record schema.BriefingRecord) error {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.BriefingRecordCollection)
	if _, err := c.InsertOne(ctx, record); err != nil {
		if we, hasErr := err.(mongo.WriteException); hasErr {
			if 1 == len(we.WriteErrors) && DuplicateKeyCode == we.WriteErrors[0].Code {
				log.WithFields(log.Fields{"prefix": mongoLogPrefix, "report_date": record.ReportDate}).
					Warn("briefing record already reserved")
				return ErrBriefingAlreadySent
			}
		}
		return err
	}

	log.WithFields(log.Fields{"prefix": mongoLogPrefix, "report_date": record.ReportDate}).
		Debug("briefing record created")
	return nil
}

func (m *mongoDB) GetBriefingRecord(reportDate string) (*schema.BriefingRecord, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	var record schema.BriefingRecord
	c := m.client.Database(m.database).Collection(schema.BriefingRecordCollection)
	err := c.FindOne(ctx, bson.M{"report_date": reportDate}).Decode(&record)
	if err == mongo.ErrNoDocuments {
		return nil, ErrBriefingNotFound
	}
	if err != nil {
		return nil, err
	}

	return &record, nil
}

func (m *mongoDB) MarkBriefingDelivered(id, narrative string, deliveredAt int64) error {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.BriefingRecordCollection)
	res, err := c.UpdateOne(ctx,
		bson.M{"id": id},
		bson.M{"$set": bson.M{
			"narrative":    narrative,
			"delivered_ts": deliveredAt,
		}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrBriefingNotFound
	}

	return nil
}

func (m *mongoDB) DeleteBriefingRecord(reportDate string) error {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.BriefingRecordCollection)
	res, err := c.DeleteOne(ctx, bson.M{"report_date": reportDate})
	if err != nil {
		return err
	}

	log.WithFields(log.Fields{"prefix": mongoLogPrefix, "report_date": reportDate, "records": res.DeletedCount}).
		Debug("briefing record deleted")
	return nil
}
