package store

import (
	"time"

	"github.com/jinzhu/gorm"

	"github.com/bitmark-inc/covid-briefing/schema"
)

// BriefingCore is the storage facade the pipeline and the API depend on:
// the analytical warehouse on the read side and the run ledger on the
// write side.
type BriefingCore interface {
	Ping() error

	// Warehouse
	ListDailyStateStats(cutoff, target time.Time) ([]schema.DailyStateStat, error)

	// Ledger
	CreateBriefingRecord(record schema.BriefingRecord) error
	GetBriefingRecord(reportDate string) (*schema.BriefingRecord, error)
	MarkBriefingDelivered(id, narrative string, deliveredAt int64) error
	DeleteBriefingRecord(reportDate string) error
}

// BriefingStore is an implementation of BriefingCore
type BriefingStore struct {
	ormDB *gorm.DB
	mongo MongoStore
}

func NewBriefingStore(ormDB *gorm.DB, mongo MongoStore) *BriefingStore {
	return &BriefingStore{
		ormDB: ormDB,
		mongo: mongo,
	}
}

// Ping is to check the storage health status
func (s *BriefingStore) Ping() error {
	if err := s.ormDB.DB().Ping(); err != nil {
		return err
	}
	return s.mongo.Ping()
}

func (s *BriefingStore) CreateBriefingRecord(record schema.BriefingRecord) error {
	return s.mongo.CreateBriefingRecord(record)
}

func (s *BriefingStore) GetBriefingRecord(reportDate string) (*schema.BriefingRecord, error) {
	return s.mongo.GetBriefingRecord(reportDate)
}

func (s *BriefingStore) MarkBriefingDelivered(id, narrative string, deliveredAt int64) error {
	return s.mongo.MarkBriefingDelivered(id, narrative, deliveredAt)
}

func (s *BriefingStore) DeleteBriefingRecord(reportDate string) error {
	return s.mongo.DeleteBriefingRecord(reportDate)
}
