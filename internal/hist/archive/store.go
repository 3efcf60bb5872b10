// Package archive mirrors historical records into a relational store
// so downstream tooling can query the run without parsing the result
// files.
package archive

import (
	"time"

	"github.com/yanun0323/errors"

	"main/pkg/conn"
)

// Record is one archived historical line.
type Record struct {
	ID        uint   `gorm:"primaryKey"`
	Service   string `gorm:"index"`
	RecordKey string `gorm:"index"`
	Line      string
	CreatedAt time.Time
}

// Store appends historical records to the archive database.
type Store struct {
	client *conn.Client
}

// Open connects and migrates the record table.
func Open(option conn.Option) (*Store, error) {
	client, err := conn.New(option)
	if err != nil {
		return nil, errors.Wrap(err, "open archive")
	}
	if err := client.DB().AutoMigrate(&Record{}); err != nil {
		_ = client.Close()
		return nil, errors.Wrap(err, "migrate archive")
	}
	return &Store{client: client}, nil
}

// Append inserts one record row.
func (s *Store) Append(service, key, line string) error {
	if s == nil || s.client == nil {
		return nil
	}
	record := Record{Service: service, RecordKey: key, Line: line}
	return s.client.DB().Create(&record).Error
}

// Count returns the number of archived rows for one service.
func (s *Store) Count(service string) (int64, error) {
	var count int64
	err := s.client.DB().Model(&Record{}).Where("service = ?", service).Count(&count).Error
	return count, err
}

// Close closes the underlying connection.
func (s *Store) Close() error {
	if s == nil {
		return nil
	}
	return s.client.Close()
}
