// Package store keeps generated exam schedules between requests.
package store

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("schedule not found")

type Status string

const (
	StatusSuccess Status = "success"
	StatusFailed  Status = "failed"
)

// Record is one stored scheduling run. Data holds the CSV export.
type Record struct {
	ID        string    `json:"id"`
	Status    Status    `json:"status"`
	Report    string    `json:"report"`
	Data      string    `json:"-"`
	CreatedAt time.Time `json:"created_at"`
}

// Repository stores schedule runs.
type Repository interface {
	Save(ctx context.Context, r *Record) error
	Get(ctx context.Context, id string) (*Record, error)
	List(ctx context.Context) ([]*Record, error)
	Delete(ctx context.Context, id string) error
}

// NewRecord stamps a fresh record with an ID and creation time.
func NewRecord(status Status, report, data string) *Record {
	return &Record{
		ID:        uuid.NewString(),
		Status:    status,
		Report:    report,
		Data:      data,
		CreatedAt: time.Now().UTC(),
	}
}
