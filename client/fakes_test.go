package client

import (
	"context"

	"github.com/IMxMaYur/health-copilot/models"
)

type fakeSession struct {
	err error
}

func (s *fakeSession) CurrentUser(ctx context.Context) (*Identity, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &Identity{UserID: 1, Email: "sam@example.com"}, nil
}

// fakeStore keeps records in memory and counts remote calls.
type fakeStore[R Record] struct {
	withID func(R, uint) R

	records []R
	nextID  uint

	listErr   error
	createErr error
	updateErr error
	deleteErr error

	listCalls   int
	createCalls int
	updateCalls int
	deleteCalls int

	lastUpdateID      uint
	lastUpdatePayload R
	onCreate          func()
}

func (s *fakeStore[R]) List(ctx context.Context, opts ListOptions) ([]R, error) {
	s.listCalls++
	if s.listErr != nil {
		return nil, s.listErr
	}
	out := make([]R, len(s.records))
	copy(out, s.records)
	if opts.Limit > 0 && len(out) > opts.Limit {
		out = out[:opts.Limit]
	}
	return out, nil
}

func (s *fakeStore[R]) Create(ctx context.Context, payload R) (R, error) {
	s.createCalls++
	if s.onCreate != nil {
		s.onCreate()
	}
	if s.createErr != nil {
		var zero R
		return zero, s.createErr
	}
	s.nextID++
	row := s.withID(payload, s.nextID)
	s.records = append(s.records, row)
	return row, nil
}

func (s *fakeStore[R]) Update(ctx context.Context, id uint, payload R) (R, error) {
	s.updateCalls++
	if s.updateErr != nil {
		var zero R
		return zero, s.updateErr
	}
	s.lastUpdateID = id
	s.lastUpdatePayload = payload
	row := s.withID(payload, id)
	for i, r := range s.records {
		if r.RecordID() == id {
			s.records[i] = row
		}
	}
	return row, nil
}

func (s *fakeStore[R]) Delete(ctx context.Context, id uint) error {
	s.deleteCalls++
	if s.deleteErr != nil {
		return s.deleteErr
	}
	kept := s.records[:0]
	for _, r := range s.records {
		if r.RecordID() != id {
			kept = append(kept, r)
		}
	}
	s.records = kept
	return nil
}

func newLogStore() *fakeStore[models.DailyLog] {
	return &fakeStore[models.DailyLog]{
		withID: func(r models.DailyLog, id uint) models.DailyLog { r.ID = id; return r },
	}
}

func newVitalsStore() *fakeStore[models.VitalsEntry] {
	return &fakeStore[models.VitalsEntry]{
		withID: func(r models.VitalsEntry, id uint) models.VitalsEntry { r.ID = id; return r },
	}
}

func intPtr(v int) *int           { return &v }
func floatPtr(v float64) *float64 { return &v }
func strPtr(v string) *string     { return &v }
