package services

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

// ErrInvalid marks a payload the user can fix; handlers map it to 400.
var ErrInvalid = errors.New("invalid record")

const (
	dateLayout  = "2006-01-02"
	recentLimit = 30
)

// RecordKind describes one record type to the generic service: how to
// normalize a payload, how to copy its editable fields onto a stored row,
// and how to stamp ownership. Both daily logs and vitals go through the
// same code path with different descriptors.
type RecordKind[R any] struct {
	Name      string
	Normalize func(*R) error
	Apply     func(dst, src *R)
	SetOwner  func(*R, uint)
	ID        func(*R) uint
}

type RecordService[R any] struct {
	db   *gorm.DB
	hub  *RealtimeHub
	kind RecordKind[R]
}

func NewRecordService[R any](db *gorm.DB, hub *RealtimeHub, kind RecordKind[R]) *RecordService[R] {
	return &RecordService[R]{db: db, hub: hub, kind: kind}
}

type ListFilter struct {
	Date  string // optional, YYYY-MM-DD
	Limit int    // optional, capped at recentLimit
}

// List returns the user's most recent records, newest day first and newest
// entry first within a day.
func (s *RecordService[R]) List(ctx context.Context, userID uint, f ListFilter) ([]R, error) {
	limit := recentLimit
	if f.Limit > 0 && f.Limit < recentLimit {
		limit = f.Limit
	}

	q := s.db.WithContext(ctx).Where("user_id = ?", userID)
	if f.Date != "" {
		if err := checkDate(f.Date); err != nil {
			return nil, err
		}
		q = q.Where("date = ?", f.Date)
	}

	out := make([]R, 0, limit)
	err := q.Order("date DESC, created_at DESC").Limit(limit).Find(&out).Error
	return out, err
}

// Create stores a new record for the user. The payload's id, owner and
// timestamps are ignored; only editable fields are taken.
func (s *RecordService[R]) Create(ctx context.Context, userID uint, payload *R) (*R, error) {
	if err := s.kind.Normalize(payload); err != nil {
		return nil, err
	}

	var row R
	s.kind.Apply(&row, payload)
	s.kind.SetOwner(&row, userID)

	if err := s.db.WithContext(ctx).Create(&row).Error; err != nil {
		return nil, err
	}

	s.notify(userID, "created", s.kind.ID(&row))
	return &row, nil
}

// Update mutates a record the user owns. The id+user filter backs up the
// storage-side authorization; a miss reports gorm.ErrRecordNotFound.
func (s *RecordService[R]) Update(ctx context.Context, userID, id uint, payload *R) (*R, error) {
	if err := s.kind.Normalize(payload); err != nil {
		return nil, err
	}

	var row R
	if err := s.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&row).Error; err != nil {
		return nil, err
	}

	s.kind.Apply(&row, payload)
	if err := s.db.WithContext(ctx).Save(&row).Error; err != nil {
		return nil, err
	}

	s.notify(userID, "updated", id)
	return &row, nil
}

// Delete removes a record the user owns. Permanent, no soft delete.
func (s *RecordService[R]) Delete(ctx context.Context, userID, id uint) error {
	res := s.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(new(R))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	s.notify(userID, "deleted", id)
	return nil
}

func (s *RecordService[R]) notify(userID uint, action string, id uint) {
	if s.hub == nil {
		return
	}
	s.hub.Broadcast(userID, RecordEvent{Kind: s.kind.Name, Action: action, ID: id})
}
