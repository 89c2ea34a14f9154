package models

import "time"

// DailyLog is one mood/sleep/symptom check-in. Optional fields are pointers
// so that "not entered" survives the round trip as NULL instead of zero.
// Deletes are permanent, so there is no DeletedAt column.
type DailyLog struct {
	ID         uint     `gorm:"primaryKey" json:"id"`
	UserID     uint     `gorm:"index;not null" json:"user_id"`
	Date       string   `gorm:"type:date;index;not null" json:"date" binding:"required"`
	Mood       *int     `json:"mood"`
	SleepHours *float64 `json:"sleep_hours"`
	Symptoms   *string  `json:"symptoms"`
	Notes      *string  `json:"notes"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"-"`
}

func (DailyLog) TableName() string { return "daily_logs" }

func (l DailyLog) RecordID() uint { return l.ID }
