package models

import "time"

// VitalsEntry is one set of body measurements. SysBP/DiaBP are written as a
// pair or not at all; BMI is derived at read time and never stored.
type VitalsEntry struct {
	ID          uint     `gorm:"primaryKey" json:"id"`
	UserID      uint     `gorm:"index;not null" json:"user_id"`
	Date        string   `gorm:"type:date;index;not null" json:"date" binding:"required"`
	Weight      *float64 `json:"weight"`      // kg
	Height      *float64 `json:"height"`      // cm
	HeartRate   *int     `json:"heart_rate"`  // bpm
	Temperature *float64 `json:"temperature"` // °C
	SysBP       *int     `json:"sys_bp"`      // mmHg
	DiaBP       *int     `json:"dia_bp"`      // mmHg
	SpO2        *int     `json:"spo2"`        // %
	Notes       *string  `json:"notes"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"-"`
}

func (VitalsEntry) TableName() string { return "vitals" }

func (v VitalsEntry) RecordID() uint { return v.ID }
