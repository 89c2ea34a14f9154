package client

import (
	"errors"
	"strings"

	"github.com/IMxMaYur/health-copilot/models"
	"github.com/IMxMaYur/health-copilot/utils"
)

// Draft holds the in-progress copy of one record's editable fields. Numeric
// fields use nil as the empty sentinel; text fields use "". Payload
// normalizes both to absent.
type Draft[R any] interface {
	Reset(today string)
	Load(r R)
	Payload() (R, error)
}

type LogDraft struct {
	Date       string
	Mood       *int
	SleepHours *float64
	Symptoms   string
	Notes      string
}

func (d *LogDraft) Reset(today string) { *d = LogDraft{Date: today} }

func (d *LogDraft) Load(r models.DailyLog) {
	*d = LogDraft{
		Date:       r.Date,
		Mood:       copyPtr(r.Mood),
		SleepHours: copyPtr(r.SleepHours),
		Symptoms:   fromText(r.Symptoms),
		Notes:      fromText(r.Notes),
	}
}

func (d *LogDraft) Payload() (models.DailyLog, error) {
	if d.Date == "" {
		return models.DailyLog{}, errors.New("date is required")
	}
	return models.DailyLog{
		Date:       d.Date,
		Mood:       copyPtr(d.Mood),
		SleepHours: copyPtr(d.SleepHours),
		Symptoms:   toText(d.Symptoms),
		Notes:      toText(d.Notes),
	}, nil
}

// VitalsDraft mirrors the vitals form, including the "I have a device"
// toggles that gate blood pressure and SpO2.
type VitalsDraft struct {
	Date        string
	Weight      *float64
	Height      *float64
	HeartRate   *int
	Temperature *float64
	HasBP       bool
	SysBP       *int
	DiaBP       *int
	HasSpO2     bool
	SpO2        *int
	Notes       string
}

func (d *VitalsDraft) Reset(today string) { *d = VitalsDraft{Date: today} }

func (d *VitalsDraft) Load(r models.VitalsEntry) {
	*d = VitalsDraft{
		Date:        r.Date,
		Weight:      copyPtr(r.Weight),
		Height:      copyPtr(r.Height),
		HeartRate:   copyPtr(r.HeartRate),
		Temperature: copyPtr(r.Temperature),
		HasBP:       r.SysBP != nil || r.DiaBP != nil,
		SysBP:       copyPtr(r.SysBP),
		DiaBP:       copyPtr(r.DiaBP),
		HasSpO2:     r.SpO2 != nil,
		SpO2:        copyPtr(r.SpO2),
		Notes:       fromText(r.Notes),
	}
}

func (d *VitalsDraft) Payload() (models.VitalsEntry, error) {
	if d.Date == "" {
		return models.VitalsEntry{}, errors.New("date is required")
	}

	entry := models.VitalsEntry{
		Date:        d.Date,
		Weight:      copyPtr(d.Weight),
		Height:      copyPtr(d.Height),
		HeartRate:   copyPtr(d.HeartRate),
		Temperature: copyPtr(d.Temperature),
		Notes:       toText(d.Notes),
	}

	if d.HasBP {
		if (d.SysBP == nil) != (d.DiaBP == nil) {
			return models.VitalsEntry{}, errors.New("systolic and diastolic blood pressure must be provided together")
		}
		entry.SysBP = copyPtr(d.SysBP)
		entry.DiaBP = copyPtr(d.DiaBP)
	}
	if d.HasSpO2 {
		entry.SpO2 = copyPtr(d.SpO2)
	}
	return entry, nil
}

// BMI is derived live from the draft; nil until both weight and height are
// entered and height is positive.
func (d *VitalsDraft) BMI() *float64 {
	if d.Weight == nil || d.Height == nil {
		return nil
	}
	bmi, err := utils.CalculateBMI(*d.Height, *d.Weight)
	if err != nil {
		return nil
	}
	return &bmi
}

func copyPtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

func fromText(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

func toText(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}
