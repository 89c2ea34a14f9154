package services

import (
	"fmt"
	"strings"
	"time"

	"github.com/IMxMaYur/health-copilot/models"
)

func DailyLogKind() RecordKind[models.DailyLog] {
	return RecordKind[models.DailyLog]{
		Name:      "daily_log",
		Normalize: normalizeDailyLog,
		Apply: func(dst, src *models.DailyLog) {
			dst.Date = src.Date
			dst.Mood = src.Mood
			dst.SleepHours = src.SleepHours
			dst.Symptoms = src.Symptoms
			dst.Notes = src.Notes
		},
		SetOwner: func(l *models.DailyLog, userID uint) { l.UserID = userID },
		ID:       func(l *models.DailyLog) uint { return l.ID },
	}
}

func VitalsKind() RecordKind[models.VitalsEntry] {
	return RecordKind[models.VitalsEntry]{
		Name:      "vitals",
		Normalize: normalizeVitals,
		Apply: func(dst, src *models.VitalsEntry) {
			dst.Date = src.Date
			dst.Weight = src.Weight
			dst.Height = src.Height
			dst.HeartRate = src.HeartRate
			dst.Temperature = src.Temperature
			dst.SysBP = src.SysBP
			dst.DiaBP = src.DiaBP
			dst.SpO2 = src.SpO2
			dst.Notes = src.Notes
		},
		SetOwner: func(v *models.VitalsEntry, userID uint) { v.UserID = userID },
		ID:       func(v *models.VitalsEntry) uint { return v.ID },
	}
}

func normalizeDailyLog(l *models.DailyLog) error {
	if err := checkDate(l.Date); err != nil {
		return err
	}
	l.Symptoms = trimText(l.Symptoms)
	l.Notes = trimText(l.Notes)

	if l.Mood != nil && (*l.Mood < 1 || *l.Mood > 5) {
		return invalid("mood must be between 1 and 5")
	}
	if l.SleepHours != nil && (*l.SleepHours < 0 || *l.SleepHours > 24) {
		return invalid("sleep_hours must be between 0 and 24")
	}
	return nil
}

func normalizeVitals(v *models.VitalsEntry) error {
	if err := checkDate(v.Date); err != nil {
		return err
	}
	v.Notes = trimText(v.Notes)

	if v.Weight != nil && *v.Weight < 0 {
		return invalid("weight must not be negative")
	}
	if v.Height != nil && *v.Height < 0 {
		return invalid("height must not be negative")
	}
	if v.HeartRate != nil && *v.HeartRate < 0 {
		return invalid("heart_rate must not be negative")
	}
	if v.Temperature != nil && (*v.Temperature < 30 || *v.Temperature > 45) {
		return invalid("temperature must be between 30 and 45")
	}
	// Blood pressure is written as a pair or not at all.
	if (v.SysBP == nil) != (v.DiaBP == nil) {
		return invalid("systolic and diastolic blood pressure must be provided together")
	}
	if v.SysBP != nil && (*v.SysBP < 50 || *v.SysBP > 250) {
		return invalid("sys_bp must be between 50 and 250")
	}
	if v.DiaBP != nil && (*v.DiaBP < 30 || *v.DiaBP > 150) {
		return invalid("dia_bp must be between 30 and 150")
	}
	if v.SpO2 != nil && (*v.SpO2 < 70 || *v.SpO2 > 100) {
		return invalid("spo2 must be between 70 and 100")
	}
	return nil
}

func checkDate(date string) error {
	if _, err := time.Parse(dateLayout, date); err != nil {
		return invalid("date must be YYYY-MM-DD")
	}
	return nil
}

// trimText maps empty or whitespace-only strings to NULL so the store never
// conflates "not entered" with an empty string.
func trimText(p *string) *string {
	if p == nil {
		return nil
	}
	s := strings.TrimSpace(*p)
	if s == "" {
		return nil
	}
	return &s
}

func invalid(msg string) error {
	return fmt.Errorf("%w: %s", ErrInvalid, msg)
}
