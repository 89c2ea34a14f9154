package services

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/IMxMaYur/health-copilot/models"
	"github.com/IMxMaYur/health-copilot/utils"

	"gorm.io/gorm"
)

type DashboardService struct {
	db *gorm.DB
}

func NewDashboardService(db *gorm.DB) *DashboardService {
	return &DashboardService{db: db}
}

// Overview carries the two dashboard cards. Each card succeeds or fails on
// its own; an empty result is success with a nil row.
type Overview struct {
	TodayLog      *models.DailyLog `json:"today_log"`
	TodayLogError string           `json:"today_log_error,omitempty"`

	LatestVitals      *models.VitalsEntry `json:"latest_vitals"`
	LatestVitalsError string              `json:"latest_vitals_error,omitempty"`

	BMI         *float64 `json:"bmi,omitempty"`
	BMICategory string   `json:"bmi_category,omitempty"`
}

// Overview fetches today's check-in and the most recent vitals row
// concurrently and derives BMI from the latter.
func (s *DashboardService) Overview(ctx context.Context, userID uint) *Overview {
	today := time.Now().Format(dateLayout)
	out := &Overview{}

	var wg sync.WaitGroup
	wg.Add(2)

	go func() {
		defer wg.Done()
		var log models.DailyLog
		err := s.db.WithContext(ctx).
			Where("user_id = ? AND date = ?", userID, today).
			Order("created_at DESC").
			First(&log).Error
		switch {
		case err == nil:
			out.TodayLog = &log
		case !errors.Is(err, gorm.ErrRecordNotFound):
			out.TodayLogError = err.Error()
		}
	}()

	go func() {
		defer wg.Done()
		var entry models.VitalsEntry
		err := s.db.WithContext(ctx).
			Where("user_id = ?", userID).
			Order("date DESC, created_at DESC").
			First(&entry).Error
		switch {
		case err == nil:
			out.LatestVitals = &entry
		case !errors.Is(err, gorm.ErrRecordNotFound):
			out.LatestVitalsError = err.Error()
		}
	}()

	wg.Wait()

	if v := out.LatestVitals; v != nil && v.Weight != nil && v.Height != nil {
		if bmi, err := utils.CalculateBMI(*v.Height, *v.Weight); err == nil {
			out.BMI = &bmi
			out.BMICategory = utils.BMICategory(bmi)
		}
	}
	return out
}
