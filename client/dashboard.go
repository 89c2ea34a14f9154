package client

import (
	"context"
	"sync"

	"github.com/IMxMaYur/health-copilot/models"
	"github.com/IMxMaYur/health-copilot/utils"
)

type CardState int

const (
	CardIdle CardState = iota
	CardLoading
	CardSuccess
	CardError
)

// Card is one independent dashboard fetch. Success with nil Data means the
// query came back empty.
type Card[T any] struct {
	State   CardState
	Data    *T
	Message string
}

// Dashboard issues its two queries concurrently and reports each card on
// its own: one failing never blocks the other.
type Dashboard struct {
	session SessionSource
	logs    RecordStore[models.DailyLog]
	vitals  RecordStore[models.VitalsEntry]

	mu           sync.Mutex
	todayLog     Card[models.DailyLog]
	latestVitals Card[models.VitalsEntry]
}

func NewDashboard(session SessionSource, logs RecordStore[models.DailyLog], vitals RecordStore[models.VitalsEntry]) *Dashboard {
	return &Dashboard{session: session, logs: logs, vitals: vitals}
}

func (d *Dashboard) TodayLog() Card[models.DailyLog] {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.todayLog
}

func (d *Dashboard) LatestVitals() Card[models.VitalsEntry] {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.latestVitals
}

// Load fetches today's log and the latest vitals row jointly and waits for
// both before returning.
func (d *Dashboard) Load(ctx context.Context) {
	d.mu.Lock()
	d.todayLog = Card[models.DailyLog]{State: CardLoading}
	d.latestVitals = Card[models.VitalsEntry]{State: CardLoading}
	d.mu.Unlock()

	var wg sync.WaitGroup
	wg.Add(2)

	go func() {
		defer wg.Done()
		card := fetchOne(ctx, d.session, d.logs, ListOptions{Date: Today(), Limit: 1})
		d.mu.Lock()
		d.todayLog = card
		d.mu.Unlock()
	}()

	go func() {
		defer wg.Done()
		card := fetchOne(ctx, d.session, d.vitals, ListOptions{Limit: 1})
		d.mu.Lock()
		d.latestVitals = card
		d.mu.Unlock()
	}()

	wg.Wait()
}

// BMI is derived from the latest vitals card, never stored.
func (d *Dashboard) BMI() *float64 {
	v := d.LatestVitals().Data
	if v == nil || v.Weight == nil || v.Height == nil {
		return nil
	}
	bmi, err := utils.CalculateBMI(*v.Height, *v.Weight)
	if err != nil {
		return nil
	}
	return &bmi
}

func fetchOne[R any](ctx context.Context, session SessionSource, store RecordStore[R], opts ListOptions) Card[R] {
	if _, err := session.CurrentUser(ctx); err != nil {
		return Card[R]{State: CardError, Message: errMessage(ErrUnauthenticated)}
	}

	records, err := store.List(ctx, opts)
	if err != nil {
		return Card[R]{State: CardError, Message: errMessage(err)}
	}
	if len(records) == 0 {
		return Card[R]{State: CardSuccess}
	}
	return Card[R]{State: CardSuccess, Data: &records[0]}
}
