package client

import (
	"context"
	"testing"

	"github.com/IMxMaYur/health-copilot/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubmitCreateThenReload(t *testing.T) {
	ctx := context.Background()
	session := &fakeSession{}
	store := newLogStore()
	form := NewForm[models.DailyLog](session, store, &LogDraft{})
	list := NewListView[models.DailyLog](session, store, form, nil)

	draft := form.Draft().(*LogDraft)
	draft.Date = "2026-08-31"
	draft.Mood = intPtr(4)
	draft.Symptoms = "   " // whitespace only, must store as absent

	require.True(t, form.Submit(ctx))
	assert.Equal(t, 1, store.createCalls)
	assert.Equal(t, 1, store.listCalls) // saved hook reloaded the list

	require.Len(t, list.Records(), 1)
	got := list.Records()[0]
	assert.Equal(t, "2026-08-31", got.Date)
	assert.Equal(t, 4, *got.Mood)
	assert.Nil(t, got.SleepHours)
	assert.Nil(t, got.Symptoms)
	assert.Nil(t, got.Notes)
}

func TestSubmitUnauthenticatedMakesNoRemoteCall(t *testing.T) {
	store := newLogStore()
	form := NewForm[models.DailyLog](&fakeSession{err: ErrUnauthenticated}, store, &LogDraft{})

	assert.False(t, form.Submit(context.Background()))
	assert.Equal(t, "Not authenticated", form.LastError())
	assert.Zero(t, store.createCalls)
	assert.Zero(t, store.updateCalls)
}

func TestSubmitWhileSubmittingIsNoOp(t *testing.T) {
	ctx := context.Background()
	store := newLogStore()
	form := NewForm[models.DailyLog](&fakeSession{}, store, &LogDraft{})

	store.onCreate = func() {
		assert.True(t, form.Submitting())
		assert.False(t, form.Submit(ctx)) // re-entrant submit is dropped
	}

	require.True(t, form.Submit(ctx))
	assert.Equal(t, 1, store.createCalls)
}

func TestSubmitFailureKeepsDraft(t *testing.T) {
	store := newLogStore()
	store.createErr = &RemoteError{Status: 400, Message: "duplicate entry for day"}
	form := NewForm[models.DailyLog](&fakeSession{}, store, &LogDraft{})

	draft := form.Draft().(*LogDraft)
	draft.Date = "2026-08-31"
	draft.Notes = "long note the user typed"

	assert.False(t, form.Submit(context.Background()))
	assert.Equal(t, "duplicate entry for day", form.LastError()) // verbatim

	// unsaved input survives
	assert.Equal(t, "2026-08-31", draft.Date)
	assert.Equal(t, "long note the user typed", draft.Notes)
	assert.Equal(t, ModeCreate, form.Mode())
}

func TestEditRoundTripIsIdempotent(t *testing.T) {
	ctx := context.Background()
	store := newLogStore()
	form := NewForm[models.DailyLog](&fakeSession{}, store, &LogDraft{})

	record := models.DailyLog{
		ID:         12,
		UserID:     1,
		Date:       "2026-08-30",
		Mood:       intPtr(3),
		SleepHours: floatPtr(7.5),
		Symptoms:   strPtr("mild headache"),
	}

	form.LoadDraft(record)
	assert.Equal(t, ModeEdit, form.Mode())
	assert.Equal(t, uint(12), form.EditingID())

	require.True(t, form.Submit(ctx))
	assert.Equal(t, 1, store.updateCalls)
	assert.Zero(t, store.createCalls)
	assert.Equal(t, uint(12), store.lastUpdateID)

	payload := store.lastUpdatePayload
	assert.Equal(t, record.Date, payload.Date)
	assert.Equal(t, *record.Mood, *payload.Mood)
	assert.Equal(t, *record.SleepHours, *payload.SleepHours)
	assert.Equal(t, *record.Symptoms, *payload.Symptoms)
	assert.Nil(t, payload.Notes)
}

func TestSubmitSuccessResetsToCreateMode(t *testing.T) {
	ctx := context.Background()
	store := newLogStore()
	form := NewForm[models.DailyLog](&fakeSession{}, store, &LogDraft{})

	form.LoadDraft(models.DailyLog{ID: 5, Date: "2026-08-30", Mood: intPtr(2)})
	require.True(t, form.Submit(ctx))

	assert.Equal(t, ModeCreate, form.Mode())
	assert.Zero(t, form.EditingID())
	draft := form.Draft().(*LogDraft)
	assert.Equal(t, Today(), draft.Date)
	assert.Nil(t, draft.Mood)
}

func TestLoadDraftClearsError(t *testing.T) {
	store := newLogStore()
	store.createErr = &RemoteError{Status: 500, Message: "boom"}
	form := NewForm[models.DailyLog](&fakeSession{}, store, &LogDraft{})

	assert.False(t, form.Submit(context.Background()))
	require.NotEmpty(t, form.LastError())

	form.LoadDraft(models.DailyLog{ID: 3, Date: "2026-08-30"})
	assert.Empty(t, form.LastError())
}
