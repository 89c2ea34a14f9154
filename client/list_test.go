package client

import (
	"context"
	"testing"

	"github.com/IMxMaYur/health-copilot/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func acceptAll(string) bool  { return true }
func declineAll(string) bool { return false }

func TestReloadReplacesList(t *testing.T) {
	ctx := context.Background()
	store := newLogStore()
	store.records = []models.DailyLog{{ID: 1, Date: "2026-08-30"}, {ID: 2, Date: "2026-08-31"}}
	store.nextID = 2
	list := NewListView[models.DailyLog](&fakeSession{}, store, nil, acceptAll)

	list.Reload(ctx)
	require.Len(t, list.Records(), 2)
	assert.Empty(t, list.LastError())
	assert.False(t, list.Loading())
}

func TestReloadErrorKeepsPreviousList(t *testing.T) {
	ctx := context.Background()
	store := newLogStore()
	store.records = []models.DailyLog{{ID: 1, Date: "2026-08-30"}}
	store.nextID = 1
	list := NewListView[models.DailyLog](&fakeSession{}, store, nil, acceptAll)

	list.Reload(ctx)
	require.Len(t, list.Records(), 1)

	store.listErr = &RemoteError{Status: 500, Message: "connection reset"}
	list.Reload(ctx)

	assert.Equal(t, "connection reset", list.LastError())
	assert.Len(t, list.Records(), 1) // stale but consistent
}

func TestReloadUnauthenticatedMakesNoRemoteCall(t *testing.T) {
	store := newLogStore()
	list := NewListView[models.DailyLog](&fakeSession{err: ErrUnauthenticated}, store, nil, acceptAll)

	list.Reload(context.Background())
	assert.Equal(t, "Not authenticated", list.LastError())
	assert.Zero(t, store.listCalls)
}

func TestDeleteDeclinedMakesNoRemoteCall(t *testing.T) {
	ctx := context.Background()
	store := newLogStore()
	store.records = []models.DailyLog{{ID: 1, Date: "2026-08-30"}}
	store.nextID = 1
	list := NewListView[models.DailyLog](&fakeSession{}, store, nil, declineAll)

	list.Reload(ctx)
	list.Delete(ctx, 1)

	assert.Zero(t, store.deleteCalls)
	assert.Len(t, list.Records(), 1)
}

func TestDeleteRemovesLocallyWithoutRefetch(t *testing.T) {
	ctx := context.Background()
	store := newLogStore()
	store.records = []models.DailyLog{{ID: 1, Date: "2026-08-30"}, {ID: 2, Date: "2026-08-31"}}
	store.nextID = 2
	list := NewListView[models.DailyLog](&fakeSession{}, store, nil, acceptAll)

	list.Reload(ctx)
	fetches := store.listCalls

	list.Delete(ctx, 1)

	assert.Equal(t, 1, store.deleteCalls)
	assert.Equal(t, fetches, store.listCalls) // optimistic: no refetch
	require.Len(t, list.Records(), 1)
	assert.Equal(t, uint(2), list.Records()[0].ID)
}

func TestDeleteResetsFormWhenEditingThatRecord(t *testing.T) {
	ctx := context.Background()
	session := &fakeSession{}
	store := newLogStore()
	store.records = []models.DailyLog{{ID: 1, Date: "2026-08-30", Mood: intPtr(2)}}
	store.nextID = 1
	form := NewForm[models.DailyLog](session, store, &LogDraft{})
	list := NewListView[models.DailyLog](session, store, form, acceptAll)

	list.Reload(ctx)
	list.Edit(list.Records()[0])
	require.Equal(t, ModeEdit, form.Mode())

	list.Delete(ctx, 1)

	assert.Equal(t, ModeCreate, form.Mode())
	assert.Zero(t, form.EditingID())
	assert.Equal(t, Today(), form.Draft().(*LogDraft).Date)
}

func TestDeleteOtherRecordLeavesFormAlone(t *testing.T) {
	ctx := context.Background()
	session := &fakeSession{}
	store := newLogStore()
	store.records = []models.DailyLog{{ID: 1, Date: "2026-08-30"}, {ID: 2, Date: "2026-08-31"}}
	store.nextID = 2
	form := NewForm[models.DailyLog](session, store, &LogDraft{})
	list := NewListView[models.DailyLog](session, store, form, acceptAll)

	list.Reload(ctx)
	list.Edit(store.records[1]) // editing id 2
	list.Delete(ctx, 1)

	assert.Equal(t, ModeEdit, form.Mode())
	assert.Equal(t, uint(2), form.EditingID())
}

func TestDeleteErrorLeavesListUnchanged(t *testing.T) {
	ctx := context.Background()
	store := newLogStore()
	store.records = []models.DailyLog{{ID: 1, Date: "2026-08-30"}}
	store.nextID = 1
	list := NewListView[models.DailyLog](&fakeSession{}, store, nil, acceptAll)

	list.Reload(ctx)
	store.deleteErr = &RemoteError{Status: 500, Message: "delete failed"}
	list.Delete(ctx, 1)

	assert.Equal(t, "delete failed", list.LastError())
	assert.Len(t, list.Records(), 1)
}
