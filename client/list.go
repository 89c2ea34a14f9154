package client

import "context"

// Confirmer asks the user a blocking yes/no question.
type Confirmer func(prompt string) bool

// ListView holds the recent-records list. Reload replaces the whole list;
// Delete removes locally after the remote call succeeds, without a refetch.
type ListView[R Record] struct {
	session SessionSource
	store   RecordStore[R]
	form    *Form[R]
	confirm Confirmer

	records []R
	loading bool
	lastErr string
}

func NewListView[R Record](session SessionSource, store RecordStore[R], form *Form[R], confirm Confirmer) *ListView[R] {
	v := &ListView[R]{session: session, store: store, form: form, confirm: confirm}
	if form != nil {
		form.OnSaved(v.Reload)
	}
	return v
}

func (v *ListView[R]) Records() []R      { return v.records }
func (v *ListView[R]) Loading() bool     { return v.loading }
func (v *ListView[R]) LastError() string { return v.lastErr }

// Reload fetches the 30 most recent records. On any failure the previous
// list stays as it was: stale but consistent.
func (v *ListView[R]) Reload(ctx context.Context) {
	v.loading = true
	v.lastErr = ""
	defer func() { v.loading = false }()

	if _, err := v.session.CurrentUser(ctx); err != nil {
		v.lastErr = errMessage(ErrUnauthenticated)
		return
	}

	records, err := v.store.List(ctx, ListOptions{})
	if err != nil {
		v.lastErr = errMessage(err)
		return
	}
	v.records = records
}

// Delete asks for confirmation, issues the remote delete, then removes the
// record locally. If it was loaded in the form, the form goes back to
// create mode.
func (v *ListView[R]) Delete(ctx context.Context, id uint) {
	if v.confirm != nil && !v.confirm("Are you sure you want to delete this entry?") {
		return
	}

	v.lastErr = ""

	if _, err := v.session.CurrentUser(ctx); err != nil {
		v.lastErr = errMessage(ErrUnauthenticated)
		return
	}

	if err := v.store.Delete(ctx, id); err != nil {
		v.lastErr = errMessage(err)
		return
	}

	kept := v.records[:0]
	for _, r := range v.records {
		if r.RecordID() != id {
			kept = append(kept, r)
		}
	}
	v.records = kept

	if v.form != nil && v.form.EditingID() == id {
		v.form.Reset()
	}
}

// Edit loads a record into the form controller.
func (v *ListView[R]) Edit(r R) {
	if v.form != nil {
		v.form.LoadDraft(r)
	}
}
