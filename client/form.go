package client

import "context"

type Mode int

const (
	ModeCreate Mode = iota
	ModeEdit
)

// Form is the record form controller: one draft, a create/edit mode, a
// submitting flag acting as a re-entrancy guard, and the last error shown
// inline. Not safe for concurrent use.
type Form[R Record] struct {
	session SessionSource
	store   RecordStore[R]
	draft   Draft[R]

	mode       Mode
	editingID  uint
	submitting bool
	lastErr    string
	onSaved    func(ctx context.Context)
}

func NewForm[R Record](session SessionSource, store RecordStore[R], draft Draft[R]) *Form[R] {
	f := &Form[R]{session: session, store: store, draft: draft}
	f.Reset()
	return f
}

// OnSaved registers the list reload triggered after a successful submit.
func (f *Form[R]) OnSaved(fn func(ctx context.Context)) { f.onSaved = fn }

func (f *Form[R]) Draft() Draft[R]   { return f.draft }
func (f *Form[R]) Mode() Mode        { return f.mode }
func (f *Form[R]) EditingID() uint   { return f.editingID }
func (f *Form[R]) Submitting() bool  { return f.submitting }
func (f *Form[R]) LastError() string { return f.lastErr }

// Reset restores create mode with a fresh draft dated today.
func (f *Form[R]) Reset() {
	f.mode = ModeCreate
	f.editingID = 0
	f.draft.Reset(Today())
	f.lastErr = ""
}

// LoadDraft copies an existing record into the draft and switches to edit.
func (f *Form[R]) LoadDraft(r R) {
	f.mode = ModeEdit
	f.editingID = r.RecordID()
	f.draft.Load(r)
	f.lastErr = ""
}

// Submit normalizes the draft and issues the create or update. A submit
// while one is in flight is a no-op. On failure the draft is kept so the
// user's input survives; on success the form resets and the saved hook
// fires. Returns whether the record was saved.
func (f *Form[R]) Submit(ctx context.Context) bool {
	if f.submitting {
		return false
	}
	f.submitting = true
	defer func() { f.submitting = false }()

	f.lastErr = ""

	if _, err := f.session.CurrentUser(ctx); err != nil {
		f.lastErr = errMessage(ErrUnauthenticated)
		return false
	}

	payload, err := f.draft.Payload()
	if err != nil {
		f.lastErr = err.Error()
		return false
	}

	if f.mode == ModeEdit && f.editingID != 0 {
		_, err = f.store.Update(ctx, f.editingID, payload)
	} else {
		_, err = f.store.Create(ctx, payload)
	}
	if err != nil {
		f.lastErr = errMessage(err)
		return false
	}

	f.Reset()
	if f.onSaved != nil {
		f.onSaved(ctx)
	}
	return true
}
