package client

import (
	"context"
	"net/url"
)

// Guard protects a view: no live session means a redirect to sign-in that
// carries the originally requested path. A failed probe counts as no
// session.
type Guard struct {
	session SessionSource
}

func NewGuard(session SessionSource) *Guard {
	return &Guard{session: session}
}

// Check returns the identity and an empty redirect when signed in, or a nil
// identity and the sign-in target otherwise.
func (g *Guard) Check(ctx context.Context, requestedPath string) (*Identity, string) {
	ident, err := g.session.CurrentUser(ctx)
	if err != nil {
		return nil, "/auth?next=" + url.QueryEscape(requestedPath)
	}
	return ident, ""
}
