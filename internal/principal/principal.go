// Package principal carries the authenticated user through a request context.
package principal

import (
	"context"

	"github.com/DhavalSuthar-24/acecourt/internal/models"
)

// Principal is the acting user of a request.
type Principal struct {
	UserID uint
	Role   models.Role
}

func (p Principal) IsAdmin() bool { return p.Role == models.RoleAdmin }

type ctxKey struct{}

// WithPrincipal returns a copy of ctx carrying p.
func WithPrincipal(ctx context.Context, p Principal) context.Context {
	return context.WithValue(ctx, ctxKey{}, p)
}

// FromContext returns the principal stored in ctx, if any.
func FromContext(ctx context.Context) (Principal, bool) {
	p, ok := ctx.Value(ctxKey{}).(Principal)
	return p, ok
}

// UserID returns the acting user's id, or nil for anonymous contexts.
func UserID(ctx context.Context) *uint {
	p, ok := FromContext(ctx)
	if !ok || p.UserID == 0 {
		return nil
	}
	id := p.UserID
	return &id
}
