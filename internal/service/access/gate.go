// Package access is the single authorization gate every operation passes through.
// The caller's identity and Directory role are read from the request context.
package access

import (
	"context"
	"fmt"

	"github.com/heartmarshall/hireflow-backend/internal/domain"
	"github.com/heartmarshall/hireflow-backend/pkg/ctxutil"
)

// ActorFromCtx returns the authenticated actor, or ErrUnauthorized.
func ActorFromCtx(ctx context.Context) (domain.Actor, error) {
	id, ok := ctxutil.AccountIDFromCtx(ctx)
	if !ok {
		return domain.Actor{}, domain.ErrUnauthorized
	}
	role := domain.Role(ctxutil.RoleFromCtx(ctx))
	if !role.IsValid() {
		return domain.Actor{}, domain.ErrUnauthorized
	}
	return domain.Actor{AccountID: id, Role: role}, nil
}

// Require returns the authenticated actor if its role grants capability c.
func Require(ctx context.Context, c domain.Capability) (domain.Actor, error) {
	actor, err := ActorFromCtx(ctx)
	if err != nil {
		return domain.Actor{}, err
	}
	if !actor.Can(c) {
		return actor, fmt.Errorf("%s requires %s: %w", actor.Role, c, domain.ErrForbidden)
	}
	return actor, nil
}

// WithActor returns a context carrying the actor, as the auth middleware does.
func WithActor(ctx context.Context, actor domain.Actor) context.Context {
	ctx = ctxutil.WithAccountID(ctx, actor.AccountID)
	return ctxutil.WithRole(ctx, actor.Role.String())
}
