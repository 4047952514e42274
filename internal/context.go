package internal

import (
	"context"
)

type ctxKey string

const contextPrincipalKey ctxKey = "principal"

// Principal is the verified caller identity placed on the request context by
// the auth middleware. Hierarchy queries read the role from here instead of
// any shared holder, so concurrent requests can never see each other's role.
type Principal struct {
	EmployeeID int64
	Email      string
	Role       string
}

func ContextWithPrincipal(ctx context.Context, p *Principal) context.Context {
	return context.WithValue(ctx, contextPrincipalKey, p)
}

func PrincipalFromContext(ctx context.Context) (*Principal, bool) {
	if ctx == nil {
		return nil, false
	}
	p, ok := ctx.Value(contextPrincipalKey).(*Principal)
	if !ok || p == nil {
		return nil, false
	}
	return p, true
}
