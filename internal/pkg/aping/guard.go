package aping

import "context"

type SessionHolder interface {
	SessionToken() string
}

// RequiresLogin wraps fn so that it only runs when the client holds a session token.
func RequiresLogin[C SessionHolder, A, R any](fn func(ctx context.Context, c C, args A) (R, error)) func(context.Context, C, A) (R, error) {
	return func(ctx context.Context, c C, args A) (R, error) {
		if c.SessionToken() == "" {
			var zero R
			return zero, ErrNotLoggedIn
		}

		return fn(ctx, c, args)
	}
}
