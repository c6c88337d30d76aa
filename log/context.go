package log

import (
	"context"
)

type (
	ctxLevelKey struct{}
	ctxNamesKey struct{}
)

func WithLevel(ctx context.Context, lvl Level) context.Context {
	return context.WithValue(ctx, ctxLevelKey{}, lvl)
}

func LevelFromContext(ctx context.Context) Level {
	v, _ := ctx.Value(ctxLevelKey{}).(Level)

	return v
}

// WithNames appends scope names to the ones already carried in ctx.
// The parent slice is never mutated, so sibling contexts derived from
// the same parent cannot observe each other's names.
func WithNames(ctx context.Context, names ...string) context.Context {
	// Clip capacity so append allocates a fresh backing array instead
	// of writing into one shared with the parent context.
	existing := NamesFromContext(ctx)
	existing = existing[:len(existing):len(existing)]

	return context.WithValue(ctx, ctxNamesKey{}, append(existing, names...))
}

func NamesFromContext(ctx context.Context) []string {
	v, _ := ctx.Value(ctxNamesKey{}).([]string)
	if v == nil {
		return []string{}
	}

	return v[:len(v):len(v)]
}

func with(ctx context.Context, lvl Level, names ...string) context.Context {
	return WithLevel(WithNames(ctx, names...), lvl)
}
