package requestcontext

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRequestScopedValues(t *testing.T) {
	t.Run("empty context yields zero values", func(t *testing.T) {
		ctx := context.Background()
		assert.Empty(t, RequestID(ctx))
		assert.Empty(t, ClientIP(ctx))
		_, ok := Time(ctx)
		assert.False(t, ok)
	})

	t.Run("round trips request id and client ip", func(t *testing.T) {
		ctx := WithRequestID(context.Background(), "req-42")
		ctx = WithClientIP(ctx, "10.0.0.7")
		assert.Equal(t, "req-42", RequestID(ctx))
		assert.Equal(t, "10.0.0.7", ClientIP(ctx))
	})

	t.Run("Now prefers injected time", func(t *testing.T) {
		fixed := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
		ctx := WithTime(context.Background(), fixed)
		assert.Equal(t, fixed, Now(ctx))
	})

	t.Run("zero injected time falls back to wall clock", func(t *testing.T) {
		ctx := WithTime(context.Background(), time.Time{})
		_, ok := Time(ctx)
		assert.False(t, ok)
		assert.WithinDuration(t, time.Now(), Now(ctx), time.Second)
	})
}
