package operation

import (
	"context"
	"sync/atomic"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gitlab.com/tozd/go/errors"
)

// fakeOperation counts executions and optionally fails
type fakeOperation struct {
	executed atomic.Int32
	err      error
}

func (f *fakeOperation) Execute(ctx context.Context) error {
	f.executed.Add(1)
	return f.err
}

func TestOperationRunner_Run(t *testing.T) {
	logger := zerolog.Nop()

	t.Run("sync", func(t *testing.T) {
		op := &fakeOperation{}
		r := NewRunner(&logger, false)

		require.NoError(t, r.Run(context.Background(), op))
		assert.Equal(t, int32(1), op.executed.Load())
	})

	t.Run("async", func(t *testing.T) {
		op := &fakeOperation{}
		r := NewRunner(&logger, true)

		require.NoError(t, r.Run(context.Background(), op))
		assert.Equal(t, int32(1), op.executed.Load())
	})

	t.Run("propagates_error", func(t *testing.T) {
		op := &fakeOperation{err: errors.New("boom")}
		r := NewRunner(&logger, true)

		err := r.Run(context.Background(), op)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "boom")
	})
}
