package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBareError(t *testing.T) {
	t.Run("message_only", func(t *testing.T) {
		err := NewBareError("Test error", 0)
		assert.Equal(t, "Test error", err.Message)
		assert.Equal(t, 0, err.Status)
		assert.Equal(t, "BareError: Test error", err.Error())
		assert.Equal(t, "BareError", err.Name())
	})
	t.Run("with_status", func(t *testing.T) {
		err := NewBareError("Not found", 404)
		assert.Equal(t, 404, err.Status)
		assert.Contains(t, err.Error(), "404")
	})
	t.Run("wrapped", func(t *testing.T) {
		var err error = fmt.Errorf("attempt 2: %w", NewBareError("bad gateway", 502))
		be := ToBareError(err)
		require.NotNil(t, be)
		assert.Equal(t, 502, be.Status)
		assert.Nil(t, ToBareError(errors.New("plain")))
	})
}

func TestIsRetryable(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{name: "nil", err: nil, want: false},
		{name: "network", err: errors.New("connection refused"), want: true},
		{name: "deadline", err: context.DeadlineExceeded, want: true},
		{name: "no status", err: NewBareError("reset", 0), want: true},
		{name: "bad gateway", err: NewBareError("bad gateway", 502), want: true},
		{name: "too many requests", err: NewBareError("slow down", 429), want: true},
		{name: "not found", err: NewBareError("not found", 404), want: false},
		{name: "wrapped bad request", err: fmt.Errorf("x: %w", NewBareError("bad", 400)), want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsRetryable(tt.err))
		})
	}
}
