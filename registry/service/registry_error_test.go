package service

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewNodeNotFoundError(t *testing.T) {
	e := NewNodeNotFoundError("n1")
	assert.Equal(t, ErrEntityNotFound, e.Code)
	assert.Equal(t, "n1", e.NodeID)
	assert.Empty(t, e.Field)
	assert.Equal(t, `entity_not_found node "n1" not found`, e.Error())
	assert.True(t, IsEntityNotFoundError(fmt.Errorf("getNode: %w", e)))
	assert.False(t, IsBadParameterError(e))
}

func TestNewBadParameterError(t *testing.T) {
	tests := []struct {
		name    string
		field   string
		inner   error
		wantErr string
	}{
		{name: "field", field: "url", wantErr: "bad_parameter [url] url is required"},
		{name: "whole_request", wantErr: "bad_parameter url is required"},
		{name: "with_inner", field: "url", inner: errors.New("missing scheme"), wantErr: "bad_parameter [url] url is required: missing scheme"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := NewBadParameterError(tt.field, "url is required", tt.inner)
			assert.Equal(t, ErrBadParameter, e.Code)
			assert.Equal(t, tt.field, e.Field)
			assert.Empty(t, e.NodeID)
			assert.Equal(t, tt.wantErr, e.Error())
			assert.True(t, IsBadParameterError(e))
			if tt.inner != nil {
				assert.ErrorIs(t, e, tt.inner)
			}
		})
	}
}

func TestNewInternalServerError(t *testing.T) {
	t.Run("plain_inner", func(t *testing.T) {
		inner := errors.New("connection refused")
		e := NewInternalServerError("store failed", inner)
		assert.Equal(t, ErrInternalServerError, e.Code)
		assert.Equal(t, "internal_server_error store failed: connection refused", e.Error())
		assert.ErrorIs(t, e, inner)
		assert.True(t, IsInternalServerError(e))
	})
	t.Run("keeps_registry_error", func(t *testing.T) {
		inner := NewNodeNotFoundError("n1")
		got := NewInternalServerError("store failed", fmt.Errorf("get: %w", inner))
		assert.Same(t, inner, got)
		assert.True(t, IsEntityNotFoundError(got))
		assert.Equal(t, "n1", got.NodeID)
	})
}

func TestToRegistryError(t *testing.T) {
	t.Run("registry_error", func(t *testing.T) {
		e := NewBadParameterError("status", "bad", nil)
		got := ToRegistryError(fmt.Errorf("update: %w", e))
		require.NotNil(t, got)
		assert.Same(t, e, got)
	})
	t.Run("ordinary_error", func(t *testing.T) {
		e := errors.New("plain")
		assert.Nil(t, ToRegistryError(e))
		assert.False(t, IsEntityNotFoundError(e))
		assert.False(t, IsInternalServerError(nil))
	})
}
