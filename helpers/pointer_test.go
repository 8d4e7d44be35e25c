package helpers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPtr(t *testing.T) {
	s := "node-1"
	p := Ptr(s)
	require.NotNil(t, p)
	assert.Equal(t, s, *p)
}

func TestValue(t *testing.T) {
	x := int64(150)
	assert.Equal(t, int64(150), Value(&x))
	assert.Equal(t, 0, Value[int](nil))
	assert.Equal(t, "", Value[string](nil))
}

func TestStrPanic(t *testing.T) {
	t.Run("empty_panics", func(t *testing.T) {
		assert.PanicsWithValue(t, "url is required", func() {
			StrPanic("", "url is required")
		})
	})
	t.Run("non_empty_returns_value", func(t *testing.T) {
		got := StrPanic("http://registry:8080", "url is required")
		require.Equal(t, "http://registry:8080", got)
	})
}

func TestNilPanic(t *testing.T) {
	tests := []struct {
		name string
		v    any
	}{
		{name: "nil_interface", v: nil},
		{name: "nil_slice", v: []byte(nil)},
		{name: "nil_map", v: map[string]int(nil)},
		{name: "nil_pointer", v: (*int)(nil)},
		{name: "nil_func", v: (func())(nil)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.PanicsWithValue(t, "dependency is required", func() {
				NilPanic(tt.v, "dependency is required")
			})
		})
	}
	t.Run("non_nil_returns_value", func(t *testing.T) {
		got := NilPanic([]byte("ok"), "slice is required")
		require.Equal(t, []byte("ok"), got)
	})
	t.Run("zero_int_is_not_nil", func(t *testing.T) {
		assert.NotPanics(t, func() { NilPanic(0, "int is required") })
	})
}
