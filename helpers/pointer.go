// Package helpers holds small generic utilities shared by the registry and client trees.
package helpers

import "reflect"

// Ptr returns a pointer whose value is v.
func Ptr[T any](v T) *T {
	return &v
}

// Value is like *p but it returns the zero value if p is nil.
func Value[T any](p *T) T {
	if p == nil {
		var zero T
		return zero
	}
	return *p
}

// StrPanic panics with panicMessage if p is empty (no TrimSpace, only p == "" is checked); otherwise returns p.
// Used for fail-fast validation of required constructor strings (registry base URL, node URL, etc.).
//
// Called from constructors such as adapters.RegistryHTTP and probe.HTTPProber.
func StrPanic(p string, panicMessage string) string {
	if p == "" {
		panic(panicMessage)
	}
	return p
}

// NilPanic panics with panicMessage if v is nil (nil interface, pointer, slice, map, chan, func; typed nils
// are detected via reflect); otherwise returns v with its static type intact.
//
// Called from every constructor that takes a required dependency (store, prober, logger, registry client).
func NilPanic[T any](v T, panicMessage string) T {
	if isNil(v) {
		panic(panicMessage)
	}
	return v
}

// isNil returns true if v is nil or a nil pointer/slice/map/chan/func/interface.
func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Slice, reflect.Map, reflect.Chan, reflect.Func, reflect.Interface:
		return rv.IsNil()
	default:
		return false
	}
}
