// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package lru

import (
	"fmt"
	"reflect"

	"github.com/luxfi/lrucache"
)

var (
	errNilKey   = fmt.Errorf("%w: nil key", lrucache.ErrInvalidArgument)
	errNilValue = fmt.Errorf("%w: nil value", lrucache.ErrInvalidArgument)
)

// nillable reports whether values of type T can be nil.
func nillable[T any]() bool {
	switch reflect.TypeFor[T]().Kind() {
	case reflect.Chan, reflect.Func, reflect.Interface, reflect.Map,
		reflect.Pointer, reflect.Slice, reflect.UnsafePointer:
		return true
	default:
		return false
	}
}

// isNil reports whether v is nil. An interface holding a typed nil pointer
// counts as nil.
func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Chan, reflect.Func, reflect.Interface, reflect.Map,
		reflect.Pointer, reflect.Slice, reflect.UnsafePointer:
		return rv.IsNil()
	default:
		return false
	}
}
