// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package lrucache

import "errors"

// ErrInvalidArgument is returned, possibly wrapped, when a cache is built
// with a non-positive capacity or an operation receives a nil key or value.
// The cache is never modified by a call that fails with it.
var ErrInvalidArgument = errors.New("invalid argument")
