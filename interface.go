// Copyright 2026 The atmos Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package atmos

import (
	"context"
)

// Retryer is the interface that wraps the basic Retry method.
//
// Retry runs the named operation until it succeeds or the retry
// strategy gives up, and returns the final error, if any. Policy
// implements the Retryer interface, and any other implementation must
// behave substantially the same as Policy.Retry. Use Retryer for
// interop across library boundaries, i.e. when code should accept a
// retry strategy without depending on how it was built.
type Retryer interface {
	Retry(ctx context.Context, name string, op Operation) error
}

// AsyncRetryer is the interface that wraps the basic RetryAsync
// method.
//
// RetryAsync starts the named operation retrying on its own goroutine
// and returns a future for its outcome. Policy implements the
// AsyncRetryer interface.
type AsyncRetryer interface {
	RetryAsync(ctx context.Context, name string, op Operation) *Future[struct{}]
}

var (
	_ Retryer      = Policy{}
	_ AsyncRetryer = Policy{}
)
