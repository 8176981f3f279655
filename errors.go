package promises

import (
	"errors"
	"fmt"
)

var (
	// ErrNestedPromise is returned when constructing a settled promise
	// variant with a payload that is itself promise-like.
	ErrNestedPromise = errors.New("promises: a settled promise cannot hold another promise")

	// ErrAlreadySettled is returned when resolving or rejecting a promise
	// that has already settled to a different outcome.
	ErrAlreadySettled = errors.New("promises: promise is already settled")

	// ErrSelfResolution is returned when resolving a promise with itself.
	ErrSelfResolution = errors.New("promises: cannot resolve a promise with itself")

	// ErrCannotWait is the rejection reason used when Wait is called on a
	// pending promise that has no wait function and no chained promises,
	// so nothing can drive it to settlement.
	ErrCannotWait = errors.New("promises: cannot wait on a promise that has no internal wait function")

	// ErrWaitDidNotSettle is the rejection reason used when the wait
	// function ran, the queue was drained, and the promise is still
	// pending.
	ErrWaitDidNotSettle = errors.New("promises: invoking the wait function did not settle the promise")

	// ErrPromiseCancelled is the rejection reason of a cancelled promise.
	ErrPromiseCancelled = errors.New("promises: promise has been cancelled")
)

// PanicError wraps a panic that was captured at a handler or generator
// invocation boundary and converted into a rejection reason.
type PanicError struct {
	// V is the value the panic was raised with.
	V any
}

func (e PanicError) Error() string {
	return fmt.Sprintf("promises: panic in promise handler: %v", e.V)
}

// Unwrap returns the panic value when it is itself an error.
func (e PanicError) Unwrap() error {
	if err, ok := e.V.(error); ok {
		return err
	}
	return nil
}

// RejectionError adapts a non-error rejection reason to the error
// interface. ExceptionFor produces it whenever a rejected promise is
// unwrapped and its reason is not already an error.
type RejectionError struct {
	// Reason is the rejection reason as it was passed to Reject.
	Reason any
}

func (e *RejectionError) Error() string {
	return fmt.Sprintf("promises: promise was rejected with reason: %v", e.Reason)
}
