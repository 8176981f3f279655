// Copyright 2026 The promises Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//    http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package promises

// OnFulfilled is a fulfillment handler. It receives the settled value and
// its outcome settles the downstream promise: the returned value fulfills
// it, a non-nil error rejects it.
//
// Returning a Thenable as the value makes the downstream promise adopt
// its eventual outcome instead.
type OnFulfilled func(value any) (any, error)

// OnRejected is a rejection handler. It receives the rejection reason and
// its outcome settles the downstream promise the same way an OnFulfilled
// handler does, which is how a rejection is recovered from.
type OnRejected func(reason any) (any, error)

// Thenable is any value that can have settlement handlers attached to it.
// It is the promise-like side of the package's value model: everything
// entering the promise machinery is either a Thenable or a plain value,
// and PromiseFor is the single conversion boundary between the two.
//
// The concrete implementations are Promise, FulfilledPromise,
// RejectedPromise, and Coroutine.
type Thenable interface {
	// Then attaches handlers for the fulfillment and rejection outcomes,
	// either of which may be nil, and returns the downstream promise.
	// Handlers are invoked through the task queue, never synchronously.
	Then(onFulfilled OnFulfilled, onRejected OnRejected) Thenable

	// Otherwise is shorthand for Then(nil, onRejected).
	Otherwise(onRejected OnRejected) Thenable

	// State returns the current state. It is a pure read.
	State() State

	// Resolve fulfills the promise with value, or chains it when value is
	// itself a Thenable. It returns a non-nil error when the promise is
	// already settled to a different outcome.
	Resolve(value any) error

	// Reject settles the promise as rejected with reason. It returns a
	// non-nil error when the promise is already settled to a different
	// outcome.
	Reject(reason any) error

	// Wait blocks, cooperatively, until the promise settles.
	//
	// With unwrap true it returns the fulfillment value, or the rejection
	// reason converted to an error via ExceptionFor. With unwrap false it
	// returns the promise itself once settled.
	Wait(unwrap bool) (any, error)

	// Cancel makes a best-effort attempt to cancel a pending promise.
	// It is a no-op on a settled promise.
	Cancel()
}

// State is the settlement state of a promise.
type State int32

const (
	// the zero value must be Pending; settled variants never hold it.
	Pending State = iota
	Fulfilled
	Rejected
)

func (s State) String() string {
	switch s {
	case Pending:
		return "pending"
	case Fulfilled:
		return "fulfilled"
	case Rejected:
		return "rejected"
	default:
		return "<unknown>"
	}
}
