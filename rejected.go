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

// RejectedPromise is a promise that is already rejected at construction.
// It is immutable: it cannot be resolved, re-rejected to a different
// reason, or cancelled.
type RejectedPromise struct {
	reason any
	queue  *TaskQueue
}

var _ Thenable = (*RejectedPromise)(nil)

// NewRejected returns a promise rejected with reason. It returns
// ErrNestedPromise when reason is itself promise-like; use RejectionFor
// to adopt another promise instead.
func NewRejected(reason any, opts ...Option) (*RejectedPromise, error) {
	if _, ok := reason.(Thenable); ok {
		return nil, ErrNestedPromise
	}
	cfg := resolvePromiseOptions(opts)
	return &RejectedPromise{reason: reason, queue: cfg.queue}, nil
}

func (r *RejectedPromise) taskQueue() *TaskQueue {
	if r.queue != nil {
		return r.queue
	}
	return Queue()
}

// State returns Rejected.
func (r *RejectedPromise) State() State {
	return Rejected
}

// Resolve always returns ErrAlreadySettled.
func (r *RejectedPromise) Resolve(value any) error {
	return ErrAlreadySettled
}

// Reject is a no-op when reason matches the rejection reason, and
// returns ErrAlreadySettled otherwise.
func (r *RejectedPromise) Reject(reason any) error {
	if sameOutcome(r.reason, reason) {
		return nil
	}
	return ErrAlreadySettled
}

// Then returns the receiver unchanged when onRejected is nil, since the
// rejection would pass through a downstream promise untouched anyway.
// Otherwise it queues a single task that invokes onRejected and settles
// the returned downstream promise from its outcome, which is how a
// rejection is recovered from.
func (r *RejectedPromise) Then(onFulfilled OnFulfilled, onRejected OnRejected) Thenable {
	if onRejected == nil {
		return r
	}

	q := r.taskQueue()
	d := New(
		WithQueue(q),
		WithWaitFunc(func() error {
			q.Run()
			return nil
		}),
	)
	reason := r.reason
	q.Add(func() {
		if d.state == Pending {
			deliver(d, onRejected, reason, false)
		}
	})
	return d
}

// Otherwise is shorthand for Then(nil, onRejected).
func (r *RejectedPromise) Otherwise(onRejected OnRejected) Thenable {
	return r.Then(nil, onRejected)
}

// Wait never blocks. With unwrap true it returns the rejection reason as
// an error via ExceptionFor, otherwise the receiver.
func (r *RejectedPromise) Wait(unwrap bool) (any, error) {
	if unwrap {
		return nil, ExceptionFor(r.reason)
	}
	return r, nil
}

// Cancel is a no-op.
func (r *RejectedPromise) Cancel() {}
