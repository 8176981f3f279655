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

// FulfilledPromise is a promise that is already fulfilled at
// construction. It is immutable: it cannot be resolved to a different
// value, rejected, or cancelled.
type FulfilledPromise struct {
	value any
	queue *TaskQueue
}

var _ Thenable = (*FulfilledPromise)(nil)

// NewFulfilled returns a promise fulfilled with value. It returns
// ErrNestedPromise when value is itself promise-like; use Resolve on a
// pending Promise, or PromiseFor, to adopt another promise's outcome.
func NewFulfilled(value any, opts ...Option) (*FulfilledPromise, error) {
	if _, ok := value.(Thenable); ok {
		return nil, ErrNestedPromise
	}
	cfg := resolvePromiseOptions(opts)
	return &FulfilledPromise{value: value, queue: cfg.queue}, nil
}

func (f *FulfilledPromise) taskQueue() *TaskQueue {
	if f.queue != nil {
		return f.queue
	}
	return Queue()
}

// State returns Fulfilled.
func (f *FulfilledPromise) State() State {
	return Fulfilled
}

// Resolve is a no-op when value matches the fulfillment value, and
// returns ErrAlreadySettled otherwise.
func (f *FulfilledPromise) Resolve(value any) error {
	if sameOutcome(f.value, value) {
		return nil
	}
	return ErrAlreadySettled
}

// Reject always returns ErrAlreadySettled.
func (f *FulfilledPromise) Reject(reason any) error {
	return ErrAlreadySettled
}

// Then returns the receiver unchanged when onFulfilled is nil, since the
// settlement would pass through a downstream promise untouched anyway.
// Otherwise it queues a single task that invokes onFulfilled and settles
// the returned downstream promise from its outcome.
func (f *FulfilledPromise) Then(onFulfilled OnFulfilled, onRejected OnRejected) Thenable {
	if onFulfilled == nil {
		return f
	}

	q := f.taskQueue()
	d := New(
		WithQueue(q),
		WithWaitFunc(func() error {
			q.Run()
			return nil
		}),
	)
	value := f.value
	q.Add(func() {
		if d.state == Pending {
			deliver(d, onFulfilled, value, true)
		}
	})
	return d
}

// Otherwise returns the receiver unchanged: a fulfilled promise has no
// rejection to handle.
func (f *FulfilledPromise) Otherwise(onRejected OnRejected) Thenable {
	return f.Then(nil, onRejected)
}

// Wait never blocks. With unwrap true it returns the fulfillment value,
// otherwise the receiver.
func (f *FulfilledPromise) Wait(unwrap bool) (any, error) {
	if unwrap {
		return f.value, nil
	}
	return f, nil
}

// Cancel is a no-op.
func (f *FulfilledPromise) Cancel() {}
