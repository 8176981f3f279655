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

import (
	"fmt"
	"reflect"
)

// Promise is the general, mutable promise: it starts pending, collects
// waiter registrations, and transitions exactly once to Fulfilled or
// Rejected. The zero value is not usable; construct with New.
type Promise struct {
	// state transitions exactly once out of Pending, and the matching
	// payload field becomes immutable at that point.
	state  State
	value  any
	reason any

	// waiters registered while pending, consumed exactly once at the
	// moment of transition, in registration order.
	handlers []waiter

	// promises this one is chained onto; pumped by Wait while no wait
	// function is present.
	waitList []Thenable

	waitFn   func() error
	cancelFn func()

	queue *TaskQueue
}

var _ Thenable = (*Promise)(nil)

// waiter is one (onFulfilled, onRejected, downstream) registration.
type waiter struct {
	onFulfilled OnFulfilled
	onRejected  OnRejected
	downstream  *Promise
}

// New returns a new pending Promise.
func New(opts ...Option) *Promise {
	cfg := resolvePromiseOptions(opts)
	return &Promise{
		queue:    cfg.queue,
		waitFn:   cfg.waitFn,
		cancelFn: cfg.cancelFn,
	}
}

// State returns the current state of the promise.
func (p *Promise) State() State {
	return p.state
}

// Resolve fulfills the promise with value.
//
// When value is itself a Thenable the promise chains onto it instead: it
// stays pending until value settles, and then adopts value's outcome, so
// a fulfillment value is never an unsettled promise.
//
// Resolving an already-fulfilled promise with the same value is a no-op.
// Any other call on a settled promise returns ErrAlreadySettled;
// resolving a promise with itself returns ErrSelfResolution.
func (p *Promise) Resolve(value any) error {
	if inner, ok := value.(Thenable); ok {
		if inner == Thenable(p) {
			return ErrSelfResolution
		}
		if p.state != Pending {
			return fmt.Errorf("%w: cannot resolve a %s promise with another promise", ErrAlreadySettled, p.state)
		}
		p.chain(inner)
		return nil
	}
	return p.settle(Fulfilled, value)
}

// Reject settles the promise as rejected with reason.
//
// Rejecting an already-rejected promise with the same reason is a no-op.
// Any other call on a settled promise returns ErrAlreadySettled.
func (p *Promise) Reject(reason any) error {
	return p.settle(Rejected, reason)
}

// chain makes p adopt inner's eventual outcome.
func (p *Promise) chain(inner Thenable) {
	p.waitList = append(p.waitList, inner)
	inner.Then(func(v any) (any, error) {
		_ = p.Resolve(v)
		return nil, nil
	}, func(r any) (any, error) {
		_ = p.Reject(r)
		return nil, nil
	})
}

// settle performs the write-once transition out of Pending and fans the
// outcome out to the registered waiters, through the queue. The state
// check and the transition happen in the same frame, so a handler
// running during a queue drain cannot re-settle a terminal promise.
func (p *Promise) settle(target State, payload any) error {
	if p.state != Pending {
		if p.state == target && sameOutcome(p.outcome(), payload) {
			return nil
		}
		return fmt.Errorf("%w: the promise is already %s", ErrAlreadySettled, p.state)
	}

	p.state = target
	if target == Fulfilled {
		p.value = payload
	} else {
		p.reason = payload
	}

	waiters := p.handlers
	p.handlers = nil
	p.waitList = nil
	p.waitFn = nil
	p.cancelFn = nil

	p.queue.logger.Trace().
		Stringer("state", target).
		Int("waiters", len(waiters)).
		Log("promise settled")

	for _, w := range waiters {
		p.scheduleWaiter(w)
	}
	return nil
}

// outcome returns the settled payload; only meaningful on a settled
// promise.
func (p *Promise) outcome() any {
	if p.state == Fulfilled {
		return p.value
	}
	return p.reason
}

// scheduleWaiter queues the task that delivers p's settlement to one
// waiter. The task re-checks the downstream promise on invocation, since
// it may have been settled or cancelled while queued.
func (p *Promise) scheduleWaiter(w waiter) {
	p.queue.Add(func() {
		if w.downstream.state != Pending {
			return
		}
		if p.state == Fulfilled {
			deliver(w.downstream, w.onFulfilled, p.value, true)
		} else {
			deliver(w.downstream, w.onRejected, p.reason, false)
		}
	})
}

// Then registers handlers for the settlement of this promise and returns
// the downstream promise they settle.
//
// While this promise is pending the registration is appended to its
// waiter list; once it settles, exactly one of the handlers is invoked
// via the queue. On an already-settled promise the behavior is that of
// the matching settled variant: a single queued task, or the settled
// promise itself when the relevant handler is absent.
func (p *Promise) Then(onFulfilled OnFulfilled, onRejected OnRejected) Thenable {
	switch p.state {
	case Pending:
		d := New(
			WithQueue(p.queue),
			WithWaitFunc(func() error {
				_, err := p.Wait(false)
				return err
			}),
			WithCancelFunc(p.Cancel),
		)
		p.handlers = append(p.handlers, waiter{onFulfilled, onRejected, d})
		return d
	case Fulfilled:
		f := &FulfilledPromise{value: p.value, queue: p.queue}
		return f.Then(onFulfilled, onRejected)
	default:
		r := &RejectedPromise{reason: p.reason, queue: p.queue}
		return r.Then(onFulfilled, onRejected)
	}
}

// Otherwise is shorthand for Then(nil, onRejected).
func (p *Promise) Otherwise(onRejected OnRejected) Thenable {
	return p.Then(nil, onRejected)
}

// Wait blocks, cooperatively, until the promise settles.
//
// A pending promise is driven by its wait function when one was supplied
// at construction, or by waiting on the promises it is chained onto.
// When neither exists the promise is rejected with ErrCannotWait, and
// when the wait mechanism runs without producing settlement it is
// rejected with ErrWaitDidNotSettle.
//
// With unwrap true the settled value is returned, or the rejection
// reason as an error via ExceptionFor. With unwrap false the promise
// itself is returned.
func (p *Promise) Wait(unwrap bool) (any, error) {
	if err := p.waitIfPending(); err != nil {
		return nil, err
	}
	if !unwrap {
		return p, nil
	}
	if p.state == Fulfilled {
		return p.value, nil
	}
	return nil, ExceptionFor(p.reason)
}

func (p *Promise) waitIfPending() error {
	if p.state != Pending {
		return nil
	}

	switch {
	case p.waitFn != nil:
		if err := p.invokeWaitFn(); err != nil {
			return err
		}
	case len(p.waitList) > 0:
		for _, t := range p.waitList {
			_, _ = t.Wait(false)
		}
	default:
		_ = p.Reject(ErrCannotWait)
	}

	p.queue.Run()

	if p.state == Pending {
		_ = p.Reject(ErrWaitDidNotSettle)
		p.queue.Run()
	}
	return nil
}

// invokeWaitFn runs the wait function once. An error (or panic) while
// the promise is still pending becomes its rejection reason; after
// settlement it is surfaced to the Wait caller instead.
func (p *Promise) invokeWaitFn() error {
	err := runWaitFn(p.waitFn)
	if err == nil {
		return nil
	}
	if p.state == Pending {
		_ = p.Reject(err)
		return nil
	}
	return err
}

func runWaitFn(fn func() error) (err error) {
	defer func() {
		if v := recover(); v != nil {
			err = PanicError{V: v}
		}
	}()
	return fn()
}

// Cancel makes a best-effort attempt to cancel the promise. The
// cancellation function, when present, runs first (a panic from it
// becomes the rejection reason); a promise still pending afterwards is
// rejected with ErrPromiseCancelled. Settled promises are left alone, so
// repeated calls are no-ops.
func (p *Promise) Cancel() {
	if p.state != Pending {
		return
	}

	p.waitFn = nil
	p.waitList = nil

	if fn := p.cancelFn; fn != nil {
		p.cancelFn = nil
		if err := runCancelFn(fn); err != nil {
			_ = p.Reject(err)
		}
	}

	if p.state == Pending {
		_ = p.Reject(ErrPromiseCancelled)
	}
}

func runCancelFn(fn func()) (err error) {
	defer func() {
		if v := recover(); v != nil {
			err = PanicError{V: v}
		}
	}()
	fn()
	return nil
}

// deliver settles d from the outcome of cb applied to payload. A nil cb
// passes the settlement through unchanged; fulfilled reports which side
// of the settlement payload represents.
func deliver(d *Promise, cb func(any) (any, error), payload any, fulfilled bool) {
	if cb == nil {
		if fulfilled {
			_ = d.Resolve(payload)
		} else {
			_ = d.Reject(payload)
		}
		return
	}
	out, err := runHandler(cb, payload)
	if err != nil {
		_ = d.Reject(err)
		return
	}
	_ = d.Resolve(out)
}

// runHandler invokes a user-supplied handler, converting a panic into an
// error. This is the single boundary at which handler failures are
// captured, so they become downstream rejections instead of unwinding
// whichever code happened to be draining the queue.
func runHandler(cb func(any) (any, error), payload any) (out any, err error) {
	defer func() {
		if v := recover(); v != nil {
			out, err = nil, PanicError{V: v}
		}
	}()
	return cb(payload)
}

// sameOutcome reports whether two settlement payloads are the same,
// treating values of uncomparable types as never equal.
func sameOutcome(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	ta, tb := reflect.TypeOf(a), reflect.TypeOf(b)
	if ta != tb || !ta.Comparable() {
		return false
	}
	return a == b
}
