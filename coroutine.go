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

// Coroutine drives a Generator whose yielded items are treated as
// promises: each yielded item is normalized via the promise boundary,
// the coroutine suspends until it settles, then resumes the generator
// with the fulfillment value (or injects the rejection reason as an
// error via Throw). The generator's completion value fulfills the
// coroutine, and an error it raises or leaks rejects it.
//
// A Coroutine is itself a Thenable, delegating to its result promise.
type Coroutine struct {
	gen     Generator
	current Thenable
	result  *Promise
	queue   *TaskQueue
}

var _ Thenable = (*Coroutine)(nil)

// NewCoroutine starts gen and returns the coroutine driving it. The
// generator is advanced to its first suspension point synchronously; a
// generator that completes (or fails) on its very first step settles the
// coroutine immediately, without touching the task queue.
func NewCoroutine(gen Generator, opts ...Option) *Coroutine {
	cfg := resolvePromiseOptions(opts)
	c := &Coroutine{gen: gen, queue: cfg.queue}
	c.result = New(
		WithQueue(cfg.queue),
		WithWaitFunc(c.waitOutstanding),
	)
	step, err := gen.Next(nil)
	c.advance(step, err)
	return c
}

// advance consumes one generator step: an error rejects the result,
// completion fulfills it with the final value, and a yielded item
// becomes the next outstanding sub-promise.
func (c *Coroutine) advance(step Step, err error) {
	c.queue.logger.Trace().
		Bool("done", step.Done).
		Err(err).
		Log("coroutine step")

	if err != nil {
		_ = c.result.Reject(err)
		return
	}
	if step.Done {
		_ = c.result.Resolve(step.Value)
		return
	}
	c.next(step.Value)
}

func (c *Coroutine) next(yielded any) {
	// the outstanding promise is the downstream of Then, not the yielded
	// promise itself: waiting on it pumps whichever queue carries the
	// continuation, so waitOutstanding makes progress even when the
	// yielded promise was already settled.
	c.current = promiseFor(c.queue, yielded).Then(c.onSuccess, c.onFailure)
}

func (c *Coroutine) onSuccess(value any) (any, error) {
	c.current = nil
	step, err := c.gen.Next(value)
	c.advance(step, err)
	return nil, nil
}

func (c *Coroutine) onFailure(reason any) (any, error) {
	c.current = nil
	step, err := c.gen.Throw(ExceptionFor(reason))
	c.advance(step, err)
	return nil, nil
}

// waitOutstanding pumps the outstanding sub-promise until the generator
// runs out of steps. Each completed wait resumes the generator, which
// either installs the next outstanding promise or settles the result.
func (c *Coroutine) waitOutstanding() error {
	for c.current != nil {
		cur := c.current
		if _, err := cur.Wait(false); err != nil {
			return err
		}
		if c.current == cur {
			// settled without resuming the generator (cancelled);
			// nothing left to pump.
			break
		}
	}
	return nil
}

// State reports the state of the coroutine's result promise.
func (c *Coroutine) State() State {
	return c.result.State()
}

// Then registers handlers on the coroutine's result promise.
func (c *Coroutine) Then(onFulfilled OnFulfilled, onRejected OnRejected) Thenable {
	return c.result.Then(onFulfilled, onRejected)
}

// Otherwise registers a rejection handler on the coroutine's result
// promise.
func (c *Coroutine) Otherwise(onRejected OnRejected) Thenable {
	return c.result.Otherwise(onRejected)
}

// Resolve settles the coroutine's result promise directly, out from
// under the generator. Prefer letting the generator complete.
func (c *Coroutine) Resolve(value any) error {
	return c.result.Resolve(value)
}

// Reject settles the coroutine's result promise directly with a failure.
func (c *Coroutine) Reject(reason any) error {
	return c.result.Reject(reason)
}

// Wait blocks until the coroutine settles, pumping the outstanding
// sub-promise (and the task queue) as needed.
func (c *Coroutine) Wait(unwrap bool) (any, error) {
	if _, err := c.result.Wait(false); err != nil {
		return nil, err
	}
	if !unwrap {
		return c, nil
	}
	return c.result.Wait(true)
}

// Cancel cancels the outstanding sub-promise, tears down the generator
// when it supports Stop, and cancels the result promise. It is a no-op
// on a settled coroutine.
func (c *Coroutine) Cancel() {
	if c.result.State() != Pending {
		return
	}
	if cur := c.current; cur != nil {
		cur.Cancel()
	}
	if s, ok := c.gen.(interface{ Stop() }); ok {
		s.Stop()
	}
	c.result.Cancel()
}
