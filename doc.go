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

// Package promises provides a Promises/A+-style deferred-computation
// primitive with single-threaded cooperative scheduling.
//
// A Thenable is a container for a value that may not exist yet. It has
// three states, and it can be in only one of them, at any time:
// Pending: the computation that corresponds to this promise has not
// settled yet.
// Fulfilled: the promise settled successfully, and holds a value.
// Rejected: the promise settled with a failure, and holds a reason.
//
// Once a promise leaves Pending it never changes state again, and its
// value or reason becomes immutable.
//
// General Notes:-
//
// * Handlers attached with Then or Otherwise never run synchronously
// inside the caller's stack frame. Every handler invocation is routed
// through a TaskQueue and happens on a later Run of that queue, in FIFO
// order relative to other queued work. This holds even for promises that
// are already settled at the time the handler is attached.
//
// * Then always returns a new downstream promise, settled from the
// outcome of the relevant handler: a normal return fulfills it, a non-nil
// error (or a captured panic) rejects it, and a missing handler passes
// the settlement through unchanged.
//
// * Resolving a promise with another promise chains them: the outer
// promise stays pending until the inner one settles, and then adopts its
// outcome. A fulfillment value is never itself an unsettled promise.
//
// * Wait cooperatively blocks until settlement, by pumping the promise's
// wait function (or the promises it is chained onto) and then draining
// the task queue. It fails when nothing can drive the promise to
// settlement.
//
// * Cancel is cooperative and advisory. It cannot interrupt a handler
// that is already running; it only prevents further propagation past an
// unsettled promise, rejecting it with ErrPromiseCancelled.
//
// Scheduling Notes:-
//
// * There is one process-wide default TaskQueue, created lazily by
// Queue(). Promises use it unless constructed with WithQueue. There is no
// implicit drain at process exit; hosts that park work on the default
// queue should call Queue().Run() as part of their shutdown sequence.
//
// * The package assumes a single logical thread of control. It is not
// safe to operate on the same queue or promises from multiple goroutines
// concurrently. The goroutine behind a generator created with
// NewGenerator runs in lock step with its driver, so at most one side is
// ever active.
//
// Coroutines:-
//
// * A Coroutine pumps a Generator, a suspendable sequence of steps that
// yields plain values or promises. At each suspension point the yielded
// item is normalized into a promise, and the sequence resumes with that
// promise's value once it settles, or has the failure injected into it as
// an error. The whole computation is observable as a single promise.
package promises
