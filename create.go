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

// PromiseFor normalizes v into a promise: a Thenable is returned as is,
// anything else is wrapped as an already-fulfilled promise on the
// default queue. This is the single conversion boundary between plain
// values and promise-like values.
func PromiseFor(v any) Thenable {
	return promiseFor(Queue(), v)
}

func promiseFor(q *TaskQueue, v any) Thenable {
	if t, ok := v.(Thenable); ok {
		return t
	}
	return &FulfilledPromise{value: v, queue: q}
}

// RejectionFor normalizes reason into a rejected promise: a Thenable is
// returned as is (it is already carrying its own outcome), anything else
// is wrapped as an already-rejected promise on the default queue.
func RejectionFor(reason any) Thenable {
	if t, ok := reason.(Thenable); ok {
		return t
	}
	return &RejectedPromise{reason: reason, queue: Queue()}
}

// ExceptionFor normalizes an arbitrary rejection reason into an error:
// an error is returned as is, anything else is wrapped in a
// *RejectionError.
func ExceptionFor(reason any) error {
	if err, ok := reason.(error); ok {
		return err
	}
	return &RejectionError{Reason: reason}
}
