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

// IsPending returns true, only if the promise has not settled yet.
func IsPending(t Thenable) bool {
	return t.State() == Pending
}

// IsFulfilled returns true, only if the promise settled successfully.
func IsFulfilled(t Thenable) bool {
	return t.State() == Fulfilled
}

// IsRejected returns true, only if the promise settled with a failure.
func IsRejected(t Thenable) bool {
	return t.State() == Rejected
}

// IsSettled returns true, only if the promise has left the pending
// state.
func IsSettled(t Thenable) bool {
	return t.State() != Pending
}
