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

// WaitAll waits for all the provided promises to settle then returns
// true, or returns false if no promises are provided. Rejections are not
// unwrapped; inspect each promise afterwards.
func WaitAll(proms ...Thenable) (waited bool) {
	if len(proms) == 0 {
		return false
	}
	for _, p := range proms {
		_, _ = p.Wait(false)
	}
	return true
}
