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

import "fmt"

func ExamplePromise() {
	q := NewTaskQueue()
	p := New(WithQueue(q))

	p.Then(func(v any) (any, error) {
		fmt.Println("delivered:", v)
		return nil, nil
	}, nil)

	_ = p.Resolve("hello")
	fmt.Println("resolved")

	q.Run()

	// Output:
	// resolved
	// delivered: hello
}

func ExamplePromise_Then() {
	q := NewTaskQueue()
	p := New(WithQueue(q))

	d := p.
		Then(func(v any) (any, error) {
			return v.(int) * 2, nil
		}, nil).
		Then(func(v any) (any, error) {
			return v.(int) + 1, nil
		}, nil)

	_ = p.Resolve(20)
	q.Run()

	v, _ := d.Wait(true)
	fmt.Println(v)

	// Output:
	// 41
}

func ExampleNewCoroutine() {
	q := NewTaskQueue()

	gen := NewGenerator(func(yield Yield) (any, error) {
		v, err := yield("a")
		if err != nil {
			return nil, err
		}
		v, err = yield(v.(string) + "b")
		if err != nil {
			return nil, err
		}
		return v.(string) + "c", nil
	})

	c := NewCoroutine(gen, WithQueue(q))

	v, _ := c.Wait(true)
	fmt.Println(v)

	// Output:
	// abc
}
