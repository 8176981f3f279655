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
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPromiseFor(t *testing.T) {
	t.Run("promise-like values pass through unchanged", func(t *testing.T) {
		p := New(WithQueue(NewTaskQueue()))
		assert.Same(t, p, PromiseFor(p))
	})

	t.Run("plain values become fulfilled promises", func(t *testing.T) {
		p := PromiseFor("value")
		assert.Equal(t, Fulfilled, p.State())

		v, err := p.Wait(true)
		require.NoError(t, err)
		assert.Equal(t, "value", v)
	})

	t.Run("nil becomes a fulfilled promise holding nil", func(t *testing.T) {
		p := PromiseFor(nil)
		assert.Equal(t, Fulfilled, p.State())

		v, err := p.Wait(true)
		require.NoError(t, err)
		assert.Nil(t, v)
	})
}

func TestRejectionFor(t *testing.T) {
	t.Run("promise-like values pass through unchanged", func(t *testing.T) {
		p := New(WithQueue(NewTaskQueue()))
		assert.Same(t, p, RejectionFor(p))
	})

	t.Run("plain values become rejected promises", func(t *testing.T) {
		p := RejectionFor("bad")
		assert.Equal(t, Rejected, p.State())

		_, err := p.Wait(true)
		var re *RejectionError
		require.ErrorAs(t, err, &re)
		assert.Equal(t, "bad", re.Reason)
	})
}

func TestExceptionFor(t *testing.T) {
	t.Run("errors pass through unchanged", func(t *testing.T) {
		reason := errors.New("went wrong")
		assert.Same(t, reason, ExceptionFor(reason))
	})

	t.Run("non-errors are wrapped", func(t *testing.T) {
		err := ExceptionFor("bad")
		var re *RejectionError
		require.ErrorAs(t, err, &re)
		assert.Equal(t, "bad", re.Reason)
		assert.Contains(t, err.Error(), "bad")
	})
}

func TestIsPredicates(t *testing.T) {
	q := NewTaskQueue()

	pending := New(WithQueue(q))
	assert.True(t, IsPending(pending))
	assert.False(t, IsSettled(pending))
	assert.False(t, IsFulfilled(pending))
	assert.False(t, IsRejected(pending))

	fulfilled, err := NewFulfilled("v", WithQueue(q))
	require.NoError(t, err)
	assert.False(t, IsPending(fulfilled))
	assert.True(t, IsSettled(fulfilled))
	assert.True(t, IsFulfilled(fulfilled))
	assert.False(t, IsRejected(fulfilled))

	rejected, err := NewRejected("r", WithQueue(q))
	require.NoError(t, err)
	assert.False(t, IsPending(rejected))
	assert.True(t, IsSettled(rejected))
	assert.False(t, IsFulfilled(rejected))
	assert.True(t, IsRejected(rejected))
}

func TestWaitAll(t *testing.T) {
	t.Run("no promises", func(t *testing.T) {
		assert.False(t, WaitAll())
	})

	t.Run("mixed outcomes", func(t *testing.T) {
		q := NewTaskQueue()

		var p1 *Promise
		p1 = New(WithQueue(q), WithWaitFunc(func() error {
			return p1.Resolve("a")
		}))
		var p2 *Promise
		p2 = New(WithQueue(q), WithWaitFunc(func() error {
			return p2.Reject(errors.New("b"))
		}))

		assert.True(t, WaitAll(p1, p2))
		assert.True(t, IsFulfilled(p1))
		assert.True(t, IsRejected(p2))
	})
}
