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

func TestNewRejected(t *testing.T) {
	t.Run("basic", func(t *testing.T) {
		reason := errors.New("went wrong")
		r, err := NewRejected(reason, WithQueue(NewTaskQueue()))
		require.NoError(t, err)
		assert.Equal(t, Rejected, r.State())

		_, err = r.Wait(true)
		assert.ErrorIs(t, err, reason)
	})

	t.Run("promise payload is refused", func(t *testing.T) {
		q := NewTaskQueue()
		inner, err := NewRejected("x", WithQueue(q))
		require.NoError(t, err)

		_, err = NewRejected(inner, WithQueue(q))
		assert.ErrorIs(t, err, ErrNestedPromise)
	})

	t.Run("non-error reason unwraps as RejectionError", func(t *testing.T) {
		r, err := NewRejected(404, WithQueue(NewTaskQueue()))
		require.NoError(t, err)

		_, err = r.Wait(true)
		var re *RejectionError
		require.ErrorAs(t, err, &re)
		assert.Equal(t, 404, re.Reason)
	})
}

func TestRejectedPromise_settlement(t *testing.T) {
	r, err := NewRejected("reason", WithQueue(NewTaskQueue()))
	require.NoError(t, err)

	assert.NoError(t, r.Reject("reason"), "same reason is a no-op")
	assert.ErrorIs(t, r.Reject("other"), ErrAlreadySettled)
	assert.ErrorIs(t, r.Resolve("value"), ErrAlreadySettled)

	r.Cancel()
	assert.Equal(t, Rejected, r.State())
}

func TestRejectedPromise_Then(t *testing.T) {
	t.Run("nil rejection handler returns the receiver", func(t *testing.T) {
		q := NewTaskQueue()
		r, err := NewRejected("reason", WithQueue(q))
		require.NoError(t, err)

		d := r.Then(func(v any) (any, error) { return v, nil }, nil)
		assert.Same(t, r, d)
		assert.True(t, q.IsEmpty(), "no task may be queued for a pass-through")
	})

	t.Run("recovery fulfills the downstream", func(t *testing.T) {
		q := NewTaskQueue()
		r, err := NewRejected("bad", WithQueue(q))
		require.NoError(t, err)

		var ran bool
		d := r.Otherwise(func(reason any) (any, error) {
			ran = true
			return "recovered from " + reason.(string), nil
		})

		assert.False(t, ran, "handler must not run at Then time")
		q.Run()
		assert.True(t, ran)

		v, err := d.Wait(true)
		require.NoError(t, err)
		assert.Equal(t, "recovered from bad", v)
	})

	t.Run("handler error re-rejects the downstream", func(t *testing.T) {
		q := NewTaskQueue()
		r, err := NewRejected("bad", WithQueue(q))
		require.NoError(t, err)

		boom := errors.New("still bad")
		d := r.Otherwise(func(reason any) (any, error) {
			return nil, boom
		})
		q.Run()

		_, err = d.Wait(true)
		assert.ErrorIs(t, err, boom)
	})
}

func TestRejectedPromise_Wait(t *testing.T) {
	r, err := NewRejected("reason", WithQueue(NewTaskQueue()))
	require.NoError(t, err)

	got, err := r.Wait(false)
	require.NoError(t, err)
	assert.Same(t, r, got)
}
