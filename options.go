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
	"github.com/joeycumines/logiface"
)

// promiseOptions holds configuration applied at promise creation.
type promiseOptions struct {
	queue    *TaskQueue
	waitFn   func() error
	cancelFn func()
}

// Option configures a Promise or a Coroutine at construction time.
type Option interface {
	applyPromise(*promiseOptions)
}

type optionImpl struct {
	applyPromiseFunc func(*promiseOptions)
}

func (o *optionImpl) applyPromise(opts *promiseOptions) {
	o.applyPromiseFunc(opts)
}

// WithQueue sets the TaskQueue that handler invocation is deferred
// through. The default is the process-wide queue returned by Queue().
func WithQueue(q *TaskQueue) Option {
	return &optionImpl{func(opts *promiseOptions) {
		opts.queue = q
	}}
}

// WithWaitFunc sets the wait function of a Promise: a zero-argument
// action that, when invoked by Wait, is expected to eventually drive the
// promise to settlement. An error returned while the promise is still
// pending rejects it with that error.
//
// Coroutines own their result promise's wait function; the option is
// ignored by NewCoroutine.
func WithWaitFunc(fn func() error) Option {
	return &optionImpl{func(opts *promiseOptions) {
		opts.waitFn = fn
	}}
}

// WithCancelFunc sets the cancellation function of a Promise, invoked by
// Cancel while the promise is pending. A panic raised by it becomes the
// rejection reason, wrapped in PanicError.
//
// Coroutines own their cancellation path; the option is ignored by
// NewCoroutine.
func WithCancelFunc(fn func()) Option {
	return &optionImpl{func(opts *promiseOptions) {
		opts.cancelFn = fn
	}}
}

// resolvePromiseOptions applies Option instances over the defaults.
// Nil options are skipped gracefully.
func resolvePromiseOptions(opts []Option) *promiseOptions {
	cfg := &promiseOptions{}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt.applyPromise(cfg)
	}
	if cfg.queue == nil {
		cfg.queue = Queue()
	}
	return cfg
}

// queueOptions holds configuration applied at TaskQueue creation.
type queueOptions struct {
	logger *logiface.Logger[logiface.Event]
}

// QueueOption configures a TaskQueue instance.
type QueueOption interface {
	applyQueue(*queueOptions)
}

type queueOptionImpl struct {
	applyQueueFunc func(*queueOptions)
}

func (o *queueOptionImpl) applyQueue(opts *queueOptions) {
	o.applyQueueFunc(opts)
}

// WithLogger sets the structured logger used for queue and scheduling
// diagnostics. A nil logger disables logging, which is the default.
func WithLogger(logger *logiface.Logger[logiface.Event]) QueueOption {
	return &queueOptionImpl{func(opts *queueOptions) {
		opts.logger = logger
	}}
}

func resolveQueueOptions(opts []QueueOption) *queueOptions {
	cfg := &queueOptions{}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt.applyQueue(cfg)
	}
	return cfg
}
