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
	"sync"

	"github.com/joeycumines/logiface"
)

// TaskQueue is an ordered FIFO store of zero-argument deferred actions.
// All promise handler invocation is routed through a TaskQueue, which is
// what guarantees asynchronous, stack-safe delivery: a handler runs on a
// later Run of the queue, never inside the frame that registered it.
//
// A TaskQueue is not safe for concurrent use; see the package comment.
type TaskQueue struct {
	tasks  []func()
	logger *logiface.Logger[logiface.Event]
}

// NewTaskQueue returns a new, empty TaskQueue.
func NewTaskQueue(opts ...QueueOption) *TaskQueue {
	cfg := resolveQueueOptions(opts)
	return &TaskQueue{logger: cfg.logger}
}

// IsEmpty reports whether the queue holds no pending tasks.
func (q *TaskQueue) IsEmpty() bool {
	return len(q.tasks) == 0
}

// Add appends a task to the tail of the queue. It never fails.
func (q *TaskQueue) Add(task func()) {
	q.tasks = append(q.tasks, task)
	q.logger.Trace().
		Int("depth", len(q.tasks)).
		Log("task queued")
}

// Run removes and invokes the head task until the queue is empty. Tasks
// enqueued by a running task are drained within the same call. Calling
// Run from inside a task is safe; the nested call simply continues the
// drain and the outer call finds the queue empty.
func (q *TaskQueue) Run() {
	var ran int
	for len(q.tasks) > 0 {
		task := q.tasks[0]
		q.tasks[0] = nil
		q.tasks = q.tasks[1:]
		ran++
		task()
	}
	if ran > 0 {
		q.logger.Debug().
			Int("tasks", ran).
			Log("queue drained")
	}
}

// the default queue is created on first use, and is deliberately not
// drained at process exit. Hosts drain it as part of their own shutdown.
var defaultQueue = sync.OnceValue(func() *TaskQueue {
	return NewTaskQueue()
})

// Queue returns the shared process-wide TaskQueue, creating it on first
// use. Promises constructed without WithQueue defer their handler
// invocation through this instance.
func Queue() *TaskQueue {
	return defaultQueue()
}
