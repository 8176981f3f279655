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

// Step is the tagged outcome of advancing a Generator: either a yielded
// item (Done false) or completion with a final value (Done true).
type Step struct {
	Value any
	Done  bool
}

// Generator is a suspendable sequence of steps, the raw material of a
// Coroutine. Implementations may be explicit state machines; most users
// will use NewGenerator instead.
//
// A non-nil error from Next or Throw means the sequence raised (or
// leaked) that error and is finished.
type Generator interface {
	// Next resumes the sequence, delivering value at the current
	// suspension point, and returns the next yielded item or completion.
	// The first call starts the sequence; its value is discarded.
	Next(value any) (Step, error)

	// Throw resumes the sequence by raising err at the current
	// suspension point. A sequence that handles the error may yield
	// again or complete; one that does not returns err (or another
	// error) back.
	Throw(err error) (Step, error)
}

// Yield suspends a generator function, handing item to the driver. It
// returns the resumption value, or the error injected via Throw; a
// function that wants to handle injected failures inspects the error
// and continues, one that does not simply returns it.
type Yield func(item any) (any, error)

// funcGenerator adapts an ordinary function into a Generator by running
// it on its own goroutine in lock step with the driver: exactly one of
// the two sides is active at any time, so the pair still forms a single
// logical thread of control.
type funcGenerator struct {
	in   chan resumeMsg
	out  chan stepMsg
	done bool
}

type resumeMsg struct {
	value any
	err   error
	stop  bool
}

type stepMsg struct {
	step Step
	err  error
}

// stopSignal is the panic value used to unwind a stopped generator
// goroutine.
type stopSignal struct{}

// NewGenerator returns a Generator that runs fn. Each call of yield is a
// suspension point; fn's return value becomes the completion value, a
// non-nil returned error (or a panic, captured as PanicError) ends the
// sequence with that error.
//
// The generator goroutine is parked between steps. Callers that abandon
// a generator before completion must call Stop on it to release the
// goroutine; Coroutine.Cancel does this automatically.
func NewGenerator(fn func(yield Yield) (any, error)) Generator {
	g := &funcGenerator{
		in:  make(chan resumeMsg),
		out: make(chan stepMsg),
	}
	go g.run(fn)
	return g
}

func (g *funcGenerator) run(fn func(Yield) (any, error)) {
	// the first resume starts the sequence; its value is discarded since
	// no suspension point has been reached yet.
	if first := <-g.in; first.stop {
		return
	}

	var msg stepMsg
	stopped := false
	func() {
		defer func() {
			if v := recover(); v != nil {
				if _, ok := v.(stopSignal); ok {
					stopped = true
					return
				}
				msg = stepMsg{err: PanicError{V: v}}
			}
		}()
		v, err := fn(g.yield)
		if err != nil {
			msg = stepMsg{err: err}
		} else {
			msg = stepMsg{step: Step{Value: v, Done: true}}
		}
	}()
	if stopped {
		return
	}
	g.out <- msg
}

func (g *funcGenerator) yield(item any) (any, error) {
	g.out <- stepMsg{step: Step{Value: item}}
	r := <-g.in
	if r.stop {
		panic(stopSignal{})
	}
	return r.value, r.err
}

func (g *funcGenerator) Next(value any) (Step, error) {
	if g.done {
		return Step{Done: true}, nil
	}
	return g.resume(resumeMsg{value: value})
}

func (g *funcGenerator) Throw(err error) (Step, error) {
	if g.done {
		// nothing left to handle the error; hand it back uncaught.
		return Step{Done: true}, err
	}
	return g.resume(resumeMsg{err: err})
}

func (g *funcGenerator) resume(r resumeMsg) (Step, error) {
	g.in <- r
	m := <-g.out
	if m.err != nil || m.step.Done {
		g.done = true
	}
	return m.step, m.err
}

// Stop tears the generator goroutine down. It is safe to call on a
// completed or already-stopped generator.
func (g *funcGenerator) Stop() {
	if g.done {
		return
	}
	g.done = true
	g.in <- resumeMsg{stop: true}
}
