// SPDX-License-Identifier: EPL-2.0

package audcut

// Task is a running export. It completes exactly once, with an Output or an
// error.
type Task struct {
	done chan struct{}
	out  *Output
	err  error
}

func newTask() *Task {
	return &Task{done: make(chan struct{})}
}

func (t *Task) finish(out *Output, err error) {
	t.out, t.err = out, err
	close(t.done)
}

// Done is closed when the export has finished.
func (t *Task) Done() <-chan struct{} {
	return t.done
}

// Wait blocks until the export finishes.
func (t *Task) Wait() (*Output, error) {
	<-t.done
	return t.out, t.err
}
