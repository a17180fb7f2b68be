// Package loop runs the per-frame callbacks of a game in a fixed order.
package loop

import "sync"

const maxTasks = 16

// Task is one frame callback.
type Task interface {
	Step(*Context)
}

// TaskFunc adapts a function to Task.
type TaskFunc func(*Context)

func (f TaskFunc) Step(ctx *Context) { f(ctx) }

// Context is passed to a task for the duration of one step.
type Context struct {
	l     *Loop
	id    int
	frame uint64
}

// TaskID returns the id AddTask assigned to the running task.
func (c *Context) TaskID() int { return c.id }

// Frame returns the number of the frame being run, starting at 0.
func (c *Context) Frame() uint64 { return c.frame }

// Stop asks the loop to stop once the current frame completes.
func (c *Context) Stop() { c.l.stopped = true }

type taskState struct {
	name string
	task Task
}

// Loop steps every registered task once per frame, in registration order.
// A task that panics halts the loop and the panic handler runs once.
type Loop struct {
	tasks [maxTasks]taskState
	n     int

	frames  uint64
	stopped bool

	panicMu     sync.Mutex
	panicking   bool
	panicOnce   sync.Once
	panicHandle func(PanicInfo)
}

func New() *Loop {
	return &Loop{}
}

// AddTask registers a task and returns its id, or -1 if the loop is full.
func (l *Loop) AddTask(name string, t Task) int {
	if t == nil || l.n >= maxTasks {
		return -1
	}
	id := l.n
	l.tasks[id] = taskState{name: name, task: t}
	l.n++
	return id
}

// TaskName returns the name a task was registered with.
func (l *Loop) TaskName(id int) string {
	if id < 0 || id >= l.n {
		return ""
	}
	return l.tasks[id].name
}

// Frame runs one frame. It reports false once the loop has stopped or
// halted on a panic, in which case no task ran.
func (l *Loop) Frame() bool {
	if l.stopped || l.InPanicMode() {
		return false
	}
	ctx := Context{l: l, frame: l.frames}
	for id := 0; id < l.n; id++ {
		ctx.id = id
		if !l.step(&ctx) {
			return false
		}
	}
	l.frames++
	return true
}

func (l *Loop) step(ctx *Context) (ok bool) {
	st := &l.tasks[ctx.id]
	defer func() {
		if v := recover(); v != nil {
			l.triggerPanic(PanicInfo{
				TaskID: ctx.id,
				Task:   st.name,
				Frame:  ctx.frame,
				Value:  v,
			})
			ok = false
		}
	}()
	st.task.Step(ctx)
	return true
}

// Frames returns the number of completed frames.
func (l *Loop) Frames() uint64 { return l.frames }

// Stopped reports whether a task called Context.Stop.
func (l *Loop) Stopped() bool { return l.stopped }
