package loop

// PanicInfo describes a recovered task panic.
type PanicInfo struct {
	TaskID int
	Task   string
	Frame  uint64
	Value  any
	Stack  []byte
}

// InPanicMode reports whether a task has panicked.
func (l *Loop) InPanicMode() bool {
	l.panicMu.Lock()
	defer l.panicMu.Unlock()
	return l.panicking
}

// SetPanicHandler installs the handler run on the first task panic.
// It must not panic.
func (l *Loop) SetPanicHandler(fn func(PanicInfo)) {
	l.panicMu.Lock()
	l.panicHandle = fn
	l.panicMu.Unlock()
}

func (l *Loop) triggerPanic(info PanicInfo) {
	l.panicOnce.Do(func() {
		l.panicMu.Lock()
		l.panicking = true
		fn := l.panicHandle
		l.panicMu.Unlock()

		info.Stack = captureStack()
		if fn != nil {
			fn(info)
		}
	})
}
