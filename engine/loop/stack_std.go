//go:build !tinygo

package loop

import "runtime/debug"

func captureStack() []byte {
	return debug.Stack()
}
