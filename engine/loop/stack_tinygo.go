//go:build tinygo

package loop

func captureStack() []byte { return nil }
