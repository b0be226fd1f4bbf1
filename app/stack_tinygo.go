//go:build tinygo

package app

// TinyGo cannot walk goroutine stacks.
func stack() []byte { return nil }
