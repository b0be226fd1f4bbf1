//go:build !tinygo

package app

import "runtime/debug"

func stack() []byte {
	return debug.Stack()
}
