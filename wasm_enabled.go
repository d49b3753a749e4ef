//go:build js && wasm

package main

import (
	"syscall/js"
)

func getUsername() string {
	// Retrieve parameter from JavaScript global scope.
	return js.Global().Get("username").String()
}

// WriteFile does nothing, a browser has no disk to record to.
func WriteFile(name string, data []byte) {
}
