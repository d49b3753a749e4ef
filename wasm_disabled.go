//go:build !(js && wasm)

package main

import "os"

func getUsername() string {
	if user := os.Getenv("BLOXORZ_USER"); user != "" {
		return user
	}
	return "dev"
}

func WriteFile(name string, data []byte) {
	err := os.WriteFile(name, data, 0644)
	Check(err)
}
