//go:build wasm

package main

import "fmt"

func errMissingArg(want string) error {
	return fmt.Errorf("wasm: expected arguments (%s)", want)
}

func errUnknownID(id string) error {
	return fmt.Errorf("wasm: unknown changeset id %q", id)
}
