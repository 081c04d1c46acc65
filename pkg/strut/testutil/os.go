// Package testutil holds the helpers shared by tests across the framework.
package testutil

import (
	"io"
	"os"
)

// StdoutOutputForFunc runs f with os.Stdout redirected to a pipe and returns
// everything f wrote to it.
func StdoutOutputForFunc(f func()) string {
	r, w, _ := os.Pipe()

	old := os.Stdout
	os.Stdout = w

	f()

	w.Close()

	os.Stdout = old

	out, _ := io.ReadAll(r)

	return string(out)
}

// StderrOutputForFunc runs f with os.Stderr redirected to a pipe and returns
// everything f wrote to it.
func StderrOutputForFunc(f func()) string {
	r, w, _ := os.Pipe()

	old := os.Stderr
	os.Stderr = w

	f()

	w.Close()

	os.Stderr = old

	out, _ := io.ReadAll(r)

	return string(out)
}
