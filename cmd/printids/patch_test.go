package main

import (
	"bytes"
	"errors"
	"io"
)

func Patch[T any](target *T, mock T) func() {
	original := *target
	*target = mock
	return func() { *target = original }
}

// patchIDs takes uid_t-width values; the int round trip keeps the bits
// even where int is 32 bits.
func patchIDs(ruid, euid uint32) func() {
	restoreUID := Patch(&getuid, func() int { return int(ruid) })
	restoreEUID := Patch(&geteuid, func() int { return int(euid) })
	return func() {
		restoreEUID()
		restoreUID()
	}
}

func patchStdout() (func(), *bytes.Buffer) {
	buf := &bytes.Buffer{}
	var mockStdout io.Writer = buf
	return Patch(&stdout, mockStdout), buf
}

var errBrokenPipe = errors.New("broken pipe")

type brokenWriter struct{}

func (brokenWriter) Write(p []byte) (int, error) {
	return 0, errBrokenPipe
}
