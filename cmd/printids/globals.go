package main

import (
	"io"
	"os"

	"golang.org/x/sys/unix"
)

var getuid = unix.Getuid
var geteuid = unix.Geteuid
var stdout io.Writer = os.Stdout
var stderr io.Writer = os.Stderr
