package main

import "fmt"

// IDs holds the credentials reported for the running process.  uid_t is
// 32 bits unsigned on the platforms we build for.
type IDs struct {
	Real      uint32
	Effective uint32
}

// CurrentIDs queries the real uid, then the effective uid.  Neither
// query can fail for a live process.
func CurrentIDs() IDs {
	ruid := uint32(getuid())
	euid := uint32(geteuid())
	return IDs{Real: ruid, Effective: euid}
}

// Elevated reports whether a set-uid bit changed the effective uid.
func (ids IDs) Elevated() bool {
	return ids.Real != ids.Effective
}

func (ids IDs) IsRoot() bool {
	return ids.Effective == 0
}

func (ids IDs) String() string {
	return fmt.Sprintf("real: %d effective: %d", ids.Real, ids.Effective)
}
