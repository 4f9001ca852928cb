//go:build unix

package fsutil

import "golang.org/x/sys/unix"

// writable probes write access with access(2). The check uses the
// real uid/gid, not the effective ones, so under setuid it answers
// for the invoking user rather than for the process.
func writable(path string) bool {
	return unix.Access(path, unix.W_OK) == nil
}
