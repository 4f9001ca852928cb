//go:build unix

package installer

import "golang.org/x/sys/unix"

// KernelRelease returns uname -r for the running kernel.
func KernelRelease() string {
	var uts unix.Utsname
	if err := unix.Uname(&uts); err != nil {
		return ""
	}
	return unix.ByteSliceToString(uts.Release[:])
}
