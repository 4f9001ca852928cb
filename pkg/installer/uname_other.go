//go:build !unix

package installer

// KernelRelease is unavailable off unix; the tools command refuses to
// run there anyway.
func KernelRelease() string {
	return ""
}
