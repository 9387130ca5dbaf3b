//go:build !unix && !windows

package termsize

// Width reports no terminal when the platform offers no way to query it.
func Width(uintptr) (int, bool) { return 0, false }
