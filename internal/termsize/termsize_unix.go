//go:build unix

package termsize

import "golang.org/x/sys/unix"

// Width returns the column count of the terminal on fd.
func Width(fd uintptr) (int, bool) {
	ws, err := unix.IoctlGetWinsize(int(fd), unix.TIOCGWINSZ)
	if err != nil || ws.Col == 0 {
		return 0, false
	}
	return int(ws.Col), true
}
