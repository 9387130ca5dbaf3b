//go:build windows

package termsize

import "golang.org/x/sys/windows"

// Width returns the column count of the console on fd.
func Width(fd uintptr) (int, bool) {
	var info windows.ConsoleScreenBufferInfo
	if err := windows.GetConsoleScreenBufferInfo(windows.Handle(fd), &info); err != nil {
		return 0, false
	}
	cols := int(info.Window.Right-info.Window.Left) + 1
	if cols <= 0 {
		return 0, false
	}
	return cols, true
}
