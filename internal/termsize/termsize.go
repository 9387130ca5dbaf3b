// Package termsize reports the width of the controlling terminal so the unit
// strip can be wrapped to fit.
package termsize

// MinUnitsPerLine is the narrowest strip line UnitsPerLine returns.
const MinUnitsPerLine = 8

// UnitsPerLine returns how many strip cells fit in cols terminal columns.
// Each cell takes two columns ("|x") plus one closing bar per line; the
// result is rounded down to a multiple of MinUnitsPerLine.
func UnitsPerLine(cols int) int {
	n := (cols - 1) / 2
	n -= n % MinUnitsPerLine
	return max(n, MinUnitsPerLine)
}
