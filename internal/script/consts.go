package script

const (
	// ============================================================================
	// Comment Markers
	// ============================================================================

	// CommentPrefix marks a comment line
	CommentPrefix = "#"

	// AltCommentPrefix also marks a comment line
	AltCommentPrefix = ";"

	// ============================================================================
	// Scanner Limits
	// ============================================================================

	// ScannerInitialBufferSize is the initial line buffer size
	ScannerInitialBufferSize = 4 * 1024

	// ScannerMaxLineSize bounds a single script line
	ScannerMaxLineSize = 64 * 1024
)

// Byte order marks recognised at the start of a script.
var (
	UTF8BOM    = []byte{0xEF, 0xBB, 0xBF}
	UTF16LEBOM = []byte{0xFF, 0xFE}
	UTF16BEBOM = []byte{0xFE, 0xFF}
)
