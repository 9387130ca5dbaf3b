package script

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"

	"github.com/joshuapare/memsim/pkg/types"
)

const walkthrough = `# two processes, release, compact
alloc A 10
LOAD B 20

; comment in the other style
free A
compact
show
internal
external
reset 128
exit
`

func TestParse_Walkthrough(t *testing.T) {
	cmds, err := Parse([]byte(walkthrough))
	require.NoError(t, err)

	require.Equal(t, []types.Command{
		{Kind: types.KindAlloc, Owner: "A", Size: 10, Line: 2},
		{Kind: types.KindAlloc, Owner: "B", Size: 20, Line: 3},
		{Kind: types.KindFree, Owner: "A", Line: 6},
		{Kind: types.KindCompact, Line: 7},
		{Kind: types.KindShow, Line: 8},
		{Kind: types.KindInternal, Line: 9},
		{Kind: types.KindExternal, Line: 10},
		{Kind: types.KindReset, Size: 128, Line: 11},
		{Kind: types.KindExit, Line: 12},
	}, cmds)
}

func TestParse_SpanishAliases(t *testing.T) {
	cmds, err := Parse([]byte("cargar Año 4\nliberar Año\ncompactar\nver\nsalir\n"))
	require.NoError(t, err)
	require.Len(t, cmds, 5)
	require.Equal(t, "Año", cmds[0].Owner)
	require.Equal(t, types.KindFree, cmds[1].Kind)
	require.Equal(t, types.KindCompact, cmds[2].Kind)
	require.Equal(t, types.KindShow, cmds[3].Kind)
	require.Equal(t, types.KindExit, cmds[4].Kind)
}

func TestParse_NegativeSizeIsLeftToTheAllocator(t *testing.T) {
	cmds, err := Parse([]byte("alloc A -5\n"))
	require.NoError(t, err)
	require.Equal(t, -5, cmds[0].Size)
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name string
		src  string
		line int
		msg  string
	}{
		{"unknown verb", "alloc A 1\nexplode\n", 2, `unknown command "explode"`},
		{"alloc arity", "alloc A\n", 1, "expects <owner> <size>"},
		{"alloc size", "alloc A ten\n", 1, `invalid size "ten"`},
		{"free arity", "\n\nfree\n", 3, "expects <owner>"},
		{"extra args", "compact now\n", 1, "takes no arguments"},
		{"reset capacity", "reset big\n", 1, `invalid capacity "big"`},
		{"reset arity", "reset 1 2\n", 1, "at most one capacity"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.src))
			require.Error(t, err)

			var perr *ParseError
			require.True(t, errors.As(err, &perr))
			require.Equal(t, tt.line, perr.Line)
			require.Contains(t, perr.Error(), tt.msg)
		})
	}
}

func TestParseReader(t *testing.T) {
	cmds, err := ParseReader(strings.NewReader("stats\nhelp\n"))
	require.NoError(t, err)
	require.Equal(t, types.KindStats, cmds[0].Kind)
	require.Equal(t, types.KindHelp, cmds[1].Kind)
}

func TestDecode(t *testing.T) {
	const src = "alloc Año 3\n"

	t.Run("utf8", func(t *testing.T) {
		out, enc, err := Decode([]byte(src))
		require.NoError(t, err)
		require.Equal(t, EncodingUTF8, enc)
		require.Equal(t, src, string(out))
	})

	t.Run("utf8 bom", func(t *testing.T) {
		out, enc, err := Decode(append(append([]byte{}, UTF8BOM...), src...))
		require.NoError(t, err)
		require.Equal(t, EncodingUTF8, enc)
		require.Equal(t, src, string(out))
	})

	t.Run("utf16le bom", func(t *testing.T) {
		enc16 := unicode.UTF16(unicode.LittleEndian, unicode.UseBOM).NewEncoder()
		data, err := enc16.Bytes([]byte(src))
		require.NoError(t, err)
		require.Equal(t, UTF16LEBOM, data[:2])

		out, enc, err := Decode(data)
		require.NoError(t, err)
		require.Equal(t, EncodingUTF16, enc)
		require.Equal(t, src, string(out))
	})

	t.Run("utf16be bom", func(t *testing.T) {
		enc16 := unicode.UTF16(unicode.BigEndian, unicode.UseBOM).NewEncoder()
		data, err := enc16.Bytes([]byte(src))
		require.NoError(t, err)

		out, _, err := Decode(data)
		require.NoError(t, err)
		require.Equal(t, src, string(out))
	})

	t.Run("windows-1252", func(t *testing.T) {
		data, err := charmap.Windows1252.NewEncoder().Bytes([]byte(src))
		require.NoError(t, err)

		out, enc, err := Decode(data)
		require.NoError(t, err)
		require.Equal(t, EncodingWindows1252, enc)
		require.Equal(t, src, string(out))

		cmds, err := Parse(data)
		require.NoError(t, err)
		require.Equal(t, "Año", cmds[0].Owner)
	})
}
