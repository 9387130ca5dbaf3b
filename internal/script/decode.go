package script

import (
	"bytes"
	"fmt"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// Encoding names the encoding detected for a script.
type Encoding string

const (
	EncodingUTF8        Encoding = "UTF-8"
	EncodingUTF16       Encoding = "UTF-16"
	EncodingWindows1252 Encoding = "Windows-1252"
)

// Decode converts raw script bytes to UTF-8.
//
// A UTF-8 BOM is stripped; a UTF-16 BOM (either byte order) selects UTF-16.
// Without a BOM the input is taken as UTF-8 when valid, otherwise as
// Windows-1252, which is what editors on Spanish-locale Windows systems
// commonly save.
func Decode(data []byte) ([]byte, Encoding, error) {
	switch {
	case bytes.HasPrefix(data, UTF8BOM):
		return data[len(UTF8BOM):], EncodingUTF8, nil

	case bytes.HasPrefix(data, UTF16LEBOM), bytes.HasPrefix(data, UTF16BEBOM):
		dec := unicode.UTF16(unicode.LittleEndian, unicode.ExpectBOM).NewDecoder()
		out, _, err := transform.Bytes(dec, data)
		if err != nil {
			return nil, "", fmt.Errorf("script: decode UTF-16: %w", err)
		}
		return out, EncodingUTF16, nil

	case utf8.Valid(data):
		return data, EncodingUTF8, nil

	default:
		out, err := charmap.Windows1252.NewDecoder().Bytes(data)
		if err != nil {
			return nil, "", fmt.Errorf("script: decode Windows-1252: %w", err)
		}
		return out, EncodingWindows1252, nil
	}
}
