package encoding

import (
	"fmt"
	"strings"

	xencoding "golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/encoding/unicode/utf32"
)

// Canonical charset identifiers. These are the names stored on document
// records and shown to users; lookup is case-insensitive.
const (
	CharsetUTF8    = "UTF-8"
	CharsetUTF7    = "UTF-7"
	CharsetUTF16LE = "UTF-16LE"
	CharsetUTF16BE = "UTF-16BE"
	CharsetUTF32LE = "UTF-32LE"
	CharsetUTF32BE = "UTF-32BE"

	// CharsetNone disables conversion entirely: bytes pass through
	// unchanged in both directions.
	CharsetNone = "None"
)

// unicodeCharsets are the charsets for which a byte-order mark may be
// written on save.
var unicodeCharsets = map[string]bool{
	CharsetUTF8:    true,
	CharsetUTF7:    true,
	CharsetUTF16LE: true,
	CharsetUTF16BE: true,
	CharsetUTF32LE: true,
	CharsetUTF32BE: true,
}

// IsUnicodeCharset reports whether name identifies a Unicode charset,
// i.e. one that can carry a byte-order mark.
func IsUnicodeCharset(name string) bool {
	return unicodeCharsets[normalizeName(name)]
}

func normalizeName(name string) string {
	upper := strings.ToUpper(name)
	switch upper {
	case "UTF8":
		return CharsetUTF8
	case "UTF-8", "UTF-7", "UTF-16LE", "UTF-16BE", "UTF-32LE", "UTF-32BE":
		return upper
	}
	if strings.EqualFold(name, CharsetNone) {
		return CharsetNone
	}
	return name
}

// lookupCharset resolves a canonical charset name to an x/text codec.
// UTF-8 and None return nil: no conversion is needed for either.
func lookupCharset(name string) (xencoding.Encoding, error) {
	switch normalizeName(name) {
	case CharsetUTF8, CharsetNone:
		return nil, nil
	case CharsetUTF16LE:
		return unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM), nil
	case CharsetUTF16BE:
		return unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM), nil
	case CharsetUTF32LE:
		return utf32.UTF32(utf32.LittleEndian, utf32.IgnoreBOM), nil
	case CharsetUTF32BE:
		return utf32.UTF32(utf32.BigEndian, utf32.IgnoreBOM), nil
	case CharsetUTF7:
		// Recognized in BOM scanning only; no codec is available.
		return nil, fmt.Errorf("%w: %s", ErrUnknownCharset, name)
	}

	enc, err := htmlindex.Get(name)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrUnknownCharset, name)
	}
	return enc, nil
}

// CharsetSupported reports whether name can be used for decode and encode.
func CharsetSupported(name string) bool {
	if normalizeName(name) == CharsetUTF7 {
		return false
	}
	_, err := lookupCharset(name)
	return err == nil
}
