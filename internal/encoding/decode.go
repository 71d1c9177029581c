package encoding

import (
	"bytes"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/tomeedit/tome/internal/logging"
)

// LoadResult is the outcome of decoding a raw byte stream into canonical
// text. Size is the raw byte length before any conversion; Text is the
// canonical UTF-8 text with any byte-order mark already stripped.
type LoadResult struct {
	Size       int
	Text       string
	Charset    string
	HasBOM     bool
	LineEnding LineEnding

	// Truncated indicates the data carried an embedded NUL in a charset
	// family that does not allow one. The text was cut at the first NUL
	// and the caller must force the document read-only.
	Truncated bool
}

// Decode converts raw file bytes to canonical text.
//
// When forcedCharset is empty the charset is determined from a byte-order
// mark, UTF-8 validation and best-effort detection, in that order. The
// sentinel "None" skips conversion entirely and passes bytes through
// unchanged.
func Decode(data []byte, forcedCharset string) (*LoadResult, error) {
	res := &LoadResult{Size: len(data)}

	// Embedded NULs are legitimate in UTF-16/32 streams but mark anything
	// else as a non-text file: keep the readable prefix and flag it.
	bomCharset, _ := ScanBOM(data)
	if nul := bytes.IndexByte(data, 0); nul >= 0 && len(data) > 0 {
		if !charsetAllowsNUL(bomCharset) && !charsetAllowsNUL(normalizeName(forcedCharset)) {
			res.Truncated = true
			data = data[:nul]
		}
	}

	var err error
	switch {
	case forcedCharset == "" || normalizeName(forcedCharset) == "":
		err = decodeAuto(data, res)
	case normalizeName(forcedCharset) == CharsetNone:
		res.Text = string(data)
		res.Charset = CharsetNone
	default:
		err = decodeForced(data, normalizeName(forcedCharset), res)
	}
	if err != nil {
		return nil, err
	}

	if res.HasBOM {
		res.Text = strings.TrimPrefix(res.Text, utf8BOM)
	}
	res.LineEnding = DetectLineEnding(res.Text)
	return res, nil
}

// charsetAllowsNUL reports whether a charset legitimately embeds NUL bytes
// in ordinary text.
func charsetAllowsNUL(charset string) bool {
	switch charset {
	case CharsetUTF16LE, CharsetUTF16BE, CharsetUTF32LE, CharsetUTF32BE:
		return true
	}
	return false
}

// decodeForced validates or converts data in a caller-specified charset.
func decodeForced(data []byte, charset string, res *LoadResult) error {
	if charset == CharsetUTF8 {
		if !utf8.Valid(data) {
			return fmt.Errorf("%w: %s", ErrForcedEncodingInvalid, charset)
		}
		res.Text = string(data)
	} else {
		text, err := convertToUTF8(data, charset)
		if err != nil {
			return fmt.Errorf("%w: %s", ErrForcedEncodingInvalid, charset)
		}
		res.Text = text
	}
	res.Charset = charset
	// Conversion turns a native-width mark into U+FEFF, so the mark check
	// happens on the canonical text rather than the raw bytes.
	res.HasBOM = strings.HasPrefix(res.Text, utf8BOM)
	return nil
}

// decodeAuto runs the detection cascade: BOM, direct UTF-8, then charset
// detection. A BOM whose indicated conversion fails falls through to the
// later steps rather than failing the load.
func decodeAuto(data []byte, res *LoadResult) error {
	if len(data) == 0 {
		res.Charset = CharsetUTF8
		return nil
	}

	if charset, _ := ScanBOM(data); charset != "" {
		res.Charset = charset
		res.HasBOM = true

		if charset == CharsetUTF8 {
			res.Text = string(data)
			return nil
		}
		text, err := convertToUTF8(data, charset)
		if err == nil {
			res.Text = text
			return nil
		}
		// BOM-indicated conversion failed; retry without it.
		logging.Default().Debug("byte-order mark ignored, conversion failed",
			logging.FieldEncoding, charset)
		res.Charset = ""
		res.HasBOM = false
	}

	if utf8.Valid(data) {
		res.Text = string(data)
		res.Charset = CharsetUTF8
		return nil
	}

	text, charset, err := detectAndConvert(data)
	if err != nil {
		return err
	}
	res.Text = text
	res.Charset = charset
	return nil
}

// convertToUTF8 decodes data from the named charset into canonical text.
// Decoded text containing replacement characters the input could not have
// produced is treated as a failed conversion.
func convertToUTF8(data []byte, charset string) (string, error) {
	enc, err := lookupCharset(charset)
	if err != nil {
		return "", err
	}
	if enc == nil {
		if !utf8.Valid(data) {
			return "", fmt.Errorf("%w: %s", ErrForcedEncodingInvalid, charset)
		}
		return string(data), nil
	}

	decoded, err := enc.NewDecoder().Bytes(data)
	if err != nil {
		return "", err
	}
	text := string(decoded)
	if strings.ContainsRune(text, utf8.RuneError) {
		return "", fmt.Errorf("%w: %s", ErrForcedEncodingInvalid, charset)
	}
	return text, nil
}
