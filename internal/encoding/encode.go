package encoding

import "unicode/utf8"

// Encode converts canonical text to the named target charset for writing to
// disk. When withBOM is set and the target is a Unicode charset, the
// byte-order mark is prepended to the canonical text first, so that the
// charset conversion itself re-encodes the mark to the target's width and
// endianness.
//
// A conversion failure is reported as a *ConvertError carrying the byte
// offset and a context snippet of the first untranslatable character.
func Encode(text, charset string, withBOM bool) ([]byte, error) {
	name := normalizeName(charset)

	out := text
	if withBOM && IsUnicodeCharset(name) {
		out = utf8BOM + out
	}

	if name == CharsetUTF8 || name == CharsetNone {
		return []byte(out), nil
	}

	enc, err := lookupCharset(name)
	if err != nil {
		return nil, err
	}

	converted, err := enc.NewEncoder().Bytes([]byte(out))
	if err != nil {
		offset, context := findUntranslatable(text, name)
		return nil, &ConvertError{
			Charset: charset,
			Offset:  offset,
			Context: context,
			Err:     err,
		}
	}
	return converted, nil
}

// findUntranslatable locates the first character of text the target charset
// cannot represent. Offsets are byte positions in the canonical text, before
// any BOM prepending. The context is the failing character itself, which is
// the first valid scalar at the failure point.
func findUntranslatable(text, charset string) (offset int, context string) {
	enc, err := lookupCharset(charset)
	if err != nil || enc == nil {
		return 0, ""
	}
	for i, r := range text {
		if _, err := enc.NewEncoder().String(string(r)); err != nil {
			return i, string(r)
		}
	}
	// Whole-string conversion failed but every character converts alone;
	// point at the start so diagnostics still render.
	r, _ := utf8.DecodeRuneInString(text)
	if r == utf8.RuneError {
		return 0, ""
	}
	return 0, string(r)
}
