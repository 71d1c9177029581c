package encoding

import "bytes"

// bomMark pairs a charset with its byte-order mark sequence.
type bomMark struct {
	charset string
	bytes   []byte
}

// bomMarks in scan order. UTF-32 must be checked before UTF-16 because the
// UTF-32LE mark begins with the UTF-16LE mark.
var bomMarks = []bomMark{
	{CharsetUTF8, []byte{0xEF, 0xBB, 0xBF}},
	{CharsetUTF32LE, []byte{0xFF, 0xFE, 0x00, 0x00}},
	{CharsetUTF32BE, []byte{0x00, 0x00, 0xFE, 0xFF}},
	{CharsetUTF16LE, []byte{0xFF, 0xFE}},
	{CharsetUTF16BE, []byte{0xFE, 0xFF}},
}

// utf7BOMTails are the valid fourth bytes after the UTF-7 mark prefix 2B 2F 76.
var utf7BOMTails = []byte{0x38, 0x39, 0x2B, 0x2F}

// ScanBOM checks data for a leading Unicode byte-order mark. It returns the
// indicated charset name and the mark's byte width, or "" and 0 when no mark
// is present.
func ScanBOM(data []byte) (charset string, width int) {
	for _, m := range bomMarks {
		if bytes.HasPrefix(data, m.bytes) {
			return m.charset, len(m.bytes)
		}
	}
	if len(data) >= 4 && data[0] == 0x2B && data[1] == 0x2F && data[2] == 0x76 {
		for _, tail := range utf7BOMTails {
			if data[3] == tail {
				return CharsetUTF7, 4
			}
		}
	}
	return "", 0
}

// utf8BOM is the byte-order mark in canonical form. Save prepends this to
// the canonical text before charset conversion so that the conversion itself
// produces the mark in the target charset's width and endianness.
const utf8BOM = "\uFEFF"
