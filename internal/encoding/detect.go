package encoding

import (
	"github.com/saintfish/chardet"

	"github.com/tomeedit/tome/internal/logging"
)

// detectAndConvert runs best-effort charset detection over data and converts
// it to canonical text using the first candidate that decodes cleanly.
func detectAndConvert(data []byte) (text, charset string, err error) {
	detector := chardet.NewTextDetector()
	candidates, err := detector.DetectAll(data)
	if err != nil {
		return "", "", ErrUndetectableEncoding
	}

	for _, c := range candidates {
		name := normalizeName(c.Charset)
		if name == CharsetUTF7 || !CharsetSupported(name) {
			continue
		}
		converted, convErr := convertToUTF8(data, name)
		if convErr != nil {
			continue
		}
		logging.Default().Debug("charset detected",
			logging.FieldEncoding, name, "confidence", c.Confidence)
		return converted, name, nil
	}
	return "", "", ErrUndetectableEncoding
}
