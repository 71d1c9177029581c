package logging

// Field name constants for structured logging.
const (
	FieldError    = "error"
	FieldPath     = "path"
	FieldRealPath = "real_path"
	FieldSlot     = "slot"

	// Encoding fields.
	FieldEncoding = "encoding"
	FieldBOM      = "bom"
	FieldBytes    = "bytes"

	// Document fields.
	FieldFiletype = "filetype"
	FieldReadonly = "readonly"
	FieldMTime    = "mtime"

	// Search fields.
	FieldPattern = "pattern"
	FieldCount   = "count"
)
