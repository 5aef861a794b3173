package errors

import "regexp"

// MaxDataLength is the maximum accepted payload length for QR content.
// QR version 40 with low error correction tops out at 2953 bytes; anything
// longer can never be encoded, so it is rejected up front.
const MaxDataLength = 2953

// ValidateData validates QR payload text before it reaches the encoder.
//
// The validation rules are intentionally conservative:
//   - No empty payloads
//   - No null bytes
//   - Maximum length of MaxDataLength bytes
//
// Capacity validation for a specific version/recovery level is done by the
// QR encoder itself.
func ValidateData(data string) error {
	if data == "" {
		return New(ErrCodeInvalidInput, "data cannot be empty")
	}

	if len(data) > MaxDataLength {
		return New(ErrCodeInvalidInput, "data too long (max %d bytes)", MaxDataLength)
	}

	for i := 0; i < len(data); i++ {
		if data[i] == 0 {
			return New(ErrCodeInvalidInput, "data contains null bytes")
		}
	}

	return nil
}

// ValidateDimensions validates canvas dimensions.
// Both sides must be positive, and the total pixel count is capped so a
// single request cannot exhaust memory.
func ValidateDimensions(width, height int) error {
	if width <= 0 || height <= 0 {
		return New(ErrCodeInvalidDimensions, "dimensions must be positive, got %dx%d", width, height)
	}

	const maxPixels = 64 << 20 // 64 megapixels
	if width*height > maxPixels {
		return New(ErrCodeInvalidDimensions, "image too large: %dx%d exceeds %d pixels", width, height, maxPixels)
	}

	return nil
}

// formatNameRegex matches valid encoder format identifiers.
// Format names follow the file-suffix convention: short, lowercase-able ASCII.
var formatNameRegex = regexp.MustCompile(`^[A-Za-z0-9]{1,8}$`)

// ValidateFormatName validates a format identifier's shape.
// It does not check whether an encoder is registered for the name; that is
// the canvas encoder registry's job.
func ValidateFormatName(format string) error {
	if format == "" {
		return New(ErrCodeInvalidFormat, "format cannot be empty")
	}

	if !formatNameRegex.MatchString(format) {
		return New(ErrCodeInvalidFormat, "invalid format name: %q", format)
	}

	return nil
}
