// File: internal/services/ai/image.go
package ai

import (
	"encoding/base64"
	"strings"
)

// fallback when the payload carries no data-URI scheme marker, matching
// what browser screenshot captures send.
const defaultImageMIMEType = "image/jpeg"

// DecodeScreenshot decodes a base64 screenshot payload, stripping an
// optional data-URI prefix ("data:image/png;base64,...") first. It returns
// the raw bytes and the MIME type declared by the prefix, or image/jpeg
// when none is present. Malformed base64 yields a validation error rather
// than empty output.
func DecodeScreenshot(payload string) ([]byte, string, error) {
	if payload == "" {
		return nil, "", NewValidationError("decode_screenshot", "empty screenshot payload", nil)
	}

	mimeType := defaultImageMIMEType
	encoded := payload
	if idx := strings.Index(payload, ","); idx >= 0 {
		header := payload[:idx]
		encoded = payload[idx+1:]
		if mt, ok := mimeTypeFromDataURI(header); ok {
			mimeType = mt
		}
	}

	data, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return nil, "", NewValidationError("decode_screenshot", "malformed base64 image data", err)
	}
	if len(data) == 0 {
		return nil, "", NewValidationError("decode_screenshot", "empty image data", nil)
	}
	return data, mimeType, nil
}

// mimeTypeFromDataURI extracts the media type from a data-URI header such
// as "data:image/png;base64".
func mimeTypeFromDataURI(header string) (string, bool) {
	if !strings.HasPrefix(header, "data:") {
		return "", false
	}
	rest := strings.TrimPrefix(header, "data:")
	if idx := strings.Index(rest, ";"); idx >= 0 {
		rest = rest[:idx]
	}
	if rest == "" {
		return "", false
	}
	return rest, true
}
