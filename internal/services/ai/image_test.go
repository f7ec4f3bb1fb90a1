// File: internal/services/ai/image_test.go
package ai

import (
	"encoding/base64"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeScreenshotPlainBase64(t *testing.T) {
	raw := []byte{0xFF, 0xD8, 0xFF, 0xE0} // JPEG magic
	payload := base64.StdEncoding.EncodeToString(raw)

	data, mimeType, err := DecodeScreenshot(payload)
	require.NoError(t, err)
	assert.Equal(t, raw, data)
	assert.Equal(t, "image/jpeg", mimeType)
}

func TestDecodeScreenshotStripsDataURIPrefix(t *testing.T) {
	raw := []byte{0x89, 0x50, 0x4E, 0x47}
	payload := "data:image/png;base64," + base64.StdEncoding.EncodeToString(raw)

	data, mimeType, err := DecodeScreenshot(payload)
	require.NoError(t, err)
	assert.Equal(t, raw, data)
	assert.Equal(t, "image/png", mimeType)
}

func TestDecodeScreenshotPrefixWithoutSchemeKeepsDefaultMIME(t *testing.T) {
	raw := []byte("pixels")
	payload := "screenshot," + base64.StdEncoding.EncodeToString(raw)

	data, mimeType, err := DecodeScreenshot(payload)
	require.NoError(t, err)
	assert.Equal(t, raw, data)
	assert.Equal(t, "image/jpeg", mimeType)
}

func TestDecodeScreenshotMalformedBase64(t *testing.T) {
	_, _, err := DecodeScreenshot("data:image/png;base64,not!!!valid***base64")
	require.Error(t, err)

	var aiErr *AIError
	require.True(t, errors.As(err, &aiErr))
	assert.Equal(t, ErrTypeValidation, aiErr.Type)
	assert.Equal(t, "decode_screenshot", aiErr.Operation)
}

func TestDecodeScreenshotEmptyPayload(t *testing.T) {
	_, _, err := DecodeScreenshot("")
	require.Error(t, err)

	var aiErr *AIError
	require.True(t, errors.As(err, &aiErr))
	assert.Equal(t, ErrTypeValidation, aiErr.Type)
}
