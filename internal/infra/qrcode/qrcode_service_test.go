package qrcode

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var pngMagic = []byte{0x89, 'P', 'N', 'G'}

func TestContactQR_ProducesPNG(t *testing.T) {
	svc := NewContactQRService(256, "M")

	png, err := svc.ContactQR("96550001111", "مرحبا")
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(png, pngMagic), "output should be a PNG image")
}

func TestNewContactQRService_UnknownLevelDefaultsToMedium(t *testing.T) {
	svc := NewContactQRService(128, "X")

	png, err := svc.ContactQR("+965 5000 1111", "")
	require.NoError(t, err)
	assert.NotEmpty(t, png)
}
