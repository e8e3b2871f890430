package qrcode

import (
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewQRCodeService(t *testing.T) {
	tests := []struct {
		name                 string
		size                 int
		errorCorrectionLevel string
	}{
		{"Low error correction", 256, "L"},
		{"Medium error correction", 256, "M"},
		{"High error correction", 256, "Q"},
		{"Highest error correction", 256, "H"},
		{"Default error correction", 256, "invalid"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := NewQRCodeService(tt.size, tt.errorCorrectionLevel)
			assert.NotNil(t, service)
		})
	}
}

func TestQRCodeService_GenerateOrderQR(t *testing.T) {
	service := NewQRCodeService(256, "M")
	orderID := uuid.New()

	qrBytes, err := service.GenerateOrderQR(orderID)
	require.NoError(t, err)
	assert.NotEmpty(t, qrBytes)

	// Verify it's a valid PNG (starts with PNG magic number)
	assert.Equal(t, byte(0x89), qrBytes[0])
	assert.Equal(t, byte(0x50), qrBytes[1])
	assert.Equal(t, byte(0x4E), qrBytes[2])
	assert.Equal(t, byte(0x47), qrBytes[3])
}

func TestQRCodeService_ParseOrderQR(t *testing.T) {
	service := NewQRCodeService(256, "M")
	orderID := uuid.New()

	payload, err := json.Marshal(QRCodeData{OrderID: orderID.String(), Type: "order"})
	require.NoError(t, err)

	parsed, err := service.ParseOrderQR(string(payload))
	require.NoError(t, err)
	assert.Equal(t, orderID, parsed)
}

func TestQRCodeService_ParseOrderQR_Invalid(t *testing.T) {
	service := NewQRCodeService(256, "M")

	// Not JSON
	_, err := service.ParseOrderQR("not-json")
	assert.Error(t, err)

	// Wrong type tag
	payload, err := json.Marshal(QRCodeData{OrderID: uuid.NewString(), Type: "subscription"})
	require.NoError(t, err)
	_, err = service.ParseOrderQR(string(payload))
	assert.Error(t, err)

	// Malformed order ID
	payload, err = json.Marshal(QRCodeData{OrderID: "not-a-uuid", Type: "order"})
	require.NoError(t, err)
	_, err = service.ParseOrderQR(string(payload))
	assert.Error(t, err)
}
