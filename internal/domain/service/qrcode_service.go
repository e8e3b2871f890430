package service

import (
	"github.com/google/uuid"
)

// QRCodeService defines the interface for QR code generation and parsing services
type QRCodeService interface {
	// GenerateOrderQR generates a QR code image identifying an order for pickup desks.
	GenerateOrderQR(orderID uuid.UUID) ([]byte, error)

	// ParseOrderQR parses QR code data and returns the order ID.
	ParseOrderQR(qrData string) (uuid.UUID, error)
}
