package service

import (
	"github.com/google/uuid"
)

// QRCodeService defines the interface for storefront share codes.
type QRCodeService interface {
	// GenerateServiceQR renders a QR code pointing at the public page of a service.
	GenerateServiceQR(serviceID uuid.UUID) ([]byte, error)

	// ParseServiceQR parses scanned QR data and returns the service ID.
	ParseServiceQR(qrData string) (uuid.UUID, error)
}
