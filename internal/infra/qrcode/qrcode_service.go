// Package qrcode renders storefront share codes.
package qrcode

import (
	"encoding/json"

	"github.com/google/uuid"
	"github.com/skip2/go-qrcode"

	"github.com/irabeny89/ebbs-io/config"
	"github.com/irabeny89/ebbs-io/internal/domain/service"
	"github.com/irabeny89/ebbs-io/internal/errors"
)

const qrTypeService = "service"

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
}

// QRCodeData represents the QR code payload structure.
type QRCodeData struct {
	ServiceID string `json:"service_id"`
	Type      string `json:"type"`
}

// NewQRCodeService creates a new QR code service instance.
func NewQRCodeService(cfg *config.Config) service.QRCodeService {
	size := 256
	correction := ""
	if cfg.QRCode != nil {
		if cfg.QRCode.Size > 0 {
			size = cfg.QRCode.Size
		}
		correction = cfg.QRCode.ErrorCorrectionLevel
	}

	var level qrcode.RecoveryLevel
	switch correction {
	case "L":
		level = qrcode.Low
	case "M":
		level = qrcode.Medium
	case "Q":
		level = qrcode.High
	case "H":
		level = qrcode.Highest
	default:
		level = qrcode.Medium
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: level,
	}
}

// GenerateServiceQR renders a PNG QR code carrying the service reference.
func (s *qrcodeService) GenerateServiceQR(serviceID uuid.UUID) ([]byte, error) {
	data := QRCodeData{
		ServiceID: serviceID.String(),
		Type:      qrTypeService,
	}

	jsonData, err := json.Marshal(data)
	if err != nil {
		return nil, errors.Wrap(err, "marshal QR code data")
	}

	qrCode, err := qrcode.New(string(jsonData), s.errorCorrectionLevel)
	if err != nil {
		return nil, errors.Wrap(err, "create QR code")
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, errors.Wrap(err, "generate PNG")
	}

	return pngBytes, nil
}

// ParseServiceQR parses scanned QR data and returns the service ID.
func (s *qrcodeService) ParseServiceQR(qrData string) (uuid.UUID, error) {
	var data QRCodeData
	if err := json.Unmarshal([]byte(qrData), &data); err != nil {
		return uuid.Nil, errors.Wrap(err, "unmarshal QR code data")
	}

	if data.Type != qrTypeService {
		return uuid.Nil, errors.Errorf("invalid QR code type: %s", data.Type)
	}

	serviceID, err := uuid.Parse(data.ServiceID)
	if err != nil {
		return uuid.Nil, errors.Wrap(err, "parse service ID")
	}

	return serviceID, nil
}
