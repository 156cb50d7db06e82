package qrcode

import (
	"fmt"

	"github.com/azez-alhoot/fannifix-hub/internal/domain/service"
	"github.com/azez-alhoot/fannifix-hub/internal/util"

	"github.com/skip2/go-qrcode"
)

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
}

// NewContactQRService creates a QR code service for WhatsApp contact links
func NewContactQRService(size int, errorCorrectionLevel string) service.ContactQRService {
	var level qrcode.RecoveryLevel
	switch errorCorrectionLevel {
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

// ContactQR generates a PNG QR code encoding the wa.me deep link for the
// given number, optionally prefilled with a message.
func (s *qrcodeService) ContactQR(whatsapp, message string) ([]byte, error) {
	link := util.WhatsAppLink(whatsapp, message)

	qrCode, err := qrcode.New(link, s.errorCorrectionLevel)
	if err != nil {
		return nil, fmt.Errorf("failed to create QR code: %w", err)
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, fmt.Errorf("failed to generate PNG: %w", err)
	}

	return pngBytes, nil
}
