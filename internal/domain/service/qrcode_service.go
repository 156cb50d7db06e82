// Package service defines interfaces for supporting infrastructure services.
package service

// ContactQRService defines the interface for generating contact QR codes.
type ContactQRService interface {
	// ContactQR generates a PNG QR code encoding a WhatsApp deep link for
	// the given number, with an optional prefilled message.
	ContactQR(whatsapp, message string) ([]byte, error)
}
