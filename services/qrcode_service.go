// services/qrcode_service.go
package services

import (
	"errors"

	"github.com/skip2/go-qrcode"
)

// GenerateEventQRCode renders an event's signup link as a PNG QR code so it
// can be projected or printed at the venue.
func GenerateEventQRCode(link string, size int) ([]byte, error) {
	if link == "" {
		return nil, errors.New("event has no signup link")
	}
	png, err := qrcode.Encode(link, qrcode.Medium, size)
	if err != nil {
		return nil, err
	}
	return png, nil
}
