package receipt

import (
	"resto-pos/internal/apperr"

	qrcode "github.com/skip2/go-qrcode"
)

const defaultQRSize = 256

// QRCode renders the payload (typically the receipt number) as a PNG for
// printers and digital receipts. size is the image edge in pixels.
func QRCode(payload string, size int) ([]byte, error) {
	if payload == "" {
		return nil, apperr.Validation("qr payload is required")
	}
	if size <= 0 {
		size = defaultQRSize
	}
	png, err := qrcode.Encode(payload, qrcode.Medium, size)
	if err != nil {
		return nil, apperr.Validation("could not encode qr payload: %v", err)
	}
	return png, nil
}
