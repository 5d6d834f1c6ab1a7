// Package qr renders QR codes for the public site URL so printed signage can
// link passengers to the program board.
package qr

import (
	"encoding/base64"
	"fmt"

	qrcode "github.com/skip2/go-qrcode"
)

const pngSize = 256

// DataURL encodes text as a PNG QR code wrapped in a data URL, ready to drop
// into an <img> src attribute.
func DataURL(text string) (string, error) {
	if text == "" {
		return "", fmt.Errorf("qr text is required")
	}
	png, err := qrcode.Encode(text, qrcode.Medium, pngSize)
	if err != nil {
		return "", fmt.Errorf("encode qr code: %w", err)
	}
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(png), nil
}
