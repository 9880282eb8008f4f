package employee

import (
	"bytes"
	"fmt"
	"image/png"
	"strings"

	"github.com/boombuler/barcode"
	"github.com/boombuler/barcode/qr"
)

const defaultBadgeSize = 256

// BadgeRenderer encodes an employee's QR punch link as a PNG.
type BadgeRenderer struct {
	baseURL string
	size    int
}

func NewBadgeRenderer(baseURL string) *BadgeRenderer {
	return &BadgeRenderer{
		baseURL: strings.TrimRight(baseURL, "/"),
		size:    defaultBadgeSize,
	}
}

// PunchURL is the link the kiosk front-end opens to punch for employeeID.
func (b *BadgeRenderer) PunchURL(employeeID int64) string {
	return fmt.Sprintf("%s/pointage/qr/%d", b.baseURL, employeeID)
}

func (b *BadgeRenderer) Render(employeeID int64) ([]byte, error) {
	code, err := qr.Encode(b.PunchURL(employeeID), qr.M, qr.Auto)
	if err != nil {
		return nil, fmt.Errorf("encode qr: %w", err)
	}
	scaled, err := barcode.Scale(code, b.size, b.size)
	if err != nil {
		return nil, fmt.Errorf("scale qr: %w", err)
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, scaled); err != nil {
		return nil, fmt.Errorf("encode png: %w", err)
	}
	return buf.Bytes(), nil
}
