package service

import (
	"fmt"

	"github.com/skip2/go-qrcode"
)

type QRGenerator interface {
	Generate(orderCode string) ([]byte, error)
}

// DefaultQRGenerator encodes the storefront's tracking page for an order as a PNG.
type DefaultQRGenerator struct {
	BaseURL string
}

func (g DefaultQRGenerator) TrackingURL(orderCode string) string {
	return fmt.Sprintf("%s/track/%s", g.BaseURL, orderCode)
}

func (g DefaultQRGenerator) Generate(orderCode string) ([]byte, error) {
	return qrcode.Encode(g.TrackingURL(orderCode), qrcode.Medium, 256)
}
