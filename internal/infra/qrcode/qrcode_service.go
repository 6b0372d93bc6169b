package qrcode

import (
	"strings"

	"crm/internal/domain/entity"
	"crm/internal/domain/service"
	"crm/internal/errors"

	"github.com/skip2/go-qrcode"
)

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
}

// NewQRCodeService creates a new QR code service instance
func NewQRCodeService(size int, errorCorrectionLevel string) service.QRCodeService {
	var level qrcode.RecoveryLevel
	switch strings.ToUpper(errorCorrectionLevel) {
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

	if size <= 0 {
		size = 256
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: level,
	}
}

// GenerateContactCardQR renders the customer's vCard as a PNG QR code
func (s *qrcodeService) GenerateContactCardQR(customer *entity.Customer) ([]byte, error) {
	if customer == nil {
		return nil, errors.New("customer is required")
	}

	qrCode, err := qrcode.New(VCard(customer), s.errorCorrectionLevel)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create QR code")
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate PNG")
	}

	return pngBytes, nil
}

// VCard formats customer as a vCard 3.0 document.
func VCard(customer *entity.Customer) string {
	var b strings.Builder

	line := func(parts ...string) {
		b.WriteString(strings.Join(parts, ""))
		b.WriteString("\r\n")
	}

	line("BEGIN:VCARD")
	line("VERSION:3.0")
	line("N:", escape(customer.LastName), ";", escape(customer.FirstName), ";;;")
	line("FN:", escape(customer.FullName()))
	line("TEL;TYPE=CELL:", escape(customer.Phone))
	if customer.Email != nil && *customer.Email != "" {
		line("EMAIL:", escape(*customer.Email))
	}
	if addr := customer.PrimaryAddress(); addr != nil {
		street := addr.Line1
		if addr.Line2 != nil && *addr.Line2 != "" {
			street += ", " + *addr.Line2
		}
		// ADR: PO box;extended;street;locality;region;postal code;country
		line("ADR;TYPE=HOME:;;", escape(street), ";", escape(addr.City), ";", escape(addr.State), ";",
			escape(addr.Pincode), ";", escape(addr.Country))
	}
	line("END:VCARD")

	return b.String()
}

var vcardEscaper = strings.NewReplacer(`\`, `\\`, ";", `\;`, ",", `\,`, "\n", `\n`)

func escape(s string) string {
	return vcardEscaper.Replace(s)
}
