package qrcode

import (
	"testing"

	"crm/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCustomer() *entity.Customer {
	email := "aarav@example.com"

	return &entity.Customer{
		ID:        1,
		FirstName: "Aarav",
		LastName:  "Sharma",
		Phone:     "9000000001",
		Email:     &email,
		Addresses: []*entity.Address{
			{ID: 2, Line1: "Flat 4", City: "Pune", State: "MH", Country: "India", Pincode: "411001"},
			{ID: 1, Line1: "12 MG Road", City: "Bengaluru", State: "KA", Country: "India", Pincode: "560001", IsPrimary: true},
		},
	}
}

func TestNewQRCodeService(t *testing.T) {
	tests := []struct {
		name                 string
		size                 int
		errorCorrectionLevel string
	}{
		{"Low error correction", 256, "L"},
		{"Medium error correction", 256, "M"},
		{"High error correction", 256, "Q"},
		{"Highest error correction", 256, "h"},
		{"Default error correction", 256, "invalid"},
		{"Default size", 0, "M"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := NewQRCodeService(tt.size, tt.errorCorrectionLevel)
			assert.NotNil(t, service)
		})
	}
}

func TestQRCodeService_GenerateContactCardQR(t *testing.T) {
	service := NewQRCodeService(256, "M")

	qrBytes, err := service.GenerateContactCardQR(newCustomer())
	require.NoError(t, err)
	require.Greater(t, len(qrBytes), 4)

	// PNG magic number
	assert.Equal(t, []byte{0x89, 0x50, 0x4E, 0x47}, qrBytes[:4])
}

func TestQRCodeService_GenerateContactCardQR_NilCustomer(t *testing.T) {
	service := NewQRCodeService(256, "M")

	_, err := service.GenerateContactCardQR(nil)
	assert.Error(t, err)
}

func TestVCard(t *testing.T) {
	card := VCard(newCustomer())

	assert.Equal(t, "BEGIN:VCARD\r\n"+
		"VERSION:3.0\r\n"+
		"N:Sharma;Aarav;;;\r\n"+
		"FN:Aarav Sharma\r\n"+
		"TEL;TYPE=CELL:9000000001\r\n"+
		"EMAIL:aarav@example.com\r\n"+
		"ADR;TYPE=HOME:;;12 MG Road;Bengaluru;KA;560001;India\r\n"+
		"END:VCARD\r\n", card)
}

func TestVCard_EscapesAndOmitsEmptyParts(t *testing.T) {
	card := VCard(&entity.Customer{FirstName: "Neha", LastName: "Kapoor; Jr", Phone: "9000000006"})

	assert.Contains(t, card, `N:Kapoor\; Jr;Neha;;;`)
	assert.NotContains(t, card, "EMAIL:")
	assert.NotContains(t, card, "ADR")
}
