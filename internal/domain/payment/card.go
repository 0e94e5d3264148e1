package payment

import (
	"fmt"
	"strings"
	"time"
	"unicode"
)

// CardDetails holds the card as typed by the payer. It must never be logged
// directly; String masks the PAN.
type CardDetails struct {
	PAN        string `json:"pan" validate:"required,numeric,min=12,max=19"`
	Expiry     string `json:"expiry" validate:"required"`
	CVV        string `json:"cvv" validate:"required,numeric,min=3,max=4"`
	HolderName string `json:"cardholder_name" validate:"required,max=255"`
}

// NewCardDetails strips the separators users type between PAN digit groups.
func NewCardDetails(pan, expiry, cvv, holderName string) CardDetails {
	return CardDetails{
		PAN:        stripSpaces(pan),
		Expiry:     strings.TrimSpace(expiry),
		CVV:        strings.TrimSpace(cvv),
		HolderName: strings.TrimSpace(holderName),
	}
}

func (c CardDetails) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidCard, err)
	}
	if !ValidLuhn(c.PAN) {
		return fmt.Errorf("%w: card number checksum mismatch", ErrInvalidCard)
	}
	if _, err := ParseExpiry(c.Expiry); err != nil {
		return err
	}
	return nil
}

// APIExpiry returns the expiry in the gateway's YYYY-MM format.
func (c CardDetails) APIExpiry() (string, error) {
	exp, err := ParseExpiry(c.Expiry)
	if err != nil {
		return "", err
	}
	return exp.Format("2006-01"), nil
}

// Masked keeps the first six and last four digits of the PAN.
func (c CardDetails) Masked() string {
	if len(c.PAN) < 10 {
		return strings.Repeat("*", len(c.PAN))
	}
	return c.PAN[:6] + strings.Repeat("*", len(c.PAN)-10) + c.PAN[len(c.PAN)-4:]
}

func (c CardDetails) String() string {
	return c.Masked()
}

// ParseExpiry accepts MM/YY, MMYY and MM/YYYY.
func ParseExpiry(raw string) (time.Time, error) {
	raw = strings.ReplaceAll(stripSpaces(raw), "/", "")
	var layout string
	switch len(raw) {
	case 4:
		layout = "0106"
	case 6:
		layout = "012006"
	default:
		return time.Time{}, fmt.Errorf("%w: expiry %q", ErrInvalidCard, raw)
	}
	t, err := time.Parse(layout, raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: expiry %q", ErrInvalidCard, raw)
	}
	return t, nil
}

// ValidLuhn reports whether number passes the Luhn checksum.
func ValidLuhn(number string) bool {
	if number == "" {
		return false
	}
	var sum int
	parity := len(number) % 2
	for i, digit := range number {
		if digit < '0' || digit > '9' {
			return false
		}
		d := int(digit - '0')
		if i%2 == parity {
			d *= 2
			if d > 9 {
				d -= 9
			}
		}
		sum += d
	}
	return sum%10 == 0
}

func stripSpaces(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) || r == '-' {
			return -1
		}
		return r
	}, s)
}
