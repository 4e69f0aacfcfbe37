package order

import (
	"fmt"
	"math/rand/v2"
	"regexp"
	"strings"
	"time"

	"dispatch/internal/pkg/errs"
)

const numberSuffixAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

var generatedNumberPattern = regexp.MustCompile(`^ORD-\d{6}-[A-Z0-9]{3}$`)

// Number is the human-readable order code. Caller-supplied numbers are
// accepted as-is (subject to a uniqueness check at creation); generated
// numbers follow the ORD-######-XXX pattern.
type Number string

// NewNumber validates a caller-supplied order number. Leading and trailing
// whitespace is rejected rather than trimmed so the stored code matches what
// the caller sees.
func NewNumber(s string) (Number, error) {
	if s == "" {
		return "", errs.NewValueIsRequiredError("order number")
	}
	if strings.TrimSpace(s) != s {
		return "", errs.NewValueIsInvalidErrorWithCause(
			"order number", fmt.Errorf("%q has surrounding whitespace", s))
	}
	return Number(s), nil
}

// GenerateNumber produces an ORD-<6 digits>-<3 chars> code from the last six
// digits of the unix-millisecond clock and a random uppercase-alphanumeric
// suffix. Collision probability is treated as negligible; there is no
// retry-on-collision.
func GenerateNumber() Number {
	millis := time.Now().UnixMilli() % 1_000_000

	suffix := make([]byte, 3)
	for i := range suffix {
		suffix[i] = numberSuffixAlphabet[rand.IntN(len(numberSuffixAlphabet))]
	}

	return Number(fmt.Sprintf("ORD-%06d-%s", millis, suffix))
}

// IsGenerated reports whether the number matches the generated pattern.
func (n Number) IsGenerated() bool {
	return generatedNumberPattern.MatchString(string(n))
}

// Validate reports whether the number is non-empty.
func (n Number) Validate() error {
	if n == "" {
		return errs.NewValueIsRequiredError("order number")
	}
	return nil
}

func (n Number) String() string {
	return string(n)
}
