package payments

import (
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Amount is a monetary value in minor units (cents). No floats anywhere in
// the pipeline; the wire form is a decimal string with up to two fractional
// digits, e.g. "100.00".
type Amount int64

// amountRe accepts a positive decimal with at most 2 fractional digits.
var amountRe = regexp.MustCompile(`^\d+(\.\d{1,2})?$`)

var (
	errAmountFormat = errors.New("amount must be a positive number with up to 2 decimal places")
	errAmountRange  = errors.New("amount must be at least 0.01")
)

// ParseAmount converts the wire form into minor units. "10.5" means 10.50.
func ParseAmount(s string) (Amount, error) {
	s = strings.TrimSpace(s)
	if !amountRe.MatchString(s) {
		return 0, errAmountFormat
	}
	whole, frac, _ := strings.Cut(s, ".")
	units, err := strconv.ParseInt(whole, 10, 64)
	if err != nil {
		return 0, errAmountFormat
	}
	var cents int64
	switch len(frac) {
	case 0:
	case 1:
		cents = int64(frac[0]-'0') * 10
	case 2:
		cents = int64(frac[0]-'0')*10 + int64(frac[1]-'0')
	}
	total := units*100 + cents
	if total < 1 {
		return 0, errAmountRange
	}
	return Amount(total), nil
}

// String renders the canonical two-decimal form.
func (a Amount) String() string {
	return fmt.Sprintf("%d.%02d", int64(a)/100, int64(a)%100)
}

func (a Amount) MarshalJSON() ([]byte, error) {
	return json.Marshal(a.String())
}

func (a *Amount) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return errAmountFormat
	}
	parsed, err := ParseAmount(s)
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}
