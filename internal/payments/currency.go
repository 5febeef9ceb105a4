package payments

import "strings"

// DefaultCurrencies is the supported set when configuration does not
// override it.
var DefaultCurrencies = []string{"ZAR", "USD", "EUR", "GBP"}

// CurrencySet is the fixed, process-wide set of supported currency codes,
// loaded once at startup and shared between validation and the currencies
// endpoint.
type CurrencySet struct {
	codes   []string
	members map[string]struct{}
}

// NewCurrencySet normalizes codes to upper case, drops blanks and
// duplicates, and preserves order. An empty input falls back to the default
// set.
func NewCurrencySet(codes []string) *CurrencySet {
	if len(codes) == 0 {
		codes = DefaultCurrencies
	}
	set := &CurrencySet{members: make(map[string]struct{}, len(codes))}
	for _, code := range codes {
		code = strings.ToUpper(strings.TrimSpace(code))
		if code == "" {
			continue
		}
		if _, ok := set.members[code]; ok {
			continue
		}
		set.members[code] = struct{}{}
		set.codes = append(set.codes, code)
	}
	return set
}

// Contains reports membership; the match is case-insensitive.
func (s *CurrencySet) Contains(code string) bool {
	_, ok := s.members[strings.ToUpper(strings.TrimSpace(code))]
	return ok
}

// Codes returns the supported codes in declaration order.
func (s *CurrencySet) Codes() []string {
	out := make([]string, len(s.codes))
	copy(out, s.codes)
	return out
}
