package payments

import (
	"encoding/json"
	"testing"
)

func TestParseAmount(t *testing.T) {
	cases := []struct {
		in      string
		want    Amount
		wantErr bool
	}{
		{"100.00", 10000, false},
		{"10.50", 1050, false},
		{"10.5", 1050, false},
		{"10", 1000, false},
		{"0.01", 1, false},
		{"0", 0, true},
		{"0.00", 0, true},
		{"-5.00", 0, true},
		{"10.005", 0, true},
		{"1,000.00", 0, true},
		{"abc", 0, true},
		{"", 0, true},
		{"10.", 0, true},
		{".50", 0, true},
	}
	for _, tc := range cases {
		got, err := ParseAmount(tc.in)
		if tc.wantErr {
			if err == nil {
				t.Errorf("ParseAmount(%q) = %v, want error", tc.in, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseAmount(%q): %v", tc.in, err)
			continue
		}
		if got != tc.want {
			t.Errorf("ParseAmount(%q) = %d, want %d", tc.in, got, tc.want)
		}
	}
}

func TestAmountString(t *testing.T) {
	cases := []struct {
		in   Amount
		want string
	}{
		{10000, "100.00"},
		{1050, "10.50"},
		{1, "0.01"},
		{99, "0.99"},
	}
	for _, tc := range cases {
		if got := tc.in.String(); got != tc.want {
			t.Errorf("Amount(%d).String() = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestAmountJSONRoundTrip(t *testing.T) {
	data, err := json.Marshal(Amount(1050))
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != `"10.50"` {
		t.Fatalf("marshal = %s", data)
	}

	var a Amount
	if err := json.Unmarshal([]byte(`"100.00"`), &a); err != nil {
		t.Fatal(err)
	}
	if a != 10000 {
		t.Fatalf("unmarshal = %d", a)
	}

	if err := json.Unmarshal([]byte(`100.00`), &a); err == nil {
		t.Fatal("bare number must be rejected; the wire form is a string")
	}
}
