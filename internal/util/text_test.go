package util

import "testing"

func TestNormalizeCode(t *testing.T) {
	cases := []struct {
		input string
		want  string
	}{
		{"12345.0", "12345"},
		{"ABC", "ABC"},
		{"  PCR1200  ", "PCR1200"},
		{"", ""},
	}
	for _, tc := range cases {
		if got := NormalizeCode(tc.input); got != tc.want {
			t.Fatalf("NormalizeCode(%q)=%q want %q", tc.input, got, tc.want)
		}
	}
}

func TestParsePrice(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  float64
	}{
		{name: "plain", input: "350.5", want: 350.5},
		{name: "integer", input: "1200", want: 1200},
		{name: "decimal comma", input: "350,5", want: 350.5},
		{name: "thousand dots", input: "1.250.000", want: 1250000},
		{name: "currency prefix", input: "S/ 350.50", want: 350.5},
		{name: "dollar prefix", input: "$120", want: 120},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := ParsePrice(tc.input)
			if got == nil {
				t.Fatalf("price is nil")
			}
			if *got != tc.want {
				t.Fatalf("got %v want %v", *got, tc.want)
			}
		})
	}
}

func TestParsePriceUnparsable(t *testing.T) {
	for _, input := range []string{"N/D", "", "consultar", "-"} {
		if got := ParsePrice(input); got != nil {
			t.Fatalf("ParsePrice(%q)=%v want nil", input, *got)
		}
	}
}

func TestFormatPrice(t *testing.T) {
	if got := FormatPrice(FloatPtr(350.5)); got != "350.50" {
		t.Fatalf("got %q", got)
	}
	if got := FormatPrice(nil); got != "0.00" {
		t.Fatalf("nil price got %q", got)
	}
}

func TestCollapseSpaces(t *testing.T) {
	if got := CollapseSpaces("  A1   205/75R16  GOOD "); got != "A1 205/75R16 GOOD" {
		t.Fatalf("got %q", got)
	}
}
