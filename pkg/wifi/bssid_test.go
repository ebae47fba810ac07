package wifi

import "testing"

func TestNormalizeBSSID(t *testing.T) {
	cases := []struct {
		raw  string
		want string
		ok   bool
	}{
		{"AA:BB:CC:DD:EE:FF", "AA:BB:CC:DD:EE:FF", true},
		{"aa:bb:cc:dd:ee:ff", "AA:BB:CC:DD:EE:FF", true},
		{"aa-bb-cc-dd-ee-ff", "AA:BB:CC:DD:EE:FF", true},
		{"Aa:bB-cC:Dd-Ee:fF", "AA:BB:CC:DD:EE:FF", true},
		{"  aa:bb:cc:dd:ee:ff  ", "AA:BB:CC:DD:EE:FF", true},
		// Shell-escaping artifacts from captured terse output.
		{`AA\:BB\:CC\:DD\:EE\:FF`, "AA:BB:CC:DD:EE:FF", true},
		// A lone octet is a partial-parse artifact, never guessed into an address.
		{"AA", "", false},
		{"", "", false},
		{"AA:BB:CC:DD:EE", "", false},
		{"AA:BB:CC:DD:EE:FF:00", "", false},
		{"GG:BB:CC:DD:EE:FF", "", false},
		{"AABBCCDDEEFF", "", false},
		{"AA:BB:CC:DD:EE:F", "", false},
		{"not a mac", "", false},
	}

	for _, tc := range cases {
		got, ok := NormalizeBSSID(tc.raw)
		if ok != tc.ok || got != tc.want {
			t.Errorf("NormalizeBSSID(%q) = %q, %v, want %q, %v", tc.raw, got, ok, tc.want, tc.ok)
		}
	}
}
