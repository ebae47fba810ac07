package devices

import "testing"

func TestVendorFromDescription(t *testing.T) {
	tests := []struct {
		descr string
		want  string
	}{
		{"Cisco IOS Software, C2960 Software", "Cisco"},
		{"RouterOS RB750Gr3 MikroTik", "MikroTik"},
		{"EdgeOS v2.0.9 EdgeRouter", "Ubiquiti"},
		{"Linux debian 6.1.0-13-amd64", "Linux host"},
		{"Some unknown agent", ""},
	}

	for _, tt := range tests {
		if got := vendorFromDescription(tt.descr); got != tt.want {
			t.Errorf("vendorFromDescription(%q) = %q, want %q", tt.descr, got, tt.want)
		}
	}
}
