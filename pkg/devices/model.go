// pkg/devices/model.go
package devices

import "time"

// Device represents one host observed on the local network. Identity for
// deduplication is the MAC address alone; hostname and vendor are
// best-effort annotations.
type Device struct {
	IPAddress  string    `json:"ip_address"`
	MACAddress string    `json:"mac_address"`
	Hostname   string    `json:"hostname,omitempty"`
	Vendor     string    `json:"vendor,omitempty"`
	ObservedAt time.Time `json:"observed_at"`
}

// DedupeByMAC keeps the first occurrence of each MAC address, preserving
// order.
func DedupeByMAC(devices []Device) []Device {
	seen := make(map[string]struct{}, len(devices))
	var unique []Device
	for _, d := range devices {
		if _, ok := seen[d.MACAddress]; ok {
			continue
		}
		seen[d.MACAddress] = struct{}{}
		unique = append(unique, d)
	}
	return unique
}

// MergeByMAC appends to existing the incoming devices whose MAC is not
// already present. Idempotent under repetition, like the network merge.
func MergeByMAC(existing, incoming []Device) []Device {
	seen := make(map[string]struct{}, len(existing))
	for _, d := range existing {
		seen[d.MACAddress] = struct{}{}
	}

	merged := existing
	for _, d := range incoming {
		if _, ok := seen[d.MACAddress]; ok {
			continue
		}
		seen[d.MACAddress] = struct{}{}
		merged = append(merged, d)
	}
	return merged
}
