// pkg/persistence/session.go
package persistence

import (
	"sync"

	"github.com/Hessevalentino/WSS/pkg/devices"
	"github.com/Hessevalentino/WSS/pkg/wifi"
)

// Session owns the data accumulated while the suite runs: every network
// ever seen (deduplicated), every device found, and the chronological list
// of connection attempts. It is handed explicitly to each workflow instead
// of living as ambient shared state, and is safe for use from the scan
// loop and the UI at once.
type Session struct {
	mu       sync.RWMutex
	networks []wifi.Network
	devices  []devices.Device
	attempts []wifi.ConnectionAttempt
}

// NewSession returns an empty session.
func NewSession() *Session {
	return &Session{}
}

// MergeNetworks merges a scan batch into the accumulated set and reports
// how many entries were new.
func (s *Session) MergeNetworks(batch []wifi.Network) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	before := len(s.networks)
	s.networks = wifi.MergeUnique(s.networks, batch)
	return len(s.networks) - before
}

// MergeDevices merges a discovery pass into the accumulated devices.
func (s *Session) MergeDevices(batch []devices.Device) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	before := len(s.devices)
	s.devices = devices.MergeByMAC(s.devices, batch)
	return len(s.devices) - before
}

// AddAttempt appends a connection attempt.
func (s *Session) AddAttempt(attempt wifi.ConnectionAttempt) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.attempts = append(s.attempts, attempt)
}

// Networks returns a copy of the accumulated networks.
func (s *Session) Networks() []wifi.Network {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]wifi.Network(nil), s.networks...)
}

// Devices returns a copy of the accumulated devices.
func (s *Session) Devices() []devices.Device {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]devices.Device(nil), s.devices...)
}

// Attempts returns a copy of the recorded connection attempts in order.
func (s *Session) Attempts() []wifi.ConnectionAttempt {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]wifi.ConnectionAttempt(nil), s.attempts...)
}

// LatestAttempt returns the most recent attempt for the given SSID.
func (s *Session) LatestAttempt(ssid string) (wifi.ConnectionAttempt, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := len(s.attempts) - 1; i >= 0; i-- {
		if s.attempts[i].SSID == ssid {
			return s.attempts[i], true
		}
	}
	return wifi.ConnectionAttempt{}, false
}

// Stats summarizes the session for display.
type Stats struct {
	TotalNetworks      int
	OpenNetworks       int
	Devices            int
	Attempts           int
	SuccessfulAttempts int
}

// Stats computes the current summary.
func (s *Session) Stats() Stats {
	s.mu.RLock()
	defer s.mu.RUnlock()

	st := Stats{
		TotalNetworks: len(s.networks),
		Devices:       len(s.devices),
		Attempts:      len(s.attempts),
	}
	for _, n := range s.networks {
		if n.IsOpen() {
			st.OpenNetworks++
		}
	}
	for _, a := range s.attempts {
		if a.Success {
			st.SuccessfulAttempts++
		}
	}
	return st
}

// Empty reports whether the session holds nothing worth exporting.
func (s *Session) Empty() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.networks) == 0 && len(s.devices) == 0 && len(s.attempts) == 0
}
