// pkg/wifi/scanner.go
package wifi

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Hessevalentino/WSS/pkg/command"
)

// NetworkStore accumulates deduplicated networks across scan cycles.
// Implementations must apply MergeUnique semantics.
type NetworkStore interface {
	MergeNetworks(batch []Network) int
}

// Scanner sequences one scan cycle: trigger a rescan, read the RSSI
// sidecar, read the primary listing, build Network records, and merge them
// into the store. Scan returns the raw per-cycle batch so callers can show
// "networks seen this cycle" distinctly from the accumulated history.
type Scanner struct {
	Interface string
	Runner    command.Runner
	Store     NetworkStore

	// SettleDelay is how long to wait after a successful rescan trigger
	// before reading the listing, so the radio can repopulate its cache.
	SettleDelay time.Duration
}

// NewScanner returns a Scanner reading from iface.
func NewScanner(iface string, runner command.Runner, store NetworkStore) *Scanner {
	return &Scanner{
		Interface:   iface,
		Runner:      runner,
		Store:       store,
		SettleDelay: 2 * time.Second,
	}
}

// Scan performs one cycle. A failed primary listing yields an empty batch,
// not an error; the rescan trigger and the sidecar are best-effort.
func (s *Scanner) Scan(ctx context.Context) []Network {
	ok, _ := s.Runner.Run(ctx, "nmcli device wifi rescan", command.ScanTimeout)
	if ok && s.SettleDelay > 0 {
		select {
		case <-time.After(s.SettleDelay):
		case <-ctx.Done():
			return nil
		}
	}

	rssiBySSID := map[string]int{}
	if ok, out := s.Runner.Run(ctx,
		fmt.Sprintf("iwlist %s scan | grep -E 'ESSID|Signal level'", s.Interface),
		command.DefaultTimeout); ok {
		rssiBySSID = ParseSignalSidecar(out)
	}

	ok, out := s.Runner.Run(ctx,
		"nmcli -t -f SSID,SECURITY,SIGNAL,FREQ,BSSID,CHAN device wifi list",
		command.DefaultTimeout)
	if !ok {
		return nil
	}

	batch := ParseListing(out, rssiBySSID)
	if s.Store != nil {
		s.Store.MergeNetworks(batch)
	}
	return batch
}

// ParseListing parses the full primary listing output into Network records,
// attaching sidecar RSSI by SSID. Unparseable lines are skipped.
func ParseListing(out string, rssiBySSID map[string]int) []Network {
	var batch []Network
	for _, line := range strings.Split(strings.TrimSpace(out), "\n") {
		c, ok := ParseListingLine(line)
		if !ok {
			continue
		}

		var rssi *int
		if v, found := rssiBySSID[c.SSID]; found {
			rssi = &v
		}

		batch = append(batch, NewNetwork(c.SSID, c.Security, c.SignalPercent, c.FrequencyMHz, c.Channel, c.BSSIDRaw, rssi))
	}
	return batch
}
