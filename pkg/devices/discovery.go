// pkg/devices/discovery.go
package devices

import (
	"context"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/Hessevalentino/WSS/pkg/command"
	"github.com/Hessevalentino/WSS/pkg/snmp"
)

// Discoverer drives one device-discovery pass: it captures the neighbor
// table and an active address scan, falls back to a host-discovery sweep
// when both came up empty, and deduplicates by MAC. Annotation over SNMP
// is optional and strictly best-effort.
type Discoverer struct {
	Runner    command.Runner
	Log       *logrus.Logger
	Community string // SNMP community for annotation; empty disables it
}

// NewDiscoverer returns a Discoverer using runner for acquisition.
func NewDiscoverer(runner command.Runner, log *logrus.Logger) *Discoverer {
	return &Discoverer{Runner: runner, Log: log, Community: "public"}
}

// Discover runs the discovery policy and returns the deduplicated devices
// found this pass. A failed tool contributes nothing; an empty result is a
// valid outcome.
func (d *Discoverer) Discover(ctx context.Context, subnet string) []Device {
	var combined []Device

	if ok, out := d.Runner.Run(ctx, "arp -a", command.DefaultTimeout); ok {
		combined = append(combined, NeighborTableParser{}.Parse(out)...)
	}
	if ok, out := d.Runner.Run(ctx, "arp-scan --localnet --plain", command.DefaultTimeout); ok {
		combined = append(combined, AddressScanParser{}.Parse(out)...)
	}

	// The sweep is expensive, so it only runs when the cheap sources found
	// nothing at all.
	if len(combined) == 0 && subnet != "" {
		if ok, out := d.Runner.Run(ctx, "nmap -sn "+subnet, command.DiscoveryTimeout); ok {
			combined = HostDiscoveryParser{}.Parse(out)
		}
	}

	found := DedupeByMAC(combined)
	if d.Log != nil {
		d.Log.WithField("devices", len(found)).Debug("discovery pass complete")
	}

	if d.Community != "" {
		d.annotate(found)
	}
	return found
}

// annotate fills missing hostname and vendor fields from the SNMP system
// group where an agent answers. Hosts without an agent are left untouched.
func (d *Discoverer) annotate(found []Device) {
	for i := range found {
		if found[i].Hostname != "" && found[i].Vendor != "" {
			continue
		}

		client := snmp.NewClient(found[i].IPAddress, d.Community)
		if err := client.Connect(); err != nil {
			continue
		}

		info, err := client.ReadSystemInfo()
		client.Close()
		if err != nil {
			continue
		}

		if found[i].Hostname == "" {
			found[i].Hostname = info.Name
		}
		if found[i].Vendor == "" {
			found[i].Vendor = vendorFromDescription(info.Description)
		}
	}
}

// vendorKeywords maps lowercase substrings of a system description to a
// vendor label.
var vendorKeywords = []struct {
	keyword string
	vendor  string
}{
	{"cisco", "Cisco"},
	{"mikrotik", "MikroTik"},
	{"routeros", "MikroTik"},
	{"ubiquiti", "Ubiquiti"},
	{"edgeos", "Ubiquiti"},
	{"tp-link", "TP-Link"},
	{"netgear", "Netgear"},
	{"juniper", "Juniper"},
	{"hewlett", "HP"},
	{"procurve", "HP"},
	{"linux", "Linux host"},
	{"windows", "Windows host"},
}

func vendorFromDescription(descr string) string {
	lowered := strings.ToLower(descr)
	for _, entry := range vendorKeywords {
		if strings.Contains(lowered, entry.keyword) {
			return entry.vendor
		}
	}
	return ""
}
