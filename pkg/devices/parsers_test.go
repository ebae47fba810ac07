package devices

import (
	"context"
	"strings"
	"testing"
	"time"
)

func TestNeighborTableParser(t *testing.T) {
	out := `router.local (192.168.1.1) at aa:bb:cc:dd:ee:ff [ether] on wlan0
? (192.168.1.42) at 11:22:33:44:55:66 [ether] on wlan0
something (192.168.1.77) at <incomplete> on wlan0
not a neighbor line`

	found := NeighborTableParser{}.Parse(out)
	if len(found) != 2 {
		t.Fatalf("parsed %d devices, want 2", len(found))
	}

	first := found[0]
	if first.IPAddress != "192.168.1.1" || first.MACAddress != "AA:BB:CC:DD:EE:FF" || first.Hostname != "router.local" {
		t.Errorf("first device = %+v", first)
	}

	if found[1].Hostname != "" {
		t.Errorf("hostname %q, want the ? token treated as absent", found[1].Hostname)
	}
}

func TestAddressScanParser(t *testing.T) {
	out := "Interface: wlan0, type: EN10MB, MAC: 00:11:22:33:44:55, IPv4: 192.168.1.10\n" +
		"Starting arp-scan 1.10.0 with 256 hosts\n" +
		"192.168.1.1\taa:bb:cc:dd:ee:ff\tAcme Router Co\n" +
		"192.168.1.23\t11:22:33:44:55:66\n" +
		"999.1.1.1\tde:ad:be:ef:00:11\tBogus\n" +
		"192.168.1.30\tnot-a-mac\tBogus\n" +
		"2 packets received by filter, 0 packets dropped\n"

	found := AddressScanParser{}.Parse(out)
	if len(found) != 2 {
		t.Fatalf("parsed %d devices, want 2", len(found))
	}
	if found[0].Vendor != "Acme Router Co" {
		t.Errorf("vendor = %q", found[0].Vendor)
	}
	if found[1].Vendor != "" {
		t.Errorf("vendor = %q, want empty for the two-column line", found[1].Vendor)
	}
	if found[1].MACAddress != "11:22:33:44:55:66" {
		t.Errorf("mac = %q", found[1].MACAddress)
	}
}

func TestHostDiscoveryParser(t *testing.T) {
	out := `Starting Nmap 7.94 ( https://nmap.org )
Nmap scan report for router.local (192.168.1.1)
Host is up (0.0042s latency).
MAC Address: AA:BB:CC:DD:EE:FF (Acme Networks)
Nmap scan report for 192.168.1.50
Host is up (0.11s latency).
MAC Address: 11:22:33:44:55:66 (Unknown)
Nmap scan report for 192.168.1.99
Host is up.
Nmap done: 256 IP addresses (3 hosts up) scanned`

	found := HostDiscoveryParser{}.Parse(out)
	if len(found) != 2 {
		t.Fatalf("parsed %d devices, want 2 (the MAC-less block emits nothing)", len(found))
	}

	first := found[0]
	if first.IPAddress != "192.168.1.1" || first.Hostname != "router.local" || first.Vendor != "Acme Networks" {
		t.Errorf("first device = %+v", first)
	}
	if found[1].IPAddress != "192.168.1.50" || found[1].Hostname != "" {
		t.Errorf("second device = %+v", found[1])
	}
}

func TestHostDiscoveryParserCursorResets(t *testing.T) {
	// A MAC line with no preceding host announcement belongs to nothing.
	out := "MAC Address: AA:BB:CC:DD:EE:FF (Orphan)\n"
	if found := (HostDiscoveryParser{}).Parse(out); len(found) != 0 {
		t.Errorf("parsed %d devices from an orphan MAC line, want 0", len(found))
	}
}

func TestBuildDevicesPolicy(t *testing.T) {
	neighbor := "router.local (192.168.1.1) at aa:bb:cc:dd:ee:ff [ether] on wlan0\n"
	addrScan := "192.168.1.1\taa:bb:cc:dd:ee:ff\tAcme Router Co\n192.168.1.23\t11:22:33:44:55:66\n"
	sweep := "Nmap scan report for 192.168.1.200\nMAC Address: DE:AD:BE:EF:00:11 (Other)\n"

	// Primary sources answered: fallback output must be ignored and the
	// shared MAC collapses to its first occurrence.
	found := BuildDevices(neighbor, addrScan, sweep)
	if len(found) != 2 {
		t.Fatalf("found %d devices, want 2", len(found))
	}
	if found[0].MACAddress != "AA:BB:CC:DD:EE:FF" || found[0].Hostname != "router.local" {
		t.Errorf("first device = %+v, want the neighbor-table record kept", found[0])
	}
	for _, d := range found {
		if d.MACAddress == "DE:AD:BE:EF:00:11" {
			t.Error("fallback output leaked into a non-empty primary result")
		}
	}

	// Primary sources empty: the fallback is consulted.
	found = BuildDevices("", "garbage\n", sweep)
	if len(found) != 1 || found[0].MACAddress != "DE:AD:BE:EF:00:11" {
		t.Errorf("fallback result = %+v", found)
	}
}

func TestMergeByMACIdempotent(t *testing.T) {
	batch := []Device{
		{IPAddress: "192.168.1.1", MACAddress: "AA:BB:CC:DD:EE:FF", ObservedAt: time.Now()},
		{IPAddress: "192.168.1.2", MACAddress: "11:22:33:44:55:66", ObservedAt: time.Now()},
	}

	once := MergeByMAC(nil, batch)
	twice := MergeByMAC(once, batch)
	if len(twice) != len(once) {
		t.Errorf("second merge grew the set: %d vs %d", len(twice), len(once))
	}
}

func TestDiscovererFallback(t *testing.T) {
	runner := &scriptedRunner{outputs: map[string]string{
		"arp -a":   "nothing useful",
		"arp-scan": "Starting arp-scan 1.10.0\n",
		"nmap":     "Nmap scan report for 192.168.1.200\nMAC Address: DE:AD:BE:EF:00:11 (Other)\n",
	}}

	d := NewDiscoverer(runner, nil)
	d.Community = "" // no agents in tests

	found := d.Discover(context.Background(), "192.168.1.0/24")
	if len(found) != 1 || found[0].MACAddress != "DE:AD:BE:EF:00:11" {
		t.Fatalf("fallback discovery = %+v", found)
	}

	ran := strings.Join(runner.calls, ";")
	if !strings.Contains(ran, "nmap") {
		t.Error("host-discovery sweep was not invoked")
	}
}

func TestDiscovererSkipsSweepWhenPrimaryAnswers(t *testing.T) {
	runner := &scriptedRunner{outputs: map[string]string{
		"arp -a": "router.local (192.168.1.1) at aa:bb:cc:dd:ee:ff [ether] on wlan0\n",
	}}

	d := NewDiscoverer(runner, nil)
	d.Community = ""

	found := d.Discover(context.Background(), "192.168.1.0/24")
	if len(found) != 1 {
		t.Fatalf("found %d devices, want 1", len(found))
	}
	for _, call := range runner.calls {
		if strings.Contains(call, "nmap") {
			t.Error("sweep ran although the neighbor table answered")
		}
	}
}

type scriptedRunner struct {
	outputs map[string]string
	calls   []string
}

func (r *scriptedRunner) Run(_ context.Context, commandLine string, _ time.Duration) (bool, string) {
	r.calls = append(r.calls, commandLine)
	for key, out := range r.outputs {
		if strings.Contains(commandLine, key) {
			return true, out
		}
	}
	return false, ""
}
