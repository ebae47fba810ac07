// pkg/devices/parsers.go
package devices

import (
	"regexp"
	"strings"
	"time"
)

// SourceParser turns one external tool's captured text into device
// candidates. Parsers never fail; text they cannot interpret produces an
// empty result.
type SourceParser interface {
	Name() string
	Parse(raw string) []Device
}

var (
	// host (ip) at mac, the neighbor-table report form.
	neighborPattern = regexp.MustCompile(`^(\S+)\s+\((\d{1,3}(?:\.\d{1,3}){3})\)\s+at\s+([0-9A-Fa-f:]{17})`)

	ipv4Pattern = regexp.MustCompile(`^\d{1,3}(?:\.\d{1,3}){3}$`)
	macPattern  = regexp.MustCompile(`^(?:[0-9A-Fa-f]{2}:){5}[0-9A-Fa-f]{2}$`)

	// Host-discovery report lines: an IP announcement opens a host block,
	// a MAC line inside the block closes it.
	reportPattern  = regexp.MustCompile(`^Nmap scan report for (?:(\S+) \()?(\d{1,3}(?:\.\d{1,3}){3})\)?`)
	macLinePattern = regexp.MustCompile(`MAC Address: ((?:[0-9A-Fa-f]{2}:){5}[0-9A-Fa-f]{2})(?:\s+\(([^)]*)\))?`)
)

// NeighborTableParser reads `arp -a` style output: one line per cached
// entry, `<hostname> (<ip>) at <mac> [type] on <iface>`.
type NeighborTableParser struct{}

func (NeighborTableParser) Name() string { return "neighbor-table" }

func (NeighborTableParser) Parse(raw string) []Device {
	var found []Device
	now := time.Now()

	for _, line := range strings.Split(raw, "\n") {
		if strings.Contains(line, "incomplete") {
			continue
		}
		m := neighborPattern.FindStringSubmatch(strings.TrimSpace(line))
		if m == nil {
			continue
		}

		hostname := m[1]
		if hostname == "?" {
			hostname = ""
		}

		found = append(found, Device{
			IPAddress:  m[2],
			MACAddress: strings.ToUpper(m[3]),
			Hostname:   hostname,
			ObservedAt: now,
		})
	}
	return found
}

// AddressScanParser reads arp-scan output: tab-delimited ip, mac and an
// optional vendor column, surrounded by banner and summary lines.
type AddressScanParser struct{}

func (AddressScanParser) Name() string { return "address-scan" }

func (AddressScanParser) Parse(raw string) []Device {
	var found []Device
	now := time.Now()

	for _, line := range strings.Split(raw, "\n") {
		if strings.HasPrefix(line, "Interface:") || strings.HasPrefix(line, "Starting") {
			continue
		}

		fields := strings.Split(line, "\t")
		if len(fields) < 2 {
			continue
		}

		ip := strings.TrimSpace(fields[0])
		mac := strings.TrimSpace(fields[1])
		if !ipv4Pattern.MatchString(ip) || !macPattern.MatchString(mac) {
			continue
		}

		vendor := ""
		if len(fields) > 2 {
			vendor = strings.TrimSpace(fields[2])
		}

		found = append(found, Device{
			IPAddress:  ip,
			MACAddress: strings.ToUpper(mac),
			Vendor:     vendor,
			ObservedAt: now,
		})
	}
	return found
}

// HostDiscoveryParser reads host-discovery scan output as a stateful line
// scan: a scan-report line sets the current host, and the MAC line within
// the same block emits one device and resets the cursor.
type HostDiscoveryParser struct{}

func (HostDiscoveryParser) Name() string { return "host-discovery" }

func (HostDiscoveryParser) Parse(raw string) []Device {
	var found []Device
	now := time.Now()

	currentIP := ""
	currentHost := ""

	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)

		if m := reportPattern.FindStringSubmatch(line); m != nil {
			currentHost = m[1]
			currentIP = m[2]
			continue
		}

		if currentIP == "" {
			continue
		}
		if m := macLinePattern.FindStringSubmatch(line); m != nil {
			found = append(found, Device{
				IPAddress:  currentIP,
				MACAddress: strings.ToUpper(m[1]),
				Hostname:   currentHost,
				Vendor:     strings.TrimSpace(m[2]),
				ObservedAt: now,
			})
			currentIP = ""
			currentHost = ""
		}
	}
	return found
}

// BuildDevices applies the discovery policy to the three captured outputs:
// the neighbor table and the address scan always contribute, the host
// discovery output is consulted only when the first two produced nothing.
// The combined list is deduplicated by MAC, first occurrence kept.
func BuildDevices(neighborOut, addressScanOut, hostDiscoveryOut string) []Device {
	combined := append(NeighborTableParser{}.Parse(neighborOut), AddressScanParser{}.Parse(addressScanOut)...)
	if len(combined) == 0 {
		combined = HostDiscoveryParser{}.Parse(hostDiscoveryOut)
	}
	return DedupeByMAC(combined)
}
