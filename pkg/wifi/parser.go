// pkg/wifi/parser.go
package wifi

import (
	"strconv"
	"strings"
)

// Candidate holds the raw fields parsed from one terse listing line before
// a Network is constructed from them.
type Candidate struct {
	SSID          string
	Security      string
	SignalPercent int
	FrequencyMHz  int
	BSSIDRaw      string
	Channel       *int
}

// listingFieldCount is the nominal segment count of one terse listing line:
// SSID, SECURITY, SIGNAL, FREQ, six BSSID octets, CHAN.
const listingFieldCount = 11

// ParseListingLine parses one line of terse colon-delimited listing output
// (fields SSID,SECURITY,SIGNAL,FREQ,BSSID,CHAN in that order). A raw BSSID
// itself contains colons, so the six octet segments starting at the fifth
// position are reassembled into one token before anything else is read.
// Lines with fewer than eight segments, or with an empty SSID, are not
// parseable and return false; the caller moves on to the next line.
func ParseListingLine(line string) (Candidate, bool) {
	parts := strings.Split(line, ":")
	if len(parts) < 8 {
		return Candidate{}, false
	}

	ssid := strings.TrimSpace(parts[0])
	if ssid == "" {
		return Candidate{}, false
	}

	bssidEnd := len(parts) - 1
	if bssidEnd > 10 {
		bssidEnd = 10
	}

	c := Candidate{
		SSID:          ssid,
		Security:      strings.TrimSpace(parts[1]),
		SignalPercent: parseSignalPercent(parts[2]),
		FrequencyMHz:  ParseFrequency(parts[3]),
		BSSIDRaw:      strings.Join(parts[4:bssidEnd], ":"),
	}

	if ch := strings.TrimSpace(parts[bssidEnd]); isDigits(ch) {
		v, _ := strconv.Atoi(ch)
		c.Channel = &v
	}

	return c, true
}

// ParseFrequency normalizes a frequency token to integer MHz. Unit suffixes
// and whitespace are stripped; a token containing a dot is read as GHz and
// converted. Unparseable input yields 0 (frequency unknown).
func ParseFrequency(raw string) int {
	cleaned := strings.ReplaceAll(raw, "MHz", "")
	cleaned = strings.ReplaceAll(cleaned, "GHz", "")
	cleaned = strings.ReplaceAll(cleaned, " ", "")
	cleaned = strings.TrimSpace(cleaned)
	if cleaned == "" {
		return 0
	}

	if strings.Contains(cleaned, ".") {
		f, err := strconv.ParseFloat(cleaned, 64)
		if err != nil {
			return 0
		}
		return int(f * 1000)
	}

	v, err := strconv.Atoi(cleaned)
	if err != nil {
		return 0
	}
	return v
}

// ParseSignalSidecar extracts per-SSID RSSI values (dBm) from the output of
// the secondary signal-strength listing. The format interleaves ESSID lines
// with "Signal level=" lines belonging to the most recent ESSID.
func ParseSignalSidecar(out string) map[string]int {
	rssi := make(map[string]int)
	current := ""

	for _, line := range strings.Split(out, "\n") {
		switch {
		case strings.Contains(line, "ESSID:"):
			current = strings.Trim(strings.TrimSpace(afterToken(line, "ESSID:")), `"`)
		case strings.Contains(line, "Signal level=") && current != "":
			token := afterToken(line, "Signal level=")
			if idx := strings.IndexByte(token, ' '); idx >= 0 {
				token = token[:idx]
			}
			if v, err := strconv.Atoi(token); err == nil {
				rssi[current] = v
			}
		}
	}

	return rssi
}

func afterToken(line, token string) string {
	idx := strings.Index(line, token)
	if idx < 0 {
		return ""
	}
	return line[idx+len(token):]
}

func parseSignalPercent(raw string) int {
	token := strings.TrimSpace(raw)
	if !isDigits(token) {
		return 0
	}
	v, _ := strconv.Atoi(token)
	return v
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
