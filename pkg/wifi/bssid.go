// pkg/wifi/bssid.go
package wifi

import (
	"regexp"
	"strings"
)

// bssidPattern accepts six two-hex-digit groups separated by colons or
// hyphens. Partial fragments (a lone octet is a common artifact of naive
// colon splitting) do not match and are rejected rather than guessed at.
var bssidPattern = regexp.MustCompile(`^([0-9A-Fa-f]{2}[:-]){5}[0-9A-Fa-f]{2}$`)

// NormalizeBSSID validates a MAC-address-like token and returns it with
// separators normalized to colons and hex digits upper-cased. Backslashes
// are stripped first; terse listing output escapes the colons inside a
// BSSID, and those escapes survive capture. The second return is false for
// anything that does not look like a full six-octet address.
func NormalizeBSSID(raw string) (string, bool) {
	cleaned := strings.TrimSpace(strings.ReplaceAll(raw, `\`, ""))
	if !bssidPattern.MatchString(cleaned) {
		return "", false
	}
	return strings.ToUpper(strings.ReplaceAll(cleaned, "-", ":")), true
}
