// pkg/wifi/model.go
package wifi

import (
	"strings"
	"time"
)

// Network represents one observed wireless network. Records are immutable
// once built; derived fields (band, inferred channel) are computed by
// NewNetwork and never set independently.
type Network struct {
	SSID          string    `json:"ssid"`
	Security      string    `json:"security"`
	SignalPercent int       `json:"signal_percent"`
	FrequencyMHz  int       `json:"frequency_mhz"`
	Band          string    `json:"band"`
	Channel       *int      `json:"channel"`
	BSSID         *string   `json:"bssid"`
	RSSI          *int      `json:"rssi"`
	ObservedAt    time.Time `json:"observed_at"`
}

// Band labels produced by BandForFrequency.
const (
	Band24GHz   = "2.4GHz"
	Band5GHz    = "5GHz"
	Band6GHz    = "6GHz"
	BandUnknown = "Unknown"
)

// NewNetwork builds a Network from parsed candidate fields. The band is
// always derived from the frequency; the channel comes from the listing when
// present, otherwise from frequency inference. An invalid BSSID becomes nil.
func NewNetwork(ssid, security string, signalPercent, frequencyMHz int, channel *int, bssidRaw string, rssi *int) Network {
	n := Network{
		SSID:          ssid,
		Security:      security,
		SignalPercent: signalPercent,
		FrequencyMHz:  frequencyMHz,
		Band:          BandForFrequency(frequencyMHz),
		RSSI:          rssi,
		ObservedAt:    time.Now(),
	}

	if bssid, ok := NormalizeBSSID(bssidRaw); ok {
		n.BSSID = &bssid
	}

	if channel != nil {
		n.Channel = channel
	} else if ch, ok := ChannelForFrequency(frequencyMHz); ok {
		n.Channel = &ch
	}

	return n
}

// IsOpen reports whether the network advertises no security.
func (n Network) IsOpen() bool {
	return strings.TrimSpace(n.Security) == ""
}

// SignalQuality returns a coarse text rating of the signal percentage.
func (n Network) SignalQuality() string {
	switch {
	case n.SignalPercent >= 80:
		return "Excellent"
	case n.SignalPercent >= 60:
		return "Good"
	case n.SignalPercent >= 40:
		return "Weak"
	default:
		return "Very weak"
	}
}

// ConnectionAttempt records the outcome of one auto-connect try. Band and
// signal echo the network that was attempted; ping fields are filled only
// when an address was obtained.
type ConnectionAttempt struct {
	SSID         string    `json:"ssid"`
	Timestamp    time.Time `json:"timestamp"`
	Success      bool      `json:"success"`
	IPAddress    *string   `json:"ip_address"`
	ErrorMessage *string   `json:"error_message"`
	Band         *string   `json:"band"`
	Signal       *int      `json:"signal"`
	PingSuccess  *bool     `json:"ping_success"`
	PingStats    *string   `json:"ping_stats"`
}
