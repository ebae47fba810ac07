// pkg/wifi/freq.go
package wifi

// channel5GHz maps the 25 standard 5GHz center frequencies (MHz) to their
// channel numbers. Frequencies outside the table simply have no channel.
var channel5GHz = map[int]int{
	5180: 36, 5200: 40, 5220: 44, 5240: 48,
	5260: 52, 5280: 56, 5300: 60, 5320: 64,
	5500: 100, 5520: 104, 5540: 108, 5560: 112,
	5580: 116, 5600: 120, 5620: 124, 5640: 128,
	5660: 132, 5680: 136, 5700: 140, 5720: 144,
	5745: 149, 5765: 153, 5785: 157, 5805: 161,
	5825: 165,
}

// BandForFrequency classifies a frequency in MHz into a band label.
// Total over all integers: unknown or non-positive input yields BandUnknown.
func BandForFrequency(freqMHz int) string {
	switch {
	case freqMHz <= 0:
		return BandUnknown
	case freqMHz >= 2400 && freqMHz <= 2500:
		return Band24GHz
	case freqMHz >= 5000 && freqMHz <= 6000:
		return Band5GHz
	case freqMHz > 6000:
		return Band6GHz
	default:
		return BandUnknown
	}
}

// ChannelForFrequency infers a channel number from a center frequency in
// MHz. In the 2.4GHz range channels follow the 5MHz spacing formula, with
// channel 14 pinned to 2484. In the 5GHz range only frequencies in the
// lookup table resolve. Everything else reports no channel.
func ChannelForFrequency(freqMHz int) (int, bool) {
	switch {
	case freqMHz >= 2412 && freqMHz <= 2484:
		if freqMHz == 2484 {
			return 14, true
		}
		return (freqMHz-2412)/5 + 1, true
	case freqMHz >= 5000 && freqMHz <= 6000:
		ch, ok := channel5GHz[freqMHz]
		return ch, ok
	default:
		return 0, false
	}
}
