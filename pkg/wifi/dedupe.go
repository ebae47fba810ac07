// pkg/wifi/dedupe.go
package wifi

// noBSSIDKey stands in for the BSSID part of the identity key when a
// network was observed without a valid BSSID.
const noBSSIDKey = "no_bssid"

// identityKey is the deduplication identity of a network: the SSID plus the
// BSSID (or a placeholder). Two access points advertising the same SSID
// under different BSSIDs remain distinct entries.
func identityKey(n Network) string {
	bssid := noBSSIDKey
	if n.BSSID != nil {
		bssid = *n.BSSID
	}
	return n.SSID + "|" + bssid
}

// MergeUnique appends to existing the incoming networks whose identity key
// is not already present, preserving first-seen order. Re-merging the same
// batch is a no-op after the first merge.
func MergeUnique(existing, incoming []Network) []Network {
	seen := make(map[string]struct{}, len(existing))
	for _, n := range existing {
		seen[identityKey(n)] = struct{}{}
	}

	merged := existing
	for _, n := range incoming {
		key := identityKey(n)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		merged = append(merged, n)
	}

	return merged
}

// DedupeForExport re-applies the identity key over a full accumulated set,
// keeping first occurrences. Run immediately before persistence as a final
// guarantee independent of incremental merge correctness.
func DedupeForExport(networks []Network) []Network {
	return MergeUnique(nil, networks)
}
