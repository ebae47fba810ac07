package wifi

import (
	"reflect"
	"testing"
)

func makeNetwork(ssid, bssid string) Network {
	return NewNetwork(ssid, "WPA2", 50, 2412, nil, bssid, nil)
}

func keysOf(networks []Network) []string {
	keys := make([]string, len(networks))
	for i, n := range networks {
		keys[i] = identityKey(n)
	}
	return keys
}

func TestMergeUniqueIdempotent(t *testing.T) {
	batch := []Network{
		makeNetwork("HomeNet", "AA:BB:CC:DD:EE:FF"),
		makeNetwork("Cafe", "11:22:33:44:55:66"),
	}

	once := MergeUnique(nil, batch)
	twice := MergeUnique(once, batch)

	if !reflect.DeepEqual(keysOf(once), keysOf(twice)) {
		t.Errorf("second merge changed the set: %v vs %v", keysOf(once), keysOf(twice))
	}
	if len(twice) != 2 {
		t.Errorf("merged size = %d, want 2", len(twice))
	}
}

func TestMergeUniqueSameSSIDDifferentBSSID(t *testing.T) {
	// Two access points advertising the same network name are distinct.
	merged := MergeUnique(nil, []Network{
		makeNetwork("Cafe", "AA:AA:AA:AA:AA:AA"),
		makeNetwork("Cafe", "BB:BB:BB:BB:BB:BB"),
	})

	if len(merged) != 2 {
		t.Fatalf("merged size = %d, want both access points kept", len(merged))
	}
}

func TestMergeUniqueMissingBSSIDCollapses(t *testing.T) {
	// Without a valid BSSID the identity falls back to the placeholder, so
	// repeated sightings of the same SSID collapse into one entry.
	merged := MergeUnique(nil, []Network{
		makeNetwork("OpenNet", ""),
		makeNetwork("OpenNet", "junk"),
	})

	if len(merged) != 1 {
		t.Fatalf("merged size = %d, want 1", len(merged))
	}
}

func TestMergeUniquePreservesOrder(t *testing.T) {
	existing := []Network{makeNetwork("A", "AA:AA:AA:AA:AA:AA")}
	incoming := []Network{
		makeNetwork("B", "BB:BB:BB:BB:BB:BB"),
		makeNetwork("A", "AA:AA:AA:AA:AA:AA"),
		makeNetwork("C", "CC:CC:CC:CC:CC:CC"),
	}

	merged := MergeUnique(existing, incoming)
	got := make([]string, len(merged))
	for i, n := range merged {
		got[i] = n.SSID
	}

	want := []string{"A", "B", "C"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("order = %v, want %v", got, want)
	}
}

func TestDedupeForExport(t *testing.T) {
	accumulated := []Network{
		makeNetwork("A", "AA:AA:AA:AA:AA:AA"),
		makeNetwork("B", "BB:BB:BB:BB:BB:BB"),
		makeNetwork("A", "AA:AA:AA:AA:AA:AA"),
	}

	deduped := DedupeForExport(accumulated)
	if len(deduped) != 2 {
		t.Errorf("deduped size = %d, want 2", len(deduped))
	}
}
