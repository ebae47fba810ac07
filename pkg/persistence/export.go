// pkg/persistence/export.go
package persistence

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/Hessevalentino/WSS/pkg/devices"
	"github.com/Hessevalentino/WSS/pkg/wifi"
)

// ScanDocument is the JSON document shape downstream consumers expect.
// Networks run through the export dedupe pass immediately before
// serialization.
type ScanDocument struct {
	Timestamp          time.Time                `json:"timestamp"`
	Networks           []wifi.Network           `json:"networks"`
	ConnectionAttempts []wifi.ConnectionAttempt `json:"connection_attempts"`
	NetworkDevices     []devices.Device         `json:"network_devices"`
}

// Exporter writes session data into timestamped files in the log
// directory.
type Exporter struct {
	LogDir string
	Log    *logrus.Logger
}

// NewExporter returns an Exporter writing into logDir.
func NewExporter(logDir string, log *logrus.Logger) *Exporter {
	return &Exporter{LogDir: logDir, Log: log}
}

// SaveJSON writes one scan document and returns its path.
func (e *Exporter) SaveJSON(session *Session) (string, error) {
	doc := ScanDocument{
		Timestamp:          time.Now(),
		Networks:           wifi.DedupeForExport(session.Networks()),
		ConnectionAttempts: session.Attempts(),
		NetworkDevices:     session.Devices(),
	}

	path := filepath.Join(e.LogDir, fmt.Sprintf("wifi_scan_%s.json", timestampSuffix()))
	if err := writeJSONAtomic(path, doc); err != nil {
		return "", err
	}

	e.logExport(path, len(doc.Networks))
	return path, nil
}

// SaveCSV writes one CSV file per record type and returns the networks
// file path (the primary artifact).
func (e *Exporter) SaveCSV(session *Session) (string, error) {
	suffix := timestampSuffix()

	networksPath := filepath.Join(e.LogDir, fmt.Sprintf("wifi_networks_%s.csv", suffix))
	if err := writeNetworksCSV(networksPath, wifi.DedupeForExport(session.Networks())); err != nil {
		return "", err
	}

	attempts := session.Attempts()
	if len(attempts) > 0 {
		attemptsPath := filepath.Join(e.LogDir, fmt.Sprintf("wifi_attempts_%s.csv", suffix))
		if err := writeAttemptsCSV(attemptsPath, attempts); err != nil {
			return "", err
		}
	}

	found := session.Devices()
	if len(found) > 0 {
		devicesPath := filepath.Join(e.LogDir, fmt.Sprintf("wifi_devices_%s.csv", suffix))
		if err := writeDevicesCSV(devicesPath, found); err != nil {
			return "", err
		}
	}

	e.logExport(networksPath, len(session.Networks()))
	return networksPath, nil
}

// LogInfo describes one log file for the log browser.
type LogInfo struct {
	Name    string
	Path    string
	SizeKB  float64
	ModTime time.Time
}

// ListLogs enumerates JSON logs in the log directory, newest first.
func (e *Exporter) ListLogs() ([]LogInfo, error) {
	matches, err := filepath.Glob(filepath.Join(e.LogDir, "*.json"))
	if err != nil {
		return nil, err
	}

	var logs []LogInfo
	for _, path := range matches {
		info, err := os.Stat(path)
		if err != nil {
			continue
		}
		logs = append(logs, LogInfo{
			Name:    filepath.Base(path),
			Path:    path,
			SizeKB:  float64(info.Size()) / 1024,
			ModTime: info.ModTime(),
		})
	}

	sort.Slice(logs, func(i, j int) bool { return logs[i].ModTime.After(logs[j].ModTime) })
	return logs, nil
}

// CleanupOldLogs removes log files older than maxAgeDays. The scan data
// itself is append-only; only exported files age out.
func (e *Exporter) CleanupOldLogs(maxAgeDays int) int {
	if maxAgeDays <= 0 {
		return 0
	}

	cutoff := time.Now().AddDate(0, 0, -maxAgeDays)
	removed := 0

	for _, pattern := range []string{"*.json", "*.csv"} {
		matches, err := filepath.Glob(filepath.Join(e.LogDir, pattern))
		if err != nil {
			continue
		}
		for _, path := range matches {
			info, err := os.Stat(path)
			if err != nil || !info.ModTime().Before(cutoff) {
				continue
			}
			if os.Remove(path) == nil {
				removed++
			}
		}
	}

	if removed > 0 && e.Log != nil {
		e.Log.WithField("removed", removed).Info("cleaned up old logs")
	}
	return removed
}

func (e *Exporter) logExport(path string, networks int) {
	if e.Log != nil {
		e.Log.WithFields(logrus.Fields{
			"file":     filepath.Base(path),
			"networks": networks,
		}).Info("session exported")
	}
}

// writeJSONAtomic writes through a temporary file and renames it into
// place so a crashed export never leaves a truncated document.
func writeJSONAtomic(path string, doc ScanDocument) error {
	tempPath := path + ".tmp"

	file, err := os.Create(tempPath)
	if err != nil {
		return fmt.Errorf("failed to create export file: %w", err)
	}
	defer os.Remove(tempPath)

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(doc); err != nil {
		file.Close()
		return fmt.Errorf("failed to encode export: %w", err)
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("failed to flush export: %w", err)
	}

	if err := os.Rename(tempPath, path); err != nil {
		return fmt.Errorf("failed to move export into place: %w", err)
	}
	return nil
}

func writeNetworksCSV(path string, networks []wifi.Network) error {
	return writeCSV(path,
		[]string{"ssid", "security", "signal_percent", "frequency_mhz", "band", "channel", "bssid", "rssi", "observed_at"},
		len(networks),
		func(i int) []string {
			n := networks[i]
			return []string{
				n.SSID,
				n.Security,
				strconv.Itoa(n.SignalPercent),
				strconv.Itoa(n.FrequencyMHz),
				n.Band,
				optionalInt(n.Channel),
				optionalString(n.BSSID),
				optionalInt(n.RSSI),
				n.ObservedAt.Format(time.RFC3339),
			}
		})
}

func writeAttemptsCSV(path string, attempts []wifi.ConnectionAttempt) error {
	return writeCSV(path,
		[]string{"ssid", "timestamp", "success", "ip_address", "error_message", "band", "signal", "ping_success", "ping_stats"},
		len(attempts),
		func(i int) []string {
			a := attempts[i]
			return []string{
				a.SSID,
				a.Timestamp.Format(time.RFC3339),
				strconv.FormatBool(a.Success),
				optionalString(a.IPAddress),
				optionalString(a.ErrorMessage),
				optionalString(a.Band),
				optionalInt(a.Signal),
				optionalBool(a.PingSuccess),
				optionalString(a.PingStats),
			}
		})
}

func writeDevicesCSV(path string, found []devices.Device) error {
	return writeCSV(path,
		[]string{"ip_address", "mac_address", "hostname", "vendor", "observed_at"},
		len(found),
		func(i int) []string {
			d := found[i]
			return []string{d.IPAddress, d.MACAddress, d.Hostname, d.Vendor, d.ObservedAt.Format(time.RFC3339)}
		})
}

func writeCSV(path string, header []string, rows int, row func(i int) []string) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", filepath.Base(path), err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	if err := writer.Write(header); err != nil {
		return err
	}
	for i := 0; i < rows; i++ {
		if err := writer.Write(row(i)); err != nil {
			return err
		}
	}

	writer.Flush()
	return writer.Error()
}

func timestampSuffix() string {
	return time.Now().Format("20060102_150405")
}

func optionalInt(v *int) string {
	if v == nil {
		return ""
	}
	return strconv.Itoa(*v)
}

func optionalString(v *string) string {
	if v == nil {
		return ""
	}
	return *v
}

func optionalBool(v *bool) string {
	if v == nil {
		return ""
	}
	return strconv.FormatBool(*v)
}
