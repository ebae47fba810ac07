package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"os/exec"
	"sort"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/Hessevalentino/WSS/pkg/command"
	"github.com/Hessevalentino/WSS/pkg/config"
	"github.com/Hessevalentino/WSS/pkg/connect"
	"github.com/Hessevalentino/WSS/pkg/devices"
	"github.com/Hessevalentino/WSS/pkg/persistence"
	"github.com/Hessevalentino/WSS/pkg/wifi"
)

// App wires the scanner, connector and exporter around one shared session.
type App struct {
	cfg        config.Config
	log        *logrus.Logger
	session    *persistence.Session
	runner     command.Runner
	scanner    *wifi.Scanner
	connector  *connect.Connector
	discoverer *devices.Discoverer
	exporter   *persistence.Exporter
}

func newApp(cfg config.Config, log *logrus.Logger) (*App, error) {
	logDir, err := cfg.EnsureLogDir()
	if err != nil {
		return nil, fmt.Errorf("failed to prepare log directory: %w", err)
	}

	session := persistence.NewSession()
	runner := command.NewShellRunner(log)

	app := &App{
		cfg:        cfg,
		log:        log,
		session:    session,
		runner:     runner,
		scanner:    wifi.NewScanner(cfg.Interface, runner, session),
		connector:  connect.NewConnector(cfg, runner, session, log),
		discoverer: devices.NewDiscoverer(runner, log),
		exporter:   persistence.NewExporter(logDir, log),
	}

	if cfg.AutoCleanup {
		app.exporter.CleanupOldLogs(cfg.MaxLogAgeDays)
	}
	return app, nil
}

// checkDependencies verifies the external tools the workflows shell out to.
// Only nmcli is mandatory; the rest degrade to reduced functionality.
func (a *App) checkDependencies() bool {
	if _, err := exec.LookPath("nmcli"); err != nil {
		fmt.Println(renderError("nmcli not found; install NetworkManager to use this tool"))
		return false
	}
	for _, optional := range []string{"iwlist", "arp-scan", "nmap"} {
		if _, err := exec.LookPath(optional); err != nil {
			fmt.Println(renderWarning(optional + " not found; some features will be limited"))
		}
	}
	return true
}

// scanOnce runs one scan cycle and returns only this cycle's networks.
func (a *App) scanOnce(ctx context.Context) []wifi.Network {
	return a.scanner.Scan(ctx)
}

// continuousScan repeats scan cycles until the context is cancelled,
// printing a signal-sorted table and band statistics after each one.
func (a *App) continuousScan(ctx context.Context) {
	interval := a.cfg.ScanIntervalDuration()
	scanCount := 0

	for {
		scanCount++
		networks := a.scanOnce(ctx)

		fmt.Println()
		fmt.Println(titleStyle.Render(fmt.Sprintf("WiFi Scan #%d - %s",
			scanCount, time.Now().Format("15:04:05"))))
		printNetworkTable(networks)
		printBandStats(networks)

		select {
		case <-ctx.Done():
			fmt.Println("\nScanning terminated by user.")
			return
		case <-time.After(interval):
		}
	}
}

func printNetworkTable(networks []wifi.Network) {
	if len(networks) == 0 {
		fmt.Println(renderWarning("No networks found"))
		return
	}

	sorted := make([]wifi.Network, len(networks))
	copy(sorted, networks)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].SignalPercent > sorted[j].SignalPercent
	})
	if len(sorted) > 15 {
		sorted = sorted[:15]
	}

	fmt.Println(headerStyle.Render(fmt.Sprintf("%-28s %-14s %-16s %-8s %s",
		"SSID", "Security", "Signal", "Band", "Quality")))

	for _, n := range sorted {
		ssid := n.SSID
		security := n.Security
		if n.IsOpen() {
			ssid = openNetStyle.Render(fmt.Sprintf("%-28s", ssid))
			security = openNetStyle.Render(fmt.Sprintf("%-14s", "OPEN"))
		} else {
			ssid = fmt.Sprintf("%-28s", ssid)
			security = securedNetStyle.Render(fmt.Sprintf("%-14s", security))
		}

		signal := fmt.Sprintf("%d%%", n.SignalPercent)
		if n.RSSI != nil {
			signal = fmt.Sprintf("%d%% (%ddBm)", n.SignalPercent, *n.RSSI)
		}

		fmt.Printf("%s %s %-16s %-8s %s\n", ssid, security, signal, n.Band, n.SignalQuality())
	}
}

func printBandStats(networks []wifi.Network) {
	var open, band24, band5, band6, unknown int
	for _, n := range networks {
		if n.IsOpen() {
			open++
		}
		switch n.Band {
		case wifi.Band24GHz:
			band24++
		case wifi.Band5GHz:
			band5++
		case wifi.Band6GHz:
			band6++
		default:
			unknown++
		}
	}

	fmt.Println()
	fmt.Printf("  Total networks: %d\n", len(networks))
	fmt.Printf("  Open: %d | 2.4GHz: %d | 5GHz: %d | 6GHz: %d\n", open, band24, band5, band6)
	if unknown > 0 {
		fmt.Printf("  Unknown band: %d\n", unknown)
	}
	if open > 0 {
		fmt.Println(renderSuccess(fmt.Sprintf("Found %d open networks", open)))
	}
}

// autoConnect scans, then tries every open network strongest-first and
// prints a report of which ones actually carry traffic.
func (a *App) autoConnect(ctx context.Context) {
	networks := runScanWithSpinner(func() []wifi.Network {
		return a.scanOnce(ctx)
	})

	var open []wifi.Network
	for _, n := range networks {
		if n.IsOpen() {
			open = append(open, n)
		}
	}
	if len(open) == 0 {
		fmt.Println(renderError("No open networks found"))
		return
	}

	sort.SliceStable(open, func(i, j int) bool {
		return open[i].SignalPercent > open[j].SignalPercent
	})

	fmt.Println(renderSuccess(fmt.Sprintf("Found %d open networks", len(open))))
	fmt.Println("\nAvailable open networks:")
	for i, n := range open {
		if i >= 5 {
			break
		}
		rssi := ""
		if n.RSSI != nil {
			rssi = fmt.Sprintf(" (%ddBm)", *n.RSSI)
		}
		fmt.Printf("  %d. %s - %d%%%s [%s]\n", i+1, openNetStyle.Render(n.SSID), n.SignalPercent, rssi, n.Band)
	}
	fmt.Println()

	for i, network := range open {
		if ctx.Err() != nil {
			return
		}

		bssid := "N/A"
		if network.BSSID != nil {
			bssid = *network.BSSID
		}
		fmt.Println(renderInfo(fmt.Sprintf("[%d/%d] Attempting to connect to: %s", i+1, len(open), network.SSID)))
		fmt.Printf("   Signal: %d%% | Band: %s | BSSID: %s\n", network.SignalPercent, network.Band, bssid)

		attempt := a.connector.Connect(ctx, network)
		if attempt.Success {
			fmt.Println(renderSuccess("   Connected successfully"))
		} else {
			reason := ""
			if attempt.ErrorMessage != nil {
				reason = *attempt.ErrorMessage
			}
			fmt.Println(renderError("   Failed: " + reason))
		}
		fmt.Println()
	}

	a.printConnectionReport(open)
}

// printConnectionReport summarizes the latest attempt per tested network.
func (a *App) printConnectionReport(tested []wifi.Network) {
	var working, failed []wifi.ConnectionAttempt
	byName := make(map[string]wifi.Network, len(tested))
	for _, network := range tested {
		byName[network.SSID] = network
		attempt, ok := a.session.LatestAttempt(network.SSID)
		if !ok {
			continue
		}
		if attempt.Success {
			working = append(working, attempt)
		} else {
			failed = append(failed, attempt)
		}
	}

	divider := strings.Repeat("=", 60)
	fmt.Println(divider)
	fmt.Println(titleStyle.Render("CONNECTION REPORT"))
	fmt.Println(divider)

	fmt.Println("\nSummary:")
	fmt.Printf("  Networks tested: %d\n", len(tested))
	fmt.Printf("  Successful: %d\n", len(working))
	fmt.Printf("  Failed: %d\n", len(failed))

	if len(working) > 0 {
		fmt.Println(successStyle.Render(fmt.Sprintf("\nWORKING NETWORKS (%d):", len(working))))
		for _, attempt := range working {
			network := byName[attempt.SSID]
			ip := "unknown"
			if attempt.IPAddress != nil {
				ip = *attempt.IPAddress
			}
			ping := ""
			if attempt.PingStats != nil {
				ping = " | Ping: " + *attempt.PingStats
			} else if attempt.PingSuccess != nil && *attempt.PingSuccess {
				ping = " | Ping: success"
			}
			fmt.Printf("  %s\n", openNetStyle.Render(attempt.SSID))
			fmt.Printf("     IP: %s | Signal: %d%% | Band: %s%s\n", ip, network.SignalPercent, network.Band, ping)
		}
	}

	if len(failed) > 0 {
		fmt.Println(errorStyle.Render(fmt.Sprintf("\nNON-WORKING NETWORKS (%d):", len(failed))))
		for _, attempt := range failed {
			network := byName[attempt.SSID]
			reason := "unknown"
			if attempt.ErrorMessage != nil {
				reason = *attempt.ErrorMessage
			}
			fmt.Printf("  %s\n", securedNetStyle.Render(attempt.SSID))
			fmt.Printf("     Reason: %s | Signal: %d%% | Band: %s\n", reason, network.SignalPercent, network.Band)
		}
	}

	fmt.Println("\n" + divider)
}

// discoverDevices enumerates the local network and stores the result in
// the session.
func (a *App) discoverDevices(ctx context.Context) {
	subnet := a.localSubnet(ctx)
	fmt.Println(renderInfo("Discovering devices on " + subnet + "..."))

	found := a.discoverer.Discover(ctx, subnet)
	if len(found) == 0 {
		fmt.Println(renderWarning("No devices found"))
		return
	}
	a.session.MergeDevices(found)

	fmt.Println(headerStyle.Render(fmt.Sprintf("%-16s %-18s %-24s %s",
		"IP", "MAC", "Hostname", "Vendor")))
	for _, d := range found {
		fmt.Printf("%-16s %-18s %-24s %s\n", d.IPAddress, d.MACAddress, d.Hostname, d.Vendor)
	}
	fmt.Println(renderSuccess(fmt.Sprintf("Found %d devices", len(found))))
}

// localSubnet derives a /24 from the current source address, falling back
// to the common home range when no route is available.
func (a *App) localSubnet(ctx context.Context) string {
	ok, out := a.runner.Run(ctx, "ip route get "+a.cfg.TestHost, command.DefaultTimeout)
	if ok {
		if src := connect.ParseRouteSource(out); src != "" {
			if idx := strings.LastIndex(src, "."); idx > 0 {
				return src[:idx] + ".0/24"
			}
		}
	}
	return "192.168.1.0/24"
}

func (a *App) showStatistics() {
	if a.session.Empty() {
		fmt.Println(renderError("No data to analyze"))
		return
	}

	stats := a.session.Stats()
	fmt.Println(titleStyle.Render("WiFi Scanner Statistics"))
	fmt.Printf("  Total scanned networks: %d\n", stats.TotalNetworks)
	fmt.Printf("  Open networks: %d\n", stats.OpenNetworks)
	fmt.Printf("  Network devices: %d\n", stats.Devices)
	fmt.Printf("  Connection attempts: %d\n", stats.Attempts)
	fmt.Printf("  Successful connections: %d\n", stats.SuccessfulAttempts)
	if stats.Attempts > 0 {
		rate := float64(stats.SuccessfulAttempts) / float64(stats.Attempts) * 100
		fmt.Printf("  Success rate: %.1f%%\n", rate)
	}
}

func (a *App) exportData() {
	if a.session.Empty() {
		fmt.Println(renderError("No data to export"))
		return
	}

	format := promptLine(fmt.Sprintf("Format (json/csv) [%s]: ", a.cfg.ExportFormat))
	if format == "" {
		format = a.cfg.ExportFormat
	}

	var (
		path string
		err  error
	)
	switch strings.ToLower(format) {
	case "csv":
		path, err = a.exporter.SaveCSV(a.session)
	default:
		path, err = a.exporter.SaveJSON(a.session)
	}
	if err != nil {
		fmt.Println(renderError("Export error: " + err.Error()))
		return
	}
	fmt.Println(renderSuccess("Data exported to: " + path))
}

func (a *App) showSettings() {
	fmt.Println(titleStyle.Render("Current settings"))
	fmt.Printf("  interface: %s\n", a.cfg.Interface)
	fmt.Printf("  test_host: %s\n", a.cfg.TestHost)
	fmt.Printf("  scan_interval: %d\n", a.cfg.ScanInterval)
	fmt.Printf("  log_dir: %s\n", a.cfg.LogDir)
	fmt.Printf("  max_log_age_days: %d\n", a.cfg.MaxLogAgeDays)
	fmt.Printf("  ping_timeout: %d\n", a.cfg.PingTimeout)
	fmt.Printf("  connection_timeout: %d\n", a.cfg.ConnectionTimeout)
	fmt.Printf("  auto_cleanup: %t\n", a.cfg.AutoCleanup)
	fmt.Printf("  export_format: %s\n", a.cfg.ExportFormat)
}

func (a *App) showLogs() {
	logs, err := a.exporter.ListLogs()
	if err != nil || len(logs) == 0 {
		fmt.Println(renderError("No logs found"))
		return
	}

	fmt.Println(titleStyle.Render(fmt.Sprintf("Available logs (%d)", len(logs))))
	for i, info := range logs {
		if i >= 10 {
			break
		}
		fmt.Printf("  %s (%.1fKB, %s)\n", info.Name, info.SizeKB, info.ModTime.Format("02.01.2006 15:04"))
	}
}

func promptLine(prompt string) string {
	fmt.Print(prompt)
	reader := bufio.NewReader(os.Stdin)
	line, err := reader.ReadString('\n')
	if err != nil {
		return ""
	}
	return strings.TrimSpace(line)
}
