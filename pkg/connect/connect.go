// pkg/connect/connect.go
package connect

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-ping/ping"
	"github.com/sirupsen/logrus"

	"github.com/Hessevalentino/WSS/pkg/command"
	"github.com/Hessevalentino/WSS/pkg/config"
	"github.com/Hessevalentino/WSS/pkg/wifi"
)

// AttemptStore records connection attempts as they complete.
type AttemptStore interface {
	AddAttempt(attempt wifi.ConnectionAttempt)
}

// Connector performs auto-connect attempts: switch the interface to the
// target network, read back the source address, and verify connectivity
// with a ping probe.
type Connector struct {
	Config config.Config
	Runner command.Runner
	Store  AttemptStore
	Log    *logrus.Logger

	// DisconnectDelay and AddressDelay pace the interface between the
	// disconnect, connect and address lookup steps.
	DisconnectDelay time.Duration
	AddressDelay    time.Duration

	// nativePing is swapped out in tests.
	nativePing func(host string, timeout time.Duration) (bool, string, error)
}

// NewConnector returns a Connector with the pacing the network stack
// needs in practice.
func NewConnector(cfg config.Config, runner command.Runner, store AttemptStore, log *logrus.Logger) *Connector {
	return &Connector{
		Config:          cfg,
		Runner:          runner,
		Store:           store,
		Log:             log,
		DisconnectDelay: 2 * time.Second,
		AddressDelay:    5 * time.Second,
		nativePing:      runNativePing,
	}
}

// Connect tries to join the given network and returns the recorded
// attempt. The attempt is also appended to the store. Failure is data, not
// an error: every outcome produces an attempt record.
func (c *Connector) Connect(ctx context.Context, network wifi.Network) wifi.ConnectionAttempt {
	band := network.Band
	signal := network.SignalPercent
	attempt := wifi.ConnectionAttempt{
		SSID:      network.SSID,
		Timestamp: time.Now(),
		Band:      &band,
		Signal:    &signal,
	}

	c.Runner.Run(ctx, fmt.Sprintf("nmcli device disconnect %s", c.Config.Interface), command.DefaultTimeout)
	c.pause(ctx, c.DisconnectDelay)

	ok, out := c.Runner.Run(ctx,
		fmt.Sprintf("nmcli device wifi connect '%s'", network.SSID),
		c.Config.ConnectionTimeoutDuration())
	if !ok {
		msg := fmt.Sprintf("Connection failed: %s", strings.TrimSpace(out))
		attempt.ErrorMessage = &msg
		c.record(attempt)
		return attempt
	}

	c.pause(ctx, c.AddressDelay)

	ip := c.lookupSourceAddress(ctx)
	if ip == "" {
		msg := "Failed to get IP address"
		attempt.ErrorMessage = &msg
		c.record(attempt)
		return attempt
	}
	attempt.IPAddress = &ip

	pingOK, stats := c.verify(ctx)
	attempt.PingSuccess = &pingOK
	attempt.Success = pingOK
	if stats != "" {
		attempt.PingStats = &stats
	}

	c.record(attempt)
	return attempt
}

// lookupSourceAddress asks the routing table which source address reaches
// the test host.
func (c *Connector) lookupSourceAddress(ctx context.Context) string {
	ok, out := c.Runner.Run(ctx, fmt.Sprintf("ip route get %s", c.Config.TestHost), command.DefaultTimeout)
	if !ok {
		return ""
	}
	return ParseRouteSource(out)
}

// verify probes the test host. The ICMP library path needs raw-socket
// privileges; when it cannot run, the external ping tool is used and its
// textual report parsed instead.
func (c *Connector) verify(ctx context.Context) (bool, string) {
	if c.nativePing != nil {
		if ok, stats, err := c.nativePing(c.Config.TestHost, c.Config.PingTimeoutDuration()); err == nil {
			return ok, stats
		}
	}

	ok, out := c.Runner.Run(ctx,
		fmt.Sprintf("ping -c 4 -W %d %s", c.Config.PingTimeout, c.Config.TestHost),
		command.DefaultTimeout)
	if !ok {
		return false, ""
	}

	stats := ParsePingStatistics(out)
	if stats == "" {
		stats = "Ping successful"
	}
	return true, stats
}

func runNativePing(host string, timeout time.Duration) (bool, string, error) {
	pinger, err := ping.NewPinger(host)
	if err != nil {
		return false, "", err
	}
	pinger.Count = 4
	pinger.Timeout = 4 * timeout
	pinger.SetPrivileged(true)

	if err := pinger.Run(); err != nil {
		return false, "", err
	}

	stats := pinger.Statistics()
	if stats.PacketsRecv == 0 {
		return false, fmt.Sprintf("%.0f%% packet loss", stats.PacketLoss), nil
	}

	summary := fmt.Sprintf("min/avg/max = %.3f/%.3f/%.3f ms",
		float64(stats.MinRtt)/float64(time.Millisecond),
		float64(stats.AvgRtt)/float64(time.Millisecond),
		float64(stats.MaxRtt)/float64(time.Millisecond))
	return true, summary, nil
}

func (c *Connector) record(attempt wifi.ConnectionAttempt) {
	if c.Store != nil {
		c.Store.AddAttempt(attempt)
	}
	if c.Log != nil {
		c.Log.WithFields(logrus.Fields{
			"ssid":    attempt.SSID,
			"success": attempt.Success,
		}).Debug("connection attempt recorded")
	}
}

func (c *Connector) pause(ctx context.Context, d time.Duration) {
	if d <= 0 {
		return
	}
	select {
	case <-time.After(d):
	case <-ctx.Done():
	}
}

// ParseRouteSource extracts the source address from `ip route get` output
// (the token following "src").
func ParseRouteSource(out string) string {
	fields := strings.Fields(out)
	for i, f := range fields {
		if f == "src" && i+1 < len(fields) {
			return fields[i+1]
		}
	}
	return ""
}

// ParsePingStatistics summarizes the external ping tool's report. The
// round-trip line wins when present; otherwise the first non-empty
// packet-loss fragment does. No later line overwrites an earlier summary.
func ParsePingStatistics(out string) string {
	for _, line := range strings.Split(out, "\n") {
		if strings.Contains(line, "rtt min/avg/max/mdev") || strings.Contains(line, "round-trip") {
			if idx := strings.Index(line, "="); idx >= 0 {
				parts := strings.Split(strings.TrimSpace(line[idx+1:]), "/")
				if len(parts) >= 3 {
					return fmt.Sprintf("min/avg/max = %s/%s/%s ms", parts[0], parts[1], parts[2])
				}
			}
		}

		if strings.Contains(line, "packet loss") {
			for _, segment := range strings.Split(line, ",") {
				if strings.Contains(segment, "packet loss") {
					return strings.TrimSpace(segment)
				}
			}
			return strings.TrimSpace(line)
		}
	}
	return ""
}
