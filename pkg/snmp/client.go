// pkg/snmp/client.go
package snmp

import (
	"fmt"
	"net"
	"time"

	"github.com/gosnmp/gosnmp"
)

// System group OIDs used for best-effort host annotation.
const (
	oidSysDescr = "1.3.6.1.2.1.1.1.0"
	oidSysName  = "1.3.6.1.2.1.1.5.0"
)

// Client is a minimal SNMPv2c client used to annotate discovered devices
// with a hostname and a system description.
type Client struct {
	Target    string
	Port      uint16
	Community string
	Timeout   time.Duration
	Retries   int

	conn *gosnmp.GoSNMP
}

// NewClient creates a client with conservative defaults for LAN probing.
func NewClient(target string, community string) *Client {
	return &Client{
		Target:    target,
		Port:      161,
		Community: community,
		Timeout:   2 * time.Second,
		Retries:   1,
	}
}

// Connect establishes the SNMP session.
func (c *Client) Connect() error {
	if net.ParseIP(c.Target) == nil {
		return fmt.Errorf("invalid IP address: %s", c.Target)
	}

	c.conn = &gosnmp.GoSNMP{
		Target:    c.Target,
		Port:      c.Port,
		Community: c.Community,
		Version:   gosnmp.Version2c,
		Timeout:   c.Timeout,
		Retries:   c.Retries,
	}

	if err := c.conn.Connect(); err != nil {
		return fmt.Errorf("failed to connect to %s:%d: %w", c.Target, c.Port, err)
	}
	return nil
}

// Close closes the SNMP session.
func (c *Client) Close() error {
	if c.conn != nil && c.conn.Conn != nil {
		return c.conn.Conn.Close()
	}
	return nil
}

// Get performs an SNMP GET for a single OID and formats the value.
func (c *Client) Get(oid string) (string, error) {
	if c.conn == nil {
		return "", fmt.Errorf("not connected")
	}

	result, err := c.conn.Get([]string{oid})
	if err != nil {
		return "", fmt.Errorf("SNMP GET failed for OID %s: %w", oid, err)
	}
	if len(result.Variables) == 0 {
		return "", fmt.Errorf("no result for OID %s", oid)
	}

	return formatValue(result.Variables[0]), nil
}

// SystemInfo holds the system-group values worth echoing onto a device
// record.
type SystemInfo struct {
	Name        string
	Description string
}

// ReadSystemInfo reads sysName and sysDescr; either may be empty when the
// agent does not answer for it.
func (c *Client) ReadSystemInfo() (SystemInfo, error) {
	var info SystemInfo

	name, nameErr := c.Get(oidSysName)
	if nameErr == nil {
		info.Name = name
	}
	descr, descrErr := c.Get(oidSysDescr)
	if descrErr == nil {
		info.Description = descr
	}

	if nameErr != nil && descrErr != nil {
		return info, fmt.Errorf("system group unreadable on %s: %w", c.Target, nameErr)
	}
	return info, nil
}

func formatValue(variable gosnmp.SnmpPDU) string {
	switch variable.Type {
	case gosnmp.OctetString:
		if bytes, ok := variable.Value.([]byte); ok {
			return string(bytes)
		}
		return fmt.Sprintf("%v", variable.Value)
	case gosnmp.Integer, gosnmp.Counter32, gosnmp.Counter64, gosnmp.Gauge32:
		return fmt.Sprintf("%d", variable.Value)
	case gosnmp.IPAddress:
		if bytes, ok := variable.Value.([]byte); ok && len(bytes) == 4 {
			return fmt.Sprintf("%d.%d.%d.%d", bytes[0], bytes[1], bytes[2], bytes[3])
		}
		return fmt.Sprintf("%v", variable.Value)
	default:
		return fmt.Sprintf("%v", variable.Value)
	}
}
