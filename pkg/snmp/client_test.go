package snmp

import (
	"testing"

	"github.com/gosnmp/gosnmp"
)

func TestNewClientDefaults(t *testing.T) {
	client := NewClient("192.168.1.1", "public")
	if client.Port != 161 || client.Retries != 1 {
		t.Fatalf("unexpected defaults: %+v", client)
	}
}

func TestConnectRejectsBadTarget(t *testing.T) {
	client := NewClient("not-an-ip", "public")
	if err := client.Connect(); err == nil {
		t.Fatal("expected an error for a non-IP target")
	}
}

func TestGetWithoutConnect(t *testing.T) {
	client := NewClient("192.168.1.1", "public")
	if _, err := client.Get(oidSysName); err == nil {
		t.Fatal("expected an error before Connect")
	}
}

func TestFormatValue(t *testing.T) {
	tests := []struct {
		name string
		pdu  gosnmp.SnmpPDU
		want string
	}{
		{"octet string", gosnmp.SnmpPDU{Type: gosnmp.OctetString, Value: []byte("sw-core-01")}, "sw-core-01"},
		{"integer", gosnmp.SnmpPDU{Type: gosnmp.Integer, Value: 42}, "42"},
		{"ip address", gosnmp.SnmpPDU{Type: gosnmp.IPAddress, Value: []byte{192, 168, 1, 1}}, "192.168.1.1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := formatValue(tt.pdu); got != tt.want {
				t.Errorf("formatValue() = %q, want %q", got, tt.want)
			}
		})
	}
}
