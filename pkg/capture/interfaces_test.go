package capture

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidCaptureInterface(t *testing.T) {
	tests := []struct {
		name  string
		iface string
		want  bool
	}{
		{"physical ethernet", "eth0", true},
		{"predictable name", "enp3s0", true},
		{"wireless", "wlan0", true},
		{"loopback", "lo", false},
		{"loopback uppercase", "Loopback0", false},
		{"docker bridge", "docker0", false},
		{"veth pair", "veth1a2b3c", false},
		{"vmware", "vmnet8", false},
		{"virtualbox", "vboxnet0", false},
		{"usb adapter", "usb0", false},
		{"bluetooth", "bluetooth-monitor", false},
		{"isatap tunnel", "isatap.example", false},
		{"teredo tunnel", "teredo", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsValidCaptureInterface(tt.iface))
		})
	}
}

func TestTrimDescription(t *testing.T) {
	assert.Equal(t, "Intel Ethernet", trimDescription("  Intel Ethernet  "))

	long := strings.Repeat("x", 80)
	got := trimDescription(long)
	assert.Len(t, got, 53)
	assert.True(t, strings.HasSuffix(got, "..."))
}
