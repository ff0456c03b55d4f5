package netutil

import (
	"net"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIPString(t *testing.T) {
	assert.Equal(t, "192.168.1.10", IPString([]byte{192, 168, 1, 10}))
	assert.Equal(t, "::1", IPString(net.ParseIP("::1")))
}

func TestContains(t *testing.T) {
	network := net.IP{192, 168, 1, 0}
	mask := net.IPMask{255, 255, 255, 0}

	tests := []struct {
		name      string
		candidate net.IP
		want      bool
	}{
		{"inside network", net.IP{192, 168, 1, 200}, true},
		{"network address itself", net.IP{192, 168, 1, 0}, true},
		{"adjacent network", net.IP{192, 168, 2, 1}, false},
		{"different class", net.IP{10, 0, 0, 1}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Contains(tt.candidate, network, mask))
		})
	}

	assert.False(t, Contains(nil, network, mask))
	assert.False(t, Contains(net.IP{192, 168, 1, 1}, nil, mask))
	assert.False(t, Contains(net.IP{192, 168, 1, 1}, network, nil))
}

func TestFormatCIDR(t *testing.T) {
	assert.Equal(t, "192.168.1.0/24", FormatCIDR(net.IP{192, 168, 1, 0}, net.IPMask{255, 255, 255, 0}))
	assert.Equal(t, "10.0.0.0/8", FormatCIDR(net.IP{10, 1, 2, 3}, net.IPMask{255, 0, 0, 0}))
	assert.Empty(t, FormatCIDR(nil, net.IPMask{255, 255, 255, 0}))
	assert.Empty(t, FormatCIDR(net.IP{10, 0, 0, 1}, nil))
}
