package geoinfo_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/geoinfo/pkg/geoinfo"
)

func TestIsPublicIP(t *testing.T) {
	t.Parallel()

	tests := []struct {
		ip       string
		expected bool
	}{
		{"8.8.8.8", true},
		{"81.2.69.160", true},
		{"2001:4860:4860::8888", true},
		{"::ffff:8.8.8.8", true},
		{"192.0.0.9", true},
		{"192.0.0.10", true},
		{"2001:4:112::1", true},
		{"2001:20::1", true},

		{"10.0.0.5", false},
		{"172.16.3.4", false},
		{"192.168.1.1", false},
		{"127.0.0.1", false},
		{"169.254.1.1", false},
		{"100.64.0.1", false},
		{"0.0.0.0", false},
		{"255.255.255.255", false},
		{"224.0.0.1", false},
		{"192.0.2.10", false},
		{"198.51.100.7", false},
		{"203.0.113.9", false},
		{"198.18.0.1", false},
		{"240.0.0.1", false},
		{"::1", false},
		{"::", false},
		{"fe80::1", false},
		{"fe80::1%eth0", false},
		{"fc00::1", false},
		{"fd12:3456::1", false},
		{"2001:db8::1", false},
		{"3fff::1", false},
		{"3fff:fff::1", false},
		{"192.0.0.8", false},
		{"2001::1", false},
		{"ff02::1", false},
		{"::ffff:10.0.0.1", false},

		{"", false},
		{"not-an-ip", false},
		{"1.2.3", false},
		{"8.8.8.8:80", false},
		{" 8.8.8.8", false},
	}

	for _, tt := range tests {
		t.Run(tt.ip, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, geoinfo.IsPublicIP(tt.ip))
		})
	}
}
