package geoinfo

import "net/netip"

// Special-purpose ranges that netip's predicates do not cover and that are
// not globally reachable.
var (
	nonGlobalIPv4 = []netip.Prefix{
		netip.MustParsePrefix("0.0.0.0/8"),
		netip.MustParsePrefix("100.64.0.0/10"),
		netip.MustParsePrefix("192.0.0.0/24"),
		netip.MustParsePrefix("192.0.2.0/24"),
		netip.MustParsePrefix("198.18.0.0/15"),
		netip.MustParsePrefix("198.51.100.0/24"),
		netip.MustParsePrefix("203.0.113.0/24"),
		netip.MustParsePrefix("240.0.0.0/4"),
	}

	nonGlobalIPv6 = []netip.Prefix{
		netip.MustParsePrefix("64:ff9b:1::/48"),
		netip.MustParsePrefix("100::/64"),
		netip.MustParsePrefix("2001::/23"),
		netip.MustParsePrefix("2001:db8::/32"),
		netip.MustParsePrefix("2002::/16"),
		netip.MustParsePrefix("3fff::/20"),
		netip.MustParsePrefix("fec0::/10"),
	}

	// Globally reachable assignments carved out of the blocks above
	// (IANA special-purpose registries).
	globalExceptions = []netip.Prefix{
		netip.MustParsePrefix("192.0.0.9/32"),
		netip.MustParsePrefix("192.0.0.10/32"),
		netip.MustParsePrefix("2001:1::1/128"),
		netip.MustParsePrefix("2001:1::2/128"),
		netip.MustParsePrefix("2001:3::/32"),
		netip.MustParsePrefix("2001:4:112::/48"),
		netip.MustParsePrefix("2001:20::/28"),
		netip.MustParsePrefix("2001:30::/28"),
	}
)

// IsPublicIP reports whether s is an IPv4 or IPv6 address in globally
// routable space. Malformed input is not public.
//
// Private, loopback, link-local, multicast, unspecified, broadcast,
// documentation, benchmarking and other special-purpose ranges are excluded.
// IPv4-mapped IPv6 addresses are judged by their IPv4 form.
func IsPublicIP(s string) bool {
	addr, err := netip.ParseAddr(s)
	if err != nil {
		return false
	}
	addr = addr.WithZone("").Unmap()

	// Rejects unspecified, loopback, multicast, link-local and 255.255.255.255.
	if !addr.IsGlobalUnicast() || addr.IsPrivate() {
		return false
	}

	for _, p := range globalExceptions {
		if p.Contains(addr) {
			return true
		}
	}

	prefixes := nonGlobalIPv6
	if addr.Is4() {
		prefixes = nonGlobalIPv4
	}
	for _, p := range prefixes {
		if p.Contains(addr) {
			return false
		}
	}
	return true
}
