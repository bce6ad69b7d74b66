package geoinfo

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/netip"
	"slices"
	"sync"

	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

// TableEntry is one row of a country table file.
type TableEntry struct {
	CIDR    string `yaml:"cidr"`
	Country string `yaml:"country"`
}

type tableFile struct {
	Networks []TableEntry `yaml:"networks"`
}

type tableRow struct {
	prefix netip.Prefix
	code   string
}

// Table is a static CIDR to country mapping. The most specific matching
// network wins. It is safe for concurrent use.
type Table struct {
	mu   sync.RWMutex
	rows []tableRow
}

// NewTable returns an empty table. Every lookup against it is UnknownCountry.
func NewTable() *Table {
	return &Table{}
}

// LoadTable reads a YAML document of the form
//
//	networks:
//	  - cidr: 81.2.69.0/24
//	    country: GB
func LoadTable(r io.Reader) (*Table, error) {
	var file tableFile
	if err := yaml.NewDecoder(r).Decode(&file); err != nil && !errors.Is(err, io.EOF) {
		return nil, errors.Join(ErrParseTable, err)
	}

	t := NewTable()
	for i, entry := range file.Networks {
		if err := t.Add(entry.CIDR, entry.Country); err != nil {
			return nil, fmt.Errorf("entry %d: %w", i, err)
		}
	}
	return t, nil
}

// Add maps cidr to country. Country must be an ISO 3166-1 code; it is stored
// in canonical alpha-2 form. A bare address is treated as a single-host
// network.
func (t *Table) Add(cidr, country string) error {
	prefix, err := parsePrefix(cidr)
	if err != nil {
		return errors.Join(ErrInvalidTableEntry, err)
	}

	region, err := language.ParseRegion(country)
	if err != nil {
		return errors.Join(ErrInvalidTableEntry, err)
	}
	if !region.IsCountry() {
		return fmt.Errorf("%w: %q is not a country", ErrInvalidTableEntry, country)
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	// Rows stay ordered by descending prefix length; equal lengths keep
	// insertion order.
	row := tableRow{prefix: prefix, code: region.String()}
	i := slices.IndexFunc(t.rows, func(r tableRow) bool { return r.prefix.Bits() < prefix.Bits() })
	if i < 0 {
		t.rows = append(t.rows, row)
	} else {
		t.rows = slices.Insert(t.rows, i, row)
	}
	return nil
}

// Len returns the number of networks in the table.
func (t *Table) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.rows)
}

// CountryCode returns the country of the most specific network containing ip.
func (t *Table) CountryCode(_ context.Context, ip string) string {
	addr, err := netip.ParseAddr(ip)
	if err != nil {
		return UnknownCountry
	}
	addr = addr.WithZone("").Unmap()

	t.mu.RLock()
	defer t.mu.RUnlock()
	for _, row := range t.rows {
		if row.prefix.Contains(addr) {
			return row.code
		}
	}
	return UnknownCountry
}

func parsePrefix(s string) (netip.Prefix, error) {
	if prefix, err := netip.ParsePrefix(s); err == nil {
		return prefix.Masked(), nil
	}
	addr, err := netip.ParseAddr(s)
	if err != nil {
		return netip.Prefix{}, err
	}
	addr = addr.Unmap()
	return netip.PrefixFrom(addr, addr.BitLen()), nil
}
