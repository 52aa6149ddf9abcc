package macpack

import "github.com/frzifus/macvendor/pkg/macaddr"

// Lookuper resolves the manufacturer of an address. A miss is reported
// with ok == false and is not an error.
type Lookuper interface {
	Manufacturer(addr macaddr.Addr) (name string, ok bool)
}

// Chain asks each lookuper in turn and returns the first hit.
type Chain []Lookuper

// Manufacturer implements Lookuper.
func (c Chain) Manufacturer(addr macaddr.Addr) (string, bool) {
	for _, l := range c {
		if name, ok := l.Manufacturer(addr); ok {
			return name, true
		}
	}
	return "", false
}

// ManufacturerOf returns the manufacturer name of addr, or "" when l has
// no entry for it.
func ManufacturerOf(l Lookuper, addr macaddr.Addr) string {
	name, _ := l.Manufacturer(addr)
	return name
}
