// Package macaddr implements a 6-octet hardware address value type with
// multi-notation parsing, a canonical text form and the historical
// vendor-first ordering.
//
// The zero value is the zero address. It stands for a missing address: it
// is what Parse returns for an empty string and it renders as "".
package macaddr

import (
	"fmt"
	"net"
)

// Addr is a 6-octet hardware address. Octets are stored most significant
// first, as written left to right. Addr is an immutable value that can be
// compared with == and used as a map key.
type Addr struct {
	octets [6]byte
}

// AddrFrom6 returns the address holding the given octets.
func AddrFrom6(b [6]byte) Addr {
	return Addr{octets: b}
}

// FromHardwareAddr converts a net.HardwareAddr of length 6.
func FromHardwareAddr(hw net.HardwareAddr) (Addr, error) {
	if len(hw) != 6 {
		return Addr{}, fmt.Errorf("%w: expected 6 bytes, got %d", ErrInvalidLength, len(hw))
	}
	var a Addr
	copy(a.octets[:], hw)
	return a, nil
}

// Octets returns a copy of the six octets.
func (a Addr) Octets() [6]byte {
	return a.octets
}

// Prefix returns the vendor prefix, the first three octets.
func (a Addr) Prefix() [3]byte {
	return [3]byte{a.octets[0], a.octets[1], a.octets[2]}
}

// IsZero reports whether all six octets are zero.
func (a Addr) IsZero() bool {
	return a == Addr{}
}

// HardwareAddr returns a freshly allocated net.HardwareAddr, or nil for the
// zero address.
func (a Addr) HardwareAddr() net.HardwareAddr {
	if a.IsZero() {
		return nil
	}
	hw := make(net.HardwareAddr, 6)
	copy(hw, a.octets[:])
	return hw
}
