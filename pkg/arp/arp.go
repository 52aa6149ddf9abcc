package arp

import (
	"bufio"
	"encoding/hex"
	"io"
	"net"
	"strings"

	"github.com/frzifus/macvendor/pkg/macaddr"
)

const (
	columnIPAddr int = iota
	columnHWType
	columnFlags
	columnHWAddr
	columnMask
	columnDevice
	columnBound
)

// Entry represents an entry in the arp cache.
// This can usually be found under linux under "/proc/net/arp".
// Flags and Mask only come from the cache; Discovery leaves them empty.
type Entry struct {
	Address net.IP
	Type    byte
	Flags   byte
	Mac     macaddr.Addr
	Mask    string
	Device  *net.Interface
}

// ParseEntries parses r as an arp cache table, returning the result.
// The table should look like this:
// IP address       HW type     Flags       HW address           Mask    Device
// 192.168.1.1      0x1         0x2         aa:bb:cc:dd:ee:ff    *       e.g.1
// 192.168.1.2      0x1         0x2         ff:ee:dd:cc:bb:aa    *       e.g.2
// If entries are not valid, they are ignored. If the list is empty, an empty
// result list is returned.
func ParseEntries(r io.Reader) []*Entry {
	s := bufio.NewScanner(r)
	s.Scan() // skip header
	entries := make([]*Entry, 0)
	for s.Scan() {
		line := s.Text()
		f := strings.Fields(line)
		if len(f) < columnBound {
			continue
		}
		e := &Entry{Address: net.ParseIP(f[columnIPAddr]), Mask: f[columnMask]}
		e.Type = parseHexByte(f[columnHWType])
		e.Flags = parseHexByte(f[columnFlags])
		if mac, err := macaddr.Parse(f[columnHWAddr]); err == nil {
			e.Mac = mac
		}
		if iface, err := net.InterfaceByName(f[columnDevice]); err == nil {
			e.Device = iface
		}
		entries = append(entries, e)
	}

	return entries
}

// parseHexByte decodes fields like "0x2". Anything else yields 0.
func parseHexByte(s string) byte {
	s = strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X")
	if len(s)%2 == 1 {
		s = "0" + s
	}
	b, err := hex.DecodeString(s)
	if err != nil || len(b) == 0 {
		return 0
	}
	return b[len(b)-1]
}
