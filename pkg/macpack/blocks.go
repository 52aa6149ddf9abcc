package macpack

import (
	"encoding/hex"
	"slices"
	"strings"

	"github.com/frzifus/macvendor/pkg/macaddr"
)

// Block is an assignment longer than a vendor prefix, such as an MA-M
// (28 bit) or MA-S (36 bit) block. Prefix holds the assigned bits, the
// remaining bits are zero.
type Block struct {
	Prefix [6]byte
	Bits   int
	Organization
}

// Contains reports whether the first Bits bits of addr equal the block.
func (b Block) Contains(addr macaddr.Addr) bool {
	o := addr.Octets()
	full, rest := b.Bits/8, b.Bits%8
	if string(o[:full]) != string(b.Prefix[:full]) {
		return false
	}
	if rest == 0 {
		return true
	}
	mask := byte(0xff << (8 - rest))
	return o[full]&mask == b.Prefix[full]
}

// Blocks is a list of long assignments. Lookup returns the first block
// containing the address; Load orders blocks longest first so the most
// specific assignment wins.
type Blocks []Block

// Lookup returns the first block that contains addr.
func (bs Blocks) Lookup(addr macaddr.Addr) (Block, bool) {
	for _, b := range bs {
		if b.Contains(addr) {
			return b, true
		}
	}
	return Block{}, false
}

// Manufacturer implements Lookuper.
func (bs Blocks) Manufacturer(addr macaddr.Addr) (string, bool) {
	b, ok := bs.Lookup(addr)
	return b.Name, ok
}

func (bs Blocks) sortBySpecificity() {
	slices.SortStableFunc(bs, func(x, y Block) int {
		return y.Bits - x.Bits
	})
}

// parseBlock decodes an assignment of 7 to 11 hex digits.
func parseBlock(assignment string) (Block, bool) {
	n := len(assignment)
	if n <= 6 || n >= 12 {
		return Block{}, false
	}
	raw, err := hex.DecodeString(assignment + strings.Repeat("0", 12-n))
	if err != nil {
		return Block{}, false
	}
	b := Block{Bits: n * 4}
	copy(b.Prefix[:], raw)
	return b, true
}
