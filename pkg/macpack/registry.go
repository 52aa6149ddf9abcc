package macpack

import (
	"github.com/endobit/oui"
	"github.com/frzifus/macvendor/pkg/macaddr"
)

// Registry looks addresses up in the IEEE database compiled into
// github.com/endobit/oui. It needs no loading and is meant as the last
// element of a Chain.
type Registry struct{}

// Manufacturer implements Lookuper.
func (Registry) Manufacturer(addr macaddr.Addr) (string, bool) {
	if addr.IsZero() {
		return "", false
	}
	name := oui.Vendor(addr.String())
	return name, name != ""
}
