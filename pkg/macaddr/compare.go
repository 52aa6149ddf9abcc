package macaddr

// magM is the vendor magnitude built from octets a, b and c.
func (a Addr) magM() uint32 {
	return uint32(a.octets[0])<<16 | uint32(a.octets[1])<<8 | uint32(a.octets[2])
}

// magH is the host magnitude. It is built from octets c, e and f; octet d
// is not part of it. Compare depends on this exact selection.
func (a Addr) magH() uint32 {
	return uint32(a.octets[2])<<16 | uint32(a.octets[4])<<8 | uint32(a.octets[5])
}

// Equal reports whether all six octets match.
func (a Addr) Equal(b Addr) bool {
	return a == b
}

// NotEqual is the negation of Equal.
func (a Addr) NotEqual(b Addr) bool {
	return a != b
}

// Compare orders a against b and returns -1, 0 or 1.
//
// The vendor magnitude (a, b, c) is compared first and the host magnitude
// (c, e, f) breaks ties. Octet d never takes part, so two addresses that
// differ only in d compare as 0 although they are not Equal. Use
// CompareOctets for an order over all six octets.
func (a Addr) Compare(b Addr) int {
	if m1, m2 := a.magM(), b.magM(); m1 != m2 {
		return cmp3(m1, m2)
	}
	return cmp3(a.magH(), b.magH())
}

// Compare is Addr.Compare as a function, for use with slices.SortFunc.
func Compare(a, b Addr) int {
	return a.Compare(b)
}

// CompareOctets orders a and b lexicographically over all six octets.
func CompareOctets(a, b Addr) int {
	for i := range a.octets {
		if a.octets[i] != b.octets[i] {
			return cmp3(a.octets[i], b.octets[i])
		}
	}
	return 0
}

// SameVendor reports whether a and b share a vendor prefix. An address
// whose first three octets are all zero matches nothing, not even another
// such address.
func (a Addr) SameVendor(b Addr) bool {
	m1, m2 := a.magM(), b.magM()
	if m1 == 0 || m2 == 0 {
		return false
	}
	return m1 == m2
}

func cmp3[T uint32 | byte](x, y T) int {
	switch {
	case x < y:
		return -1
	case x > y:
		return 1
	default:
		return 0
	}
}
