package macaddr

import "fmt"

// notation describes one accepted input layout as a sequence of six hex
// fields split into groups.
type notation struct {
	sep   byte // separator between groups
	group int  // fields per group
	width int  // max characters per field, 0 for unbounded
}

// Tried strictly in this order. The first notation that converts six
// fields wins, even if a later one would read the input differently.
var notations = [...]notation{
	{sep: ':', group: 1},           // xx:xx:xx:xx:xx:xx
	{sep: '-', group: 1},           // xx-xx-xx-xx-xx-xx
	{sep: ':', group: 3, width: 2}, // xxxxxx:xxxxxx
	{sep: '-', group: 3, width: 2}, // xxxxxx-xxxxxx
	{sep: '.', group: 2, width: 2}, // xxxx.xxxx.xxxx
}

// fieldLimit caps accumulated field values. Anything above 255 is out of
// range anyway, the cap only keeps long digit runs from overflowing.
const fieldLimit = 1 << 20

// Parse reads an address in one of the accepted notations:
//
//	08:00:2b:01:02:03
//	08-00-2b-01-02-03
//	08002b:010203
//	08002b-010203
//	0800.2b01.0203
//
// Fields are hexadecimal in every notation. Input left over after the sixth
// field is ignored. The empty string yields the zero address.
//
// The returned error is a *ParseError of kind Malformed when no notation
// matches, or OutOfRange when a field does not fit in an octet.
func Parse(s string) (Addr, error) {
	if s == "" {
		return Addr{}, nil
	}

	var (
		fields [6]int
		n      int
	)
	for _, nt := range notations {
		if fields, n = nt.scan(s); n == len(fields) {
			break
		}
	}
	if n != len(fields) {
		return Addr{}, &ParseError{Input: s, Kind: Malformed}
	}

	var a Addr
	for i, v := range fields {
		if v < 0 || v > 255 {
			return Addr{}, &ParseError{Input: s, Kind: OutOfRange}
		}
		a.octets[i] = byte(v)
	}
	return a, nil
}

// MustParse is like Parse but panics on error.
func MustParse(s string) Addr {
	a, err := Parse(s)
	if err != nil {
		panic(fmt.Sprintf("macaddr.MustParse(%q): %v", s, err))
	}
	return a
}

// scan converts as many fields of s as the notation allows and returns
// them with the number converted. It stops at the first mismatch.
func (nt notation) scan(s string) (fields [6]int, n int) {
	pos := 0
	for n < len(fields) {
		if n > 0 && n%nt.group == 0 {
			if pos >= len(s) || s[pos] != nt.sep {
				return fields, n
			}
			pos++
		}
		v, next, ok := scanHex(s, pos, nt.width)
		if !ok {
			return fields, n
		}
		fields[n], pos = v, next
		n++
	}
	return fields, n
}

// scanHex reads one hexadecimal field starting at pos. Leading white space
// is skipped and does not count against width. An optional sign may
// precede the digits, followed by an optional 0x prefix when it fits in the
// width. A bare prefix reads as 0.
func scanHex(s string, pos, width int) (v, next int, ok bool) {
	for pos < len(s) && isSpace(s[pos]) {
		pos++
	}
	limit := len(s)
	if width > 0 && pos+width < limit {
		limit = pos + width
	}

	neg := false
	if pos < limit && (s[pos] == '+' || s[pos] == '-') {
		neg = s[pos] == '-'
		pos++
	}
	prefixed := false
	if pos+1 < limit && s[pos] == '0' && (s[pos+1]|0x20) == 'x' {
		pos += 2
		prefixed = true
	}

	start := pos
	for pos < limit {
		d := hexValue(s[pos])
		if d < 0 {
			break
		}
		v = v<<4 | d
		if v > fieldLimit {
			v = fieldLimit
		}
		pos++
	}
	if pos == start && !prefixed {
		return 0, pos, false
	}
	if neg {
		v = -v
	}
	return v, pos, true
}

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

// hexValue returns the value of a hex digit, or -1.
func hexValue(c byte) int {
	switch {
	case '0' <= c && c <= '9':
		return int(c - '0')
	case 'a' <= c && c <= 'f':
		return int(c - 'a' + 10)
	case 'A' <= c && c <= 'F':
		return int(c - 'A' + 10)
	default:
		return -1
	}
}
