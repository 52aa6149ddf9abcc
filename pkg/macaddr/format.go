package macaddr

const hexDigits = "0123456789abcdef"

// String returns the canonical form aa:bb:cc:dd:ee:ff in lowercase hex.
// The zero address renders as "".
func (a Addr) String() string {
	if a.IsZero() {
		return ""
	}
	var buf [17]byte
	for i, b := range a.octets {
		off := i * 3
		if i > 0 {
			buf[off-1] = ':'
		}
		buf[off] = hexDigits[b>>4]
		buf[off+1] = hexDigits[b&0x0f]
	}
	return string(buf[:])
}

// MarshalText implements encoding.TextMarshaler using the canonical form.
func (a Addr) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler using Parse.
func (a *Addr) UnmarshalText(text []byte) error {
	addr, err := Parse(string(text))
	if err != nil {
		return err
	}
	*a = addr
	return nil
}
