package macaddr

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestAddr_String(t *testing.T) {
	tt := []struct {
		name string
		addr Addr
		want string
	}{
		{name: "zero", addr: Addr{}, want: ""},
		{name: "dec", addr: AddrFrom6([6]byte{0x08, 0x00, 0x2b, 0x01, 0x02, 0x03}), want: "08:00:2b:01:02:03"},
		{name: "upper octets", addr: AddrFrom6([6]byte{0xaa, 0xbb, 0xcc, 0xdd, 0xee, 0xff}), want: "aa:bb:cc:dd:ee:ff"},
		{name: "only fourth octet", addr: AddrFrom6([6]byte{0, 0, 0, 5, 0, 0}), want: "00:00:00:05:00:00"},
		{name: "only last octet", addr: AddrFrom6([6]byte{0, 0, 0, 0, 0, 1}), want: "00:00:00:00:00:01"},
	}
	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.addr.String(); got != tc.want {
				t.Errorf("String() = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestAddr_StringRoundTrip(t *testing.T) {
	for _, b := range [][6]byte{
		{0, 0, 0, 0, 0, 1},
		{0, 0, 0, 5, 0, 0},
		{0x08, 0x00, 0x2b, 0x01, 0x02, 0x03},
		{0xff, 0xff, 0xff, 0xff, 0xff, 0xff},
		{0x12, 0x34, 0x56, 0x78, 0x9a, 0xbc},
	} {
		a := AddrFrom6(b)
		got, err := Parse(a.String())
		if err != nil {
			t.Fatalf("Parse(%q): %v", a.String(), err)
		}
		if got != a {
			t.Errorf("round trip of %v = %v", b, got.Octets())
		}
	}
}

func TestAddr_HardwareAddr(t *testing.T) {
	if hw := (Addr{}).HardwareAddr(); hw != nil {
		t.Errorf("zero address HardwareAddr() = %v, want nil", hw)
	}
	a := MustParse("aa:bb:cc:dd:ee:ff")
	hw := a.HardwareAddr()
	if got := hw.String(); got != a.String() {
		t.Errorf("HardwareAddr().String() = %q, want %q", got, a.String())
	}
	hw[0] = 0
	if a.Octets()[0] != 0xaa {
		t.Error("mutating the returned HardwareAddr changed the address")
	}
}

func TestAddr_Text(t *testing.T) {
	type host struct {
		Name string `json:"name"`
		MAC  Addr   `json:"mac"`
	}
	tt := []struct {
		name string
		in   string
		want host
	}{
		{
			name: "canonical",
			in:   `{"name":"a","mac":"08:00:2b:01:02:03"}`,
			want: host{Name: "a", MAC: MustParse("08:00:2b:01:02:03")},
		},
		{
			name: "dot notation",
			in:   `{"name":"b","mac":"0800.2b01.0203"}`,
			want: host{Name: "b", MAC: MustParse("08:00:2b:01:02:03")},
		},
		{
			name: "missing",
			in:   `{"name":"c","mac":""}`,
			want: host{Name: "c"},
		},
	}
	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			var got host
			if err := json.Unmarshal([]byte(tc.in), &got); err != nil {
				t.Fatal(err)
			}
			if !cmp.Equal(got, tc.want) {
				t.Error(cmp.Diff(got, tc.want))
			}
			out, err := json.Marshal(got)
			if err != nil {
				t.Fatal(err)
			}
			var again host
			if err := json.Unmarshal(out, &again); err != nil {
				t.Fatal(err)
			}
			if !cmp.Equal(again, got) {
				t.Error(cmp.Diff(again, got))
			}
		})
	}

	var h host
	if err := json.Unmarshal([]byte(`{"mac":"gg:00:00:00:00:00"}`), &h); err == nil {
		t.Error("expected error for malformed address")
	}
}
