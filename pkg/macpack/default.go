package macpack

// classic is the built-in vendor table. Order matters: lookups are
// first-match.
var classic = Table{
	{Prefix: [3]byte{0x00, 0x00, 0x0c}, Organization: Organization{Name: "Cisco"}},
	{Prefix: [3]byte{0x00, 0x00, 0x0e}, Organization: Organization{Name: "Fujitsu"}},
	{Prefix: [3]byte{0x00, 0x00, 0x0f}, Organization: Organization{Name: "NeXT"}},
	{Prefix: [3]byte{0x00, 0x00, 0x10}, Organization: Organization{Name: "Sytek"}},
	{Prefix: [3]byte{0x00, 0x00, 0x1d}, Organization: Organization{Name: "Cabletron"}},
	{Prefix: [3]byte{0x00, 0x00, 0x20}, Organization: Organization{Name: "DIAB"}},
	{Prefix: [3]byte{0x00, 0x00, 0x22}, Organization: Organization{Name: "Visual Technology"}},
	{Prefix: [3]byte{0x00, 0x00, 0x2a}, Organization: Organization{Name: "TRW"}},
	{Prefix: [3]byte{0x00, 0x00, 0x32}, Organization: Organization{Name: "GPT Limited"}},
	{Prefix: [3]byte{0x00, 0x00, 0x5a}, Organization: Organization{Name: "S & Koch"}},
	{Prefix: [3]byte{0x00, 0x00, 0x5e}, Organization: Organization{Name: "IANA"}},
	{Prefix: [3]byte{0x00, 0x00, 0x65}, Organization: Organization{Name: "Network General"}},
	{Prefix: [3]byte{0x00, 0x00, 0x6b}, Organization: Organization{Name: "MIPS"}},
	{Prefix: [3]byte{0x00, 0x00, 0x77}, Organization: Organization{Name: "MIPS"}},
	{Prefix: [3]byte{0x00, 0x00, 0x7a}, Organization: Organization{Name: "Ardent"}},
	{Prefix: [3]byte{0x00, 0x00, 0x89}, Organization: Organization{Name: "Cayman Systems"}},
	{Prefix: [3]byte{0x00, 0x00, 0x93}, Organization: Organization{Name: "Proteon"}},
	{Prefix: [3]byte{0x00, 0x00, 0x9f}, Organization: Organization{Name: "Ameristar Technology"}},
	{Prefix: [3]byte{0x00, 0x00, 0xa2}, Organization: Organization{Name: "Wellfleet"}},
	{Prefix: [3]byte{0x00, 0x00, 0xa3}, Organization: Organization{Name: "Network Application Technology"}},
	{Prefix: [3]byte{0x00, 0x00, 0xa6}, Organization: Organization{Name: "Network General"}},
	{Prefix: [3]byte{0x00, 0x00, 0xa7}, Organization: Organization{Name: "NCD"}},
	{Prefix: [3]byte{0x00, 0x00, 0xa9}, Organization: Organization{Name: "Network Systems"}},
	{Prefix: [3]byte{0x00, 0x00, 0xaa}, Organization: Organization{Name: "Xerox"}},
	{Prefix: [3]byte{0x00, 0x00, 0xb3}, Organization: Organization{Name: "CIMLinc"}},
	{Prefix: [3]byte{0x00, 0x00, 0xb7}, Organization: Organization{Name: "Dove Fastnet"}},
	{Prefix: [3]byte{0x00, 0x00, 0xbc}, Organization: Organization{Name: "Allen-Bradley"}},
	{Prefix: [3]byte{0x00, 0x00, 0xc0}, Organization: Organization{Name: "Western Digital"}},
	{Prefix: [3]byte{0x00, 0x00, 0xc5}, Organization: Organization{Name: "Farallon"}},
	{Prefix: [3]byte{0x00, 0x00, 0xc6}, Organization: Organization{Name: "Hewlett-Packard"}},
	{Prefix: [3]byte{0x00, 0x00, 0xc8}, Organization: Organization{Name: "Altos"}},
	{Prefix: [3]byte{0x00, 0x00, 0xc9}, Organization: Organization{Name: "Emulex"}},
	{Prefix: [3]byte{0x00, 0x00, 0xd7}, Organization: Organization{Name: "Dartmouth College"}},
	{Prefix: [3]byte{0x00, 0x00, 0xd8}, Organization: Organization{Name: "3Com"}},
	{Prefix: [3]byte{0x00, 0x00, 0xdd}, Organization: Organization{Name: "Gould"}},
	{Prefix: [3]byte{0x00, 0x00, 0xde}, Organization: Organization{Name: "Unigraph"}},
	{Prefix: [3]byte{0x00, 0x00, 0xe2}, Organization: Organization{Name: "Acer Counterpoint"}},
	{Prefix: [3]byte{0x00, 0x00, 0xef}, Organization: Organization{Name: "Alantec"}},
	{Prefix: [3]byte{0x00, 0x00, 0xfd}, Organization: Organization{Name: "High Level Hardware"}},
	{Prefix: [3]byte{0x00, 0x01, 0x02}, Organization: Organization{Name: "BBN"}},
	{Prefix: [3]byte{0x00, 0x17, 0x00}, Organization: Organization{Name: "Kabel"}},
	{Prefix: [3]byte{0x00, 0x20, 0xaf}, Organization: Organization{Name: "3Com"}},
	{Prefix: [3]byte{0x00, 0x80, 0x10}, Organization: Organization{Name: "Commodore"}},
	{Prefix: [3]byte{0x00, 0x80, 0x2d}, Organization: Organization{Name: "Xylogics"}},
	{Prefix: [3]byte{0x00, 0x80, 0x8c}, Organization: Organization{Name: "Frontier Software Development"}},
	{Prefix: [3]byte{0x00, 0xaa, 0x00}, Organization: Organization{Name: "Intel"}},
	{Prefix: [3]byte{0x02, 0x07, 0x01}, Organization: Organization{Name: "Racal InterLan"}},
	{Prefix: [3]byte{0x02, 0x60, 0x8c}, Organization: Organization{Name: "3Com"}},
	{Prefix: [3]byte{0x08, 0x00, 0x02}, Organization: Organization{Name: "3Com"}},
	{Prefix: [3]byte{0x08, 0x00, 0x09}, Organization: Organization{Name: "Hewlett-Packard"}},
	{Prefix: [3]byte{0x08, 0x00, 0x0b}, Organization: Organization{Name: "Unisys"}},
	{Prefix: [3]byte{0x08, 0x00, 0x11}, Organization: Organization{Name: "Tektronix"}},
	{Prefix: [3]byte{0x08, 0x00, 0x14}, Organization: Organization{Name: "Excelan"}},
	{Prefix: [3]byte{0x08, 0x00, 0x1a}, Organization: Organization{Name: "Data General"}},
	{Prefix: [3]byte{0x08, 0x00, 0x1e}, Organization: Organization{Name: "Apollo"}},
	{Prefix: [3]byte{0x08, 0x00, 0x20}, Organization: Organization{Name: "Sun"}},
	{Prefix: [3]byte{0x08, 0x00, 0x25}, Organization: Organization{Name: "CDC"}},
	{Prefix: [3]byte{0x08, 0x00, 0x2b}, Organization: Organization{Name: "DEC"}},
	{Prefix: [3]byte{0x08, 0x00, 0x38}, Organization: Organization{Name: "Bull"}},
	{Prefix: [3]byte{0x08, 0x00, 0x39}, Organization: Organization{Name: "Spider Systems"}},
	{Prefix: [3]byte{0x08, 0x00, 0x46}, Organization: Organization{Name: "Sony"}},
	{Prefix: [3]byte{0x08, 0x00, 0x47}, Organization: Organization{Name: "Sequent"}},
	{Prefix: [3]byte{0x08, 0x00, 0x5a}, Organization: Organization{Name: "IBM"}},
	{Prefix: [3]byte{0x08, 0x00, 0x69}, Organization: Organization{Name: "Silicon Graphics"}},
	{Prefix: [3]byte{0x08, 0x00, 0x6e}, Organization: Organization{Name: "Excelan"}},
	{Prefix: [3]byte{0x08, 0x00, 0x7c}, Organization: Organization{Name: "Vitalink"}},
	{Prefix: [3]byte{0x08, 0x00, 0x87}, Organization: Organization{Name: "Xyplex"}},
	{Prefix: [3]byte{0x08, 0x00, 0x89}, Organization: Organization{Name: "Kinetics"}},
	{Prefix: [3]byte{0x08, 0x00, 0x8b}, Organization: Organization{Name: "Pyramid"}},
	{Prefix: [3]byte{0x08, 0x00, 0x90}, Organization: Organization{Name: "Retix"}},
	{Prefix: [3]byte{0xaa, 0x00, 0x04}, Organization: Organization{Name: "DEC"}},
}

// Default returns a copy of the built-in vendor table.
func Default() Table {
	return append(Table(nil), classic...)
}
