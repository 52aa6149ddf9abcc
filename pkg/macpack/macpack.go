// Package macpack maps the vendor prefix of a hardware address to the
// organization it was assigned to.
package macpack

import (
	"encoding/csv"
	"encoding/hex"
	"errors"
	"io"
	"os"
	"strings"

	"github.com/frzifus/macvendor/internal/logx"
	"github.com/frzifus/macvendor/pkg/cache"
	"github.com/frzifus/macvendor/pkg/macaddr"
	"github.com/pion/logging"
)

const (
	columnRegistry int = iota
	columnAssignment
	columnName
	columnAddress
	columnBound
)

// ErrNoSource is returned by New when no option adds a source.
var ErrNoSource = errors.New("macpack: no source configured")

// Organization contains name and address of organization
type Organization struct {
	Name    string
	Address string
}

// Entry assigns an organization to a vendor prefix.
type Entry struct {
	Prefix [3]byte
	Organization
}

// Table is an ordered list of entries. Lookups scan it front to back and
// the first matching entry wins. A Table is never modified after New
// returns it and may be shared between goroutines.
type Table []Entry

// Lookup returns the first entry whose prefix equals the first three
// octets of addr.
func (t Table) Lookup(addr macaddr.Addr) (Entry, bool) {
	p := addr.Prefix()
	for _, e := range t {
		if e.Prefix == p {
			return e, true
		}
	}
	return Entry{}, false
}

// Manufacturer implements Lookuper.
func (t Table) Manufacturer(addr macaddr.Addr) (string, bool) {
	e, ok := t.Lookup(addr)
	return e.Name, ok
}

// Pack is everything read from the sources: the vendor prefix table and
// the longer blocks of the MA-M and MA-S registries.
type Pack struct {
	Table  Table
	Blocks Blocks
}

// Lookup returns the organization of the most specific assignment that
// covers addr. Blocks are consulted before vendor prefixes.
func (p Pack) Lookup(addr macaddr.Addr) (Organization, bool) {
	if b, ok := p.Blocks.Lookup(addr); ok {
		return b.Organization, true
	}
	if e, ok := p.Table.Lookup(addr); ok {
		return e.Organization, true
	}
	return Organization{}, false
}

// Manufacturer implements Lookuper.
func (p Pack) Manufacturer(addr macaddr.Addr) (string, bool) {
	o, ok := p.Lookup(addr)
	return o.Name, ok
}

// Len returns the number of prefixes and blocks.
func (p Pack) Len() int {
	return len(p.Table) + len(p.Blocks)
}

// An Option configures a table at creation time.
type Option func(b *builder) error

type loader func(log logging.LeveledLogger) (Pack, error)

type builder struct {
	log     logging.LeveledLogger
	loaders []loader
}

// Load reads the configured sources in option order. Within the table and
// within each block length, entries of earlier sources shadow later ones.
// Without any source Load returns ErrNoSource.
func Load(opts ...Option) (Pack, error) {
	b := &builder{log: logx.Discard("macpack")}
	for _, o := range opts {
		if err := o(b); err != nil {
			return Pack{}, err
		}
	}
	if len(b.loaders) == 0 {
		return Pack{}, ErrNoSource
	}
	p := Pack{Table: make(Table, 0)}
	for _, load := range b.loaders {
		part, err := load(b.log)
		if err != nil {
			return Pack{}, err
		}
		p.Table = append(p.Table, part.Table...)
		p.Blocks = append(p.Blocks, part.Blocks...)
	}
	p.Blocks.sortBySpecificity()
	b.log.Debugf("loaded %d prefixes and %d blocks from %d sources", len(p.Table), len(p.Blocks), len(b.loaders))
	return p, nil
}

// New builds the vendor prefix table from the configured sources. Blocks
// are not part of a Table; use Load to keep them.
func New(opts ...Option) (Table, error) {
	p, err := Load(opts...)
	if err != nil {
		return nil, err
	}
	return p.Table, nil
}

// WithLogger sets the logger used while loading sources.
func WithLogger(l logging.LeveledLogger) Option {
	return func(b *builder) error {
		if l != nil {
			b.log = l
		}
		return nil
	}
}

// WithEntries adds the given entries as a source.
func WithEntries(entries ...Entry) Option {
	return func(b *builder) error {
		b.loaders = append(b.loaders, func(logging.LeveledLogger) (Pack, error) {
			return Pack{Table: append(Table(nil), entries...)}, nil
		})
		return nil
	}
}

// WithDefaultTable adds the built-in table as a source.
func WithDefaultTable() Option {
	return WithEntries(classic...)
}

// WithLocalSource adds entries from a local location to the table.
// e.g. path: /opt/list.csv
// The csv source should be formatted represent the following layout:
// - Registry,Assignment,Organization Name,Organization Address
// - MA-L,0000AA,orga1,A street Moscow RU 1234
func WithLocalSource(path string) Option {
	return func(b *builder) error {
		b.loaders = append(b.loaders, func(log logging.LeveledLogger) (Pack, error) {
			f, err := os.Open(path)
			if err != nil {
				return Pack{}, err
			}
			defer f.Close()
			log.Debugf("loading %s", path)
			return readRegistry(f, log)
		})
		return nil
	}
}

// WithCacheSource adds the payload stored under tag in c.
func WithCacheSource(c *cache.Cache, tag string) Option {
	return func(b *builder) error {
		b.loaders = append(b.loaders, func(log logging.LeveledLogger) (Pack, error) {
			r, err := c.Get(tag)
			if err != nil {
				return Pack{}, err
			}
			log.Debugf("loading cached %s from %s", tag, c.Path())
			return readRegistry(r, log)
		})
		return nil
	}
}

// readRegistry parses an IEEE registry export. MA-L assignments of exactly
// three octets become table entries; the 7 and 9 digit assignments of the
// MA-M and MA-S registries become blocks.
func readRegistry(r io.Reader, log logging.LeveledLogger) (Pack, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true
	if _, err := reader.Read(); err != nil {
		return Pack{}, err
	}
	records, err := reader.ReadAll()
	if err != nil {
		return Pack{}, err
	}
	p := Pack{Table: make(Table, 0, len(records))}
	for _, rec := range records {
		if len(rec) < columnBound {
			log.Warnf("skipping short record %q", rec)
			continue
		}
		org := Organization{Name: rec[columnName], Address: rec[columnAddress]}
		assignment := strings.TrimSpace(rec[columnAssignment])
		if raw, err := hex.DecodeString(assignment); err == nil && len(raw) == 3 {
			p.Table = append(p.Table, Entry{Prefix: [3]byte{raw[0], raw[1], raw[2]}, Organization: org})
			continue
		}
		b, ok := parseBlock(assignment)
		if !ok {
			log.Debugf("skipping malformed %s assignment %q", rec[columnRegistry], assignment)
			continue
		}
		b.Organization = org
		p.Blocks = append(p.Blocks, b)
	}
	return p, nil
}
