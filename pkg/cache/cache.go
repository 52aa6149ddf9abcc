// Package cache keeps raw registry payloads on disk so that vendor tables
// can be rebuilt without downloading them again.
package cache

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"os"
	"os/user"
	"path/filepath"
	"sort"
	"strings"
	"sync"
)

const (
	defaultCacheDir = "/tmp/vlookup"
	fileExt         = ".csv"
)

var (
	// ErrNotFound is returned by Get for an unknown tag.
	ErrNotFound = errors.New("cache: tag not found")
	// ErrBadName is returned when a cache file does not follow TAG_HASH.csv.
	ErrBadName = errors.New("cache: malformed file name")
	// ErrCorrupt is returned when a cache file does not match its hash.
	ErrCorrupt = errors.New("cache: checksum mismatch")
)

// Option configures a Cache at creation time.
type Option func(*Cache) error

// WithUserDir stores the cache under $HOME/.cache/vlookup.
func WithUserDir() Option {
	return func(c *Cache) error {
		usr, err := user.Current()
		if err != nil {
			return err
		}
		if usr.HomeDir == "" {
			return fmt.Errorf("missing home directory for user %s", usr.Name)
		}
		c.path = filepath.Join(usr.HomeDir, ".cache", "vlookup")
		return nil
	}
}

// WithPath stores the cache in p, which must be an existing directory.
func WithPath(p string) Option {
	return func(c *Cache) error {
		f, err := os.Stat(p)
		if err != nil {
			return err
		}
		if !f.IsDir() {
			return fmt.Errorf("%s is not a directory", p)
		}
		c.path = p
		return nil
	}
}

// New opens the cache directory, creating it if needed, and loads every
// payload in it. A file whose content does not match its name is an error.
func New(opts ...Option) (*Cache, error) {
	c := &Cache{path: defaultCacheDir, intern: make(map[string][]byte)}
	for _, o := range opts {
		if err := o(c); err != nil {
			return nil, err
		}
	}
	if err := os.MkdirAll(c.path, 0o755); err != nil {
		return nil, err
	}
	if err := c.init(); err != nil {
		return nil, err
	}
	return c, nil
}

// Cache maps tags to payloads. Payloads are kept in memory and written to
// disk by Flush. It is safe for concurrent use.
type Cache struct {
	path string

	mu     sync.RWMutex
	intern map[string][]byte
}

// Path returns the cache directory.
func (c *Cache) Path() string {
	return c.path
}

func (c *Cache) init() error {
	files, err := os.ReadDir(c.path)
	if err != nil {
		return err
	}
	// file names look like: [TAG]_[HEX(SHA256(payload))].csv
	for _, f := range files {
		if f.IsDir() || !strings.HasSuffix(f.Name(), fileExt) {
			continue
		}
		tag, sum, err := splitName(f.Name())
		if err != nil {
			return err
		}
		b, err := os.ReadFile(filepath.Join(c.path, f.Name()))
		if err != nil {
			return err
		}
		if h := sha256.Sum256(b); hex.EncodeToString(h[:]) != sum {
			return fmt.Errorf("%w: %s", ErrCorrupt, f.Name())
		}
		c.intern[tag] = b
	}
	return nil
}

// Set stores the content of r under tag, replacing any previous payload.
func (c *Cache) Set(tag string, r io.Reader) error {
	if tag == "" || strings.ContainsAny(tag, "_/"+string(filepath.Separator)) {
		return fmt.Errorf("cache: invalid tag %q", tag)
	}
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, r); err != nil {
		return err
	}
	c.mu.Lock()
	c.intern[tag] = buf.Bytes()
	c.mu.Unlock()
	return nil
}

// Get returns a reader over the payload stored under k.
func (c *Cache) Get(k string) (io.Reader, error) {
	c.mu.RLock()
	buf, ok := c.intern[k]
	c.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, k)
	}
	return bytes.NewReader(buf), nil
}

// Tags returns the stored tags in sorted order.
func (c *Cache) Tags() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	tags := make([]string, 0, len(c.intern))
	for t := range c.intern {
		tags = append(tags, t)
	}
	sort.Strings(tags)
	return tags
}

// Flush writes every payload that is not yet on disk and removes older
// files of the same tag.
func (c *Cache) Flush() error {
	c.mu.RLock()
	defer c.mu.RUnlock()

	existing, err := os.ReadDir(c.path)
	if err != nil {
		return err
	}
	for tag, payload := range c.intern {
		hash := sha256.Sum256(payload)
		name := fileName(tag, hex.EncodeToString(hash[:]))
		for _, f := range existing {
			if t, _, err := splitName(f.Name()); err == nil && t == tag && f.Name() != name {
				if err := os.Remove(filepath.Join(c.path, f.Name())); err != nil {
					return err
				}
			}
		}
		p := filepath.Join(c.path, name)
		if _, err := os.Stat(p); err == nil {
			continue
		}
		if err := os.WriteFile(p, payload, 0o644); err != nil {
			return err
		}
	}
	return nil
}

func fileName(tag, sum string) string {
	return tag + "_" + sum + fileExt
}

func splitName(name string) (tag, sum string, err error) {
	base := strings.TrimSuffix(name, fileExt)
	i := strings.LastIndexByte(base, '_')
	if i <= 0 {
		return "", "", fmt.Errorf("%w: %s", ErrBadName, name)
	}
	tag, sum = base[:i], base[i+1:]
	if len(sum) != 2*sha256.Size {
		return "", "", fmt.Errorf("%w: %s", ErrBadName, name)
	}
	if _, err := hex.DecodeString(sum); err != nil {
		return "", "", fmt.Errorf("%w: %s", ErrBadName, name)
	}
	return tag, sum, nil
}
