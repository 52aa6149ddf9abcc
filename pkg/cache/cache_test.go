package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func writePayload(t *testing.T, dir, tag, payload string) string {
	t.Helper()
	h := sha256.Sum256([]byte(payload))
	name := fileName(tag, hex.EncodeToString(h[:]))
	if err := os.WriteFile(filepath.Join(dir, name), []byte(payload), 0o644); err != nil {
		t.Fatal(err)
	}
	return name
}

func TestNew(t *testing.T) {
	tt := []struct {
		name    string
		setup   func(t *testing.T, dir string)
		want    []string
		wantErr error
	}{
		{
			name: "empty",
			want: []string{},
		},
		{
			name: "expected",
			setup: func(t *testing.T, dir string) {
				writePayload(t, dir, "oui", "Registry,Assignment\n")
				writePayload(t, dir, "mam", "Registry,Assignment\n")
				if err := os.WriteFile(filepath.Join(dir, "README"), []byte("ignored"), 0o644); err != nil {
					t.Fatal(err)
				}
			},
			want: []string{"mam", "oui"},
		},
		{
			name: "corrupt",
			setup: func(t *testing.T, dir string) {
				name := writePayload(t, dir, "oui", "original")
				if err := os.WriteFile(filepath.Join(dir, name), []byte("tampered"), 0o644); err != nil {
					t.Fatal(err)
				}
			},
			wantErr: ErrCorrupt,
		},
		{
			name: "bad name",
			setup: func(t *testing.T, dir string) {
				if err := os.WriteFile(filepath.Join(dir, "oui.csv"), []byte("x"), 0o644); err != nil {
					t.Fatal(err)
				}
			},
			wantErr: ErrBadName,
		},
	}
	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			dir := t.TempDir()
			if tc.setup != nil {
				tc.setup(t, dir)
			}
			c, err := New(WithPath(dir))
			if tc.wantErr != nil {
				if !errors.Is(err, tc.wantErr) {
					t.Fatalf("New() error = %v, want %v", err, tc.wantErr)
				}
				if c != nil {
					t.Errorf("New() returned a cache together with %v", err)
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if got := c.Tags(); !cmp.Equal(got, tc.want) {
				t.Error(cmp.Diff(got, tc.want))
			}
		})
	}
}

func TestWithPath_NotADirectory(t *testing.T) {
	f := filepath.Join(t.TempDir(), "file")
	if err := os.WriteFile(f, nil, 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := New(WithPath(f)); err == nil {
		t.Error("expected error for a regular file")
	}
}

func TestCache_SetGetFlush(t *testing.T) {
	dir := t.TempDir()
	c, err := New(WithPath(dir))
	if err != nil {
		t.Fatal(err)
	}

	if _, err := c.Get("oui"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("Get() on empty cache error = %v, want ErrNotFound", err)
	}
	if err := c.Set("bad_tag", strings.NewReader("x")); err == nil {
		t.Error("Set() accepted a tag containing an underscore")
	}

	if err := c.Set("oui", strings.NewReader("first")); err != nil {
		t.Fatal(err)
	}
	if err := c.Flush(); err != nil {
		t.Fatal(err)
	}
	if err := c.Set("oui", strings.NewReader("second")); err != nil {
		t.Fatal(err)
	}
	if err := c.Flush(); err != nil {
		t.Fatal(err)
	}

	files, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(files) != 1 {
		t.Fatalf("expected one file after replacing the payload, got %d", len(files))
	}

	reopened, err := New(WithPath(dir))
	if err != nil {
		t.Fatal(err)
	}
	r, err := reopened.Get("oui")
	if err != nil {
		t.Fatal(err)
	}
	b, err := io.ReadAll(r)
	if err != nil {
		t.Fatal(err)
	}
	if string(b) != "second" {
		t.Errorf("payload = %q, want %q", b, "second")
	}
}
