package main

import (
	"bytes"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/frzifus/macvendor/internal/config"
	"github.com/frzifus/macvendor/pkg/arp"
	"github.com/frzifus/macvendor/pkg/macaddr"
	"github.com/frzifus/macvendor/pkg/macpack"
	"github.com/google/go-cmp/cmp"
)

const ouiCSV = `Registry,Assignment,Organization Name,Organization Address
MA-L,08002B,Digital Equipment Corporation,111 Powdermill Road Maynard MA US 01754
MA-L,00000C,"Cisco Systems, Inc",170 West Tasman Drive San Jose CA US 95134
`

func runApp(t *testing.T, stdin string, args ...string) (int, string, string) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	code := run(append([]string{"vlookup"}, args...), strings.NewReader(stdin), &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func writeCSV(t *testing.T) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "oui.csv")
	if err := os.WriteFile(p, []byte(ouiCSV), 0o644); err != nil {
		t.Fatal(err)
	}
	return p
}

func TestRun(t *testing.T) {
	local := writeCSV(t)

	tt := []struct {
		name     string
		stdin    string
		args     []string
		wantCode int
		want     string
	}{
		{
			name: "parse",
			args: []string{"parse", "08-00-2b-01-02-03", "0800.2b01.0203", "08002b:010203"},
			want: "08-00-2b-01-02-03        08:00:2b:01:02:03\n" +
				"0800.2b01.0203           08:00:2b:01:02:03\n" +
				"08002b:010203            08:00:2b:01:02:03\n",
		},
		{
			name:     "parse invalid",
			args:     []string{"parse", "08:00:2b:01:02:100"},
			wantCode: 1,
			want:     "08:00:2b:01:02:100       macaddr: illegal address \"08:00:2b:01:02:100\"\n",
		},
		{
			name:     "parse without address",
			args:     []string{"parse"},
			wantCode: 2,
		},
		{
			name: "compare",
			args: []string{"compare", "08:00:2b:01:02:03", "08:00:2b:ff:02:03"},
			want: "compare:     0\noctets:      -1\nequal:       true\nsame vendor: true\n",
		},
		{
			name:     "compare one address",
			args:     []string{"compare", "08:00:2b:01:02:03"},
			wantCode: 2,
		},
		{
			name:  "sort stdin",
			stdin: "00:00:00:00:00:01\n\n00:00:00:01:00:00\n",
			args:  []string{"sort"},
			want:  "00:00:00:01:00:00\n00:00:00:00:00:01\n",
		},
		{
			name:  "sort strict",
			stdin: "00:00:00:01:00:00\n00:00:00:00:00:01\n",
			args:  []string{"sort", "--strict"},
			want:  "00:00:00:00:00:01\n00:00:00:01:00:00\n",
		},
		{
			name: "sort args",
			args: []string{"sort", "08:00:2b:01:02:03", "00:00:0c:01:02:03"},
			want: "00:00:0c:01:02:03\n08:00:2b:01:02:03\n",
		},
		{
			name:     "sort invalid",
			args:     []string{"sort", "nope"},
			wantCode: 1,
		},
		{
			name: "vendor builtin",
			args: []string{"--builtin", "vendor", "08-00-2b-01-02-03", "02:00:00:00:00:01"},
			want: "08:00:2b:01:02:03\tDEC\n02:00:00:00:00:01\tnot found\n",
		},
		{
			name: "vendor local file before builtin",
			args: []string{"--src.local-file", local, "--builtin", "vendor", "0000.0c12.3456"},
			want: "00:00:0c:12:34:56\tCisco Systems, Inc\n",
		},
		{
			name:     "vendor without source",
			args:     []string{"vendor", "08:00:2b:01:02:03"},
			wantCode: 1,
		},
		{
			name:     "vendor bad log level",
			args:     []string{"--builtin", "--log-level", "loud", "vendor", "08:00:2b:01:02:03"},
			wantCode: 1,
		},
	}
	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			code, out, stderr := runApp(t, tc.stdin, tc.args...)
			if code != tc.wantCode {
				t.Fatalf("run() = %d, want %d (stderr: %s)", code, tc.wantCode, stderr)
			}
			if tc.want != "" && !cmp.Equal(out, tc.want) {
				t.Error(cmp.Diff(out, tc.want))
			}
		})
	}
}

func TestRun_MediumRegistry(t *testing.T) {
	mam := `Registry,Assignment,Organization Name,Organization Address
MA-M,0055DA1,KoolPOS Inc.,Dallas TX US
`
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		io.WriteString(w, mam)
	}))
	defer srv.Close()

	code, out, stderr := runApp(t, "", "--src.url", srv.URL+"/mam.csv", "vendor", "00:55:da:12:34:56", "00:55:da:22:34:56")
	if code != 0 {
		t.Fatalf("run() = %d: %s", code, stderr)
	}
	want := "00:55:da:12:34:56\tKoolPOS Inc.\n00:55:da:22:34:56\tnot found\n"
	if out != want {
		t.Errorf("output = %q, want %q", out, want)
	}
}

func TestRun_Config(t *testing.T) {
	local := writeCSV(t)
	cfgPath := filepath.Join(t.TempDir(), "vlookup.yaml")
	cfg := "sources:\n  local: [" + local + "]\nlookup:\n  size: 0\n"
	if err := os.WriteFile(cfgPath, []byte(cfg), 0o644); err != nil {
		t.Fatal(err)
	}
	code, out, stderr := runApp(t, "", "--config", cfgPath, "vendor", "08:00:2b:00:00:01")
	if code != 0 {
		t.Fatalf("run() = %d: %s", code, stderr)
	}
	if want := "08:00:2b:00:00:01\tDigital Equipment Corporation\n"; out != want {
		t.Errorf("output = %q, want %q", out, want)
	}
}

func TestRemoteURLs(t *testing.T) {
	got := remoteURLs(config.Sources{Large: true, Small: true, Remote: []string{"http://example.com/oui.csv"}})
	want := []string{macpack.RemoteIeeeMACLarge, macpack.RemoteIeeeMACSmall, "http://example.com/oui.csv"}
	if !cmp.Equal(got, want) {
		t.Error(cmp.Diff(got, want))
	}
}

func TestResolver_organization(t *testing.T) {
	tbl := macpack.Table{
		{Prefix: [3]byte{0x08, 0x00, 0x2b}, Organization: macpack.Organization{Name: "DEC", Address: "Maynard"}},
	}
	r := resolver{
		pack:   macpack.Pack{Table: tbl},
		lookup: macpack.Chain{macpack.Table{{Prefix: [3]byte{0x00, 0x00, 0x0c}, Organization: macpack.Organization{Name: "Cisco"}}}, tbl},
	}

	tt := []struct {
		addr   string
		want   macpack.Organization
		wantOK bool
	}{
		{addr: "08:00:2b:01:02:03", want: macpack.Organization{Name: "DEC", Address: "Maynard"}, wantOK: true},
		{addr: "00:00:0c:01:02:03", want: macpack.Organization{Name: "Cisco"}, wantOK: true},
		{addr: "02:00:00:00:00:01"},
	}
	for _, tc := range tt {
		t.Run(tc.addr, func(t *testing.T) {
			got, ok := r.organization(macaddr.MustParse(tc.addr))
			if ok != tc.wantOK {
				t.Fatalf("organization() ok = %t, want %t", ok, tc.wantOK)
			}
			if !cmp.Equal(got, tc.want) {
				t.Error(cmp.Diff(got, tc.want))
			}
		})
	}
}

func TestWriteTable(t *testing.T) {
	tbl := macpack.Table{
		{Prefix: [3]byte{0x08, 0x00, 0x2b}, Organization: macpack.Organization{Name: "DEC", Address: "111 Powdermill Road"}},
	}
	entries := []*arp.Entry{
		{Address: net.ParseIP("192.168.1.2"), Mac: macaddr.MustParse("08:00:2b:01:02:03"), Device: &net.Interface{Name: "eth0"}},
		{Address: net.ParseIP("192.168.1.3"), Mac: macaddr.MustParse("02:00:00:00:00:01"), Device: &net.Interface{Name: "eth0"}},
		{Address: net.ParseIP("10.0.0.2"), Mac: macaddr.MustParse("08:00:2b:01:02:04"), Device: &net.Interface{Name: "wlan0"}},
	}

	var buf bytes.Buffer
	writeTable(&buf, entries, resolver{pack: macpack.Pack{Table: tbl}, lookup: tbl}, "eth0", 8)
	want := fmt.Sprintf(format, "idx", "interface", "IP", "MAC", "Name", "Address") +
		fmt.Sprintf(format, "---", "---------", "--", "---", "----", "-------") +
		fmt.Sprintf(format, "0", "eth0", "192.168.1.2", "08:00:2b:01:02:03", "DEC", "111 Powd") +
		fmt.Sprintf(format, "1", "eth0", "192.168.1.3", "02:00:00:00:00:01", "not found", "")
	if diff := cmp.Diff(buf.String(), want); diff != "" {
		t.Error(diff)
	}
}
