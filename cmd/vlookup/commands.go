package main

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"os"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/frzifus/macvendor/internal/config"
	"github.com/frzifus/macvendor/pkg/arp"
	"github.com/frzifus/macvendor/pkg/macaddr"
	"github.com/urfave/cli/v3"
)

const (
	format = "%-5s %-10s %-20s %-20s %-20s %-15s\n"

	notFound = "not found"

	defaultDiscoverTimeout = 10 * time.Second
)

func parseCommand(w io.Writer) *cli.Command {
	return &cli.Command{
		Name:      "parse",
		Usage:     "print addresses in canonical notation",
		ArgsUsage: "ADDR...",
		Action: func(_ context.Context, cmd *cli.Command) error {
			args := cmd.Args().Slice()
			if len(args) == 0 {
				return cli.Exit("parse: missing address", 2)
			}
			failed := 0
			for _, s := range args {
				a, err := macaddr.Parse(s)
				if err != nil {
					fmt.Fprintf(w, "%-24s %v\n", s, err)
					failed++
					continue
				}
				fmt.Fprintf(w, "%-24s %s\n", s, a)
			}
			if failed > 0 {
				return cli.Exit(fmt.Sprintf("parse: %d of %d addresses invalid", failed, len(args)), 1)
			}
			return nil
		},
	}
}

func compareCommand(w io.Writer) *cli.Command {
	return &cli.Command{
		Name:      "compare",
		Usage:     "compare two addresses",
		ArgsUsage: "A B",
		Action: func(_ context.Context, cmd *cli.Command) error {
			if cmd.Args().Len() != 2 {
				return cli.Exit("compare: need exactly two addresses", 2)
			}
			a, err := macaddr.Parse(cmd.Args().Get(0))
			if err != nil {
				return err
			}
			b, err := macaddr.Parse(cmd.Args().Get(1))
			if err != nil {
				return err
			}
			fmt.Fprintf(w, "compare:     %d\n", a.Compare(b))
			fmt.Fprintf(w, "octets:      %d\n", macaddr.CompareOctets(a, b))
			fmt.Fprintf(w, "equal:       %t\n", a.Equal(b))
			fmt.Fprintf(w, "same vendor: %t\n", a.SameVendor(b))
			return nil
		},
	}
}

func sortCommand(stdin io.Reader, w io.Writer) *cli.Command {
	return &cli.Command{
		Name:      "sort",
		Usage:     "sort addresses given as arguments or one per line on stdin",
		ArgsUsage: "[ADDR...]",
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "strict", Usage: "order by all six octets"},
		},
		Action: func(_ context.Context, cmd *cli.Command) error {
			input := cmd.Args().Slice()
			if len(input) == 0 {
				lines, err := readLines(stdin)
				if err != nil {
					return err
				}
				input = lines
			}
			addrs := make([]macaddr.Addr, 0, len(input))
			for _, s := range input {
				a, err := macaddr.Parse(s)
				if err != nil {
					return err
				}
				addrs = append(addrs, a)
			}
			cmpFn := macaddr.Compare
			if cmd.Bool("strict") {
				cmpFn = macaddr.CompareOctets
			}
			slices.SortStableFunc(addrs, cmpFn)
			for _, a := range addrs {
				fmt.Fprintln(w, a)
			}
			return nil
		},
	}
}

func readLines(r io.Reader) ([]string, error) {
	var lines []string
	s := bufio.NewScanner(r)
	for s.Scan() {
		if l := strings.TrimSpace(s.Text()); l != "" {
			lines = append(lines, l)
		}
	}
	return lines, s.Err()
}

func vendorCommand(w io.Writer) *cli.Command {
	return &cli.Command{
		Name:      "vendor",
		Usage:     "resolve the manufacturer of addresses",
		ArgsUsage: "ADDR...",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if cmd.Args().Len() == 0 {
				return cli.Exit("vendor: missing address", 2)
			}
			_, r, err := setup(ctx, cmd)
			if err != nil {
				return err
			}
			for _, s := range cmd.Args().Slice() {
				a, err := macaddr.Parse(s)
				if err != nil {
					return err
				}
				name := notFound
				if org, ok := r.organization(a); ok {
					name = org.Name
				}
				fmt.Fprintf(w, "%s\t%s\n", a, name)
			}
			return nil
		},
	}
}

func arpCommand(w io.Writer) *cli.Command {
	return &cli.Command{
		Name:  "arp",
		Usage: "list the arp cache with vendors",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "i", Usage: "filter interface"},
			&cli.StringFlag{Name: "o", Usage: "output file"},
			&cli.IntFlag{Name: "trim.address", Value: -1, Usage: "limits the length of the address field"},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			cfg, r, err := setup(ctx, cmd)
			if err != nil {
				return err
			}
			src, err := arp.FromCache()
			if err != nil {
				return err
			}
			trim := cfg.Output.TrimAddress
			if t := cmd.Int("trim.address"); t >= 0 {
				trim = t
			}

			var buf bytes.Buffer
			writeTable(&buf, arp.ParseEntries(src), r, cmd.String("i"), trim)
			var b io.Reader = &buf
			if store := cmd.String("o"); store != "" {
				f, err := os.Create(store)
				if err != nil {
					return err
				}
				defer f.Close()
				b = io.TeeReader(b, f)
			}
			_, err = io.Copy(w, b)
			return err
		},
	}
}

func writeTable(w io.Writer, entries []*arp.Entry, r resolver, iface string, trim int) {
	fmt.Fprintf(w, format, "idx", "interface", "IP", "MAC", "Name", "Address")
	fmt.Fprintf(w, format, "---", "---------", "--", "---", "----", "-------")
	for i, e := range entries {
		if iface != "" && e.Device != nil && e.Device.Name != iface {
			continue
		}
		devIface := "unknown"
		if e.Device != nil {
			devIface = e.Device.Name
		}
		name, addr := notFound, ""
		if org, ok := r.organization(e.Mac); ok {
			name, addr = org.Name, org.Address
			if len(addr) > trim {
				addr = addr[:trim]
			}
		}
		fmt.Fprintf(w, format, strconv.Itoa(i), devIface, e.Address.String(), e.Mac.String(), name, addr)
	}
}

func discoverCommand(w io.Writer) *cli.Command {
	return &cli.Command{
		Name:  "discover",
		Usage: "send arp requests on an interface and list the replying vendors",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "i", Usage: "interface", Required: true},
			&cli.DurationFlag{Name: "timeout", Value: defaultDiscoverTimeout, Usage: "how long to listen for replies"},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			cfg, r, err := setup(ctx, cmd)
			if err != nil {
				return err
			}
			lf, err := loggerFactory(cfg, cmd.Root().ErrWriter)
			if err != nil {
				return err
			}
			iface, err := net.InterfaceByName(cmd.String("i"))
			if err != nil {
				return err
			}
			d, err := arp.NewDiscovery(iface, arp.WithLogger(lf.NewLogger("arp")))
			if err != nil {
				return err
			}
			defer d.Close()

			ctx, cancel := context.WithTimeout(ctx, cmd.Duration("timeout"))
			defer cancel()
			entries := make(chan arp.Entry)
			done := make(chan error, 1)
			go func() {
				done <- d.Find(ctx, entries)
			}()

			fmt.Fprintf(w, "%-20s %-20s %s\n", "IP", "MAC", "Name")
			for {
				select {
				case e := <-entries:
					name := notFound
					if org, ok := r.organization(e.Mac); ok {
						name = org.Name
					}
					fmt.Fprintf(w, "%-20s %-20s %s\n", e.Address, e.Mac, name)
				case err := <-done:
					if errors.Is(err, context.DeadlineExceeded) {
						return nil
					}
					return err
				}
			}
		},
	}
}

// setup loads the settings of cmd and builds the vendor resolver.
func setup(ctx context.Context, cmd *cli.Command) (config.Config, resolver, error) {
	cfg, err := settings(cmd)
	if err != nil {
		return config.Config{}, resolver{}, err
	}
	lf, err := loggerFactory(cfg, cmd.Root().ErrWriter)
	if err != nil {
		return config.Config{}, resolver{}, err
	}
	r, err := newResolver(ctx, cfg, lf)
	return cfg, r, err
}
