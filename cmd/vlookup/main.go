// vlookup parses, compares and resolves hardware addresses and lists the
// vendors of the hosts in the local ARP cache.
//
//	vlookup parse 08-00-2b-01-02-03 0800.2b01.0203
//	vlookup compare 08:00:2b:01:02:03 08:00:2b:ff:02:03
//	vlookup --builtin vendor 08:00:2b:01:02:03
//	vlookup --src.local-file oui.csv arp -i eth0
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/frzifus/macvendor/internal/config"
	"github.com/frzifus/macvendor/internal/logx"
	"github.com/frzifus/macvendor/pkg/version"
	"github.com/pion/logging"
	"github.com/urfave/cli/v3"
)

func main() {
	os.Exit(run(os.Args, os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := createApp(stdin, stdout, stderr).Run(ctx, args); err != nil {
		fmt.Fprintln(stderr, "error:", err)
		var ec cli.ExitCoder
		if errors.As(err, &ec) {
			return ec.ExitCode()
		}
		return 1
	}
	return 0
}

func createApp(stdin io.Reader, stdout, stderr io.Writer) *cli.Command {
	return &cli.Command{
		Name:      "vlookup",
		Usage:     "hardware address parsing and vendor lookup",
		Version:   version.Version(),
		Reader:    stdin,
		Writer:    stdout,
		ErrWriter: stderr,
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "config", Aliases: []string{"c"}, Usage: "configuration file (yaml or json)"},
			&cli.StringFlag{Name: "log-level", Usage: "trace, debug, info, warn, error or disabled"},
			&cli.BoolFlag{Name: "src.fetch-l", Usage: "get large from ieee.org"},
			&cli.BoolFlag{Name: "src.fetch-m", Usage: "get medium from ieee.org"},
			&cli.BoolFlag{Name: "src.fetch-s", Usage: "get small from ieee.org"},
			&cli.StringSliceFlag{Name: "src.local-file", Usage: "use file input"},
			&cli.StringSliceFlag{Name: "src.url", Usage: "use csv from url"},
			&cli.StringSliceFlag{Name: "src.cache", Usage: "use cached registry by tag"},
			&cli.BoolFlag{Name: "builtin", Usage: "use the built-in vendor table"},
			&cli.BoolFlag{Name: "registry", Usage: "fall back to the compiled-in IEEE registry"},
			&cli.StringFlag{Name: "cache-dir", Usage: "registry cache directory"},
		},
		Commands: []*cli.Command{
			parseCommand(stdout),
			compareCommand(stdout),
			sortCommand(stdin, stdout),
			vendorCommand(stdout),
			arpCommand(stdout),
			discoverCommand(stdout),
		},
		ExitErrHandler: func(context.Context, *cli.Command, error) {},
	}
}

// settings merges the configuration file with the global flags.
func settings(cmd *cli.Command) (config.Config, error) {
	cfg, err := config.Load(cmd.String("config"))
	if err != nil {
		return config.Config{}, err
	}
	if cmd.IsSet("log-level") {
		cfg.Log.Level = cmd.String("log-level")
	}
	s := &cfg.Sources
	s.Large = s.Large || cmd.Bool("src.fetch-l")
	s.Medium = s.Medium || cmd.Bool("src.fetch-m")
	s.Small = s.Small || cmd.Bool("src.fetch-s")
	s.Builtin = s.Builtin || cmd.Bool("builtin")
	s.Registry = s.Registry || cmd.Bool("registry")
	s.Local = append(s.Local, cmd.StringSlice("src.local-file")...)
	s.Remote = append(s.Remote, cmd.StringSlice("src.url")...)
	s.Cached = append(s.Cached, cmd.StringSlice("src.cache")...)
	if cmd.IsSet("cache-dir") {
		cfg.Cache.Dir = cmd.String("cache-dir")
	}
	return cfg, cfg.Validate()
}

func loggerFactory(cfg config.Config, w io.Writer) (logging.LoggerFactory, error) {
	return logx.NewFactory(cfg.Log.Level, w)
}
