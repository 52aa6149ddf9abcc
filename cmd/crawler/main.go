// crawler downloads the IEEE registries, either into dated csv files in
// the working directory or into the registry cache used by vlookup.
package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/frzifus/macvendor/internal/config"
	"github.com/frzifus/macvendor/internal/logx"
	"github.com/frzifus/macvendor/pkg/macpack"
	"github.com/frzifus/macvendor/pkg/version"
	"github.com/pion/logging"
	"github.com/urfave/cli/v3"
	"golang.org/x/sync/errgroup"
)

var errNoURL = errors.New("nothing to fetch, see --help")

type target struct {
	tag string
	url string
}

func main() {
	os.Exit(run(os.Args, os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := createApp(stdout, stderr).Run(ctx, args); err != nil {
		fmt.Fprintln(stderr, "error:", err)
		return 1
	}
	return 0
}

func createApp(stdout, stderr io.Writer) *cli.Command {
	defaults := config.Default()
	return &cli.Command{
		Name:      "crawler",
		Usage:     "download the IEEE vendor registries",
		Version:   version.Version(),
		Writer:    stdout,
		ErrWriter: stderr,
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "src.fetch-l", Usage: "get large from ieee.org"},
			&cli.BoolFlag{Name: "src.fetch-m", Usage: "get medium from ieee.org"},
			&cli.BoolFlag{Name: "src.fetch-s", Usage: "get small from ieee.org"},
			&cli.BoolFlag{Name: "src.fetch-all", Usage: "get all from ieee.org"},
			&cli.StringSliceFlag{Name: "src.fetch-custom", Usage: "get csv from url"},
			&cli.DurationFlag{Name: "timeout", Value: defaults.Fetch.Timeout, Usage: "specified timeout"},
			&cli.UintFlag{Name: "attempts", Value: defaults.Fetch.Attempts, Usage: "attempts per download"},
			&cli.DurationFlag{Name: "retry-delay", Value: defaults.Fetch.Delay, Usage: "base delay between attempts"},
			&cli.StringFlag{Name: "o", Value: "unknown", Usage: "output file name"},
			&cli.StringFlag{Name: "dir", Value: ".", Usage: "output directory"},
			&cli.BoolFlag{Name: "cache", Usage: "store into the registry cache instead of files"},
			&cli.StringFlag{Name: "cache-dir", Usage: "registry cache directory"},
			&cli.BoolFlag{Name: "cache.user-dir", Usage: "use the registry cache in the home directory"},
			&cli.StringFlag{Name: "log-level", Value: "info", Usage: "trace, debug, info, warn, error or disabled"},
		},
		ExitErrHandler: func(context.Context, *cli.Command, error) {},
		Action:         crawl,
	}
}

func crawl(ctx context.Context, cmd *cli.Command) error {
	lf, err := logx.NewFactory(cmd.String("log-level"), cmd.Root().ErrWriter)
	if err != nil {
		return err
	}
	log := lf.NewLogger("crawler")

	all := cmd.Bool("src.fetch-all")
	targets := crawlTargets(all || cmd.Bool("src.fetch-l"), all || cmd.Bool("src.fetch-m"),
		all || cmd.Bool("src.fetch-s"), cmd.StringSlice("src.fetch-custom"))
	if len(targets) == 0 {
		return errNoURL
	}

	payloads, err := download(ctx, targets, log,
		macpack.WithHTTPClient(&http.Client{Timeout: cmd.Duration("timeout")}),
		macpack.WithAttempts(cmd.Uint("attempts")),
		macpack.WithRetryDelay(cmd.Duration("retry-delay")),
		macpack.WithFetchLogger(lf.NewLogger("fetch")),
	)
	if err != nil {
		return err
	}

	if cmd.Bool("cache") {
		return store(config.Cache{Dir: cmd.String("cache-dir"), UserDir: cmd.Bool("cache.user-dir")}, targets, payloads, log)
	}
	return save(cmd.String("dir"), cmd.String("o"), time.Now(), payloads, log)
}

// download fetches all targets concurrently. The first failure cancels
// the remaining downloads.
func download(ctx context.Context, targets []target, log logging.LeveledLogger, opts ...macpack.RemoteOption) ([][]byte, error) {
	payloads := make([][]byte, len(targets))
	g, ctx := errgroup.WithContext(ctx)
	opts = append([]macpack.RemoteOption{macpack.WithContext(ctx)}, opts...)
	for i, t := range targets {
		g.Go(func() error {
			log.Infof("%d) get: %s", i, t.url)
			b, err := macpack.Fetch(t.url, opts...)
			if err != nil {
				return fmt.Errorf("%s: %w", t.url, err)
			}
			log.Debugf("%d) got %d bytes", i, len(b))
			payloads[i] = b
			return nil
		})
	}
	return payloads, g.Wait()
}

func save(dir, name string, t time.Time, payloads [][]byte, log logging.LeveledLogger) error {
	for i, b := range payloads {
		p := filepath.Join(dir, fmt.Sprintf("%s_%d_%s.csv", t.Format("2006-01-02"), i, name))
		if err := os.WriteFile(p, b, 0o644); err != nil {
			return err
		}
		log.Infof("wrote %s", p)
	}
	return nil
}

func store(cfg config.Cache, targets []target, payloads [][]byte, log logging.LeveledLogger) error {
	c, err := cfg.Open()
	if err != nil {
		return err
	}
	for i, b := range payloads {
		if err := c.Set(targets[i].tag, bytes.NewReader(b)); err != nil {
			return err
		}
	}
	if err := c.Flush(); err != nil {
		return err
	}
	log.Infof("cached %d registries in %s", len(payloads), c.Path())
	return nil
}

func crawlTargets(large, medium, small bool, custom []string) []target {
	var targets []target
	if large {
		targets = append(targets, target{tag: "oui", url: macpack.RemoteIeeeMACLarge})
	}
	if medium {
		targets = append(targets, target{tag: "mam", url: macpack.RemoteIeeeMACMedium})
	}
	if small {
		targets = append(targets, target{tag: "oui36", url: macpack.RemoteIeeeMACSmall})
	}
	for i, u := range custom {
		targets = append(targets, target{tag: fmt.Sprintf("custom%d", i), url: u})
	}
	return targets
}
