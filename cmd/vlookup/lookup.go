package main

import (
	"context"
	"errors"
	"net/http"

	"github.com/frzifus/macvendor/internal/config"
	"github.com/frzifus/macvendor/pkg/macaddr"
	"github.com/frzifus/macvendor/pkg/macpack"
	"github.com/pion/logging"
)

var errNoSource = errors.New("no vendor source selected, see --help")

// resolver answers vendor queries. Names come from the lookup chain,
// postal addresses from the loaded pack when it agrees on the name.
type resolver struct {
	pack   macpack.Pack
	lookup macpack.Lookuper
}

func (r resolver) organization(addr macaddr.Addr) (macpack.Organization, bool) {
	name, ok := r.lookup.Manufacturer(addr)
	if !ok {
		return macpack.Organization{}, false
	}
	org := macpack.Organization{Name: name}
	if o, ok := r.pack.Lookup(addr); ok && o.Name == name {
		org.Address = o.Address
	}
	return org, true
}

func newResolver(ctx context.Context, cfg config.Config, lf logging.LoggerFactory) (resolver, error) {
	src := cfg.Sources
	if !src.HasSource() {
		return resolver{}, errNoSource
	}
	log := lf.NewLogger("macpack")

	opts := []macpack.Option{macpack.WithLogger(log)}
	for _, p := range src.Local {
		opts = append(opts, macpack.WithLocalSource(p))
	}
	if len(src.Cached) > 0 {
		c, err := cfg.Cache.Open()
		if err != nil {
			return resolver{}, err
		}
		for _, tag := range src.Cached {
			opts = append(opts, macpack.WithCacheSource(c, tag))
		}
	}
	fetch := []macpack.RemoteOption{
		macpack.WithContext(ctx),
		macpack.WithHTTPClient(&http.Client{Timeout: cfg.Fetch.Timeout}),
		macpack.WithAttempts(cfg.Fetch.Attempts),
		macpack.WithRetryDelay(cfg.Fetch.Delay),
		macpack.WithFetchLogger(lf.NewLogger("fetch")),
	}
	for _, url := range remoteURLs(src) {
		opts = append(opts, macpack.WithRemoteSource(url, fetch...))
	}
	if src.Builtin {
		opts = append(opts, macpack.WithDefaultTable())
	}

	var chain macpack.Chain
	pack, err := macpack.Load(opts...)
	switch {
	case err == nil:
		log.Infof("loaded %d prefixes and %d blocks", len(pack.Table), len(pack.Blocks))
		chain = append(chain, pack)
	case errors.Is(err, macpack.ErrNoSource) && src.Registry:
	default:
		return resolver{}, err
	}
	if src.Registry {
		chain = append(chain, macpack.Registry{})
	}

	var l macpack.Lookuper = chain
	if cfg.Lookup.Size > 0 {
		if l, err = macpack.NewCached(chain, cfg.Lookup.Size, cfg.Lookup.TTL); err != nil {
			return resolver{}, err
		}
	}
	return resolver{pack: pack, lookup: l}, nil
}

func remoteURLs(src config.Sources) []string {
	var urls []string
	if src.Large {
		urls = append(urls, macpack.RemoteIeeeMACLarge)
	}
	if src.Medium {
		urls = append(urls, macpack.RemoteIeeeMACMedium)
	}
	if src.Small {
		urls = append(urls, macpack.RemoteIeeeMACSmall)
	}
	return append(urls, src.Remote...)
}
