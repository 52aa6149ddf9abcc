package arp

import (
	"context"
	"errors"
	"net"
	"time"

	"github.com/frzifus/macvendor/internal/logx"
	"github.com/frzifus/macvendor/pkg/macaddr"
	"github.com/mdlayher/arp"
	"github.com/mdlayher/ethernet"
	"github.com/pion/logging"
	"golang.org/x/sync/errgroup"
)

// Option recognized by Discovery
type Option func(*Discovery)

// WithLogger creates an option that sets the given logger to a Discovery object
func WithLogger(l logging.LeveledLogger) Option {
	return func(d *Discovery) {
		if l != nil {
			d.logger = l
		}
	}
}

// WithSendInterval sets the pause between two requests.
func WithSendInterval(i time.Duration) Option {
	return func(d *Discovery) {
		d.sendInterval = i
	}
}

// WithReadTimeout sets how long a single read may block. Cancellation of
// Find is noticed at the latest after this long.
func WithReadTimeout(t time.Duration) Option {
	return func(d *Discovery) {
		d.rTimeout = t
	}
}

// WithWriteTimeout sets the deadline of a single request.
func WithWriteTimeout(t time.Duration) Option {
	return func(d *Discovery) {
		d.wTimeout = t
	}
}

// NewDiscovery creates a new arp Discovery service for the given interface
func NewDiscovery(iface *net.Interface, opts ...Option) (*Discovery, error) {
	addresses, err := iface.Addrs()
	if err != nil {
		return nil, err
	}

	targets := make([]net.IP, 0)
	ips := make([]net.IP, 0)
	for _, a := range addresses {
		ipnet, ok := a.(*net.IPNet)
		if !ok || ipnet.IP.IsLoopback() || ipnet.IP.To4() == nil {
			continue
		}
		t, err := hosts(a.String())
		if err != nil {
			return nil, err
		}
		targets = append(targets, t...)
		ips = append(ips, ipnet.IP)
	}

	c, err := arp.Dial(iface)
	if err != nil {
		return nil, err
	}
	return newDiscovery(c, iface, ips, targets, opts...), nil
}

func newDiscovery(c arpClient, iface *net.Interface, ips, targets []net.IP, opts ...Option) *Discovery {
	d := &Discovery{
		client:       c,
		sendInterval: 10 * time.Millisecond,
		wTimeout:     2 * time.Second,
		rTimeout:     500 * time.Millisecond,
		myAddresses:  ips,
		targets:      targets,
		discovered:   discoveryTable{discovered: make(map[macaddr.Addr]struct{})},
		iface:        iface,
		logger:       logx.Discard("arp"),
	}
	for _, o := range opts {
		o(d)
	}
	return d
}

type arpClient interface {
	Request(net.IP) error
	Read() (*arp.Packet, *ethernet.Frame, error)
	SetReadDeadline(time.Time) error
	SetWriteDeadline(time.Time) error
	Close() error
}

// Discovery is used to locate devices on the network using the Address
// Resolution Protocol (ARP). Send and read timeouts can be set individually.
// The results are returned in real time via the entry channel. A scan can be
// started using the "Find" method. This method blocks and ends only when
// the context has done.
// NOTE: to receive arp replies over the network interface cap_net_raw is
// required because a raw socket is used.
type Discovery struct {
	client       arpClient
	myAddresses  []net.IP
	targets      []net.IP
	wTimeout     time.Duration
	rTimeout     time.Duration
	sendInterval time.Duration
	discovered   discoveryTable
	iface        *net.Interface
	logger       logging.LeveledLogger
}

// Targets returns the addresses Find sends requests to.
func (a *Discovery) Targets() []net.IP {
	return a.targets
}

// Close the unix raw socket used for sending and receiving
func (a *Discovery) Close() error {
	return a.client.Close()
}

// Find device entries in the network where the initialized interface is
// located. This method blocks and returns the results via the passed entry
// channel. Every hardware address is reported once. The process can be
// terminated by canceling the passed context.
func (a *Discovery) Find(ctx context.Context, response chan<- Entry) error {
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		a.scan(ctx)
		return nil
	})
	g.Go(func() error {
		return a.receive(ctx, response)
	})
	return g.Wait()
}

func (a *Discovery) scan(ctx context.Context) {
	t := time.NewTicker(max(a.sendInterval, time.Microsecond))
	defer t.Stop()
	for _, ip := range a.targets {
		if err := a.client.SetWriteDeadline(time.Now().Add(a.wTimeout)); err != nil {
			a.logger.Warnf("set write deadline: %v", err)
			continue
		}
		if err := a.client.Request(ip); err != nil {
			a.logger.Debugf("request %s: %v", ip, err)
		}
		select {
		case <-ctx.Done():
			return
		case <-t.C:
		}
	}
	a.logger.Debugf("sent %d requests on %s", len(a.targets), a.ifaceName())
}

func (a *Discovery) receive(ctx context.Context, response chan<- Entry) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		default:
		}
		if err := a.client.SetReadDeadline(time.Now().Add(a.rTimeout)); err != nil {
			return err
		}
		resp, _, err := a.client.Read()
		if err != nil {
			var nerr net.Error
			if errors.As(err, &nerr) && nerr.Timeout() {
				continue
			}
			return err
		}

		if resp.Operation != arp.OperationReply {
			a.logger.Tracef("ignoring operation %v from %s", resp.Operation, resp.SenderIP)
			continue
		}
		if a.isMine(resp.SenderIP) {
			continue
		}
		mac, err := macaddr.FromHardwareAddr(resp.SenderHardwareAddr)
		if err != nil {
			a.logger.Debugf("reply from %s: %v", resp.SenderIP, err)
			continue
		}
		if !a.discovered.add(mac) {
			continue
		}

		select {
		case response <- Entry{
			Address: resp.SenderIP,
			Type:    byte(resp.HardwareType),
			Mac:     mac,
			Device:  a.iface,
		}:
		case <-ctx.Done():
			return nil
		}
	}
}

func (a *Discovery) isMine(ip net.IP) bool {
	for _, mine := range a.myAddresses {
		if mine.Equal(ip) {
			return true
		}
	}
	return false
}

func (a *Discovery) ifaceName() string {
	if a.iface == nil {
		return "unknown"
	}
	return a.iface.Name
}
