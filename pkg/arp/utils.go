package arp

import (
	"net"
	"sync"

	"github.com/frzifus/macvendor/pkg/macaddr"
)

// http://play.golang.org/p/m8TNTtygK0
func inc(ip net.IP) {
	for j := len(ip) - 1; j >= 0; j-- {
		ip[j]++
		if ip[j] > 0 {
			break
		}
	}
}

func hosts(cidr string) ([]net.IP, error) {
	ip, ipnet, err := net.ParseCIDR(cidr)
	if err != nil {
		return nil, err
	}
	if x := ip.To4(); x == nil {
		return nil, nil
	}

	var ips []net.IP
	for ip := ip.Mask(ipnet.Mask); ipnet.Contains(ip); inc(ip) {
		newIP := make([]byte, net.IPv4len)
		copy(newIP, ip)
		ips = append(ips, newIP)
	}
	if len(ips) <= 2 {
		return ips, nil
	}
	// remove network address and broadcast address
	return ips[1 : len(ips)-1], nil
}

type discoveryTable struct {
	sync.Mutex
	discovered map[macaddr.Addr]struct{}
}

// add records mac and reports whether it was new.
func (t *discoveryTable) add(mac macaddr.Addr) bool {
	t.Lock()
	defer t.Unlock()
	if _, ok := t.discovered[mac]; ok {
		return false
	}
	t.discovered[mac] = struct{}{}
	return true
}
