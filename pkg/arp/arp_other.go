//go:build !linux

package arp

import (
	"bytes"
	"errors"
	"runtime"
)

// FromCache is only implemented on linux.
func FromCache() (*bytes.Reader, error) {
	return nil, errors.New("arp: reading the arp cache is not supported on " + runtime.GOOS)
}
