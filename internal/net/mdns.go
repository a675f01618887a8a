package net

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/hashicorp/mdns"
)

const serviceType = "_geoboard._tcp"

// lookup is swapped out by tests.
var lookup = mdns.Lookup

// Announcer wraps the mDNS server advertising a hosted session.
type Announcer struct {
	server *mdns.Server
}

// Announce advertises a session on the local network so viewers can
// find it without typing the share link.
func Announce(port int) (*Announcer, error) {
	host, err := os.Hostname()
	if err != nil {
		return nil, fmt.Errorf("could not get hostname: %w", err)
	}

	service, err := mdns.NewMDNSService(
		host,
		serviceType,
		"", // default ".local" domain
		"", // default OS hostname
		port,
		nil, // auto-detect IPs
		[]string{"GeoBoard"},
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create mDNS service: %w", err)
	}

	server, err := mdns.NewServer(&mdns.Config{Zone: service})
	if err != nil {
		return nil, fmt.Errorf("failed to start mDNS server: %w", err)
	}
	return &Announcer{server: server}, nil
}

// Shutdown stops the announcement.
func (a *Announcer) Shutdown() {
	if a.server != nil {
		a.server.Shutdown()
	}
}

// Browse looks up announced sessions and calls found with each
// "ip:port" it discovers.
func Browse(found func(addr string)) error {
	entries := make(chan *mdns.ServiceEntry, 8)
	go func() {
		for e := range entries {
			if e.AddrV4 == nil || e.Port == 0 {
				continue
			}
			found(fmt.Sprintf("%s:%d", e.AddrV4.String(), e.Port))
		}
	}()
	return lookup(serviceType, entries)
}

// Discover browses the local network and returns the first announced
// session. Used when a viewer starts without an explicit share link.
func Discover() (string, error) {
	found := make(chan string, 1)
	if err := Browse(func(addr string) {
		select {
		case found <- addr:
		default:
		}
	}); err != nil {
		return "", fmt.Errorf("mDNS lookup: %w", err)
	}

	// The lookup has returned; give the forwarding goroutine a moment
	// to drain anything still buffered.
	select {
	case addr := <-found:
		return addr, nil
	case <-time.After(200 * time.Millisecond):
		return "", errors.New("no session found on the local network")
	}
}
