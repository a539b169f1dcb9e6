package remote

import (
	"fmt"
	"net"
	"strconv"
	"time"
)

// Receiver is an odintv instance discovered on the network
type Receiver struct {
	// Name is the advertised instance name (e.g., "Odin TV (livingroom)")
	Name string

	// Hostname is the mDNS hostname (e.g., "livingroom.local.")
	Hostname string

	// IP is the preferred address, IPv4 when available
	IP string

	// Port is the remote-control port
	Port int

	// Metadata contains the TXT record data ("version", "path")
	Metadata map[string]string

	// DiscoveredAt is when the receiver answered
	DiscoveredAt time.Time
}

// String returns a human-readable description
func (r *Receiver) String() string {
	return fmt.Sprintf("%s (%s) at %s", r.Name, r.Hostname, r.Addr())
}

// Addr returns host:port for Dial
func (r *Receiver) Addr() string {
	return net.JoinHostPort(r.IP, strconv.Itoa(r.Port))
}

// GetMetadata retrieves a metadata value by key, or returns empty string if not found
func (r *Receiver) GetMetadata(key string) string {
	if r.Metadata == nil {
		return ""
	}
	return r.Metadata[key]
}
