package remote

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/grandcat/zeroconf"
	"github.com/muurk/odintv/internal/logging"
	"go.uber.org/zap"
)

const (
	// ServiceType is the mDNS service type odintv receivers advertise
	ServiceType = "_odintv._tcp"

	// ServiceDomain is the mDNS domain (typically "local.")
	ServiceDomain = "local."

	// DefaultScanTimeout is the default timeout for receiver discovery
	DefaultScanTimeout = 5 * time.Second
)

// Advertise registers the remote-control service over mDNS and keeps it
// registered until ctx is cancelled.
func Advertise(ctx context.Context, name string, port int, txt ...string) error {
	records := append([]string{"path=/ws"}, txt...)

	server, err := zeroconf.Register(name, ServiceType, ServiceDomain, port, records, nil)
	if err != nil {
		return fmt.Errorf("failed to register mDNS service: %w", err)
	}
	logging.Info("Advertising remote control",
		zap.String("name", name),
		zap.String("service", ServiceType),
		zap.Int("port", port),
	)

	<-ctx.Done()
	server.Shutdown()
	logging.Debug("mDNS advertisement withdrawn", zap.String("name", name))
	return nil
}

// Scanner handles mDNS receiver discovery
type Scanner struct {
	// Timeout is the maximum time to wait for receivers
	Timeout time.Duration
}

// NewScanner creates a new mDNS scanner with default settings
func NewScanner() *Scanner {
	return &Scanner{
		Timeout: DefaultScanTimeout,
	}
}

// Scan browses for receivers until the timeout or ctx expires
func (s *Scanner) Scan(ctx context.Context) ([]*Receiver, error) {
	ctx, cancel := context.WithTimeout(ctx, s.Timeout)
	defer cancel()

	entries := make(chan *zeroconf.ServiceEntry)

	var (
		mu        sync.Mutex
		receivers = make([]*Receiver, 0)
		seen      = make(map[string]bool)
		done      = make(chan struct{})
	)

	resolver, err := zeroconf.NewResolver(nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create mDNS resolver: %w", err)
	}

	go func() {
		defer close(done)
		for {
			select {
			case <-ctx.Done():
				return
			case entry, ok := <-entries:
				if !ok {
					return
				}
				r := parseServiceEntry(entry)
				if r == nil {
					continue
				}
				mu.Lock()
				if !seen[r.Addr()] {
					seen[r.Addr()] = true
					receivers = append(receivers, r)
				}
				mu.Unlock()
			}
		}
	}()

	if err := resolver.Browse(ctx, ServiceType, ServiceDomain, entries); err != nil {
		return nil, fmt.Errorf("failed to browse for mDNS services: %w", err)
	}

	<-ctx.Done()
	<-done

	mu.Lock()
	defer mu.Unlock()
	return receivers, nil
}

// Find waits for the receiver with the given instance name
func (s *Scanner) Find(ctx context.Context, name string) (*Receiver, error) {
	ctx, cancel := context.WithTimeout(ctx, s.Timeout)
	defer cancel()

	entries := make(chan *zeroconf.ServiceEntry)
	found := make(chan *Receiver, 1)

	resolver, err := zeroconf.NewResolver(nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create mDNS resolver: %w", err)
	}

	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case entry, ok := <-entries:
				if !ok {
					return
				}
				if r := parseServiceEntry(entry); r != nil && r.Name == name {
					found <- r
					cancel()
					return
				}
			}
		}
	}()

	if err := resolver.Browse(ctx, ServiceType, ServiceDomain, entries); err != nil {
		return nil, fmt.Errorf("failed to browse for mDNS services: %w", err)
	}

	select {
	case r := <-found:
		return r, nil
	case <-ctx.Done():
		select {
		case r := <-found:
			return r, nil
		default:
		}
		return nil, fmt.Errorf("receiver %q not found within timeout", name)
	}
}

// parseServiceEntry converts a zeroconf service entry to a Receiver.
// Entries without an address or port are dropped.
func parseServiceEntry(entry *zeroconf.ServiceEntry) *Receiver {
	if entry == nil || entry.Port == 0 {
		return nil
	}

	var ip string
	if len(entry.AddrIPv4) > 0 {
		ip = entry.AddrIPv4[0].String()
	} else if len(entry.AddrIPv6) > 0 {
		ip = entry.AddrIPv6[0].String()
	}
	if ip == "" {
		return nil
	}

	metadata := make(map[string]string)
	for _, txt := range entry.Text {
		key, value, _ := strings.Cut(txt, "=")
		metadata[key] = value
	}

	name := entry.Instance
	if name == "" {
		name = strings.TrimSuffix(entry.HostName, ".")
	}

	return &Receiver{
		Name:         unescapeInstance(name),
		Hostname:     entry.HostName,
		IP:           ip,
		Port:         entry.Port,
		Metadata:     metadata,
		DiscoveredAt: time.Now(),
	}
}

// unescapeInstance removes DNS-SD escaping ("Odin\ TV" -> "Odin TV")
func unescapeInstance(name string) string {
	var b strings.Builder
	escaped := false
	for _, r := range name {
		if r == '\\' && !escaped {
			escaped = true
			continue
		}
		escaped = false
		b.WriteRune(r)
	}
	return b.String()
}
