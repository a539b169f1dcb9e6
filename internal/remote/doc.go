// Package remote lets a phone, a script or a second terminal drive the
// dashboard like a TV remote.
//
// A running odintv instance starts a Server that accepts WebSocket connections
// on /ws. Each text message names one key, either as JSON or bare:
//
//	{"key":"ArrowDown"}
//	Enter
//
// Recognized keys are translated to navigator events and handed to the
// server's Sink; every message is acknowledged:
//
//	{"ok":true,"event":"down"}
//	{"ok":false,"error":"unknown key \"Tab\""}
//
// Unknown keys are ignored rather than treated as errors, so a client can send
// anything a real remote would.
//
// # Discovery
//
// The server is advertised over mDNS as "_odintv._tcp" (see Advertise) so
// clients can find receivers with Scanner instead of typing addresses:
//
//	scanner := remote.NewScanner()
//	receivers, err := scanner.Scan(ctx)
//	for _, r := range receivers {
//	    fmt.Println(r)
//	}
//
// Client sends keys to a receiver and returns the acknowledgement.
package remote
