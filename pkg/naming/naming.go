package naming

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/Anitha-Arun/Zabbix-Inventory-Manager/pkg/inventory"
)

// IDGenerator derives short device identifiers with an ordered fallback:
// serial number, then MAC, then a run-scoped counter. State is per run,
// never global.
type IDGenerator struct {
	counter int
}

// NewIDGenerator creates a generator whose fallback counter starts at 1.
func NewIDGenerator() *IDGenerator {
	return &IDGenerator{counter: 1}
}

// Identifier returns SN<last4 of serial>, MC<last4 of mac>, or DEV<counter>.
// The counter is consumed only when both serial and MAC are missing.
func (g *IDGenerator) Identifier(serial, mac string) string {
	if serial != "" && serial != inventory.Unknown {
		return "SN" + lastN(serial, 4)
	}
	if mac != "" && mac != inventory.Unknown {
		return "MC" + lastN(mac, 4)
	}
	id := fmt.Sprintf("DEV%04d", g.counter)
	g.counter++
	return id
}

// HostnameAllocator builds sanitized hostnames and disambiguates collisions
// seen within the current run. It holds no knowledge of hostnames that
// already exist remotely.
type HostnameAllocator struct {
	counts map[string]int
}

// NewHostnameAllocator creates an allocator with an empty registry.
func NewHostnameAllocator() *HostnameAllocator {
	return &HostnameAllocator{counts: map[string]int{}}
}

// Allocate combines device model and identifier into a unique hostname.
// The first request for a base returns it unchanged; repeats append -1, -2
// and so on.
func (a *HostnameAllocator) Allocate(deviceModel, identifier string) string {
	base := sanitize(strings.ReplaceAll(deviceModel, " ", "-") + "-" + identifier)
	count, seen := a.counts[base]
	if !seen {
		a.counts[base] = 1
		return base
	}
	a.counts[base] = count + 1
	return fmt.Sprintf("%s-%d", base, count)
}

// lastN slices characters, not bytes, so multibyte serials stay intact.
func lastN(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[len(runes)-n:])
}

// sanitize keeps letters, digits, '-', '_' and '.'; everything else is dropped.
func sanitize(s string) string {
	var b strings.Builder
	for _, c := range s {
		switch {
		case unicode.IsLetter(c) || unicode.IsDigit(c):
			b.WriteRune(c)
		case c == '-' || c == '_' || c == '.':
			b.WriteRune(c)
		}
	}
	return b.String()
}
