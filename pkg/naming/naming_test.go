package naming

import "testing"

func TestIdentifierPrecedence(t *testing.T) {
	gen := NewIDGenerator()

	if got := gen.Identifier("ABC12345", "AA:BB:CC:DD:EE:FF"); got != "SN2345" {
		t.Fatalf("serial should win: got %q", got)
	}
	if got := gen.Identifier("UNKNOWN", "AA:BB:CC:DD:EE:FF"); got != "MCE:FF" {
		t.Fatalf("mac fallback: got %q", got)
	}
	if got := gen.Identifier("UNKNOWN", "UNKNOWN"); got != "DEV0001" {
		t.Fatalf("counter fallback: got %q", got)
	}
	if got := gen.Identifier("", ""); got != "DEV0002" {
		t.Fatalf("counter must advance: got %q", got)
	}
}

func TestIdentifierShortSerial(t *testing.T) {
	gen := NewIDGenerator()
	if got := gen.Identifier("A1", "UNKNOWN"); got != "SNA1" {
		t.Fatalf("short serial should be used whole: got %q", got)
	}
}

func TestIdentifierSlicesCharactersNotBytes(t *testing.T) {
	gen := NewIDGenerator()
	if got := gen.Identifier("ABCDÉ", "UNKNOWN"); got != "SNBCDÉ" {
		t.Fatalf("multibyte serial: got %q", got)
	}
	if got := gen.Identifier("UNKNOWN", "ÉÉ:FF"); got != "MCÉ:FF" {
		t.Fatalf("multibyte mac: got %q", got)
	}
}

func TestCounterNotConsumedBySerial(t *testing.T) {
	gen := NewIDGenerator()
	gen.Identifier("ABC12345", "")
	if got := gen.Identifier("", ""); got != "DEV0001" {
		t.Fatalf("counter consumed too early: got %q", got)
	}
}

func TestAllocateCollisionSuffixes(t *testing.T) {
	alloc := NewHostnameAllocator()

	if got := alloc.Allocate("Router", "SN1234"); got != "Router-SN1234" {
		t.Fatalf("first allocation: got %q", got)
	}
	if got := alloc.Allocate("Router", "SN1234"); got != "Router-SN1234-1" {
		t.Fatalf("second allocation: got %q", got)
	}
	if got := alloc.Allocate("Router", "SN1234"); got != "Router-SN1234-2" {
		t.Fatalf("third allocation: got %q", got)
	}
}

func TestAllocateSanitizesHostname(t *testing.T) {
	alloc := NewHostnameAllocator()
	if got := alloc.Allocate("Acme Switch (v2)", "SN#99!"); got != "Acme-Switch-v2-SN99" {
		t.Fatalf("unexpected hostname %q", got)
	}
}

func TestAllocateKeepsUnicodeLetters(t *testing.T) {
	alloc := NewHostnameAllocator()
	if got := alloc.Allocate("Télé Router", "SN1234"); got != "Télé-Router-SN1234" {
		t.Fatalf("unexpected hostname %q", got)
	}
}
