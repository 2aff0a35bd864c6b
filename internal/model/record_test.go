package model

import "testing"

func TestKey(t *testing.T) {
	r := Record{
		Proto:      ProtoTCP,
		LocalIP:    "127.0.0.1",
		LocalPort:  5432,
		RemoteIP:   "127.0.0.1",
		RemotePort: 54321,
		PID:        8123,
	}
	if got, want := r.Key(), "TCP|127.0.0.1:5432|127.0.0.1:54321|8123"; got != want {
		t.Fatalf("Key() = %q, want %q", got, want)
	}

	// duplicate keys are legal: identical endpoints and pid collapse
	if r.Key() != r.Key() {
		t.Fatal("Key must be deterministic")
	}

	udp := Record{Proto: ProtoUDP, LocalIP: "*", LocalPort: PortAbsent, RemoteIP: "*", RemotePort: PortAbsent}
	if got, want := udp.Key(), "UDP|*:*|*:*|0"; got != want {
		t.Fatalf("Key() = %q, want %q", got, want)
	}
}

func TestAddrRendering(t *testing.T) {
	r := Record{LocalIP: "::1", LocalPort: 8080, RemoteIP: "", RemotePort: PortAbsent}
	if got := r.LocalAddr(); got != "[::1]:8080" {
		t.Fatalf("LocalAddr() = %q", got)
	}
	if got := r.RemoteAddr(); got != "*:*" {
		t.Fatalf("RemoteAddr() = %q", got)
	}
}

func TestSortOrder(t *testing.T) {
	recs := []Record{
		{Proto: ProtoUDP, LocalPort: 80},
		{Proto: ProtoTCP, LocalPort: 443},
		{Proto: ProtoTCP, LocalPort: 80},
		{Proto: ProtoTCP, LocalPort: PortAbsent},
	}
	Sort(recs)

	if recs[0].LocalPort != PortAbsent {
		t.Fatalf("absent ports should sort first, got %+v", recs[0])
	}
	if recs[1].LocalPort != 80 || recs[1].Proto != ProtoTCP {
		t.Fatalf("expected TCP:80 before UDP:80, got %+v", recs[1])
	}
	if recs[2].LocalPort != 80 || recs[2].Proto != ProtoUDP {
		t.Fatalf("expected UDP:80 second, got %+v", recs[2])
	}
	if recs[3].LocalPort != 443 {
		t.Fatalf("expected 443 last, got %+v", recs[3])
	}
}
