package sockets

import (
	"os"
	"reflect"
	"testing"

	"github.com/pratik-anurag/portscope/internal/model"
)

func readFixture(t *testing.T, name string) string {
	t.Helper()
	data, err := os.ReadFile("testdata/" + name)
	if err != nil {
		t.Fatalf("read fixture: %v", err)
	}
	return string(data)
}

func TestParseSSFixture(t *testing.T) {
	recs := Extract(FormatSS, readFixture(t, "ss.txt"))
	if len(recs) != 4 {
		t.Fatalf("expected 4 records, got %d", len(recs))
	}

	est := recs[0]
	if est.Proto != model.ProtoTCP || est.State != "ESTAB" || est.PID != 2210 || est.ProcName != "firefox" {
		t.Fatalf("unexpected established record: %+v", est)
	}
	if est.LocalIP != "192.168.1.20" || est.LocalPort != 44321 || est.RemoteIP != "140.82.121.4" || est.RemotePort != 443 {
		t.Fatalf("unexpected endpoints: %+v", est)
	}

	noUsers := recs[2]
	if noUsers.PID != 0 || noUsers.ProcName != "" || noUsers.LocalPort != 80 {
		t.Fatalf("expected anonymous listener on 80, got %+v", noUsers)
	}

	udp := recs[3]
	if udp.Proto != model.ProtoUDP || udp.State != model.StateUnspecified {
		t.Fatalf("expected UDP with UNSPECIFIED state, got %+v", udp)
	}
}

func TestParseLsofFixture(t *testing.T) {
	recs := Extract(FormatLsof, readFixture(t, "lsof.txt"))
	if len(recs) != 3 {
		t.Fatalf("expected 3 records, got %d", len(recs))
	}

	listener := recs[0]
	if listener.ProcName != "rapportd" || listener.PID != 618 || listener.User != "alice" {
		t.Fatalf("unexpected listener: %+v", listener)
	}
	if listener.LocalIP != "*" || listener.LocalPort != 50277 || listener.State != "LISTEN" {
		t.Fatalf("unexpected listener endpoint: %+v", listener)
	}
	if listener.RemoteIP != "*" || listener.RemotePort != model.PortAbsent {
		t.Fatalf("expected wildcard remote, got %+v", listener)
	}

	conn := recs[1]
	if conn.LocalIP != "::1" || conn.LocalPort != 54321 || conn.RemoteIP != "::1" || conn.RemotePort != 5432 {
		t.Fatalf("expected split local->remote, got %+v", conn)
	}
	if conn.State != "ESTABLISHED" {
		t.Fatalf("expected ESTABLISHED, got %q", conn.State)
	}

	udp := recs[2]
	if udp.Proto != model.ProtoUDP || udp.State != model.StateUnspecified || udp.User != "root" {
		t.Fatalf("unexpected UDP record: %+v", udp)
	}
}

func TestParseNetstatExampleLine(t *testing.T) {
	rec, ok := ExtractLine(FormatNetstat, "  TCP    0.0.0.0:135            0.0.0.0:0              LISTENING       900")
	if !ok {
		t.Fatalf("expected parse ok")
	}
	want := model.Record{
		Proto:      model.ProtoTCP,
		LocalIP:    "0.0.0.0",
		LocalPort:  135,
		RemoteIP:   "0.0.0.0",
		RemotePort: 0,
		State:      "LISTENING",
		PID:        900,
	}
	if rec != want {
		t.Fatalf("got %+v, want %+v", rec, want)
	}
}

func TestNetstatFrenchLocaleMatchesEnglish(t *testing.T) {
	en := Extract(FormatNetstat, readFixture(t, "netstat_en.txt"))
	fr := Extract(FormatNetstat, readFixture(t, "netstat_fr.txt"))
	if !reflect.DeepEqual(en, fr) {
		t.Fatalf("locale mismatch:\nen: %+v\nfr: %+v", en, fr)
	}
	if len(en) != 4 {
		t.Fatalf("expected 4 records, got %d", len(en))
	}
	if udp := en[3]; udp.Proto != model.ProtoUDP || udp.State != model.StateUnspecified || udp.PID != 5044 {
		t.Fatalf("unexpected UDP record: %+v", udp)
	}
}

func TestExtractorsSkipMalformedLines(t *testing.T) {
	garbage := "not a connection line\nTCP\nss --version\n\n\t\n"
	for _, f := range []Format{FormatNetstat, FormatSS, FormatLsof} {
		if recs := Extract(f, garbage); len(recs) != 0 {
			t.Fatalf("%s: expected malformed input to be skipped, got %+v", f, recs)
		}
	}
}

func TestExtractorInvariantsAndIdempotence(t *testing.T) {
	fixtures := map[Format]string{
		FormatNetstat: readFixture(t, "netstat_en.txt"),
		FormatSS:      readFixture(t, "ss.txt"),
		FormatLsof:    readFixture(t, "lsof.txt"),
	}
	for f, text := range fixtures {
		first := Extract(f, text)
		second := Extract(f, text)
		if !reflect.DeepEqual(first, second) {
			t.Fatalf("%s: extractor is not idempotent", f)
		}
		for _, r := range first {
			if r.Proto != model.ProtoTCP && r.Proto != model.ProtoUDP {
				t.Fatalf("%s: bad protocol %q", f, r.Proto)
			}
			if r.Proto == model.ProtoTCP && r.State == "" {
				t.Fatalf("%s: TCP record with empty state: %+v", f, r)
			}
		}
	}
}
