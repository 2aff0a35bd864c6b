package sockets

import (
	"strings"

	"github.com/pratik-anurag/portscope/internal/model"
)

// Format identifies the text layout of a connection-listing command.
type Format int

const (
	FormatNetstat Format = iota // Windows netstat -ano
	FormatSS                    // Linux ss -tunap
	FormatLsof                  // lsof -nP -i (macOS, Linux fallback)
)

func (f Format) String() string {
	switch f {
	case FormatNetstat:
		return "netstat"
	case FormatSS:
		return "ss"
	default:
		return "lsof"
	}
}

// ExtractLine parses a single complete output line in the given format.
// Lines that do not carry a TCP/UDP record (headers, malformed rows,
// unknown locale variants) report ok=false and are skipped; a scan must
// never abort on one bad line.
func ExtractLine(f Format, line string) (model.Record, bool) {
	switch f {
	case FormatNetstat:
		return parseNetstatLine(line)
	case FormatSS:
		return parseSSLine(line)
	default:
		return parseLsofLine(line)
	}
}

// Extract parses a whole command output. Extractors are pure: the same
// text always yields the same record list.
func Extract(f Format, text string) []model.Record {
	var out []model.Record
	for _, line := range strings.Split(text, "\n") {
		if rec, ok := ExtractLine(f, line); ok {
			out = append(out, rec)
		}
	}
	return out
}
