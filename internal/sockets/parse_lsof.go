package sockets

import (
	"strings"

	"github.com/pratik-anurag/portscope/internal/model"
)

// lsof -nP -i
// rapportd  618 alice  8u IPv4 0x0 0t0 TCP *:50277 (LISTEN)
// Spotify   733 alice 110u IPv6 0x0 0t0 TCP [::1]:57621->[::2]:443 (ESTABLISHED)
// syslogd   123 root   10u IPv4 0x0 0t0 UDP *:514
//
// lsof is the one source that reports the owning account inline, so the
// user column is captured here rather than through the owner resolver.
func parseLsofLine(line string) (model.Record, bool) {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "COMMAND") {
		return model.Record{}, false
	}
	fields := strings.Fields(line)
	if len(fields) < 3 {
		return model.Record{}, false
	}

	var proto model.Protocol
	addrIdx := -1
	for i, f := range fields[3:] {
		if f == "TCP" || f == "UDP" {
			proto = model.Protocol(f)
			addrIdx = i + 4
			break
		}
	}
	if addrIdx < 0 || addrIdx >= len(fields) {
		return model.Record{}, false
	}

	state := ""
	if last := fields[len(fields)-1]; strings.HasPrefix(last, "(") && strings.HasSuffix(last, ")") {
		state = strings.ToUpper(last[1 : len(last)-1])
	}
	if state == "" {
		if proto == model.ProtoTCP {
			state = model.StateUnknown
		} else {
			state = model.StateUnspecified
		}
	}

	local := fields[addrIdx]
	remote := "*:*"
	if i := strings.Index(local, "->"); i >= 0 {
		remote = local[i+2:]
		local = local[:i]
	}
	lip, lp := SplitHostPort(local)
	rip, rp := SplitHostPort(remote)

	return model.Record{
		Proto:      proto,
		LocalIP:    lip,
		LocalPort:  lp,
		RemoteIP:   rip,
		RemotePort: rp,
		State:      state,
		PID:        parseInt(fields[1]),
		ProcName:   fields[0],
		User:       fields[2],
	}, true
}
