package sockets

import (
	"regexp"
	"strings"

	"github.com/pratik-anurag/portscope/internal/model"
)

// ss -tunap
// tcp ESTAB 0 0 192.168.1.20:54321 140.82.121.4:443 users:(("firefox",pid=1234,fd=89))
var (
	reSS        = regexp.MustCompile(`^(?P<proto>tcp6?|udp6?)\s+(?P<state>\S+)\s+\d+\s+\d+\s+(?P<laddr>\S+)\s+(?P<raddr>\S+)\s*(?P<users>users:\(\(.*\)\))?\s*$`)
	reUsersPid  = regexp.MustCompile(`pid=(\d+)`)
	reUsersProc = regexp.MustCompile(`\(\("([^"]+)"`)
)

func parseSSLine(line string) (model.Record, bool) {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "Netid") {
		return model.Record{}, false
	}
	m := reSS.FindStringSubmatch(line)
	if m == nil {
		return model.Record{}, false
	}

	proto := model.ProtoTCP
	if strings.HasPrefix(m[reSS.SubexpIndex("proto")], "udp") {
		proto = model.ProtoUDP
	}
	state := strings.ToUpper(m[reSS.SubexpIndex("state")])
	if proto == model.ProtoUDP {
		state = model.StateUnspecified
	} else if state == "" {
		state = model.StateUnknown
	}

	lip, lp := SplitHostPort(m[reSS.SubexpIndex("laddr")])
	rip, rp := SplitHostPort(m[reSS.SubexpIndex("raddr")])
	pid, pname := parseUsers(m[reSS.SubexpIndex("users")])

	return model.Record{
		Proto:      proto,
		LocalIP:    lip,
		LocalPort:  lp,
		RemoteIP:   rip,
		RemotePort: rp,
		State:      state,
		PID:        pid,
		ProcName:   pname,
	}, true
}

func parseUsers(users string) (pid int, proc string) {
	if users == "" {
		return 0, ""
	}
	if m := reUsersPid.FindStringSubmatch(users); m != nil {
		pid = parseInt(m[1])
	}
	if m := reUsersProc.FindStringSubmatch(users); m != nil {
		proc = m[1]
	}
	return pid, proc
}
