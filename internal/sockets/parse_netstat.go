package sockets

import (
	"strings"

	"github.com/pratik-anurag/portscope/internal/model"
)

// netstat -ano (Windows)
//
//	TCP    0.0.0.0:135            0.0.0.0:0              LISTENING       900
//	UDP    0.0.0.0:5050           *:*                                    5044
//
// French-locale builds localize the state column; those tokens are
// rewritten to the English vocabulary before field splitting so a single
// state vocabulary flows downstream. Longer tokens come first so e.g.
// FERMER_ATTENTE is not half-eaten by the ATTENTE rule.
var netstatFrench = strings.NewReplacer(
	"FERMER_ATTENTE", "CLOSE_WAIT",
	"TEMPS_ATTENTE", "TIME_WAIT",
	"SYN_ENVOYÉ", "SYN_SENT",
	"DERNIER_ACK", "LAST_ACK",
	"ÉCOUTE", "LISTENING",
	"ÉTABLIE", "ESTABLISHED",
	"ÉTABLI", "ESTABLISHED",
	"FERMÉE", "CLOSED",
	"ATTENTE", "TIME_WAIT",
)

func parseNetstatLine(line string) (model.Record, bool) {
	line = netstatFrench.Replace(strings.TrimSpace(line))
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return model.Record{}, false
	}

	switch fields[0] {
	case "TCP":
		// proto, local, remote, state, pid
		if len(fields) < 5 {
			return model.Record{}, false
		}
		lip, lp := SplitHostPort(fields[1])
		rip, rp := SplitHostPort(fields[2])
		state := fields[3]
		if state == "" {
			state = model.StateUnknown
		}
		return model.Record{
			Proto:      model.ProtoTCP,
			LocalIP:    lip,
			LocalPort:  lp,
			RemoteIP:   rip,
			RemotePort: rp,
			State:      state,
			PID:        parseInt(fields[4]),
		}, true

	case "UDP":
		// proto, local, remote, pid; no state column
		if len(fields) < 4 {
			return model.Record{}, false
		}
		lip, lp := SplitHostPort(fields[1])
		rip, rp := SplitHostPort(fields[2])
		return model.Record{
			Proto:      model.ProtoUDP,
			LocalIP:    lip,
			LocalPort:  lp,
			RemoteIP:   rip,
			RemotePort: rp,
			State:      model.StateUnspecified,
			PID:        parseInt(fields[3]),
		}, true
	}
	return model.Record{}, false
}
