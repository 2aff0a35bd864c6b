package model

import (
	"fmt"
	"sort"
	"strings"
)

// Protocol is the transport protocol of a connection record.
type Protocol string

const (
	ProtoTCP Protocol = "TCP"
	ProtoUDP Protocol = "UDP"
)

// PortAbsent marks a port the source format did not report (or reported
// unparsably). Valid ports are 0..65535.
const PortAbsent = -1

// TCP state fallbacks. UDP sockets always carry StateUnspecified since
// they have no connection state.
const (
	StateUnknown     = "UNKNOWN"
	StateUnspecified = "UNSPECIFIED"
)

// Record is one normalized socket entry. It is produced by the format
// extractors with enrichment fields empty; the enrich package fills
// ProcName and User afterwards, best-effort.
type Record struct {
	Proto      Protocol `json:"proto"`
	LocalIP    string   `json:"local_ip"`
	LocalPort  int      `json:"local_port"`
	RemoteIP   string   `json:"remote_ip,omitempty"`
	RemotePort int      `json:"remote_port"`
	State      string   `json:"state"`
	PID        int      `json:"pid,omitempty"`
	ProcName   string   `json:"proc_name,omitempty"`
	User       string   `json:"user,omitempty"`
}

// Key returns a composite identity used by display layers for change
// detection between snapshots. It is NOT unique: two UDP sockets with
// identical local/remote endpoints and pid collapse to the same key, and
// consumers must tolerate duplicates.
func (r Record) Key() string {
	return fmt.Sprintf("%s|%s:%s|%s:%s|%d",
		r.Proto,
		r.LocalIP, portString(r.LocalPort),
		r.RemoteIP, portString(r.RemotePort),
		r.PID,
	)
}

// LocalAddr renders the local endpoint as host:port for display.
func (r Record) LocalAddr() string {
	return addrString(r.LocalIP, r.LocalPort)
}

// RemoteAddr renders the remote endpoint as host:port for display.
func (r Record) RemoteAddr() string {
	return addrString(r.RemoteIP, r.RemotePort)
}

func portString(p int) string {
	if p == PortAbsent {
		return "*"
	}
	return fmt.Sprintf("%d", p)
}

func addrString(ip string, port int) string {
	if ip == "" {
		ip = "*"
	}
	if strings.Contains(ip, ":") && !strings.HasPrefix(ip, "[") {
		return fmt.Sprintf("[%s]:%s", ip, portString(port))
	}
	return ip + ":" + portString(port)
}

// ValidPort reports whether p is a reportable port number.
func ValidPort(p int) bool {
	return p >= 0 && p <= 65535
}

// Sort orders records by ascending local port, then protocol name, so
// repeated scans of the same socket table render identically. Absent
// ports sort first.
func Sort(records []Record) {
	sort.SliceStable(records, func(i, j int) bool {
		if records[i].LocalPort != records[j].LocalPort {
			return records[i].LocalPort < records[j].LocalPort
		}
		return records[i].Proto < records[j].Proto
	})
}
