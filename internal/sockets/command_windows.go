//go:build windows

package sockets

func probes() []Probe {
	return []Probe{
		{Name: "netstat", Args: []string{"-ano"}, Format: FormatNetstat},
	}
}
