//go:build linux

package sockets

// ss is preferred; lsof covers boxes where ss is missing or prints
// nothing usable (seen on stripped-down containers).
func probes() []Probe {
	return []Probe{
		{Name: "ss", Args: []string{"-tunap"}, Format: FormatSS},
		{Name: "lsof", Args: []string{"-nP", "-i"}, Format: FormatLsof},
	}
}
