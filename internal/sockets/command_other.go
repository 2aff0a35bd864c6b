//go:build !linux && !windows

package sockets

// macOS and the BSDs all speak lsof.
func probes() []Probe {
	return []Probe{
		{Name: "lsof", Args: []string{"-nP", "-i"}, Format: FormatLsof},
	}
}
