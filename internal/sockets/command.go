package sockets

// Probe is one OS command in the platform's fallback chain. The argument
// strings are part of the contract with the OS: the extractors are written
// against the exact output shape these flags produce.
type Probe struct {
	Name   string
	Args   []string
	Format Format
}

// Probes returns the platform's connection-listing commands in fallback
// order. The scan engine tries each in turn until one succeeds and
// yields at least one record.
func Probes() []Probe {
	return probes()
}
