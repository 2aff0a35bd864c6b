package sockets

import (
	"testing"

	"github.com/pratik-anurag/portscope/internal/model"
)

func TestSplitHostPort(t *testing.T) {
	cases := []struct {
		tok  string
		host string
		port int
	}{
		{"[::1]:8080", "::1", 8080},
		{"127.0.0.1:80", "127.0.0.1", 80},
		{"*:*", "*", model.PortAbsent},
		{"*:443", "*", 443},
		{"0.0.0.0:0", "0.0.0.0", 0},
		{"localhost", "localhost", model.PortAbsent},
		{"127.0.0.1:notaport", "127.0.0.1", model.PortAbsent},
		{"[fe80::1%lo0]:22", "fe80::1%lo0", 22},
		{"127.0.0.1:70000", "127.0.0.1", model.PortAbsent},
		{"", "", model.PortAbsent},
	}
	for _, c := range cases {
		host, port := SplitHostPort(c.tok)
		if host != c.host || port != c.port {
			t.Fatalf("SplitHostPort(%q) = (%q, %d), want (%q, %d)", c.tok, host, port, c.host, c.port)
		}
	}
}
