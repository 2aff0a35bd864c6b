package sockets

import (
	"strconv"
	"strings"

	"github.com/pratik-anurag/portscope/internal/model"
)

// SplitHostPort decomposes one address token from netstat/ss/lsof output
// into host and port. It never fails: anything it cannot make sense of
// comes back as host = token, port = model.PortAbsent.
//
// Accepted shapes:
//
//	[::1]:8080     bracketed IPv6
//	127.0.0.1:80   host:port with a single colon
//	*:443          wildcard host
//	*:*            wildcard host, absent port
func SplitHostPort(tok string) (string, int) {
	tok = strings.TrimSpace(tok)

	if strings.HasPrefix(tok, "[") {
		i := strings.LastIndex(tok, "]:")
		if i > 0 {
			return tok[1:i], parsePort(tok[i+2:])
		}
		return tok, model.PortAbsent
	}
	if strings.Count(tok, ":") == 1 {
		i := strings.Index(tok, ":")
		return tok[:i], parsePort(tok[i+1:])
	}
	return tok, model.PortAbsent
}

func parsePort(s string) int {
	p, err := strconv.Atoi(s)
	if err != nil || !model.ValidPort(p) {
		return model.PortAbsent
	}
	return p
}

func parseInt(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return n
}
