//go:build darwin

package enrich

import (
	"context"
	"strconv"
	"strings"
)

func processOwners(ctx context.Context) (map[int]string, error) {
	out, err := runCommand(ctx, "ps", "-axo", "pid,user")
	if err != nil {
		return nil, err
	}

	owners := make(map[int]string)
	for _, line := range strings.Split(out, "\n") {
		fields := strings.Fields(line)
		if len(fields) < 2 {
			continue
		}
		pid, err := strconv.Atoi(fields[0])
		if err != nil {
			continue // header row
		}
		owners[pid] = fields[1]
	}
	return owners, nil
}
