//go:build linux

package enrich

import (
	"context"
	"os"
	"strconv"
)

// processOwners maps every pid under /proc to its account name by
// reading each status file's real uid and resolving it through
// /etc/passwd. Unreadable entries (typically other users' processes)
// are skipped.
func processOwners(ctx context.Context) (map[int]string, error) {
	passwd, err := os.ReadFile("/etc/passwd")
	if err != nil {
		return nil, err
	}
	users := parsePasswd(string(passwd))

	entries, err := os.ReadDir("/proc")
	if err != nil {
		return nil, err
	}

	owners := make(map[int]string)
	for _, e := range entries {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		pid, err := strconv.Atoi(e.Name())
		if err != nil {
			continue
		}
		status, err := os.ReadFile("/proc/" + e.Name() + "/status")
		if err != nil {
			continue
		}
		uid := uidFromStatus(string(status))
		if uid < 0 {
			continue
		}
		if name, ok := users[uid]; ok {
			owners[pid] = name
		}
	}
	return owners, nil
}
