package enrich

import (
	"regexp"
	"strconv"
	"strings"
)

var reStatusUID = regexp.MustCompile(`Uid:\s+(\d+)`)

// parsePasswd builds a uid -> account name table from /etc/passwd style
// content (name:password:uid:...). Malformed lines are skipped.
func parsePasswd(text string) map[int]string {
	users := make(map[int]string)
	for _, line := range strings.Split(text, "\n") {
		fields := strings.Split(line, ":")
		if len(fields) < 3 {
			continue
		}
		uid, err := strconv.Atoi(fields[2])
		if err != nil {
			continue
		}
		users[uid] = fields[0]
	}
	return users
}

// uidFromStatus extracts the real uid from /proc/<pid>/status content.
// Returns -1 when the Uid line is missing.
func uidFromStatus(text string) int {
	m := reStatusUID.FindStringSubmatch(text)
	if m == nil {
		return -1
	}
	uid, err := strconv.Atoi(m[1])
	if err != nil {
		return -1
	}
	return uid
}
