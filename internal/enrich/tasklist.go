package enrich

import (
	"strconv"
	"strings"
)

// parseTasklistCSV builds a pid -> image name table from
// `tasklist /FO CSV /NH` output:
//
//	"svchost.exe","900","Services","0","9,812 K"
func parseTasklistCSV(text string) map[int]string {
	names := make(map[int]string)
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		fields := splitCSVRow(line)
		if len(fields) < 2 {
			continue
		}
		pid, err := strconv.Atoi(strings.TrimSpace(fields[1]))
		if err != nil {
			continue
		}
		if name := strings.TrimSpace(fields[0]); name != "" {
			names[pid] = name
		}
	}
	return names
}

// parseOwnerCSV builds a pid -> account table from `pid,owner` rows, the
// shape produced by the WMI owner query. Rows without an owner (system
// processes GetOwner refuses to answer for) are skipped.
func parseOwnerCSV(text string) map[int]string {
	owners := make(map[int]string)
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		fields := splitCSVRow(line)
		if len(fields) < 2 {
			continue
		}
		pid, err := strconv.Atoi(strings.TrimSpace(fields[0]))
		if err != nil {
			continue
		}
		if owner := strings.TrimSpace(fields[1]); owner != "" {
			owners[pid] = owner
		}
	}
	return owners
}
