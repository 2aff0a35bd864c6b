package enrich

import "strings"

// splitCSVRow splits one CSV row on commas outside double quotes and
// strips the surrounding quotes from each field. tasklist and WMI both
// emit process names that may themselves contain commas, so a plain
// strings.Split is not enough.
func splitCSVRow(line string) []string {
	var fields []string
	var cur strings.Builder
	inQuotes := false
	for _, r := range line {
		switch {
		case r == '"':
			inQuotes = !inQuotes
		case r == ',' && !inQuotes:
			fields = append(fields, cur.String())
			cur.Reset()
		default:
			cur.WriteRune(r)
		}
	}
	fields = append(fields, cur.String())
	return fields
}
