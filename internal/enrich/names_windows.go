//go:build windows

package enrich

import "context"

func processNames(ctx context.Context) (map[int]string, error) {
	out, err := runCommand(ctx, "tasklist", "/FO", "CSV", "/NH")
	if err != nil {
		return nil, err
	}
	return parseTasklistCSV(out), nil
}
