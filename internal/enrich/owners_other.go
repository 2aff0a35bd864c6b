//go:build !windows && !linux && !darwin

package enrich

import "context"

func processOwners(ctx context.Context) (map[int]string, error) {
	return nil, nil
}
