// Package enrich augments connection records with the owning process
// name and account. Every lookup here is best-effort: a resolver that
// fails for any reason (missing tool, permissions, unparsable output)
// contributes an empty mapping and the scan carries on with blank
// enrichment fields. Nothing in this package may fail a scan.
package enrich

import (
	"context"
	"os/exec"

	"github.com/rs/zerolog"
	"github.com/shirou/gopsutil/v4/process"

	"github.com/pratik-anurag/portscope/internal/model"
)

// Enrich fills ProcName and User on records that are missing them,
// joining the platform's resolver output by pid. Records without a pid
// are left untouched.
func Enrich(ctx context.Context, logger zerolog.Logger, records []model.Record) {
	names, err := processNames(ctx)
	if err != nil {
		logger.Debug().Err(err).Msg("process name lookup failed, names left blank")
		names = nil
	}
	owners, err := processOwners(ctx)
	if err != nil {
		logger.Debug().Err(err).Msg("process owner lookup failed, owners left blank")
		owners = nil
	}

	for i := range records {
		r := &records[i]
		if r.PID <= 0 {
			continue
		}
		if r.ProcName == "" {
			r.ProcName = names[r.PID]
		}
		if r.ProcName == "" {
			r.ProcName = fallbackName(ctx, r.PID)
		}
		if r.User == "" {
			r.User = owners[r.PID]
		}
	}
}

// fallbackName asks gopsutil for a single pid's name. Covers sockets the
// primary command reported without a users/process column (common for
// other users' processes under ss without root).
func fallbackName(ctx context.Context, pid int) string {
	p, err := process.NewProcess(int32(pid))
	if err != nil {
		return ""
	}
	name, err := p.NameWithContext(ctx)
	if err != nil {
		return ""
	}
	return name
}

func runCommand(ctx context.Context, name string, args ...string) (string, error) {
	out, err := exec.CommandContext(ctx, name, args...).Output()
	if err != nil {
		return "", err
	}
	return string(out), nil
}
