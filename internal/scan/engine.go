// Package scan runs the platform's connection-listing command as a
// subprocess and turns its output, incrementally, into normalized
// connection records.
package scan

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os/exec"
	"runtime"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/pratik-anurag/portscope/internal/config"
	"github.com/pratik-anurag/portscope/internal/enrich"
	"github.com/pratik-anurag/portscope/internal/model"
	"github.com/pratik-anurag/portscope/internal/sockets"
)

// Progress receives the running parsed-line count and a heuristic
// estimated total. The estimate only grows until the stream ends; the
// final notification always carries current == total.
type Progress func(current, total int)

// Engine owns one platform's probe chain. It is stateless across scans:
// each call spawns its own subprocess and buffers, so concurrent scans
// do not interfere.
type Engine struct {
	cfg    config.Config
	logger zerolog.Logger
	probes []sockets.Probe
}

func New(cfg config.Config, logger zerolog.Logger) *Engine {
	return &Engine{
		cfg:    cfg,
		logger: logger.With().Str("component", "scan").Logger(),
		probes: sockets.Probes(),
	}
}

// Snapshot is one point-in-time view of the socket table.
type Snapshot struct {
	OK       bool           `json:"ok"`
	Count    int            `json:"count"`
	Platform string         `json:"platform"`
	Records  []model.Record `json:"connections"`
}

// Collect returns a fully buffered, fully enriched snapshot.
// Enrichment is best-effort: its failures only show up as blank
// ProcName/User fields, never as an error here.
func (e *Engine) Collect(ctx context.Context) (Snapshot, error) {
	return e.CollectPorts(ctx, e.cfg.MaxPort, nil)
}

// CollectPorts is Collect with an explicit port bound and optional
// progress reporting for callers that render a live count.
func (e *Engine) CollectPorts(ctx context.Context, maxPort int, onProgress Progress) (Snapshot, error) {
	records, err := e.ScanPorts(ctx, maxPort, onProgress)
	if err != nil {
		return Snapshot{Platform: runtime.GOOS}, err
	}

	ectx, cancel := context.WithTimeout(ctx, time.Duration(e.cfg.EnrichTimeout))
	defer cancel()
	enrich.Enrich(ectx, e.logger, records)

	return Snapshot{
		OK:       true,
		Count:    len(records),
		Platform: runtime.GOOS,
		Records:  records,
	}, nil
}

// ScanPorts streams the probe chain and returns records whose local port
// is present and <= maxPort, sorted by local port then protocol.
// onProgress may be nil. A probe that fails or yields nothing escalates
// to the next probe in the chain; only the last probe's failure fails
// the scan.
func (e *Engine) ScanPorts(ctx context.Context, maxPort int, onProgress Progress) ([]model.Record, error) {
	// One tracker for the whole scan: the parsed-line count carries
	// across a fallback escalation so progress never runs backwards,
	// and the final current == total call fires exactly once, for the
	// probe whose result is returned.
	tracker := &progressTracker{
		every:    e.cfg.ProgressEvery,
		headroom: e.cfg.ProgressHeadroom,
	}
	var lastErr error
	for i, p := range e.probes {
		parsedBefore := tracker.count
		records, err := e.runProbe(ctx, p, maxPort, tracker, onProgress)
		last := i == len(e.probes)-1
		if err != nil {
			if last {
				return nil, err
			}
			lastErr = err
			e.logger.Debug().Err(err).Str("cmd", p.Name).Msg("probe failed, trying fallback")
			continue
		}
		// Escalate on zero parsed connection lines, not zero retained
		// records: a tight port bound emptying the result is not a
		// broken probe.
		if tracker.count == parsedBefore && !last {
			e.logger.Debug().Str("cmd", p.Name).Msg("probe yielded no connection lines, trying fallback")
			continue
		}
		model.Sort(records)
		tracker.done(onProgress)
		return records, nil
	}
	return nil, lastErr
}

// Raw returns the first probe's output verbatim, for diagnostic
// passthrough. The fallback chain applies the same way as for a
// normalized scan: a probe whose output carries no connection lines
// (ss always prints its header, even with nothing to show) escalates
// just like it would on a normalized scan. The returned text itself is
// never normalized or filtered.
func (e *Engine) Raw(ctx context.Context) (string, error) {
	var lastErr error
	for i, p := range e.probes {
		cctx, cancel := context.WithTimeout(ctx, time.Duration(e.cfg.ScanTimeout))
		out, err := exec.CommandContext(cctx, p.Name, p.Args...).Output()
		cancel()
		last := i == len(e.probes)-1
		if err != nil {
			if last {
				return "", fmt.Errorf("%s: %w", p.Name, err)
			}
			lastErr = err
			continue
		}
		if len(sockets.Extract(p.Format, string(out))) == 0 && !last {
			continue
		}
		return string(out), nil
	}
	return "", lastErr
}

// runProbe launches one command and parses its stdout incrementally.
// Anything written to stderr is treated as fatal for this probe: there
// is no reliable way to tell an OS warning from a hard error on that
// channel.
func (e *Engine) runProbe(ctx context.Context, p sockets.Probe, maxPort int, tracker *progressTracker, onProgress Progress) ([]model.Record, error) {
	cctx, cancel := context.WithTimeout(ctx, time.Duration(e.cfg.ScanTimeout))
	defer cancel()

	cmd := exec.CommandContext(cctx, p.Name, p.Args...)
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", p.Name, err)
	}
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("start %s: %w", p.Name, err)
	}

	records, parseErr := e.parseStream(stdout, p.Format, maxPort, tracker, onProgress)

	waitErr := cmd.Wait()
	if parseErr != nil {
		return nil, fmt.Errorf("%s: %w", p.Name, parseErr)
	}
	if waitErr != nil {
		return nil, fmt.Errorf("%s: %w", p.Name, waitErr)
	}
	if msg := strings.TrimSpace(stderr.String()); msg != "" {
		return nil, fmt.Errorf("%s wrote to stderr: %s", p.Name, firstLine(msg))
	}
	return records, nil
}

// parseStream consumes r chunk by chunk, reassembling lines across read
// boundaries and classifying each complete line. On clean end of stream
// it flushes the leftover tail. The final current == total notification
// is the scan's to emit, not the stream's: a stream that ends here may
// still be discarded for a fallback probe.
func (e *Engine) parseStream(r io.Reader, f sockets.Format, maxPort int, tracker *progressTracker, onProgress Progress) ([]model.Record, error) {
	var (
		buf     lineBuffer
		records []model.Record
	)

	consume := func(line string) {
		rec, ok := sockets.ExtractLine(f, line)
		if !ok {
			return
		}
		tracker.bump(onProgress)
		if rec.LocalPort == model.PortAbsent || rec.LocalPort > maxPort {
			return
		}
		records = append(records, rec)
	}

	chunk := make([]byte, 32*1024)
	for {
		n, err := r.Read(chunk)
		if n > 0 {
			for _, line := range buf.Feed(string(chunk[:n])) {
				consume(line)
			}
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			// Killed or disconnected subprocess: stop consuming, let
			// Wait report what happened.
			return records, err
		}
	}
	if tail := buf.Flush(); tail != "" {
		consume(tail)
	}
	return records, nil
}

// progressTracker implements the grow-only estimate heuristic: the true
// total is unknown until the stream ends, so the estimate is padded
// ahead of the count and never shrinks until the final done call.
type progressTracker struct {
	count    int
	estimate int
	every    int
	headroom int
}

func (t *progressTracker) bump(fn Progress) {
	t.count++
	if fn == nil || t.every <= 0 || t.count%t.every != 0 {
		return
	}
	if est := t.count + t.headroom; est > t.estimate {
		t.estimate = est
	}
	fn(t.count, t.estimate)
}

func (t *progressTracker) done(fn Progress) {
	if fn != nil {
		fn(t.count, t.count)
	}
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}
