package scanner

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"

	"f0oster/typowatch/snapshot"
)

// baseArgs restricts dnstwist to registered (resolving) permutations and asks
// for machine-readable output.
var baseArgs = []string{"--registered", "--format", "json"}

type runFunc func(ctx context.Context, name string, args ...string) (stdout, stderr []byte, err error)

// Dnstwist runs the dnstwist CLI once per seed and parses its JSON output.
type Dnstwist struct {
	Binary    string
	ExtraArgs []string
	// Timeout bounds a single invocation. Zero means no limit.
	Timeout time.Duration

	run runFunc
}

func NewDnstwist(binary string, extraArgs []string, timeout time.Duration) *Dnstwist {
	return &Dnstwist{
		Binary:    binary,
		ExtraArgs: extraArgs,
		Timeout:   timeout,
		run:       runCommand,
	}
}

// Args returns the command line used for domain, excluding the binary.
func (d *Dnstwist) Args(domain string) []string {
	args := make([]string, 0, len(baseArgs)+len(d.ExtraArgs)+1)
	args = append(args, baseArgs...)
	args = append(args, d.ExtraArgs...)
	return append(args, domain)
}

func (d *Dnstwist) Scan(ctx context.Context, domain string) ([]snapshot.Record, error) {
	if d.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, d.Timeout)
		defer cancel()
	}

	run := d.run
	if run == nil {
		run = runCommand
	}

	stdout, stderr, err := run(ctx, d.Binary, d.Args(domain)...)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, fmt.Errorf("dnstwist did not finish: %w", ctxErr)
		}
		if msg := strings.TrimSpace(string(stderr)); msg != "" {
			return nil, fmt.Errorf("dnstwist failed: %w: %s", err, msg)
		}
		return nil, fmt.Errorf("dnstwist failed: %w", err)
	}

	records, err := ParseOutput(stdout)
	if err != nil {
		return nil, fmt.Errorf("failed to parse dnstwist output: %w", err)
	}
	return records, nil
}

// ParseOutput decodes dnstwist's JSON array. Blank output or null is treated
// as no permutations.
func ParseOutput(stdout []byte) ([]snapshot.Record, error) {
	trimmed := bytes.TrimSpace(stdout)
	if len(trimmed) == 0 {
		return []snapshot.Record{}, nil
	}

	var records []snapshot.Record
	if err := json.Unmarshal(trimmed, &records); err != nil {
		return nil, err
	}
	if records == nil {
		records = []snapshot.Record{}
	}
	return records, nil
}

func runCommand(ctx context.Context, name string, args ...string) ([]byte, []byte, error) {
	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		err = fmt.Errorf("exit status %d", exitErr.ExitCode())
	}
	return stdout.Bytes(), stderr.Bytes(), err
}
