package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	BackendFile     = "file"
	BackendPostgres = "postgres"
)

type TypowatchConfiguration struct {
	DomainsFile        string
	ResultsFile        string
	SummaryFile        string
	DnstwistBinary     string
	DnstwistArgs       []string
	ScanTimeout        time.Duration
	NewDomainsExitCode int
	SnapshotBackend    string
	DatabaseURL        string
	ConfirmNameserver  string
	WebAddr            string
}

// LoadEnvConfig reads configName into the environment (values already set in
// the environment win) and builds the configuration from it. A missing
// settings file is not an error.
func LoadEnvConfig(configName string) (TypowatchConfiguration, error) {
	if configName != "" {
		err := godotenv.Load(configName)
		switch {
		case errors.Is(err, os.ErrNotExist):
			log.Printf("no %s found, using environment only", configName)
		case err != nil:
			return TypowatchConfiguration{}, fmt.Errorf("error loading %s: %w", configName, err)
		}
	}

	cfg := TypowatchConfiguration{
		DomainsFile:       getenv("DOMAINS_FILE", "domains.txt"),
		ResultsFile:       getenv("RESULTS_FILE", "results.json"),
		SummaryFile:       getenv("SUMMARY_FILE", "summary.json"),
		DnstwistBinary:    getenv("DNSTWIST_BIN", "dnstwist"),
		DnstwistArgs:      strings.Fields(os.Getenv("DNSTWIST_ARGS")),
		SnapshotBackend:   strings.ToLower(getenv("SNAPSHOT_BACKEND", BackendFile)),
		DatabaseURL:       os.Getenv("DATABASE_URL"),
		ConfirmNameserver: os.Getenv("CONFIRM_NAMESERVER"),
		WebAddr:           getenv("WEB_ADDR", ":8080"),
	}

	var err error
	if cfg.ScanTimeout, err = getenvDuration("SCAN_TIMEOUT", 0); err != nil {
		return cfg, err
	}
	if cfg.NewDomainsExitCode, err = getenvInt("NEW_DOMAINS_EXIT_CODE", 3); err != nil {
		return cfg, err
	}
	if cfg.NewDomainsExitCode < 1 || cfg.NewDomainsExitCode > 125 {
		return cfg, fmt.Errorf("NEW_DOMAINS_EXIT_CODE must be between 1 and 125, got %d", cfg.NewDomainsExitCode)
	}

	switch cfg.SnapshotBackend {
	case BackendFile:
	case BackendPostgres:
		if cfg.DatabaseURL == "" {
			return cfg, fmt.Errorf("DATABASE_URL is required when SNAPSHOT_BACKEND=%s", BackendPostgres)
		}
	default:
		return cfg, fmt.Errorf("unknown SNAPSHOT_BACKEND %q", cfg.SnapshotBackend)
	}

	return cfg, nil
}

func getenv(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) (int, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("failed to parse %s: %w", key, err)
	}
	return n, nil
}

func getenvDuration(key string, def time.Duration) (time.Duration, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("failed to parse %s: %w", key, err)
	}
	if d < 0 {
		return 0, fmt.Errorf("%s must not be negative", key)
	}
	return d, nil
}
