package main

import (
	"context"
	"flag"
	"log"
	"os"
	"time"

	"f0oster/typowatch/config"
	"f0oster/typowatch/database"
	"f0oster/typowatch/domains"
	"f0oster/typowatch/monitor"
	"f0oster/typowatch/report"
	"f0oster/typowatch/resolve"
	"f0oster/typowatch/scanner"
)

func main() {
	configPath := flag.String("config", "settings.env", "Path to the settings file")
	flag.Parse()

	cfg, err := config.LoadEnvConfig(*configPath)
	if err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	ctx := context.Background()

	seeds, err := domains.Load(cfg.DomainsFile)
	if err != nil {
		log.Fatalf("failed to load domains: %v", err)
	}

	store, closeStore, err := database.OpenSnapshotStore(ctx, cfg)
	if err != nil {
		log.Fatalf("failed to open snapshot store: %v", err)
	}

	dnstwist := scanner.NewDnstwist(cfg.DnstwistBinary, cfg.DnstwistArgs, cfg.ScanTimeout)
	svc := monitor.NewService(store, dnstwist, cfg.SummaryFile, os.Stdout)

	res, err := svc.Run(ctx, seeds)
	if err != nil {
		closeStore()
		log.Fatalf("scan aborted: %v", err)
	}

	var confirm report.ALookup
	if cfg.ConfirmNameserver != "" {
		confirm = resolve.NewConfirmer(cfg.ConfirmNameserver, 5*time.Second)
	}
	report.NewConsole(os.Stdout, confirm).Print(ctx, res.NewDomains)

	if err := svc.Persist(ctx, res, time.Now()); err != nil {
		closeStore()
		log.Fatalf("failed to persist results: %v", err)
	}
	closeStore()

	os.Exit(report.ExitCode(res.NewDomains, cfg.NewDomainsExitCode))
}
