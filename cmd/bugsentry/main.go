package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/aleister1102/bugsentry/internal/config"
	"github.com/aleister1102/bugsentry/internal/datastore"
	"github.com/aleister1102/bugsentry/internal/differ"
	"github.com/aleister1102/bugsentry/internal/limiter"
	"github.com/aleister1102/bugsentry/internal/logger"
	"github.com/aleister1102/bugsentry/internal/models"
	"github.com/aleister1102/bugsentry/internal/reporter"
	"github.com/aleister1102/bugsentry/internal/scanner"
	"github.com/rs/zerolog"
)

const toolName = "bugsentry"
const toolVersion = "1.0.0"

func main() {
	flags := ParseFlags()

	gCfg, err := config.LoadGlobalConfig(flags.GlobalConfigFile)
	if err != nil {
		log.Fatalf("[FATAL] Could not load global config: %v", err)
	}

	zLogger, err := logger.New(gCfg.LogConfig)
	if err != nil {
		log.Fatalf("[FATAL] Could not initialize logger: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	rl := limiter.NewResourceLimiter(gCfg.ResourceLimiterConfig, zLogger)
	scan := scanner.NewScanner(gCfg, zLogger).WithResourceLimiter(rl)

	report := scan.DetectAllIssues(ctx, flags.ProjectRoot)

	if err := writeReport(gCfg, zLogger, report, flags); err != nil {
		zLogger.Fatal().Err(err).Msg("Failed to write report")
	}

	if flags.StoreFindings && report.Status == models.ScanStatusCompleted {
		persistAndDiff(ctx, gCfg, zLogger, report, flags)
	}

	if report.Status == models.ScanStatusFailed {
		os.Exit(1)
	}
}

func writeReport(gCfg *config.GlobalConfig, zLogger zerolog.Logger, report *models.Report, flags AppFlags) error {
	rep := reporter.NewReporter(gCfg.ReporterConfig, zLogger)

	if flags.OutputFile != "" {
		file, err := os.Create(flags.OutputFile)
		if err != nil {
			return err
		}
		defer file.Close()
		if err := rep.WriteJSON(report, file); err != nil {
			return err
		}
	} else {
		if err := rep.WriteJSON(report, os.Stdout); err != nil {
			return err
		}
	}

	if flags.SarifOutput || gCfg.ReporterConfig.SarifEnabled {
		if _, err := rep.WriteSARIF(report, toolName, toolName, toolVersion); err != nil {
			return err
		}
	}
	return nil
}

func persistAndDiff(ctx context.Context, gCfg *config.GlobalConfig, zLogger zerolog.Logger, report *models.Report, flags AppFlags) {
	store, err := datastore.NewFindingsStore(&gCfg.StorageConfig, zLogger)
	if err != nil {
		zLogger.Error().Err(err).Msg("Findings store unavailable, skipping persistence")
		return
	}

	previousScanID := ""
	if flags.DiffPrevious {
		previousScanID, err = store.LatestScanID()
		if err != nil {
			zLogger.Error().Err(err).Msg("Could not determine previous scan")
		}
	}

	scanID := time.Now().Format("20060102-150405")
	if err := store.StoreScan(ctx, scanID, report.Issues); err != nil {
		zLogger.Error().Err(err).Msg("Failed to persist scan findings")
		return
	}

	if !flags.DiffPrevious || previousScanID == "" {
		return
	}

	previousFindings, err := store.LoadScan(ctx, previousScanID)
	if err != nil {
		zLogger.Error().Err(err).Str("scan_id", previousScanID).Msg("Failed to load previous scan")
		return
	}

	diff := differ.NewReportDiffer(zLogger).Diff(previousFindings, report.Issues)
	zLogger.Info().
		Str("previous_scan_id", previousScanID).
		Str("scan_id", scanID).
		Int("new", len(diff.New)).
		Int("fixed", len(diff.Fixed)).
		Int("changed", len(diff.Changed)).
		Int("unchanged", diff.Unchanged).
		Msg("Compared scan against previous run")
}
