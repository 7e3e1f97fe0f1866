package datastore

import (
	"context"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/aleister1102/bugsentry/internal/common"
	"github.com/aleister1102/bugsentry/internal/config"
	"github.com/aleister1102/bugsentry/internal/models"
	"github.com/parquet-go/parquet-go"
	"github.com/parquet-go/parquet-go/compress"
	"github.com/rs/zerolog"
)

// StoredFinding is the Parquet record for one persisted finding.
type StoredFinding struct {
	ScanID         string    `parquet:"scan_id"`
	Timestamp      time.Time `parquet:"timestamp,timestamp(millisecond)"`
	Type           string    `parquet:"type"`
	Category       string    `parquet:"category"`
	Severity       string    `parquet:"severity"`
	File           string    `parquet:"file"`
	Line           int32     `parquet:"line"`
	Code           string    `parquet:"code,optional"`
	Description    string    `parquet:"description,optional"`
	Recommendation string    `parquet:"recommendation,optional"`
}

// FindingsStore persists scan findings to Parquet, one file per scan, under
// <base>/findings/<scanID>.parquet. Scan IDs sort lexicographically in
// chronological order, so the newest file is the lexicographic maximum.
type FindingsStore struct {
	config *config.StorageConfig
	logger zerolog.Logger
}

// NewFindingsStore creates a new FindingsStore.
func NewFindingsStore(cfg *config.StorageConfig, logger zerolog.Logger) (*FindingsStore, error) {
	if cfg.ParquetBasePath == "" {
		return nil, common.NewValidationError("parquet_base_path", cfg.ParquetBasePath, "ParquetBasePath is not configured")
	}
	return &FindingsStore{
		config: cfg,
		logger: logger.With().Str("component", "FindingsStore").Logger(),
	}, nil
}

// StoreScan writes the findings of one scan. A scan with zero findings still
// produces a file so the scan shows up in history.
func (fs *FindingsStore) StoreScan(ctx context.Context, scanID string, findings []models.Finding) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	findingsDir := filepath.Join(fs.config.ParquetBasePath, "findings")
	if err := os.MkdirAll(findingsDir, 0755); err != nil {
		return common.WrapError(err, "failed to create findings directory: "+findingsDir)
	}

	records := make([]StoredFinding, 0, len(findings))
	now := time.Now()
	for _, finding := range findings {
		records = append(records, StoredFinding{
			ScanID:         scanID,
			Timestamp:      now,
			Type:           string(finding.Type),
			Category:       finding.Category,
			Severity:       string(finding.Severity),
			File:           finding.File,
			Line:           int32(finding.Line),
			Code:           finding.Code,
			Description:    finding.Description,
			Recommendation: finding.Recommendation,
		})
	}

	filePath := filepath.Join(findingsDir, scanID+".parquet")
	file, err := os.Create(filePath)
	if err != nil {
		return common.WrapError(err, "failed to create findings parquet file: "+filePath)
	}
	defer file.Close()

	writer := parquet.NewGenericWriter[StoredFinding](file, parquet.Compression(fs.compressionCodec()))
	if len(records) > 0 {
		if _, err := writer.Write(records); err != nil {
			_ = writer.Close()
			return common.WrapError(err, "failed to write findings to parquet file")
		}
	}
	if err := writer.Close(); err != nil {
		return common.WrapError(err, "failed to finalize findings parquet file")
	}

	fs.logger.Info().Str("file_path", filePath).Int("records_written", len(records)).Msg("Stored scan findings")
	return nil
}

func (fs *FindingsStore) compressionCodec() compress.Codec {
	switch fs.config.CompressionCodec {
	case "snappy":
		return &parquet.Snappy
	case "gzip":
		return &parquet.Gzip
	case "none":
		return &parquet.Uncompressed
	default:
		return &parquet.Zstd
	}
}

// LoadScan reads back the findings of one scan.
func (fs *FindingsStore) LoadScan(ctx context.Context, scanID string) ([]models.Finding, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	filePath := filepath.Join(fs.config.ParquetBasePath, "findings", scanID+".parquet")
	file, err := os.Open(filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, common.WrapError(common.ErrNotFound, "scan "+scanID)
		}
		return nil, common.WrapError(err, "failed to open findings parquet file: "+filePath)
	}
	defer file.Close()

	stat, err := file.Stat()
	if err != nil {
		return nil, common.WrapError(err, "failed to stat findings parquet file: "+filePath)
	}
	if stat.Size() == 0 {
		return []models.Finding{}, nil
	}

	records, err := parquet.Read[StoredFinding](file, stat.Size())
	if err != nil {
		return nil, common.WrapError(err, "failed to read findings parquet file: "+filePath)
	}

	findings := make([]models.Finding, 0, len(records))
	for _, record := range records {
		findings = append(findings, models.Finding{
			Type:           models.IssueType(record.Type),
			Category:       record.Category,
			Severity:       models.Severity(record.Severity),
			File:           record.File,
			Line:           int(record.Line),
			Code:           record.Code,
			Description:    record.Description,
			Recommendation: record.Recommendation,
		})
	}
	return findings, nil
}

// ListScanIDs returns the persisted scan IDs in chronological order.
func (fs *FindingsStore) ListScanIDs() ([]string, error) {
	findingsDir := filepath.Join(fs.config.ParquetBasePath, "findings")
	entries, err := os.ReadDir(findingsDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, common.WrapError(err, "failed to list findings directory: "+findingsDir)
	}

	var scanIDs []string
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, ".parquet") {
			continue
		}
		scanIDs = append(scanIDs, strings.TrimSuffix(name, ".parquet"))
	}
	sort.Strings(scanIDs)
	return scanIDs, nil
}

// LatestScanID returns the most recent persisted scan ID, or "" when the
// store is empty.
func (fs *FindingsStore) LatestScanID() (string, error) {
	scanIDs, err := fs.ListScanIDs()
	if err != nil || len(scanIDs) == 0 {
		return "", err
	}
	return scanIDs[len(scanIDs)-1], nil
}
