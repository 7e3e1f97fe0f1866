package scanner

import (
	"context"
	"os"
	"path"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/aleister1102/bugsentry/internal/config"
	"github.com/aleister1102/bugsentry/internal/detector"
	"github.com/aleister1102/bugsentry/internal/limiter"
	"github.com/aleister1102/bugsentry/internal/models"
	"github.com/aleister1102/bugsentry/internal/walker"
	"github.com/rs/zerolog"
)

// Scanner orchestrates one scan: walk the project tree, apply the six
// category detectors to every candidate file, and aggregate the findings into
// a report. A Scanner holds no per-scan state, so the same instance may be
// used for repeated scans of different roots.
type Scanner struct {
	config    *config.GlobalConfig
	logger    zerolog.Logger
	walker    *walker.Walker
	detectors []detector.Func
	limiter   *limiter.ResourceLimiter
}

// NewScanner creates a new Scanner instance.
func NewScanner(cfg *config.GlobalConfig, logger zerolog.Logger) *Scanner {
	scopedLogger := logger.With().Str("component", "Scanner").Logger()
	return &Scanner{
		config:    cfg,
		logger:    scopedLogger,
		walker:    walker.NewWalker(cfg.WalkerConfig, logger),
		detectors: detector.All(),
	}
}

// WithResourceLimiter attaches a resource limiter consulted when sizing the
// worker pool.
func (s *Scanner) WithResourceLimiter(rl *limiter.ResourceLimiter) *Scanner {
	s.limiter = rl
	return s
}

// DetectAllIssues scans the project rooted at projectRoot and returns the
// aggregated report. The scan never aborts on per-file or per-rule problems;
// only an inaccessible root yields a failed report.
func (s *Scanner) DetectAllIssues(ctx context.Context, projectRoot string) *models.Report {
	started := time.Now()

	if _, err := os.Stat(projectRoot); err != nil {
		s.logger.Error().Err(err).Str("root", projectRoot).Msg("Cannot access project root")
		return failedReport(err)
	}

	candidates, err := s.walker.Walk(projectRoot)
	if err != nil {
		s.logger.Error().Err(err).Str("root", projectRoot).Msg("Project walk failed")
		return failedReport(err)
	}

	agg := newAggregator()
	s.scanFiles(ctx, projectRoot, candidates, agg)

	if ctx.Err() != nil {
		s.logger.Warn().Err(ctx.Err()).Msg("Scan canceled before completion")
		return failedReport(ctx.Err())
	}

	report := agg.buildReport()
	s.logScanSummary(report, time.Since(started))
	return report
}

// scanFiles fans candidate files out to a bounded worker pool. Workers only
// share the aggregator, which synchronizes its own appends; file content is
// dropped as soon as its detectors have run.
func (s *Scanner) scanFiles(ctx context.Context, root string, candidates []string, agg *aggregator) {
	workers := s.workerCount(len(candidates))
	jobs := make(chan string)

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for rel := range jobs {
				s.scanFile(root, rel, agg)
			}
		}()
	}

	for _, rel := range candidates {
		if ctx.Err() != nil {
			break
		}
		jobs <- rel
	}
	close(jobs)
	wg.Wait()
}

func (s *Scanner) scanFile(root, rel string, agg *aggregator) {
	content, err := os.ReadFile(filepath.Join(root, rel))
	if err != nil {
		s.logger.Warn().Err(err).Str("file", rel).Msg("Failed to read file, skipping")
		return
	}

	lines := strings.Split(strings.ReplaceAll(string(content), "\r\n", "\n"), "\n")
	var findings []models.Finding
	for _, detect := range s.detectors {
		findings = append(findings, s.runDetector(detect, rel, lines)...)
	}

	agg.add(s.filterSuppressed(findings))
}

// runDetector shields the scan from a single misbehaving rule: a panic inside
// one detector contributes zero findings for that file instead of aborting
// the scan.
func (s *Scanner) runDetector(detect detector.Func, file string, lines []string) (findings []models.Finding) {
	defer func() {
		if r := recover(); r != nil {
			s.logger.Warn().Interface("panic", r).Str("file", file).Msg("Detector failed on file, skipping its output")
			findings = nil
		}
	}()
	return detect(file, lines)
}

// filterSuppressed drops findings whose category is disabled or whose file
// matches a suppression glob.
func (s *Scanner) filterSuppressed(findings []models.Finding) []models.Finding {
	detectorCfg := &s.config.DetectorConfig
	if len(detectorCfg.DisabledCategories) == 0 && len(detectorCfg.SuppressPathGlobs) == 0 {
		return findings
	}

	kept := findings[:0]
	for _, finding := range findings {
		if detectorCfg.CategoryDisabled(finding.Category) || s.pathSuppressed(finding.File) {
			continue
		}
		kept = append(kept, finding)
	}
	return kept
}

func (s *Scanner) pathSuppressed(file string) bool {
	normalized := filepath.ToSlash(file)
	for _, glob := range s.config.DetectorConfig.SuppressPathGlobs {
		if ok, err := path.Match(glob, normalized); err == nil && ok {
			return true
		}
		if strings.HasSuffix(glob, "/") && strings.HasPrefix(normalized, glob) {
			return true
		}
	}
	return false
}

func (s *Scanner) workerCount(candidateCount int) int {
	workers := s.config.ScannerConfig.MaxWorkers
	if workers < 1 {
		workers = 1
	}
	if s.limiter != nil {
		workers = s.limiter.RecommendedWorkers(workers)
	}
	if candidateCount > 0 && workers > candidateCount {
		workers = candidateCount
	}
	if workers < 1 {
		workers = 1
	}
	return workers
}

func (s *Scanner) logScanSummary(report *models.Report, elapsed time.Duration) {
	event := s.logger.Info().
		Int("files_scanned", report.FilesScanned).
		Int("total_issues", report.TotalIssues).
		Dur("elapsed", elapsed)
	for _, issueType := range models.AllIssueTypes {
		event = event.Int(string(issueType), report.IssuesByCategory[issueType])
	}
	event.Msg("Scan completed")
}

func failedReport(err error) *models.Report {
	report := models.NewEmptyReport(models.ScanStatusFailed)
	if err != nil {
		report.Error = err.Error()
	}
	return report
}
