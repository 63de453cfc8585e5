package pipeline

import (
	"time"

	"go.uber.org/zap"

	"tires/internal"
	"tires/internal/observability"
)

type ProcessingService struct {
	opts    ReadOptions
	logger  *zap.Logger
	metrics *observability.Metrics
}

// NewProcessingService returns a driver. logger and metrics may be nil.
func NewProcessingService(opts ReadOptions, logger *zap.Logger, metrics *observability.Metrics) *ProcessingService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ProcessingService{opts: opts, logger: logger, metrics: metrics}
}

type ProcessResult struct {
	Records []internal.TireRecord
	Summary internal.RunSummary
}

// ProcessFile reads the whole input and builds one record per data row.
// Nothing is returned until every row has been read.
func (s *ProcessingService) ProcessFile(path string) (ProcessResult, error) {
	start := time.Now()
	source := s.opts.sourceFor(path)
	s.logger.Debug("reading input", zap.String("path", path), zap.String("source", string(source)))

	rows, err := ReadRows(path, s.opts)
	if err != nil {
		s.metrics.ObserveFailure(source)
		return ProcessResult{}, err
	}

	records := BuildRecords(rows)
	summary := Summarize(records)
	summary.InputSource = source
	summary.DurationMs = time.Since(start).Milliseconds()

	s.metrics.ObserveRun(summary)
	s.logger.Info("input normalized",
		zap.String("path", path),
		zap.Int("records", summary.Records),
		zap.Int("withSize", summary.WithSize),
		zap.Int("withLoadIndex", summary.WithLoad),
		zap.Int("studdable", summary.Studdable),
		zap.Int64("durationMs", summary.DurationMs),
	)

	return ProcessResult{Records: records, Summary: summary}, nil
}

// Run normalizes the comma-separated file at inputPath with no logging. The
// file name never changes how it is read.
func Run(inputPath string) ([]internal.TireRecord, error) {
	res, err := NewProcessingService(CSVReadOptions(), nil, nil).ProcessFile(inputPath)
	if err != nil {
		return nil, err
	}
	return res.Records, nil
}
