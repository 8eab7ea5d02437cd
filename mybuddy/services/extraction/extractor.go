package extraction

import (
	"context"

	"mybuddy/mybuddy/utils/logging"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Extractor runs the configured strategy, falls back to the rule extractor
// when it fails, and hands the result to the writer.
type Extractor struct {
	primary  Strategy
	fallback *RuleExtractor
	writer   *Writer
}

// NewExtractor uses primary first. A nil primary means rules only.
func NewExtractor(primary Strategy, writer *Writer) *Extractor {
	return &Extractor{primary: primary, fallback: NewRuleExtractor(), writer: writer}
}

// Strategy reports which primary path is in use.
func (e *Extractor) Strategy() string {
	if e.primary == nil {
		return e.fallback.Name()
	}
	return e.primary.Name()
}

// ExtractFromNote derives action items, contacts and reminders from the note
// and stores them. Extraction problems are logged and absorbed; only a failure
// to persist is returned.
func (e *Extractor) ExtractFromNote(ctx context.Context, noteID uint, title, content string) error {
	runID := uuid.NewString()
	ctx = logging.WithRunID(ctx, runID)
	defer logging.LogDuration(ctx, "extract_from_note")()

	res := e.extract(ctx, noteID, runID, title, content)
	return e.writer.SaveExtractions(ctx, noteID, res)
}

func (e *Extractor) extract(ctx context.Context, noteID uint, runID, title, content string) *Result {
	if e.primary != nil {
		res, err := e.primary.Extract(ctx, title, content)
		if err == nil {
			return res
		}
		logging.ErrorLogger.Error("AI extraction failed, falling back to rule-based extraction",
			zap.String("run_id", runID),
			zap.Uint("note_id", noteID),
			zap.Error(err),
		)
	}

	logging.AppLogger.Info("Using rule-based extraction",
		zap.String("run_id", runID),
		zap.Uint("note_id", noteID),
	)
	res, _ := e.fallback.Extract(ctx, title, content)
	return res
}
