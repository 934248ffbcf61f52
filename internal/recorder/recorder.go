package recorder

import "llm-stock-picker/internal/types"

// Recorder persists per-tick analyses and window picks for later review.
// The poll loop treats recording as best-effort: errors are logged by the
// caller and never stop the loop.
type Recorder interface {
	RecordAnalysis(e *types.AnalyzedEntry) error
	RecordPick(p *types.Pick) error
	Close() error
}
