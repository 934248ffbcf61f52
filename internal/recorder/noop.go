package recorder

import "llm-stock-picker/internal/types"

// NoopRecorder is a no-op implementation used when SQLite is not configured.
type NoopRecorder struct{}

func NewNoopRecorder() *NoopRecorder { return &NoopRecorder{} }

func (n *NoopRecorder) RecordAnalysis(_ *types.AnalyzedEntry) error { return nil }
func (n *NoopRecorder) RecordPick(_ *types.Pick) error              { return nil }
func (n *NoopRecorder) Close() error                                { return nil }
