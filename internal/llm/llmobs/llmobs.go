package llmobs

import (
	"context"

	"llm-stock-picker/internal/logger"
	"llm-stock-picker/internal/types"
)

// observableAdvisor wraps an Advisor with observability (logging & tracing)
type observableAdvisor struct {
	advisor types.Advisor
}

// Compile-time interface check
var _ types.Advisor = (*observableAdvisor)(nil)

// Wrap wraps an advisor with observability middleware
func Wrap(advisor types.Advisor) types.Advisor {
	return &observableAdvisor{
		advisor: advisor,
	}
}

// Complete requests a completion with observability
func (oa *observableAdvisor) Complete(ctx context.Context, system, user string) (string, error) {
	ctx, span := logger.StartSpan(ctx, "llm.Complete")
	defer span.End()

	logger.Debug(ctx, "Requesting completion",
		"prompt_chars", len(user),
	)

	text, err := oa.advisor.Complete(ctx, system, user)
	if err != nil {
		logger.ErrorWithErr(ctx, "Completion request failed", err,
			"prompt_chars", len(user),
		)
		return "", err
	}

	logger.Debug(ctx, "Completion received",
		"response_chars", len(text),
	)

	return text, nil
}
