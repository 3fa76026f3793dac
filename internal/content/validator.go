package content

import (
	"github.com/mlehtin/storykit/internal/observability"
	"github.com/mlehtin/storykit/internal/schema"
)

// Validator wraps the generated schema definitions with a fail-open
// policy: malformed CMS content must never crash rendering, so on any
// validation failure the original input is returned unchanged and the
// mismatch only surfaces as a log line.
type Validator struct {
	metrics *observability.ContentMetrics
}

// NewValidator creates a validator. metrics may be nil.
func NewValidator(metrics *observability.ContentMetrics) *Validator {
	return &Validator{metrics: metrics}
}

// Validate validates and coerces a raw content tree against its component
// definition. Inputs that are not block-shaped (not a map, or missing the
// component discriminator) are returned unchanged without being attempted.
// This function never panics and is idempotent: validating an already
// validated tree yields an equal tree.
func (v *Validator) Validate(raw any) any {
	block, ok := raw.(map[string]any)
	if !ok {
		return raw
	}

	name, ok := schema.ComponentOf(block)
	if !ok {
		return raw
	}

	parsed, err := schema.ParseContent(block)
	if err != nil {
		// Full detail lands at Debug for development; production handlers
		// filter to the terse Warn line.
		logger.Debug("content validation failed",
			"component", string(name),
			"error", err)
		logger.Warn("content validation failed, using unvalidated content",
			"component", string(name))

		v.metrics.RecordValidationFailure(string(name))
		return raw
	}

	return parsed
}

// ValidateContent is Validate specialised to map trees, keeping call sites
// inside the fetch path free of type assertions.
func (v *Validator) ValidateContent(content map[string]any) map[string]any {
	validated, ok := v.Validate(content).(map[string]any)
	if !ok {
		return content
	}
	return validated
}
