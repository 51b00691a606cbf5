package rubric

import "context"

// Scorer evaluates a handover document against the full rubric
type Scorer interface {
	Evaluate(ctx context.Context, documentPath string) (*Evaluation, error)
}
