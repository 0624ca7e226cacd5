package producers

import (
	"context"

	"github.com/jothamO/prism-app-sub003/internal/domain/review"
)

// EscalationSink adapts a MessagePublisher to the review queue sink. Messages
// are keyed by user ID so one reviewer sees a user's escalations in order.
type EscalationSink struct {
	publisher MessagePublisher
}

func NewEscalationSink(publisher MessagePublisher) *EscalationSink {
	return &EscalationSink{publisher: publisher}
}

func (s *EscalationSink) Enqueue(ctx context.Context, escalation *review.Escalation) error {
	return s.publisher.Publish(ctx, escalation.UserID.String(), escalation)
}
