package notify

import (
	"context"
	"encoding/json"
	"log/slog"

	"salon-reserve/internal/pkg/errs"
	"salon-reserve/internal/usecase/shared"
)

var ErrMalformedPayload = errs.New("malformed notification payload")

// LogNotifier delivers notifications to the structured log. It stands in for
// a messaging channel and is where such a channel would plug in.
type LogNotifier struct {
	logger *slog.Logger
}

func NewLogNotifier(logger *slog.Logger) *LogNotifier {
	if logger == nil {
		logger = slog.Default()
	}
	return &LogNotifier{logger: logger}
}

func (n *LogNotifier) Notify(ctx context.Context, job shared.NotificationJob) error {
	var payload map[string]any
	if err := json.Unmarshal(job.Payload, &payload); err != nil {
		return errs.Mark(errs.Wrap(err, "decode payload"), ErrMalformedPayload)
	}

	attrs := []any{
		"job_id", job.ID,
		"kind", job.Kind,
		"topic", job.Topic,
		"attempt", job.Attempts,
	}
	for _, key := range []string{"reservation_id", "customer_id", "operator_id", "date", "time", "status"} {
		if v, ok := payload[key]; ok {
			attrs = append(attrs, key, v)
		}
	}

	n.logger.InfoContext(ctx, "Notification dispatched", attrs...)
	return nil
}

var _ shared.Notifier = (*LogNotifier)(nil)
