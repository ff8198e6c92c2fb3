package dispatcher

import (
	"context"
	"fmt"
	"time"

	"outreach-automation/internal/common/errors"
	"outreach-automation/internal/common/logger"
	"outreach-automation/internal/common/metrics"
	"outreach-automation/internal/common/sheets"
	"outreach-automation/internal/models"
)

// Service sends the personalized message and commits a log row for every
// confirmed send. The append happens only after the relay reported success,
// so an interrupted campaign never leaves spurious log entries.
type Service struct {
	sender Sender
	store  sheets.Store
	logger logger.Logger
}

func NewService(sender Sender, store sheets.Store, log logger.Logger) *Service {
	return &Service{
		sender: sender,
		store:  store,
		logger: log.With(map[string]interface{}{
			"stage": "dispatcher",
		}),
	}
}

// Dispatch sends body to recipient and appends one log row on success. Any
// failure returns a recoverable error and leaves the log untouched; nothing
// is retried.
func (s *Service) Dispatch(ctx context.Context, candidate *models.Candidate, recipient, body string) error {
	if recipient == "" {
		return errors.NewEmailDeliveryError(recipient, fmt.Errorf("empty recipient"))
	}

	start := time.Now()
	err := s.sender.Send(ctx, recipient, Subject, body)
	metrics.SendDuration.Observe(time.Since(start).Seconds())

	if err != nil {
		deliveryErr := errors.NewEmailDeliveryError(recipient, err)
		metrics.EmailsFailed.WithLabelValues(string(errors.CodeOf(deliveryErr))).Inc()
		s.logger.Error("email send failed", map[string]interface{}{
			"brand":     candidate.Name,
			"recipient": recipient,
			"error":     err.Error(),
		})
		return deliveryErr
	}

	metrics.EmailsSent.Inc()
	s.logger.Info("email sent", map[string]interface{}{
		"brand":     candidate.Name,
		"recipient": recipient,
	})

	row := models.LogRow{
		BrandName: candidate.Name,
		URL:       candidate.URL,
		Email:     recipient,
		Instagram: candidate.Instagram(),
		Status:    models.StatusSent,
		Timestamp: candidate.TimestampString(),
		FollowUp:  "",
	}

	if err := s.store.Append(ctx, row); err != nil {
		appendErr := errors.NewLogAppendFailedError(err)
		metrics.EmailsFailed.WithLabelValues(string(errors.CodeOf(appendErr))).Inc()
		s.logger.Error("log append failed after send", map[string]interface{}{
			"brand":     candidate.Name,
			"recipient": recipient,
			"error":     err.Error(),
		})
		return appendErr
	}

	return nil
}
