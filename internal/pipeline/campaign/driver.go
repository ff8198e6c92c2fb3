package campaign

import (
	"context"
	"time"

	"github.com/google/uuid"

	"outreach-automation/internal/common/config"
	"outreach-automation/internal/common/errors"
	"outreach-automation/internal/common/logger"
	"outreach-automation/internal/common/metrics"
	"outreach-automation/internal/common/observability"
	"outreach-automation/internal/common/sheets"
	"outreach-automation/internal/models"
	"outreach-automation/internal/pipeline/personalizer"
)

// Discoverer finds outreach candidates for a query.
type Discoverer interface {
	Discover(ctx context.Context, query string, numResults int) ([]models.Candidate, error)
}

// Extractor pulls contact addresses and social profile links from a
// candidate's page.
type Extractor interface {
	ExtractEmails(ctx context.Context, pageURL string) ([]string, error)
	ExtractSocials(ctx context.Context, pageURL string) (map[string]string, error)
}

// Dispatcher delivers one message and commits the log row on success.
type Dispatcher interface {
	Dispatch(ctx context.Context, candidate *models.Candidate, recipient, body string) error
}

// Driver runs one campaign end to end: validate credentials, ensure the log
// header, discover candidates, then process each candidate in order. A run is
// a single synchronous call; there is no concurrency across candidates and no
// retry of anything.
type Driver struct {
	config     *config.Config
	discoverer Discoverer
	extractor  Extractor
	dispatcher Dispatcher
	store      sheets.Store
	obs        *observability.Observability
	logger     logger.Logger

	sleep func(time.Duration)
	now   func() time.Time
}

func NewDriver(
	cfg *config.Config,
	discoverer Discoverer,
	extractor Extractor,
	dispatcher Dispatcher,
	store sheets.Store,
	obs *observability.Observability,
	log logger.Logger,
) *Driver {
	return &Driver{
		config:     cfg,
		discoverer: discoverer,
		extractor:  extractor,
		dispatcher: dispatcher,
		store:      store,
		obs:        obs,
		logger:     log,
		sleep:      time.Sleep,
		now:        time.Now,
	}
}

// Run executes a campaign for query, discovering up to numResults candidates.
// onProgress, if non-nil, is invoked after every processed candidate. The
// returned report is non-nil even on failure; err is non-nil only for fatal
// errors, which terminate the run. Per-candidate errors are recorded in the
// report and the run continues.
func (d *Driver) Run(ctx context.Context, query string, numResults int, onProgress func(Progress)) (*Report, error) {
	report := &Report{
		RunID:      uuid.NewString(),
		Query:      query,
		NumResults: numResults,
		State:      StateIdle,
		StartedAt:  d.now(),
	}

	log := d.logger.With(map[string]interface{}{
		"run_id": report.RunID,
		"query":  query,
	})

	log.Info("campaign started", map[string]interface{}{
		"num_results": numResults,
	})

	report.State = StateValidatingConfig
	if err := d.validateCredentials(); err != nil {
		return d.fail(report, log, err)
	}

	if err := d.store.EnsureHeader(ctx); err != nil {
		return d.fail(report, log, errors.NewLogSetupFailedError(err))
	}

	report.State = StateSearching
	candidates, err := d.discoverer.Discover(ctx, query, numResults)
	if err != nil {
		return d.fail(report, log, err)
	}
	if len(candidates) == 0 {
		return d.fail(report, log, errors.NewEmptySearchResultError(query))
	}
	metrics.CandidatesDiscovered.Add(float64(len(candidates)))

	report.State = StateProcessing
	total := len(candidates)
	for i := range candidates {
		result := d.processCandidate(ctx, log, &candidates[i])
		report.Candidates = append(report.Candidates, result)
		if result.Outcome == OutcomeSent {
			report.EmailsSent++
		}

		if onProgress != nil {
			onProgress(Progress{
				Index:         i,
				Total:         total,
				CandidateName: candidates[i].Name,
			})
		}
	}

	report.State = StateCompleted
	report.FinishedAt = d.now()
	metrics.CampaignsRun.WithLabelValues(string(StateCompleted)).Inc()

	log.Info("campaign completed", map[string]interface{}{
		"candidates":  total,
		"emails_sent": report.EmailsSent,
	})

	return report, nil
}

// processCandidate runs the extraction passes and, when at least one address
// was found, personalizes and dispatches. Recoverable errors are logged and
// folded into the result; they never stop the run.
func (d *Driver) processCandidate(ctx context.Context, log logger.Logger, candidate *models.Candidate) CandidateResult {
	start := d.now()

	emails, err := d.extractor.ExtractEmails(ctx, candidate.URL)
	if err != nil {
		log.Warn("email extraction failed", map[string]interface{}{
			"brand": candidate.Name,
			"url":   candidate.URL,
			"error": err.Error(),
		})
		emails = nil
	}

	socials, err := d.extractor.ExtractSocials(ctx, candidate.URL)
	if err != nil {
		log.Warn("social extraction failed", map[string]interface{}{
			"brand": candidate.Name,
			"url":   candidate.URL,
			"error": err.Error(),
		})
	}

	// Only the extraction results are filled in here; name, URL and the
	// timestamp stay as discovery produced them.
	candidate.Emails = emails
	candidate.SocialLinks = socials

	if len(emails) > 0 {
		metrics.EmailsExtracted.Add(float64(len(emails)))
	}

	result := CandidateResult{
		Name:      candidate.Name,
		URL:       candidate.URL,
		Emails:    emails,
		Instagram: candidate.Instagram(),
	}

	if len(emails) == 0 {
		result.Outcome = OutcomeSkipped
		log.Info("candidate skipped, no contact address", map[string]interface{}{
			"brand": candidate.Name,
			"url":   candidate.URL,
		})
		d.recordOutcome(ctx, result.Outcome, d.now().Sub(start))
		return result
	}

	body := personalizer.Message(candidate)
	if err := d.dispatcher.Dispatch(ctx, candidate, emails[0], body); err != nil {
		result.Outcome = OutcomeFailed
		result.Error = err.Error()
	} else {
		result.Outcome = OutcomeSent
	}

	// Throttle outbound volume after every send attempt, successful or not.
	d.sleep(config.GetDuration(d.config.Campaign.SendDelay))

	d.recordOutcome(ctx, result.Outcome, d.now().Sub(start))
	return result
}

// validateCredentials halts a run before any external call when the operator
// has not supplied working credentials. Structure-level config validation
// already happened at load time; this is the presence check the dashboard
// defers until a campaign actually starts.
func (d *Driver) validateCredentials() error {
	sender := d.config.Sender
	switch sender.Provider {
	case "ses":
		if sender.SES.Region == "" {
			return errors.NewConfigMissingError("sender.ses.region")
		}
	default:
		if sender.SMTP.Username == "" {
			return errors.NewConfigMissingError("sender.smtp.username")
		}
		if sender.SMTP.Password == "" {
			return errors.NewConfigMissingError("sender.smtp.password")
		}
	}
	if sender.FromEmail == "" {
		return errors.NewConfigMissingError("sender.from_email")
	}
	if d.config.Search.APIKey == "" {
		return errors.NewConfigMissingError("search.api_key")
	}
	if d.store == nil {
		return errors.NewConfigMissingError("sheets.credentials_file")
	}
	return nil
}

func (d *Driver) fail(report *Report, log logger.Logger, err error) (*Report, error) {
	report.State = StateFailed
	report.FinishedAt = d.now()
	metrics.CampaignsRun.WithLabelValues(string(StateFailed)).Inc()

	log.WithError(err).Error("campaign failed", map[string]interface{}{
		"error_code": string(errors.CodeOf(err)),
	})

	return report, err
}

func (d *Driver) recordOutcome(ctx context.Context, outcome Outcome, duration time.Duration) {
	metrics.CandidatesProcessed.WithLabelValues(string(outcome)).Inc()
	if d.obs != nil {
		d.obs.RecordCandidateProcessed(ctx, string(outcome))
		d.obs.RecordCandidateDuration(ctx, duration, string(outcome))
	}
}
