package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	CandidatesDiscovered = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "outreach_candidates_discovered_total",
			Help: "Total number of candidates returned by discovery",
		},
	)

	CandidatesProcessed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "outreach_candidates_processed_total",
			Help: "Total number of candidates processed, by outcome",
		},
		[]string{"outcome"},
	)

	EmailsExtracted = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "outreach_emails_extracted_total",
			Help: "Total number of contact addresses extracted from candidate pages",
		},
	)

	EmailsSent = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "outreach_emails_sent_total",
			Help: "Total number of outreach emails sent successfully",
		},
	)

	EmailsFailed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "outreach_emails_failed_total",
			Help: "Total number of failed outreach sends, by error code",
		},
		[]string{"error_code"},
	)

	SendDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name: "outreach_send_duration_seconds",
			Help: "Duration of mail-relay send calls in seconds",
		},
	)

	CampaignsRun = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "outreach_campaigns_total",
			Help: "Total number of campaign runs, by terminal state",
		},
		[]string{"state"},
	)
)
