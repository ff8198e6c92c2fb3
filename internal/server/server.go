package server

import (
	"context"
	"encoding/json"
	"html/template"
	"net/http"
	"net/url"
	"strconv"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"outreach-automation/internal/common/config"
	"outreach-automation/internal/common/errors"
	"outreach-automation/internal/common/logger"
	"outreach-automation/internal/common/sheets"
	"outreach-automation/internal/common/validation"
	"outreach-automation/internal/models"
	"outreach-automation/internal/pipeline/campaign"
	"outreach-automation/internal/pipeline/stats"
)

// CampaignRunner runs one campaign synchronously.
type CampaignRunner interface {
	Run(ctx context.Context, query string, numResults int, onProgress func(campaign.Progress)) (*campaign.Report, error)
}

// Server renders the dashboard and triggers campaign runs. One campaign at a
// time; the start handler blocks until the run finishes, mirroring the
// single-writer assumption on the log.
type Server struct {
	config *config.Config
	runner CampaignRunner
	store  sheets.Store
	logger logger.Logger
	tmpl   *template.Template

	mu         sync.Mutex
	running    bool
	lastReport *campaign.Report
}

func New(cfg *config.Config, runner CampaignRunner, store sheets.Store, log logger.Logger) *Server {
	return &Server{
		config: cfg,
		runner: runner,
		store:  store,
		logger: log,
		tmpl:   parseDashboardTemplate(),
	}
}

// Handler returns the HTTP routes: the dashboard, the campaign trigger, the
// health probe and prometheus metrics.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/", s.handleDashboard)
	mux.HandleFunc("/campaign", s.handleStartCampaign)
	mux.HandleFunc("/health", s.handleHealth)
	mux.Handle("/metrics", promhttp.Handler())
	return mux
}

type dashboardData struct {
	Title             string
	Flash             string
	FlashKind         string
	Summary           stats.Summary
	Rows              []models.LogRow
	Report            *campaign.Report
	DefaultQuery      string
	DefaultNumResults int
}

func (s *Server) handleDashboard(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}

	data := dashboardData{
		Title:             s.config.App.Name,
		Flash:             r.URL.Query().Get("flash"),
		FlashKind:         r.URL.Query().Get("kind"),
		DefaultQuery:      s.config.Campaign.Query,
		DefaultNumResults: s.config.Campaign.NumResults,
	}
	if data.FlashKind == "" {
		data.FlashKind = "success"
	}

	s.mu.Lock()
	data.Report = s.lastReport
	s.mu.Unlock()

	if s.store == nil {
		s.logger.Warn("outreach log unavailable, rendering empty dashboard", nil)
		s.render(w, data)
		return
	}

	summary, rows, err := stats.Load(r.Context(), s.store)
	if err != nil {
		// a broken log read renders an empty dashboard rather than a 500
		s.logger.WithError(err).Error("stats load failed", map[string]interface{}{
			"error_code": string(errors.CodeOf(err)),
		})
	} else {
		data.Summary = summary
		data.Rows = rows
	}

	s.render(w, data)
}

func (s *Server) render(w http.ResponseWriter, data dashboardData) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := s.tmpl.Execute(w, data); err != nil {
		s.logger.WithError(err).Error("dashboard render failed", nil)
	}
}

func (s *Server) handleStartCampaign(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	if err := r.ParseForm(); err != nil {
		s.redirectFlash(w, r, "invalid form submission", "error")
		return
	}

	query := r.PostFormValue("query")
	numResults, err := strconv.Atoi(r.PostFormValue("num_results"))
	if err != nil {
		s.redirectFlash(w, r, "result count must be a number", "error")
		return
	}

	input := map[string]interface{}{
		"query":       query,
		"num_results": numResults,
	}
	if result := validation.ValidateInput(input, campaign.GetInputSchema()); !result.Valid {
		s.redirectFlash(w, r, result.Errors[0].Message, "error")
		return
	}

	s.mu.Lock()
	if s.running {
		s.mu.Unlock()
		s.redirectFlash(w, r, "a campaign is already running", "error")
		return
	}
	s.running = true
	s.mu.Unlock()

	report, runErr := s.runner.Run(r.Context(), query, numResults, func(p campaign.Progress) {
		s.logger.Info("campaign progress", map[string]interface{}{
			"brand":    p.CandidateName,
			"fraction": p.Fraction(),
		})
	})

	s.mu.Lock()
	s.running = false
	s.lastReport = report
	s.mu.Unlock()

	if runErr != nil {
		s.redirectFlash(w, r, flashForError(runErr), "error")
		return
	}
	s.redirectFlash(w, r, "Campaign finished: "+strconv.Itoa(report.EmailsSent)+" emails sent", "success")
}

// flashForError maps fatal campaign errors to the operator-facing messages.
func flashForError(err error) string {
	switch errors.CodeOf(err) {
	case errors.ErrCodeConfigMissing:
		return "Missing credentials: " + err.Error()
	case errors.ErrCodeEmptySearchResult:
		return "No results found. Try a different query."
	case errors.ErrCodeSearchProviderFailed:
		return "Search failed: " + err.Error()
	case errors.ErrCodeLogSetupFailed:
		return "Could not prepare the outreach log: " + err.Error()
	default:
		return err.Error()
	}
}

func (s *Server) redirectFlash(w http.ResponseWriter, r *http.Request, message, kind string) {
	target := "/?flash=" + url.QueryEscape(message) + "&kind=" + url.QueryEscape(kind)
	http.Redirect(w, r, target, http.StatusSeeOther)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]string{
		"status": "healthy",
		"time":   time.Now().Format(time.RFC3339),
	})
}
