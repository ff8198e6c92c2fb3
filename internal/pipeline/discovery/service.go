package discovery

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"outreach-automation/internal/common/errors"
	"outreach-automation/internal/common/logger"
	"outreach-automation/internal/models"
)

// skipDomains lists social/media hosting domains whose pages are never
// candidates themselves, though they may still show up as social links.
var skipDomains = []string{
	"facebook.com",
	"instagram.com",
	"linkedin.com",
	"youtube.com",
	"twitter.com",
	"wikipedia.org",
}

const (
	// maxNameLength bounds the candidate display name.
	maxNameLength = 50
	// placeholderName is used when the provider returns no title.
	placeholderName = "Unknown"
)

type Service struct {
	config *Config
	client *http.Client
	logger logger.Logger
	now    func() time.Time
}

func NewService(config *Config, log logger.Logger) *Service {
	return &Service{
		config: config,
		client: &http.Client{
			Timeout: config.Timeout,
		},
		logger: log.With(map[string]interface{}{
			"stage": "discovery",
		}),
		now: time.Now,
	}
}

// Discover queries the search provider once for numResults organic results and
// returns the surviving candidates in result order. Results on denylisted
// hosts are silently dropped, which can yield fewer candidates than requested;
// no over-fetching compensates for that. Provider failure returns an empty
// list and a campaign-fatal error. The call is never retried.
func (s *Service) Discover(ctx context.Context, query string, numResults int) ([]models.Candidate, error) {
	if numResults > s.config.MaxResults {
		numResults = s.config.MaxResults
	}

	searchURL := s.buildSearchURL(query, numResults)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, searchURL, nil)
	if err != nil {
		return nil, errors.NewSearchProviderError(err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, errors.NewSearchProviderError(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.NewSearchProviderError(fmt.Errorf("search API returned %d", resp.StatusCode))
	}

	var apiResponse struct {
		OrganicResults []struct {
			Title string `json:"title"`
			Link  string `json:"link"`
		} `json:"organic_results"`
	}

	if err := json.NewDecoder(resp.Body).Decode(&apiResponse); err != nil {
		return nil, errors.NewSearchProviderError(err)
	}

	var candidates []models.Candidate
	for _, result := range apiResponse.OrganicResults {
		if isSkippedDomain(result.Link) {
			continue
		}

		candidates = append(candidates, models.Candidate{
			Name:        truncateName(result.Title),
			URL:         result.Link,
			Emails:      []string{},
			SocialLinks: map[string]string{},
			Timestamp:   s.now(),
		})
	}

	s.logger.Info("discovery completed", map[string]interface{}{
		"query":          query,
		"requested":      numResults,
		"candidateCount": len(candidates),
	})

	return candidates, nil
}

func (s *Service) buildSearchURL(query string, numResults int) string {
	baseURL, _ := url.Parse(s.config.BaseURL)
	params := url.Values{}
	params.Add("engine", s.config.Engine)
	params.Add("q", query)
	params.Add("num", fmt.Sprintf("%d", numResults))
	params.Add("api_key", s.config.APIKey)
	baseURL.RawQuery = params.Encode()
	return baseURL.String()
}

// isSkippedDomain reports whether the link's host matches the denylist.
// Unparseable links fall back to a substring check on the whole URL.
func isSkippedDomain(link string) bool {
	host := strings.ToLower(link)
	if u, err := url.Parse(link); err == nil && u.Hostname() != "" {
		host = strings.ToLower(u.Hostname())
	}
	for _, domain := range skipDomains {
		if strings.Contains(host, domain) {
			return true
		}
	}
	return false
}

func truncateName(title string) string {
	if title == "" {
		return placeholderName
	}
	runes := []rune(title)
	if len(runes) > maxNameLength {
		return string(runes[:maxNameLength])
	}
	return title
}
