package extractor

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"sort"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"outreach-automation/internal/common/errors"
	"outreach-automation/internal/common/httpclient"
	"outreach-automation/internal/common/logger"
)

var emailRegex = regexp.MustCompile(`[A-Za-z0-9._%+\-]+@[A-Za-z0-9.\-]+\.[A-Za-z]{2,}`)

// emailStoplist drops throwaway and machine addresses; matched as
// case-insensitive substrings.
var emailStoplist = []string{"example", "test@", "noreply"}

// socialPlatforms maps platform keys to the href fragment that identifies a
// profile link.
var socialPlatforms = []struct {
	key      string
	fragment string
}{
	{"instagram", "instagram.com/"},
	{"facebook", "facebook.com/"},
}

type Service struct {
	config *Config
	client *httpclient.Client
	logger logger.Logger
}

func NewService(config *Config, log logger.Logger) *Service {
	return &Service{
		config: config,
		client: httpclient.New(config.FetchTimeout, config.UserAgent),
		logger: log.With(map[string]interface{}{
			"stage": "extractor",
		}),
	}
}

func (s *Service) fetch(ctx context.Context, pageURL string) ([]byte, error) {
	resp, err := s.client.Get(ctx, pageURL)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("page returned %d", resp.StatusCode)
	}

	return io.ReadAll(resp.Body)
}

// ExtractEmails fetches the page once and collects candidate contact
// addresses from mailto anchors and a regex scan of the raw body. Addresses
// are deduplicated, filtered against the stoplist, sorted lexically for a
// deterministic order, and capped at MaxEmails. A fetch failure returns no
// addresses together with a recoverable error; it never halts the campaign.
func (s *Service) ExtractEmails(ctx context.Context, pageURL string) ([]string, error) {
	body, err := s.fetch(ctx, pageURL)
	if err != nil {
		s.logger.Warn("email extraction fetch failed", map[string]interface{}{
			"url":   pageURL,
			"error": err.Error(),
		})
		return nil, errors.NewPageFetchError(pageURL, err)
	}

	seen := make(map[string]struct{})

	if doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body)); err == nil {
		doc.Find("a[href]").Each(func(_ int, sel *goquery.Selection) {
			href, _ := sel.Attr("href")
			if !strings.HasPrefix(href, "mailto:") {
				return
			}
			addr := strings.TrimPrefix(href, "mailto:")
			if i := strings.Index(addr, "?"); i >= 0 {
				addr = addr[:i]
			}
			if addr != "" {
				seen[addr] = struct{}{}
			}
		})
	}

	for _, addr := range emailRegex.FindAllString(string(body), -1) {
		seen[addr] = struct{}{}
	}

	emails := make([]string, 0, len(seen))
	for addr := range seen {
		if isStoplisted(addr) {
			continue
		}
		emails = append(emails, addr)
	}
	sort.Strings(emails)

	if len(emails) > s.config.MaxEmails {
		emails = emails[:s.config.MaxEmails]
	}

	s.logger.Debug("email extraction completed", map[string]interface{}{
		"url":        pageURL,
		"emailCount": len(emails),
	})

	return emails, nil
}

// ExtractSocials fetches the page again, independently of the email pass, and
// scans every anchor for known social profile links. Only the first occurrence
// per platform is kept; the href is recorded as written in the page. A fetch
// failure returns an empty mapping with a recoverable error.
func (s *Service) ExtractSocials(ctx context.Context, pageURL string) (map[string]string, error) {
	body, err := s.fetch(ctx, pageURL)
	if err != nil {
		s.logger.Warn("social extraction fetch failed", map[string]interface{}{
			"url":   pageURL,
			"error": err.Error(),
		})
		return map[string]string{}, errors.NewPageFetchError(pageURL, err)
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return map[string]string{}, errors.NewPageFetchError(pageURL, err)
	}

	socials := make(map[string]string)
	doc.Find("a[href]").Each(func(_ int, sel *goquery.Selection) {
		href, _ := sel.Attr("href")
		lowered := strings.ToLower(href)
		for _, platform := range socialPlatforms {
			if !strings.Contains(lowered, platform.fragment) {
				continue
			}
			// insert-if-absent: the first match per platform wins
			if _, ok := socials[platform.key]; !ok {
				socials[platform.key] = href
			}
			break
		}
	})

	s.logger.Debug("social extraction completed", map[string]interface{}{
		"url":         pageURL,
		"socialCount": len(socials),
	})

	return socials, nil
}

func isStoplisted(addr string) bool {
	lowered := strings.ToLower(addr)
	for _, fragment := range emailStoplist {
		if strings.Contains(lowered, fragment) {
			return true
		}
	}
	return false
}
