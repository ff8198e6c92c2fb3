package extractor

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"outreach-automation/internal/common/errors"
	"outreach-automation/internal/common/logger"
)

func newTestService() *Service {
	cfg := DefaultConfig()
	cfg.FetchTimeout = 3 * time.Second
	return NewService(cfg, logger.NewNoOpLogger())
}

func servePage(t *testing.T, html string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Mozilla/5.0", r.Header.Get("User-Agent"))
		w.Write([]byte(html))
	}))
}

func TestExtractEmails_MailtoAndBodyScan(t *testing.T) {
	server := servePage(t, `<html><body>
		<a href="mailto:a@b.com">Contact</a>
		<p>Reach us at c@d.com for orders.</p>
	</body></html>`)
	defer server.Close()

	svc := newTestService()
	emails, err := svc.ExtractEmails(context.Background(), server.URL)
	require.NoError(t, err)
	assert.Equal(t, []string{"a@b.com", "c@d.com"}, emails)
}

func TestExtractEmails_StripsMailtoQueryString(t *testing.T) {
	server := servePage(t, `<a href="mailto:sales@brand.ae?subject=Hello">mail</a>`)
	defer server.Close()

	svc := newTestService()
	emails, err := svc.ExtractEmails(context.Background(), server.URL)
	require.NoError(t, err)
	assert.Equal(t, []string{"sales@brand.ae"}, emails)
}

func TestExtractEmails_DedupesAndCapsAtTwo(t *testing.T) {
	server := servePage(t, `<html><body>
		<a href="mailto:info@brand.ae">one</a>
		<p>info@brand.ae again, plus orders@brand.ae and support@brand.ae</p>
	</body></html>`)
	defer server.Close()

	svc := newTestService()
	emails, err := svc.ExtractEmails(context.Background(), server.URL)
	require.NoError(t, err)
	// lexical order, first two survivors
	assert.Equal(t, []string{"info@brand.ae", "orders@brand.ae"}, emails)
}

func TestExtractEmails_StoplistFiltering(t *testing.T) {
	server := servePage(t, `<html><body>
		hello@example.com test@brand.ae noreply@brand.ae NoReply@other.ae real@brand.ae
	</body></html>`)
	defer server.Close()

	svc := newTestService()
	emails, err := svc.ExtractEmails(context.Background(), server.URL)
	require.NoError(t, err)
	assert.Equal(t, []string{"real@brand.ae"}, emails)
}

func TestExtractEmails_FetchFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	svc := newTestService()
	emails, err := svc.ExtractEmails(context.Background(), server.URL)
	assert.Empty(t, emails)
	require.Error(t, err)
	assert.Equal(t, errors.ErrCodePageFetchFailed, errors.CodeOf(err))
	assert.False(t, errors.IsCampaignFatal(err))
}

func TestExtractSocials_FirstMatchPerPlatformWins(t *testing.T) {
	server := servePage(t, `<html><body>
		<a href="https://www.instagram.com/brandia">ig</a>
		<a href="https://www.instagram.com/brandia_old">ig2</a>
		<a href="https://www.facebook.com/brandia">fb</a>
	</body></html>`)
	defer server.Close()

	svc := newTestService()
	socials, err := svc.ExtractSocials(context.Background(), server.URL)
	require.NoError(t, err)
	assert.Equal(t, map[string]string{
		"instagram": "https://www.instagram.com/brandia",
		"facebook":  "https://www.facebook.com/brandia",
	}, socials)
}

func TestExtractSocials_CaseInsensitiveHrefMatch(t *testing.T) {
	server := servePage(t, `<a href="https://WWW.Instagram.COM/Brandia">ig</a>`)
	defer server.Close()

	svc := newTestService()
	socials, err := svc.ExtractSocials(context.Background(), server.URL)
	require.NoError(t, err)
	// original casing is preserved in the recorded link
	assert.Equal(t, "https://WWW.Instagram.COM/Brandia", socials["instagram"])
}

func TestExtractSocials_FetchFailureYieldsEmptyMap(t *testing.T) {
	svc := newTestService()
	socials, err := svc.ExtractSocials(context.Background(), "http://127.0.0.1:1/none")
	assert.Empty(t, socials)
	require.Error(t, err)
	assert.Equal(t, errors.ErrCodePageFetchFailed, errors.CodeOf(err))
}

func TestExtractSocials_NoProfiles(t *testing.T) {
	server := servePage(t, `<a href="/about">About us</a>`)
	defer server.Close()

	svc := newTestService()
	socials, err := svc.ExtractSocials(context.Background(), server.URL)
	require.NoError(t, err)
	assert.Empty(t, socials)
}
