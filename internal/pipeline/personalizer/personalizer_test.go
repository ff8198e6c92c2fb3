package personalizer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"outreach-automation/internal/models"
)

func TestDisplayName(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"plain name", "Brandia", "Brandia"},
		{"pipe separator", "Brandia | Premium Home Goods", "Brandia"},
		{"only first pipe counts", "Brandia | Goods | UAE", "Brandia"},
		{"whitespace trimmed", "  Brandia  | tagline", "Brandia"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, DisplayName(tt.input))
		})
	}
}

func TestCompose_InstagramVariant(t *testing.T) {
	body := Compose("Brandia", true)

	assert.True(t, strings.HasPrefix(body, "Hi Brandia,"))
	assert.Contains(t, body, "I came across your Instagram profile")
	assert.Contains(t, body, "strategic Reels")
	assert.NotContains(t, body, "I found your business online")
}

func TestCompose_DefaultVariant(t *testing.T) {
	body := Compose("Brandia", false)

	assert.Contains(t, body, "I found your business online")
	assert.Contains(t, body, "stronger Instagram presence")
	assert.NotContains(t, body, "I came across your Instagram profile")
}

func TestCompose_SharedSections(t *testing.T) {
	for _, hasInstagram := range []bool{true, false} {
		body := Compose("Brandia", hasInstagram)
		assert.Contains(t, body, "complimentary social media audit")
		assert.Contains(t, body, "15-minute call")
		assert.Contains(t, body, "Best Regards,\nMishita\nGenixovate")
	}
}

func TestCompose_Deterministic(t *testing.T) {
	first := Compose("Brandia", true)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, Compose("Brandia", true))
	}
}

func TestMessage_UsesCandidateFields(t *testing.T) {
	candidate := &models.Candidate{
		Name: "Brandia | Premium Home Goods",
		SocialLinks: map[string]string{
			"instagram": "https://instagram.com/brandia",
		},
	}

	body := Message(candidate)
	assert.True(t, strings.HasPrefix(body, "Hi Brandia,"))
	assert.Contains(t, body, "Instagram profile")
}
