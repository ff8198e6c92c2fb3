// Package personalizer builds the plain-text outreach message for a
// candidate. Message is a pure function of the candidate's display name and
// whether an Instagram profile was found; identical input yields
// byte-identical output.
package personalizer

import (
	"fmt"
	"strings"

	"outreach-automation/internal/models"
)

const (
	openingWithInstagram = "I came across your Instagram profile while researching e-commerce brands in the UAE."
	insightWithInstagram = "I noticed there's potential to increase your Instagram engagement through strategic Reels."

	openingWithout = "I found your business online and was impressed by what you're building."
	insightWithout = "I noticed you could benefit from a stronger Instagram presence to reach high-intent buyers."

	messageTemplate = `Hi %s,

%s

%s

I specialize in helping e-commerce brands like yours grow through:

→ Instagram Reels that drive traffic & sales
→ Content strategies based on trending formats
→ Consistent posting schedules

I'd love to offer you a complimentary social media audit with 3-5 actionable recommendations.

Would you be open to a quick 15-minute call this week?

Best Regards,
Mishita
Genixovate
`
)

// Message composes the outreach body for a candidate whose social links have
// already been populated.
func Message(candidate *models.Candidate) string {
	return Compose(DisplayName(candidate.Name), candidate.HasInstagram())
}

// Compose builds the message body from the derived display name and the
// has-instagram branch.
func Compose(name string, hasInstagram bool) string {
	opening := openingWithout
	insight := insightWithout
	if hasInstagram {
		opening = openingWithInstagram
		insight = insightWithInstagram
	}
	return fmt.Sprintf(messageTemplate, name, opening, insight)
}

// DisplayName derives a company display name: the part before the first "|"
// when present, whitespace-trimmed.
func DisplayName(name string) string {
	if i := strings.Index(name, "|"); i >= 0 {
		return strings.TrimSpace(name[:i])
	}
	return name
}
