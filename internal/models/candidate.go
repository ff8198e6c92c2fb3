package models

import "time"

// TimestampLayout is the layout used for candidate timestamps in the log.
const TimestampLayout = "2006-01-02 15:04:05"

// Candidate is a discovered organization under consideration for outreach.
//
// Emails and SocialLinks start empty and are populated by the extractor;
// everything else is fixed at discovery. Processing is strictly sequential,
// so no locking is needed.
type Candidate struct {
	Name        string            `json:"name"`
	URL         string            `json:"url"`
	Emails      []string          `json:"emails"`
	SocialLinks map[string]string `json:"socialLinks"`
	Timestamp   time.Time         `json:"timestamp"`
}

func (c *Candidate) TimestampString() string {
	return c.Timestamp.Format(TimestampLayout)
}

// Instagram returns the extracted Instagram profile URL, or "None" when no
// profile was found. "None" is the sentinel the log sheet uses.
func (c *Candidate) Instagram() string {
	if link, ok := c.SocialLinks["instagram"]; ok {
		return link
	}
	return "None"
}

// HasInstagram reports whether an Instagram profile was extracted.
func (c *Candidate) HasInstagram() bool {
	_, ok := c.SocialLinks["instagram"]
	return ok
}
