package models

// StatusSent is the status string recorded for a completed send.
const StatusSent = "Sent"

// LogHeader is the fixed 7-column header of the outreach log sheet.
var LogHeader = []string{"Brand Name", "URL", "Email", "Instagram", "Status", "Timestamp", "Follow Up"}

// LogRow is one persisted record of a completed send. Rows are append-only;
// FollowUp is set manually outside this system and only ever read back.
type LogRow struct {
	BrandName string `json:"brandName"`
	URL       string `json:"url"`
	Email     string `json:"email"`
	Instagram string `json:"instagram"`
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
	FollowUp  string `json:"followUp"`
}

// Values returns the row in sheet column order.
func (r LogRow) Values() []interface{} {
	return []interface{}{r.BrandName, r.URL, r.Email, r.Instagram, r.Status, r.Timestamp, r.FollowUp}
}

// LogRowFromRecord builds a LogRow from a header-keyed record as returned by
// the log store's read path. Missing columns default to empty strings.
func LogRowFromRecord(record map[string]string) LogRow {
	return LogRow{
		BrandName: record["Brand Name"],
		URL:       record["URL"],
		Email:     record["Email"],
		Instagram: record["Instagram"],
		Status:    record["Status"],
		Timestamp: record["Timestamp"],
		FollowUp:  record["Follow Up"],
	}
}

// Record returns the row as a header-keyed record.
func (r LogRow) Record() map[string]string {
	return map[string]string{
		"Brand Name": r.BrandName,
		"URL":        r.URL,
		"Email":      r.Email,
		"Instagram":  r.Instagram,
		"Status":     r.Status,
		"Timestamp":  r.Timestamp,
		"Follow Up":  r.FollowUp,
	}
}
