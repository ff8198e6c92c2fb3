// Package errors provides standardized error handling for the outreach pipeline.
package errors

import (
	"fmt"
	"time"
)

// ==========================
// 1. Standard Error Types
// ==========================

// ErrorCode represents standardized internal error codes.
type ErrorCode string

const (
	// Campaign-fatal errors: the driver halts before or during a run.
	ErrCodeConfigMissing        ErrorCode = "CONFIG_MISSING"
	ErrCodeSearchProviderFailed ErrorCode = "SEARCH_PROVIDER_FAILED"
	ErrCodeEmptySearchResult    ErrorCode = "EMPTY_SEARCH_RESULT"
	ErrCodeLogSetupFailed       ErrorCode = "LOG_SETUP_FAILED"

	// Per-candidate recoverable errors: the driver moves on to the next candidate.
	ErrCodePageFetchFailed     ErrorCode = "PAGE_FETCH_FAILED"
	ErrCodeEmailDeliveryFailed ErrorCode = "EMAIL_DELIVERY_FAILED"
	ErrCodeLogAppendFailed     ErrorCode = "LOG_APPEND_FAILED"

	// Dashboard/read-path errors.
	ErrCodeLogReadFailed ErrorCode = "LOG_READ_FAILED"
)

// StandardError represents a structured application error.
//
// Recoverable distinguishes per-candidate failures (the campaign continues)
// from campaign-fatal ones. No error is ever retried; every external call is
// attempted exactly once.
type StandardError struct {
	Code        ErrorCode              `json:"code"`
	Message     string                 `json:"message"`
	Details     string                 `json:"details,omitempty"`
	Recoverable bool                   `json:"recoverable"`
	Metadata    map[string]interface{} `json:"metadata,omitempty"`
	Timestamp   time.Time              `json:"timestamp"`
}

func (e *StandardError) Error() string {
	return fmt.Sprintf("StandardError[%s]: %s", e.Code, e.Message)
}

// ==========================
// 2. Error Constructors
// ==========================

// NewConfigMissingError reports a required credential or setting absent before
// any external call is made.
func NewConfigMissingError(field string) *StandardError {
	return &StandardError{
		Code:        ErrCodeConfigMissing,
		Message:     "Required configuration is missing",
		Details:     fmt.Sprintf("field: %s", field),
		Recoverable: false,
		Timestamp:   time.Now().UTC(),
	}
}

// NewSearchProviderError reports a failed search provider call. Aborts the campaign.
func NewSearchProviderError(err error) *StandardError {
	return &StandardError{
		Code:        ErrCodeSearchProviderFailed,
		Message:     "Search provider call failed",
		Details:     err.Error(),
		Recoverable: false,
		Timestamp:   time.Now().UTC(),
	}
}

// NewEmptySearchResultError reports a provider call that yielded zero candidates.
// Treated identically to a hard provider failure.
func NewEmptySearchResultError(query string) *StandardError {
	return &StandardError{
		Code:        ErrCodeEmptySearchResult,
		Message:     "Search returned no candidates",
		Details:     fmt.Sprintf("query: %s", query),
		Recoverable: false,
		Timestamp:   time.Now().UTC(),
	}
}

// NewLogSetupFailedError reports a failure to open or prepare the outreach log.
func NewLogSetupFailedError(err error) *StandardError {
	return &StandardError{
		Code:        ErrCodeLogSetupFailed,
		Message:     "Outreach log setup failed",
		Details:     err.Error(),
		Recoverable: false,
		Timestamp:   time.Now().UTC(),
	}
}

// NewPageFetchError reports a single page fetch failure. Degrades to empty
// extraction results for that candidate only.
func NewPageFetchError(url string, err error) *StandardError {
	return &StandardError{
		Code:        ErrCodePageFetchFailed,
		Message:     "Page fetch failed",
		Details:     fmt.Sprintf("url: %s, error: %s", url, err.Error()),
		Recoverable: true,
		Timestamp:   time.Now().UTC(),
	}
}

// NewEmailDeliveryError reports a failed mail-relay send for one candidate.
func NewEmailDeliveryError(recipient string, err error) *StandardError {
	return &StandardError{
		Code:        ErrCodeEmailDeliveryFailed,
		Message:     "Email delivery failed",
		Details:     fmt.Sprintf("recipient: %s, error: %s", recipient, err.Error()),
		Recoverable: true,
		Timestamp:   time.Now().UTC(),
	}
}

// NewLogAppendFailedError reports a failed row append after a confirmed send.
func NewLogAppendFailedError(err error) *StandardError {
	return &StandardError{
		Code:        ErrCodeLogAppendFailed,
		Message:     "Outreach log append failed",
		Details:     err.Error(),
		Recoverable: true,
		Timestamp:   time.Now().UTC(),
	}
}

// NewLogReadFailedError reports a failed read of the outreach log.
func NewLogReadFailedError(err error) *StandardError {
	return &StandardError{
		Code:        ErrCodeLogReadFailed,
		Message:     "Outreach log read failed",
		Details:     err.Error(),
		Recoverable: true,
		Timestamp:   time.Now().UTC(),
	}
}

// ==========================
// 3. Utility Functions
// ==========================

// IsCampaignFatal reports whether err must halt a running campaign.
// Unknown error types are treated as fatal.
func IsCampaignFatal(err error) bool {
	if err == nil {
		return false
	}
	if stdErr, ok := err.(*StandardError); ok {
		return !stdErr.Recoverable
	}
	return true
}

// CodeOf returns the ErrorCode of a StandardError, or "UNKNOWN_ERROR" otherwise.
func CodeOf(err error) ErrorCode {
	if stdErr, ok := err.(*StandardError); ok {
		return stdErr.Code
	}
	return "UNKNOWN_ERROR"
}
