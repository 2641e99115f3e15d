package checkout

import (
	"errors"
	"strings"
)

// FailedPreConditionError sends the customer back to URL.
type FailedPreConditionError struct {
	URL      string
	Messages []string
}

func (e *FailedPreConditionError) Error() string {
	if len(e.Messages) == 0 {
		return "checkout pre-condition failed: redirect to " + e.URL
	}
	return "checkout pre-condition failed: " + strings.Join(e.Messages, "; ")
}

// PassedSkipConditionError sends the customer on to URL.
type PassedSkipConditionError struct {
	URL string
}

func (e *PassedSkipConditionError) Error() string {
	return "checkout step skipped: redirect to " + e.URL
}

// AsRedirect reports where a condition error sends the customer.
func AsRedirect(err error) (url string, messages []string, ok bool) {
	var failed *FailedPreConditionError
	if errors.As(err, &failed) {
		return failed.URL, failed.Messages, true
	}
	var skipped *PassedSkipConditionError
	if errors.As(err, &skipped) {
		return skipped.URL, nil, true
	}
	return "", nil, false
}
