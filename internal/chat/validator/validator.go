// Package validator provides input validation for chat requests. It
// enforces message and session id constraints and returns per-field error
// details. An empty message is valid: the pipeline answers it with a
// prompt rather than an error.
package validator

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/1Percent-hub/ScholarHub/internal/chat"
	apperrors "github.com/1Percent-hub/ScholarHub/pkg/errors"
)

const (
	// DefaultMaxMessageLength bounds the message when no limit is
	// configured.
	DefaultMaxMessageLength = 2000

	maxSessionIDLength = 128
)

// ValidationError holds per-field validation failure messages. It wraps
// the closest matching sentinel so HTTP boundaries can map it with
// errors.Is.
type ValidationError struct {
	Fields   map[string]string
	sentinel error
}

func (e *ValidationError) Error() string {
	var parts []string
	for field, msg := range e.Fields {
		parts = append(parts, fmt.Sprintf("%s:%s", field, msg))
	}
	return strings.Join(parts, "; ")
}

func (e *ValidationError) Unwrap() error {
	return e.sentinel
}

// ValidateChatRequest checks that the message and session id meet the
// length and charset constraints and returns a ValidationError if not.
// maxMessageLen <= 0 selects the default.
func ValidateChatRequest(req *chat.ChatRequest, maxMessageLen int) error {
	if maxMessageLen <= 0 {
		maxMessageLen = DefaultMaxMessageLength
	}
	errs := make(map[string]string)
	sentinel := apperrors.ErrInvalidInput

	if !utf8.ValidString(req.Message) {
		errs["message"] = "message must be valid UTF-8"
	} else if utf8.RuneCountInString(req.Message) > maxMessageLen {
		errs["message"] = fmt.Sprintf("message must be at most %d characters", maxMessageLen)
		sentinel = apperrors.ErrMessageTooLong
	} else if hasControl(req.Message) {
		errs["message"] = "message must not contain control characters"
	}

	if id := req.SessionID; id != "" {
		if len(id) > maxSessionIDLength {
			errs["session_id"] = fmt.Sprintf("session id must be at most %d characters", maxSessionIDLength)
		} else if !validSessionID(id) {
			errs["session_id"] = "session id may only contain letters, digits, '-', '_', and '.'"
		}
	}

	if len(errs) > 0 {
		return &ValidationError{Fields: errs, sentinel: sentinel}
	}
	return nil
}

// hasControl reports whether s contains a control character. Newline and
// tab are allowed; pasted text often carries them.
func hasControl(s string) bool {
	for _, r := range s {
		if r == '\n' || r == '\t' || r == '\r' {
			continue
		}
		if unicode.IsControl(r) {
			return true
		}
	}
	return false
}

func validSessionID(s string) bool {
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9',
			r == '-', r == '_', r == '.':
		default:
			return false
		}
	}
	return true
}
