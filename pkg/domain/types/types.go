package types

import (
	"strconv"

	"github.com/google/uuid"
	"github.com/m-mizutani/goerr/v2"
)

// UserID represents a host platform user identifier. Zero means no user.
type UserID int64

// String returns the string representation
func (id UserID) String() string {
	return strconv.FormatInt(int64(id), 10)
}

// IsZero reports whether the ID is absent
func (id UserID) IsZero() bool {
	return id <= 0
}

// ParseUserID parses a decimal user identifier
func ParseUserID(s string) (UserID, error) {
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, goerr.Wrap(err, "invalid user ID", goerr.V("value", s))
	}
	return UserID(v), nil
}

// TeamName is the Slack workspace identifier used as subdomain
type TeamName string

// String returns the string representation
func (n TeamName) String() string {
	return string(n)
}

// EventID identifies a single published user-created event
type EventID string

// String returns the string representation
func (id EventID) String() string {
	return string(id)
}

// NewEventID creates a new EventID
func NewEventID() EventID {
	return EventID(uuid.New().String())
}

// InviteOutcome represents how a dispatch attempt ended
type InviteOutcome string

const (
	InviteOutcomeSkippedNoUser        InviteOutcome = "skipped_no_user"
	InviteOutcomeSkippedNotConfigured InviteOutcome = "skipped_not_configured"
	InviteOutcomeSkippedUserNotFound  InviteOutcome = "skipped_user_not_found"
	InviteOutcomeSkippedNoEmail       InviteOutcome = "skipped_no_email"
	InviteOutcomeInvalidConfig        InviteOutcome = "invalid_config"
	InviteOutcomeLookupFailure        InviteOutcome = "lookup_failure"
	InviteOutcomeSent                 InviteOutcome = "sent"
	InviteOutcomeRejected             InviteOutcome = "rejected"
	InviteOutcomeUnexpectedStatus     InviteOutcome = "unexpected_status"
	InviteOutcomeTransportFailure     InviteOutcome = "transport_failure"
)

// String returns the string representation of the outcome
func (o InviteOutcome) String() string {
	return string(o)
}

// IsValid checks if the outcome is a known value
func (o InviteOutcome) IsValid() bool {
	switch o {
	case InviteOutcomeSkippedNoUser, InviteOutcomeSkippedNotConfigured,
		InviteOutcomeSkippedUserNotFound, InviteOutcomeSkippedNoEmail,
		InviteOutcomeInvalidConfig, InviteOutcomeLookupFailure, InviteOutcomeSent,
		InviteOutcomeRejected, InviteOutcomeUnexpectedStatus, InviteOutcomeTransportFailure:
		return true
	default:
		return false
	}
}

// IsSkipped reports whether no request was sent because a precondition was not met
func (o InviteOutcome) IsSkipped() bool {
	switch o {
	case InviteOutcomeSkippedNoUser, InviteOutcomeSkippedNotConfigured,
		InviteOutcomeSkippedUserNotFound, InviteOutcomeSkippedNoEmail:
		return true
	default:
		return false
	}
}

// IsFailure reports whether the outcome carries an error
func (o InviteOutcome) IsFailure() bool {
	switch o {
	case InviteOutcomeInvalidConfig, InviteOutcomeLookupFailure, InviteOutcomeRejected,
		InviteOutcomeUnexpectedStatus, InviteOutcomeTransportFailure:
		return true
	default:
		return false
	}
}
