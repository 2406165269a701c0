package model

import (
	"net/url"

	"github.com/secmon-lab/slackinvite/pkg/domain/types"
)

// InviteRequest is the form body of a users.admin.invite call
type InviteRequest struct {
	Email     string
	Channels  string
	FirstName string
	Token     string
	SetActive string
	Attempts  string
}

// NewInviteRequest builds the request for inviting user into the configured team
func NewInviteRequest(cfg *InviteConfig, user *User) *InviteRequest {
	return &InviteRequest{
		Email:     user.Email,
		Channels:  "",
		FirstName: user.FirstName,
		Token:     cfg.Token,
		SetActive: "true",
		Attempts:  "1",
	}
}

// Values renders the request as form values
func (r *InviteRequest) Values() url.Values {
	return url.Values{
		"email":      {r.Email},
		"channels":   {r.Channels},
		"first_name": {r.FirstName},
		"token":      {r.Token},
		"set_active": {r.SetActive},
		"_attempts":  {r.Attempts},
	}
}

// InviteResponse is the decoded JSON body of a 200 response
type InviteResponse struct {
	OK    bool   `json:"ok"`
	Error string `json:"error,omitempty"`
}

// InviteResult represents the result of a single dispatch
type InviteResult struct {
	EventID types.EventID       `json:"event_id,omitempty"`
	UserID  types.UserID        `json:"user_id"`
	Outcome types.InviteOutcome `json:"outcome"`
	Error   string              `json:"error,omitempty"`
}

// NewInviteResult creates a result with the given outcome
func NewInviteResult(userID types.UserID, outcome types.InviteOutcome) *InviteResult {
	return &InviteResult{
		UserID:  userID,
		Outcome: outcome,
	}
}

// Fail records a failure outcome and its error string
func (r *InviteResult) Fail(outcome types.InviteOutcome, msg string) *InviteResult {
	r.Outcome = outcome
	r.Error = msg
	return r
}
