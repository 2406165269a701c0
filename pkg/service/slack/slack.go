package slack

import (
	"context"
	"encoding/json"
	"fmt"
	"html"
	"io"
	"net/http"
	"strings"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/slackinvite/pkg/domain/interfaces"
	"github.com/secmon-lab/slackinvite/pkg/domain/model"
	"github.com/secmon-lab/slackinvite/pkg/domain/types"
	"github.com/slack-go/slack"
)

const (
	// DefaultBaseURLFormat is the team web URL; %s is replaced by the team name
	DefaultBaseURLFormat = "https://%s.slack.com"

	invitePath = "/api/users.admin.invite?t=1"

	// maxResponseSize bounds how much of a response body is read
	maxResponseSize = 1 << 20
)

// Admin sends team administration requests on behalf of an invite token
type Admin struct {
	httpClient    *http.Client
	baseURLFormat string
}

var _ interfaces.SlackAdmin = (*Admin)(nil)

// Option configures Admin
type Option func(*Admin)

// WithHTTPClient replaces the HTTP client
func WithHTTPClient(client *http.Client) Option {
	return func(a *Admin) {
		a.httpClient = client
	}
}

// WithBaseURLFormat replaces the team URL format. It must contain one %s.
func WithBaseURLFormat(format string) Option {
	return func(a *Admin) {
		a.baseURLFormat = format
	}
}

// NewAdmin creates a new Slack admin client. No request timeout is set;
// callers bound requests through the context.
func NewAdmin(opts ...Option) *Admin {
	a := &Admin{
		httpClient:    &http.Client{},
		baseURLFormat: DefaultBaseURLFormat,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// TeamURL returns the web URL of team, with the team name HTML-escaped
func (a *Admin) TeamURL(team types.TeamName) string {
	return fmt.Sprintf(a.baseURLFormat, html.EscapeString(team.String()))
}

// InviteURL returns the users.admin.invite endpoint of team
func (a *Admin) InviteURL(team types.TeamName) string {
	return a.TeamURL(team) + invitePath
}

// InviteToTeam posts an invite request for req.Email into team
func (a *Admin) InviteToTeam(ctx context.Context, team types.TeamName, req *model.InviteRequest) (*model.InviteResponse, error) {
	endpoint := a.InviteURL(team)

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(req.Values().Encode()))
	if err != nil {
		return nil, goerr.Wrap(err, "failed to build invite request",
			goerr.V("team", team),
			goerr.T(model.ErrTagTransport))
	}
	httpReq.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := a.httpClient.Do(httpReq)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to send invite request",
			goerr.V("team", team),
			goerr.T(model.ErrTagTransport))
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read invite response",
			goerr.V("team", team),
			goerr.T(model.ErrTagTransport))
	}

	if resp.StatusCode != http.StatusOK {
		return nil, goerr.New("unexpected status code from Slack",
			goerr.V("team", team),
			goerr.V("status", resp.StatusCode),
			goerr.V("body", truncate(string(body), 256)),
			goerr.T(model.ErrTagUnexpectedStatus))
	}

	var slackResp slack.SlackResponse
	if err := json.Unmarshal(body, &slackResp); err != nil {
		// Without an error field there is nothing to report
		ctxlog.From(ctx).Warn("Undecodable invite response body",
			"team", team,
			"error", err,
		)
		return &model.InviteResponse{}, nil
	}

	return &model.InviteResponse{
		OK:    slackResp.Ok,
		Error: slackResp.Error,
	}, nil
}

// VerifyToken calls auth.test against the configured team with its token
func (a *Admin) VerifyToken(ctx context.Context, cfg *model.InviteConfig) (*slack.AuthTestResponse, error) {
	client := slack.New(cfg.Token,
		slack.OptionAPIURL(a.TeamURL(cfg.Team)+"/api/"),
		slack.OptionHTTPClient(a.httpClient),
	)

	resp, err := client.AuthTestContext(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to authenticate with Slack",
			goerr.V("team", cfg.Team))
	}
	return resp, nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
