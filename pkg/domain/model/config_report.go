package model

import "github.com/secmon-lab/slackinvite/pkg/domain/types"

// ConfigReport summarizes a team configuration check
type ConfigReport struct {
	Team         types.TeamName `json:"team"`
	Configured   bool           `json:"configured"`
	Verified     bool           `json:"verified"`
	RemoteTeam   string         `json:"remote_team,omitempty"`
	RemoteTeamID string         `json:"remote_team_id,omitempty"`
	RemoteURL    string         `json:"remote_url,omitempty"`
	RemoteUser   string         `json:"remote_user,omitempty"`
}
