package model_test

import (
	"testing"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/slackinvite/pkg/domain/model"
)

func TestInviteConfig_Validate(t *testing.T) {
	testCases := []struct {
		name      string
		config    model.InviteConfig
		wantErr   bool
		wantField string
	}{
		{
			name:   "Valid config",
			config: model.InviteConfig{Team: "acme", Token: "xyz"},
		},
		{
			name:      "Missing team",
			config:    model.InviteConfig{Token: "xyz"},
			wantErr:   true,
			wantField: "team",
		},
		{
			name:      "Missing token",
			config:    model.InviteConfig{Team: "acme"},
			wantErr:   true,
			wantField: "token",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.config.Validate()
			if !tc.wantErr {
				gt.NoError(t, err)
				gt.True(t, tc.config.IsConfigured())
				return
			}

			gt.Error(t, err)
			gt.B(t, goerr.HasTag(err, model.ErrTagInvalidConfig)).True()
			gt.V(t, goerr.Values(err)["field"]).Equal(tc.wantField)
			gt.False(t, tc.config.IsConfigured())
		})
	}
}

func TestInviteConfig_IsConfiguredNil(t *testing.T) {
	var cfg *model.InviteConfig
	gt.False(t, cfg.IsConfigured())
}
