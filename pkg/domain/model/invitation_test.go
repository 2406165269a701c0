package model_test

import (
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/slackinvite/pkg/domain/model"
	"github.com/secmon-lab/slackinvite/pkg/domain/types"
)

func TestNewInviteRequest(t *testing.T) {
	cfg := &model.InviteConfig{Team: "acme", Token: "xyz"}
	user := model.NewUser(42, "a@b.com", "Ann")

	req := model.NewInviteRequest(cfg, user)
	values := req.Values()

	gt.Equal(t, 6, len(values))
	gt.Equal(t, "a@b.com", values.Get("email"))
	gt.Equal(t, "", values.Get("channels"))
	gt.True(t, values.Has("channels"))
	gt.Equal(t, "Ann", values.Get("first_name"))
	gt.Equal(t, "xyz", values.Get("token"))
	gt.Equal(t, "true", values.Get("set_active"))
	gt.Equal(t, "1", values.Get("_attempts"))
}

func TestNewInviteRequest_EmptyFirstName(t *testing.T) {
	cfg := &model.InviteConfig{Team: "acme", Token: "xyz"}
	user := model.NewUser(7, "b@c.com", "")

	values := model.NewInviteRequest(cfg, user).Values()
	gt.True(t, values.Has("first_name"))
	gt.Equal(t, "", values.Get("first_name"))
}

func TestUser(t *testing.T) {
	t.Run("HasEmail", func(t *testing.T) {
		gt.True(t, model.NewUser(1, "x@y.z", "").HasEmail())
		gt.False(t, model.NewUser(1, "", "X").HasEmail())

		var nilUser *model.User
		gt.False(t, nilUser.HasEmail())
	})

	t.Run("Validate rejects zero ID", func(t *testing.T) {
		gt.Error(t, model.NewUser(0, "x@y.z", "").Validate())
		gt.NoError(t, model.NewUser(3, "x@y.z", "").Validate())
	})
}

func TestInviteResult_Fail(t *testing.T) {
	result := model.NewInviteResult(42, types.InviteOutcomeSent)
	result.Fail(types.InviteOutcomeRejected, "already_invited")

	gt.Equal(t, types.InviteOutcomeRejected, result.Outcome)
	gt.Equal(t, "already_invited", result.Error)
	gt.Equal(t, types.UserID(42), result.UserID)
}
