package http

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/slackinvite/pkg/domain/interfaces"
	"github.com/secmon-lab/slackinvite/pkg/domain/model"
	"github.com/secmon-lab/slackinvite/pkg/domain/types"
	"github.com/secmon-lab/slackinvite/pkg/utils/apperr"
)

// maxHookBodySize bounds the webhook payload
const maxHookBodySize = 64 * 1024

// userCreatedRequest is the payload the host posts after creating an account.
// Email and first name are optional; when present the record is stored so the
// invite dispatcher can resolve it.
type userCreatedRequest struct {
	UserID    types.UserID `json:"user_id"`
	Email     string       `json:"email,omitempty"`
	FirstName string       `json:"first_name,omitempty"`
}

// userCreatedResponse acknowledges the event. The invite outcome is never
// reported back: it must not affect account creation.
type userCreatedResponse struct {
	EventID types.EventID `json:"event_id"`
}

// HookHandler handles host platform webhooks
type HookHandler struct {
	repo          interfaces.Repository
	publisher     interfaces.EventPublisher
	asyncDispatch bool
}

// NewHookHandler creates a new hook handler
func NewHookHandler(repo interfaces.Repository, publisher interfaces.EventPublisher, asyncDispatch bool) *HookHandler {
	return &HookHandler{
		repo:          repo,
		publisher:     publisher,
		asyncDispatch: asyncDispatch,
	}
}

// HandleUserCreated handles POST /hooks/user-created
func (h *HookHandler) HandleUserCreated(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	body, err := io.ReadAll(io.LimitReader(r.Body, maxHookBodySize))
	if err != nil {
		writeError(w, r, goerr.Wrap(err, "failed to read request body"), http.StatusBadRequest)
		return
	}
	defer r.Body.Close()

	var req userCreatedRequest
	if err := json.Unmarshal(body, &req); err != nil {
		writeError(w, r, goerr.Wrap(err, "failed to parse request body"), http.StatusBadRequest)
		return
	}
	if req.UserID.IsZero() {
		writeError(w, r, goerr.New("user_id is required"), http.StatusBadRequest)
		return
	}

	if req.Email != "" {
		user := model.NewUser(req.UserID, req.Email, req.FirstName)
		if err := h.repo.SaveUser(ctx, user); err != nil {
			apperr.Handle(ctx, goerr.Wrap(err, "failed to store user", goerr.V("userID", req.UserID)))
			writeError(w, r, err, http.StatusInternalServerError)
			return
		}
	}

	if h.asyncDispatch {
		eventID := h.publisher.PublishUserCreatedAsync(ctx, req.UserID)
		writeJSON(w, r, http.StatusAccepted, userCreatedResponse{EventID: eventID})
		return
	}

	eventID := h.publisher.PublishUserCreated(ctx, req.UserID)
	writeJSON(w, r, http.StatusOK, userCreatedResponse{EventID: eventID})
}
