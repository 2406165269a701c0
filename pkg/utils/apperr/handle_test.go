package apperr_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/slackinvite/pkg/utils/apperr"
)

func TestHandle(t *testing.T) {
	var buf bytes.Buffer
	ctx := ctxlog.With(context.Background(), slog.New(slog.NewJSONHandler(&buf, nil)))

	apperr.Handle(ctx, nil)
	gt.Equal(t, buf.Len(), 0)

	apperr.Handle(ctx, goerr.New("failed to store user"))
	gt.S(t, buf.String()).Contains("failed to store user")
	gt.S(t, buf.String()).Contains(`"level":"ERROR"`)
}
