package middleware

import (
	"context"
	"net/http"

	"shareit/shared/constant"
	"shareit/shared/failure"
	"shareit/transport/http/response"
)

func withUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, constant.ContextKeyUserID, userID)
}

func writeMissingSharer(w http.ResponseWriter) {
	response.WithError(w, failure.MissingSharerHeader)
}
