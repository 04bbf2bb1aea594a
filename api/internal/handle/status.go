package handle

import (
	"errors"
	"net/http"

	"go.uber.org/zap"

	"leetrelay/api/internal/leetcode"
)

// UserStatus always answers 200 with a status body when the daily question
// resolves; only a missing daily question (404) or a daily-fetch failure
// (500) surface as errors, as plain text.
func (h *Handle) UserStatus(w http.ResponseWriter, r *http.Request) {
	username := r.PathValue("username")

	status, err := h.svc.UserStatus(r.Context(), username)
	if err != nil {
		if errors.Is(err, leetcode.ErrNotFound) {
			writeText(w, http.StatusNotFound, "Today's daily question not found")
			return
		}
		h.log.Error("user status check failed", zap.String("username", username), zap.Error(err))
		writeText(w, http.StatusInternalServerError, "Error checking user status")
		return
	}
	writeJSON(w, http.StatusOK, status)
}
