package handle

import (
	"net/http"
	"strconv"
)

const defaultLanguage = "python"

// Solution serves both the daily-question and slug-addressed AI-solution
// endpoints; with no titleSlug path value the daily question is used.
func (h *Handle) Solution(w http.ResponseWriter, r *http.Request) {
	language := r.URL.Query().Get("language")
	if language == "" {
		language = defaultLanguage
	}
	includeCode := true
	if v := r.URL.Query().Get("includeCode"); v != "" {
		if parsed, err := strconv.ParseBool(v); err == nil {
			includeCode = parsed
		}
	}

	result, err := h.svc.Solution(r.Context(), r.PathValue("titleSlug"), language, includeCode)
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}
