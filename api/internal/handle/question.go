package handle

import "net/http"

func (h *Handle) Daily(w http.ResponseWriter, r *http.Request) {
	daily, err := h.svc.Daily(r.Context())
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, daily)
}

func (h *Handle) Detail(w http.ResponseWriter, r *http.Request) {
	detail, err := h.svc.Detail(r.Context(), r.PathValue("titleSlug"))
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, detail)
}

func (h *Handle) DailyWithDetail(w http.ResponseWriter, r *http.Request) {
	detail, err := h.svc.DailyDetail(r.Context())
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, detail)
}

func (h *Handle) DailyWithDetailForLanguage(w http.ResponseWriter, r *http.Request) {
	detail, err := h.svc.DailyDetailForLanguage(r.Context(), r.PathValue("language"))
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, detail)
}

func (h *Handle) Health(w http.ResponseWriter, r *http.Request) {
	writeText(w, http.StatusOK, "Service is running")
}

func (h *Handle) TestLeetCode(w http.ResponseWriter, r *http.Request) {
	if _, err := h.svc.Daily(r.Context()); err != nil {
		writeText(w, http.StatusInternalServerError, "LeetCode connection failed: "+err.Error())
		return
	}
	writeText(w, http.StatusOK, "LeetCode connection successful")
}
