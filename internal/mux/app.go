package mux

import "net/http"

type onboardedResponse struct {
	Onboarded bool `json:"onboarded"`
}

func (m *Mux) getAppOnboarded() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		onboarded, err := m.store.Onboarded(r.Context())
		if err != nil {
			writeJSONError(w, http.StatusInternalServerError, err)
			return
		}

		writeJSON(w, http.StatusOK, onboardedResponse{Onboarded: onboarded})
	}
}

func (m *Mux) postAppOnboarded() http.HandlerFunc {
	type payload struct {
		Onboarded bool `json:"onboarded"`
	}

	return func(w http.ResponseWriter, r *http.Request) {
		var p payload
		if !decodeRequest(w, r, &p) {
			return
		}

		if err := m.store.SetOnboarded(r.Context(), p.Onboarded); err != nil {
			writeJSONError(w, http.StatusInternalServerError, err)
			return
		}

		writeJSON(w, http.StatusOK, onboardedResponse{Onboarded: p.Onboarded})
	}
}
