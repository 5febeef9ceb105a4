package httpapi

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"crosspay.org/internal/auth"
)

// handleEvents streams payment lifecycle events over SSE. Employee only;
// the feed backs the review queue so it sees every owner's payments.
func (a *API) handleEvents(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w, r, http.MethodGet)
		return
	}
	identity, ok := identityFromRequest(w, r)
	if !ok {
		return
	}
	if err := auth.Authorize(identity.Role, auth.PermPaymentEvents); err != nil {
		handleServiceError(w, r, err)
		return
	}
	if a.stream == nil {
		writeError(w, r, http.StatusNotFound, "event stream disabled")
		return
	}

	flusher, ok := w.(http.Flusher)
	if !ok {
		writeError(w, r, http.StatusInternalServerError, "streaming unsupported")
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)

	fmt.Fprint(w, ": connected\n\n")
	flusher.Flush()

	events := a.stream.Subscribe(r.Context())
	heartbeat := time.NewTicker(25 * time.Second)
	defer heartbeat.Stop()

	for {
		select {
		case evt, open := <-events:
			if !open {
				return
			}
			data, err := json.Marshal(evt)
			if err != nil {
				continue
			}
			fmt.Fprintf(w, "event: payment\ndata: %s\n\n", data)
			flusher.Flush()
		case <-heartbeat.C:
			fmt.Fprint(w, ": keep-alive\n\n")
			flusher.Flush()
		case <-r.Context().Done():
			return
		}
	}
}
