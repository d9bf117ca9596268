package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
)

var heartbeatInterval = 20 * time.Second

// streamEvents writes every value of a subscription as a server-sent event until the client goes away.
func streamEvents[T any](w http.ResponseWriter, r *http.Request, event string, subscribe func() (<-chan T, func())) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		writeError(w, http.StatusInternalServerError, "streaming unsupported")
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache, no-store, must-revalidate")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("X-Accel-Buffering", "no")
	w.WriteHeader(http.StatusOK)
	flusher.Flush()

	updates, cancel := subscribe()
	defer cancel()

	// send a comment heartbeat so proxies keep the connection
	heartbeat := time.NewTicker(heartbeatInterval)
	defer heartbeat.Stop()

	for {
		select {
		case <-r.Context().Done():
			return
		case <-heartbeat.C:
			fmt.Fprint(w, ": ping\n\n")
			flusher.Flush()
		case v, open := <-updates:
			if !open {
				return
			}
			payload, err := json.Marshal(v)
			if err != nil {
				logrus.WithError(err).WithField("event", event).Error("Failed to encode stream event")
				continue
			}
			fmt.Fprintf(w, "event: %s\n", event)
			fmt.Fprintf(w, "data: %s\n\n", payload)
			flusher.Flush()
		}
	}
}
