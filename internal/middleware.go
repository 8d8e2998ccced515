package internal

import (
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
)

// requestLogger logs one structured line per request.
func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rw := &statusRecorder{ResponseWriter: w, code: http.StatusOK}

		next.ServeHTTP(rw, r)

		entry := logrus.WithFields(logrus.Fields{
			"method":   r.Method,
			"path":     r.URL.Path,
			"status":   rw.code,
			"duration": time.Since(start).String(),
			"remote":   r.RemoteAddr,
		})
		if rw.code >= 500 {
			entry.Error("request failed")
		} else {
			entry.Info("request")
		}
	})
}
