package middleware

import (
	"log"
	"net/http"
	"strings"
	"time"
)

// statusRecorder captures the status code and response size written by the
// downstream handler.
type statusRecorder struct {
	http.ResponseWriter
	status int
	bytes  int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

func (r *statusRecorder) Write(p []byte) (int, error) {
	n, err := r.ResponseWriter.Write(p)
	r.bytes += n
	return n, err
}

// Logger logs one line per request: method, path, status, response size and
// duration. Method and path are stripped of CR/LF so request data cannot
// forge extra log lines.
func Logger(next http.Handler) http.Handler {
	sanitize := strings.NewReplacer("\n", "", "\r", "").Replace

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(rec, r)

		log.Printf(
			"%s %s %d %dB %s",
			sanitize(r.Method),
			sanitize(r.URL.Path),
			rec.status,
			rec.bytes,
			time.Since(start),
		)
	})
}
