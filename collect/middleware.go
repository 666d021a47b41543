package collect

import (
	"net/http"
	"time"
)

// Middleware wraps a handler with the request timing hook. Each request
// captures its own start time, so overlapping in-flight requests never
// cross-contaminate. The request is recorded exactly once, when the handler
// returns; a status of 400 or above counts as an error.
//
// A handler that panics is not recorded at all — the panic is counted as an
// uncaught fault and re-raised, leaving the server's own recovery behavior
// untouched. This mirrors a connection that aborts before a finish signal:
// a documented undercount, not a silent fix.
func (c *Collector) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		defer func() {
			if v := recover(); v != nil {
				c.countPanic()
				panic(v)
			}
			c.observeRequest(rec.status, time.Since(start))
		}()

		next.ServeHTTP(rec, r)
	})
}

// statusRecorder captures the status code written by the handler. Handlers
// that never call WriteHeader implicitly send 200.
type statusRecorder struct {
	http.ResponseWriter
	status      int
	wroteHeader bool
}

func (r *statusRecorder) WriteHeader(status int) {
	if !r.wroteHeader {
		r.status = status
		r.wroteHeader = true
	}
	r.ResponseWriter.WriteHeader(status)
}

func (r *statusRecorder) Write(b []byte) (int, error) {
	r.wroteHeader = true
	return r.ResponseWriter.Write(b)
}

// Unwrap exposes the underlying writer to http.ResponseController.
func (r *statusRecorder) Unwrap() http.ResponseWriter {
	return r.ResponseWriter
}
