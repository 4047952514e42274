package middleware

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/frahmantamala/org-directory/pkg/logger"
)

const traceHeader = "X-Trace-ID"

// RequestID tags every request with a trace id, honouring one the caller
// already sent. The id rides the context logger so audit entries and log
// lines from the same request correlate.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		traceID := r.Header.Get(traceHeader)
		if traceID == "" {
			traceID = uuid.NewString()
		}

		ctx := logger.With(r.Context(), "traceID", traceID)
		w.Header().Set(traceHeader, traceID)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
