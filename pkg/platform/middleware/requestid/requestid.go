package requestid

import (
	"net/http"
	"strings"

	"github.com/google/uuid"

	"loanmap/pkg/requestcontext"
)

// Header carries the correlation ID in both directions.
const Header = "X-Request-ID"

// maxInboundLength bounds caller-supplied IDs so they cannot bloat logs.
const maxInboundLength = 64

// Middleware reuses a caller-supplied X-Request-ID or mints a UUID, stores it
// in the context and echoes it on the response. Apply it early in the chain.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := FromRequest(r)
		w.Header().Set(Header, id)
		ctx := requestcontext.WithRequestID(r.Context(), id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// FromRequest returns the inbound request ID or a new one.
func FromRequest(r *http.Request) string {
	if v := strings.TrimSpace(r.Header.Get(Header)); v != "" && len(v) <= maxInboundLength {
		return v
	}
	return uuid.NewString()
}
