package router

import (
	"net/http"
	"strings"
	"unicode"

	"github.com/shandysiswandi/bitekit/internal/pkg/instrument"
	"github.com/shandysiswandi/bitekit/internal/pkg/uid"
)

const (
	// HeaderCorrelationID carries the request correlation id in and out.
	HeaderCorrelationID = "X-Correlation-ID"
	// HeaderRequestID is read when X-Correlation-ID is absent.
	HeaderRequestID = "X-Request-ID"

	maxCorrelationIDLen = 128
)

var correlationHeaders = []string{HeaderCorrelationID, HeaderRequestID}

// incomingCID returns the first usable id from the request headers. Values
// with non-printable characters are ignored so they never reach logs or the
// response header.
func incomingCID(h http.Header) string {
	for _, name := range correlationHeaders {
		v := strings.TrimSpace(h.Get(name))
		if v == "" || strings.IndexFunc(v, func(r rune) bool { return !unicode.IsPrint(r) }) >= 0 {
			continue
		}
		if len(v) > maxCorrelationIDLen {
			v = v[:maxCorrelationIDLen]
		}
		return v
	}
	return ""
}

func middlewareCorrelationID(gen uid.StringID) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cid := incomingCID(r.Header)
			if cid == "" && gen != nil {
				cid = gen.Generate()
			}

			if cid != "" {
				w.Header().Set(HeaderCorrelationID, cid)
				r = r.WithContext(instrument.SetCorrelationID(r.Context(), cid))
			}

			next.ServeHTTP(w, r)
		})
	}
}
