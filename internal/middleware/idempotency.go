package middleware

import (
	"bytes"
	"net/http"

	"github.com/SergeyBogomolovv/shop-order-service/pkg/utils"
)

const HeaderIdempotencyKey = "Idempotency-Key"

type CachedResponse struct {
	Status int
	Body   []byte
}

type ResponseCache interface {
	Get(key string) (CachedResponse, bool)
	Set(key string, value CachedResponse)
}

// Idempotency replays the stored response for a repeated Idempotency-Key.
// Only 2xx responses are stored, so a rejected request can be retried.
// Keys are scoped by caller, two users never share an entry.
func Idempotency(cache ResponseCache) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := r.Header.Get(HeaderIdempotencyKey)
			if key == "" {
				next.ServeHTTP(w, r)
				return
			}
			if len(key) > 255 {
				utils.WriteError(w, "idempotency key is too long", http.StatusBadRequest)
				return
			}

			if caller, ok := CallerFromContext(r.Context()); ok {
				key = caller.ID.String() + ":" + key
			}

			if cached, ok := cache.Get(key); ok {
				idempotentReplays.Inc()
				w.Header().Set("Content-Type", "application/json")
				w.Header().Set("Idempotent-Replayed", "true")
				w.WriteHeader(cached.Status)
				w.Write(cached.Body)
				return
			}

			rec := &recordingWriter{responseWriter: wrapResponseWriter(w)}
			next.ServeHTTP(rec, r)

			if rec.status >= 200 && rec.status < 300 {
				cache.Set(key, CachedResponse{Status: rec.status, Body: rec.body.Bytes()})
			}
		})
	}
}

type recordingWriter struct {
	*responseWriter
	body bytes.Buffer
}

func (rw *recordingWriter) Write(b []byte) (int, error) {
	rw.body.Write(b)
	return rw.responseWriter.Write(b)
}
