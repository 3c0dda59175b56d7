package middleware

import (
	"context"
	"net/http"

	"go-hospital-admin/internal/infrastructure/cache"
	"go-hospital-admin/pkg/response"

	"github.com/sirupsen/logrus"
)

const (
	IdempotencyKeyHeader = "Idempotency-Key"
	ReplayedHeader       = "Idempotent-Replayed"
)

// IdempotencyMiddleware replays the first successful response for a repeated
// Idempotency-Key. Requests without the header are passed through untouched.
type IdempotencyMiddleware struct {
	store cache.IdempotencyStore
	log   *logrus.Logger
}

func NewIdempotencyMiddleware(store cache.IdempotencyStore, log *logrus.Logger) *IdempotencyMiddleware {
	return &IdempotencyMiddleware{store: store, log: log}
}

func (m *IdempotencyMiddleware) Handle(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get(IdempotencyKeyHeader)
		if m == nil || m.store == nil || header == "" || !isMutation(r.Method) {
			next.ServeHTTP(w, r)
			return
		}

		ctx := r.Context()
		key := idempotencyKey(GetActorFromContext(ctx), r.Method, r.URL.Path, header)

		stored, err := m.store.Load(ctx, key)
		if err != nil {
			m.log.Warnf("Failed to load idempotent response: %+v", err)
			next.ServeHTTP(w, r)
			return
		}
		if stored != nil {
			replay(w, stored)
			return
		}

		reserved, err := m.store.Reserve(ctx, key)
		if err != nil {
			m.log.Warnf("Failed to reserve idempotency key: %+v", err)
			next.ServeHTTP(w, r)
			return
		}
		if !reserved {
			response.Conflict(w, "A request with this idempotency key is already in progress")
			return
		}

		rec := newStatusRecorder(w, true)
		next.ServeHTTP(rec, r)

		// The key must leave the pending state even if the client went away.
		ctx = context.WithoutCancel(ctx)

		if rec.status >= 200 && rec.status < 300 {
			saved := cache.StoredResponse{
				Status:      rec.status,
				ContentType: rec.Header().Get("Content-Type"),
				Body:        rec.body.Bytes(),
			}
			if err := m.store.Save(ctx, key, saved); err != nil {
				m.log.Warnf("Failed to save idempotent response: %+v", err)
			}
			return
		}

		if err := m.store.Release(ctx, key); err != nil {
			m.log.Warnf("Failed to release idempotency key: %+v", err)
		}
	})
}

func replay(w http.ResponseWriter, stored *cache.StoredResponse) {
	if stored.ContentType != "" {
		w.Header().Set("Content-Type", stored.ContentType)
	}
	w.Header().Set(ReplayedHeader, "true")
	w.WriteHeader(stored.Status)
	w.Write(stored.Body)
}

func isMutation(method string) bool {
	switch method {
	case http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete:
		return true
	}
	return false
}

// idempotencyKey scopes a client key to the operator and the route it was sent to.
func idempotencyKey(actor, method, path, header string) string {
	return actor + ":" + method + ":" + path + ":" + header
}
