package auth

import (
	"net/http"
	"strings"

	"tokenledger/core"
	"tokenledger/handler/request"
	"tokenledger/service/authz"

	"github.com/fox-one/pkg/logger"
)

const (
	// ActorHeader account acting on the request
	ActorHeader = "X-Ledger-Actor"
	// PermissionHeader permission of the actor, active by default
	PermissionHeader = "X-Ledger-Permission"
)

// HandleAuthentication attach the caller's authorization and key to the request context
func HandleAuthentication() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		fn := func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			actor := strings.TrimSpace(r.Header.Get(ActorHeader))
			if actor == "" {
				next.ServeHTTP(w, r)
				return
			}

			auth := core.NewAuthorization(actor)
			if p := strings.TrimSpace(r.Header.Get(PermissionHeader)); p != "" {
				auth.Permission = p
			}

			if key := getBearerToken(r); key != "" {
				ctx = authz.WithCredential(ctx, authz.Credential{
					Account:    auth.Actor,
					Permission: auth.Permission,
					Key:        key,
				})
			}

			log := logger.FromContext(ctx).WithField("actor", auth.String())
			ctx = logger.WithContext(ctx, log)

			next.ServeHTTP(w, r.WithContext(request.NewContext(ctx).WithAuthorization(auth)))
		}

		return http.HandlerFunc(fn)
	}
}

func getBearerToken(r *http.Request) string {
	s := r.Header.Get("Authorization")
	if !strings.HasPrefix(s, "Bearer ") {
		return ""
	}

	return strings.TrimPrefix(s, "Bearer ")
}
