package http

import (
	"net/http"

	"github.com/MKhiriev/go-shop-sync/internal/logger"
	"github.com/MKhiriev/go-shop-sync/internal/utils"
)

// auth is an HTTP middleware that enforces bearer token authentication.
//
// It parses the "Authorization: Bearer <token>" header, validates the token
// via [service.AuthService.ParseToken] and stores the token's owner in the
// request context with [utils.WithOwner]. The request logger is enriched with
// the owner as well.
//
// The middleware answers 401 Unauthorized when the header is absent or
// malformed, when the token is invalid or expired, or when it carries no
// subject.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			log.Err(ErrEmptyAuthorizationHeader).Send()
			writeError(w, http.StatusUnauthorized, ErrEmptyAuthorizationHeader.Error())
			return
		}

		tokenString, err := utils.ParseBearerToken(authHeader)
		if err != nil {
			log.Err(err).Send()
			writeError(w, http.StatusUnauthorized, ErrInvalidAuthorizationHeader.Error())
			return
		}

		ctx := r.Context()
		token, err := h.services.AuthService.ParseToken(ctx, tokenString)
		if err != nil {
			log.Err(err).Msg("error occurred during parsing token")
			writeServiceError(w, err)
			return
		}

		owner, err := token.GetOwner()
		if err != nil {
			log.Err(err).Msg("token has no owner")
			writeError(w, http.StatusUnauthorized, http.StatusText(http.StatusUnauthorized))
			return
		}

		ownerLog := log.With().Str("owner", owner).Logger()
		ctx = ownerLog.WithContext(utils.WithOwner(ctx, owner))

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
