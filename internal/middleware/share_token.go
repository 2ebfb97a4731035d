package middleware

import (
	"context"
	"net/http"

	"xsim-analytics/observatory/internal/common"
	"xsim-analytics/observatory/internal/logging"
)

// ShareTokenKey is the context key under which the validated share token
// claims are stored.
const ShareTokenKey contextKey = "share_token"

// ShareTokenMiddleware guards shared-report routes. The token rides in the
// "token" query parameter so links can be pasted into a browser; a valid
// token is spent on first use.
func ShareTokenMiddleware(signer *common.URLSignerService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tokenString := r.URL.Query().Get("token")
			if tokenString == "" {
				http.Error(w, "Missing share token", http.StatusUnauthorized)
				return
			}

			claims, err := signer.ValidateToken(tokenString)
			if err != nil {
				logging.Warn("rejected share token", "error", err)
				http.Error(w, "Invalid or expired share token", http.StatusUnauthorized)
				return
			}

			signer.MarkTokenAsUsed(claims.TokenID)

			ctx := context.WithValue(r.Context(), ShareTokenKey, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// ShareTokenFromContext returns the validated claims, if any.
func ShareTokenFromContext(ctx context.Context) (*common.ShareToken, bool) {
	claims, ok := ctx.Value(ShareTokenKey).(*common.ShareToken)
	return claims, ok
}
