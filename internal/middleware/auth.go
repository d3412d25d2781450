package middleware

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/hirebase/hirebase-go/internal/crypto"
	"github.com/hirebase/hirebase-go/internal/model"
)

type contextKey string

const subjectKey contextKey = "subject"

// SessionCookie is the name of the HTTP-only cookie carrying the session
// token. The client never reads its value; the browser resends it on
// credentialed requests.
const SessionCookie = "jwt"

// SessionAuth returns middleware that validates the session token from the
// jwt cookie and puts the subject email into the request context. A missing,
// malformed or expired token means the request is unauthenticated; the
// response does not say which.
func SessionAuth(secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(SessionCookie)
			if err != nil || cookie.Value == "" {
				writeUnauthenticated(w)
				return
			}

			email, err := crypto.ValidateToken(cookie.Value, secret)
			if err != nil {
				writeUnauthenticated(w)
				return
			}

			ctx := context.WithValue(r.Context(), subjectKey, email)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// SubjectFromContext extracts the authenticated user's email from the
// request context.
func SubjectFromContext(ctx context.Context) (string, bool) {
	email, ok := ctx.Value(subjectKey).(string)
	return email, ok
}

func writeUnauthenticated(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	json.NewEncoder(w).Encode(model.ErrorEnvelope{
		Error: model.ErrorBody{ErrorCode: -1, ErrorMsg: "unauthenticated"},
	})
}
