package middleware

import (
	"fmt"
	"net/http"
)

// Recovery catches handler panics and forwards them to the supplied error
// responder, so the client still receives exactly one well-formed response.
func Recovery(onError func(http.ResponseWriter, *http.Request, error)) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					err, ok := rec.(error)
					if !ok {
						err = fmt.Errorf("panic: %v", rec)
					}
					onError(w, r, err)
				}
			}()

			next.ServeHTTP(w, r)
		})
	}
}
