package middleware

import (
	"net/http"
	"slices"
	"strings"

	"github.com/go-chi/cors"
)

var standardMethods = []string{
	http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch,
	http.MethodDelete, http.MethodHead, http.MethodOptions,
}

func corsOptions(methods []string) cors.Options {
	return cors.Options{
		AllowOriginFunc:  func(r *http.Request, origin string) bool { return true },
		AllowedMethods:   methods,
		AllowedHeaders:   []string{"*"},
		ExposedHeaders:   []string{RequestIDHeader},
		AllowCredentials: true,
		MaxAge:           600,
	}
}

// CORS allows every origin, method and header, with credentials. The
// request origin is reflected back since "*" is not valid with credentials.
// go-chi/cors matches methods against a fixed list, so a request for any
// other method is served by a policy extended with that method.
func CORS() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		standard := cors.Handler(corsOptions(standardMethods))(next)

		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			method := r.Method
			if r.Method == http.MethodOptions {
				if requested := r.Header.Get("Access-Control-Request-Method"); requested != "" {
					method = requested
				}
			}
			method = strings.ToUpper(method)

			if slices.Contains(standardMethods, method) {
				standard.ServeHTTP(w, r)
				return
			}

			methods := append(slices.Clone(standardMethods), method)
			cors.Handler(corsOptions(methods))(next).ServeHTTP(w, r)
		})
	}
}
