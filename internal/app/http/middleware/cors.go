package middleware

import (
	"net/http"
	"strings"

	"github.com/go-chi/cors"
)

// CORS allows the comma separated origins in allow ("*" for any).
func CORS(allow string) func(http.Handler) http.Handler {
	var origins []string
	for _, o := range strings.Split(allow, ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	return cors.Handler(cors.Options{
		AllowedOrigins:     origins,
		AllowedMethods:     []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders:     []string{"Accept", "Content-Type", "X-Internal-Token"},
		ExposedHeaders:     []string{"Content-Disposition"},
		MaxAge:             300,
		OptionsPassthrough: false,
	})
}
