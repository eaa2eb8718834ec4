package middleware

import "net/http"

type corsPolicy map[string]struct{}

// match returns the Access-Control-Allow-Origin value for origin. An empty
// policy allows every origin.
func (p corsPolicy) match(origin string) (string, bool) {
	if len(p) == 0 {
		if origin == "" {
			return "*", true
		}
		return origin, true
	}
	if _, ok := p[origin]; ok {
		return origin, true
	}
	return "", false
}

// CORS tags responses for the configured origins and answers preflights itself.
// Routes must accept OPTIONS for the preflight to reach it.
func CORS(allow []string) func(http.Handler) http.Handler {
	policy := corsPolicy{}
	for _, o := range allow {
		policy[o] = struct{}{}
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			h := w.Header()
			origin, ok := policy.match(r.Header.Get("Origin"))
			if ok {
				h.Set("Access-Control-Allow-Origin", origin)
				h.Add("Vary", "Origin")
			}
			if r.Method != http.MethodOptions {
				next.ServeHTTP(w, r)
				return
			}
			if !ok {
				w.WriteHeader(http.StatusForbidden)
				return
			}
			h.Set("Access-Control-Allow-Methods", "GET, OPTIONS")
			h.Set("Access-Control-Allow-Headers", "Content-Type")
			h.Set("Access-Control-Max-Age", "600")
			w.WriteHeader(http.StatusNoContent)
		})
	}
}
