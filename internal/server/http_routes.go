package server

import (
	"net/http"
	"strings"

	"resumeforge/internal/observability"
)

// setupRoutes builds the mux. Processing endpoints sit behind the full
// middleware chain: rate limit, then auth, then request size limit.
// Health and stats stay open so probes work without credentials.
func (s *Server) setupRoutes(om *observability.ObservabilityManager) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("/health", s.healthHandler)
	mux.HandleFunc("/stats", s.statsHandler)

	rateLimit := s.createRateLimitMiddleware(om)
	limitSize := s.requestSizeLimitMiddleware()

	processing := map[string]http.HandlerFunc{
		"/parse":   s.createParseHandler(om),
		"/check":   s.createCheckHandler(om),
		"/export":  s.createExportHandler(om),
		"/analyze": s.createAnalyzeHandler(om),
		"/rewrite": s.createRewriteHandler(om),
	}
	for path, handler := range processing {
		mux.HandleFunc(path, rateLimit(s.authMiddleware(limitSize(handler))))
	}

	return mux
}

// authMiddleware validates the API key from the X-API-Key header, falling
// back to an Authorization Bearer token. With no keys configured,
// authentication is skipped entirely.
func (s *Server) authMiddleware(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if len(s.APIKeys) == 0 {
			next(w, r)
			return
		}

		apiKey := r.Header.Get("X-API-Key")
		if apiKey == "" {
			if after, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer "); ok {
				apiKey = after
			}
		}

		if apiKey == "" {
			s.Logger.Info("Authentication failed: missing API key",
				"endpoint", r.URL.Path,
				"client_ip", r.RemoteAddr)
			writeErrorResponse(w, "Missing API key", "X-API-Key header or Authorization Bearer token required", http.StatusUnauthorized)
			return
		}

		if !s.APIKeys[apiKey] {
			s.Logger.Info("Authentication failed: invalid API key",
				"endpoint", r.URL.Path,
				"client_ip", r.RemoteAddr,
				"api_key_prefix", maskAPIKey(apiKey))
			writeErrorResponse(w, "Invalid API key", "Unauthorized access", http.StatusUnauthorized)
			return
		}

		s.Logger.Debug("API authentication successful",
			"endpoint", r.URL.Path,
			"client_ip", r.RemoteAddr,
			"api_key_prefix", maskAPIKey(apiKey))

		next(w, r)
	}
}

// requestSizeLimitMiddleware caps request bodies at MaxRequestSize bytes.
func (s *Server) requestSizeLimitMiddleware() func(http.HandlerFunc) http.HandlerFunc {
	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			if s.MaxRequestSize > 0 {
				r.Body = http.MaxBytesReader(w, r.Body, s.MaxRequestSize)
			}
			next(w, r)
		}
	}
}

// maskAPIKey keeps only the first 8 characters for log lines.
func maskAPIKey(apiKey string) string {
	if len(apiKey) <= 8 {
		return "****"
	}
	return apiKey[:8] + "****"
}
