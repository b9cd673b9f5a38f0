package httpserver

import (
	"net/http"
	"time"

	"github.com/apex/log"

	"boardmoves/internal/server/session"
)

// Server 把 /api/* 和静态资源挂到一个 mux 上，外面包一层访问日志
type Server struct {
	api *Handler
	h   http.Handler
}

func NewServer(sessions *session.Manager, webDir string) *Server {
	api := NewHandler(sessions)
	mux := http.NewServeMux()
	mux.Handle("/api/", api)
	RegisterStaticRoutes(mux, webDir)
	return &Server{api: api, h: accessLog(mux)}
}

func (s *Server) Handler() *Handler {
	return s.api
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.h.ServeHTTP(w, r)
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

func accessLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		log.WithFields(log.Fields{
			"method":   r.Method,
			"path":     r.URL.Path,
			"status":   rec.status,
			"duration": time.Since(start).String(),
		}).Debug("http")
	})
}
