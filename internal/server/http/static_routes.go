package httpserver

import (
	"net/http"
	"strings"

	"boardmoves/internal/premove"
)

const orientationCookieName = "boardmoves_orientation"

// RegisterStaticRoutes mounts:
// - /web/* -> board widget assets
// - /      -> redirect to /web/ (remembers ?orientation= in a cookie)
func RegisterStaticRoutes(mux *http.ServeMux, webDir string) {
	if mux == nil {
		return
	}
	if webDir == "" {
		webDir = "."
	}

	mux.Handle("/web/", http.StripPrefix("/web/", http.FileServer(http.Dir(webDir))))

	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/", "/web":
			pickOrientation(w, r)
			w.Header().Set("Vary", "Cookie")
			http.Redirect(w, r, "/web/", http.StatusFound)
		default:
			http.NotFound(w, r)
		}
	})
}

// pickOrientation 棋盘朝向：?orientation= 优先（并写入 cookie），其次 cookie，默认白方在下
func pickOrientation(w http.ResponseWriter, r *http.Request) premove.Color {
	if c, ok := normalizeOrientation(r.URL.Query().Get("orientation")); ok {
		rememberOrientation(w, c)
		return c
	}
	if ck, err := r.Cookie(orientationCookieName); err == nil {
		if c, ok := normalizeOrientation(ck.Value); ok {
			return c
		}
	}
	return premove.White
}

func rememberOrientation(w http.ResponseWriter, c premove.Color) {
	http.SetCookie(w, &http.Cookie{
		Name:     orientationCookieName,
		Value:    c.String(),
		Path:     "/",
		MaxAge:   30 * 24 * 60 * 60,
		SameSite: http.SameSiteLaxMode,
	})
}

func normalizeOrientation(v string) (premove.Color, bool) {
	v = strings.ToLower(strings.TrimSpace(v))
	if v == "" {
		return premove.White, false
	}
	c, err := premove.ParseColor(v)
	if err != nil {
		return premove.White, false
	}
	return c, true
}
