package httpserver

import (
	"encoding/json"
	"errors"
	"fmt"
	"image/png"
	"net/http"
	"strconv"

	"github.com/apex/log"

	"boardmoves/internal/premove"
	"boardmoves/internal/render"
	"boardmoves/internal/server/session"
)

var errBadRequest = errors.New("bad request")

func badRequest(format string, args ...any) error {
	return fmt.Errorf("%w: %s", errBadRequest, fmt.Sprintf(format, args...))
}

// Handler 实现 http.Handler，用于 /api/* 路由
type Handler struct {
	sessions *session.Manager
}

// NewHandler sessions 为 nil 时用一个纯内存的 manager
func NewHandler(sessions *session.Manager) *Handler {
	if sessions == nil {
		sessions = session.NewManager(nil)
	}
	return &Handler{sessions: sessions}
}

func (h *Handler) Sessions() *session.Manager {
	return h.sessions
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	switch r.URL.Path {
	case "/api/premove":
		if !allow(w, r, http.MethodPost) {
			return
		}
		h.handlePremove(w, r)

	case "/api/predrop":
		if !allow(w, r, http.MethodPost) {
			return
		}
		h.handlePredrop(w, r)

	case "/api/variants":
		if !allow(w, r, http.MethodGet) {
			return
		}
		h.handleVariants(w, r)

	case "/api/new_board":
		if !allow(w, r, http.MethodPost) {
			return
		}
		h.handleNewBoard(w, r)

	case "/api/state":
		if !allow(w, r, http.MethodPost) {
			return
		}
		h.handleState(w, r)

	case "/api/set_board":
		if !allow(w, r, http.MethodPost) {
			return
		}
		h.handleSetBoard(w, r)

	case "/api/delete_board":
		if !allow(w, r, http.MethodPost) {
			return
		}
		h.handleDeleteBoard(w, r)

	case "/api/render":
		if !allow(w, r, http.MethodGet) {
			return
		}
		h.handleRender(w, r)

	default:
		http.NotFound(w, r)
	}
}

func allow(w http.ResponseWriter, r *http.Request, method string) bool {
	if r.Method != method {
		w.Header().Set("Allow", method)
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return false
	}
	return true
}

func decode(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return badRequest("bad json: %v", err)
	}
	return nil
}

// resolve 取出请求对应的局面。直接给 FEN 时不建会话；FEN 为空则用变体初始局面。
func (h *Handler) resolve(ref BoardRef) (*session.Board, error) {
	if ref.BoardID != "" {
		return h.sessions.Get(ref.BoardID)
	}
	if ref.Variant == "" {
		return nil, badRequest("need board_id or variant")
	}
	v, ok := premove.LookupVariant(ref.Variant)
	if !ok {
		return nil, fmt.Errorf("%w: %q", session.ErrUnknownVariant, ref.Variant)
	}
	pieces := v.StartPieces()
	if ref.FEN != "" {
		p, err := premove.ParseBoard(v.Name, ref.FEN)
		if err != nil {
			return nil, err
		}
		pieces = p
	}
	return &session.Board{Variant: v.Name, Pieces: pieces}, nil
}

func (h *Handler) handlePremove(w http.ResponseWriter, r *http.Request) {
	var req PremoveRequest
	if err := decode(r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	b, err := h.resolve(req.BoardRef)
	if err != nil {
		writeError(w, r, err)
		return
	}
	dims := b.Dims()
	origin, err := premove.ParseKey(req.Origin, dims)
	if err != nil {
		writeError(w, r, badRequest("%v", err))
		return
	}
	if _, ok := b.Pieces[origin]; !ok {
		writeError(w, r, badRequest("no piece on %s", origin))
		return
	}

	canCastle, chess960 := b.CanCastle, b.Chess960
	if req.CanCastle != nil {
		canCastle = *req.CanCastle
	}
	if req.Chess960 != nil {
		chess960 = *req.Chess960
	}

	dests := premove.Premove(b.Pieces, origin, canCastle, dims, b.Variant, chess960)
	writeJSON(w, PremoveResponse{
		Variant: b.Variant,
		Origin:  string(origin),
		Dests:   keysToDTO(dests),
	})
}

func (h *Handler) handlePredrop(w http.ResponseWriter, r *http.Request) {
	var req PredropRequest
	if err := decode(r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	b, err := h.resolve(req.BoardRef)
	if err != nil {
		writeError(w, r, err)
		return
	}
	color, err := premove.ParseColor(req.Color)
	if err != nil {
		writeError(w, r, badRequest("%v", err))
		return
	}
	v, _ := premove.LookupVariant(b.Variant)
	role := premove.Role(req.Role)
	if !hasRole(v, role) {
		writeError(w, r, badRequest("role %q not in %s", req.Role, v.Name))
		return
	}

	piece := premove.Piece{Role: role, Color: color, Promoted: req.Promoted}
	dests := premove.Predrop(b.Pieces, piece, v.Dims, v.Name)
	writeJSON(w, PredropResponse{Variant: v.Name, Dests: keysToDTO(dests)})
}

func hasRole(v *premove.Variant, role premove.Role) bool {
	for _, r := range v.Roles() {
		if r == role {
			return true
		}
	}
	return false
}

func (h *Handler) handleVariants(w http.ResponseWriter, r *http.Request) {
	vs := premove.Variants()
	resp := VariantsResponse{Variants: make([]VariantDTO, len(vs))}
	for i, v := range vs {
		resp.Variants[i] = variantToDTO(v)
	}
	writeJSON(w, resp)
}

func (h *Handler) handleNewBoard(w http.ResponseWriter, r *http.Request) {
	var req NewBoardRequest
	if err := decode(r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	b, err := h.sessions.NewBoard(req.Variant)
	if err != nil {
		writeError(w, r, err)
		return
	}
	log.WithFields(log.Fields{"board_id": b.ID, "variant": b.Variant}).Info("new board")
	writeBoard(w, r, b)
}

func (h *Handler) handleState(w http.ResponseWriter, r *http.Request) {
	var req StateRequest
	if err := decode(r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	b, err := h.sessions.Get(req.BoardID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeBoard(w, r, b)
}

func (h *Handler) handleSetBoard(w http.ResponseWriter, r *http.Request) {
	var req SetBoardRequest
	if err := decode(r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	cur, err := h.sessions.Get(req.BoardID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	pieces, err := premove.ParseBoard(cur.Variant, req.FEN)
	if err != nil {
		writeError(w, r, err)
		return
	}
	canCastle := cur.CanCastle
	if req.CanCastle != nil {
		canCastle = *req.CanCastle
	}
	b, err := h.sessions.Update(cur.ID, pieces, canCastle)
	if err != nil {
		writeError(w, r, err)
		return
	}
	if req.Chess960 != nil && *req.Chess960 != b.Chess960 {
		if b, err = h.sessions.SetChess960(cur.ID, *req.Chess960); err != nil {
			writeError(w, r, err)
			return
		}
	}
	writeBoard(w, r, b)
}

func (h *Handler) handleDeleteBoard(w http.ResponseWriter, r *http.Request) {
	var req StateRequest
	if err := decode(r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	if err := h.sessions.Delete(req.BoardID); err != nil {
		writeError(w, r, err)
		return
	}
	log.WithField("board_id", req.BoardID).Info("board deleted")
	writeJSON(w, DeleteBoardResponse{BoardID: req.BoardID, Deleted: true})
}

// handleRender GET /api/render?board_id=&origin=&size=&orientation=
func (h *Handler) handleRender(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	b, err := h.resolve(BoardRef{
		BoardID: q.Get("board_id"),
		Variant: q.Get("variant"),
		FEN:     q.Get("fen"),
	})
	if err != nil {
		writeError(w, r, err)
		return
	}
	dims := b.Dims()

	opts := render.Options{Flip: pickOrientation(w, r) == premove.Black}
	if s := q.Get("size"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil || n <= 0 || n > render.MaxSize {
			writeError(w, r, badRequest("size must be in 1..%d", render.MaxSize))
			return
		}
		opts.Size = n
	}
	if s := q.Get("origin"); s != "" {
		origin, err := premove.ParseKey(s, dims)
		if err != nil {
			writeError(w, r, badRequest("%v", err))
			return
		}
		opts.Origin = origin
		if _, ok := b.Pieces[origin]; ok {
			opts.Dests = premove.Premove(b.Pieces, origin, b.CanCastle, dims, b.Variant, b.Chess960)
		}
	}

	img, err := render.Image(b.Pieces, dims, opts)
	if err != nil {
		writeError(w, r, err)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "no-store")
	if err := png.Encode(w, img); err != nil {
		log.WithError(err).Warn("render: write png")
	}
}

func writeBoard(w http.ResponseWriter, r *http.Request, b *session.Board) {
	resp, err := boardToDTO(b)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, resp)
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.WithError(err).Warn("writeJSON")
	}
}

func statusOf(err error) int {
	switch {
	case errors.Is(err, session.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, errBadRequest),
		errors.Is(err, premove.ErrInvalidFEN),
		errors.Is(err, session.ErrUnknownVariant):
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

// writeError 4xx 只返回信息，5xx 额外记日志
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusOf(err)
	if status >= 500 {
		log.WithFields(log.Fields{
			"path":   r.URL.Path,
			"method": r.Method,
		}).WithError(err).Error("request failed")
	}
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(ErrorResponse{Error: err.Error()})
}
