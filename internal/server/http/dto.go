package httpserver

import (
	"time"

	"boardmoves/internal/premove"
	"boardmoves/internal/server/session"
)

// BoardRef 指定要查询的局面：要么是已有会话，要么直接给变体和 FEN
type BoardRef struct {
	BoardID string `json:"board_id,omitempty"`
	Variant string `json:"variant,omitempty"`
	FEN     string `json:"fen,omitempty"`
}

// PremoveRequest 查询 origin 上棋子的预走格子。
// can_castle / chess960 不填时用会话里保存的值（直接给 FEN 时默认 false）。
type PremoveRequest struct {
	BoardRef
	Origin    string `json:"origin"`
	CanCastle *bool  `json:"can_castle,omitempty"`
	Chess960  *bool  `json:"chess960,omitempty"`
}

type PremoveResponse struct {
	Variant string   `json:"variant"`
	Origin  string   `json:"origin"`
	Dests   []string `json:"dests"`
}

// PredropRequest 查询手驹可以打入的格子
type PredropRequest struct {
	BoardRef
	Role     string `json:"role"`
	Color    string `json:"color"`
	Promoted bool   `json:"promoted,omitempty"`
}

type PredropResponse struct {
	Variant string   `json:"variant"`
	Dests   []string `json:"dests"`
}

type VariantDTO struct {
	Name    string   `json:"name"`
	Width   int      `json:"width"`
	Height  int      `json:"height"`
	Start   string   `json:"start"`
	Castle  string   `json:"castle"`
	Pockets bool     `json:"pockets"`
	Roles   []string `json:"roles"`
}

type VariantsResponse struct {
	Variants []VariantDTO `json:"variants"`
}

type NewBoardRequest struct {
	Variant string `json:"variant"`
}

type StateRequest struct {
	BoardID string `json:"board_id"`
}

// SetBoardRequest 用新的 FEN 替换会话局面
type SetBoardRequest struct {
	BoardID   string `json:"board_id"`
	FEN       string `json:"fen"`
	CanCastle *bool  `json:"can_castle,omitempty"`
	Chess960  *bool  `json:"chess960,omitempty"`
}

// BoardResponse new_board / state / set_board 共用
type BoardResponse struct {
	BoardID   string    `json:"board_id"`
	Variant   string    `json:"variant"`
	FEN       string    `json:"fen"`
	Width     int       `json:"width"`
	Height    int       `json:"height"`
	CanCastle bool      `json:"can_castle"`
	Chess960  bool      `json:"chess960"`
	UpdatedAt time.Time `json:"updated_at"`
}

type DeleteBoardResponse struct {
	BoardID string `json:"board_id"`
	Deleted bool   `json:"deleted"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func keysToDTO(ks []premove.Key) []string {
	out := make([]string, len(ks))
	for i, k := range ks {
		out[i] = string(k)
	}
	return out
}

func variantToDTO(v *premove.Variant) VariantDTO {
	roles := v.Roles()
	names := make([]string, len(roles))
	for i, r := range roles {
		names[i] = string(r)
	}
	return VariantDTO{
		Name:    v.Name,
		Width:   v.Dims.Width,
		Height:  v.Dims.Height,
		Start:   v.Start,
		Castle:  v.Castle.String(),
		Pockets: v.Pockets,
		Roles:   names,
	}
}

func boardToDTO(b *session.Board) (BoardResponse, error) {
	fen, err := b.FEN()
	if err != nil {
		return BoardResponse{}, err
	}
	dims := b.Dims()
	return BoardResponse{
		BoardID:   b.ID,
		Variant:   b.Variant,
		FEN:       fen,
		Width:     dims.Width,
		Height:    dims.Height,
		CanCastle: b.CanCastle,
		Chess960:  b.Chess960,
		UpdatedAt: b.UpdatedAt,
	}, nil
}
