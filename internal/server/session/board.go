package session

import (
	"time"

	"boardmoves/internal/premove"
)

// Board 一个棋盘会话：调用方的局面快照加上变体、易位信息
type Board struct {
	ID        string         `json:"id"`
	Variant   string         `json:"variant"`
	Pieces    premove.Pieces `json:"pieces"`
	CanCastle bool           `json:"can_castle"`
	Chess960  bool           `json:"chess960,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}

// Clone 深拷贝，Pieces 不和会话共享
func (b *Board) Clone() *Board {
	c := *b
	c.Pieces = make(premove.Pieces, len(b.Pieces))
	for k, p := range b.Pieces {
		c.Pieces[k] = p
	}
	return &c
}

// Dims 棋盘尺寸；变体不存在时为零值
func (b *Board) Dims() premove.Dimensions {
	v, ok := premove.LookupVariant(b.Variant)
	if !ok {
		return premove.Dimensions{}
	}
	return v.Dims
}

// FEN 棋盘部分的编码
func (b *Board) FEN() (string, error) {
	return premove.EncodeBoard(b.Variant, b.Pieces)
}
