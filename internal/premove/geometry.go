package premove

import (
	"fmt"
	"strconv"
)

// Key 是格子的文本坐标："e4"、"a10"
type Key string

// Position 零起点坐标：File 为列（a=0），Rank 为行（1=0）
type Position struct {
	File int `json:"file"`
	Rank int `json:"rank"`
}

// KeyToPosition 不做校验，调用方只应传入合法 key（外部输入先走 ParseKey）
func KeyToPosition(k Key) Position {
	rank, _ := strconv.Atoi(string(k[1:]))
	return Position{File: int(k[0] - 'a'), Rank: rank - 1}
}

// PositionToKey 只对棋盘内坐标有定义
func PositionToKey(p Position, dims Dimensions) Key {
	return Key(string(rune('a'+p.File)) + strconv.Itoa(p.Rank+1))
}

// AllPositions 按行优先列出整张棋盘，共 Width*Height 个
func AllPositions(dims Dimensions) []Position {
	out := make([]Position, 0, dims.Width*dims.Height)
	for r := 0; r < dims.Height; r++ {
		for f := 0; f < dims.Width; f++ {
			out = append(out, Position{File: f, Rank: r})
		}
	}
	return out
}

// ParseKey 校验来自外部的坐标
func ParseKey(s string, dims Dimensions) (Key, error) {
	if len(s) < 2 || s[0] < 'a' || s[0] > 'z' {
		return "", fmt.Errorf("invalid square: %s", s)
	}
	rank, err := strconv.Atoi(s[1:])
	if err != nil || s[1] == '0' || s[1] == '+' || s[1] == '-' {
		return "", fmt.Errorf("invalid square: %s", s)
	}
	p := Position{File: int(s[0] - 'a'), Rank: rank - 1}
	if !dims.Contains(p) {
		return "", fmt.Errorf("square %s outside %s board", s, dims)
	}
	return Key(s), nil
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func diff(a, b int) int { return abs(a - b) }

// relRank 把绝对行号换算成该方视角的行号（己方底线为 0）
func relRank(c Color, rank, height int) int {
	if c == White {
		return rank
	}
	return height - 1 - rank
}

// relDelta 返回该方视角下的位移；黑方是白方的 180 度旋转
func relDelta(c Color, x1, y1, x2, y2 int) (dx, dy int) {
	dx, dy = x2-x1, y2-y1
	if c == Black {
		return -dx, -dy
	}
	return dx, dy
}
