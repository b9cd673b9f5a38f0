package premove

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

var ErrInvalidFEN = errors.New("invalid FEN")

// ParseBoard 解析 FEN 的棋盘部分：行用“/”隔开（从对面底线开始），空位用数字压缩（可以是两位数），
// “+”前缀表示升变，手驹方括号及空格后的字段忽略。字母按变体的字母表解释，大写为白方。
func ParseBoard(variant, fen string) (Pieces, error) {
	v, ok := LookupVariant(variant)
	if !ok {
		return nil, fmt.Errorf("%w: unknown variant %q", ErrInvalidFEN, variant)
	}
	placement := fen
	if i := strings.IndexAny(placement, " ["); i >= 0 {
		placement = placement[:i]
	}
	rows := strings.Split(placement, "/")
	if len(rows) != v.Dims.Height {
		return nil, fmt.Errorf("%w: need %d ranks, got %d", ErrInvalidFEN, v.Dims.Height, len(rows))
	}

	pieces := make(Pieces)
	for i, row := range rows {
		rank := v.Dims.Height - 1 - i
		file := 0
		promoted := false
		for j := 0; j < len(row); j++ {
			ch := row[j]
			if file >= v.Dims.Width && ch != '+' {
				return nil, fmt.Errorf("%w: too many squares in rank %d", ErrInvalidFEN, rank+1)
			}
			if ch >= '0' && ch <= '9' {
				n := j
				for n < len(row) && row[n] >= '0' && row[n] <= '9' {
					n++
				}
				empty, _ := strconv.Atoi(row[j:n])
				file += empty
				j = n - 1
				continue
			}
			if ch == '+' {
				promoted = true
				continue
			}
			role, ok := v.roleOf(byte(unicode.ToLower(rune(ch))))
			if !ok {
				return nil, fmt.Errorf("%w: invalid piece character %q", ErrInvalidFEN, ch)
			}
			color := Black
			if unicode.IsUpper(rune(ch)) {
				color = White
			}
			k := PositionToKey(Position{File: file, Rank: rank}, v.Dims)
			pieces[k] = Piece{Role: role, Color: color, Promoted: promoted}
			promoted = false
			file++
		}
		if file != v.Dims.Width {
			return nil, fmt.Errorf("%w: rank %d has %d squares", ErrInvalidFEN, rank+1, file)
		}
	}
	return pieces, nil
}

// EncodeBoard 与 ParseBoard 相反
func EncodeBoard(variant string, pieces Pieces) (string, error) {
	v, ok := LookupVariant(variant)
	if !ok {
		return "", fmt.Errorf("%w: unknown variant %q", ErrInvalidFEN, variant)
	}
	var sb strings.Builder
	for rank := v.Dims.Height - 1; rank >= 0; rank-- {
		if rank < v.Dims.Height-1 {
			sb.WriteByte('/')
		}
		empty := 0
		for file := 0; file < v.Dims.Width; file++ {
			pc, ok := pieces[PositionToKey(Position{File: file, Rank: rank}, v.Dims)]
			if !ok {
				empty++
				continue
			}
			ch, ok := v.letterOf(pc.Role)
			if !ok {
				return "", fmt.Errorf("%w: %s has no letter in %s", ErrInvalidFEN, pc.Role, v.Name)
			}
			if empty > 0 {
				sb.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			if pc.Promoted {
				sb.WriteByte('+')
			}
			if pc.Color == White {
				ch = byte(unicode.ToUpper(rune(ch)))
			}
			sb.WriteByte(ch)
		}
		if empty > 0 {
			sb.WriteString(strconv.Itoa(empty))
		}
	}
	return sb.String(), nil
}

// StartPieces 变体初始局面
func (v *Variant) StartPieces() Pieces {
	pieces, err := ParseBoard(v.Name, v.Start)
	if err != nil {
		panic("bad start position for " + v.Name + ": " + err.Error())
	}
	return pieces
}

func (v *Variant) roleOf(ch byte) (Role, bool) {
	for _, l := range v.letters {
		if l.ch == ch {
			return l.role, true
		}
	}
	return "", false
}

func (v *Variant) letterOf(r Role) (byte, bool) {
	for _, l := range v.letters {
		if l.role == r {
			return l.ch, true
		}
	}
	return 0, false
}
