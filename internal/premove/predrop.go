package premove

import "github.com/apex/log"

// Zone 判断 (x, y) 是否在某个区域内
type Zone func(x, y int) bool

func anywhere(x, y int) bool { return true }

func nowhere(x, y int) bool { return false }

// RankRange 以 color 一方底线为 0 计行，取 [from, to)。
// 负数从对面底线倒数；to <= 0 也从对面算，所以 to = 0 表示一直到对面底线。
func RankRange(c Color, height, from, to int) Zone {
	if from < 0 {
		from += height
	}
	if to <= 0 {
		to += height
	}
	return func(x, y int) bool {
		r := relRank(c, y, height)
		return r >= from && r < to
	}
}

// onlyColor 只有 c 一方能打入
func onlyColor(c Color, p Piece, z Zone) Zone {
	if p.Color != c {
		return nowhere
	}
	return z
}

type dropRule func(p Piece, dims Dimensions) Zone

// 兵不能打在两条底线上
func crazyhouseDrop(p Piece, dims Dimensions) Zone {
	if p.Role == RolePawn {
		return RankRange(p.Color, dims.Height, 1, -1)
	}
	return anywhere
}

// grand 的兵不能打在底线和升变区（后三行）
func grandhouseDrop(p Piece, dims Dimensions) Zone {
	if p.Role == RolePawn {
		return RankRange(p.Color, dims.Height, 1, -3)
	}
	return anywhere
}

// 布阵 / 插入：只能放在己方底线
func backRankDrop(p Piece, dims Dimensions) Zone {
	return RankRange(p.Color, dims.Height, 0, 1)
}

// sittuyin 布阵：车只能在第一行；其余棋子在初始兵阵后面（按初始兵阵算，兵走开也不变），
// 即前两行加上第三行靠己方一侧的那一半（兵阵斜着错开）。
func sittuyinDrop(p Piece, dims Dimensions) Zone {
	if p.Role == RoleRook {
		return RankRange(p.Color, dims.Height, 0, 1)
	}
	back := RankRange(p.Color, dims.Height, 0, 2)
	third := RankRange(p.Color, dims.Height, 2, 3)
	half := dims.Width / 2
	return func(x, y int) bool {
		if back(x, y) {
			return true
		}
		if !third(x, y) {
			return false
		}
		if p.Color == White {
			return x >= half
		}
		return x < half
	}
}

// 将棋：步、香不能打在最后一行，桂不能打在最后两行
func shogiDrop(p Piece, dims Dimensions) Zone {
	switch p.Role {
	case RolePawn, RoleLance:
		return RankRange(p.Color, dims.Height, 0, -1)
	case RoleKnight:
		return RankRange(p.Color, dims.Height, 0, -2)
	}
	return anywhere
}

func toriDrop(p Piece, dims Dimensions) Zone {
	if p.Role == RoleSwallow {
		return RankRange(p.Color, dims.Height, 0, -1)
	}
	return anywhere
}

func anywhereDrop(p Piece, dims Dimensions) Zone { return anywhere }

// synochess 只有黑方有手驹，兵只能打在第 5 行
func synochessDrop(p Piece, dims Dimensions) Zone {
	return onlyColor(Black, p, func(x, y int) bool { return y == 4 })
}

// shinobi 只有白方有手驹，打在己方半场
func shinobiDrop(p Piece, dims Dimensions) Zone {
	return onlyColor(White, p, RankRange(White, dims.Height, 0, dims.Height/2))
}

var dropRules = map[string]dropRule{
	"crazyhouse":   crazyhouseDrop,
	"capahouse":    crazyhouseDrop,
	"gothhouse":    crazyhouseDrop,
	"shouse":       crazyhouseDrop,
	"grandhouse":   grandhouseDrop,
	"placement":    backRankDrop,
	"seirawan":     backRankDrop,
	"sittuyin":     sittuyinDrop,
	"shogi":        shogiDrop,
	"minishogi":    shogiDrop,
	"gorogoroplus": shogiDrop,
	"torishogi":    toriDrop,
	"kyotoshogi":   anywhereDrop,
	"dobutsu":      anywhereDrop,
	"synochess":    synochessDrop,
	"shinobi":      shinobiDrop,
}

// DropZone 返回 variant 下 piece 可以打入的区域。
// 未知变体记一条告警并放开到整个棋盘（注意：Premove 对未知变体是收紧为空）。
func DropZone(piece Piece, dims Dimensions, variant string) Zone {
	rule, ok := dropRules[variant]
	if !ok {
		logger.WithFields(log.Fields{
			"variant": variant,
			"role":    string(piece.Role),
		}).Warn("predrop: unknown variant, allowing drops anywhere")
		return anywhere
	}
	return rule(piece, dims)
}

// Predrop 枚举手驹 piece 可以打入的格子：在区域内，且不是己方棋子占着的格子。
// 对方棋子占着的格子保留（有的规则允许打入吃子）。
func Predrop(pieces Pieces, piece Piece, dims Dimensions, variant string) []Key {
	zone := DropZone(piece, dims, variant)
	out := make([]Key, 0, dims.Width*dims.Height)
	for _, p := range AllPositions(dims) {
		if !zone(p.File, p.Rank) {
			continue
		}
		k := PositionToKey(p, dims)
		if occ, ok := pieces[k]; ok && occ.Color == piece.Color {
			continue
		}
		out = append(out, k)
	}
	return out
}
