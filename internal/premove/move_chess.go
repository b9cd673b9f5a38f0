package premove

// 兵：前进一格（含斜前方，吃子用），在己方前 doubleStepRank 行内可直进两格。
// horde 的兵可以从第一行出发，所以标准棋盘上传 1。
func pawn(c Color, dims Dimensions, doubleStepRank int) Mobility {
	return func(x1, y1, x2, y2 int) bool {
		dx, dy := relDelta(c, x1, y1, x2, y2)
		if abs(dx) > 1 {
			return false
		}
		if dy == 1 {
			return true
		}
		return dy == 2 && dx == 0 && relRank(c, y1, dims.Height) <= doubleStepRank
	}
}

// 易位规则：行号按白方给出，黑方镜像到对面
type castlingRules struct {
	rank                int
	kingFile            int
	longFile, shortFile int // 王易位后所在列
	longRook, shortRook int // 车的原始列
}

func rulesFor(style CastleStyle, dims Dimensions) castlingRules {
	switch style {
	case CastleCapablanca:
		return castlingRules{rank: 0, kingFile: 5, longFile: 2, shortFile: 8, longRook: 0, shortRook: dims.Width - 1}
	case CastleShako:
		return castlingRules{rank: 1, kingFile: 5, longFile: 3, shortFile: 7, longRook: 1, shortRook: dims.Width - 2}
	default:
		return castlingRules{rank: 0, kingFile: 4, longFile: 2, shortFile: 6, longRook: 0, shortRook: dims.Width - 1}
	}
}

// castlingKing 王：一步 + 易位。chess960 下只能“王吃车”，即落到己方车所在的格子。
func castlingKing(c Color, dims Dimensions, style CastleStyle, rookFiles []int, canCastle, chess960 bool) Mobility {
	if !canCastle || style == CastleNone {
		return kingStep
	}
	r := rulesFor(style, dims)
	rank := r.rank
	if c == Black {
		rank = dims.Height - 1 - r.rank
	}
	hasRook := func(f int) bool {
		for _, rf := range rookFiles {
			if rf == f {
				return true
			}
		}
		return false
	}
	castle := func(x1, y1, x2, y2 int) bool {
		if y1 != rank || y2 != rank {
			return false
		}
		if hasRook(x2) {
			return true
		}
		if chess960 || x1 != r.kingFile {
			return false
		}
		return (x2 == r.longFile && hasRook(r.longRook)) ||
			(x2 == r.shortFile && hasRook(r.shortRook))
	}
	return Or(kingStep, castle)
}

// ===== musketeer =====

// 豹：马 + 两格内的象
var leopard = Or(knight, And(bishop, within(2)))

// 鹰：沿 8 条线跳 2 或 3 格
var musketeerHawk = lineLeaper(2, 3)

// 象：沿 8 条线走 1 或 2 格
var musketeerElephant = lineLeaper(1, 2)

// 独角兽：马 + 双倍马步
var unicorn = leaper([2]int{1, 2}, [2]int{2, 4})

// 炮：5x5 方框内任意一格（王 + 象跳 + 车跳两格 + 马）
var musketeerCannon = within(2)

// 蜘蛛：两格内的象 + 马 + 直跳两格
var musketeerSpider = Or(And(bishop, within(2)), knight, dabbaba)

// 要塞：三格内的象 + 马 + 直跳两格
var musketeerFortress = Or(And(bishop, within(3)), knight, dabbaba)

// ===== hoppelpoppel：马象互换吃法，预走取并集 =====

var hoppel = Or(bishop, knight)
