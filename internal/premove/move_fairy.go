package premove

// ===== makruk / sittuyin / cambodian =====

// 兵不能直进两格
func makrukPawn(c Color, dims Dimensions) Mobility { return pawn(c, dims, -1) }

// 象（khon）走法同将棋银将
func khon(c Color) Mobility { return silver(c) }

// ===== shako / synochess =====

// 象：斜一格或斜跳两格
var ferzAlfil = Or(ferz, alfil)

// ===== spartan =====

// 重装步兵：斜前一格，正前吃子；在起始两行可斜进两格
func hoplite(c Color, dims Dimensions) Mobility {
	return func(x1, y1, x2, y2 int) bool {
		dx, dy := relDelta(c, x1, y1, x2, y2)
		if dy == 1 && abs(dx) <= 1 {
			return true
		}
		return dy == 2 && abs(dx) == 2 && relRank(c, y1, dims.Height) <= 1
	}
}

// 中尉：斜一格、斜跳两格、左右一格
var lieutenant = Or(ferz, alfil, func(x1, y1, x2, y2 int) bool {
	return y1 == y2 && diff(x1, x2) == 1
})

// 将军：车 + 斜一格
var spartanGeneral = Or(rook, ferz)

// 队长：直一格或直跳两格
var spartanCaptain = Or(wazir, dabbaba)
