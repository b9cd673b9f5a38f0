package premove

func palaceZone(c Color, dims Dimensions) Zone {
	p := PalaceOf(c, dims)
	return p.Contains
}

// 己方半场（过河前）
func ownHalf(c Color, dims Dimensions) Zone {
	return func(x, y int) bool { return relRank(c, y, dims.Height) < dims.Height/2 }
}

// 士：九宫内斜走一格
func xiangqiAdvisor(c Color, dims Dimensions) Mobility {
	return And(ferz, destIn(palaceZone(c, dims)))
}

// 将：九宫内上下左右一格
func xiangqiKing(c Color, dims Dimensions) Mobility {
	return And(wazir, destIn(palaceZone(c, dims)))
}

// 相：田字，不过河
func xiangqiElephant(c Color, dims Dimensions) Mobility {
	return And(alfil, destIn(ownHalf(c, dims)))
}

// 兵：前进一格；过河后可以左右一格
func xiangqiSoldier(c Color, dims Dimensions) Mobility {
	half := ownHalf(c, dims)
	return func(x1, y1, x2, y2 int) bool {
		dx, dy := relDelta(c, x1, y1, x2, y2)
		if dx == 0 && dy == 1 {
			return true
		}
		return dy == 0 && abs(dx) == 1 && !half(x1, y1)
	}
}

// 前进或左右一格，没有河界（minixiangqi、synochess、empire 的兵）
func sidewaysSoldier(c Color) Mobility {
	return stepper(c, [2]int{0, 1}, [2]int{-1, 0}, [2]int{1, 0})
}

// ===== 朝鲜象棋（janggi）：九宫斜线 =====

// palaceStep 沿九宫斜线走一格，起点必须是角或中心
func palaceStep(p *Palace) Mobility {
	return func(x1, y1, x2, y2 int) bool {
		from, to := p.Index(x1, y1), p.Index(x2, y2)
		if from < 0 || to < 0 {
			return false
		}
		for _, n := range palaceDiagonalNeighbors(from) {
			if n == to {
				return true
			}
		}
		return false
	}
}

// palaceJump 角到对角，越过中心
func palaceJump(p *Palace) Mobility {
	return func(x1, y1, x2, y2 int) bool {
		from, to := p.Index(x1, y1), p.Index(x2, y2)
		return from >= 0 && to >= 0 && palaceOppositeCorner(from) == to
	}
}

func palaceSlide(p *Palace) Mobility {
	return Or(palaceStep(p), palaceJump(p))
}

// 宫 / 士：在己方九宫内沿线走一格
func janggiKing(c Color, dims Dimensions) Mobility {
	own := PalaceOf(c, dims)
	return And(destIn(own.Contains), Or(wazir, palaceStep(own)))
}

// 车：直线 + 两个九宫的斜线
func janggiRook(dims Dimensions) Mobility {
	return Or(rook, palaceSlide(PalaceOf(White, dims)), palaceSlide(PalaceOf(Black, dims)))
}

// 包：直线翻山 + 九宫内角到对角
func janggiCannon(dims Dimensions) Mobility {
	return Or(rook, palaceJump(PalaceOf(White, dims)), palaceJump(PalaceOf(Black, dims)))
}

// 卒：前进或左右一格；在对方九宫里还能沿斜线向前一格
func janggiPawn(c Color, dims Dimensions) Mobility {
	enemy := PalaceOf(c.Opposite(), dims)
	step := palaceStep(enemy)
	return Or(sidewaysSoldier(c), func(x1, y1, x2, y2 int) bool {
		_, dy := relDelta(c, x1, y1, x2, y2)
		return dy == 1 && step(x1, y1, x2, y2)
	})
}

// 象：(2,3) 斜日
var janggiElephant = leaper([2]int{2, 3})
