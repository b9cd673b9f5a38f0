package premove

// Mobility 判断棋子能否从 (x1,y1) 几何上走到 (x2,y2)。
// 不看中间有没有子，也不看终点归属；颜色、九宫、车所在列等上下文在构造时闭包进去。
type Mobility func(x1, y1, x2, y2 int) bool

// Or 任一成立即可（复合棋子）
func Or(ms ...Mobility) Mobility {
	return func(x1, y1, x2, y2 int) bool {
		for _, m := range ms {
			if m(x1, y1, x2, y2) {
				return true
			}
		}
		return false
	}
}

func And(ms ...Mobility) Mobility {
	return func(x1, y1, x2, y2 int) bool {
		for _, m := range ms {
			if !m(x1, y1, x2, y2) {
				return false
			}
		}
		return true
	}
}

func Not(m Mobility) Mobility {
	return func(x1, y1, x2, y2 int) bool { return !m(x1, y1, x2, y2) }
}

// noMobility 未识别的变体 / 棋子：没有落点
func noMobility(x1, y1, x2, y2 int) bool { return false }

// ===== 跳子（对称） =====

func wazir(x1, y1, x2, y2 int) bool {
	return diff(x1, x2)+diff(y1, y2) == 1
}

func ferz(x1, y1, x2, y2 int) bool {
	return diff(x1, x2) == 1 && diff(y1, y2) == 1
}

func kingStep(x1, y1, x2, y2 int) bool {
	return diff(x1, x2) < 2 && diff(y1, y2) < 2
}

func knight(x1, y1, x2, y2 int) bool {
	dx, dy := diff(x1, x2), diff(y1, y2)
	return (dx == 1 && dy == 2) || (dx == 2 && dy == 1)
}

// 相 / 象：斜走两格
func alfil(x1, y1, x2, y2 int) bool {
	return diff(x1, x2) == 2 && diff(y1, y2) == 2
}

func dabbaba(x1, y1, x2, y2 int) bool {
	dx, dy := diff(x1, x2), diff(y1, y2)
	return (dx == 2 && dy == 0) || (dx == 0 && dy == 2)
}

// ===== 滑子 =====

func bishop(x1, y1, x2, y2 int) bool {
	return diff(x1, x2) == diff(y1, y2)
}

func rook(x1, y1, x2, y2 int) bool {
	return x1 == x2 || y1 == y2
}

var queen = Or(bishop, rook)

// ===== 复合 =====

var (
	chancellor = Or(rook, knight)
	archbishop = Or(bishop, knight)
	centaur    = Or(kingStep, knight)
	amazon     = Or(bishop, rook, knight)
)

// leaper 由一组对称位移构成的跳子（每个位移自动取 8 个方向的镜像）
func leaper(offsets ...[2]int) Mobility {
	return func(x1, y1, x2, y2 int) bool {
		dx, dy := diff(x1, x2), diff(y1, y2)
		for _, o := range offsets {
			if (dx == o[0] && dy == o[1]) || (dx == o[1] && dy == o[0]) {
				return true
			}
		}
		return false
	}
}

// lineLeaper 沿 8 条线（横竖斜）走 dist 中任一距离
func lineLeaper(dists ...int) Mobility {
	return func(x1, y1, x2, y2 int) bool {
		dx, dy := diff(x1, x2), diff(y1, y2)
		if dx != 0 && dy != 0 && dx != dy {
			return false
		}
		d := dx
		if dy > d {
			d = dy
		}
		for _, want := range dists {
			if d == want {
				return true
			}
		}
		return false
	}
}

// stepper 非对称的步法集合，位移以该方视角给出（dy>0 为前进）
func stepper(c Color, offsets ...[2]int) Mobility {
	return func(x1, y1, x2, y2 int) bool {
		dx, dy := relDelta(c, x1, y1, x2, y2)
		for _, o := range offsets {
			if dx == o[0] && dy == o[1] {
				return true
			}
		}
		return false
	}
}

// within 限制最大距离（切比雪夫距离）
func within(n int) Mobility {
	return func(x1, y1, x2, y2 int) bool {
		return diff(x1, x2) <= n && diff(y1, y2) <= n
	}
}

// destIn 终点必须满足 zone
func destIn(z Zone) Mobility {
	return func(x1, y1, x2, y2 int) bool { return z(x2, y2) }
}

// originIn 起点必须满足 zone
func originIn(z Zone) Mobility {
	return func(x1, y1, x2, y2 int) bool { return z(x1, y1) }
}
