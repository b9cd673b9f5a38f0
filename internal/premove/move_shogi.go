package premove

// ray 沿该方视角方向 (ux,uy) 滑行任意格
func ray(c Color, ux, uy int) Mobility {
	return func(x1, y1, x2, y2 int) bool {
		dx, dy := relDelta(c, x1, y1, x2, y2)
		n := abs(dx)
		if abs(dy) > n {
			n = abs(dy)
		}
		return n > 0 && dx == n*ux && dy == n*uy
	}
}

func shogiPawn(c Color) Mobility { return stepper(c, [2]int{0, 1}) }

func lance(c Color) Mobility { return ray(c, 0, 1) }

func shogiKnight(c Color) Mobility {
	return stepper(c, [2]int{-1, 2}, [2]int{1, 2})
}

func silver(c Color) Mobility {
	return stepper(c, [2]int{-1, 1}, [2]int{0, 1}, [2]int{1, 1}, [2]int{-1, -1}, [2]int{1, -1})
}

func gold(c Color) Mobility {
	return stepper(c, [2]int{-1, 1}, [2]int{0, 1}, [2]int{1, 1}, [2]int{-1, 0}, [2]int{1, 0}, [2]int{0, -1})
}

// 龙马 / 龙王
var (
	shogiHorse  = Or(bishop, kingStep)
	shogiDragon = Or(rook, kingStep)
)

// ===== 禽将棋 =====

func swallow(c Color) Mobility { return shogiPawn(c) }

// 雁（燕升变）：斜前跳两格，或正后跳两格
func goose(c Color) Mobility {
	return stepper(c, [2]int{-2, 2}, [2]int{2, 2}, [2]int{0, -2})
}

// 雉：正前跳两格，或斜后一格
func pheasant(c Color) Mobility {
	return stepper(c, [2]int{0, 2}, [2]int{-1, -1}, [2]int{1, -1})
}

// 鹤：除左右外的一步
func crane(c Color) Mobility {
	return stepper(c, [2]int{-1, 1}, [2]int{0, 1}, [2]int{1, 1}, [2]int{-1, -1}, [2]int{0, -1}, [2]int{1, -1})
}

// 鹰：除正后外的一步
func falcon(c Color) Mobility {
	return And(kingStep, Not(stepper(c, [2]int{0, -1})))
}

// 鵰（鹰升变）：一步 + 斜前滑 + 正后滑 + 斜后两格内
func eagle(c Color) Mobility {
	return Or(
		kingStep,
		ray(c, -1, 1), ray(c, 1, 1),
		ray(c, 0, -1),
		stepper(c, [2]int{-2, -2}, [2]int{2, -2}),
	)
}

// 左鹑：正前滑、右后斜滑、左后一步
func leftQuail(c Color) Mobility {
	return Or(ray(c, 0, 1), ray(c, 1, -1), stepper(c, [2]int{-1, -1}))
}

// 右鹑：左右镜像
func rightQuail(c Color) Mobility {
	return Or(ray(c, 0, 1), ray(c, -1, -1), stepper(c, [2]int{1, -1}))
}
