package premove

import "sync"

// Palace 九宫的 9 个点，固定顺序：从本方最低行、最左列开始行优先。
//
//	6 7 8
//	3 4 5
//	0 1 2
//
// 0/2/6/8 是角，4 是中心，其余是边中点（没有斜线）。
type Palace [9]Position

type palaceKey struct {
	width, height int
	color         Color
}

var (
	palaceMu    sync.RWMutex
	palaceCache = make(map[palaceKey]*Palace)
)

// PalaceOf 返回 color 一方的九宫，按 (width, height, color) 缓存
func PalaceOf(c Color, dims Dimensions) *Palace {
	k := palaceKey{dims.Width, dims.Height, c}

	palaceMu.RLock()
	p, ok := palaceCache[k]
	palaceMu.RUnlock()
	if ok {
		return p
	}

	p = computePalace(c, dims)
	palaceMu.Lock()
	if cached, ok := palaceCache[k]; ok {
		p = cached
	} else {
		palaceCache[k] = p
	}
	palaceMu.Unlock()
	return p
}

func computePalace(c Color, dims Dimensions) *Palace {
	midFile := dims.Width / 2
	startRank := 0
	if c == Black {
		startRank = dims.Height - 3
	}
	var p Palace
	i := 0
	for r := startRank; r < startRank+3; r++ {
		for f := midFile - 1; f <= midFile+1; f++ {
			p[i] = Position{File: f, Rank: r}
			i++
		}
	}
	return &p
}

// Index 返回 (x, y) 在九宫里的序号，不在九宫内返回 -1
func (p *Palace) Index(x, y int) int {
	base := p[0]
	df, dr := x-base.File, y-base.Rank
	if df < 0 || df > 2 || dr < 0 || dr > 2 {
		return -1
	}
	return dr*3 + df
}

func (p *Palace) Contains(x, y int) bool {
	return p.Index(x, y) >= 0
}

// InPalace 判断 (x, y) 是否在 color 一方的九宫内
func InPalace(c Color, dims Dimensions, x, y int) bool {
	return PalaceOf(c, dims).Contains(x, y)
}

// PalaceIndex (x, y) 在 color 一方九宫里的序号，不在九宫内返回 -1
func PalaceIndex(c Color, dims Dimensions, x, y int) int {
	return PalaceOf(c, dims).Index(x, y)
}

// 九宫斜线：角 <-> 中心 <-> 对角。边中点没有斜线。
func palaceDiagonalNeighbors(idx int) []int {
	switch idx {
	case 0:
		return []int{4}
	case 2:
		return []int{4}
	case 6:
		return []int{4}
	case 8:
		return []int{4}
	case 4:
		return []int{0, 2, 6, 8}
	}
	return nil
}

// 斜线上隔着中心的对角
func palaceOppositeCorner(idx int) int {
	switch idx {
	case 0:
		return 8
	case 2:
		return 6
	case 6:
		return 2
	case 8:
		return 0
	}
	return -1
}

func palaceCacheSize() int {
	palaceMu.RLock()
	defer palaceMu.RUnlock()
	return len(palaceCache)
}
