package premove

// Premove 枚举 origin 上的棋子在不考虑阻挡、不考虑合法性时能到达的所有格子。
// origin 必须有棋子（调用方保证）；没有时读到零值棋子，结果为空。
// 返回值无顺序保证，按集合使用。
func Premove(pieces Pieces, origin Key, canCastle bool, dims Dimensions, variant string, chess960 bool) []Key {
	m := MobilityFor(pieces, origin, canCastle, dims, variant, chess960)
	return destinations(m, KeyToPosition(origin), dims)
}

func destinations(m Mobility, from Position, dims Dimensions) []Key {
	out := make([]Key, 0, 16)
	for _, to := range AllPositions(dims) {
		if to == from {
			continue
		}
		if m(from.File, from.Rank, to.File, to.Rank) {
			out = append(out, PositionToKey(to, dims))
		}
	}
	return out
}
