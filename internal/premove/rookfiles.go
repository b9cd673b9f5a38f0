package premove

// RookFiles 返回 color 一方底线上己方车所在的列，给易位判断用。
// 这样 chess960 或车已移动的局面也能正确处理。
func RookFiles(pieces Pieces, c Color, dims Dimensions) []int {
	return RookFilesOnRank(pieces, c, relRank(c, 0, dims.Height))
}

// RookFilesOnRank 同 RookFiles，但指定绝对行号（shako 的易位行在第二行）
func RookFilesOnRank(pieces Pieces, c Color, rank int) []int {
	var files []int
	for k, pc := range pieces {
		if pc.Role != RoleRook || pc.Color != c {
			continue
		}
		pos := KeyToPosition(k)
		if pos.Rank == rank {
			files = append(files, pos.File)
		}
	}
	return files
}

// castlingRookFiles 按易位样式选择扫描的行
func castlingRookFiles(pieces Pieces, c Color, dims Dimensions, style CastleStyle) []int {
	if style == CastleShako {
		return RookFilesOnRank(pieces, c, relRank(c, 1, dims.Height))
	}
	return RookFiles(pieces, c, dims)
}
