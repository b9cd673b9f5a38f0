package premove

// mobilityContext 构造走法判断所需的全部上下文
type mobilityContext struct {
	color          Color
	promoted       bool
	dims           Dimensions
	canCastle      bool
	chess960       bool
	castle         CastleStyle
	doubleStepRank int
	rookFiles      []int
}

type builder func(ctx *mobilityContext) Mobility

// family 变体族的走法表：棋子种类 -> 走法构造器
type family map[Role]builder

func fixed(m Mobility) builder {
	return func(*mobilityContext) Mobility { return m }
}

func colored(f func(Color) Mobility) builder {
	return func(ctx *mobilityContext) Mobility { return f(ctx.color) }
}

func zoned(f func(Color, Dimensions) Mobility) builder {
	return func(ctx *mobilityContext) Mobility { return f(ctx.color, ctx.dims) }
}

func sized(f func(Dimensions) Mobility) builder {
	return func(ctx *mobilityContext) Mobility { return f(ctx.dims) }
}

// promotable 未升变 / 升变两种走法
func promotable(base, promoted builder) builder {
	return func(ctx *mobilityContext) Mobility {
		if ctx.promoted {
			return promoted(ctx)
		}
		return base(ctx)
	}
}

// extend 复制 base 并覆盖部分棋子
func extend(base family, overrides family) family {
	out := make(family, len(base)+len(overrides))
	for r, b := range base {
		out[r] = b
	}
	for r, b := range overrides {
		out[r] = b
	}
	return out
}

func chessPawn(ctx *mobilityContext) Mobility {
	return pawn(ctx.color, ctx.dims, ctx.doubleStepRank)
}

func chessKing(ctx *mobilityContext) Mobility {
	return castlingKing(ctx.color, ctx.dims, ctx.castle, ctx.rookFiles, ctx.canCastle, ctx.chess960)
}

// 国际象棋族。seirawan 的 hawk = 象+马，elephant = 车+马。
var chessFamily = family{
	RoleKing:       chessKing,
	RoleQueen:      fixed(queen),
	RoleRook:       fixed(rook),
	RoleBishop:     fixed(bishop),
	RoleKnight:     fixed(knight),
	RolePawn:       chessPawn,
	RoleChancellor: fixed(chancellor),
	RoleArchbishop: fixed(archbishop),
	RoleCentaur:    fixed(centaur),
	RoleAmazon:     fixed(amazon),
	RoleWazir:      fixed(wazir),
	RoleFerz:       fixed(ferz),
	RoleHawk:       fixed(archbishop),
	RoleElephant:   fixed(chancellor),
}

var hoppelpoppelFamily = extend(chessFamily, family{
	RoleKnight: fixed(hoppel),
	RoleBishop: fixed(hoppel),
})

var musketeerFamily = extend(chessFamily, family{
	RoleHawk:     fixed(musketeerHawk),
	RoleElephant: fixed(musketeerElephant),
	RoleLeopard:  fixed(leopard),
	RoleUnicorn:  fixed(unicorn),
	RoleDragon:   fixed(amazon),
	RoleCannon:   fixed(musketeerCannon),
	RoleSpider:   fixed(musketeerSpider),
	RoleFortress: fixed(musketeerFortress),
})

var shakoFamily = extend(chessFamily, family{
	RoleElephant: fixed(ferzAlfil),
	RoleCannon:   fixed(rook),
})

var makrukFamily = family{
	RoleKing:   fixed(kingStep),
	RoleMet:    fixed(ferz),
	RoleKhon:   colored(khon),
	RoleRook:   fixed(rook),
	RoleKnight: fixed(knight),
	RolePawn:   promotable(zoned(makrukPawn), fixed(ferz)),
}

var aseanFamily = extend(makrukFamily, family{
	RoleBishop: colored(khon),
	RoleQueen:  fixed(ferz),
})

var shogiFamily = family{
	RoleKing:   fixed(kingStep),
	RoleRook:   promotable(fixed(rook), fixed(shogiDragon)),
	RoleBishop: promotable(fixed(bishop), fixed(shogiHorse)),
	RoleGold:   colored(gold),
	RoleSilver: promotable(colored(silver), colored(gold)),
	RoleKnight: promotable(colored(shogiKnight), colored(gold)),
	RoleLance:  promotable(colored(lance), colored(gold)),
	RolePawn:   promotable(colored(shogiPawn), colored(gold)),
}

// 京都将棋每走一步翻面：步<->飞、银<->角、桂<->金、香<->と
var kyotoFamily = family{
	RoleKing:   fixed(kingStep),
	RoleRook:   fixed(rook),
	RoleBishop: fixed(bishop),
	RoleGold:   colored(gold),
	RolePawn:   promotable(colored(shogiPawn), fixed(rook)),
	RoleSilver: promotable(colored(silver), fixed(bishop)),
	RoleKnight: promotable(colored(shogiKnight), colored(gold)),
	RoleLance:  promotable(colored(lance), colored(gold)),
}

var dobutsuFamily = family{
	RoleLion:     fixed(kingStep),
	RoleGiraffe:  fixed(wazir),
	RoleElephant: fixed(ferz),
	RoleChick:    promotable(colored(shogiPawn), colored(gold)),
}

var toriFamily = family{
	RolePhoenix:    fixed(kingStep),
	RoleCrane:      colored(crane),
	RolePheasant:   colored(pheasant),
	RoleLeftQuail:  colored(leftQuail),
	RoleRightQuail: colored(rightQuail),
	RoleFalcon:     promotable(colored(falcon), colored(eagle)),
	RoleSwallow:    promotable(colored(swallow), colored(goose)),
}

var xiangqiFamily = family{
	RoleKing:     zoned(xiangqiKing),
	RoleAdvisor:  zoned(xiangqiAdvisor),
	RoleElephant: zoned(xiangqiElephant),
	RoleKnight:   fixed(knight),
	RoleRook:     fixed(rook),
	RoleCannon:   fixed(rook),
	RolePawn:     zoned(xiangqiSoldier),
}

var manchuFamily = extend(xiangqiFamily, family{
	RoleBanner: fixed(chancellor),
})

var minixiangqiFamily = family{
	RoleKing:   zoned(xiangqiKing),
	RoleKnight: fixed(knight),
	RoleRook:   fixed(rook),
	RoleCannon: fixed(rook),
	RolePawn:   colored(sidewaysSoldier),
}

// janggi 的 bishop 与 elephant 同为 (2,3) 斜日
var janggiFamily = family{
	RoleKing:     zoned(janggiKing),
	RoleAdvisor:  zoned(janggiKing),
	RoleElephant: fixed(janggiElephant),
	RoleBishop:   fixed(janggiElephant),
	RoleKnight:   fixed(knight),
	RoleRook:     sized(janggiRook),
	RoleCannon:   sized(janggiCannon),
	RolePawn:     zoned(janggiPawn),
	RoleSoldier:  zoned(janggiPawn),
}

var synochessFamily = extend(chessFamily, family{
	RoleAdvisor:  fixed(kingStep),
	RoleElephant: fixed(ferzAlfil),
	RoleCannon:   fixed(rook),
	RoleSoldier:  colored(sidewaysSoldier),
})

var shinobiFamily = extend(chessFamily, family{
	RoleLance:   promotable(colored(lance), fixed(rook)),
	RoleHorse:   promotable(colored(shogiKnight), fixed(knight)),
	RoleCaptain: fixed(kingStep),
	RoleMonk:    promotable(fixed(ferz), fixed(bishop)),
	RoleDragon:  fixed(shogiDragon),
	RoleNinja:   fixed(archbishop),
})

var ordaFamily = extend(chessFamily, family{
	RoleLancer:  fixed(chancellor),
	RoleKheshig: fixed(centaur),
	RoleArcher:  fixed(archbishop),
	RoleYurt:    colored(silver),
})

// empire 的四种大子都按后走，只是吃法不同，预走取走法和吃法的并集。
// 鹰按马吃，其余三种的吃法落在后的线上。
var empireFamily = extend(chessFamily, family{
	RoleEagle:    fixed(Or(queen, knight)),
	RoleCardinal: fixed(queen),
	RoleTower:    fixed(queen),
	RoleDuke:     fixed(queen),
	RoleSoldier:  colored(sidewaysSoldier),
})

var spartanFamily = extend(chessFamily, family{
	RoleHoplite:    zoned(hoplite),
	RoleLieutenant: fixed(lieutenant),
	RoleGeneral:    fixed(spartanGeneral),
	RoleWarlord:    fixed(archbishop),
	RoleCaptain:    fixed(spartanCaptain),
})

// MobilityFor 选出 origin 上棋子的走法。未知变体或棋子一律没有落点。
func MobilityFor(pieces Pieces, origin Key, canCastle bool, dims Dimensions, variant string, chess960 bool) Mobility {
	v, ok := LookupVariant(variant)
	if !ok {
		return noMobility
	}
	pc := pieces[origin]
	build, ok := v.family[pc.Role]
	if !ok {
		return noMobility
	}
	ctx := &mobilityContext{
		color:          pc.Color,
		promoted:       pc.Promoted,
		dims:           dims,
		canCastle:      canCastle,
		chess960:       chess960,
		castle:         v.Castle,
		doubleStepRank: v.doubleStepRank,
	}
	if pc.Role == RoleKing && canCastle && v.Castle != CastleNone {
		ctx.rookFiles = castlingRookFiles(pieces, pc.Color, dims, v.Castle)
	}
	return build(ctx)
}
