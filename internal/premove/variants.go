package premove

import "sort"

type CastleStyle int

const (
	CastleNone CastleStyle = iota
	CastleStandard
	CastleCapablanca // 王在 f 列，易位到 c / i
	CastleShako      // 易位行在第二行，王到 d / h
)

func (s CastleStyle) String() string {
	switch s {
	case CastleStandard:
		return "standard"
	case CastleCapablanca:
		return "capablanca"
	case CastleShako:
		return "shako"
	}
	return "none"
}

// Variant 一个变体的静态配置
type Variant struct {
	Name    string
	Dims    Dimensions
	Start   string // FEN 的棋盘部分
	Castle  CastleStyle
	Pockets bool // 有手驹 / 可以打入

	doubleStepRank int
	letters        []letter
	family         family
}

type letter struct {
	ch   byte
	role Role
}

var (
	chessLetters = []letter{
		{'p', RolePawn}, {'n', RoleKnight}, {'b', RoleBishop}, {'r', RoleRook},
		{'q', RoleQueen}, {'k', RoleKing}, {'h', RoleHawk}, {'e', RoleElephant},
		{'c', RoleChancellor}, {'a', RoleArchbishop},
	}
	shogiLetters = []letter{
		{'p', RolePawn}, {'l', RoleLance}, {'n', RoleKnight}, {'s', RoleSilver},
		{'g', RoleGold}, {'b', RoleBishop}, {'r', RoleRook}, {'k', RoleKing},
	}
	makrukLetters = []letter{
		{'p', RolePawn}, {'n', RoleKnight}, {'s', RoleKhon}, {'m', RoleMet},
		{'f', RoleMet}, {'r', RoleRook}, {'k', RoleKing},
	}
	xiangqiLetters = []letter{
		{'p', RolePawn}, {'n', RoleKnight}, {'b', RoleElephant}, {'a', RoleAdvisor},
		{'c', RoleCannon}, {'r', RoleRook}, {'k', RoleKing},
		{'h', RoleKnight}, {'e', RoleElephant},
	}
	minixiangqiLetters = []letter{
		{'p', RolePawn}, {'n', RoleKnight}, {'h', RoleKnight}, {'c', RoleCannon},
		{'r', RoleRook}, {'k', RoleKing},
	}
	aseanLetters = []letter{
		{'p', RolePawn}, {'n', RoleKnight}, {'b', RoleBishop}, {'r', RoleRook},
		{'q', RoleQueen}, {'k', RoleKing},
	}
	dobutsuLetters = []letter{
		{'l', RoleLion}, {'g', RoleGiraffe}, {'e', RoleElephant}, {'c', RoleChick},
	}
	toriLetters = []letter{
		{'k', RolePhoenix}, {'c', RoleCrane}, {'p', RolePheasant}, {'l', RoleLeftQuail},
		{'r', RoleRightQuail}, {'f', RoleFalcon}, {'s', RoleSwallow},
	}
)

// withLetters 在 base 前面加上覆盖项（编码时先出现的优先）
func withLetters(base []letter, extra ...letter) []letter {
	out := make([]letter, 0, len(base)+len(extra))
	out = append(out, extra...)
	for _, l := range base {
		dup := false
		for _, e := range extra {
			if e.ch == l.ch {
				dup = true
				break
			}
		}
		if !dup {
			out = append(out, l)
		}
	}
	return out
}

const (
	startChess      = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR"
	startCapablanca = "rnabqkbcnr/pppppppppp/10/10/10/10/PPPPPPPPPP/RNABQKBCNR"
	startGothic     = "rnbqckabnr/pppppppppp/10/10/10/10/PPPPPPPPPP/RNBQCKABNR"
	startGrand      = "r8r/1nbqkcabn1/pppppppppp/10/10/10/10/PPPPPPPPPP/1NBQKCABN1/R8R"
	startMakruk     = "rnsmksnr/8/pppppppp/8/8/PPPPPPPP/8/RNSKMSNR"
	startShogi      = "lnsgkgsnl/1r5b1/ppppppppp/9/9/9/PPPPPPPPP/1B5R1/LNSGKGSNL"
	startXiangqi    = "rnbakabnr/9/1c5c1/p1p1p1p1p/9/9/P1P1P1P1P/1C5C1/9/RNBAKABNR"
)

var (
	dims8x8   = Dimensions{8, 8}
	dims10x8  = Dimensions{10, 8}
	dims10x10 = Dimensions{10, 10}
	dims9x9   = Dimensions{9, 9}
	dims9x10  = Dimensions{9, 10}
)

func chessLike(name, start string, pockets bool, f family) *Variant {
	return &Variant{
		Name: name, Dims: dims8x8, Start: start, Castle: CastleStandard, Pockets: pockets,
		doubleStepRank: 1, letters: chessLetters, family: f,
	}
}

var variantList = []*Variant{
	chessLike("chess", startChess, false, chessFamily),
	chessLike("crazyhouse", startChess, true, chessFamily),
	chessLike("placement", "8/pppppppp/8/8/8/8/PPPPPPPP/8", true, chessFamily),
	chessLike("atomic", startChess, false, chessFamily),
	chessLike("kingofthehill", startChess, false, chessFamily),
	chessLike("3check", startChess, false, chessFamily),
	chessLike("horde", "rnbqkbnr/pppppppp/8/1PP2PP1/PPPPPPPP/PPPPPPPP/PPPPPPPP/PPPPPPPP", false, chessFamily),
	{Name: "antichess", Dims: dims8x8, Start: startChess, doubleStepRank: 1, letters: chessLetters, family: chessFamily},
	{Name: "racingkings", Dims: dims8x8, Start: "8/8/8/8/8/8/krbnNBRK/qrbnNBRQ", doubleStepRank: 1, letters: chessLetters, family: chessFamily},
	chessLike("seirawan", startChess, true, chessFamily),
	chessLike("shouse", startChess, true, chessFamily),
	chessLike("hoppelpoppel", startChess, false, hoppelpoppelFamily),
	{
		Name: "musketeer", Dims: dims8x8, Start: startChess, Castle: CastleStandard, doubleStepRank: 1,
		letters: withLetters(chessLetters, letter{'l', RoleLeopard}, letter{'u', RoleUnicorn}, letter{'d', RoleDragon},
			letter{'c', RoleCannon}, letter{'s', RoleSpider}, letter{'f', RoleFortress}),
		family:  musketeerFamily,
	},
	{Name: "capablanca", Dims: dims10x8, Start: startCapablanca, Castle: CastleCapablanca, doubleStepRank: 1, letters: chessLetters, family: chessFamily},
	{Name: "capahouse", Dims: dims10x8, Start: startCapablanca, Castle: CastleCapablanca, Pockets: true, doubleStepRank: 1, letters: chessLetters, family: chessFamily},
	{Name: "gothic", Dims: dims10x8, Start: startGothic, Castle: CastleCapablanca, doubleStepRank: 1, letters: chessLetters, family: chessFamily},
	{Name: "gothhouse", Dims: dims10x8, Start: startGothic, Castle: CastleCapablanca, Pockets: true, doubleStepRank: 1, letters: chessLetters, family: chessFamily},
	{Name: "grand", Dims: dims10x10, Start: startGrand, doubleStepRank: 2, letters: chessLetters, family: chessFamily},
	{Name: "grandhouse", Dims: dims10x10, Start: startGrand, Pockets: true, doubleStepRank: 2, letters: chessLetters, family: chessFamily},
	{
		Name: "shako", Dims: dims10x10, Castle: CastleShako, doubleStepRank: 2,
		Start:   "c8c/ernbqkbnre/pppppppppp/10/10/10/10/PPPPPPPPPP/ERNBQKBNRE/C8C",
		letters: withLetters(chessLetters, letter{'c', RoleCannon}),
		family:  shakoFamily,
	},
	{Name: "makruk", Dims: dims8x8, Start: startMakruk, doubleStepRank: -1, letters: makrukLetters, family: makrukFamily},
	{Name: "makpong", Dims: dims8x8, Start: startMakruk, doubleStepRank: -1, letters: makrukLetters, family: makrukFamily},
	{Name: "cambodian", Dims: dims8x8, Start: startMakruk, doubleStepRank: -1, letters: makrukLetters, family: makrukFamily},
	{Name: "sittuyin", Dims: dims8x8, Start: "8/8/4pppp/pppp4/4PPPP/PPPP4/8/8", Pockets: true, doubleStepRank: -1, letters: makrukLetters, family: makrukFamily},
	{Name: "asean", Dims: dims8x8, Start: "rnbqkbnr/8/pppppppp/8/8/PPPPPPPP/8/RNBQKBNR", doubleStepRank: -1, letters: aseanLetters, family: aseanFamily},
	{Name: "shogi", Dims: dims9x9, Start: startShogi, Pockets: true, letters: shogiLetters, family: shogiFamily},
	{Name: "minishogi", Dims: Dimensions{5, 5}, Start: "rbsgk/4p/5/P4/KGSBR", Pockets: true, letters: shogiLetters, family: shogiFamily},
	{Name: "gorogoroplus", Dims: Dimensions{5, 6}, Start: "sgkgs/5/1ppp1/1PPP1/5/SGKGS", Pockets: true, letters: shogiLetters, family: shogiFamily},
	{Name: "kyotoshogi", Dims: Dimensions{5, 5}, Start: "p+nks+l/5/5/5/+LSK+NP", Pockets: true, letters: shogiLetters, family: kyotoFamily},
	{Name: "dobutsu", Dims: Dimensions{3, 4}, Start: "gle/1c1/1C1/ELG", Pockets: true, letters: dobutsuLetters, family: dobutsuFamily},
	{Name: "torishogi", Dims: Dimensions{7, 7}, Start: "rpckcpl/3f3/sssssss/2s1S2/SSSSSSS/3F3/LPCKCPR", Pockets: true, letters: toriLetters, family: toriFamily},
	{Name: "xiangqi", Dims: dims9x10, Start: startXiangqi, letters: xiangqiLetters, family: xiangqiFamily},
	{Name: "manchu", Dims: dims9x10, Start: "rnbakabnr/9/1c5c1/p1p1p1p1p/9/9/P1P1P1P1P/9/9/M1BAKAB2", letters: withLetters(xiangqiLetters, letter{'m', RoleBanner}), family: manchuFamily},
	{Name: "minixiangqi", Dims: Dimensions{7, 7}, Start: "rcnkncr/p1ppp1p/7/7/7/P1PPP1P/RCNKNCR", letters: minixiangqiLetters, family: minixiangqiFamily},
	{Name: "janggi", Dims: dims9x10, Start: "rnba1abnr/4k4/1c5c1/p1p1p1p1p/9/9/P1P1P1P1P/1C5C1/4K4/RNBA1ABNR", letters: xiangqiLetters, family: janggiFamily},
	{
		Name: "synochess", Dims: dims8x8, Castle: CastleStandard, Pockets: true, doubleStepRank: 1,
		Start:   "rneakenr/8/1c4c1/1ss2ss1/8/8/PPPPPPPP/RNBQKBNR",
		letters: withLetters(chessLetters, letter{'a', RoleAdvisor}, letter{'c', RoleCannon}, letter{'s', RoleSoldier}),
		family:  synochessFamily,
	},
	{
		Name: "shinobi", Dims: dims8x8, Castle: CastleStandard, Pockets: true, doubleStepRank: 1,
		Start: "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/LH1CK1HL",
		letters: withLetters(chessLetters, letter{'l', RoleLance}, letter{'h', RoleHorse}, letter{'c', RoleCaptain},
			letter{'m', RoleMonk}, letter{'d', RoleDragon}, letter{'j', RoleNinja}),
		family: shinobiFamily,
	},
	{
		Name: "orda", Dims: dims8x8, Castle: CastleStandard, doubleStepRank: 1,
		Start: "lhaykahl/8/pppppppp/8/8/8/PPPPPPPP/RNBQKBNR",
		letters: withLetters(chessLetters, letter{'l', RoleLancer}, letter{'h', RoleKheshig}, letter{'a', RoleArcher},
			letter{'y', RoleYurt}),
		family: ordaFamily,
	},
	{
		Name: "empire", Dims: dims8x8, Castle: CastleStandard, doubleStepRank: 1,
		Start: "rnbqkbnr/pppppppp/8/8/8/PPPSSPPP/8/TECDKCET",
		letters: withLetters(chessLetters, letter{'e', RoleEagle}, letter{'c', RoleCardinal}, letter{'t', RoleTower},
			letter{'d', RoleDuke}, letter{'s', RoleSoldier}),
		family: empireFamily,
	},
	{
		Name: "spartan", Dims: dims8x8, Castle: CastleStandard, doubleStepRank: 1,
		Start: "lgkcckwl/hhhhhhhh/8/8/8/8/PPPPPPPP/RNBQKBNR",
		letters: withLetters(chessLetters, letter{'l', RoleLieutenant}, letter{'g', RoleGeneral}, letter{'c', RoleCaptain},
			letter{'w', RoleWarlord}, letter{'h', RoleHoplite}),
		family: spartanFamily,
	},
}

var variantIndex = func() map[string]*Variant {
	m := make(map[string]*Variant, len(variantList))
	for _, v := range variantList {
		m[v.Name] = v
	}
	return m
}()

// LookupVariant 按名字查找变体
func LookupVariant(name string) (*Variant, bool) {
	v, ok := variantIndex[name]
	return v, ok
}

// Variants 按名字排序返回所有变体
func Variants() []*Variant {
	out := make([]*Variant, len(variantList))
	copy(out, variantList)
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Roles 返回该变体棋谱字母表里出现的所有棋子种类
func (v *Variant) Roles() []Role {
	seen := make(map[Role]bool)
	var out []Role
	for _, l := range v.letters {
		if !seen[l.role] {
			seen[l.role] = true
			out = append(out, l.role)
		}
	}
	return out
}
