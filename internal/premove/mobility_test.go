package premove

import (
	"sort"
	"testing"
)

func keysOf(ps ...Position) []Key {
	out := make([]Key, len(ps))
	for i, p := range ps {
		out[i] = PositionToKey(p, dims10x10)
	}
	return out
}

func sortedKeys(ks []Key) []string {
	out := make([]string, len(ks))
	for i, k := range ks {
		out[i] = string(k)
	}
	sort.Strings(out)
	return out
}

func assertKeys(t *testing.T, what string, got []Key, want ...Key) {
	t.Helper()
	g, w := sortedKeys(got), sortedKeys(want)
	if len(g) != len(w) {
		t.Fatalf("%s: got=%v want=%v", what, g, w)
	}
	for i := range g {
		if g[i] != w[i] {
			t.Fatalf("%s: got=%v want=%v", what, g, w)
		}
	}
}

func assertContains(t *testing.T, what string, got []Key, want Key) {
	t.Helper()
	for _, k := range got {
		if k == want {
			return
		}
	}
	t.Fatalf("%s: %s missing from %v", what, want, sortedKeys(got))
}

func TestRookLines(t *testing.T) {
	if !rook(4, 4, 4, 7) || !rook(4, 4, 7, 4) {
		t.Fatalf("rook must reach its rank and file")
	}
	if rook(4, 4, 5, 5) {
		t.Fatalf("rook must not move diagonally")
	}
	for y := 0; y < 8; y++ {
		if !rook(4, 4, 4, y) || !rook(4, 4, y, 4) {
			t.Fatalf("rook must reach any square on its lines, y=%d", y)
		}
	}
}

func TestKnightFromCenter(t *testing.T) {
	got := destinations(knight, Position{4, 4}, dims8x8)
	want := keysOf(
		Position{2, 3}, Position{2, 5}, Position{3, 2}, Position{3, 6},
		Position{5, 2}, Position{5, 6}, Position{6, 3}, Position{6, 5},
	)
	assertKeys(t, "knight e5", got, want...)

	corner := destinations(knight, Position{0, 0}, dims8x8)
	assertKeys(t, "knight a1", corner, "b3", "c2")
}

func TestCombinators(t *testing.T) {
	king := Or(wazir, ferz)
	for _, from := range AllPositions(Dimensions{5, 5}) {
		for _, to := range AllPositions(Dimensions{5, 5}) {
			if from == to {
				continue
			}
			x1, y1, x2, y2 := from.File, from.Rank, to.File, to.Rank
			if king(x1, y1, x2, y2) != kingStep(x1, y1, x2, y2) {
				t.Fatalf("Or(wazir, ferz) != king step at %+v -> %+v", from, to)
			}
			if And(queen, Not(rook))(x1, y1, x2, y2) != (bishop(x1, y1, x2, y2) && !rook(x1, y1, x2, y2)) {
				t.Fatalf("And/Not mismatch at %+v -> %+v", from, to)
			}
		}
	}
	if !amazon(0, 0, 1, 2) || !amazon(0, 0, 7, 7) || !amazon(0, 0, 0, 5) {
		t.Fatalf("amazon is queen + knight")
	}
	if Or()(0, 0, 1, 1) || !And()(0, 0, 1, 1) {
		t.Fatalf("empty Or is false, empty And is true")
	}
}

func TestPawn(t *testing.T) {
	w := pawn(White, dims8x8, 1)
	if !w(4, 1, 4, 3) || !w(4, 1, 4, 2) || !w(4, 1, 3, 2) || !w(4, 1, 5, 2) {
		t.Fatalf("white pawn from e2 reaches e3, e4, d3, f3")
	}
	if w(4, 2, 4, 4) || w(4, 1, 4, 0) || w(4, 1, 5, 3) {
		t.Fatalf("white pawn double step only from the first two ranks, never backwards")
	}
	b := pawn(Black, dims8x8, 1)
	if !b(4, 6, 4, 4) || !b(4, 6, 3, 5) || b(4, 6, 4, 7) {
		t.Fatalf("black pawn mirrors white")
	}
	if m := makrukPawn(White, dims8x8); m(4, 2, 4, 4) || !m(4, 2, 4, 3) {
		t.Fatalf("makruk pawn never double steps")
	}
}

func TestShogiPiecesMirrorByColor(t *testing.T) {
	dims := dims9x9
	assertKeys(t, "white gold e5", destinations(gold(White), Position{4, 4}, dims),
		"d6", "e6", "f6", "d5", "f5", "e4")
	assertKeys(t, "black gold e5", destinations(gold(Black), Position{4, 4}, dims),
		"d4", "e4", "f4", "d5", "f5", "e6")
	assertKeys(t, "white knight e5", destinations(shogiKnight(White), Position{4, 4}, dims), "d7", "f7")
	assertKeys(t, "black knight e5", destinations(shogiKnight(Black), Position{4, 4}, dims), "d3", "f3")
	assertKeys(t, "white lance e7", destinations(lance(White), Position{4, 6}, dims), "e8", "e9")
	assertKeys(t, "black silver e5", destinations(silver(Black), Position{4, 4}, dims),
		"d4", "e4", "f4", "d6", "f6")
}

func TestToriPieces(t *testing.T) {
	dims := Dimensions{7, 7}
	assertKeys(t, "white left quail d4", destinations(leftQuail(White), Position{3, 3}, dims),
		"d5", "d6", "d7", "e3", "f2", "g1", "c3")
	assertKeys(t, "white right quail d4", destinations(rightQuail(White), Position{3, 3}, dims),
		"d5", "d6", "d7", "c3", "b2", "a1", "e3")
	assertKeys(t, "white pheasant d4", destinations(pheasant(White), Position{3, 3}, dims), "d6", "c3", "e3")
	assertKeys(t, "black goose d4", destinations(goose(Black), Position{3, 3}, dims), "b2", "f2", "d6")
	if falcon(White)(3, 3, 3, 2) || !falcon(White)(3, 3, 2, 2) {
		t.Fatalf("falcon moves like a king except straight back")
	}
	if crane(White)(3, 3, 2, 3) || !crane(White)(3, 3, 3, 2) {
		t.Fatalf("crane moves like a king except sideways")
	}
	e := eagle(White)
	if !e(3, 0, 6, 3) || !e(3, 6, 3, 0) || !e(3, 3, 1, 1) || e(3, 3, 0, 0) || e(3, 3, 3, 6) {
		t.Fatalf("eagle geometry mismatch")
	}
}

func TestMusketeerLeapers(t *testing.T) {
	if !musketeerHawk(3, 3, 3, 5) || !musketeerHawk(3, 3, 6, 6) || musketeerHawk(3, 3, 4, 4) || musketeerHawk(3, 3, 7, 7) {
		t.Fatalf("hawk leaps 2 or 3 along the eight lines")
	}
	if !musketeerElephant(3, 3, 4, 4) || !musketeerElephant(3, 3, 3, 5) || musketeerElephant(3, 3, 4, 5) {
		t.Fatalf("elephant moves 1 or 2 along the eight lines")
	}
	if !leopard(3, 3, 5, 5) || leopard(3, 3, 6, 6) || !leopard(3, 3, 4, 5) {
		t.Fatalf("leopard is knight + bishop up to 2")
	}
	if !unicorn(3, 3, 5, 7) || unicorn(3, 3, 5, 5) {
		t.Fatalf("unicorn is knight + doubled knight leap")
	}

	d4 := Position{3, 3}
	if got := destinations(musketeerCannon, d4, dims8x8); len(got) != 24 {
		t.Fatalf("cannon covers the 5x5 box: got=%d squares", len(got))
	}
	assertKeys(t, "spider", destinations(musketeerSpider, d4, dims8x8),
		"c3", "e3", "c5", "e5", "b2", "f2", "b6", "f6",
		"b3", "b5", "c2", "c6", "e2", "e6", "f3", "f5",
		"b4", "f4", "d2", "d6")
	fortress := destinations(musketeerFortress, d4, dims8x8)
	assertKeys(t, "fortress", fortress,
		"c3", "e3", "c5", "e5", "b2", "f2", "b6", "f6", "a1", "g1", "a7", "g7",
		"b3", "b5", "c2", "c6", "e2", "e6", "f3", "f5",
		"b4", "f4", "d2", "d6")
	if musketeerFortress(3, 3, 7, 7) {
		t.Fatalf("fortress bishop reach stops at 3")
	}
}

func TestMusketeerGatedPieces(t *testing.T) {
	pieces, err := ParseBoard("musketeer", "8/8/8/5f2/3C4/8/1S6/8")
	if err != nil {
		t.Fatal(err)
	}
	if p := pieces["d4"]; p.Role != RoleCannon || p.Color != White {
		t.Fatalf("d4: got=%s", p)
	}
	if p := pieces["f5"]; p.Role != RoleFortress || p.Color != Black {
		t.Fatalf("f5: got=%s", p)
	}
	if got := Premove(pieces, "d4", false, dims8x8, "musketeer", false); len(got) != 24 {
		t.Fatalf("cannon d4: got=%d squares", len(got))
	}
	if got := Premove(pieces, "b2", false, dims8x8, "musketeer", false); len(got) == 0 {
		t.Fatalf("spider must have destinations")
	}
	if got := Premove(pieces, "f5", false, dims8x8, "musketeer", false); len(got) == 0 {
		t.Fatalf("fortress must have destinations")
	}
}

func TestXiangqiAdvisorStaysInPalace(t *testing.T) {
	adv := xiangqiAdvisor(White, dims9x10)
	for _, corner := range []Position{{3, 0}, {5, 0}, {3, 2}, {5, 2}} {
		assertKeys(t, "advisor from corner", destinations(adv, corner, dims9x10), "e2")
	}
	assertKeys(t, "advisor from center", destinations(adv, Position{4, 1}, dims9x10), "d1", "f1", "d3", "f3")

	blackAdv := xiangqiAdvisor(Black, dims9x10)
	for _, k := range destinations(blackAdv, Position{3, 9}, dims9x10) {
		p := KeyToPosition(k)
		if !InPalace(Black, dims9x10, p.File, p.Rank) {
			t.Fatalf("black advisor left the palace: %s", k)
		}
	}
}

func TestXiangqiElephantAndSoldier(t *testing.T) {
	el := xiangqiElephant(White, dims9x10)
	assertKeys(t, "elephant c5 stays home", destinations(el, Position{2, 4}, dims9x10), "a3", "e3")

	s := xiangqiSoldier(White, dims9x10)
	assertKeys(t, "soldier before river", destinations(s, Position{4, 3}, dims9x10), "e5")
	assertKeys(t, "soldier after river", destinations(s, Position{4, 5}, dims9x10), "e7", "d6", "f6")

	bs := xiangqiSoldier(Black, dims9x10)
	assertKeys(t, "black soldier after river", destinations(bs, Position{4, 4}, dims9x10), "e4", "d5", "f5")
}

func TestJanggiDiagonalsOnlyFromCornersAndCenter(t *testing.T) {
	king := janggiKing(White, dims9x10)
	assertKeys(t, "janggi king edge midpoint", destinations(king, Position{4, 0}, dims9x10), "d1", "f1", "e2")
	assertKeys(t, "janggi king corner", destinations(king, Position{3, 0}, dims9x10), "e1", "d2", "e2")
	assertKeys(t, "janggi king center", destinations(king, Position{4, 1}, dims9x10),
		"d1", "e1", "f1", "d2", "f2", "d3", "e3", "f3")

	r := janggiRook(dims9x10)
	if !r(3, 0, 4, 1) || !r(3, 0, 5, 2) || !r(4, 8, 3, 9) {
		t.Fatalf("janggi rook slides along palace diagonals in both palaces")
	}
	if r(4, 0, 3, 1) || r(4, 0, 5, 1) || r(3, 1, 4, 2) {
		t.Fatalf("janggi rook has no diagonals from edge midpoints")
	}

	c := janggiCannon(dims9x10)
	if !c(3, 0, 5, 2) || c(3, 0, 4, 1) {
		t.Fatalf("janggi cannon only jumps corner to corner")
	}

	p := janggiPawn(White, dims9x10)
	if !p(3, 7, 4, 8) || !p(4, 8, 5, 9) {
		t.Fatalf("janggi pawn steps forward along enemy palace diagonals")
	}
	if p(4, 7, 3, 8) || p(4, 7, 5, 8) || p(4, 8, 3, 7) {
		t.Fatalf("janggi pawn: no diagonal from an edge midpoint, never backwards")
	}
	if p(3, 0, 4, 1) {
		t.Fatalf("janggi pawn has no diagonal in its own palace")
	}
	assertKeys(t, "janggi pawn", destinations(p, Position{2, 3}, dims9x10), "c5", "b4", "d4")

	assertKeys(t, "janggi elephant", destinations(janggiElephant, Position{4, 0}, dims9x10),
		"b3", "h3", "c4", "g4")
}

func TestSpartanPieces(t *testing.T) {
	h := hoplite(Black, dims8x8)
	assertKeys(t, "hoplite e7", destinations(h, Position{4, 6}, dims8x8), "d6", "e6", "f6", "c5", "g5")
	assertKeys(t, "hoplite e5", destinations(h, Position{4, 4}, dims8x8), "d4", "e4", "f4")
	if !lieutenant(3, 3, 4, 3) || lieutenant(3, 3, 3, 4) || !lieutenant(3, 3, 5, 5) {
		t.Fatalf("lieutenant geometry mismatch")
	}
	if !spartanCaptain(3, 3, 3, 5) || spartanCaptain(3, 3, 4, 4) {
		t.Fatalf("captain is wazir + dabbaba")
	}
}
