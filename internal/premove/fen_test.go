package premove

import (
	"errors"
	"testing"
)

func TestStartPositionsRoundTrip(t *testing.T) {
	for _, v := range Variants() {
		pieces, err := ParseBoard(v.Name, v.Start)
		if err != nil {
			t.Fatalf("%s: parse start: %v", v.Name, err)
		}
		got, err := EncodeBoard(v.Name, pieces)
		if err != nil {
			t.Fatalf("%s: encode: %v", v.Name, err)
		}
		if got != v.Start {
			t.Errorf("%s: got=%s want=%s", v.Name, got, v.Start)
		}
	}
}

func TestParseBoardPieces(t *testing.T) {
	pieces, err := ParseBoard("chess", startChess+" w KQkq - 0 1")
	if err != nil {
		t.Fatal(err)
	}
	if len(pieces) != 32 {
		t.Fatalf("got=%d pieces want=32", len(pieces))
	}
	if p := pieces["e1"]; p.Role != RoleKing || p.Color != White {
		t.Fatalf("e1: got=%s", p)
	}
	if p := pieces["d8"]; p.Role != RoleQueen || p.Color != Black {
		t.Fatalf("d8: got=%s", p)
	}

	grand, err := ParseBoard("grand", startGrand)
	if err != nil {
		t.Fatal(err)
	}
	if p := grand["a10"]; p.Role != RoleRook || p.Color != Black {
		t.Fatalf("a10: got=%s", p)
	}
	if p := grand["f2"]; p.Role != RoleChancellor {
		t.Fatalf("f2: got=%s", p)
	}

	kyoto, err := ParseBoard("kyotoshogi", "p+nks+l/5/5/5/+LSK+NP")
	if err != nil {
		t.Fatal(err)
	}
	if p := kyoto["a1"]; p.Role != RoleLance || !p.Promoted || p.Color != White {
		t.Fatalf("a1: got=%s", p)
	}
	if p := kyoto["b5"]; p.Role != RoleKnight || !p.Promoted || p.Color != Black {
		t.Fatalf("b5: got=%s", p)
	}
	if p := kyoto["c5"]; p.Promoted {
		t.Fatalf("c5: promotion must not leak to the next piece")
	}

	// 手驹部分忽略
	if _, err := ParseBoard("crazyhouse", startChess+"[Qp] w KQkq - 0 1"); err != nil {
		t.Fatalf("pocket suffix: %v", err)
	}
}

func TestParseBoardInvalid(t *testing.T) {
	cases := []struct {
		name    string
		variant string
		fen     string
	}{
		{"unknown variant", "nosuch", startChess},
		{"too few ranks", "chess", "8/8/8/8/8/8/8"},
		{"too many squares", "chess", "9/8/8/8/8/8/8/8"},
		{"short rank", "chess", "7/8/8/8/8/8/8/8"},
		{"unknown letter", "chess", "8/8/8/8/8/8/8/7X"},
		{"letter from another variant", "chess", "8/8/8/8/8/8/8/7S"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseBoard(tc.variant, tc.fen)
			if !errors.Is(err, ErrInvalidFEN) {
				t.Fatalf("got=%v want ErrInvalidFEN", err)
			}
		})
	}
}

func TestEncodeBoardUnknownRole(t *testing.T) {
	_, err := EncodeBoard("chess", Pieces{"a1": {Role: RolePhoenix, Color: White}})
	if !errors.Is(err, ErrInvalidFEN) {
		t.Fatalf("got=%v want ErrInvalidFEN", err)
	}
}
