package storage

import (
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/dgraph-io/badger/v4"

	"boardmoves/internal/premove"
	"boardmoves/internal/server/session"
)

func openTemp(t *testing.T) (*Storage, string) {
	t.Helper()
	dir := filepath.Join(t.TempDir(), "db")
	s, err := Open(Options{Dir: dir})
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	return s, dir
}

func TestSaveLoadBoard(t *testing.T) {
	s, dir := openTemp(t)

	pieces, err := premove.ParseBoard("janggi", "rnba1abnr/4k4/1c5c1/p1p1p1p1p/9/9/P1P1P1P1P/1C5C1/4K4/RNBA1ABNR")
	if err != nil {
		t.Fatal(err)
	}
	b := &session.Board{
		ID:        "b1",
		Variant:   "janggi",
		Pieces:    pieces,
		CreatedAt: time.Now().UTC().Truncate(time.Second),
	}
	b.UpdatedAt = b.CreatedAt
	if err := s.SaveBoard(b); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := s.Close(); err != nil {
		t.Fatal(err)
	}

	// 重新打开，确认真的落盘了
	s, err = Open(Options{Dir: dir})
	if err != nil {
		t.Fatal(err)
	}
	defer s.Close()

	got, err := s.LoadBoard("b1")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got.Variant != "janggi" || !got.CreatedAt.Equal(b.CreatedAt) {
		t.Fatalf("got=%+v", got)
	}
	if len(got.Pieces) != len(pieces) {
		t.Fatalf("pieces: got=%d want=%d", len(got.Pieces), len(pieces))
	}
	for k, p := range pieces {
		if got.Pieces[k] != p {
			t.Fatalf("%s: got=%v want=%v", k, got.Pieces[k], p)
		}
	}
}

func TestLoadMissing(t *testing.T) {
	s, _ := openTemp(t)
	defer s.Close()
	if _, err := s.LoadBoard("nope"); !errors.Is(err, session.ErrNotFound) {
		t.Fatalf("got=%v want ErrNotFound", err)
	}
}

func TestDeleteAndList(t *testing.T) {
	s, err := Open(Options{})
	if err != nil {
		t.Fatal(err)
	}
	defer s.Close()

	for _, id := range []string{"a", "b", "c"} {
		if err := s.SaveBoard(&session.Board{ID: id, Variant: "chess"}); err != nil {
			t.Fatal(err)
		}
	}
	if err := s.DeleteBoard("b"); err != nil {
		t.Fatal(err)
	}
	ids, err := s.BoardIDs()
	if err != nil {
		t.Fatal(err)
	}
	if len(ids) != 2 || ids[0] != "a" || ids[1] != "c" {
		t.Fatalf("ids=%v", ids)
	}
	if _, err := s.LoadBoard("b"); !errors.Is(err, session.ErrNotFound) {
		t.Fatalf("deleted board still loads: %v", err)
	}
}

func TestPrune(t *testing.T) {
	s, err := Open(Options{})
	if err != nil {
		t.Fatal(err)
	}
	defer s.Close()

	if err := s.SaveBoard(&session.Board{ID: "good", Variant: "shogi"}); err != nil {
		t.Fatal(err)
	}
	if err := s.SaveBoard(&session.Board{ID: "retired", Variant: "nosuchvariant"}); err != nil {
		t.Fatal(err)
	}
	err = s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(boardKey("garbled"), []byte("{not json"))
	})
	if err != nil {
		t.Fatal(err)
	}

	n, err := s.Prune()
	if err != nil {
		t.Fatal(err)
	}
	if n != 2 {
		t.Fatalf("pruned=%d want 2", n)
	}
	ids, _ := s.BoardIDs()
	if len(ids) != 1 || ids[0] != "good" {
		t.Fatalf("ids after prune=%v", ids)
	}
}

func TestManagerOverStorage(t *testing.T) {
	s, _ := openTemp(t)
	defer s.Close()

	m := session.NewManager(s)
	b, err := m.NewBoard("xiangqi")
	if err != nil {
		t.Fatal(err)
	}

	m2 := session.NewManager(s)
	restored, err := m2.Get(b.ID)
	if err != nil {
		t.Fatal(err)
	}
	fen, err := restored.FEN()
	if err != nil {
		t.Fatal(err)
	}
	if fen != "rnbakabnr/9/1c5c1/p1p1p1p1p/9/9/P1P1P1P1P/1C5C1/9/RNBAKABNR" {
		t.Fatalf("fen=%s", fen)
	}

	if err := m2.Delete(b.ID); err != nil {
		t.Fatal(err)
	}
	if _, err := s.LoadBoard(b.ID); !errors.Is(err, session.ErrNotFound) {
		t.Fatalf("manager delete must reach badger: %v", err)
	}
}
