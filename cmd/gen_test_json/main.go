package main

import (
	"encoding/json"
	"flag"
	"math/rand"
	"os"
	"strings"

	"github.com/apex/log"
	"github.com/apex/log/handlers/cli"

	"boardmoves/internal/premove"
)

// TestCase 一个局面里一次查询的期望结果，给前端棋盘组件做对照测试
type TestCase struct {
	Variant   string   `json:"variant"`
	FEN       string   `json:"fen"`
	Kind      string   `json:"kind"` // "premove" / "predrop"
	Origin    string   `json:"origin,omitempty"`
	Role      string   `json:"role,omitempty"`
	Color     string   `json:"color,omitempty"`
	CanCastle bool     `json:"can_castle,omitempty"`
	Chess960  bool     `json:"chess960,omitempty"`
	Dests     []string `json:"dests"`
}

func keys(ks []premove.Key) []string {
	out := make([]string, len(ks))
	for i, k := range ks {
		out[i] = string(k)
	}
	return out
}

// scramble 把棋子随机挪到空格上，得到初始局面之外的局面
func scramble(rng *rand.Rand, pieces premove.Pieces, dims premove.Dimensions, moves int) premove.Pieces {
	out := make(premove.Pieces, len(pieces))
	for k, p := range pieces {
		out[k] = p
	}
	all := premove.AllPositions(dims)
	for i := 0; i < moves; i++ {
		from := premove.PositionToKey(all[rng.Intn(len(all))], dims)
		to := premove.PositionToKey(all[rng.Intn(len(all))], dims)
		p, ok := out[from]
		if !ok {
			continue
		}
		if _, busy := out[to]; busy {
			continue
		}
		delete(out, from)
		out[to] = p
	}
	return out
}

func casesFor(v *premove.Variant, pieces premove.Pieces) []TestCase {
	fen, err := premove.EncodeBoard(v.Name, pieces)
	if err != nil {
		log.WithError(err).WithField("variant", v.Name).Error("encode")
		return nil
	}
	canCastle := v.Castle != premove.CastleNone

	var out []TestCase
	for _, pos := range premove.AllPositions(v.Dims) {
		k := premove.PositionToKey(pos, v.Dims)
		if _, ok := pieces[k]; !ok {
			continue
		}
		out = append(out, TestCase{
			Variant:   v.Name,
			FEN:       fen,
			Kind:      "premove",
			Origin:    string(k),
			CanCastle: canCastle,
			Dests:     keys(premove.Premove(pieces, k, canCastle, v.Dims, v.Name, false)),
		})
	}
	if !v.Pockets {
		return out
	}
	for _, role := range v.Roles() {
		for _, c := range []premove.Color{premove.White, premove.Black} {
			p := premove.Piece{Role: role, Color: c}
			out = append(out, TestCase{
				Variant: v.Name,
				FEN:     fen,
				Kind:    "predrop",
				Role:    string(role),
				Color:   c.String(),
				Dests:   keys(premove.Predrop(pieces, p, v.Dims, v.Name)),
			})
		}
	}
	return out
}

func main() {
	out := flag.String("out", "premove_test_data.json", "output file")
	only := flag.String("variants", "", "comma separated variant tags (default: all)")
	scrambles := flag.Int("scrambles", 3, "extra scrambled positions per variant")
	seed := flag.Int64("seed", 1, "random seed")
	flag.Parse()

	log.SetHandler(cli.New(os.Stderr))
	rng := rand.New(rand.NewSource(*seed))

	var variants []*premove.Variant
	if *only == "" {
		variants = premove.Variants()
	} else {
		for _, name := range strings.Split(*only, ",") {
			v, ok := premove.LookupVariant(strings.TrimSpace(name))
			if !ok {
				log.Fatalf("unknown variant %q", name)
			}
			variants = append(variants, v)
		}
	}

	var testCases []TestCase
	for _, v := range variants {
		start := v.StartPieces()
		testCases = append(testCases, casesFor(v, start)...)
		for i := 0; i < *scrambles; i++ {
			testCases = append(testCases, casesFor(v, scramble(rng, start, v.Dims, 20))...)
		}
	}

	file, err := json.MarshalIndent(testCases, "", "  ")
	if err != nil {
		log.WithError(err).Fatal("marshal")
	}
	if err := os.WriteFile(*out, file, 0o644); err != nil {
		log.WithError(err).Fatal("write")
	}
	log.WithFields(log.Fields{
		"cases":    len(testCases),
		"variants": len(variants),
		"file":     *out,
	}).Info("generated test cases")
}
