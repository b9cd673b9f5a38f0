package main

import (
	"flag"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/apex/log"
	"github.com/apex/log/handlers/cli"
	"github.com/pkg/profile"

	"boardmoves/internal/premove"
	"boardmoves/internal/render"
)

func joinKeys(ks []premove.Key) string {
	s := make([]string, len(ks))
	for i, k := range ks {
		s[i] = string(k)
	}
	sort.Strings(s)
	return strings.Join(s, " ")
}

func main() {
	variant := flag.String("variant", "chess", "variant tag")
	fen := flag.String("fen", "", "board FEN (default: start position)")
	origin := flag.String("origin", "", "square to premove from; empty prints every piece")
	role := flag.String("role", "", "pocket role to predrop instead of premoving")
	color := flag.String("color", "white", "color of the dropped piece")
	noCastle := flag.Bool("no-castle", false, "castling rights lost")
	chess960 := flag.Bool("960", false, "king-takes-rook castling only")
	pngOut := flag.String("png", "", "write the board with highlighted destinations to this file")
	prof := flag.String("cpuprofile", "", "write a CPU profile into this directory")
	repeat := flag.Int("repeat", 1, "run the enumeration n times (for profiling)")
	flag.Parse()

	log.SetHandler(cli.New(os.Stderr))
	if *prof != "" {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(*prof), profile.Quiet).Stop()
	}

	v, ok := premove.LookupVariant(*variant)
	if !ok {
		log.Fatalf("unknown variant %q", *variant)
	}
	pieces := v.StartPieces()
	if *fen != "" {
		p, err := premove.ParseBoard(v.Name, *fen)
		if err != nil {
			log.WithError(err).Fatal("parse fen")
		}
		pieces = p
	}
	enc, _ := premove.EncodeBoard(v.Name, pieces)
	fmt.Printf("variant: %s %s castle=%s pockets=%v\n", v.Name, v.Dims, v.Castle, v.Pockets)
	fmt.Println("FEN:", enc)

	canCastle := !*noCastle && v.Castle != premove.CastleNone
	var hl render.Options

	switch {
	case *role != "":
		c, err := premove.ParseColor(*color)
		if err != nil {
			log.WithError(err).Fatal("parse color")
		}
		p := premove.Piece{Role: premove.Role(*role), Color: c}
		var dests []premove.Key
		for i := 0; i < *repeat; i++ {
			dests = premove.Predrop(pieces, p, v.Dims, v.Name)
		}
		fmt.Printf("predrop %s: %d squares\n  %s\n", p, len(dests), joinKeys(dests))
		hl.Dests = dests

	case *origin != "":
		k, err := premove.ParseKey(*origin, v.Dims)
		if err != nil {
			log.WithError(err).Fatal("parse origin")
		}
		var dests []premove.Key
		for i := 0; i < *repeat; i++ {
			dests = premove.Premove(pieces, k, canCastle, v.Dims, v.Name, *chess960)
		}
		fmt.Printf("premove %s (%s): %d squares\n  %s\n", k, pieces[k], len(dests), joinKeys(dests))
		hl.Origin, hl.Dests = k, dests

	default:
		for _, pos := range premove.AllPositions(v.Dims) {
			k := premove.PositionToKey(pos, v.Dims)
			pc, ok := pieces[k]
			if !ok {
				continue
			}
			dests := premove.Premove(pieces, k, canCastle, v.Dims, v.Name, *chess960)
			fmt.Printf("%-4s %-22s %2d  %s\n", k, pc, len(dests), joinKeys(dests))
		}
	}

	if *pngOut != "" {
		f, err := os.Create(*pngOut)
		if err != nil {
			log.WithError(err).Fatal("create png")
		}
		defer f.Close()
		if err := render.PNG(f, pieces, v.Dims, hl); err != nil {
			log.WithError(err).Fatal("render")
		}
		log.WithField("file", *pngOut).Info("wrote board")
	}
}
