package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/reallyoldfogie/osu-replay-go/osr"
	"github.com/reallyoldfogie/osu-replay-go/osr/analysis"
)

func main() {
	var frameCount int
	var strict bool

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [options] <replay.osr>\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Prints a summary of a decoded osu! replay.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
	}
	flag.IntVar(&frameCount, "frames", 0, "Also dump the first N frames")
	flag.BoolVar(&strict, "strict", false, "Reject files the reference client would never write")
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(1)
	}

	data, err := os.ReadFile(flag.Arg(0))
	if err != nil {
		log.Fatalf("read replay: %v", err)
	}

	dec := osr.NewDecoder()
	dec.Strict = strict
	r, err := dec.Decode(data)
	if err != nil {
		log.Fatalf("decode replay: %v", err)
	}

	fmt.Printf("Player:     %s\n", r.PlayerName)
	fmt.Printf("Mode:       %s (version %d)\n", r.Mode, r.Version)
	fmt.Printf("Beatmap:    %s\n", r.BeatmapHash)
	fmt.Printf("Played:     %s\n", r.Time().Format("2006-01-02 15:04:05 MST"))
	fmt.Printf("Mods:       %s\n", r.Mods)
	fmt.Printf("Score:      %d (max combo %dx, full combo: %v)\n", r.Score, r.MaxCombo, r.FullCombo)
	fmt.Printf("Judgements: %d/%d/%d, %d geki, %d katu, %d miss\n",
		r.Count300, r.Count100, r.Count50, r.CountGeki, r.CountKatu, r.CountMiss)
	fmt.Printf("Frames:     %d (%s of input)\n", len(r.Frames), analysis.Duration(r.Frames))
	if r.HasSeed {
		fmt.Printf("Seed:       %d\n", r.Seed)
	}
	if r.HasScoreID {
		fmt.Printf("Score ID:   %d\n", r.ScoreID)
	}

	if frameCount > 0 {
		times := analysis.CumulativeTimes(r.Frames)
		n := frameCount
		if n > len(r.Frames) {
			n = len(r.Frames)
		}
		fmt.Printf("\n%-10s %-8s %-10s %-10s %s\n", "time", "delta", "x", "y", "keys")
		for i := 0; i < n; i++ {
			f := r.Frames[i]
			fmt.Printf("%-10d %-8d %-10.2f %-10.2f %d\n", times[i], f.Delta, f.X, f.Y, f.Keys)
		}
	}
}
