package main

import (
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"abalone/engine"
	"abalone/game"
	"abalone/searcher"
)

func main() {
	zerolog.SetGlobalLevel(zerolog.InfoLevel)

	weights := game.Weights{Threes: 5, Isolated: 10, Center: 2.5}
	g := game.NewGame(game.DefaultLayout, weights)

	black := searcher.NewNegamax(searcher.WithDepth(3))
	white := searcher.NewRandom(0)

	fmt.Println(g.Board())

	start := time.Now()
	e := engine.NewLocal(g, black, white)
	winner, ok, moves := e.Run()

	blackScore, whiteScore := g.Score()
	fmt.Println(g.Board())
	fmt.Printf("final score: BLACK %d - WHITE %d after %d moves in %.1fs\n",
		blackScore, whiteScore, moves, time.Since(start).Seconds())
	if ok {
		fmt.Printf("%v won!\n", winner)
	} else {
		fmt.Println("no winner")
	}
}
