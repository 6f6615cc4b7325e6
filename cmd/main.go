package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strings"

	tm "github.com/buger/goterm"
	chess "github.com/notnil/chess"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"muninn/pkg/engine"
	"muninn/pkg/rules"
)

const startFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// italianFEN is a tactical position from the Italian Game where White can
// win the e5 pawn.
const italianFEN = "r1bqkb1r/pppp1ppp/2n2n2/4p3/2B1P3/5N2/PPPP1PPP/RNBQK2R w KQkq - 4 4"

var (
	fenFlag   = flag.String("fen", startFEN, "starting position in FEN")
	depthFlag = flag.Int("depth", 4, "maximum search depth in plies")
	demoFlag  = flag.Bool("demo", false, "search a tactical position and exit")
	debugFlag = flag.Bool("debug", false, "enable debug logging")
)

func main() {
	flag.Parse()
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if *debugFlag {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	if *demoFlag {
		runDemo(italianFEN, *depthFlag)
		return
	}

	fen, err := chess.FEN(*fenFlag)
	if err != nil {
		log.Fatal().Err(err).Str("fen", *fenFlag).Msg("invalid starting position")
	}
	game := chess.NewGame(fen)
	reader := bufio.NewScanner(os.Stdin)

	// Human plays White, the engine answers as Black.
	for {
		draw(game)
		if gameOver(game) {
			return
		}
		if game.Position().Turn() == chess.White {
			humanTurn(game, reader)
		} else {
			engineTurn(game)
		}
	}
}

// draw repaints the board and the game status line.
func draw(game *chess.Game) {
	tm.Clear()
	tm.MoveCursor(1, 1)
	tm.Println(tm.Bold("muninn"))
	tm.Println(game.Position().Board().Draw())
	if moves := game.Moves(); len(moves) > 0 {
		last := moves[len(moves)-1]
		tm.Println("Last move:", last.String())
		if last.HasTag(chess.Check) {
			tm.Println(tm.Color("CHECK", tm.RED))
		}
	}
	score := engine.NewEvaluator(engine.DefaultWeights()).Evaluate(rules.NewBoard(game.Position()))
	tm.Printf("Evaluation: %+.2f\n", float64(score)/100)
	tm.Flush()
}

// gameOver reports whether the game has ended and announces the result.
func gameOver(game *chess.Game) bool {
	board := rules.NewBoard(game.Position())
	switch {
	case board.IsCheckmate():
		winner := "White"
		if game.Position().Turn() == chess.White {
			winner = "Black"
		}
		fmt.Printf("Checkmate, %s wins\n", winner)
	case board.IsStalemate():
		fmt.Println("Stalemate, the game is a draw")
	case board.IsInsufficientMaterial():
		fmt.Println("Draw by insufficient material")
	default:
		return false
	}
	return true
}

// humanTurn reads one move from the user, accepting UCI or algebraic
// notation, and applies it. Invalid input reprompts.
func humanTurn(game *chess.Game, reader *bufio.Scanner) {
	for {
		fmt.Print("Your move: ")
		if !reader.Scan() {
			os.Exit(0)
		}
		input := strings.TrimSpace(reader.Text())
		if input == "quit" {
			os.Exit(0)
		}
		if mv, err := (chess.UCINotation{}).Decode(game.Position(), input); err == nil {
			if game.Move(mv) == nil {
				return
			}
		}
		if err := game.MoveStr(input); err == nil {
			return
		}
		fmt.Println("Invalid move, try again (e.g. e2e4 or Nf3)")
		// A bare from-to pair that only decodes with a promotion suffix
		// means the user forgot to pick a piece.
		if len(input) == 4 {
			if _, err := (chess.UCINotation{}).Decode(game.Position(), input+"q"); err == nil {
				fmt.Println("This pawn promotes: append q, r, b or n (e.g. " + input + "q)")
			}
		}
	}
}

// engineTurn searches the current position and plays the chosen move.
func engineTurn(game *chess.Game) {
	fmt.Println("Thinking...")
	eng := engine.New(rules.NewBoard(game.Position()))
	mv := eng.FindBestMoveIterative(*depthFlag)
	if mv == nil {
		return
	}
	san := chess.AlgebraicNotation{}.Encode(game.Position(), mv)
	if err := game.Move(mv); err != nil {
		log.Fatal().Err(err).Msg("engine produced an illegal move")
	}
	fmt.Printf("Engine plays %s (%s)\n", mv.String(), san)
}

// runDemo searches a fixed tactical position and prints the chosen move.
func runDemo(fenStr string, depth int) {
	board, err := rules.FromFEN(fenStr)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid demo position")
	}
	fmt.Println(board.Position().Board().Draw())
	eng := engine.New(board)
	mv := eng.FindBestMoveIterative(depth)
	san := chess.AlgebraicNotation{}.Encode(board.Position(), mv)
	fmt.Printf("Best move: %s (%s)\n", mv.String(), san)
	for _, rep := range eng.Reports() {
		fmt.Printf("depth %d: %s score %d nodes %d time %v\n",
			rep.Depth, rep.Move, rep.Score, rep.Nodes, rep.Elapsed)
	}
}
