package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"math/rand"
	"os"
	"time"

	"github.com/pterm/pterm"
	"github.com/sanity-io/litter"

	"github.com/lazharichir/pokerreview/domain/cards"
	"github.com/lazharichir/pokerreview/domain/hands"
)

var errUsage = errors.New("usage: combo [-dump] [-deal] <board cards...> [-- <hole1> <hole2>]")

type options struct {
	dump  bool
	deal  bool
	board []string
	hand  []string
}

func main() {
	handler := pterm.NewSlogHandler(&pterm.DefaultLogger)
	logger := slog.New(handler)

	opts, err := parseArgs(os.Args[1:], os.Stderr)
	if err != nil {
		logger.Error("invalid arguments", "error", err.Error())
		os.Exit(1)
	}

	if opts.deal {
		opts = deal(opts, rand.New(rand.NewSource(time.Now().UnixNano())))
	}

	result, err := recognize(opts)
	if err != nil {
		logger.Error("cannot recognize a combination", "board", opts.board, "hand", opts.hand, "error", err.Error())
		os.Exit(1)
	}

	printResult(opts, result)
	if opts.dump {
		pterm.Println(litter.Sdump(result))
	}
}

// parseArgs splits the board from the hole cards at "--"
func parseArgs(args []string, output io.Writer) (options, error) {
	fs := flag.NewFlagSet("combo", flag.ContinueOnError)
	fs.SetOutput(output)

	var opts options
	fs.BoolVar(&opts.dump, "dump", false, "dump the recognized result")
	fs.BoolVar(&opts.deal, "deal", false, "deal a random river and hole cards")
	if err := fs.Parse(args); err != nil {
		return options{}, err
	}

	rest := fs.Args()
	for i, arg := range rest {
		if arg == "--" {
			opts.board, opts.hand = rest[:i], rest[i+1:]
			break
		}
	}
	if len(rest) > 0 && opts.board == nil && opts.hand == nil {
		opts.board = rest
	}

	if opts.deal {
		if len(opts.board) > 0 || len(opts.hand) > 0 {
			return options{}, errUsage
		}
		return opts, nil
	}
	if len(opts.board) == 0 {
		return options{}, errUsage
	}
	return opts, nil
}

// deal fills the board and hand from a shuffled deck
func deal(opts options, r *rand.Rand) options {
	deck := cards.ShuffleCards(r, cards.NewDeck52())
	board, deck := cards.DealCards(deck, cards.MaxBoardCards)
	hole, _ := cards.DealCards(deck, 2)
	opts.board = board.Notations()
	opts.hand = hole.Notations()
	return opts
}

func recognize(opts options) (hands.Result, error) {
	board, err := cards.NewBoardFromStrings(opts.board...)
	if err != nil {
		return hands.Result{}, err
	}

	switch len(opts.hand) {
	case 0:
		return hands.Recognize(board, nil)
	case 2:
		hand, err := cards.NewHandFromStrings(opts.hand[0], opts.hand[1])
		if err != nil {
			return hands.Result{}, err
		}
		return hands.Recognize(board, &hand)
	default:
		return hands.Result{}, fmt.Errorf("%w: hand must contain 2 cards, got %d", cards.ErrInvalidHand, len(opts.hand))
	}
}
