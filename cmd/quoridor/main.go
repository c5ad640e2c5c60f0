// quoridor is a terminal game: human vs AI, human vs human (-hotseat) or AI vs AI (-watch).
package main

import (
	"context"
	"flag"
	"fmt"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/janpfeifer/must"
	"github.com/janpfeifer/quoridorGo/internal/game"
	"github.com/janpfeifer/quoridorGo/internal/players"
	_ "github.com/janpfeifer/quoridorGo/internal/players/default"
	. "github.com/janpfeifer/quoridorGo/internal/state"
	"github.com/janpfeifer/quoridorGo/internal/ui/cli"
	"github.com/janpfeifer/quoridorGo/internal/ui/spinning"
	"github.com/pkg/errors"
	"k8s.io/klog/v2"
)

var (
	flagHeight   = flag.Int("height", DefaultSize, "Number of rows of the board.")
	flagWidth    = flag.Int("width", DefaultSize, "Number of columns of the board.")
	flagWalls    = flag.Int("walls", DefaultWallsPerPlayer, "Number of walls of each player.")
	flagMaxMoves = flag.Int("max_moves", 0, "Max moves before game is considered a draw. 0 means no limit.")

	flagHotseat   = flag.Bool("hotseat", false, "Hotseat match: human vs human")
	flagWatch     = flag.Bool("watch", false, "Watch mode: AI vs AI playing")
	flagFirst     = flag.String("first", "", "Who plays first: human or ai. Default is random.")
	flagAIConfig  = flag.String("config", "delta", "AI configuration against which to play")
	flagAIConfig2 = flag.String("config2", "delta", "Second AI configuration, if playing AI vs AI with -watch")
	flagQuiet     = flag.Bool("quiet", false, "Quiet mode for when watching AI play, only the actions and the last board position is printed.")
	flagColor     = flag.Bool("color", true, "Use colors in the terminal.")

	// aiPlayers: if nil, it's a human playing.
	aiPlayers = [NumPlayers]players.Player{nil, nil}
	matchId   = uint64(0)
	matchName = "The Match"

	globalCtx = context.Background()
)

func main() {
	klog.InitFlags(nil)
	flag.Parse()

	cfg := game.Config{Height: *flagHeight, Width: *flagWidth, WallsPerPlayer: *flagWalls, MaxMoves: *flagMaxMoves}
	session, err := game.NewSession(cfg)
	if err != nil {
		klog.Exitf("%+v", err)
	}

	// Capture Control+C
	var cancel func()
	globalCtx, cancel = context.WithCancel(context.Background())
	spinning.SafeInterrupt(cancel, 3*time.Second)
	defer cancel()

	createPlayers()
	defer func() {
		for _, p := range aiPlayers {
			if p != nil {
				p.Finalize()
			}
		}
	}()
	ui := cli.New(*flagColor, false)
	if !*flagWatch {
		fmt.Println(cli.Instructions)
	}

	// Loop over match.
	for !session.IsFinished() {
		if globalCtx.Err() != nil {
			klog.Exitf("Interrupted: %v", globalCtx.Err())
		}
		player := session.Turn()
		aiPlayer := aiPlayers[player]
		if aiPlayer == nil {
			err := ui.RunNextMove(session)
			if errors.Is(err, cli.ErrQuit) {
				fmt.Println("Bye.")
				return
			}
			if err != nil {
				klog.Exitf("Failed to run match: %+v", err)
			}
			continue
		}

		// AI plays.
		if !*flagWatch || !*flagQuiet {
			ui.Print(session, false)
			fmt.Println()
		}
		fmt.Printf("%s (%s) thinking ", ui.Player(player), aiPlayer)
		s := spinning.New(globalCtx)
		action, _, score, _ := aiPlayer.Play(session.Board())
		s.Done()
		fmt.Printf(" %s (score=%.0f)\n", action, score)
		must.M(session.Apply(player, action))
	}

	ui.Print(session, false)
	ui.PrintWinner(session)
}

// createPlayers in aiPlayers.
func createPlayers() {
	if *flagHotseat && *flagWatch {
		klog.Fatalf("-hotseat and -watch cannot be used together")
	}
	if *flagHotseat {
		// Both players are human, nothing to do.
		return
	}

	// Create AI player:
	var aiPlayerNum PlayerNum
	if *flagWatch {
		aiPlayerNum = PlayerFirst
	} else {
		switch strings.ToLower(*flagFirst) {
		case "human":
			aiPlayerNum = PlayerSecond
		case "ai":
			aiPlayerNum = PlayerFirst
		case "":
			aiPlayerNum = PlayerNum(rand.IntN(NumPlayers))
		default:
			klog.Fatalf("invalid -first=%q, only valid values are \"human\" or \"ai\"", *flagFirst)
		}
	}
	aiPlayers[aiPlayerNum] = must.M1(players.New(matchId, matchName, aiPlayerNum, *flagAIConfig))
	if !*flagWatch {
		return
	}

	// Create second AI
	otherPlayerNum := aiPlayerNum.Opponent()
	aiPlayers[otherPlayerNum] = must.M1(players.New(matchId, matchName, otherPlayerNum, *flagAIConfig2))
}
