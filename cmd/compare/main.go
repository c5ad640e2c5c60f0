// compare plays many matches between two AI configurations, alternating who plays first, and
// reports the wins of each.
package main

import (
	"context"
	"flag"
	"fmt"
	"runtime"
	"strings"
	"sync"
	"time"

	"github.com/janpfeifer/must"
	"github.com/janpfeifer/quoridorGo/internal/game"
	"github.com/janpfeifer/quoridorGo/internal/players"
	_ "github.com/janpfeifer/quoridorGo/internal/players/default"
	"github.com/janpfeifer/quoridorGo/internal/profilers"
	"github.com/janpfeifer/quoridorGo/internal/state"
	"github.com/janpfeifer/quoridorGo/internal/ui/cli"
	"github.com/janpfeifer/quoridorGo/internal/ui/spinning"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
	"k8s.io/klog/v2"
)

var (
	flagPlayer1Config = flag.String("ai1", "", "1st player configuration.")
	flagPlayer2Config = flag.String("ai2", "", "2nd player configuration.")
	flagNumMatches    = flag.Int("num_matches", 100, "Number of matches to play.")
	flagParallelism   = flag.Int("parallelism", 0, "If > 0 ignore GOMAXPROCS and play "+
		"these many matches simultaneously.")
	flagPrintSteps = flag.Bool("print_steps", false, "Print board at each step. "+
		"Very verbose, and you probably want to set -parallelism=1.")
	flagHeight   = flag.Int("height", state.DefaultSize, "Number of rows of the board.")
	flagWidth    = flag.Int("width", state.DefaultSize, "Number of columns of the board.")
	flagWalls    = flag.Int("walls", state.DefaultWallsPerPlayer, "Number of walls of each player.")
	flagMaxMoves = flag.Int("max_moves", 200, "Max moves before game is assumed to be a draw.")
)

// Globals
var (
	// globalCtx used everywhere. It is cancelled when the program is about to exit either by
	// an interrupt (ctrl+C) or by reaching the end.
	globalCtx = context.Background()
)

func main() {
	klog.InitFlags(nil)
	flag.Parse()

	if *flagPlayer1Config == "" || *flagPlayer2Config == "" {
		klog.Fatal("You must configure both players to compare with flags -ai1 and -ai2, e.g.: -ai1=delta -ai2=distance")
	}
	cfg := game.Config{Height: *flagHeight, Width: *flagWidth, WallsPerPlayer: *flagWalls, MaxMoves: *flagMaxMoves}
	must.M(cfg.Validate())

	// Capture Control+C
	var globalCancel func()
	globalCtx, globalCancel = context.WithCancel(context.Background())
	spinning.SafeInterrupt(globalCancel, 5*time.Second)
	defer globalCancel()

	// Profilers: HTTP profiler server and CPU profile.
	onQuit := must.M1(profilers.Setup(globalCtx))
	defer onQuit()

	must.M(runMatches(globalCtx, cfg))
}

type Results struct {
	mu                   sync.Mutex
	start                time.Time
	winsAs1st, winsAs2nd [2]int
	draws                [2]int
	played, total        int
}

func (r *Results) String() string {
	var parts []string
	parts = append(parts, fmt.Sprintf("Played %d of %d: ", r.played, r.total))
	for aiIdx := range 2 {
		parts = append(parts,
			fmt.Sprintf("AI-%d: %d Wins (1st: %d, 2nd: %d) / ",
				aiIdx+1, r.winsAs1st[aiIdx]+r.winsAs2nd[aiIdx],
				r.winsAs1st[aiIdx], r.winsAs2nd[aiIdx]))
	}
	parts = append(parts, fmt.Sprintf("%d draws (%d AI-1 as 1st, %d AI-2 as 1st) - ",
		r.draws[0]+r.draws[1], r.draws[0], r.draws[1]))
	parts = append(parts, time.Since(r.start).Round(time.Millisecond).String())
	parts = append(parts, "\033[0K")
	return strings.Join(parts, "")
}

// record the result of a match. aiFirst is the index of the AI (0 for -ai1, 1 for -ai2) that played first.
func (r *Results) record(aiFirst int, winner state.PlayerNum) {
	r.mu.Lock()
	defer r.mu.Unlock()
	switch winner {
	case state.PlayerInvalid:
		r.draws[aiFirst]++
	case state.PlayerFirst:
		r.winsAs1st[aiFirst]++
	default:
		r.winsAs2nd[1-aiFirst]++
	}
	r.played++
	fmt.Printf("\r%s", r)
}

func runMatches(ctx context.Context, cfg game.Config) error {
	r := &Results{
		start: time.Now(),
		total: *flagNumMatches,
	}
	var wg errgroup.Group
	wg.SetLimit(getParallelism())
	fmt.Printf("\r%s", r)

	for matchIdx := range r.total {
		wg.Go(func() error {
			// Swap who plays first on odd matches.
			aiFirst := matchIdx % 2
			configs := [2]string{*flagPlayer1Config, *flagPlayer2Config}
			if aiFirst == 1 {
				configs[0], configs[1] = configs[1], configs[0]
			}
			winner, err := runMatch(ctx, matchIdx, cfg, configs)
			if err != nil || ctx.Err() != nil {
				return err
			}
			r.record(aiFirst, winner)
			return nil
		})
	}
	err := wg.Wait()
	fmt.Printf("\r%s\n", r)
	if ctx.Err() != nil {
		fmt.Printf("Interrupted: %s\n", ctx.Err())
		return nil
	}
	return err
}

var (
	stepUI   = cli.New(true, false)
	muStepUI sync.Mutex
)

// runMatch plays one match with its own session and players, and returns the winner.
func runMatch(ctx context.Context, matchNum int, cfg game.Config, configs [2]string) (winner state.PlayerNum, err error) {
	if ctx.Err() != nil {
		// Already interrupted.
		return state.PlayerInvalid, nil
	}
	matchName := fmt.Sprintf("Match-%05d", matchNum)
	if klog.V(1).Enabled() {
		klog.Infof("Starting %s", matchName)
		defer klog.Infof("Finished %s", matchName)
	}
	var matchPlayers [state.NumPlayers]players.Player
	for playerNum := state.PlayerFirst; playerNum < state.NumPlayers; playerNum++ {
		matchPlayers[playerNum], err = players.New(uint64(matchNum), matchName, playerNum, configs[playerNum])
		if err != nil {
			return
		}
		defer matchPlayers[playerNum].Finalize()
	}
	session, err := game.NewSession(cfg)
	if err != nil {
		return
	}

	for !session.IsFinished() {
		if ctx.Err() != nil {
			klog.V(1).Infof("%s interrupted: %s", matchName, ctx.Err())
			return state.PlayerInvalid, nil
		}
		playerNum := session.Turn()
		action, _, score, _ := matchPlayers[playerNum].Play(session.Board())
		if err = session.Apply(playerNum, action); err != nil {
			return state.PlayerInvalid, errors.WithMessagef(err, "%s: %s (%s) played an invalid action",
				matchName, playerNum, matchPlayers[playerNum])
		}
		if *flagPrintSteps {
			muStepUI.Lock()
			fmt.Printf("%s, move #%d\n", matchName, len(session.History()))
			stepUI.PrintAction(playerNum, action)
			fmt.Printf("score=%.0f\n", score)
			fmt.Println(stepUI.RenderBoard(session.Board(), nil))
			fmt.Println("------------------")
			muStepUI.Unlock()
		}
	}
	return session.Winner(), nil
}

// getParallelism returns the parallelism.
func getParallelism() (parallelism int) {
	parallelism = runtime.GOMAXPROCS(0)
	if *flagParallelism > 0 {
		parallelism = *flagParallelism
	}
	return
}
