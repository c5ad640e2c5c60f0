// Package players provides a factory of AI players from configuration strings.
// It also allows player providers (modules) to register themselves.
package players

import (
	"slices"
	"strings"

	"github.com/janpfeifer/quoridorGo/internal/parameters"
	. "github.com/janpfeifer/quoridorGo/internal/state"
	"github.com/pkg/errors"
)

// Player is anything that is able to play the game.
type Player interface {
	// Play returns the action chosen for board.NextPlayer, the next board position (after the action is taken),
	// the score of the action (lower is better) and optionally the scores of every candidate considered.
	Play(board *Board) (action Action, nextBoard *Board, score float32, actionsScores []float32)

	// Finalize is called at the end of a match.
	Finalize()

	String() string
}

// Module must implement NewPlayer called at the start of a match.
// matchId is unique among matches, and matchName is used for logging and debugging.
//
// The module must pop from params every parameter it uses: leftover parameters are reported as errors.
type Module interface {
	NewPlayer(matchId uint64, matchName string, playerNum PlayerNum, params parameters.Params) (Player, error)
}

var (
	// Registered modules by name.
	keywordToModules = make(map[string]Module)
)

// RegisterModule so it can be used by any of the front-ends to play.
func RegisterModule(name string, module Module) {
	keywordToModules[name] = module
}

// RegisteredModules returns the sorted names of the registered modules.
func RegisteredModules() []string {
	names := make([]string, 0, len(keywordToModules))
	for name := range keywordToModules {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

var (
	// DefaultPlayerConfig is used if no configuration was given to the AI. The value may be changed by the
	// UI built.
	DefaultPlayerConfig = "delta"
)

// New creates a new AI player given the configuration string.
//
// Args:
//
//	config: the AI module name optionally followed by a colon (":") and a comma-separated list of
//		parameters with optional values associated, e.g. "delta:parallelism=4,randomness=0.2".
//		If empty, the default is given by DefaultPlayerConfig.
//
// More details on the config are dependent on the module used.
func New(matchId uint64, matchName string, playerNum PlayerNum, config string) (Player, error) {
	if config == "" {
		config = DefaultPlayerConfig
	}
	if len(keywordToModules) == 0 {
		return nil, errors.New("no registered AI modules. Perhaps you need to import _ \"github.com/janpfeifer/quoridorGo/internal/players/default\" to your binary ?")
	}

	moduleName, paramsConfig, _ := strings.Cut(config, ":")
	module, ok := keywordToModules[moduleName]
	if !ok {
		return nil, errors.Errorf("unknown AI player %q, registered AI players are %q", moduleName, RegisteredModules())
	}

	params := parameters.NewFromConfigString(paramsConfig)
	player, err := module.NewPlayer(matchId, matchName, playerNum, params)
	if err != nil {
		return nil, errors.WithMessagef(err, "failed to create AI player %q", moduleName)
	}
	if err = params.CheckAllUsed(); err != nil {
		return nil, errors.WithMessagef(err, "AI player %q", moduleName)
	}
	return player, nil
}
