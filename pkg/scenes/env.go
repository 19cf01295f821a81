package scenes

import (
	"math/rand/v2"

	"github.com/decker502/pickup52/pkg/config"
	"github.com/decker502/pickup52/pkg/game"
)

// Scene is a type alias for game.Scene.
type Scene = game.Scene

// Env holds what every scene shares: configuration, card visuals, statistics,
// the scene manager and the seed sequence for dealt rounds.
//
// It is created once by the app and passed to each scene explicitly.
type Env struct {
	Config    *config.GameConfig
	Resources *game.ResourceManager
	Stats     *game.StatsManager
	Scenes    *game.SceneManager

	seeds      *rand.Rand
	firstSeed  uint64
	pendingFix bool // 下一局直接使用 firstSeed
	err        error
}

// NewEnv creates the shared scene environment.
//
// When fixedSeed is true the first round is dealt with exactly seed, which lets
// a player replay a table printed by the deal command. Later rounds draw their
// seeds from a sequence derived from seed.
func NewEnv(cfg *config.GameConfig, rm *game.ResourceManager, stats *game.StatsManager, sm *game.SceneManager, seed uint64, fixedSeed bool) *Env {
	return &Env{
		Config:     cfg,
		Resources:  rm,
		Stats:      stats,
		Scenes:     sm,
		seeds:      rand.New(rand.NewPCG(seed, ^seed)),
		firstSeed:  seed,
		pendingFix: fixedSeed,
	}
}

// NextSeed returns the seed for the next dealt round.
func (e *Env) NextSeed() uint64 {
	if e.pendingFix {
		e.pendingFix = false
		return e.firstSeed
	}
	return e.seeds.Uint64()
}

// Fail records a fatal error. The app stops the game loop with it.
func (e *Env) Fail(err error) {
	if e.err == nil {
		e.err = err
	}
}

// Err returns the first fatal error recorded by a scene.
func (e *Env) Err() error {
	return e.err
}
