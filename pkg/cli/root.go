// Package cli 定义 pickup52 的命令行
//
//	pickup52 [--seed N] [--config PATH] [--verbose]   运行游戏
//	pickup52 deal [--seed N] [--region W,D]            打印一局的散布结果
//	pickup52 stats [--reset]                           查看或清空统计
package cli

import (
	"fmt"

	"github.com/decker502/pickup52/pkg/app"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"
)

type rootOptions struct {
	seed       uint64
	configPath string
	verbose    bool
	skipMenu   bool
}

// NewRootCmd builds the command tree. Running the root command starts the game.
func NewRootCmd() *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:   "pickup52",
		Short: "52 card pickup, played on a virtual table",
		Long: `pickup52 scatters a full deck of cards across a table.
Click the cards to pick them up; each one flies to the pile and turns face up.
The round is won when all 52 cards are in the pile.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGame(opts, cmd.Flags().Changed("seed"))
		},
	}

	rootCmd.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "game config file (.yaml, .yml or .toml); defaults to the built-in config")
	rootCmd.Flags().Uint64VarP(&opts.seed, "seed", "s", 0, "deal the first round with this seed")
	rootCmd.Flags().BoolVarP(&opts.verbose, "verbose", "v", false, "enable verbose logging")
	rootCmd.Flags().BoolVar(&opts.skipMenu, "skip-menu", false, "deal immediately instead of showing the menu")

	rootCmd.AddCommand(newDealCmd(&opts.configPath))
	rootCmd.AddCommand(newStatsCmd())
	return rootCmd
}

// Execute runs the root command.
func Execute() error {
	return NewRootCmd().Execute()
}

func runGame(opts *rootOptions, fixedSeed bool) error {
	gameApp, err := app.NewApp(app.Config{
		Verbose:    opts.verbose,
		ConfigPath: opts.configPath,
		Seed:       opts.seed,
		FixedSeed:  fixedSeed,
		SkipMenu:   opts.skipMenu,
	})
	if err != nil {
		return fmt.Errorf("game initialization failed: %w", err)
	}

	window := gameApp.GameConfig().Window
	ebiten.SetWindowSize(window.Width, window.Height)
	ebiten.SetWindowTitle(window.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowClosingHandled(true)

	if err := ebiten.RunGame(gameApp); err != nil {
		return err
	}
	return nil
}
