package cli

import (
	"fmt"
	"io"
	"log"
	"math"
	"os"
	"strconv"
	"strings"
	"time"

	colorize "github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/decker502/pickup52/pkg/components"
	"github.com/decker502/pickup52/pkg/config"
	"github.com/decker502/pickup52/pkg/ecs"
	"github.com/decker502/pickup52/pkg/systems"
	"github.com/decker502/pickup52/pkg/types"
	"github.com/decker502/pickup52/pkg/utils"
)

type dealOptions struct {
	seed       uint64
	region     string
	configPath *string
}

func newDealCmd(configPath *string) *cobra.Command {
	opts := &dealOptions{configPath: configPath}

	cmd := &cobra.Command{
		Use:   "deal",
		Short: "Deal one round without a window and print where every card lands",
		Long: `Deal runs the same placement as the game and prints the 52 cards in deal
order (later cards rest on top). The same seed always produces the same table,
so a layout printed here can be replayed with 'pickup52 --seed N'.

Examples:
  pickup52 deal --seed 42
  pickup52 deal --seed 42 --region 10,10`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("seed") {
				opts.seed = uint64(time.Now().UnixNano())
			}
			return runDeal(cmd.OutOrStdout(), opts)
		},
	}

	cmd.Flags().Uint64VarP(&opts.seed, "seed", "s", 0, "deal seed (random when omitted)")
	cmd.Flags().StringVarP(&opts.region, "region", "r", "", "override the scatter area as WIDTH,DEPTH in world units")
	return cmd
}

func runDeal(out io.Writer, opts *dealOptions) error {
	// 无窗口模式不需要系统日志
	log.SetOutput(io.Discard)

	var (
		cfg *config.GameConfig
		err error
	)
	if *opts.configPath != "" {
		cfg, err = config.LoadGameConfig(*opts.configPath)
	} else {
		cfg, err = config.LoadEmbeddedGameConfig()
	}
	if err != nil {
		return err
	}

	catalog, err := config.LoadEmbeddedCardAssets()
	if err != nil {
		return err
	}

	em := ecs.NewEntityManager()
	deal := systems.NewDealSystem(em, catalog, cfg)
	if opts.region != "" {
		width, depth, err := parseRegion(opts.region)
		if err != nil {
			return err
		}
		deal.SetRegion(utils.RegionFromExtent(width, depth, 0, float64(types.DeckSize)*cfg.Card.Thickness))
	}

	ids, err := deal.Deal(utils.NewRoundRand(opts.seed))
	if err != nil {
		return err
	}

	colorize.NoColor = !isTerminal(out)
	printDeal(out, em, ids, opts.seed, deal.Region())
	return nil
}

// parseRegion 解析 "W,D"
func parseRegion(s string) (float64, float64, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("%w: expected WIDTH,DEPTH, got %q", utils.ErrInvalidRegion, s)
	}
	width, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: bad width %q", utils.ErrInvalidRegion, parts[0])
	}
	depth, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: bad depth %q", utils.ErrInvalidRegion, parts[1])
	}
	return width, depth, nil
}

func isTerminal(out io.Writer) bool {
	f, ok := out.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func printDeal(out io.Writer, em *ecs.EntityManager, ids []ecs.EntityID, seed uint64, region utils.ScatterRegion) {
	header := colorize.New(colorize.FgCyan, colorize.Bold)
	fmt.Fprintf(out, "%s %d  %s x[%.1f, %.1f] z[%.1f, %.1f] y[%.2f, %.2f]\n",
		header.Sprint("seed"), seed, header.Sprint("region"),
		region.MinX, region.MaxX, region.MinZ, region.MaxZ, region.MinY, region.MaxY)
	fmt.Fprintf(out, "%3s  %-18s %9s %7s %9s %8s\n", "#", "card", "x", "y", "z", "yaw°")

	red := colorize.New(colorize.FgRed)
	black := colorize.New(colorize.FgHiWhite)
	for i, id := range ids {
		card, _ := ecs.GetComponent[*components.CardComponent](em, id)
		transform, _ := ecs.GetComponent[*components.TransformComponent](em, id)

		name := fmt.Sprintf("%-18s", card.ID.Name())
		if card.ID.Suit.IsRed() {
			name = red.Sprint(name)
		} else {
			name = black.Sprint(name)
		}
		pos := transform.Position
		fmt.Fprintf(out, "%3d  %s %9.2f %7.3f %9.2f %8.1f\n",
			i+1, name, pos.X(), pos.Y(), pos.Z(), transform.Yaw()*180/math.Pi)
	}
}
