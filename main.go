package main

import (
	"fmt"
	"os"

	"github.com/hajimehoshi/ebiten"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/zucenko/mazeball/maze"
	"github.com/zucenko/mazeball/model"
)

const title = "Maze Ball"

func main() {
	rootCmd := playCmd()
	rootCmd.Use = "mazeball"
	rootCmd.Short = "Roll a ball through a random maze to the goal"
	rootCmd.AddCommand(playCmd())
	rootCmd.AddCommand(printCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func playCmd() *cobra.Command {
	opts := &options{}
	cmd := &cobra.Command{
		Use:   "play",
		Short: "Open the game window",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := opts.load(cmd.Flags())
			if err != nil {
				log.WithError(err).Error("bad configuration")
				return err
			}
			game, err := newGame(cfg)
			if err != nil {
				return err
			}
			log.WithFields(log.Fields{
				"rows": cfg.Rows,
				"cols": cfg.Cols,
				"seed": cfg.Seed,
			}).Info("starting")
			return ebiten.Run(game.update, int(cfg.Width), int(cfg.Height), 1, title)
		},
	}
	opts.bind(cmd.Flags())
	return cmd
}

func printCmd() *cobra.Command {
	opts := &options{}
	cmd := &cobra.Command{
		Use:   "print",
		Short: "Generate a maze and print it as text",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := opts.load(cmd.Flags())
			if err != nil {
				return err
			}
			grid, err := maze.New(cfg.Rows, cfg.Cols, maze.NewRand(cfg.Seed))
			if err != nil {
				return err
			}
			start := model.Cell{Row: 0, Col: 0}
			goal := model.Cell{Row: grid.Rows - 1, Col: grid.Cols - 1}
			_, err = fmt.Fprint(cmd.OutOrStdout(), maze.Print(grid, start, goal))
			return err
		},
	}
	opts.bind(cmd.Flags())
	return cmd
}
