package main

import (
	"errors"
	"fmt"

	"github.com/humanbelnik/rottenpotatoes/internal/seed"
	usecase_movie "github.com/humanbelnik/rottenpotatoes/internal/usecase/movie"
	"github.com/spf13/cobra"
)

func newSeedCommand(ctx *commandContext) *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Load movies from a TOML seed file, skipping titles already present",
		RunE: func(cmd *cobra.Command, args []string) error {
			if file == "" {
				return errors.New("--file is required")
			}
			movies, err := seed.LoadFile(file)
			if err != nil {
				return err
			}

			repo, err := ctx.repository()
			if err != nil {
				return err
			}
			if err := repo.Migrate(cmd.Context()); err != nil {
				return err
			}

			added, err := usecase_movie.New(repo).Import(cmd.Context(), movies)
			if err != nil {
				return fmt.Errorf("seed %s: %w", file, err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Seeded %d movies from %s (%d already present)\n",
				added, file, len(movies)-added)
			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "Seed file path")

	return cmd
}
