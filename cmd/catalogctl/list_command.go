package main

import (
	"fmt"

	"github.com/humanbelnik/rottenpotatoes/internal/model"
	usecase_movie "github.com/humanbelnik/rottenpotatoes/internal/usecase/movie"
	"github.com/spf13/cobra"
)

func newListCommand(ctx *commandContext) *cobra.Command {
	var sortFlag string
	var orderFlag string
	var ratings []string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Print the catalog as a table",
		RunE: func(cmd *cobra.Command, args []string) error {
			q, err := listQuery(sortFlag, orderFlag, ratings)
			if err != nil {
				return err
			}

			repo, err := ctx.repository()
			if err != nil {
				return err
			}
			movies, err := usecase_movie.New(repo).List(cmd.Context(), q)
			if err != nil {
				return err
			}

			if len(movies) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No movies")
				return nil
			}

			rows := make([][]string, 0, len(movies))
			for _, m := range movies {
				released := ""
				if m.ReleaseDate != nil {
					released = m.ReleaseDate.Format("2006-01-02")
				}
				rows = append(rows, []string{m.Title, m.Rating, released, m.Director})
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable([]string{"Title", "Rating", "Release Date", "Director"}, rows))
			return nil
		},
	}

	cmd.Flags().StringVar(&sortFlag, "sort", "", "Sort column: title or release_date")
	cmd.Flags().StringVar(&orderFlag, "order", "", "Sort order: asc or desc")
	cmd.Flags().StringSliceVar(&ratings, "ratings", nil, "Only these ratings, e.g. --ratings PG,R")

	return cmd
}

func listQuery(sortFlag, orderFlag string, ratings []string) (model.ListQuery, error) {
	q := model.ListQuery{
		Sort:  model.ParseColumn(sortFlag),
		Order: model.ParseOrder(orderFlag),
	}
	if sortFlag != "" && q.Sort == model.NoColumn {
		return model.ListQuery{}, fmt.Errorf("unknown sort column %q", sortFlag)
	}
	if orderFlag != "" && q.Order == model.NoOrder {
		return model.ListQuery{}, fmt.Errorf("unknown sort order %q", orderFlag)
	}
	if q.Sort != model.NoColumn && q.Order == model.NoOrder {
		q.Order = model.OrderAsc
	}
	for _, r := range ratings {
		if !model.IsKnownRating(r) {
			return model.ListQuery{}, fmt.Errorf("unknown rating %q", r)
		}
		q.Ratings = append(q.Ratings, r)
	}
	return q, nil
}
