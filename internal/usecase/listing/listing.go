package usecase_listing

import (
	"context"
	"errors"
	"fmt"
	"net/url"

	"github.com/humanbelnik/rottenpotatoes/internal/model"
	"github.com/humanbelnik/rottenpotatoes/internal/service/sorting"
)

var (
	ErrFailedToLoadSession = errors.New("failed to load session")
	ErrFailedToSaveSession = errors.New("failed to save session")
	ErrFailedToListMovies  = errors.New("failed to list movies")
)

type SessionStore interface {
	LoadSort(ctx context.Context, sessionID string) (model.SortState, error)
	SaveSort(ctx context.Context, sessionID string, state model.SortState) error
}

type MovieLister interface {
	List(ctx context.Context, q model.ListQuery) ([]*model.Movie, error)
}

// Listing is either a redirect to the canonical listing URL or a page of
// movies ordered as Query says.
type Listing struct {
	Redirect bool
	Params   url.Values

	Query  model.ListQuery
	Movies []*model.Movie
}

type Usecase struct {
	sessions SessionStore
	movies   MovieLister
}

func New(sessions SessionStore, movies MovieLister) *Usecase {
	return &Usecase{
		sessions: sessions,
		movies:   movies,
	}
}

func (u *Usecase) Browse(ctx context.Context, sessionID string, req sorting.Request) (Listing, error) {
	state, err := u.sessions.LoadSort(ctx, sessionID)
	if err != nil {
		return Listing{}, fmt.Errorf("%w: %w", ErrFailedToLoadSession, err)
	}

	res, next := sorting.Resolve(req, state)
	if res.Changed {
		if err := u.sessions.SaveSort(ctx, sessionID, next); err != nil {
			return Listing{}, fmt.Errorf("%w: %w", ErrFailedToSaveSession, err)
		}
	}

	if res.Redirect {
		return Listing{
			Redirect: true,
			Params:   res.Params,
			Query:    res.Query,
		}, nil
	}

	movies, err := u.movies.List(ctx, res.Query)
	if err != nil {
		return Listing{}, fmt.Errorf("%w: %w", ErrFailedToListMovies, err)
	}

	return Listing{
		Query:  res.Query,
		Movies: movies,
	}, nil
}
