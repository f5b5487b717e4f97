package usecase_movie

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/humanbelnik/rottenpotatoes/internal/model"
)

var (
	ErrFailedToStoreMovie  = errors.New("failed to store movie")
	ErrFailedToLoadMovie   = errors.New("failed to load movie")
	ErrFailedToUpdateMovie = errors.New("failed to update movie")
	ErrFailedToDeleteMovie = errors.New("failed to delete movie")
	ErrFailedToFindSimilar = errors.New("failed to find similar movies")
	ErrInvalidInput        = errors.New("invalid input")
	ErrBlankTitle          = errors.New("title can't be blank")
	ErrUnknownRating       = errors.New("unknown rating")
	ErrNoDirectorInfo      = errors.New("movie has no director info")
	ErrMovieNotFound       = model.ErrMovieNotFound
)

type Repository interface {
	Store(ctx context.Context, m model.Movie) error
	StoreAll(ctx context.Context, movies []model.Movie) error
	Load(ctx context.Context, q model.ListQuery) ([]*model.Movie, error)
	LoadByID(ctx context.Context, ID uuid.UUID) (model.Movie, error)
	LoadByTitle(ctx context.Context, title string) (model.Movie, error)
	LoadTitlesByDirector(ctx context.Context, director string, excludeID uuid.UUID) ([]string, error)
	Update(ctx context.Context, m model.Movie) error
	DeleteByID(ctx context.Context, ID uuid.UUID) error
}

type Usecase struct {
	repository Repository
}

func New(repository Repository) *Usecase {
	return &Usecase{
		repository: repository,
	}
}

func (u *Usecase) Create(ctx context.Context, m model.Movie) (model.Movie, error) {
	m, err := normalize(m)
	if err != nil {
		return model.Movie{}, err
	}
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}

	if err := u.repository.Store(ctx, m); err != nil {
		return model.Movie{}, fmt.Errorf("%w: %w", ErrFailedToStoreMovie, err)
	}

	return m, nil
}

// Import adds the movies whose titles are not in the catalog yet, all or
// nothing, and reports how many were added. Every movie is validated
// before anything is written.
func (u *Usecase) Import(ctx context.Context, movies []model.Movie) (int, error) {
	fresh := make([]model.Movie, 0, len(movies))
	seen := make(map[string]struct{}, len(movies))

	for _, in := range movies {
		m, err := normalize(in)
		if err != nil {
			return 0, fmt.Errorf("movie %q: %w", in.Title, err)
		}
		if _, dup := seen[m.Title]; dup {
			continue
		}
		seen[m.Title] = struct{}{}

		_, err = u.repository.LoadByTitle(ctx, m.Title)
		switch {
		case err == nil:
			continue
		case !errors.Is(err, ErrMovieNotFound):
			return 0, fmt.Errorf("%w: %w", ErrFailedToStoreMovie, err)
		}

		if m.ID == uuid.Nil {
			m.ID = uuid.New()
		}
		fresh = append(fresh, m)
	}

	if len(fresh) == 0 {
		return 0, nil
	}
	if err := u.repository.StoreAll(ctx, fresh); err != nil {
		return 0, fmt.Errorf("%w: %w", ErrFailedToStoreMovie, err)
	}

	return len(fresh), nil
}

func (u *Usecase) Get(ctx context.Context, id uuid.UUID) (model.Movie, error) {
	m, err := u.repository.LoadByID(ctx, id)
	if err != nil {
		return model.Movie{}, fmt.Errorf("%w: %w", ErrFailedToLoadMovie, err)
	}

	return m, nil
}

func (u *Usecase) List(ctx context.Context, q model.ListQuery) ([]*model.Movie, error) {
	movies, err := u.repository.Load(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFailedToLoadMovie, err)
	}

	return movies, nil
}

func (u *Usecase) Update(ctx context.Context, m model.Movie) (model.Movie, error) {
	m, err := normalize(m)
	if err != nil {
		return model.Movie{}, err
	}

	if err := u.repository.Update(ctx, m); err != nil {
		return model.Movie{}, fmt.Errorf("%w: %w", ErrFailedToUpdateMovie, err)
	}

	return m, nil
}

// Delete removes the movie and returns what was removed.
func (u *Usecase) Delete(ctx context.Context, id uuid.UUID) (model.Movie, error) {
	m, err := u.repository.LoadByID(ctx, id)
	if err != nil {
		return model.Movie{}, fmt.Errorf("%w: %w", ErrFailedToDeleteMovie, err)
	}

	if err := u.repository.DeleteByID(ctx, id); err != nil {
		return model.Movie{}, fmt.Errorf("%w: %w", ErrFailedToDeleteMovie, err)
	}

	return m, nil
}

// Similar returns titles of the other movies directed by whoever directed
// the movie with the given title, sorted by title. A reference movie
// without a director yields ErrNoDirectorInfo; no other movies by the same
// director yields an empty list.
func (u *Usecase) Similar(ctx context.Context, title string) ([]string, error) {
	ref, err := u.repository.LoadByTitle(ctx, title)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFailedToFindSimilar, err)
	}

	if !ref.HasDirector() {
		return nil, ErrNoDirectorInfo
	}

	titles, err := u.repository.LoadTitlesByDirector(ctx, ref.Director, ref.ID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFailedToFindSimilar, err)
	}
	if titles == nil {
		titles = []string{}
	}

	return titles, nil
}

func normalize(m model.Movie) (model.Movie, error) {
	m.Title = strings.TrimSpace(m.Title)
	m.Director = strings.TrimSpace(m.Director)
	m.Rating = strings.TrimSpace(m.Rating)

	if m.Title == model.EmptyTitle {
		return model.Movie{}, fmt.Errorf("%w: %w", ErrInvalidInput, ErrBlankTitle)
	}
	if m.Rating != "" && !model.IsKnownRating(m.Rating) {
		return model.Movie{}, fmt.Errorf("%w: %w %q", ErrInvalidInput, ErrUnknownRating, m.Rating)
	}

	return m, nil
}
