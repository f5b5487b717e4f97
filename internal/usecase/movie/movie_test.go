package usecase_movie

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/humanbelnik/rottenpotatoes/internal/model"
	repo_mocks "github.com/humanbelnik/rottenpotatoes/internal/usecase/movie/mocks/movie/repository"
	"github.com/ozontech/allure-go/pkg/framework/provider"
	"github.com/ozontech/allure-go/pkg/framework/suite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type UsecaseMovieUnitSuite struct {
	suite.Suite
}

type resources struct {
	usecase    *Usecase
	repository *repo_mocks.MovieRepository
	ctx        context.Context
}

type MovieBuilder struct {
	m model.Movie
}

func NewMovieBuilder() *MovieBuilder {
	return &MovieBuilder{
		m: model.Movie{
			ID:          uuid.New(),
			Title:       "random title",
			Director:    "imaginary director",
			Rating:      "R",
			Description: "random",
		},
	}
}

func (b *MovieBuilder) WithTitle(title string) *MovieBuilder {
	b.m.Title = title
	return b
}

func (b *MovieBuilder) WithDirector(director string) *MovieBuilder {
	b.m.Director = director
	return b
}

func (b *MovieBuilder) WithRating(rating string) *MovieBuilder {
	b.m.Rating = rating
	return b
}

func (b *MovieBuilder) WithoutID() *MovieBuilder {
	b.m.ID = uuid.Nil
	return b
}

func (b *MovieBuilder) Build() model.Movie {
	return b.m
}

func initResources(t provider.T) *resources {
	repository := repo_mocks.NewMovieRepository(t)

	return &resources{
		usecase:    New(repository),
		repository: repository,
		ctx:        context.Background(),
	}
}

func (s *UsecaseMovieUnitSuite) TestCreate(t provider.T) {
	t.Parallel()

	testCases := []struct {
		name        string
		setupMocks  func(r *resources)
		movie       model.Movie
		expectError bool
		errorType   error
	}{
		{
			name: "Should create movie and assign an id",
			setupMocks: func(r *resources) {
				r.repository.On("Store", r.ctx, mock.MatchedBy(func(m model.Movie) bool {
					return m.ID != uuid.Nil && m.Title == "random title"
				})).Return(nil).Once()
			},
			movie: NewMovieBuilder().WithoutID().Build(),
		},
		{
			name: "Should trim the title before storing",
			setupMocks: func(r *resources) {
				r.repository.On("Store", r.ctx, mock.MatchedBy(func(m model.Movie) bool {
					return m.Title == "Seven"
				})).Return(nil).Once()
			},
			movie: NewMovieBuilder().WithTitle("  Seven ").Build(),
		},
		{
			name:        "Should return ErrInvalidInput when title is empty",
			setupMocks:  func(r *resources) {},
			movie:       NewMovieBuilder().WithTitle(model.EmptyTitle).Build(),
			expectError: true,
			errorType:   ErrInvalidInput,
		},
		{
			name:        "Should return ErrInvalidInput when title is blank",
			setupMocks:  func(r *resources) {},
			movie:       NewMovieBuilder().WithTitle("   ").Build(),
			expectError: true,
			errorType:   ErrInvalidInput,
		},
		{
			name:        "Should return ErrInvalidInput on unknown rating",
			setupMocks:  func(r *resources) {},
			movie:       NewMovieBuilder().WithRating("X").Build(),
			expectError: true,
			errorType:   ErrInvalidInput,
		},
		{
			name: "Should wrap repository errors",
			setupMocks: func(r *resources) {
				r.repository.On("Store", r.ctx, mock.Anything).Return(errors.New("insert error")).Once()
			},
			movie:       NewMovieBuilder().Build(),
			expectError: true,
			errorType:   ErrFailedToStoreMovie,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t provider.T) {
			t.Parallel()
			r := initResources(t)
			tc.setupMocks(r)

			created, err := r.usecase.Create(r.ctx, tc.movie)

			if tc.expectError {
				assert.ErrorIs(t, err, tc.errorType)
				assert.Equal(t, model.Movie{}, created)
			} else {
				assert.NoError(t, err)
				assert.NotEqual(t, uuid.Nil, created.ID)
			}
			r.repository.AssertExpectations(t)
		})
	}
}

func (s *UsecaseMovieUnitSuite) TestGet(t provider.T) {
	t.Parallel()

	t.Run("Should return stored movie", func(t provider.T) {
		r := initResources(t)
		m := NewMovieBuilder().Build()
		r.repository.On("LoadByID", r.ctx, m.ID).Return(m, nil).Once()

		got, err := r.usecase.Get(r.ctx, m.ID)

		assert.NoError(t, err)
		assert.Equal(t, m, got)
	})

	t.Run("Should surface ErrMovieNotFound", func(t provider.T) {
		r := initResources(t)
		id := uuid.New()
		r.repository.On("LoadByID", r.ctx, id).Return(model.Movie{}, model.ErrMovieNotFound).Once()

		_, err := r.usecase.Get(r.ctx, id)

		assert.ErrorIs(t, err, ErrMovieNotFound)
		assert.ErrorIs(t, err, ErrFailedToLoadMovie)
	})
}

func (s *UsecaseMovieUnitSuite) TestUpdate(t provider.T) {
	t.Parallel()

	testCases := []struct {
		name        string
		setupMocks  func(r *resources, m model.Movie)
		movie       model.Movie
		expectError bool
		errorType   error
	}{
		{
			name: "Should update movie successfully",
			setupMocks: func(r *resources, m model.Movie) {
				r.repository.On("Update", r.ctx, m).Return(nil).Once()
			},
			movie: NewMovieBuilder().WithDirector("another name").Build(),
		},
		{
			name: "Should return ErrMovieNotFound for unknown id",
			setupMocks: func(r *resources, m model.Movie) {
				r.repository.On("Update", r.ctx, m).Return(model.ErrMovieNotFound).Once()
			},
			movie:       NewMovieBuilder().Build(),
			expectError: true,
			errorType:   ErrMovieNotFound,
		},
		{
			name:        "Should reject blank title",
			setupMocks:  func(r *resources, m model.Movie) {},
			movie:       NewMovieBuilder().WithTitle("").Build(),
			expectError: true,
			errorType:   ErrInvalidInput,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t provider.T) {
			t.Parallel()
			r := initResources(t)
			tc.setupMocks(r, tc.movie)

			updated, err := r.usecase.Update(r.ctx, tc.movie)

			if tc.expectError {
				assert.ErrorIs(t, err, tc.errorType)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tc.movie, updated)
			}
			r.repository.AssertExpectations(t)
		})
	}
}

func (s *UsecaseMovieUnitSuite) TestDelete(t provider.T) {
	t.Parallel()

	t.Run("Should delete movie and return it", func(t provider.T) {
		r := initResources(t)
		m := NewMovieBuilder().Build()
		r.repository.On("LoadByID", r.ctx, m.ID).Return(m, nil).Once()
		r.repository.On("DeleteByID", r.ctx, m.ID).Return(nil).Once()

		deleted, err := r.usecase.Delete(r.ctx, m.ID)

		assert.NoError(t, err)
		assert.Equal(t, m.Title, deleted.Title)
	})

	t.Run("Should fail with ErrMovieNotFound for unknown id", func(t provider.T) {
		r := initResources(t)
		id := uuid.New()
		r.repository.On("LoadByID", r.ctx, id).Return(model.Movie{}, model.ErrMovieNotFound).Once()

		_, err := r.usecase.Delete(r.ctx, id)

		assert.ErrorIs(t, err, ErrMovieNotFound)
		r.repository.AssertNotCalled(t, "DeleteByID", mock.Anything, mock.Anything)
	})

	t.Run("Should wrap repository errors", func(t provider.T) {
		r := initResources(t)
		m := NewMovieBuilder().Build()
		r.repository.On("LoadByID", r.ctx, m.ID).Return(m, nil).Once()
		r.repository.On("DeleteByID", r.ctx, m.ID).Return(errors.New("delete error")).Once()

		_, err := r.usecase.Delete(r.ctx, m.ID)

		assert.ErrorIs(t, err, ErrFailedToDeleteMovie)
		assert.ErrorContains(t, err, "delete error")
	})
}

func (s *UsecaseMovieUnitSuite) TestList(t provider.T) {
	t.Parallel()

	q := model.ListQuery{Sort: model.ColumnTitle, Order: model.OrderAsc}

	t.Run("Should pass the query through", func(t provider.T) {
		r := initResources(t)
		a, b := NewMovieBuilder().WithTitle("A").Build(), NewMovieBuilder().WithTitle("B").Build()
		r.repository.On("Load", r.ctx, q).Return([]*model.Movie{&a, &b}, nil).Once()

		movies, err := r.usecase.List(r.ctx, q)

		assert.NoError(t, err)
		assert.Len(t, movies, 2)
	})

	t.Run("Should wrap repository errors", func(t provider.T) {
		r := initResources(t)
		r.repository.On("Load", r.ctx, q).Return(nil, errors.New("load error")).Once()

		movies, err := r.usecase.List(r.ctx, q)

		assert.ErrorIs(t, err, ErrFailedToLoadMovie)
		assert.Nil(t, movies)
	})
}

func (s *UsecaseMovieUnitSuite) TestSimilar(t provider.T) {
	t.Parallel()

	catchMe := NewMovieBuilder().WithTitle("Catch me if you can").WithDirector("").Build()
	seven := NewMovieBuilder().WithTitle("Seven").WithDirector("David Fincher").Build()
	alien := NewMovieBuilder().WithTitle("Alien").WithDirector("Ridley Scott").Build()

	testCases := []struct {
		name        string
		title       string
		setupMocks  func(r *resources)
		expected    []string
		expectError bool
		errorType   error
	}{
		{
			name:  "Should return other movies by the same director",
			title: seven.Title,
			setupMocks: func(r *resources) {
				r.repository.On("LoadByTitle", r.ctx, seven.Title).Return(seven, nil).Once()
				r.repository.On("LoadTitlesByDirector", r.ctx, "David Fincher", seven.ID).
					Return([]string{"The Social Network"}, nil).Once()
			},
			expected: []string{"The Social Network"},
		},
		{
			name:  "Should signal ErrNoDirectorInfo for a movie without director",
			title: catchMe.Title,
			setupMocks: func(r *resources) {
				r.repository.On("LoadByTitle", r.ctx, catchMe.Title).Return(catchMe, nil).Once()
			},
			expectError: true,
			errorType:   ErrNoDirectorInfo,
		},
		{
			name:  "Should treat whitespace director as missing",
			title: "Blank",
			setupMocks: func(r *resources) {
				blank := NewMovieBuilder().WithTitle("Blank").WithDirector("   ").Build()
				r.repository.On("LoadByTitle", r.ctx, "Blank").Return(blank, nil).Once()
			},
			expectError: true,
			errorType:   ErrNoDirectorInfo,
		},
		{
			name:  "Should return an empty list when nobody else shares the director",
			title: alien.Title,
			setupMocks: func(r *resources) {
				r.repository.On("LoadByTitle", r.ctx, alien.Title).Return(alien, nil).Once()
				r.repository.On("LoadTitlesByDirector", r.ctx, "Ridley Scott", alien.ID).Return(nil, nil).Once()
			},
			expected: []string{},
		},
		{
			name:  "Should fail with ErrMovieNotFound for unknown title",
			title: "Alladin",
			setupMocks: func(r *resources) {
				r.repository.On("LoadByTitle", r.ctx, "Alladin").Return(model.Movie{}, model.ErrMovieNotFound).Once()
			},
			expectError: true,
			errorType:   ErrMovieNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t provider.T) {
			t.Parallel()
			r := initResources(t)
			tc.setupMocks(r)

			titles, err := r.usecase.Similar(r.ctx, tc.title)

			if tc.expectError {
				assert.ErrorIs(t, err, tc.errorType)
				assert.Nil(t, titles)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tc.expected, titles)
			}
			r.repository.AssertExpectations(t)
		})
	}
}

func (s *UsecaseMovieUnitSuite) TestInvalidInputDetail(t provider.T) {
	t.Parallel()

	r := initResources(t)

	_, err := r.usecase.Update(r.ctx, NewMovieBuilder().WithRating("X").Build())
	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.ErrorIs(t, err, ErrUnknownRating)
	assert.NotErrorIs(t, err, ErrBlankTitle)
	assert.Contains(t, err.Error(), `"X"`)

	_, err = r.usecase.Create(r.ctx, NewMovieBuilder().WithTitle(" ").Build())
	assert.ErrorIs(t, err, ErrBlankTitle)
	assert.NotErrorIs(t, err, ErrUnknownRating)
}

func (s *UsecaseMovieUnitSuite) TestImport(t provider.T) {
	t.Parallel()

	t.Run("Should skip titles already in the catalog", func(t provider.T) {
		r := initResources(t)
		existing := NewMovieBuilder().WithTitle("Aladdin").Build()
		fresh := NewMovieBuilder().WithTitle(" Chicken Run ").WithoutID().Build()

		r.repository.On("LoadByTitle", r.ctx, "Aladdin").Return(existing, nil).Once()
		r.repository.On("LoadByTitle", r.ctx, "Chicken Run").Return(model.Movie{}, ErrMovieNotFound).Once()
		r.repository.On("StoreAll", r.ctx, mock.MatchedBy(func(movies []model.Movie) bool {
			return len(movies) == 1 && movies[0].Title == "Chicken Run" && movies[0].ID != uuid.Nil
		})).Return(nil).Once()

		added, err := r.usecase.Import(r.ctx, []model.Movie{existing, fresh, fresh})

		assert.NoError(t, err)
		assert.Equal(t, 1, added)
	})

	t.Run("Should write nothing when the catalog already has everything", func(t provider.T) {
		r := initResources(t)
		existing := NewMovieBuilder().WithTitle("Aladdin").Build()
		r.repository.On("LoadByTitle", r.ctx, "Aladdin").Return(existing, nil).Once()

		added, err := r.usecase.Import(r.ctx, []model.Movie{existing})

		assert.NoError(t, err)
		assert.Zero(t, added)
		r.repository.AssertNotCalled(t, "StoreAll", mock.Anything, mock.Anything)
	})

	t.Run("Should validate every movie before writing", func(t provider.T) {
		r := initResources(t)
		good := NewMovieBuilder().WithTitle("Alien").Build()
		bad := NewMovieBuilder().WithTitle("Up").WithRating("X").Build()
		r.repository.On("LoadByTitle", r.ctx, "Alien").Return(model.Movie{}, ErrMovieNotFound).Once()

		added, err := r.usecase.Import(r.ctx, []model.Movie{good, bad})

		assert.ErrorIs(t, err, ErrUnknownRating)
		assert.Contains(t, err.Error(), `"Up"`)
		assert.Zero(t, added)
		r.repository.AssertNotCalled(t, "StoreAll", mock.Anything, mock.Anything)
	})

	t.Run("Should wrap storage failures", func(t provider.T) {
		r := initResources(t)
		m := NewMovieBuilder().Build()
		r.repository.On("LoadByTitle", r.ctx, m.Title).Return(model.Movie{}, ErrMovieNotFound).Once()
		r.repository.On("StoreAll", r.ctx, mock.Anything).Return(errors.New("tx aborted")).Once()

		added, err := r.usecase.Import(r.ctx, []model.Movie{m})

		assert.ErrorIs(t, err, ErrFailedToStoreMovie)
		assert.Zero(t, added)
	})
}

func TestUnitSuite(t *testing.T) {
	suite.RunSuite(t, new(UsecaseMovieUnitSuite))
}
