package infra_database_movie

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/humanbelnik/rottenpotatoes/internal/model"
	"github.com/jmoiron/sqlx"
)

var (
	ErrMovieNotFound   = model.ErrMovieNotFound
	ErrUnsafeSort      = errors.New("unsafe sort column")
	ErrMigrationFailed = errors.New("migration failed")
)

const movieColumns = `id, title, director, rating, description, release_date`

const driverSQLite = "sqlite"

// sortSafelist maps a listing column onto the SQL expression it sorts by.
var sortSafelist = map[model.Column]string{
	model.ColumnTitle:       "title",
	model.ColumnReleaseDate: "release_date",
}

type Repository struct {
	db *sqlx.DB
}

func New(db *sqlx.DB) *Repository {
	return &Repository{db: db}
}

const insertMovieQuery = `
	INSERT INTO movies (id, title, director, rating, description, release_date)
	VALUES (:id, :title, :director, :rating, :description, :release_date)
`

func (r *Repository) Store(ctx context.Context, m model.Movie) error {
	movieDB := FromDomain(m)

	_, err := r.db.NamedExecContext(ctx, insertMovieQuery, movieDB)
	if err != nil {
		return fmt.Errorf("failed to store movie: %w", err)
	}

	return nil
}

// StoreAll inserts every movie or none of them.
func (r *Repository) StoreAll(ctx context.Context, movies []model.Movie) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	for _, m := range movies {
		if _, err := tx.NamedExecContext(ctx, insertMovieQuery, FromDomain(m)); err != nil {
			return fmt.Errorf("failed to store movie %q: %w", m.Title, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit movies: %w", err)
	}

	return nil
}

func (r *Repository) Load(ctx context.Context, q model.ListQuery) ([]*model.Movie, error) {
	orderBy, err := orderClause(q, r.insertionOrder())
	if err != nil {
		return nil, err
	}

	var (
		query = `SELECT ` + movieColumns + ` FROM movies`
		args  []any
	)
	if len(q.Ratings) > 0 {
		query, args, err = sqlx.In(query+` WHERE rating IN (?)`, q.Ratings)
		if err != nil {
			return nil, fmt.Errorf("failed to build query: %w", err)
		}
	}
	query = r.db.Rebind(query + orderBy)

	var moviesDB []MovieDB
	if err := r.db.SelectContext(ctx, &moviesDB, query, args...); err != nil {
		return nil, fmt.Errorf("failed to query movies: %w", err)
	}

	movies := make([]*model.Movie, len(moviesDB))
	for i, movieDB := range moviesDB {
		domainMovie := movieDB.ToDomain()
		movies[i] = &domainMovie
	}

	return movies, nil
}

func (r *Repository) LoadByID(ctx context.Context, ID uuid.UUID) (model.Movie, error) {
	query := r.db.Rebind(`SELECT ` + movieColumns + ` FROM movies WHERE id = ?`)

	var movieDB MovieDB
	err := r.db.GetContext(ctx, &movieDB, query, ID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Movie{}, ErrMovieNotFound
		}
		return model.Movie{}, fmt.Errorf("failed to load movie by id: %w", err)
	}

	return movieDB.ToDomain(), nil
}

// LoadByTitle returns the earliest stored movie with exactly this title.
func (r *Repository) LoadByTitle(ctx context.Context, title string) (model.Movie, error) {
	query := r.db.Rebind(`
		SELECT ` + movieColumns + `
		FROM movies
		WHERE title = ?
		ORDER BY ` + r.insertionOrder() + ` ASC
		LIMIT 1
	`)

	var movieDB MovieDB
	err := r.db.GetContext(ctx, &movieDB, query, title)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Movie{}, ErrMovieNotFound
		}
		return model.Movie{}, fmt.Errorf("failed to load movie by title: %w", err)
	}

	return movieDB.ToDomain(), nil
}

// LoadTitlesByDirector returns titles of movies by director, skipping
// excludeID, in ascending title order.
func (r *Repository) LoadTitlesByDirector(ctx context.Context, director string, excludeID uuid.UUID) ([]string, error) {
	query := r.db.Rebind(`
		SELECT title
		FROM movies
		WHERE director = ? AND id <> ?
		ORDER BY title ASC
	`)

	titles := []string{}
	if err := r.db.SelectContext(ctx, &titles, query, director, excludeID); err != nil {
		return nil, fmt.Errorf("failed to query movies by director: %w", err)
	}

	return titles, nil
}

func (r *Repository) Update(ctx context.Context, m model.Movie) error {
	movieDB := FromDomain(m)
	query := `
		UPDATE movies
		SET title = :title, director = :director, rating = :rating,
			description = :description, release_date = :release_date
		WHERE id = :id
	`

	result, err := r.db.NamedExecContext(ctx, query, movieDB)
	if err != nil {
		return fmt.Errorf("failed to update movie: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return ErrMovieNotFound
	}

	return nil
}

func (r *Repository) DeleteByID(ctx context.Context, ID uuid.UUID) error {
	query := r.db.Rebind(`DELETE FROM movies WHERE id = ?`)

	result, err := r.db.ExecContext(ctx, query, ID)
	if err != nil {
		return fmt.Errorf("failed to delete movie: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return ErrMovieNotFound
	}

	return nil
}

// insertionOrder names a column that grows with every insert. created_at
// is too coarse on sqlite to tell apart rows stored in the same second.
func (r *Repository) insertionOrder() string {
	if r.db.DriverName() == driverSQLite {
		return "rowid"
	}
	return "seq"
}

func orderClause(q model.ListQuery, insertion string) (string, error) {
	if q.Sort == model.NoColumn {
		return ` ORDER BY ` + insertion + ` ASC`, nil
	}

	column, ok := sortSafelist[q.Sort]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrUnsafeSort, q.Sort)
	}

	direction := "ASC"
	if q.Order == model.OrderDesc {
		direction = "DESC"
	}

	clause := fmt.Sprintf(` ORDER BY %s %s`, column, direction)
	if q.Sort != model.ColumnTitle {
		clause += `, title ASC`
	}
	return clause, nil
}
