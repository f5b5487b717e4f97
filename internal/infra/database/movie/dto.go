package infra_database_movie

import (
	"database/sql"

	"github.com/google/uuid"
	"github.com/humanbelnik/rottenpotatoes/internal/model"
)

type MovieDB struct {
	ID          uuid.UUID    `db:"id"`
	Title       string       `db:"title"`
	Director    string       `db:"director"`
	Rating      string       `db:"rating"`
	Description string       `db:"description"`
	ReleaseDate sql.NullTime `db:"release_date"`
}

func (m *MovieDB) ToDomain() model.Movie {
	movie := model.Movie{
		ID:          m.ID,
		Title:       m.Title,
		Director:    m.Director,
		Rating:      m.Rating,
		Description: m.Description,
	}
	if m.ReleaseDate.Valid {
		d := m.ReleaseDate.Time
		movie.ReleaseDate = &d
	}
	return movie
}

func FromDomain(m model.Movie) MovieDB {
	movieDB := MovieDB{
		ID:          m.ID,
		Title:       m.Title,
		Director:    m.Director,
		Rating:      m.Rating,
		Description: m.Description,
	}
	if m.ReleaseDate != nil {
		movieDB.ReleaseDate = sql.NullTime{Time: *m.ReleaseDate, Valid: true}
	}
	return movieDB
}
