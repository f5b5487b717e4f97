// Package seed reads the movie catalog seed file.
//
// The file is TOML with one [[movies]] table per movie:
//
//	[[movies]]
//	title = "Aladdin"
//	rating = "G"
//	release_date = 1992-11-25
package seed

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/humanbelnik/rottenpotatoes/internal/model"
	"github.com/pelletier/go-toml/v2"
)

var ErrEmptySeed = errors.New("seed file has no movies")

type Entry struct {
	Title       string          `toml:"title"`
	Director    string          `toml:"director"`
	Rating      string          `toml:"rating"`
	Description string          `toml:"description"`
	ReleaseDate *toml.LocalDate `toml:"release_date"`
}

type File struct {
	Movies []Entry `toml:"movies"`
}

func LoadFile(path string) ([]model.Movie, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open seed file: %w", err)
	}
	defer f.Close()

	return Load(f)
}

// Load decodes a seed file. Unknown keys are rejected so that typos do not
// silently drop data.
func Load(r io.Reader) ([]model.Movie, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read seed file: %w", err)
	}

	var file File
	decoder := toml.NewDecoder(bytes.NewReader(data))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&file); err != nil {
		return nil, fmt.Errorf("parse seed file: %w", err)
	}
	if len(file.Movies) == 0 {
		return nil, ErrEmptySeed
	}

	movies := make([]model.Movie, 0, len(file.Movies))
	for i, e := range file.Movies {
		if strings.TrimSpace(e.Title) == model.EmptyTitle {
			return nil, fmt.Errorf("movie #%d: title is required", i+1)
		}
		m := model.Movie{
			ID:          uuid.New(),
			Title:       e.Title,
			Director:    e.Director,
			Rating:      e.Rating,
			Description: e.Description,
		}
		if e.ReleaseDate != nil {
			released := e.ReleaseDate.AsTime(time.UTC)
			m.ReleaseDate = &released
		}
		movies = append(movies, m)
	}

	return movies, nil
}
