package model

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

const EmptyTitle string = ""

type Movie struct {
	ID          uuid.UUID
	Title       string
	Director    string
	Rating      string
	Description string
	ReleaseDate *time.Time
}

func (m Movie) HasDirector() bool {
	return strings.TrimSpace(m.Director) != ""
}

// Ratings lists the MPAA ratings a movie may carry, in display order.
var Ratings = []string{"G", "PG", "PG-13", "NC-17", "R"}

func IsKnownRating(r string) bool {
	for _, known := range Ratings {
		if r == known {
			return true
		}
	}
	return false
}

var ErrMovieNotFound = errors.New("movie not found")
