package http_movie

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	http_common "github.com/humanbelnik/rottenpotatoes/internal/delivery/http/common"
	"github.com/humanbelnik/rottenpotatoes/internal/model"
	"github.com/humanbelnik/rottenpotatoes/internal/service/sorting"
	usecase_listing "github.com/humanbelnik/rottenpotatoes/internal/usecase/listing"
	usecase_movie "github.com/humanbelnik/rottenpotatoes/internal/usecase/movie"
)

const (
	hilite = "hilite"

	moviesPath = "/movies"
)

var releaseDateLayouts = []string{"2006-01-02", "2-Jan-2006", "02-Jan-2006"}

var errBadReleaseDate = errors.New("release date must look like 1968-04-06 or 6-Apr-1968")

// CreateMovieRequestDTO is the body of POST /movies, as a form or JSON.
type CreateMovieRequestDTO struct {
	Title       string `form:"title" json:"title" binding:"required"`
	Director    string `form:"director" json:"director"`
	Rating      string `form:"rating" json:"rating"`
	Description string `form:"description" json:"description"`
	ReleaseDate string `form:"release_date" json:"release_date"`
}

// UpdateMovieRequestDTO only touches the fields it carries.
type UpdateMovieRequestDTO struct {
	Title       *string `form:"title" json:"title"`
	Director    *string `form:"director" json:"director"`
	Rating      *string `form:"rating" json:"rating"`
	Description *string `form:"description" json:"description"`
	ReleaseDate *string `form:"release_date" json:"release_date"`
}

func (r *CreateMovieRequestDTO) ConvertToMovie() (model.Movie, error) {
	released, err := parseReleaseDate(r.ReleaseDate)
	if err != nil {
		return model.Movie{}, err
	}

	return model.Movie{
		ID:          uuid.New(),
		Title:       r.Title,
		Director:    r.Director,
		Rating:      r.Rating,
		Description: r.Description,
		ReleaseDate: released,
	}, nil
}

func (r *UpdateMovieRequestDTO) ApplyTo(m model.Movie) (model.Movie, error) {
	if r.Title != nil {
		m.Title = *r.Title
	}
	if r.Director != nil {
		m.Director = *r.Director
	}
	if r.Rating != nil {
		m.Rating = *r.Rating
	}
	if r.Description != nil {
		m.Description = *r.Description
	}
	if r.ReleaseDate != nil {
		released, err := parseReleaseDate(*r.ReleaseDate)
		if err != nil {
			return model.Movie{}, err
		}
		m.ReleaseDate = released
	}
	return m, nil
}

func parseReleaseDate(s string) (*time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	for _, layout := range releaseDateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return &t, nil
		}
	}
	return nil, errBadReleaseDate
}

type ratingChoice struct {
	Name    string
	Checked bool
}

type Controller struct {
	movies  *usecase_movie.Usecase
	listing *usecase_listing.Usecase
	notices http_common.Notices

	logger *slog.Logger
}

type ControllerOption func(*Controller)

func WithLogger(logger *slog.Logger) ControllerOption {
	return func(c *Controller) {
		c.logger = logger
	}
}

func New(movies *usecase_movie.Usecase,
	listing *usecase_listing.Usecase,
	notices http_common.Notices,
	opts ...ControllerOption) *Controller {
	c := &Controller{
		movies:  movies,
		listing: listing,
		notices: notices,
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Controller) RegisterRoutes(router *gin.RouterGroup) {
	movies := router.Group(moviesPath)
	{
		movies.GET("", c.index)
		movies.POST("", c.create)
		movies.GET("/new", c.newMovie)
		movies.GET("/with_same_director", c.withSameDirector)
		movies.GET("/:id", c.show)
		movies.GET("/:id/edit", c.edit)
		movies.PUT("/:id", c.update)
		movies.PATCH("/:id", c.update)
		movies.POST("/:id", c.update)
		movies.DELETE("/:id", c.destroy)
		movies.POST("/:id/delete", c.destroy)
	}
}

func (c *Controller) index(ctx *gin.Context) {
	req := parseListingRequest(ctx)

	listing, err := c.listing.Browse(ctx.Request.Context(), http_common.SessionID(ctx), req)
	if err != nil {
		c.logger.Error("failed to list movies", slog.String("error", err.Error()))
		c.renderError(ctx, http.StatusInternalServerError, "Could not load the movie list.")
		return
	}

	if listing.Redirect {
		http_common.Redirect(ctx, moviesPath+"?"+listing.Params.Encode())
		return
	}

	data := c.page(ctx, gin.H{
		"movies":      listing.Movies,
		"titleHeader": headerClass(listing.Query, model.ColumnTitle),
		"dateHeader":  headerClass(listing.Query, model.ColumnReleaseDate),
		"ratings":     ratingChoices(listing.Query.Ratings),
		"sort":        string(listing.Query.Sort),
		"order":       string(listing.Query.Order),
	})
	ctx.HTML(http.StatusOK, "index.html", data)
}

func (c *Controller) newMovie(ctx *gin.Context) {
	ctx.HTML(http.StatusOK, "new.html", c.page(ctx, gin.H{"movie": model.Movie{}}))
}

func (c *Controller) create(ctx *gin.Context) {
	var req CreateMovieRequestDTO
	if err := ctx.ShouldBind(&req); err != nil {
		c.logger.Warn("invalid request body", slog.String("error", err.Error()))
		c.notifyAndRedirect(ctx, bindNotice(err), moviesPath+"/new")
		return
	}

	movie, err := req.ConvertToMovie()
	if err != nil {
		c.notifyAndRedirect(ctx, capitalize(err.Error())+".", moviesPath+"/new")
		return
	}

	created, err := c.movies.Create(ctx.Request.Context(), movie)
	if err != nil {
		c.logger.Error("failed to create movie",
			slog.String("error", err.Error()),
			slog.String("title", req.Title),
		)
		if errors.Is(err, usecase_movie.ErrInvalidInput) {
			c.notifyAndRedirect(ctx, invalidNotice(err), moviesPath+"/new")
			return
		}
		c.notifyAndRedirect(ctx, "Could not create the movie.", moviesPath)
		return
	}

	c.notifyAndRedirect(ctx, fmt.Sprintf("'%s' was successfully created.", created.Title), moviesPath)
}

func (c *Controller) show(ctx *gin.Context) {
	movie, ok := c.loadMovie(ctx)
	if !ok {
		return
	}

	ctx.HTML(http.StatusOK, "show.html", c.page(ctx, gin.H{"movie": movie}))
}

func (c *Controller) edit(ctx *gin.Context) {
	movie, ok := c.loadMovie(ctx)
	if !ok {
		return
	}

	ctx.HTML(http.StatusOK, "edit.html", c.page(ctx, gin.H{"movie": movie}))
}

func (c *Controller) update(ctx *gin.Context) {
	movie, ok := c.loadMovie(ctx)
	if !ok {
		return
	}
	editPath := moviesPath + "/" + movie.ID.String() + "/edit"

	var req UpdateMovieRequestDTO
	if err := ctx.ShouldBind(&req); err != nil {
		c.logger.Warn("invalid request body", slog.String("error", err.Error()))
		c.notifyAndRedirect(ctx, bindNotice(err), editPath)
		return
	}

	movie, err := req.ApplyTo(movie)
	if err != nil {
		c.notifyAndRedirect(ctx, capitalize(err.Error())+".", editPath)
		return
	}

	updated, err := c.movies.Update(ctx.Request.Context(), movie)
	if err != nil {
		c.logger.Error("failed to update movie",
			slog.String("error", err.Error()),
			slog.String("movie_id", movie.ID.String()),
		)
		switch {
		case errors.Is(err, usecase_movie.ErrInvalidInput):
			c.notifyAndRedirect(ctx, invalidNotice(err), editPath)
		case errors.Is(err, usecase_movie.ErrMovieNotFound):
			c.notifyAndRedirect(ctx, "Movie not found.", moviesPath)
		default:
			c.notifyAndRedirect(ctx, "Could not update the movie.", moviesPath)
		}
		return
	}

	c.notifyAndRedirect(ctx, fmt.Sprintf("'%s' was successfully updated.", updated.Title), moviesPath+"/"+updated.ID.String())
}

func (c *Controller) destroy(ctx *gin.Context) {
	movieID, ok := c.parseID(ctx)
	if !ok {
		return
	}

	deleted, err := c.movies.Delete(ctx.Request.Context(), movieID)
	if err != nil {
		c.logger.Error("failed to delete movie",
			slog.String("error", err.Error()),
			slog.String("movie_id", movieID.String()),
		)
		if errors.Is(err, usecase_movie.ErrMovieNotFound) {
			c.notifyAndRedirect(ctx, "Movie not found.", moviesPath)
			return
		}
		c.notifyAndRedirect(ctx, "Could not delete the movie.", moviesPath)
		return
	}

	c.notifyAndRedirect(ctx, fmt.Sprintf("Movie '%s' deleted.", deleted.Title), moviesPath)
}

func (c *Controller) withSameDirector(ctx *gin.Context) {
	title := ctx.Query("title")

	similar, err := c.movies.Similar(ctx.Request.Context(), title)
	if err != nil {
		switch {
		case errors.Is(err, usecase_movie.ErrNoDirectorInfo):
			c.notifyAndRedirect(ctx, fmt.Sprintf("'%s' has no director info", title), moviesPath)
		case errors.Is(err, usecase_movie.ErrMovieNotFound):
			c.notifyAndRedirect(ctx, fmt.Sprintf("No movie titled '%s' found", title), moviesPath)
		default:
			c.logger.Error("failed to find similar movies",
				slog.String("error", err.Error()),
				slog.String("title", title),
			)
			c.notifyAndRedirect(ctx, "Could not look up similar movies.", moviesPath)
		}
		return
	}

	ctx.HTML(http.StatusOK, "with_same_director.html", c.page(ctx, gin.H{
		"title":         title,
		"similarMovies": similar,
	}))
}

func (c *Controller) parseID(ctx *gin.Context) (uuid.UUID, bool) {
	idParam := ctx.Param("id")
	movieID, err := uuid.Parse(idParam)
	if err != nil {
		c.logger.Warn("invalid movie ID",
			slog.String("id", idParam),
			slog.String("error", err.Error()),
		)
		c.notifyAndRedirect(ctx, "Movie not found.", moviesPath)
		return uuid.Nil, false
	}
	return movieID, true
}

func (c *Controller) loadMovie(ctx *gin.Context) (model.Movie, bool) {
	movieID, ok := c.parseID(ctx)
	if !ok {
		return model.Movie{}, false
	}

	movie, err := c.movies.Get(ctx.Request.Context(), movieID)
	if err != nil {
		if errors.Is(err, usecase_movie.ErrMovieNotFound) {
			c.notifyAndRedirect(ctx, "Movie not found.", moviesPath)
			return model.Movie{}, false
		}
		c.logger.Error("failed to load movie",
			slog.String("error", err.Error()),
			slog.String("movie_id", movieID.String()),
		)
		c.notifyAndRedirect(ctx, "Could not load the movie.", moviesPath)
		return model.Movie{}, false
	}

	return movie, true
}

func (c *Controller) notifyAndRedirect(ctx *gin.Context, notice, location string) {
	if err := c.notices.SetNotice(ctx.Request.Context(), http_common.SessionID(ctx), notice); err != nil {
		c.logger.Error("failed to set notice", slog.String("error", err.Error()))
	}
	http_common.Redirect(ctx, location)
}

// page adds the pending notice, if any, to the template data.
func (c *Controller) page(ctx *gin.Context, data gin.H) gin.H {
	notice, err := c.notices.PopNotice(ctx.Request.Context(), http_common.SessionID(ctx))
	if err != nil {
		c.logger.Error("failed to pop notice", slog.String("error", err.Error()))
	}
	data["notice"] = notice
	return data
}

func (c *Controller) renderError(ctx *gin.Context, status int, message string) {
	ctx.HTML(status, "error.html", gin.H{"message": message})
}

func parseListingRequest(ctx *gin.Context) sorting.Request {
	req := sorting.Request{
		Column: model.ParseColumn(ctx.Query("sort")),
		Order:  model.ParseOrder(ctx.Query("order")),
	}

	if raw, ok := ctx.GetQueryArray("ratings"); ok {
		req.Ratings = []string{}
		for _, r := range raw {
			if model.IsKnownRating(r) {
				req.Ratings = append(req.Ratings, r)
			}
		}
	}

	return req
}

func headerClass(q model.ListQuery, column model.Column) string {
	if q.Sort == column {
		return hilite
	}
	return ""
}

// ratingChoices marks every rating as checked when no filter is active.
func ratingChoices(selected []string) []ratingChoice {
	choices := make([]ratingChoice, len(model.Ratings))
	for i, r := range model.Ratings {
		choices[i] = ratingChoice{Name: r, Checked: len(selected) == 0}
		for _, s := range selected {
			if s == r {
				choices[i].Checked = true
			}
		}
	}
	return choices
}

// invalidNotice turns a usecase validation error into the sentence shown
// to the user, e.g. `Unknown rating "X".`
func invalidNotice(err error) string {
	detail := err.Error()
	if i := strings.Index(detail, usecase_movie.ErrInvalidInput.Error()+": "); i >= 0 {
		detail = detail[i+len(usecase_movie.ErrInvalidInput.Error())+2:]
	}
	return capitalize(detail) + "."
}

// bindNotice tells a missing required field apart from a body that could
// not be decoded at all.
func bindNotice(err error) string {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		for _, fe := range verrs {
			if fe.Field() == "Title" {
				return "Title can't be blank."
			}
		}
		return "Movie is invalid."
	}
	return "Could not read the movie data."
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
