package sorting

import (
	"net/url"

	"github.com/humanbelnik/rottenpotatoes/internal/model"
)

// Request is what a listing request asks for, already parsed from the query.
type Request struct {
	Column model.Column
	Order  model.Order
	// nil means the request did not mention ratings at all.
	Ratings []string
}

// Resolution tells the caller how to answer a listing request.
type Resolution struct {
	Query model.ListQuery
	// Redirect is set when the canonical URL differs from the request.
	Redirect bool
	Params   url.Values
	Changed  bool
}

// Resolve applies a listing request to the session sort state. It never
// mutates the passed state; the returned state is what must be stored.
func Resolve(req Request, state model.SortState) (Resolution, model.SortState) {
	next := state.Clone()

	if req.Ratings != nil {
		next.Ratings = req.Ratings
	}
	ratingsChanged := req.Ratings != nil && !sameRatings(req.Ratings, state.Ratings)

	if req.Column == model.NoColumn {
		res := Resolution{
			Query: model.ListQuery{
				Sort:    state.Active,
				Order:   state.Direction(state.Active),
				Ratings: next.Ratings,
			},
			Changed: ratingsChanged,
		}
		if res.Query.Sort != model.NoColumn && res.Query.Order == model.NoOrder {
			res.Query.Order = model.OrderAsc
		}
		return res, next
	}

	order := req.Order
	redirect := false
	if order == model.NoOrder {
		order = state.Direction(req.Column).Flip()
		redirect = true
	}

	next.Directions[req.Column] = order
	next.Active = req.Column

	res := Resolution{
		Query: model.ListQuery{
			Sort:    req.Column,
			Order:   order,
			Ratings: next.Ratings,
		},
		Redirect: redirect,
		Changed:  ratingsChanged || state.Active != req.Column || state.Direction(req.Column) != order,
	}
	if redirect {
		res.Params = CanonicalParams(res.Query)
	}

	return res, next
}

// CanonicalParams renders a list query as the query string of /movies.
func CanonicalParams(q model.ListQuery) url.Values {
	params := url.Values{}
	if q.Sort != model.NoColumn {
		params.Set("sort", string(q.Sort))
	}
	if q.Order != model.NoOrder {
		params.Set("order", string(q.Order))
	}
	for _, r := range q.Ratings {
		params.Add("ratings", r)
	}
	return params
}

func sameRatings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
