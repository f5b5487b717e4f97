package model

type Column string

const (
	NoColumn          Column = ""
	ColumnTitle       Column = "title"
	ColumnReleaseDate Column = "release_date"
)

var Columns = []Column{ColumnTitle, ColumnReleaseDate}

func ParseColumn(s string) Column {
	for _, c := range Columns {
		if string(c) == s {
			return c
		}
	}
	return NoColumn
}

type Order string

const (
	NoOrder   Order = ""
	OrderAsc  Order = "asc"
	OrderDesc Order = "desc"
)

func ParseOrder(s string) Order {
	switch Order(s) {
	case OrderAsc, OrderDesc:
		return Order(s)
	}
	return NoOrder
}

func (o Order) Flip() Order {
	if o == OrderAsc {
		return OrderDesc
	}
	return OrderAsc
}

// SortState is the per-session memory of listing preferences.
type SortState struct {
	Directions map[Column]Order
	Active     Column
	Ratings    []string
}

func NewSortState() SortState {
	return SortState{Directions: make(map[Column]Order)}
}

func (s SortState) Direction(c Column) Order {
	if s.Directions == nil {
		return NoOrder
	}
	return s.Directions[c]
}

func (s SortState) Clone() SortState {
	out := SortState{
		Directions: make(map[Column]Order, len(s.Directions)),
		Active:     s.Active,
	}
	for k, v := range s.Directions {
		out.Directions[k] = v
	}
	if s.Ratings != nil {
		out.Ratings = append([]string{}, s.Ratings...)
	}
	return out
}

// ListQuery describes which movies to list and how to order them.
type ListQuery struct {
	Sort    Column
	Order   Order
	Ratings []string
}
