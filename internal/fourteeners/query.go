package fourteeners

import (
	"fmt"
	"strconv"
	"strings"
)

// Fixed column lists for the two record kinds. The "range" column on routes
// needs quoting because of the window-frame keyword.
const (
	mountainColumns = "mountain_id, mountain_name, rank, elevation, mountain_range, county, latitude, longitude, nearby_towns, image_filename, mountain_url"
	routeColumns    = `mountain_name, route_name, route_difficulty, roundtrip_distance, elevation_gain, "range", snow, snow_difficulty, risk_factor_exposure, risk_factor_rockfall, risk_factor_route_finding, risk_factor_commitment, route_url, standard`
)

// Predicate is a single column/operator/value condition. Column and operator
// text only ever comes from the builder functions in this file; caller input
// is always carried in Value and bound as a parameter. A nil Value renders
// the operator alone (IS NULL / IS NOT NULL).
type Predicate struct {
	Column   string
	Operator string
	Value    any
	// Values carries the bound set for IN predicates; Value is nil then.
	Values []string
}

// Query is a renderable query skeleton: base select, ordered predicates, an
// optional ORDER BY, and an optional row cap.
type Query struct {
	table      string
	columns    string
	predicates []Predicate
	orderBy    string
	orderDir   string
	limit      int
}

// Predicates returns the ordered predicate list.
func (q *Query) Predicates() []Predicate {
	return q.predicates
}

// Limit returns the requested row cap (0 means uncapped).
func (q *Query) Limit() int {
	return q.limit
}

func (q *Query) whereCmp(column, operator string, value any) {
	q.predicates = append(q.predicates, Predicate{Column: column, Operator: operator, Value: value})
}

// whereLike adds a case-insensitive substring match. Empty values contribute
// no predicate.
func (q *Query) whereLike(column, value string) {
	if value == "" {
		return
	}
	q.predicates = append(q.predicates, Predicate{Column: column, Operator: "ILIKE", Value: "%" + value + "%"})
}

func (q *Query) whereNull(column string) {
	q.predicates = append(q.predicates, Predicate{Column: column, Operator: "IS NULL"})
}

func (q *Query) whereNotNull(column string) {
	q.predicates = append(q.predicates, Predicate{Column: column, Operator: "IS NOT NULL"})
}

// whereIn adds a set-membership predicate. Empty sets contribute nothing; a
// single-element set becomes plain equality.
func (q *Query) whereIn(column string, values []string) {
	switch len(values) {
	case 0:
	case 1:
		q.whereCmp(column, "=", values[0])
	default:
		q.predicates = append(q.predicates, Predicate{Column: column, Operator: "IN", Values: values})
	}
}

// Render produces the query text and the bound parameter list together.
// Values never appear in the text; only allow-listed column and operator
// names are interpolated.
func (q *Query) Render() (string, []any) {
	var sb strings.Builder
	var params []any

	fmt.Fprintf(&sb, "SELECT %s FROM %s WHERE 1=1", q.columns, q.table)

	for _, p := range q.predicates {
		switch {
		case p.Operator == "IN":
			placeholders := make([]string, len(p.Values))
			for i, v := range p.Values {
				params = append(params, v)
				placeholders[i] = "$" + strconv.Itoa(len(params))
			}
			fmt.Fprintf(&sb, " AND %s IN (%s)", p.Column, strings.Join(placeholders, ","))
		case p.Value == nil:
			fmt.Fprintf(&sb, " AND %s %s", p.Column, p.Operator)
		default:
			params = append(params, p.Value)
			fmt.Fprintf(&sb, " AND %s %s $%d", p.Column, p.Operator, len(params))
		}
	}

	if q.orderBy != "" {
		fmt.Fprintf(&sb, " ORDER BY %s %s", q.orderBy, q.orderDir)
	}

	if q.limit > 0 {
		capped := q.limit
		if capped > MaxLimit {
			capped = MaxLimit
		}
		params = append(params, capped)
		fmt.Fprintf(&sb, " LIMIT $%d", len(params))
	}

	return sb.String(), params
}

// BuildMountainQuery composes the mountains query from a validated filter.
func BuildMountainQuery(f MountainFilter) *Query {
	q := &Query{
		table:    "mountains",
		columns:  mountainColumns,
		orderBy:  f.OrderBy,
		orderDir: f.OrderDirection,
		limit:    f.Limit,
	}

	// Tri-state rank filter: the token selects the query shape. Any other
	// token is treated as an exact rank number; unparseable tokens are
	// dropped without error (observed leniency, see DESIGN.md).
	switch f.RankFilter {
	case "", RankExcludeUnranked:
		q.whereNotNull("rank")
	case RankOnlyUnranked:
		q.whereNull("rank")
	case RankIncludeAll:
	default:
		if rank, err := strconv.Atoi(f.RankFilter); err == nil {
			q.whereCmp("rank", "=", rank)
		}
	}

	if f.MinElevation != nil {
		q.whereCmp("elevation", ">=", *f.MinElevation)
	}
	if f.MaxElevation != nil {
		q.whereCmp("elevation", "<=", *f.MaxElevation)
	}
	q.whereLike("mountain_name", f.NameSearch)
	q.whereLike("mountain_range", f.Range)
	q.whereLike("county", f.County)
	q.whereLike("nearby_towns", f.NearbyTowns)

	return q
}

// BuildRouteQuery composes the routes query from a validated filter.
func BuildRouteQuery(f RouteFilter) *Query {
	q := &Query{
		table:    "routes",
		columns:  routeColumns,
		orderBy:  f.OrderBy,
		orderDir: f.OrderDirection,
		limit:    f.Limit,
	}

	q.whereLike("mountain_name", f.MountainName)
	q.whereLike("route_name", f.RouteName)
	q.whereLike(`"range"`, f.Range)
	q.whereIn("route_difficulty", f.RouteDifficulty)

	if f.Snow != nil {
		q.whereCmp("snow", "=", *f.Snow)
	}
	if f.Standard != nil {
		q.whereCmp("standard", "=", *f.Standard)
	}
	if f.MinDistance != nil {
		q.whereCmp("roundtrip_distance", ">=", *f.MinDistance)
	}
	if f.MaxDistance != nil {
		q.whereCmp("roundtrip_distance", "<=", *f.MaxDistance)
	}
	if f.MinElevationGain != nil {
		q.whereCmp("elevation_gain", ">=", *f.MinElevationGain)
	}
	if f.MaxElevationGain != nil {
		q.whereCmp("elevation_gain", "<=", *f.MaxElevationGain)
	}

	return q
}

// BuildMountainLookup composes the single-mountain lookup used by the info
// and weather tools: case-insensitive substring match, first row only.
func BuildMountainLookup(name string) *Query {
	q := &Query{
		table:   "mountains",
		columns: mountainColumns,
		limit:   1,
	}
	q.whereLike("mountain_name", name)
	return q
}
