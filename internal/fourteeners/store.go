package fourteeners

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"

	apierrors "github.com/colemanhs/fourteeners-mcp-server/internal/errors"
	"github.com/colemanhs/fourteeners-mcp-server/metrics"
	"github.com/colemanhs/fourteeners-mcp-server/tracing"
)

// DB is the database interface used by Store. *pgxpool.Pool satisfies it;
// the pool scopes a connection to each query and releases it on rows.Close
// regardless of outcome.
type DB interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Store executes rendered queries against the mountains and routes tables.
type Store struct {
	db           DB
	logger       *slog.Logger
	imageBaseURL string
}

// NewStore creates a Store over the given database.
func NewStore(db DB, imageBaseURL string, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.Default()
	}
	if imageBaseURL == "" {
		imageBaseURL = DefaultImageBaseURL
	}
	return &Store{db: db, logger: logger, imageBaseURL: imageBaseURL}
}

// SearchMountains runs a mountains query and maps each row.
func (s *Store) SearchMountains(ctx context.Context, q *Query) ([]Mountain, error) {
	sql, params := q.Render()
	s.logger.Debug("Executing query", "kind", "mountains", "sql", sql, "params", len(params))

	ctx, span := tracing.StartSpan(ctx, "db.mountains.search")
	defer span.End()
	tracing.AddQueryAttributes(span, "mountains", len(params))

	start := time.Now()
	rows, err := s.db.Query(ctx, sql, params...)
	if err != nil {
		tracing.RecordError(span, err)
		metrics.RecordDBQuery("mountains", time.Since(start).Seconds(), false)
		return nil, fmt.Errorf("query mountains: %w", err)
	}
	defer rows.Close()

	var mountains []Mountain
	for rows.Next() {
		var r mountainRow
		if err := rows.Scan(
			&r.id, &r.name, &r.rank, &r.elevation, &r.mountainRange, &r.county,
			&r.latitude, &r.longitude, &r.nearbyTowns, &r.imageFile, &r.mountainURL,
		); err != nil {
			metrics.RecordDBQuery("mountains", time.Since(start).Seconds(), false)
			return nil, fmt.Errorf("scan mountain row: %w", err)
		}
		mountains = append(mountains, mapMountain(r, s.imageBaseURL))
	}
	if err := rows.Err(); err != nil {
		metrics.RecordDBQuery("mountains", time.Since(start).Seconds(), false)
		return nil, fmt.Errorf("read mountain rows: %w", err)
	}

	metrics.RecordDBQuery("mountains", time.Since(start).Seconds(), true)
	return mountains, nil
}

// SearchRoutes runs a routes query and maps each row.
func (s *Store) SearchRoutes(ctx context.Context, q *Query) ([]Route, error) {
	sql, params := q.Render()
	s.logger.Debug("Executing query", "kind", "routes", "sql", sql, "params", len(params))

	ctx, span := tracing.StartSpan(ctx, "db.routes.search")
	defer span.End()
	tracing.AddQueryAttributes(span, "routes", len(params))

	start := time.Now()
	rows, err := s.db.Query(ctx, sql, params...)
	if err != nil {
		tracing.RecordError(span, err)
		metrics.RecordDBQuery("routes", time.Since(start).Seconds(), false)
		return nil, fmt.Errorf("query routes: %w", err)
	}
	defer rows.Close()

	var routes []Route
	for rows.Next() {
		var r routeRow
		if err := rows.Scan(
			&r.mountainName, &r.routeName, &r.routeDifficulty, &r.roundtripMiles,
			&r.elevationGain, &r.routeRange, &r.snow, &r.snowDifficulty,
			&r.riskExposure, &r.riskRockfall, &r.riskRouteFinding, &r.riskCommitment,
			&r.routeURL, &r.standard,
		); err != nil {
			metrics.RecordDBQuery("routes", time.Since(start).Seconds(), false)
			return nil, fmt.Errorf("scan route row: %w", err)
		}
		routes = append(routes, mapRoute(r))
	}
	if err := rows.Err(); err != nil {
		metrics.RecordDBQuery("routes", time.Since(start).Seconds(), false)
		return nil, fmt.Errorf("read route rows: %w", err)
	}

	metrics.RecordDBQuery("routes", time.Since(start).Seconds(), true)
	return routes, nil
}

// FindMountain resolves a name fragment to the first matching mountain,
// case-insensitively. Returns a NotFoundError when nothing matches.
func (s *Store) FindMountain(ctx context.Context, name string) (*Mountain, error) {
	mountains, err := s.SearchMountains(ctx, BuildMountainLookup(name))
	if err != nil {
		return nil, err
	}
	if len(mountains) == 0 {
		return nil, apierrors.NewNotFoundError("mountain", name)
	}
	return &mountains[0], nil
}

// CountRoutes returns the number of routes recorded for the exact mountain
// name. The routes table joins to mountains by name text, not a foreign key.
func (s *Store) CountRoutes(ctx context.Context, mountainName string) (int, error) {
	start := time.Now()
	var count int
	err := s.db.QueryRow(ctx, "SELECT COUNT(*) FROM routes WHERE mountain_name = $1", mountainName).Scan(&count)
	if err != nil {
		metrics.RecordDBQuery("route_count", time.Since(start).Seconds(), false)
		return 0, fmt.Errorf("count routes: %w", err)
	}
	metrics.RecordDBQuery("route_count", time.Since(start).Seconds(), true)
	return count, nil
}
