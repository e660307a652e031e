// README: Trip store backed by PostgreSQL. Request and itinerary ride as JSONB.
package trip

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"tripforge/internal/modules/itinerary"
	"tripforge/internal/types"
)

var ErrNotFound = errors.New("trip not found")

type Store struct {
	db *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{db: db}
}

func (s *Store) Create(ctx context.Context, t *Trip) error {
	req, err := json.Marshal(t.Request)
	if err != nil {
		return fmt.Errorf("marshal trip request: %w", err)
	}
	_, err = s.db.Exec(ctx, `
        INSERT INTO trips (id, request, status, generation, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, $5)`,
		string(t.ID),
		req,
		string(t.Status),
		t.Generation,
		t.CreatedAt,
	)
	return err
}

func (s *Store) Get(ctx context.Context, id types.ID) (*Trip, error) {
	row := s.db.QueryRow(ctx, `
        SELECT id, request, status, generation, itinerary, created_at, updated_at
        FROM trips
        WHERE id = $1`, string(id),
	)

	var t Trip
	var req []byte
	var itin []byte

	err := row.Scan(&t.ID, &req, &t.Status, &t.Generation, &itin, &t.CreatedAt, &t.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(req, &t.Request); err != nil {
		return nil, fmt.Errorf("unmarshal trip request: %w", err)
	}
	if len(itin) > 0 {
		var doc itinerary.Itinerary
		if err := json.Unmarshal(itin, &doc); err != nil {
			return nil, fmt.Errorf("unmarshal itinerary: %w", err)
		}
		t.Itinerary = &doc
	}
	return &t, nil
}

// BeginGeneration moves the trip into generating and bumps the generation
// token, returning the token this run must present at commit time.
func (s *Store) BeginGeneration(ctx context.Context, id types.ID) (int, error) {
	row := s.db.QueryRow(ctx, `
        UPDATE trips
        SET status = $1,
            generation = generation + 1,
            itinerary = NULL,
            updated_at = NOW()
        WHERE id = $2
        RETURNING generation`,
		string(StatusGenerating),
		string(id),
	)
	var generation int
	err := row.Scan(&generation)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, ErrNotFound
	}
	if err != nil {
		return 0, err
	}
	return generation, nil
}

// CommitItinerary writes the completed itinerary in one conditional update.
// It reports false when the generation token is stale or the trip left the
// generating state, in which case the run's result is discarded.
func (s *Store) CommitItinerary(ctx context.Context, id types.ID, generation int, doc *itinerary.Itinerary) (bool, error) {
	body, err := json.Marshal(doc)
	if err != nil {
		return false, fmt.Errorf("marshal itinerary: %w", err)
	}
	tag, err := s.db.Exec(ctx, `
        UPDATE trips
        SET status = $1,
            itinerary = $2,
            updated_at = NOW()
        WHERE id = $3 AND generation = $4 AND status = $5`,
		string(StatusCompleted),
		body,
		string(id),
		generation,
		string(StatusGenerating),
	)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

// MarkFailed is the failure-side terminal write, conditional the same way.
func (s *Store) MarkFailed(ctx context.Context, id types.ID, generation int) (bool, error) {
	tag, err := s.db.Exec(ctx, `
        UPDATE trips
        SET status = $1,
            itinerary = NULL,
            updated_at = NOW()
        WHERE id = $2 AND generation = $3 AND status = $4`,
		string(StatusFailed),
		string(id),
		generation,
		string(StatusGenerating),
	)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}
