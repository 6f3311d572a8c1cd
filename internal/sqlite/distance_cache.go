package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"quantum-logistics-router/internal/models"
)

// Get returns the cached entry for a directed origin->dest pair, or nil when
// the pair has not been seen. Pairs are directional: road networks are not
// symmetric.
func (s *Store) Get(ctx context.Context, origin, dest models.Coordinates) (*models.DistanceCacheEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	query := `SELECT origin_lat, origin_lng, dest_lat, dest_lng, distance_km, duration_min
	          FROM distance_cache
	          WHERE origin_lat = ? AND origin_lng = ? AND dest_lat = ? AND dest_lng = ?`

	var entry models.DistanceCacheEntry
	err := s.db.QueryRowContext(ctx, query,
		models.RoundCoordinate(origin.Lat), models.RoundCoordinate(origin.Lng),
		models.RoundCoordinate(dest.Lat), models.RoundCoordinate(dest.Lng),
	).Scan(
		&entry.Origin.Lat, &entry.Origin.Lng,
		&entry.Destination.Lat, &entry.Destination.Lng,
		&entry.DistanceKm, &entry.DurationMin,
	)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get distance cache entry: %w", err)
	}
	return &entry, nil
}

// SetBatch stores a set of pairs in one transaction.
func (s *Store) SetBatch(ctx context.Context, entries []models.DistanceCacheEntry) error {
	if len(entries) == 0 {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	query := `INSERT OR REPLACE INTO distance_cache
	          (origin_lat, origin_lng, dest_lat, dest_lng, distance_km, duration_min)
	          VALUES (?, ?, ?, ?, ?, ?)`

	stmt, err := tx.PrepareContext(ctx, query)
	if err != nil {
		return fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, entry := range entries {
		_, err := stmt.ExecContext(ctx,
			models.RoundCoordinate(entry.Origin.Lat), models.RoundCoordinate(entry.Origin.Lng),
			models.RoundCoordinate(entry.Destination.Lat), models.RoundCoordinate(entry.Destination.Lng),
			entry.DistanceKm, entry.DurationMin,
		)
		if err != nil {
			return fmt.Errorf("failed to insert cache entry: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit cache batch: %w", err)
	}
	return nil
}
