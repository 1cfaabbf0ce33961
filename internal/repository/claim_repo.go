package repository

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"go.uber.org/zap"

	"github.com/kathiroli/travel-claim/internal/models"
)

// ClaimRepository persists each employee's claim state as an opaque JSON
// blob keyed by personnel number.
type ClaimRepository struct {
	db     *sql.DB
	logger *zap.Logger
}

// NewClaimRepository creates a new claim state repository.
func NewClaimRepository(db *sql.DB, logger *zap.Logger) *ClaimRepository {
	return &ClaimRepository{db: db, logger: logger}
}

// Get loads the saved claim for an employee. Returns nil, nil when no
// state has been saved yet.
func (r *ClaimRepository) Get(persNo string) (*models.Claim, error) {
	query := `SELECT state FROM claim_states WHERE pers_no = ?`

	var blob []byte
	err := r.db.QueryRow(query, persNo).Scan(&blob)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.logger.Error("Failed to load claim state", zap.String("pers_no", persNo), zap.Error(err))
		return nil, fmt.Errorf("failed to load claim state: %w", err)
	}

	var claim models.Claim
	if err := json.Unmarshal(blob, &claim); err != nil {
		r.logger.Error("Failed to decode claim state", zap.String("pers_no", persNo), zap.Error(err))
		return nil, fmt.Errorf("failed to decode claim state: %w", err)
	}
	return &claim, nil
}

// Save upserts the full claim blob for an employee.
func (r *ClaimRepository) Save(persNo string, claim *models.Claim) error {
	blob, err := json.Marshal(claim)
	if err != nil {
		return fmt.Errorf("failed to encode claim state: %w", err)
	}

	query := `
		INSERT INTO claim_states (pers_no, state, updated_at)
		VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(pers_no) DO UPDATE SET
			state = excluded.state,
			updated_at = CURRENT_TIMESTAMP
	`

	if _, err := r.db.Exec(query, persNo, blob); err != nil {
		r.logger.Error("Failed to save claim state", zap.String("pers_no", persNo), zap.Error(err))
		return fmt.Errorf("failed to save claim state: %w", err)
	}
	return nil
}

// Delete removes the saved claim for an employee.
func (r *ClaimRepository) Delete(persNo string) error {
	if _, err := r.db.Exec(`DELETE FROM claim_states WHERE pers_no = ?`, persNo); err != nil {
		r.logger.Error("Failed to delete claim state", zap.String("pers_no", persNo), zap.Error(err))
		return fmt.Errorf("failed to delete claim state: %w", err)
	}
	return nil
}
