package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"todohome/internal/models"
)

// StoreInstallation upserts the credentials of a workspace.
func (s *Store) StoreInstallation(ctx context.Context, teamID, enterpriseID string, payload json.RawMessage) (models.Installation, error) {
	teamID = strings.TrimSpace(teamID)
	if teamID == "" {
		return models.Installation{}, fmt.Errorf("failed saving installation: team id must not be empty")
	}
	if !json.Valid(payload) {
		return models.Installation{}, fmt.Errorf("failed saving installation: payload is not valid JSON")
	}

	_, err := s.db.ExecContext(ctx, `INSERT INTO installations(team_id, enterprise_id, payload) VALUES(?, ?, ?)
        ON CONFLICT(team_id) DO UPDATE SET enterprise_id = excluded.enterprise_id, payload = excluded.payload, updated_at = CURRENT_TIMESTAMP`,
		teamID, enterpriseID, string(payload))
	if err != nil {
		return models.Installation{}, fmt.Errorf("upsert installation: %w", err)
	}
	return s.FetchInstallation(ctx, teamID)
}

// FetchInstallation returns the credentials stored for a workspace.
func (s *Store) FetchInstallation(ctx context.Context, teamID string) (models.Installation, error) {
	var (
		inst    models.Installation
		payload string
	)
	err := s.db.QueryRowContext(ctx, `SELECT team_id, enterprise_id, payload, created_at, updated_at FROM installations WHERE team_id = ?`, teamID).
		Scan(&inst.TeamID, &inst.EnterpriseID, &payload, &inst.CreatedAt, &inst.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Installation{}, models.ErrInstallationNotFound
	}
	if err != nil {
		return models.Installation{}, fmt.Errorf("get installation: %w", err)
	}
	inst.Payload = json.RawMessage(payload)
	return inst, nil
}
