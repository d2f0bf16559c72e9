package store

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// RosterStore maintains the team_player assignment set and its two
// uniqueness invariants: one assignment per (player, team), one jersey
// number per (team, jersey). Both are unique constraints in the schema;
// violations come back as distinguishable ConflictErrors.
type RosterStore struct {
	pool *pgxpool.Pool
}

func NewRosterStore(pool *pgxpool.Pool) *RosterStore {
	return &RosterStore{pool: pool}
}

// validateAssignment checks the closed position set and the jersey range.
func validateAssignment(jerseyNumber int, position string) error {
	if jerseyNumber <= 0 {
		return NewValidationError("Jersey number must be a positive integer")
	}
	if !ValidPosition(position) {
		return NewValidationError("Position must be 'Forward', 'Defence', or 'Goalie'")
	}
	return nil
}

func scanAssignment(row pgx.Row) (*RosterAssignment, error) {
	var a RosterAssignment
	err := row.Scan(&a.ID, &a.PlayerID, &a.TeamID, &a.JerseyNumber, &a.Position, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// Assign puts a player on a team's roster.
func (s *RosterStore) Assign(ctx context.Context, playerID, teamID, jerseyNumber int, position string) (*RosterAssignment, error) {
	if err := validateAssignment(jerseyNumber, position); err != nil {
		return nil, err
	}
	a, err := scanAssignment(s.pool.QueryRow(ctx, "roster_assign", playerID, teamID, jerseyNumber, position))
	if err != nil {
		return nil, translateError(err, "Assignment")
	}
	return a, nil
}

// UpdateAssignment changes jersey number and position for an existing
// assignment.
func (s *RosterStore) UpdateAssignment(ctx context.Context, playerID, teamID, jerseyNumber int, position string) (*RosterAssignment, error) {
	if err := validateAssignment(jerseyNumber, position); err != nil {
		return nil, err
	}
	a, err := scanAssignment(s.pool.QueryRow(ctx, "roster_update", playerID, teamID, jerseyNumber, position))
	if err != nil {
		return nil, translateError(err, "Assignment")
	}
	return a, nil
}

// Remove takes a player off a team's roster. NotFound when no row matched.
func (s *RosterStore) Remove(ctx context.Context, playerID, teamID int) (*RosterAssignment, error) {
	a, err := scanAssignment(s.pool.QueryRow(ctx, "roster_remove", playerID, teamID))
	if err != nil {
		return nil, translateError(err, "Assignment")
	}
	return a, nil
}

// ListByTeam returns a team's roster ordered by jersey number.
func (s *RosterStore) ListByTeam(ctx context.Context, teamID int) ([]TeamRosterEntry, error) {
	rows, err := s.pool.Query(ctx, "roster_list_by_team", teamID)
	if err != nil {
		return nil, fmt.Errorf("list roster for team %d: %w", teamID, err)
	}
	defer rows.Close()

	entries := []TeamRosterEntry{}
	for rows.Next() {
		var e TeamRosterEntry
		err := rows.Scan(
			&e.ID, &e.PlayerID, &e.TeamID, &e.JerseyNumber, &e.Position, &e.CreatedAt, &e.UpdatedAt,
			&e.FirstName, &e.LastName, &e.DateOfBirth, &e.FullName,
		)
		if err != nil {
			return nil, fmt.Errorf("scan roster entry: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// ListByPlayer returns a player's assignments ordered by team name.
func (s *RosterStore) ListByPlayer(ctx context.Context, playerID int) ([]PlayerTeamEntry, error) {
	rows, err := s.pool.Query(ctx, "roster_list_by_player", playerID)
	if err != nil {
		return nil, fmt.Errorf("list teams for player %d: %w", playerID, err)
	}
	defer rows.Close()

	entries := []PlayerTeamEntry{}
	for rows.Next() {
		var e PlayerTeamEntry
		err := rows.Scan(
			&e.ID, &e.PlayerID, &e.TeamID, &e.JerseyNumber, &e.Position, &e.CreatedAt, &e.UpdatedAt,
			&e.City, &e.TeamName, &e.Level, &e.Season, &e.Sport,
		)
		if err != nil {
			return nil, fmt.Errorf("scan player team entry: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// ListAll returns every assignment with both sides resolved, ordered by team
// name then jersey number.
func (s *RosterStore) ListAll(ctx context.Context) ([]AssignmentListEntry, error) {
	rows, err := s.pool.Query(ctx, "roster_list_all")
	if err != nil {
		return nil, fmt.Errorf("list assignments: %w", err)
	}
	defer rows.Close()

	entries := []AssignmentListEntry{}
	for rows.Next() {
		var e AssignmentListEntry
		err := rows.Scan(
			&e.ID, &e.PlayerID, &e.TeamID, &e.JerseyNumber, &e.Position, &e.CreatedAt, &e.UpdatedAt,
			&e.PlayerName, &e.TeamName, &e.City,
		)
		if err != nil {
			return nil, fmt.Errorf("scan assignment: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
