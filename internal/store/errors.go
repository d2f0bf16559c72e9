// Package store implements the persistence layer: one parameterized SQL
// statement per operation, executed through a shared pgx connection pool.
// Postgres constraint violations are translated here, once, into the typed
// error taxonomy — callers never see SQLSTATEs.
package store

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// ValidationError reports missing, malformed, or out-of-enum input.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// NewValidationError builds a ValidationError with a caller-facing message.
func NewValidationError(format string, args ...interface{}) *ValidationError {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// NotFoundError reports that an operation targeted a nonexistent row.
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string { return e.Entity + " not found" }

// ConflictKind identifies which uniqueness rule a write violated, so callers
// can produce a precise message (duplicate player vs. duplicate jersey).
type ConflictKind string

const (
	ConflictTeamNameSeason  ConflictKind = "team_name_season"
	ConflictPlayerIdentity  ConflictKind = "player_identity"
	ConflictRosterPlayer    ConflictKind = "roster_player"
	ConflictRosterJersey    ConflictKind = "roster_jersey"
	ConflictOpponentName    ConflictKind = "opponent_name"
	ConflictGameTypeName    ConflictKind = "game_type_name"
	ConflictDressingPlayer  ConflictKind = "dressing_player"
	ConflictStartingGoalie  ConflictKind = "starting_goalie"
	ConflictStatSeason      ConflictKind = "stat_season"
	ConflictUnknownUniqueKy ConflictKind = "unknown_unique"
)

// ConflictError reports a unique-constraint violation. Message text matches
// the wire format the original deployment shipped.
type ConflictError struct {
	Kind    ConflictKind
	Message string
}

func (e *ConflictError) Error() string { return e.Message }

// constraintConflicts maps schema constraint names to caller-facing conflicts.
var constraintConflicts = map[string]*ConflictError{
	"team_name_season_key":            {Kind: ConflictTeamNameSeason, Message: "Team name already exists for this season"},
	"player_identity_key":             {Kind: ConflictPlayerIdentity, Message: "Player already exists"},
	"team_player_player_team_key":     {Kind: ConflictRosterPlayer, Message: "Player is already assigned to this team"},
	"team_player_team_jersey_key":     {Kind: ConflictRosterJersey, Message: "Jersey number already taken for this team"},
	"opponent_name_key":               {Kind: ConflictOpponentName, Message: "Opponent name already exists"},
	"game_type_name_key":              {Kind: ConflictGameTypeName, Message: "Game type name already exists"},
	"game_player_game_player_key":     {Kind: ConflictDressingPlayer, Message: "Player is already dressed for this game"},
	"game_player_starting_goalie_idx": {Kind: ConflictStartingGoalie, Message: "Game already has a starting goalie"},
	"player_stat_player_season_key":   {Kind: ConflictStatSeason, Message: "Stats already exist for this player and season"},
}

const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

// translateError converts low-level pgx errors into the typed taxonomy.
// notFoundEntity names the entity reported when the query matched no rows.
func translateError(err error, notFoundEntity string) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return &NotFoundError{Entity: notFoundEntity}
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation:
			if c, ok := constraintConflicts[pgErr.ConstraintName]; ok {
				return c
			}
			return &ConflictError{Kind: ConflictUnknownUniqueKy, Message: "Duplicate value violates a uniqueness rule"}
		case pgForeignKeyViolation:
			return NewValidationError("Referenced %s does not exist", referencedEntity(pgErr.ConstraintName))
		}
	}
	return err
}

// referencedEntity derives a readable entity name from an FK constraint name
// such as "team_player_player_id_fkey".
func referencedEntity(constraint string) string {
	switch constraint {
	case "team_player_team_id_fkey", "game_team_id_fkey":
		return "team"
	case "team_player_player_id_fkey", "game_player_player_id_fkey", "player_stat_player_id_fkey":
		return "player"
	case "game_player_game_id_fkey":
		return "game"
	case "game_game_type_id_fkey":
		return "game type"
	case "game_opponent_id_fkey":
		return "opponent"
	}
	return "row"
}

// IsNotFound reports whether err is (or wraps) a NotFoundError.
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}

// IsConflict reports whether err is (or wraps) a ConflictError.
func IsConflict(err error) bool {
	var c *ConflictError
	return errors.As(err, &c)
}

// IsValidation reports whether err is (or wraps) a ValidationError.
func IsValidation(err error) bool {
	var v *ValidationError
	return errors.As(err, &v)
}
