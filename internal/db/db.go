// Package db provides a pgxpool-based connection pool with prepared statement
// registration and health checking.
package db

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/FoyBuors17/stats-tracker/internal/config"
)

// Pool wraps pgxpool.Pool with application-specific helpers.
type Pool struct {
	*pgxpool.Pool
}

// New creates and validates a new connection pool.
func New(ctx context.Context, cfg *config.Config) (*Pool, error) {
	poolCfg, err := pgxpool.ParseConfig(cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("parse database URL: %w", err)
	}

	poolCfg.MinConns = int32(cfg.DBPoolMinConns)
	poolCfg.MaxConns = int32(cfg.DBPoolMaxConns)
	poolCfg.MaxConnLifetime = cfg.DBPoolMaxLife
	poolCfg.MaxConnIdleTime = 5 * time.Minute

	// Register prepared statements on every new connection.
	poolCfg.AfterConnect = func(ctx context.Context, conn *pgx.Conn) error {
		return registerPreparedStatements(ctx, conn)
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("create pool: %w", err)
	}

	// Verify connectivity
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	return &Pool{Pool: pool}, nil
}

// HealthCheck runs a trivial query to verify the database is reachable.
func (p *Pool) HealthCheck(ctx context.Context) error {
	var n int
	return p.QueryRow(ctx, "health_check").Scan(&n)
}

// Now returns the database server's current time, reported by the health
// endpoint alongside connectivity.
func (p *Pool) Now(ctx context.Context) (time.Time, error) {
	var t time.Time
	if err := p.QueryRow(ctx, "db_now").Scan(&t); err != nil {
		return time.Time{}, fmt.Errorf("query database time: %w", err)
	}
	return t, nil
}

// Column lists shared between INSERT ... RETURNING, UPDATE ... RETURNING and
// SELECT statements, so every scan of an entity sees the same column order.
const (
	teamCols     = "id, city, name, level, season, sport, created_at, updated_at"
	playerCols   = "id, first_name, last_name, date_of_birth, created_at, updated_at"
	rosterCols   = "id, player_id, team_id, jersey_number, position, created_at, updated_at"
	gameCols     = "id, team_id, game_date, location, game_type_id, opponent_id, goals_for, goals_against, period1_minutes, period2_minutes, period3_minutes, overtime_minutes, created_at, updated_at"
	dressingCols = "id, game_id, player_id, is_starting_goalie, created_at"
	statCols     = "id, player_id, season, games_played, goals, assists, yellow_cards, red_cards, minutes_played, created_at, updated_at"
)

// registerPreparedStatements registers every statement the store layer uses.
// One named statement per operation; prepared statements eliminate parse
// overhead on every request.
func registerPreparedStatements(ctx context.Context, conn *pgx.Conn) error {
	stmts := map[string]string{
		// Health
		"health_check": "SELECT 1",
		"db_now":       "SELECT now()",

		// Teams
		"team_create": "INSERT INTO team (city, name, level, season, sport) VALUES ($1, $2, $3, $4, $5) RETURNING " + teamCols,
		"team_list":   "SELECT " + teamCols + " FROM team ORDER BY season DESC, name ASC",
		"team_get":    "SELECT " + teamCols + " FROM team WHERE id = $1",
		"team_update": "UPDATE team SET city = $2, name = $3, level = $4, season = $5, sport = $6, updated_at = now() WHERE id = $1 RETURNING " + teamCols,
		"team_delete": "DELETE FROM team WHERE id = $1 RETURNING " + teamCols,

		// Players
		"player_create": "INSERT INTO player (first_name, last_name, date_of_birth) VALUES ($1, $2, $3) RETURNING " + playerCols,
		"player_list":   "SELECT " + playerCols + ", concat(first_name, ' ', last_name) AS full_name FROM player ORDER BY last_name ASC, first_name ASC",
		"player_get":    "SELECT " + playerCols + ", concat(first_name, ' ', last_name) AS full_name FROM player WHERE id = $1",
		"player_update": "UPDATE player SET first_name = $2, last_name = $3, date_of_birth = $4, updated_at = now() WHERE id = $1 RETURNING " + playerCols,
		"player_delete": "DELETE FROM player WHERE id = $1 RETURNING " + playerCols,

		// Roster assignments
		"roster_assign": "INSERT INTO team_player (player_id, team_id, jersey_number, position) VALUES ($1, $2, $3, $4) RETURNING " + rosterCols,
		"roster_update": "UPDATE team_player SET jersey_number = $3, position = $4, updated_at = now() WHERE player_id = $1 AND team_id = $2 RETURNING " + rosterCols,
		"roster_remove": "DELETE FROM team_player WHERE player_id = $1 AND team_id = $2 RETURNING " + rosterCols,
		"roster_list_by_team": `
			SELECT tp.id, tp.player_id, tp.team_id, tp.jersey_number, tp.position, tp.created_at, tp.updated_at,
			       p.first_name, p.last_name, p.date_of_birth,
			       concat(p.first_name, ' ', p.last_name) AS full_name
			FROM team_player tp
			JOIN player p ON tp.player_id = p.id
			WHERE tp.team_id = $1
			ORDER BY tp.jersey_number ASC`,
		"roster_list_by_player": `
			SELECT tp.id, tp.player_id, tp.team_id, tp.jersey_number, tp.position, tp.created_at, tp.updated_at,
			       t.city, t.name AS team_name, t.level, t.season, t.sport
			FROM team_player tp
			JOIN team t ON tp.team_id = t.id
			WHERE tp.player_id = $1
			ORDER BY t.name ASC`,
		"roster_list_all": `
			SELECT tp.id, tp.player_id, tp.team_id, tp.jersey_number, tp.position, tp.created_at, tp.updated_at,
			       concat(p.first_name, ' ', p.last_name) AS player_name,
			       t.name AS team_name, t.city
			FROM team_player tp
			JOIN player p ON tp.player_id = p.id
			JOIN team t ON tp.team_id = t.id
			ORDER BY t.name ASC, tp.jersey_number ASC`,

		// Lookup registries. The *_ensure variants insert-or-return so game
		// writes can reference opponents and game types by name. DO UPDATE
		// (rather than DO NOTHING plus a follow-up SELECT) so the statement
		// returns a row even when it loses a race to a concurrent insert of
		// the same name.
		"opponent_create":  "INSERT INTO opponent (name) VALUES ($1) RETURNING id, name, created_at",
		"opponent_list":    "SELECT id, name, created_at FROM opponent ORDER BY name ASC",
		"opponent_ensure":  "INSERT INTO opponent (name) VALUES ($1) ON CONFLICT (name) DO UPDATE SET name = EXCLUDED.name RETURNING id, name, created_at",
		"game_type_create": "INSERT INTO game_type (name) VALUES ($1) RETURNING id, name, created_at",
		"game_type_list":   "SELECT id, name, created_at FROM game_type ORDER BY name ASC",
		"game_type_ensure": "INSERT INTO game_type (name) VALUES ($1) ON CONFLICT (name) DO UPDATE SET name = EXCLUDED.name RETURNING id, name, created_at",

		// Games
		"game_create": "INSERT INTO game (team_id, game_date, location, game_type_id, opponent_id, goals_for, goals_against, period1_minutes, period2_minutes, period3_minutes, overtime_minutes) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11) RETURNING " + gameCols,
		"game_update": "UPDATE game SET team_id = $2, game_date = $3, location = $4, game_type_id = $5, opponent_id = $6, goals_for = $7, goals_against = $8, period1_minutes = $9, period2_minutes = $10, period3_minutes = $11, overtime_minutes = $12, updated_at = now() WHERE id = $1 RETURNING " + gameCols,
		"game_delete": "DELETE FROM game WHERE id = $1 RETURNING " + gameCols,
		"game_get": `
			SELECT g.id, g.team_id, g.game_date, g.location, g.game_type_id, g.opponent_id,
			       g.goals_for, g.goals_against,
			       g.period1_minutes, g.period2_minutes, g.period3_minutes, g.overtime_minutes,
			       g.created_at, g.updated_at,
			       gt.name AS game_type_name, o.name AS opponent_name
			FROM game g
			JOIN game_type gt ON g.game_type_id = gt.id
			JOIN opponent o ON g.opponent_id = o.id
			WHERE g.id = $1`,
		"game_list": `
			SELECT g.id, g.team_id, g.game_date, g.location, g.game_type_id, g.opponent_id,
			       g.goals_for, g.goals_against,
			       g.period1_minutes, g.period2_minutes, g.period3_minutes, g.overtime_minutes,
			       g.created_at, g.updated_at,
			       gt.name AS game_type_name, o.name AS opponent_name
			FROM game g
			JOIN game_type gt ON g.game_type_id = gt.id
			JOIN opponent o ON g.opponent_id = o.id
			ORDER BY g.game_date DESC, g.id DESC`,
		"game_list_by_team": `
			SELECT g.id, g.team_id, g.game_date, g.location, g.game_type_id, g.opponent_id,
			       g.goals_for, g.goals_against,
			       g.period1_minutes, g.period2_minutes, g.period3_minutes, g.overtime_minutes,
			       g.created_at, g.updated_at,
			       gt.name AS game_type_name, o.name AS opponent_name
			FROM game g
			JOIN game_type gt ON g.game_type_id = gt.id
			JOIN opponent o ON g.opponent_id = o.id
			WHERE g.team_id = $1
			ORDER BY g.game_date DESC, g.id DESC`,

		// Game dressings. Jersey and position are resolved from the owning
		// team's roster when the player is on it.
		"dressing_create": "INSERT INTO game_player (game_id, player_id, is_starting_goalie) VALUES ($1, $2, $3) RETURNING " + dressingCols,
		"dressing_delete": "DELETE FROM game_player WHERE game_id = $1 AND player_id = $2 RETURNING " + dressingCols,
		"dressing_list_by_game": `
			SELECT gp.id, gp.game_id, gp.player_id, gp.is_starting_goalie, gp.created_at,
			       p.first_name, p.last_name,
			       concat(p.first_name, ' ', p.last_name) AS full_name,
			       tp.jersey_number, tp.position
			FROM game_player gp
			JOIN player p ON gp.player_id = p.id
			JOIN game g ON gp.game_id = g.id
			LEFT JOIN team_player tp ON tp.player_id = gp.player_id AND tp.team_id = g.team_id
			WHERE gp.game_id = $1
			ORDER BY tp.jersey_number ASC NULLS LAST, p.last_name ASC`,

		// Starting goalie. Clear and set always run inside one transaction;
		// the partial unique index on game_player backstops the invariant.
		"goalie_clear": "UPDATE game_player SET is_starting_goalie = FALSE WHERE game_id = $1 AND is_starting_goalie",
		"goalie_set":   "UPDATE game_player SET is_starting_goalie = TRUE WHERE game_id = $1 AND player_id = $2",
		"goalie_get": `
			SELECT gp.id, gp.game_id, gp.player_id, gp.is_starting_goalie, gp.created_at,
			       p.first_name, p.last_name,
			       concat(p.first_name, ' ', p.last_name) AS full_name,
			       tp.jersey_number, tp.position
			FROM game_player gp
			JOIN player p ON gp.player_id = p.id
			JOIN game g ON gp.game_id = g.id
			LEFT JOIN team_player tp ON tp.player_id = gp.player_id AND tp.team_id = g.team_id
			WHERE gp.game_id = $1 AND gp.is_starting_goalie`,

		// Player season stats
		"stat_create": "INSERT INTO player_stat (player_id, season, games_played, goals, assists, yellow_cards, red_cards, minutes_played) VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING " + statCols,
		"stat_update": "UPDATE player_stat SET games_played = $3, goals = $4, assists = $5, yellow_cards = $6, red_cards = $7, minutes_played = $8, updated_at = now() WHERE player_id = $1 AND season = $2 RETURNING " + statCols,
		"stat_list": `
			SELECT ps.id, ps.player_id, ps.season, ps.games_played, ps.goals, ps.assists,
			       ps.yellow_cards, ps.red_cards, ps.minutes_played, ps.created_at, ps.updated_at,
			       concat(p.first_name, ' ', p.last_name) AS player_name
			FROM player_stat ps
			JOIN player p ON ps.player_id = p.id
			ORDER BY ps.created_at DESC`,
		"stat_list_by_player": "SELECT " + statCols + " FROM player_stat WHERE player_id = $1 ORDER BY season DESC",
		"stat_top_scorers": `
			SELECT ps.player_id,
			       concat(p.first_name, ' ', p.last_name) AS player_name,
			       ps.season, ps.goals, ps.assists, ps.games_played
			FROM player_stat ps
			JOIN player p ON ps.player_id = p.id
			WHERE ps.season = $1
			ORDER BY ps.goals DESC, ps.assists DESC
			LIMIT $2`,
	}

	for name, sql := range stmts {
		if _, err := conn.Prepare(ctx, name, sql); err != nil {
			return fmt.Errorf("prepare %q: %w", name, err)
		}
	}
	return nil
}
