package handler

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"

	"github.com/FoyBuors17/stats-tracker/internal/store"
)

// Function-field fakes for every store interface. A test sets only the
// methods its endpoint calls; anything else panics with a nil deref, which
// is exactly the signal we want.

type fakeTeamStore struct {
	createFn func(ctx context.Context, city, name string, level *string, season, sport string) (*store.Team, error)
	listFn   func(ctx context.Context) ([]store.Team, error)
	getFn    func(ctx context.Context, id int) (*store.Team, error)
	updateFn func(ctx context.Context, id int, city, name string, level *string, season, sport string) (*store.Team, error)
	deleteFn func(ctx context.Context, id int) (*store.Team, error)
}

func (f *fakeTeamStore) Create(ctx context.Context, city, name string, level *string, season, sport string) (*store.Team, error) {
	return f.createFn(ctx, city, name, level, season, sport)
}
func (f *fakeTeamStore) List(ctx context.Context) ([]store.Team, error) { return f.listFn(ctx) }
func (f *fakeTeamStore) Get(ctx context.Context, id int) (*store.Team, error) {
	return f.getFn(ctx, id)
}
func (f *fakeTeamStore) Update(ctx context.Context, id int, city, name string, level *string, season, sport string) (*store.Team, error) {
	return f.updateFn(ctx, id, city, name, level, season, sport)
}
func (f *fakeTeamStore) Delete(ctx context.Context, id int) (*store.Team, error) {
	return f.deleteFn(ctx, id)
}

type fakePlayerStore struct {
	createFn func(ctx context.Context, firstName, lastName string, dateOfBirth time.Time) (*store.Player, error)
	listFn   func(ctx context.Context) ([]store.Player, error)
	getFn    func(ctx context.Context, id int) (*store.Player, error)
	updateFn func(ctx context.Context, id int, firstName, lastName string, dateOfBirth time.Time) (*store.Player, error)
	deleteFn func(ctx context.Context, id int) (*store.Player, error)
}

func (f *fakePlayerStore) Create(ctx context.Context, firstName, lastName string, dateOfBirth time.Time) (*store.Player, error) {
	return f.createFn(ctx, firstName, lastName, dateOfBirth)
}
func (f *fakePlayerStore) List(ctx context.Context) ([]store.Player, error) { return f.listFn(ctx) }
func (f *fakePlayerStore) Get(ctx context.Context, id int) (*store.Player, error) {
	return f.getFn(ctx, id)
}
func (f *fakePlayerStore) Update(ctx context.Context, id int, firstName, lastName string, dateOfBirth time.Time) (*store.Player, error) {
	return f.updateFn(ctx, id, firstName, lastName, dateOfBirth)
}
func (f *fakePlayerStore) Delete(ctx context.Context, id int) (*store.Player, error) {
	return f.deleteFn(ctx, id)
}

type fakeRosterStore struct {
	assignFn       func(ctx context.Context, playerID, teamID, jerseyNumber int, position string) (*store.RosterAssignment, error)
	updateFn       func(ctx context.Context, playerID, teamID, jerseyNumber int, position string) (*store.RosterAssignment, error)
	removeFn       func(ctx context.Context, playerID, teamID int) (*store.RosterAssignment, error)
	listByTeamFn   func(ctx context.Context, teamID int) ([]store.TeamRosterEntry, error)
	listByPlayerFn func(ctx context.Context, playerID int) ([]store.PlayerTeamEntry, error)
	listAllFn      func(ctx context.Context) ([]store.AssignmentListEntry, error)
}

func (f *fakeRosterStore) Assign(ctx context.Context, playerID, teamID, jerseyNumber int, position string) (*store.RosterAssignment, error) {
	return f.assignFn(ctx, playerID, teamID, jerseyNumber, position)
}
func (f *fakeRosterStore) UpdateAssignment(ctx context.Context, playerID, teamID, jerseyNumber int, position string) (*store.RosterAssignment, error) {
	return f.updateFn(ctx, playerID, teamID, jerseyNumber, position)
}
func (f *fakeRosterStore) Remove(ctx context.Context, playerID, teamID int) (*store.RosterAssignment, error) {
	return f.removeFn(ctx, playerID, teamID)
}
func (f *fakeRosterStore) ListByTeam(ctx context.Context, teamID int) ([]store.TeamRosterEntry, error) {
	return f.listByTeamFn(ctx, teamID)
}
func (f *fakeRosterStore) ListByPlayer(ctx context.Context, playerID int) ([]store.PlayerTeamEntry, error) {
	return f.listByPlayerFn(ctx, playerID)
}
func (f *fakeRosterStore) ListAll(ctx context.Context) ([]store.AssignmentListEntry, error) {
	return f.listAllFn(ctx)
}

type fakeGameStore struct {
	createFn     func(ctx context.Context, p store.GameParams) (*store.Game, error)
	updateFn     func(ctx context.Context, id int, p store.GameParams) (*store.Game, error)
	deleteFn     func(ctx context.Context, id int) (*store.Game, error)
	getFn        func(ctx context.Context, id int) (*store.GameListEntry, error)
	listFn       func(ctx context.Context) ([]store.GameListEntry, error)
	listByTeamFn func(ctx context.Context, teamID int) ([]store.GameListEntry, error)
}

func (f *fakeGameStore) Create(ctx context.Context, p store.GameParams) (*store.Game, error) {
	return f.createFn(ctx, p)
}
func (f *fakeGameStore) Update(ctx context.Context, id int, p store.GameParams) (*store.Game, error) {
	return f.updateFn(ctx, id, p)
}
func (f *fakeGameStore) Delete(ctx context.Context, id int) (*store.Game, error) {
	return f.deleteFn(ctx, id)
}
func (f *fakeGameStore) Get(ctx context.Context, id int) (*store.GameListEntry, error) {
	return f.getFn(ctx, id)
}
func (f *fakeGameStore) List(ctx context.Context) ([]store.GameListEntry, error) {
	return f.listFn(ctx)
}
func (f *fakeGameStore) ListByTeam(ctx context.Context, teamID int) ([]store.GameListEntry, error) {
	return f.listByTeamFn(ctx, teamID)
}

type fakeDressingStore struct {
	dressFn      func(ctx context.Context, gameID, playerID int, isStartingGoalie bool) (*store.GameDressing, error)
	undressFn    func(ctx context.Context, gameID, playerID int) (*store.GameDressing, error)
	listByGameFn func(ctx context.Context, gameID int) ([]store.DressedPlayer, error)
	setGoalieFn  func(ctx context.Context, gameID, playerID int) (*store.DressedPlayer, error)
	clearFn      func(ctx context.Context, gameID int) (int, error)
	getGoalieFn  func(ctx context.Context, gameID int) (*store.DressedPlayer, error)
}

func (f *fakeDressingStore) Dress(ctx context.Context, gameID, playerID int, isStartingGoalie bool) (*store.GameDressing, error) {
	return f.dressFn(ctx, gameID, playerID, isStartingGoalie)
}
func (f *fakeDressingStore) Undress(ctx context.Context, gameID, playerID int) (*store.GameDressing, error) {
	return f.undressFn(ctx, gameID, playerID)
}
func (f *fakeDressingStore) ListByGame(ctx context.Context, gameID int) ([]store.DressedPlayer, error) {
	return f.listByGameFn(ctx, gameID)
}
func (f *fakeDressingStore) SetStartingGoalie(ctx context.Context, gameID, playerID int) (*store.DressedPlayer, error) {
	return f.setGoalieFn(ctx, gameID, playerID)
}
func (f *fakeDressingStore) ClearStartingGoalie(ctx context.Context, gameID int) (int, error) {
	return f.clearFn(ctx, gameID)
}
func (f *fakeDressingStore) GetStartingGoalie(ctx context.Context, gameID int) (*store.DressedPlayer, error) {
	return f.getGoalieFn(ctx, gameID)
}

type fakeLookupStore struct {
	createOpponentFn func(ctx context.Context, name string) (*store.Opponent, error)
	listOpponentsFn  func(ctx context.Context) ([]store.Opponent, error)
	createGameTypeFn func(ctx context.Context, name string) (*store.GameType, error)
	listGameTypesFn  func(ctx context.Context) ([]store.GameType, error)
}

func (f *fakeLookupStore) CreateOpponent(ctx context.Context, name string) (*store.Opponent, error) {
	return f.createOpponentFn(ctx, name)
}
func (f *fakeLookupStore) ListOpponents(ctx context.Context) ([]store.Opponent, error) {
	return f.listOpponentsFn(ctx)
}
func (f *fakeLookupStore) CreateGameType(ctx context.Context, name string) (*store.GameType, error) {
	return f.createGameTypeFn(ctx, name)
}
func (f *fakeLookupStore) ListGameTypes(ctx context.Context) ([]store.GameType, error) {
	return f.listGameTypesFn(ctx)
}

type fakeStatStore struct {
	createFn       func(ctx context.Context, playerID int, season string, c store.StatCounters) (*store.PlayerSeasonStat, error)
	updateFn       func(ctx context.Context, playerID int, season string, c store.StatCounters) (*store.PlayerSeasonStat, error)
	listFn         func(ctx context.Context) ([]store.StatListEntry, error)
	listByPlayerFn func(ctx context.Context, playerID int) ([]store.PlayerSeasonStat, error)
	topScorersFn   func(ctx context.Context, season string, limit int) ([]store.TopScorer, error)
}

func (f *fakeStatStore) Create(ctx context.Context, playerID int, season string, c store.StatCounters) (*store.PlayerSeasonStat, error) {
	return f.createFn(ctx, playerID, season, c)
}
func (f *fakeStatStore) Update(ctx context.Context, playerID int, season string, c store.StatCounters) (*store.PlayerSeasonStat, error) {
	return f.updateFn(ctx, playerID, season, c)
}
func (f *fakeStatStore) List(ctx context.Context) ([]store.StatListEntry, error) {
	return f.listFn(ctx)
}
func (f *fakeStatStore) ListByPlayer(ctx context.Context, playerID int) ([]store.PlayerSeasonStat, error) {
	return f.listByPlayerFn(ctx, playerID)
}
func (f *fakeStatStore) TopScorers(ctx context.Context, season string, limit int) ([]store.TopScorer, error) {
	return f.topScorersFn(ctx, season, limit)
}

type fakeHealthStore struct {
	healthFn func(ctx context.Context) error
	nowFn    func(ctx context.Context) (time.Time, error)
}

func (f *fakeHealthStore) HealthCheck(ctx context.Context) error      { return f.healthFn(ctx) }
func (f *fakeHealthStore) Now(ctx context.Context) (time.Time, error) { return f.nowFn(ctx) }

// --------------------------------------------------------------------------
// Helpers
// --------------------------------------------------------------------------

func newTestHandler(s Stores) *Handler {
	return NewFromStores(s, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

// request builds a request carrying the given chi URL params.
func request(method, target string, body string, params map[string]string) *http.Request {
	var rdr io.Reader
	if body != "" {
		rdr = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, rdr)
	if len(params) > 0 {
		rctx := chi.NewRouteContext()
		for k, v := range params {
			rctx.URLParams.Add(k, v)
		}
		req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
	}
	return req
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}
