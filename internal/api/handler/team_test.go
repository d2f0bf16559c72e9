package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/FoyBuors17/stats-tracker/internal/store"
)

func TestListTeams(t *testing.T) {
	h := newTestHandler(Stores{Teams: &fakeTeamStore{
		listFn: func(ctx context.Context) ([]store.Team, error) {
			return []store.Team{
				{ID: 1, City: "Calgary", Name: "Northern Lights", Season: "2023-24", Sport: "Hockey"},
				{ID: 2, City: "Red Deer", Name: "River Hawks", Season: "2023-24", Sport: "Hockey"},
			}, nil
		},
	}})
	rec := httptest.NewRecorder()

	h.ListTeams(rec, request(http.MethodGet, "/teams", "", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, float64(2), body["count"])
	assert.Len(t, body["teams"], 2)
}

func TestCreateTeam(t *testing.T) {
	var gotLevel *string
	h := newTestHandler(Stores{Teams: &fakeTeamStore{
		createFn: func(ctx context.Context, city, name string, level *string, season, sport string) (*store.Team, error) {
			gotLevel = level
			return &store.Team{ID: 7, City: city, Name: name, Level: level, Season: season, Sport: sport}, nil
		},
	}})
	rec := httptest.NewRecorder()

	body := `{"city":"Calgary","name":"Northern Lights","level":"AA","season":"2023-24","sport":"Hockey"}`
	h.CreateTeam(rec, request(http.MethodPost, "/teams", body, nil))

	assert.Equal(t, http.StatusCreated, rec.Code)
	resp := decodeBody(t, rec)
	assert.Equal(t, "Team created successfully", resp["message"])
	require.NotNil(t, gotLevel)
	assert.Equal(t, "AA", *gotLevel)
}

func TestCreateTeamNilLevel(t *testing.T) {
	h := newTestHandler(Stores{Teams: &fakeTeamStore{
		createFn: func(ctx context.Context, city, name string, level *string, season, sport string) (*store.Team, error) {
			assert.Nil(t, level)
			return &store.Team{ID: 8, City: city, Name: name, Season: season, Sport: sport}, nil
		},
	}})
	rec := httptest.NewRecorder()

	body := `{"city":"Red Deer","name":"River Hawks","season":"2023-24","sport":"Hockey"}`
	h.CreateTeam(rec, request(http.MethodPost, "/teams", body, nil))

	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestCreateTeamMissingFields(t *testing.T) {
	h := newTestHandler(Stores{})

	for _, body := range []string{
		`{}`,
		`{"city":"Calgary"}`,
		`{"city":"Calgary","name":"Northern Lights","season":"2023-24"}`,
	} {
		rec := httptest.NewRecorder()
		h.CreateTeam(rec, request(http.MethodPost, "/teams", body, nil))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "City, name, season, and sport are required", decodeBody(t, rec)["error"])
	}
}

func TestCreateTeamInvalidBody(t *testing.T) {
	h := newTestHandler(Stores{})
	rec := httptest.NewRecorder()

	h.CreateTeam(rec, request(http.MethodPost, "/teams", `{not json`, nil))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Invalid request body", decodeBody(t, rec)["error"])
}

func TestCreateTeamDuplicate(t *testing.T) {
	h := newTestHandler(Stores{Teams: &fakeTeamStore{
		createFn: func(ctx context.Context, city, name string, level *string, season, sport string) (*store.Team, error) {
			return nil, &store.ConflictError{Kind: store.ConflictTeamNameSeason, Message: "Team name already exists for this season"}
		},
	}})
	rec := httptest.NewRecorder()

	body := `{"city":"Calgary","name":"Northern Lights","season":"2023-24","sport":"Hockey"}`
	h.CreateTeam(rec, request(http.MethodPost, "/teams", body, nil))

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "Team name already exists for this season", decodeBody(t, rec)["error"])
}

func TestGetTeamNotFound(t *testing.T) {
	h := newTestHandler(Stores{Teams: &fakeTeamStore{
		getFn: func(ctx context.Context, id int) (*store.Team, error) {
			return nil, &store.NotFoundError{Entity: "Team"}
		},
	}})
	rec := httptest.NewRecorder()

	h.GetTeam(rec, request(http.MethodGet, "/teams/99", "", map[string]string{"id": "99"}))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Team not found", decodeBody(t, rec)["error"])
}

func TestGetTeamWithPlayers(t *testing.T) {
	h := newTestHandler(Stores{
		Teams: &fakeTeamStore{
			getFn: func(ctx context.Context, id int) (*store.Team, error) {
				return &store.Team{ID: id, City: "Calgary", Name: "Northern Lights"}, nil
			},
		},
		Roster: &fakeRosterStore{
			listByTeamFn: func(ctx context.Context, teamID int) ([]store.TeamRosterEntry, error) {
				return []store.TeamRosterEntry{
					{RosterAssignment: store.RosterAssignment{PlayerID: 5, TeamID: teamID, JerseyNumber: 9}, FullName: "Emma Tremblay"},
				}, nil
			},
		},
	})
	rec := httptest.NewRecorder()

	h.GetTeamWithPlayers(rec, request(http.MethodGet, "/teams/1/players", "", map[string]string{"id": "1"}))

	assert.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	team, ok := body["team"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "Northern Lights", team["name"])
	assert.Len(t, team["players"], 1)
}

func TestListTeamGamesValidatesTeam(t *testing.T) {
	h := newTestHandler(Stores{
		Teams: &fakeTeamStore{
			getFn: func(ctx context.Context, id int) (*store.Team, error) {
				return nil, &store.NotFoundError{Entity: "Team"}
			},
		},
		// Games is deliberately absent: the handler must not reach it.
	})
	rec := httptest.NewRecorder()

	h.ListTeamGames(rec, request(http.MethodGet, "/teams/42/games", "", map[string]string{"id": "42"}))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Team not found", decodeBody(t, rec)["error"])
}

func TestListTeamGames(t *testing.T) {
	h := newTestHandler(Stores{
		Teams: &fakeTeamStore{
			getFn: func(ctx context.Context, id int) (*store.Team, error) {
				return &store.Team{ID: id}, nil
			},
		},
		Games: &fakeGameStore{
			listByTeamFn: func(ctx context.Context, teamID int) ([]store.GameListEntry, error) {
				return []store.GameListEntry{
					{Game: store.Game{ID: 1, TeamID: teamID}, OpponentName: "Lethbridge Storm"},
					{Game: store.Game{ID: 2, TeamID: teamID}, OpponentName: "Medicine Hat Blaze"},
				}, nil
			},
		},
	})
	rec := httptest.NewRecorder()

	h.ListTeamGames(rec, request(http.MethodGet, "/teams/1/games", "", map[string]string{"id": "1"}))

	assert.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, float64(2), body["count"])
	assert.Len(t, body["games"], 2)
}

func TestDeleteTeam(t *testing.T) {
	h := newTestHandler(Stores{Teams: &fakeTeamStore{
		deleteFn: func(ctx context.Context, id int) (*store.Team, error) {
			return &store.Team{ID: id, Name: "Northern Lights"}, nil
		},
	}})
	rec := httptest.NewRecorder()

	h.DeleteTeam(rec, request(http.MethodDelete, "/teams/1", "", map[string]string{"id": "1"}))

	assert.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "Team deleted successfully", body["message"])
	assert.Contains(t, body, "team")
}
