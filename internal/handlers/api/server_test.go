package api

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/KirkDiggler/assabeel/internal/models"
	seasonRules "github.com/KirkDiggler/assabeel/internal/season"
	campMocks "github.com/KirkDiggler/assabeel/internal/services/camp/mocks"
	"github.com/KirkDiggler/assabeel/internal/services/season"
	seasonMocks "github.com/KirkDiggler/assabeel/internal/services/season/mocks"
	"github.com/KirkDiggler/assabeel/internal/services/stats"
	statsMocks "github.com/KirkDiggler/assabeel/internal/services/stats/mocks"
	"github.com/KirkDiggler/assabeel/internal/services/tracker"
	trackerMocks "github.com/KirkDiggler/assabeel/internal/services/tracker/mocks"
	"github.com/KirkDiggler/assabeel/internal/services/validate"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

const testSecret = "test-secret"

type ServerTestSuite struct {
	suite.Suite
	mockCtrl    *gomock.Controller
	mockTracker *trackerMocks.MockService
	mockStats   *statsMocks.MockService
	mockCamp    *campMocks.MockService
	mockSeasons *seasonMocks.MockService
	server      *Server
}

func (s *ServerTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockTracker = trackerMocks.NewMockService(s.mockCtrl)
	s.mockStats = statsMocks.NewMockService(s.mockCtrl)
	s.mockCamp = campMocks.NewMockService(s.mockCtrl)
	s.mockSeasons = seasonMocks.NewMockService(s.mockCtrl)

	server, err := New(&Config{
		JWTSecret:        testSecret,
		DisableAccessLog: true,
		TrackerService:   s.mockTracker,
		StatsService:     s.mockStats,
		CampService:      s.mockCamp,
		SeasonService:    s.mockSeasons,
	})
	s.Require().NoError(err)
	s.server = server
}

func (s *ServerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func (s *ServerTestSuite) token(userID string, admin bool) string {
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, &Claims{
		UserID:  userID,
		Name:    "Amina",
		IsAdmin: admin,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}).SignedString([]byte(testSecret))
	s.Require().NoError(err)
	return signed
}

func (s *ServerTestSuite) do(method, path, token, body string) (int, map[string]interface{}) {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := s.server.App.Test(req)
	s.Require().NoError(err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	s.Require().NoError(err)

	var decoded map[string]interface{}
	if len(raw) > 0 {
		s.Require().NoError(json.Unmarshal(raw, &decoded), string(raw))
	}
	return resp.StatusCode, decoded
}

func (s *ServerTestSuite) TestHealthNeedsNoToken() {
	status, body := s.do(http.MethodGet, "/health", "", "")

	s.Equal(http.StatusOK, status)
	s.Equal("ok", body["status"])
}

func (s *ServerTestSuite) TestMissingToken() {
	status, body := s.do(http.MethodGet, "/v1/me/stats", "", "")

	s.Equal(http.StatusUnauthorized, status)
	s.Equal("missing bearer token", body["error"])
}

func (s *ServerTestSuite) TestTokenWithWrongSecret() {
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, &Claims{UserID: "u1"}).SignedString([]byte("other"))
	s.Require().NoError(err)

	status, _ := s.do(http.MethodGet, "/v1/me/stats", signed, "")

	s.Equal(http.StatusUnauthorized, status)
}

func (s *ServerTestSuite) TestRegisterUsesTokenName() {
	s.mockTracker.EXPECT().
		RegisterUser(gomock.Any(), &tracker.RegisterUserInput{UserID: "u1", Name: "Amina"}).
		Return(&tracker.RegisterUserOutput{User: &models.User{ID: "u1", Name: "Amina", DailyTarget: 240}, Created: true}, nil)

	status, body := s.do(http.MethodPost, "/v1/me", s.token("u1", false), "")

	s.Equal(http.StatusCreated, status)
	s.Equal(true, body["created"])
}

func (s *ServerTestSuite) TestLogSessionTakesUserFromToken() {
	s.mockTracker.EXPECT().
		LogSession(gomock.Any(), &tracker.LogSessionInput{
			UserID:  "u1",
			Date:    "2025-02-10",
			Hours:   2,
			Minutes: 30,
			Notes:   "revision",
		}).
		Return(&tracker.LogSessionOutput{Session: &models.Session{
			ID: "s1", UserID: "u1", Date: "2025-02-10", Hours: 2, Minutes: 30, Notes: "revision",
		}}, nil)

	status, body := s.do(http.MethodPost, "/v1/sessions", s.token("u1", false),
		`{"userId":"someone-else","date":"2025-02-10","hours":"2","minutes":30,"notes":"revision"}`)

	s.Equal(http.StatusCreated, status)
	session := body["session"].(map[string]interface{})
	s.Equal("s1", session["id"])
}

func (s *ServerTestSuite) TestLogSessionInSeconds() {
	s.mockTracker.EXPECT().
		LogDurationSeconds(gomock.Any(), &tracker.LogDurationSecondsInput{UserID: "u1", Seconds: 5430}).
		Return(&tracker.LogSessionOutput{Session: &models.Session{ID: "s2", UserID: "u1", Hours: 1, Minutes: 30}}, nil)

	status, _ := s.do(http.MethodPost, "/v1/sessions", s.token("u1", false), `{"seconds":5430}`)

	s.Equal(http.StatusCreated, status)
}

func (s *ServerTestSuite) TestValidationErrorIsBadRequest() {
	s.mockTracker.EXPECT().
		LogSession(gomock.Any(), gomock.Any()).
		Return(nil, validate.NewValidationError(validate.ErrInvalidInput, validate.FieldError{
			Field: "date",
			Error: "date must be a YYYY-MM-DD date",
		}))

	status, body := s.do(http.MethodPost, "/v1/sessions", s.token("u1", false), `{"date":"10/02/2025"}`)

	s.Equal(http.StatusBadRequest, status)
	s.Equal("invalid input", body["error"])
	fields := body["fields"].([]interface{})
	s.Require().Len(fields, 1)
	s.Equal("date", fields[0].(map[string]interface{})["field"])
}

func (s *ServerTestSuite) TestMalformedBody() {
	status, _ := s.do(http.MethodPost, "/v1/projects", s.token("u1", false), `{"name":`)

	s.Equal(http.StatusBadRequest, status)
}

func (s *ServerTestSuite) TestDeleteSessionNotFound() {
	s.mockTracker.EXPECT().
		DeleteSession(gomock.Any(), &tracker.DeleteSessionInput{SessionID: "missing", UserID: "u1"}).
		Return(nil, tracker.ErrSessionNotFound)

	status, body := s.do(http.MethodDelete, "/v1/sessions/missing", s.token("u1", false), "")

	s.Equal(http.StatusNotFound, status)
	s.Equal("session not found", body["error"])
}

func (s *ServerTestSuite) TestDeleteSession() {
	s.mockTracker.EXPECT().
		DeleteSession(gomock.Any(), &tracker.DeleteSessionInput{SessionID: "s1", UserID: "u1"}).
		Return(&tracker.DeleteSessionOutput{Success: true}, nil)

	status, _ := s.do(http.MethodDelete, "/v1/sessions/s1", s.token("u1", false), "")

	s.Equal(http.StatusNoContent, status)
}

func (s *ServerTestSuite) TestDeleteProjectReportsCascade() {
	s.mockTracker.EXPECT().
		DeleteProject(gomock.Any(), &tracker.DeleteProjectInput{UserID: "u1", ProjectID: "p1"}).
		Return(&tracker.DeleteProjectOutput{
			DeletedSubProjectIDs: []string{"sp1"},
			OrphanedSessionIDs:   []string{"s1", "s2"},
		}, nil)

	status, body := s.do(http.MethodDelete, "/v1/projects/p1", s.token("u1", false), "")

	s.Equal(http.StatusOK, status)
	s.Len(body["orphanedSessionIDs"], 2)
}

func (s *ServerTestSuite) TestLeaderboardDefaultsToAllTime() {
	s.mockStats.EXPECT().
		GetLeaderboard(gomock.Any(), &stats.GetLeaderboardInput{Window: stats.WindowAll}).
		Return(&stats.GetLeaderboardOutput{Leaderboard: &models.Leaderboard{Window: "all"}}, nil)

	status, _ := s.do(http.MethodGet, "/v1/leaderboard", s.token("u1", false), "")

	s.Equal(http.StatusOK, status)
}

func (s *ServerTestSuite) TestCreateSeasonRequiresAdmin() {
	status, body := s.do(http.MethodPost, "/v1/seasons", s.token("u1", false),
		`{"name":"Ramadan","startDate":"2025-03-01","endDate":"2025-03-30"}`)

	s.Equal(http.StatusForbidden, status)
	s.Equal("admin only", body["error"])
}

func (s *ServerTestSuite) TestCreateSeasonConflict() {
	s.mockSeasons.EXPECT().
		CreateSeason(gomock.Any(), &season.CreateSeasonInput{
			Name:      "Ramadan",
			StartDate: "2025-03-01",
			EndDate:   "2025-03-30",
		}).
		Return(nil, &seasonRules.ConflictError{
			SeasonID:  "a",
			Name:      "Winter",
			StartDate: "2025-02-20",
			EndDate:   "2025-03-05",
		})

	status, body := s.do(http.MethodPost, "/v1/seasons", s.token("admin", true),
		`{"name":"Ramadan","startDate":"2025-03-01","endDate":"2025-03-30"}`)

	s.Equal(http.StatusConflict, status)
	conflict := body["conflict"].(map[string]interface{})
	s.Equal("Winter", conflict["name"])
	s.Equal("2025-03-05", conflict["endDate"])
}

func (s *ServerTestSuite) TestArchiveSeasons() {
	s.mockSeasons.EXPECT().
		ArchiveFinishedSeasons(gomock.Any(), gomock.Any()).
		Return(&season.ArchiveFinishedSeasonsOutput{
			ArchivedCount: 1,
			Outcomes: []*season.SeasonOutcome{
				{SeasonID: "a", Name: "Winter", Champion: "u1"},
			},
		}, nil)

	status, body := s.do(http.MethodPost, "/v1/seasons/archive", s.token("admin", true), "")

	s.Equal(http.StatusOK, status)
	s.Equal(float64(1), body["archivedCount"])
}

func (s *ServerTestSuite) TestUnknownErrorIsInternal() {
	s.mockStats.EXPECT().
		GetUserStats(gomock.Any(), &stats.GetUserStatsInput{UserID: "u1"}).
		Return(nil, errors.New("redis: connection refused"))

	status, body := s.do(http.MethodGet, "/v1/me/stats", s.token("u1", false), "")

	s.Equal(http.StatusInternalServerError, status)
	s.Equal("internal server error", body["error"])
}

func TestServerSuite(t *testing.T) {
	suite.Run(t, new(ServerTestSuite))
}
