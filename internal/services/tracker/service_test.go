package tracker

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/KirkDiggler/assabeel/internal/common/clock/mocks"
	uuidMocks "github.com/KirkDiggler/assabeel/internal/common/uuid/mocks"
	"github.com/KirkDiggler/assabeel/internal/models"
	projectRepo "github.com/KirkDiggler/assabeel/internal/repositories/project"
	projectMocks "github.com/KirkDiggler/assabeel/internal/repositories/project/mocks"
	sessionRepo "github.com/KirkDiggler/assabeel/internal/repositories/session"
	sessionMocks "github.com/KirkDiggler/assabeel/internal/repositories/session/mocks"
	userRepo "github.com/KirkDiggler/assabeel/internal/repositories/user"
	userMocks "github.com/KirkDiggler/assabeel/internal/repositories/user/mocks"
	"github.com/KirkDiggler/assabeel/internal/services/validate"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type TrackerServiceTestSuite struct {
	suite.Suite
	mockCtrl        *gomock.Controller
	mockUserRepo    *userMocks.MockRepository
	mockSessionRepo *sessionMocks.MockRepository
	mockProjectRepo *projectMocks.MockRepository
	mockClock       *mocks.MockClock
	mockUUID        *uuidMocks.MockUUID
	service         Service
	ctx             context.Context
	events          []*models.Event

	// Test data
	testTime      time.Time
	testUserID    string
	testProjectID string
	testSubID     string
	testSessionID string

	// Reusable test fixtures
	expectedUser       *models.User
	expectedProject    *models.Project
	expectedSubProject *models.SubProject
	expectedSession    *models.Session
}

func (s *TrackerServiceTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockUserRepo = userMocks.NewMockRepository(s.mockCtrl)
	s.mockSessionRepo = sessionMocks.NewMockRepository(s.mockCtrl)
	s.mockProjectRepo = projectMocks.NewMockRepository(s.mockCtrl)
	s.mockClock = mocks.NewMockClock(s.mockCtrl)
	s.mockUUID = uuidMocks.NewMockUUID(s.mockCtrl)
	s.ctx = context.Background()
	s.events = nil

	s.testTime = time.Date(2025, 4, 19, 23, 30, 0, 0, time.UTC)
	s.testUserID = "user-1"
	s.testProjectID = "project-1"
	s.testSubID = "sub-1"
	s.testSessionID = "session-1"

	s.mockClock.EXPECT().Now().Return(s.testTime).AnyTimes()

	s.expectedUser = &models.User{
		ID:          s.testUserID,
		Name:        "Maryam",
		DailyTarget: models.DefaultDailyTarget,
		CreatedAt:   s.testTime,
	}
	s.expectedProject = &models.Project{
		ID:     s.testProjectID,
		UserID: s.testUserID,
		Name:   "Thesis",
		Status: models.ProjectStatusActive,
	}
	s.expectedSubProject = &models.SubProject{
		ID:        s.testSubID,
		ProjectID: s.testProjectID,
		Name:      "Chapter 1",
		Status:    models.ProjectStatusActive,
	}
	s.expectedSession = &models.Session{
		ID:        s.testSessionID,
		UserID:    s.testUserID,
		ProjectID: s.testProjectID,
		Date:      "2025-04-18",
		Hours:     1,
		Minutes:   15,
	}

	svc, err := New(&Config{
		UserRepo:      s.mockUserRepo,
		SessionRepo:   s.mockSessionRepo,
		ProjectRepo:   s.mockProjectRepo,
		Clock:         s.mockClock,
		UUIDGenerator: s.mockUUID,
		OnChange: func(ctx context.Context, event *models.Event) {
			s.events = append(s.events, event)
		},
	})
	s.Require().NoError(err)
	s.service = svc
}

func (s *TrackerServiceTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestTrackerServiceSuite(t *testing.T) {
	suite.Run(t, new(TrackerServiceTestSuite))
}

func (s *TrackerServiceTestSuite) TestNewValidatesConfig() {
	_, err := New(nil)
	s.ErrorIs(err, ErrNilConfig)

	_, err = New(&Config{})
	s.ErrorIs(err, ErrNilUserRepo)

	_, err = New(&Config{UserRepo: s.mockUserRepo, SessionRepo: s.mockSessionRepo, ProjectRepo: s.mockProjectRepo})
	s.ErrorIs(err, ErrNilClock)
}

func (s *TrackerServiceTestSuite) TestRegisterUserCreates() {
	s.mockUserRepo.EXPECT().
		GetUser(s.ctx, &userRepo.GetUserInput{UserID: s.testUserID}).
		Return(nil, userRepo.ErrUserNotFound)
	s.mockUserRepo.EXPECT().
		SaveUser(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input *userRepo.SaveUserInput) error {
			s.Equal(models.DefaultDailyTarget, input.User.DailyTarget)
			s.Equal("Maryam", input.User.Name)
			return nil
		})

	out, err := s.service.RegisterUser(s.ctx, &RegisterUserInput{UserID: s.testUserID, Name: "Maryam"})
	s.Require().NoError(err)
	s.True(out.Created)
	s.Require().Len(s.events, 1)
	s.Equal(models.EventUserRegistered, s.events[0].Type)
}

func (s *TrackerServiceTestSuite) TestRegisterUserExistingIsIdempotent() {
	s.mockUserRepo.EXPECT().
		GetUser(s.ctx, gomock.Any()).
		Return(s.expectedUser, nil)

	out, err := s.service.RegisterUser(s.ctx, &RegisterUserInput{UserID: s.testUserID, Name: "Maryam"})
	s.Require().NoError(err)
	s.False(out.Created)
	s.Empty(s.events)
}

func (s *TrackerServiceTestSuite) TestRegisterUserRenames() {
	s.mockUserRepo.EXPECT().GetUser(s.ctx, gomock.Any()).Return(s.expectedUser, nil)
	s.mockUserRepo.EXPECT().SaveUser(s.ctx, gomock.Any()).Return(nil)

	out, err := s.service.RegisterUser(s.ctx, &RegisterUserInput{UserID: s.testUserID, Name: "Maryam A."})
	s.Require().NoError(err)
	s.Equal("Maryam A.", out.User.Name)
	s.Equal(models.DefaultDailyTarget, out.User.DailyTarget)
}

func (s *TrackerServiceTestSuite) TestRegisterUserValidation() {
	_, err := s.service.RegisterUser(s.ctx, &RegisterUserInput{UserID: " "})
	s.True(validate.IsValidationError(err))
}

func (s *TrackerServiceTestSuite) TestSetDailyTarget() {
	s.mockUserRepo.EXPECT().GetUser(s.ctx, gomock.Any()).Return(s.expectedUser, nil)
	s.mockUserRepo.EXPECT().SaveUser(s.ctx, gomock.Any()).Return(nil)

	out, err := s.service.SetDailyTarget(s.ctx, &SetDailyTargetInput{UserID: s.testUserID, Minutes: 300})
	s.Require().NoError(err)
	s.Equal(300, out.User.DailyTarget)

	_, err = s.service.SetDailyTarget(s.ctx, &SetDailyTargetInput{UserID: s.testUserID, Minutes: 0})
	s.True(validate.IsValidationError(err))
}

func (s *TrackerServiceTestSuite) TestLogSessionDefaultsToToday() {
	s.mockUserRepo.EXPECT().GetUser(s.ctx, gomock.Any()).Return(s.expectedUser, nil)
	s.mockUUID.EXPECT().NewUUID().Return(s.testSessionID)
	s.mockSessionRepo.EXPECT().
		SaveSession(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input *sessionRepo.SaveSessionInput) error {
			s.Equal("2025-04-19", input.Session.Date)
			s.Equal(90, input.Session.TotalMinutes())
			s.True(input.Session.IsOrphaned())
			return nil
		})

	out, err := s.service.LogSession(s.ctx, &LogSessionInput{
		UserID:  s.testUserID,
		Hours:   1,
		Minutes: 30,
	})
	s.Require().NoError(err)
	s.Equal(s.testSessionID, out.Session.ID)
	s.Require().Len(s.events, 1)
	s.Equal(models.EventSessionLogged, s.events[0].Type)
}

func (s *TrackerServiceTestSuite) TestLogSessionUsesLocationForToday() {
	riyadh := time.FixedZone("AST", 3*60*60)
	svc, err := New(&Config{
		Location:      riyadh,
		UserRepo:      s.mockUserRepo,
		SessionRepo:   s.mockSessionRepo,
		ProjectRepo:   s.mockProjectRepo,
		Clock:         s.mockClock,
		UUIDGenerator: s.mockUUID,
	})
	s.Require().NoError(err)

	s.mockUserRepo.EXPECT().GetUser(s.ctx, gomock.Any()).Return(s.expectedUser, nil)
	s.mockUUID.EXPECT().NewUUID().Return(s.testSessionID)
	s.mockSessionRepo.EXPECT().SaveSession(s.ctx, gomock.Any()).Return(nil)

	// 23:30 UTC is already the next day at UTC+3
	out, err := svc.LogSession(s.ctx, &LogSessionInput{UserID: s.testUserID, Minutes: 10})
	s.Require().NoError(err)
	s.Equal("2025-04-20", out.Session.Date)
}

func (s *TrackerServiceTestSuite) TestLogSessionClampsNegativeDuration() {
	s.mockUserRepo.EXPECT().GetUser(s.ctx, gomock.Any()).Return(s.expectedUser, nil)
	s.mockUUID.EXPECT().NewUUID().Return(s.testSessionID)
	s.mockSessionRepo.EXPECT().SaveSession(s.ctx, gomock.Any()).Return(nil)

	out, err := s.service.LogSession(s.ctx, &LogSessionInput{
		UserID:  s.testUserID,
		Date:    "2025-04-18",
		Hours:   -2,
		Minutes: 45,
	})
	s.Require().NoError(err)
	s.Equal(45, out.Session.TotalMinutes())
}

func (s *TrackerServiceTestSuite) TestLogSessionRejectsOversizedDuration() {
	_, err := s.service.LogSession(s.ctx, &LogSessionInput{
		UserID: s.testUserID,
		Date:   "2025-04-18",
		Hours:  25,
	})
	s.Require().Error(err)
	s.True(validate.IsValidationError(err))

	_, err = s.service.LogSession(s.ctx, &LogSessionInput{
		UserID:  s.testUserID,
		Date:    "2025-04-18",
		Minutes: 1441,
	})
	s.Require().Error(err)
	s.True(validate.IsValidationError(err))

	_, err = s.service.LogDurationSeconds(s.ctx, &LogDurationSecondsInput{
		UserID:  s.testUserID,
		Seconds: 86401,
	})
	s.Require().Error(err)
	s.True(validate.IsValidationError(err))
}

func (s *TrackerServiceTestSuite) TestLogSessionOnSubProjectResolvesParent() {
	s.mockUserRepo.EXPECT().GetUser(s.ctx, gomock.Any()).Return(s.expectedUser, nil)
	s.mockProjectRepo.EXPECT().
		GetSubProject(s.ctx, &projectRepo.GetSubProjectInput{SubProjectID: s.testSubID}).
		Return(s.expectedSubProject, nil)
	s.mockProjectRepo.EXPECT().
		GetProject(s.ctx, &projectRepo.GetProjectInput{ProjectID: s.testProjectID}).
		Return(s.expectedProject, nil)
	s.mockUUID.EXPECT().NewUUID().Return(s.testSessionID)
	s.mockSessionRepo.EXPECT().SaveSession(s.ctx, gomock.Any()).Return(nil)

	out, err := s.service.LogSession(s.ctx, &LogSessionInput{
		UserID:       s.testUserID,
		SubProjectID: s.testSubID,
		Date:         "2025-04-18",
		Hours:        2,
	})
	s.Require().NoError(err)
	s.Equal(s.testProjectID, out.Session.ProjectID)
	s.Equal(s.testSubID, out.Session.SubProjectID)
}

func (s *TrackerServiceTestSuite) TestLogSessionProjectDeletedBeforeWrite() {
	s.mockUserRepo.EXPECT().GetUser(s.ctx, gomock.Any()).Return(s.expectedUser, nil)
	s.mockProjectRepo.EXPECT().GetProject(s.ctx, gomock.Any()).Return(s.expectedProject, nil)
	s.mockUUID.EXPECT().NewUUID().Return(s.testSessionID)
	s.mockSessionRepo.EXPECT().SaveSession(s.ctx, gomock.Any()).Return(sessionRepo.ErrProjectNotFound)

	out, err := s.service.LogSession(s.ctx, &LogSessionInput{
		UserID:    s.testUserID,
		ProjectID: s.testProjectID,
		Date:      "2025-04-18",
		Hours:     1,
	})
	s.ErrorIs(err, ErrProjectNotFound)
	s.Nil(out)
	s.Empty(s.events)
}

func (s *TrackerServiceTestSuite) TestLogSessionRejectsForeignProject() {
	s.mockUserRepo.EXPECT().GetUser(s.ctx, gomock.Any()).Return(s.expectedUser, nil)
	s.mockProjectRepo.EXPECT().
		GetProject(s.ctx, gomock.Any()).
		Return(&models.Project{ID: s.testProjectID, UserID: "someone-else"}, nil)

	_, err := s.service.LogSession(s.ctx, &LogSessionInput{
		UserID:    s.testUserID,
		ProjectID: s.testProjectID,
		Date:      "2025-04-18",
	})
	s.ErrorIs(err, ErrProjectNotFound)
}

func (s *TrackerServiceTestSuite) TestLogSessionRejectsMismatchedSubProject() {
	s.mockUserRepo.EXPECT().GetUser(s.ctx, gomock.Any()).Return(s.expectedUser, nil)
	s.mockProjectRepo.EXPECT().GetSubProject(s.ctx, gomock.Any()).Return(s.expectedSubProject, nil)

	_, err := s.service.LogSession(s.ctx, &LogSessionInput{
		UserID:       s.testUserID,
		ProjectID:    "project-2",
		SubProjectID: s.testSubID,
		Date:         "2025-04-18",
	})
	s.True(validate.IsValidationError(err))
}

func (s *TrackerServiceTestSuite) TestLogSessionInvalidDate() {
	_, err := s.service.LogSession(s.ctx, &LogSessionInput{
		UserID: s.testUserID,
		Date:   "18/04/2025",
	})
	s.True(validate.IsValidationError(err))
}

func (s *TrackerServiceTestSuite) TestLogSessionUnknownUser() {
	s.mockUserRepo.EXPECT().GetUser(s.ctx, gomock.Any()).Return(nil, userRepo.ErrUserNotFound)

	_, err := s.service.LogSession(s.ctx, &LogSessionInput{UserID: s.testUserID})
	s.ErrorIs(err, ErrUserNotFound)
}

func (s *TrackerServiceTestSuite) TestLogDurationSecondsFloorsToMinutes() {
	s.mockUserRepo.EXPECT().GetUser(s.ctx, gomock.Any()).Return(s.expectedUser, nil)
	s.mockUUID.EXPECT().NewUUID().Return(s.testSessionID)
	s.mockSessionRepo.EXPECT().SaveSession(s.ctx, gomock.Any()).Return(nil)

	out, err := s.service.LogDurationSeconds(s.ctx, &LogDurationSecondsInput{
		UserID:  s.testUserID,
		Date:    "2025-04-18",
		Seconds: 3*3600 + 25*60 + 59,
	})
	s.Require().NoError(err)
	s.Equal(models.DurationComponent(3), out.Session.Hours)
	s.Equal(models.DurationComponent(25), out.Session.Minutes)
}

func (s *TrackerServiceTestSuite) TestEditSession() {
	session := *s.expectedSession
	s.mockSessionRepo.EXPECT().
		GetSession(s.ctx, &sessionRepo.GetSessionInput{SessionID: s.testSessionID}).
		Return(&session, nil)
	s.mockSessionRepo.EXPECT().SaveSession(s.ctx, gomock.Any()).Return(nil)

	minutes := models.DurationComponent(50)
	notes := "revised"
	unlink := ""
	out, err := s.service.EditSession(s.ctx, &EditSessionInput{
		SessionID: s.testSessionID,
		UserID:    s.testUserID,
		ProjectID: &unlink,
		Minutes:   &minutes,
		Notes:     &notes,
	})
	s.Require().NoError(err)
	s.Equal(110, out.Session.TotalMinutes())
	s.Equal("revised", out.Session.Notes)
	s.True(out.Session.IsOrphaned())
	s.Require().Len(s.events, 1)
	s.Equal(models.EventSessionEdited, s.events[0].Type)
}

func (s *TrackerServiceTestSuite) TestEditSessionOfOtherUser() {
	s.mockSessionRepo.EXPECT().GetSession(s.ctx, gomock.Any()).Return(s.expectedSession, nil)

	notes := "x"
	_, err := s.service.EditSession(s.ctx, &EditSessionInput{
		SessionID: s.testSessionID,
		UserID:    "intruder",
		Notes:     &notes,
	})
	s.ErrorIs(err, ErrSessionNotFound)
}

func (s *TrackerServiceTestSuite) TestEditSessionInvalidTime() {
	bad := "25:99"
	_, err := s.service.EditSession(s.ctx, &EditSessionInput{
		SessionID: s.testSessionID,
		UserID:    s.testUserID,
		Time:      &bad,
	})
	s.True(validate.IsValidationError(err))
}

func (s *TrackerServiceTestSuite) TestDeleteSession() {
	s.mockSessionRepo.EXPECT().GetSession(s.ctx, gomock.Any()).Return(s.expectedSession, nil)
	s.mockSessionRepo.EXPECT().
		DeleteSession(s.ctx, &sessionRepo.DeleteSessionInput{SessionID: s.testSessionID}).
		Return(nil)

	out, err := s.service.DeleteSession(s.ctx, &DeleteSessionInput{SessionID: s.testSessionID, UserID: s.testUserID})
	s.Require().NoError(err)
	s.True(out.Success)
}

func (s *TrackerServiceTestSuite) TestDeleteSessionNotFound() {
	s.mockSessionRepo.EXPECT().GetSession(s.ctx, gomock.Any()).Return(nil, sessionRepo.ErrSessionNotFound)

	_, err := s.service.DeleteSession(s.ctx, &DeleteSessionInput{SessionID: "missing", UserID: s.testUserID})
	s.ErrorIs(err, ErrSessionNotFound)
}

func (s *TrackerServiceTestSuite) TestListSessionsFiltersRange() {
	s.mockSessionRepo.EXPECT().
		GetSessionsForUser(s.ctx, &sessionRepo.GetSessionsForUserInput{UserID: s.testUserID}).
		Return(&sessionRepo.GetSessionsForUserOutput{Sessions: []*models.Session{
			{ID: "a", Date: "2025-04-01"},
			{ID: "b", Date: "2025-04-10"},
			{ID: "c", Date: "2025-04-20"},
		}}, nil)

	out, err := s.service.ListSessions(s.ctx, &ListSessionsInput{
		UserID: s.testUserID,
		From:   "2025-04-05",
		To:     "2025-04-10",
	})
	s.Require().NoError(err)
	s.Require().Len(out.Sessions, 1)
	s.Equal("b", out.Sessions[0].ID)
}

func (s *TrackerServiceTestSuite) TestCreateProject() {
	s.mockUserRepo.EXPECT().GetUser(s.ctx, gomock.Any()).Return(s.expectedUser, nil)
	s.mockUUID.EXPECT().NewUUID().Return(s.testProjectID)
	s.mockProjectRepo.EXPECT().CreateProject(s.ctx, gomock.Any()).Return(nil)

	out, err := s.service.CreateProject(s.ctx, &CreateProjectInput{UserID: s.testUserID, Name: "Thesis"})
	s.Require().NoError(err)
	s.Equal(models.ProjectStatusActive, out.Project.Status)
	s.Equal(s.testUserID, out.Project.UserID)
}

func (s *TrackerServiceTestSuite) TestAddSubProject() {
	s.mockProjectRepo.EXPECT().GetProject(s.ctx, gomock.Any()).Return(s.expectedProject, nil)
	s.mockUUID.EXPECT().NewUUID().Return(s.testSubID)
	s.mockProjectRepo.EXPECT().
		AddSubProject(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input *projectRepo.AddSubProjectInput) error {
			s.Equal(s.testProjectID, input.SubProject.ProjectID)
			return nil
		})

	out, err := s.service.AddSubProject(s.ctx, &AddSubProjectInput{
		UserID:    s.testUserID,
		ProjectID: s.testProjectID,
		Name:      "Chapter 1",
	})
	s.Require().NoError(err)
	s.Equal(s.testSubID, out.SubProject.ID)
}

func (s *TrackerServiceTestSuite) TestAddSubProjectParentVanished() {
	s.mockProjectRepo.EXPECT().GetProject(s.ctx, gomock.Any()).Return(s.expectedProject, nil)
	s.mockUUID.EXPECT().NewUUID().Return(s.testSubID)
	s.mockProjectRepo.EXPECT().AddSubProject(s.ctx, gomock.Any()).Return(projectRepo.ErrProjectNotFound)

	_, err := s.service.AddSubProject(s.ctx, &AddSubProjectInput{
		UserID:    s.testUserID,
		ProjectID: s.testProjectID,
		Name:      "Chapter 1",
	})
	s.ErrorIs(err, ErrProjectNotFound)
}

func (s *TrackerServiceTestSuite) TestSetProjectStatus() {
	s.mockProjectRepo.EXPECT().GetProject(s.ctx, gomock.Any()).Return(s.expectedProject, nil)
	s.mockProjectRepo.EXPECT().
		UpdateProject(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input *projectRepo.UpdateProjectInput) error {
			s.Equal(s.testProjectID, input.ProjectID)
			// the stored copy was renamed since the ownership check
			stored := &models.Project{ID: s.testProjectID, UserID: s.testUserID, Name: "Renamed", Status: models.ProjectStatusActive}
			s.Require().NoError(input.Mutate(stored))
			s.Equal(models.ProjectStatusCompleted, stored.Status)
			s.Equal("Renamed", stored.Name)
			return nil
		})

	out, err := s.service.SetProjectStatus(s.ctx, &SetProjectStatusInput{
		UserID:    s.testUserID,
		ProjectID: s.testProjectID,
		Status:    models.ProjectStatusCompleted,
	})
	s.Require().NoError(err)
	s.Equal(models.ProjectStatusCompleted, out.Status)
}

func (s *TrackerServiceTestSuite) TestSetProjectStatusProjectDeletedMeanwhile() {
	s.mockProjectRepo.EXPECT().GetProject(s.ctx, gomock.Any()).Return(s.expectedProject, nil)
	s.mockProjectRepo.EXPECT().UpdateProject(s.ctx, gomock.Any()).Return(projectRepo.ErrProjectNotFound)

	_, err := s.service.SetProjectStatus(s.ctx, &SetProjectStatusInput{
		UserID:    s.testUserID,
		ProjectID: s.testProjectID,
		Status:    models.ProjectStatusCompleted,
	})
	s.ErrorIs(err, ErrProjectNotFound)
	s.Empty(s.events)
}

func (s *TrackerServiceTestSuite) TestSetSubProjectStatus() {
	s.mockProjectRepo.EXPECT().GetProject(s.ctx, gomock.Any()).Return(s.expectedProject, nil)
	s.mockProjectRepo.EXPECT().
		UpdateSubProject(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input *projectRepo.UpdateSubProjectInput) error {
			s.Equal(s.testSubID, input.SubProjectID)
			stored := &models.SubProject{ID: s.testSubID, ProjectID: s.testProjectID, Status: models.ProjectStatusActive}
			s.Require().NoError(input.Mutate(stored))
			s.Equal(models.ProjectStatusDeferred, stored.Status)

			// a sub-project of another project is refused
			foreign := &models.SubProject{ID: s.testSubID, ProjectID: "other"}
			s.ErrorIs(input.Mutate(foreign), ErrSubProjectNotFound)
			return nil
		})

	_, err := s.service.SetProjectStatus(s.ctx, &SetProjectStatusInput{
		UserID:       s.testUserID,
		ProjectID:    s.testProjectID,
		SubProjectID: s.testSubID,
		Status:       models.ProjectStatusDeferred,
	})
	s.Require().NoError(err)
}

func (s *TrackerServiceTestSuite) TestSetSubProjectStatusWrongParent() {
	s.mockProjectRepo.EXPECT().GetProject(s.ctx, gomock.Any()).Return(s.expectedProject, nil)
	s.mockProjectRepo.EXPECT().
		UpdateSubProject(s.ctx, gomock.Any()).
		Return(fmt.Errorf("failed to update subproject:sp: %w", ErrSubProjectNotFound))

	_, err := s.service.SetProjectStatus(s.ctx, &SetProjectStatusInput{
		UserID:       s.testUserID,
		ProjectID:    s.testProjectID,
		SubProjectID: s.testSubID,
		Status:       models.ProjectStatusDeferred,
	})
	s.Equal(ErrSubProjectNotFound, err)
}

func (s *TrackerServiceTestSuite) TestSetProjectStatusInvalid() {
	_, err := s.service.SetProjectStatus(s.ctx, &SetProjectStatusInput{
		UserID:    s.testUserID,
		ProjectID: s.testProjectID,
		Status:    "abandoned",
	})
	s.True(validate.IsValidationError(err))
}

func (s *TrackerServiceTestSuite) TestListProjects() {
	s.mockProjectRepo.EXPECT().
		ListProjectsForUser(s.ctx, gomock.Any()).
		Return(&projectRepo.ListProjectsForUserOutput{Projects: []*models.Project{s.expectedProject}}, nil)
	s.mockProjectRepo.EXPECT().
		ListSubProjects(s.ctx, &projectRepo.ListSubProjectsInput{ProjectID: s.testProjectID}).
		Return(&projectRepo.ListSubProjectsOutput{SubProjects: []*models.SubProject{s.expectedSubProject}}, nil)

	out, err := s.service.ListProjects(s.ctx, &ListProjectsInput{UserID: s.testUserID})
	s.Require().NoError(err)
	s.Require().Len(out.Projects, 1)
	s.Len(out.Projects[0].SubProjects, 1)
}

func (s *TrackerServiceTestSuite) TestDeleteProject() {
	s.mockProjectRepo.EXPECT().GetProject(s.ctx, gomock.Any()).Return(s.expectedProject, nil)
	s.mockProjectRepo.EXPECT().
		DeleteProject(s.ctx, &projectRepo.DeleteProjectInput{ProjectID: s.testProjectID}).
		Return(&projectRepo.DeleteProjectOutput{
			OwnerID:              s.testUserID,
			DeletedSubProjectIDs: []string{s.testSubID},
			OrphanedSessionIDs:   []string{s.testSessionID},
		}, nil)

	out, err := s.service.DeleteProject(s.ctx, &DeleteProjectInput{UserID: s.testUserID, ProjectID: s.testProjectID})
	s.Require().NoError(err)
	s.Equal([]string{s.testSubID}, out.DeletedSubProjectIDs)
	s.Equal([]string{s.testSessionID}, out.OrphanedSessionIDs)
	s.Require().Len(s.events, 1)
	s.Equal(models.EventProjectDeleted, s.events[0].Type)
}

func (s *TrackerServiceTestSuite) TestDeleteProjectStoreFailure() {
	storeErr := errors.New("connection reset")
	s.mockProjectRepo.EXPECT().GetProject(s.ctx, gomock.Any()).Return(s.expectedProject, nil)
	s.mockProjectRepo.EXPECT().DeleteProject(s.ctx, gomock.Any()).Return(nil, storeErr)

	_, err := s.service.DeleteProject(s.ctx, &DeleteProjectInput{UserID: s.testUserID, ProjectID: s.testProjectID})
	s.ErrorIs(err, storeErr)
	s.Empty(s.events)
}
