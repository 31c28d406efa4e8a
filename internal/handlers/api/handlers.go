package api

import (
	"github.com/KirkDiggler/assabeel/internal/models"
	"github.com/KirkDiggler/assabeel/internal/services/camp"
	"github.com/KirkDiggler/assabeel/internal/services/season"
	"github.com/KirkDiggler/assabeel/internal/services/stats"
	"github.com/KirkDiggler/assabeel/internal/services/tracker"
	"github.com/gofiber/fiber/v2"
)

type registerUserRequest struct {
	Name string `json:"name"`
}

type setDailyTargetRequest struct {
	Minutes int `json:"minutes"`
}

// logSessionRequest accepts either hours/minutes or a raw seconds count
type logSessionRequest struct {
	ProjectID    string                   `json:"projectId"`
	SubProjectID string                   `json:"subProjectId"`
	Date         string                   `json:"date"`
	Hours        models.DurationComponent `json:"hours"`
	Minutes      models.DurationComponent `json:"minutes"`
	Seconds      *int                     `json:"seconds"`
	Notes        string                   `json:"notes"`
	Time         string                   `json:"time"`
}

type nameRequest struct {
	Name string `json:"name"`
}

type setProjectStatusRequest struct {
	Status       models.ProjectStatus `json:"status"`
	SubProjectID string               `json:"subProjectId"`
}

func parseBody(c *fiber.Ctx, out interface{}) error {
	if err := c.BodyParser(out); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	return nil
}

func (s *Server) registerUser(c *fiber.Ctx) error {
	var req registerUserRequest
	if len(c.Body()) > 0 {
		if err := parseBody(c, &req); err != nil {
			return err
		}
	}
	if req.Name == "" {
		req.Name, _ = c.Locals(LocalName).(string)
	}

	out, err := s.tracker.RegisterUser(c.UserContext(), &tracker.RegisterUserInput{
		UserID: userIDFrom(c),
		Name:   req.Name,
	})
	if err != nil {
		return err
	}
	status := fiber.StatusOK
	if out.Created {
		status = fiber.StatusCreated
	}
	return c.Status(status).JSON(out)
}

func (s *Server) setDailyTarget(c *fiber.Ctx) error {
	var req setDailyTargetRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	out, err := s.tracker.SetDailyTarget(c.UserContext(), &tracker.SetDailyTargetInput{
		UserID:  userIDFrom(c),
		Minutes: req.Minutes,
	})
	if err != nil {
		return err
	}
	return c.JSON(out)
}

func (s *Server) getUserStats(c *fiber.Ctx) error {
	out, err := s.stats.GetUserStats(c.UserContext(), &stats.GetUserStatsInput{UserID: userIDFrom(c)})
	if err != nil {
		return err
	}
	return c.JSON(out)
}

func (s *Server) getCampStatus(c *fiber.Ctx) error {
	out, err := s.camp.GetUserStatus(c.UserContext(), &camp.GetUserStatusInput{UserID: userIDFrom(c)})
	if err != nil {
		return err
	}
	return c.JSON(out)
}

func (s *Server) listSessions(c *fiber.Ctx) error {
	out, err := s.tracker.ListSessions(c.UserContext(), &tracker.ListSessionsInput{
		UserID: userIDFrom(c),
		From:   c.Query("from"),
		To:     c.Query("to"),
	})
	if err != nil {
		return err
	}
	return c.JSON(out)
}

func (s *Server) logSession(c *fiber.Ctx) error {
	var req logSessionRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}

	var (
		out *tracker.LogSessionOutput
		err error
	)
	if req.Seconds != nil {
		out, err = s.tracker.LogDurationSeconds(c.UserContext(), &tracker.LogDurationSecondsInput{
			UserID:       userIDFrom(c),
			ProjectID:    req.ProjectID,
			SubProjectID: req.SubProjectID,
			Date:         req.Date,
			Seconds:      *req.Seconds,
			Notes:        req.Notes,
			Time:         req.Time,
		})
	} else {
		out, err = s.tracker.LogSession(c.UserContext(), &tracker.LogSessionInput{
			UserID:       userIDFrom(c),
			ProjectID:    req.ProjectID,
			SubProjectID: req.SubProjectID,
			Date:         req.Date,
			Hours:        req.Hours,
			Minutes:      req.Minutes,
			Notes:        req.Notes,
			Time:         req.Time,
		})
	}
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

func (s *Server) editSession(c *fiber.Ctx) error {
	var input tracker.EditSessionInput
	if err := parseBody(c, &input); err != nil {
		return err
	}
	input.SessionID = c.Params("id")
	input.UserID = userIDFrom(c)

	out, err := s.tracker.EditSession(c.UserContext(), &input)
	if err != nil {
		return err
	}
	return c.JSON(out)
}

func (s *Server) deleteSession(c *fiber.Ctx) error {
	if _, err := s.tracker.DeleteSession(c.UserContext(), &tracker.DeleteSessionInput{
		SessionID: c.Params("id"),
		UserID:    userIDFrom(c),
	}); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (s *Server) listProjects(c *fiber.Ctx) error {
	out, err := s.tracker.ListProjects(c.UserContext(), &tracker.ListProjectsInput{UserID: userIDFrom(c)})
	if err != nil {
		return err
	}
	return c.JSON(out)
}

func (s *Server) createProject(c *fiber.Ctx) error {
	var req nameRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	out, err := s.tracker.CreateProject(c.UserContext(), &tracker.CreateProjectInput{
		UserID: userIDFrom(c),
		Name:   req.Name,
	})
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

func (s *Server) addSubProject(c *fiber.Ctx) error {
	var req nameRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	out, err := s.tracker.AddSubProject(c.UserContext(), &tracker.AddSubProjectInput{
		UserID:    userIDFrom(c),
		ProjectID: c.Params("id"),
		Name:      req.Name,
	})
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

func (s *Server) setProjectStatus(c *fiber.Ctx) error {
	var req setProjectStatusRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	out, err := s.tracker.SetProjectStatus(c.UserContext(), &tracker.SetProjectStatusInput{
		UserID:       userIDFrom(c),
		ProjectID:    c.Params("id"),
		SubProjectID: req.SubProjectID,
		Status:       req.Status,
	})
	if err != nil {
		return err
	}
	return c.JSON(out)
}

func (s *Server) deleteProject(c *fiber.Ctx) error {
	out, err := s.tracker.DeleteProject(c.UserContext(), &tracker.DeleteProjectInput{
		UserID:    userIDFrom(c),
		ProjectID: c.Params("id"),
	})
	if err != nil {
		return err
	}
	return c.JSON(out)
}

func (s *Server) getLeaderboard(c *fiber.Ctx) error {
	out, err := s.stats.GetLeaderboard(c.UserContext(), &stats.GetLeaderboardInput{
		Window: stats.Window(c.Query("window", string(stats.WindowAll))),
	})
	if err != nil {
		return err
	}
	return c.JSON(out)
}

func (s *Server) evaluateCamp(c *fiber.Ctx) error {
	out, err := s.camp.EvaluateCamp(c.UserContext(), &camp.EvaluateCampInput{StartDate: c.Query("start")})
	if err != nil {
		return err
	}
	return c.JSON(out)
}

func (s *Server) listSeasons(c *fiber.Ctx) error {
	isAdmin, _ := c.Locals(LocalIsAdmin).(bool)
	out, err := s.seasons.ListSeasons(c.UserContext(), &season.ListSeasonsInput{
		IncludeDrafts: isAdmin && c.QueryBool("drafts"),
	})
	if err != nil {
		return err
	}
	return c.JSON(out)
}

func (s *Server) currentSeason(c *fiber.Ctx) error {
	out, err := s.seasons.CurrentSeason(c.UserContext(), &season.CurrentSeasonInput{})
	if err != nil {
		return err
	}
	return c.JSON(out)
}

func (s *Server) createSeason(c *fiber.Ctx) error {
	var input season.CreateSeasonInput
	if err := parseBody(c, &input); err != nil {
		return err
	}
	out, err := s.seasons.CreateSeason(c.UserContext(), &input)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

func (s *Server) archiveSeasons(c *fiber.Ctx) error {
	out, err := s.seasons.ArchiveFinishedSeasons(c.UserContext(), &season.ArchiveFinishedSeasonsInput{})
	if err != nil {
		return err
	}
	return c.JSON(out)
}

func (s *Server) deleteSeason(c *fiber.Ctx) error {
	if _, err := s.seasons.DeleteSeason(c.UserContext(), &season.DeleteSeasonInput{SeasonID: c.Params("id")}); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}
