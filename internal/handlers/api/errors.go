package api

import (
	"errors"
	"log"

	seasonRules "github.com/KirkDiggler/assabeel/internal/season"
	"github.com/KirkDiggler/assabeel/internal/services/camp"
	"github.com/KirkDiggler/assabeel/internal/services/season"
	"github.com/KirkDiggler/assabeel/internal/services/stats"
	"github.com/KirkDiggler/assabeel/internal/services/tracker"
	"github.com/KirkDiggler/assabeel/internal/services/validate"
	"github.com/gofiber/fiber/v2"
)

// ErrorResponse is the body of every non-2xx reply
type ErrorResponse struct {
	Error  string                `json:"error"`
	Fields []validate.FieldError `json:"fields,omitempty"`

	// Conflict names the season a new season overlaps
	Conflict *seasonRules.ConflictError `json:"conflict,omitempty"`
}

var notFound = []error{
	tracker.ErrUserNotFound,
	tracker.ErrSessionNotFound,
	tracker.ErrProjectNotFound,
	tracker.ErrSubProjectNotFound,
	stats.ErrUserNotFound,
	camp.ErrUserNotInCamp,
	camp.ErrNoActiveCamp,
	season.ErrSeasonNotFound,
}

// errorHandler maps service errors onto status codes. Unrecognized errors are
// logged and answered with a bare 500.
func errorHandler(c *fiber.Ctx, err error) error {
	var (
		fiberErr   *fiber.Error
		validation *validate.ValidationError
		conflict   *seasonRules.ConflictError
	)

	switch {
	case errors.As(err, &fiberErr):
		return c.Status(fiberErr.Code).JSON(ErrorResponse{Error: fiberErr.Message})
	case errors.As(err, &validation):
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error:  validation.Err.Error(),
			Fields: validation.Fields,
		})
	case errors.As(err, &conflict):
		return c.Status(fiber.StatusConflict).JSON(ErrorResponse{
			Error:    conflict.Error(),
			Conflict: conflict,
		})
	case errors.Is(err, season.ErrSeasonArchived):
		return c.Status(fiber.StatusConflict).JSON(ErrorResponse{Error: err.Error()})
	}

	for _, target := range notFound {
		if errors.Is(err, target) {
			return c.Status(fiber.StatusNotFound).JSON(ErrorResponse{Error: err.Error()})
		}
	}

	log.Printf("Error handling %s %s: %v", c.Method(), c.Path(), err)
	return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{Error: "internal server error"})
}
