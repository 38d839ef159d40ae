package handlers

import (
	"encoding/json"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"careerpilot/internal/models"
	"careerpilot/internal/repositories"
)

type RunHandler struct {
	runRepo repositories.RunRepository
}

func NewRunHandler(runRepo repositories.RunRepository) *RunHandler {
	return &RunHandler{runRepo: runRepo}
}

// HandleGetRun handles GET /runs/:id
func (h *RunHandler) HandleGetRun(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid run id format",
		})
	}

	run, err := h.runRepo.FindByID(id)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Generation run not found",
		})
	}

	resp := models.RunResponse{
		ID:           run.ID.String(),
		JobTitle:     run.JobTitle,
		Company:      run.Company,
		Status:       string(run.Status),
		ErrorMessage: run.ErrorMessage,
		DurationMS:   run.DurationMS,
	}
	if run.Response != "" {
		resp.Result = json.RawMessage(run.Response)
	}

	return c.Status(fiber.StatusOK).JSON(resp)
}
