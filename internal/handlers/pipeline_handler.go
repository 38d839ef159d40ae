package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"careerpilot/internal/models"
	"careerpilot/internal/repositories"
	"careerpilot/internal/services"
)

type PipelineHandler struct {
	pipeline   services.PipelineService
	resumeRepo repositories.ResumeRepository
	persister  services.RunPersister
	timeout    time.Duration
}

// NewPipelineHandler builds the pipeline handler. resumeRepo and persister
// may be nil when the service runs without a database.
func NewPipelineHandler(
	pipeline services.PipelineService,
	resumeRepo repositories.ResumeRepository,
	persister services.RunPersister,
	timeout time.Duration,
) *PipelineHandler {
	return &PipelineHandler{
		pipeline:   pipeline,
		resumeRepo: resumeRepo,
		persister:  persister,
		timeout:    timeout,
	}
}

// HandlePipeline handles POST /pipeline
func (h *PipelineHandler) HandlePipeline(c *fiber.Ctx) error {
	var req models.PipelineRequest

	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request payload",
		})
	}

	if req.JobTitle == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "job_title is required",
		})
	}
	if req.JDText == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "jd_text is required",
		})
	}

	company := req.Company
	if company == "" {
		company = "the company"
	}

	resumeText := req.ResumeText
	if resumeText == "" && req.ResumeDocumentID != "" {
		docID, err := uuid.Parse(req.ResumeDocumentID)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Invalid resume_document_id format",
			})
		}
		if h.resumeRepo == nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Resume uploads are not enabled",
			})
		}
		doc, err := h.resumeRepo.FindByID(docID)
		if err != nil {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Resume document not found",
			})
		}
		resumeText = doc.Text
	}

	ctx, cancel := context.WithTimeout(c.Context(), h.timeout)
	defer cancel()

	start := time.Now()
	response, err := h.pipeline.Run(ctx, req.JobTitle, company, req.JDText, resumeText)
	duration := time.Since(start)

	if err != nil {
		h.recordRun(&req, company, resumeText, models.RunFailed, nil, err, duration)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"detail": fmt.Sprintf("AI generation failed: %v", err),
		})
	}

	h.recordRun(&req, company, resumeText, models.RunCompleted, response, nil, duration)
	return c.Status(fiber.StatusOK).JSON(response)
}

func (h *PipelineHandler) recordRun(req *models.PipelineRequest, company, resumeText string, status models.RunStatus, response *models.PipelineResponse, runErr error, duration time.Duration) {
	if h.persister == nil {
		return
	}

	run := &models.GenerationRun{
		ID:           uuid.New(),
		JobTitle:     req.JobTitle,
		Company:      company,
		JDLength:     len(req.JDText),
		ResumeLength: len(resumeText),
		Status:       status,
		DurationMS:   duration.Milliseconds(),
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}
	if response != nil {
		if data, err := json.Marshal(response); err == nil {
			run.Response = string(data)
		}
	}
	if runErr != nil {
		msg := runErr.Error()
		run.ErrorMessage = &msg
	}

	h.persister.Enqueue(run)
}
