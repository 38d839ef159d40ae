package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"careerpilot/internal/models"
)

// stubPipeline returns a canned response or error and records its inputs.
type stubPipeline struct {
	response *models.PipelineResponse
	err      error

	jobTitle   string
	company    string
	jdText     string
	resumeText string
}

func (s *stubPipeline) Run(ctx context.Context, jobTitle, company, jdText, resumeText string) (*models.PipelineResponse, error) {
	s.jobTitle = jobTitle
	s.company = company
	s.jdText = jdText
	s.resumeText = resumeText
	if s.err != nil {
		return nil, s.err
	}
	return s.response, nil
}

// stubPersister captures enqueued runs synchronously.
type stubPersister struct {
	runs []*models.GenerationRun
}

func (s *stubPersister) Start() {}
func (s *stubPersister) Stop()  {}
func (s *stubPersister) Enqueue(run *models.GenerationRun) {
	s.runs = append(s.runs, run)
}

// stubResumeRepo serves documents from a map keyed by ID.
type stubResumeRepo struct {
	docs map[uuid.UUID]*models.ResumeDocument
}

func (s *stubResumeRepo) Create(document *models.ResumeDocument) error { return nil }

func (s *stubResumeRepo) FindByID(id uuid.UUID) (*models.ResumeDocument, error) {
	doc, ok := s.docs[id]
	if !ok {
		return nil, fmt.Errorf("resume document not found")
	}
	return doc, nil
}

func newTestApp(handler *PipelineHandler) *fiber.App {
	app := fiber.New()
	app.Post("/api/v1/pipeline", handler.HandlePipeline)
	return app
}

func postPipeline(t *testing.T, app *fiber.App, body any) (*http.Response, map[string]any) {
	t.Helper()

	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req, err := http.NewRequest(http.MethodPost, "/api/v1/pipeline", bytes.NewReader(payload))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(raw, &decoded))
	return resp, decoded
}

func sampleResponse() *models.PipelineResponse {
	return &models.PipelineResponse{
		Scores: models.ScoreSet{Match: 64, Overall: 64},
	}
}

func TestHandlePipelineMissingFields(t *testing.T) {
	handler := NewPipelineHandler(&stubPipeline{response: sampleResponse()}, nil, nil, time.Minute)
	app := newTestApp(handler)

	resp, body := postPipeline(t, app, map[string]string{"jd_text": "jd"})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "job_title is required", body["error"])

	resp, body = postPipeline(t, app, map[string]string{"job_title": "SRE"})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "jd_text is required", body["error"])
}

func TestHandlePipelineInvalidPayload(t *testing.T) {
	handler := NewPipelineHandler(&stubPipeline{response: sampleResponse()}, nil, nil, time.Minute)
	app := newTestApp(handler)

	req, err := http.NewRequest(http.MethodPost, "/api/v1/pipeline", bytes.NewReader([]byte("{not json")))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestHandlePipelineSuccess(t *testing.T) {
	pipeline := &stubPipeline{response: sampleResponse()}
	persister := &stubPersister{}
	handler := NewPipelineHandler(pipeline, nil, persister, time.Minute)
	app := newTestApp(handler)

	resp, body := postPipeline(t, app, map[string]string{
		"job_title":   "Cloud Engineer",
		"company":     "Acme",
		"jd_text":     "AWS required",
		"resume_text": "Ada Lovelace",
	})

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	scores, ok := body["scores"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, 64.0, scores["overall"])

	assert.Equal(t, "Cloud Engineer", pipeline.jobTitle)
	assert.Equal(t, "Acme", pipeline.company)
	assert.Equal(t, "Ada Lovelace", pipeline.resumeText)

	require.Len(t, persister.runs, 1)
	run := persister.runs[0]
	assert.Equal(t, models.RunCompleted, run.Status)
	assert.Equal(t, "Cloud Engineer", run.JobTitle)
	assert.Equal(t, len("AWS required"), run.JDLength)
	assert.NotEmpty(t, run.Response)
}

func TestHandlePipelineCompanyDefault(t *testing.T) {
	pipeline := &stubPipeline{response: sampleResponse()}
	handler := NewPipelineHandler(pipeline, nil, nil, time.Minute)
	app := newTestApp(handler)

	resp, _ := postPipeline(t, app, map[string]string{
		"job_title": "SRE",
		"jd_text":   "jd",
	})

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "the company", pipeline.company)
}

func TestHandlePipelineFailure(t *testing.T) {
	pipeline := &stubPipeline{err: errors.New("model unavailable")}
	persister := &stubPersister{}
	handler := NewPipelineHandler(pipeline, nil, persister, time.Minute)
	app := newTestApp(handler)

	resp, body := postPipeline(t, app, map[string]string{
		"job_title": "SRE",
		"jd_text":   "jd",
	})

	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
	assert.Equal(t, "AI generation failed: model unavailable", body["detail"])

	require.Len(t, persister.runs, 1)
	run := persister.runs[0]
	assert.Equal(t, models.RunFailed, run.Status)
	require.NotNil(t, run.ErrorMessage)
	assert.Equal(t, "model unavailable", *run.ErrorMessage)
	assert.Empty(t, run.Response)
}

func TestHandlePipelineResumeDocumentLookup(t *testing.T) {
	docID := uuid.New()
	repo := &stubResumeRepo{docs: map[uuid.UUID]*models.ResumeDocument{
		docID: {ID: docID, Text: "resume from upload"},
	}}
	pipeline := &stubPipeline{response: sampleResponse()}
	handler := NewPipelineHandler(pipeline, repo, nil, time.Minute)
	app := newTestApp(handler)

	resp, _ := postPipeline(t, app, map[string]string{
		"job_title":          "SRE",
		"jd_text":            "jd",
		"resume_document_id": docID.String(),
	})

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "resume from upload", pipeline.resumeText)
}

func TestHandlePipelineResumeDocumentNotFound(t *testing.T) {
	repo := &stubResumeRepo{docs: map[uuid.UUID]*models.ResumeDocument{}}
	handler := NewPipelineHandler(&stubPipeline{response: sampleResponse()}, repo, nil, time.Minute)
	app := newTestApp(handler)

	resp, body := postPipeline(t, app, map[string]string{
		"job_title":          "SRE",
		"jd_text":            "jd",
		"resume_document_id": uuid.NewString(),
	})

	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "Resume document not found", body["error"])
}

func TestHandlePipelineInvalidResumeDocumentID(t *testing.T) {
	handler := NewPipelineHandler(&stubPipeline{response: sampleResponse()}, nil, nil, time.Minute)
	app := newTestApp(handler)

	resp, body := postPipeline(t, app, map[string]string{
		"job_title":          "SRE",
		"jd_text":            "jd",
		"resume_document_id": "not-a-uuid",
	})

	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Invalid resume_document_id format", body["error"])
}

func TestHandlePipelineInlineResumeSkipsLookup(t *testing.T) {
	docID := uuid.New()
	repo := &stubResumeRepo{docs: map[uuid.UUID]*models.ResumeDocument{
		docID: {ID: docID, Text: "stored text"},
	}}
	pipeline := &stubPipeline{response: sampleResponse()}
	handler := NewPipelineHandler(pipeline, repo, nil, time.Minute)
	app := newTestApp(handler)

	resp, _ := postPipeline(t, app, map[string]string{
		"job_title":          "SRE",
		"jd_text":            "jd",
		"resume_text":        "inline text",
		"resume_document_id": docID.String(),
	})

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "inline text", pipeline.resumeText)
}
