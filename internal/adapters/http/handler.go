package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/melih/projectdock/internal/core/domain"
	"github.com/melih/projectdock/internal/core/ports"
)

// BuildHandler exposes the build service over HTTP.
type BuildHandler struct {
	service ports.BuildService
}

// NewBuildHandler creates the handler for the build routes.
func NewBuildHandler(service ports.BuildService) *BuildHandler {
	return &BuildHandler{service: service}
}

// BuildRequest is the POST /builds payload. Exactly one of work_dir and
// project_uri locates the project source.
type BuildRequest struct {
	WorkDir        string         `json:"work_dir"`
	ProjectURI     string         `json:"project_uri"`
	ProjectVersion string         `json:"project_version"`
	Project        domain.Project `json:"project"`
	RepositoryURI  string         `json:"repository_uri"`
	RunID          string         `json:"run_id"`
	TrackingURI    string         `json:"tracking_uri"`
}

// BuildResponse is the POST /builds reply: the build result plus the run
// configuration for the requested tracking backend.
type BuildResponse struct {
	ImageURI  string            `json:"image_uri"`
	ImageID   string            `json:"image_id"`
	Warnings  []string          `json:"warnings,omitempty"`
	RunConfig *domain.RunConfig `json:"run_config,omitempty"`
}

// Build runs a full containerization: engine check, image build and
// tracking wiring.
func (h *BuildHandler) Build(c *fiber.Ctx) error {
	var req BuildRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}
	if req.WorkDir == "" && req.ProjectURI == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "work_dir or project_uri is required",
		})
	}

	if err := h.service.CheckEngine(c.Context()); err != nil {
		return errorJSON(c, err)
	}

	var runConfig *domain.RunConfig
	if req.TrackingURI != "" {
		cfg, err := h.service.TrackingRunConfig(req.TrackingURI)
		if err != nil {
			return errorJSON(c, err)
		}
		runConfig = cfg
	}

	result, err := h.service.BuildImage(c.Context(), domain.BuildRequest{
		WorkDir:        req.WorkDir,
		ProjectURI:     req.ProjectURI,
		ProjectVersion: req.ProjectVersion,
		Project:        req.Project,
		RepositoryURI:  req.RepositoryURI,
		RunID:          req.RunID,
	})
	if err != nil {
		return errorJSON(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(BuildResponse{
		ImageURI:  result.ImageURI,
		ImageID:   result.ImageID,
		Warnings:  result.Warnings,
		RunConfig: runConfig,
	})
}

// RunConfig translates a tracking URI without building anything.
func (h *BuildHandler) RunConfig(c *fiber.Ctx) error {
	trackingURI := c.Query("tracking_uri")
	if trackingURI == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "tracking_uri query parameter is required",
		})
	}
	cfg, err := h.service.TrackingRunConfig(trackingURI)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(cfg)
}

// Ping reports whether the container engine is usable.
func (h *BuildHandler) Ping(c *fiber.Ctx) error {
	if err := h.service.CheckEngine(c.Context()); err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(fiber.Map{"status": "ok"})
}

// errorJSON maps execution errors onto HTTP statuses: missing project
// metadata or an unfetchable project reference is the client's fault, an
// unreachable engine is a dependency failure, the rest are internal.
func errorJSON(c *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError
	body := fiber.Map{"error": err.Error()}
	var ee *domain.ExecutionError
	if errors.As(err, &ee) {
		body["code"] = ee.Code
		switch ee.Code {
		case domain.CodeInvalidProject, domain.CodeFetch:
			status = fiber.StatusBadRequest
		case domain.CodeEngineUnavailable:
			status = fiber.StatusServiceUnavailable
		}
	}
	return c.Status(status).JSON(body)
}
