package handler

import (
	"context"
	"errors"
	"log/slog"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"

	"exampaper/internal/loader"
	"exampaper/internal/model"
	"exampaper/internal/service"
	"exampaper/internal/storage"
)

const healthTimeout = 2 * time.Second

type extractResponse struct {
	Filename string `json:"filename"`
	Pages    int    `json:"pages"`
	Text     string `json:"text"`
}

type extractObjectRequest struct {
	Key string `json:"key"`
}

type generateRequest struct {
	// Prompt is optional; when absent the default instruction is used.
	Prompt *string `json:"prompt"`
	Text   string  `json:"text"`
}

type renderRequest struct {
	Reply string `json:"reply"`
}

// HealthCheck reports whether the model service answers.
//
// @Summary Readiness probe
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Failure 503 {object} errorPayload
// @Router /health [get]
func HealthCheck(svc service.PaperService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.UserContext(), healthTimeout)
		defer cancel()
		if err := svc.Ping(ctx); err != nil {
			slog.WarnContext(ctx, "model service unreachable", "error", err)
			return writeError(c, fiber.StatusServiceUnavailable, "SERVICE_UNAVAILABLE", "model service unavailable")
		}
		return c.Status(fiber.StatusOK).JSON(fiber.Map{"status": "healthy"})
	}
}

// LivenessProbe always answers 200 while the process is up.
func LivenessProbe() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	}
}

// DefaultPrompt returns the pre-filled exam instruction.
//
// @Summary Default instruction
// @Tags paper
// @Produce json
// @Success 200 {object} map[string]string
// @Router /api/v1/prompt/default [get]
func DefaultPrompt(svc service.PaperService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"prompt": svc.DefaultInstruction()})
	}
}

// ExtractDocument accepts one PDF (multipart field "file") and returns its text.
//
// @Summary Extract text from a PDF
// @Tags paper
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "PDF document"
// @Success 200 {object} extractResponse
// @Failure 400 {object} errorPayload
// @Failure 415 {object} errorPayload
// @Failure 422 {object} errorPayload
// @Router /api/v1/extract [post]
func ExtractDocument(svc service.PaperService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		fh, err := c.FormFile("file")
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "FILE_REQUIRED", "file is required")
		}

		f, err := fh.Open()
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "FILE_OPEN_ERROR", "cannot open uploaded file")
		}
		defer f.Close()

		text, err := svc.Extract(c.UserContext(), model.UploadedDocument{
			Filename:    fh.Filename,
			ContentType: fh.Header.Get("Content-Type"),
			Size:        fh.Size,
			Body:        f,
		})
		if err != nil {
			return writeExtractError(c, err)
		}

		return c.JSON(extractResponse{Filename: fh.Filename, Pages: text.Pages, Text: text.Text})
	}
}

// ExtractObject loads a PDF from the configured bucket and returns its text.
//
// @Summary Extract text from a stored PDF
// @Tags paper
// @Accept json
// @Produce json
// @Param body body extractObjectRequest true "Object key"
// @Success 200 {object} extractResponse
// @Failure 400 {object} errorPayload
// @Failure 404 {object} errorPayload
// @Failure 503 {object} errorPayload
// @Router /api/v1/extract/object [post]
func ExtractObject(svc service.PaperService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req extractObjectRequest
		if err := c.BodyParser(&req); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid request body")
		}

		text, err := svc.ExtractObject(c.UserContext(), req.Key)
		switch {
		case err == nil:
			return c.JSON(extractResponse{Filename: req.Key, Pages: text.Pages, Text: text.Text})
		case errors.Is(err, service.ErrStorageDisabled):
			return writeError(c, fiber.StatusServiceUnavailable, "STORAGE_DISABLED", "object storage is not configured")
		case errors.Is(err, service.ErrKeyRequired):
			return writeError(c, fiber.StatusBadRequest, "KEY_REQUIRED", "key is required")
		case errors.Is(err, storage.ErrObjectNotFound):
			return writeError(c, fiber.StatusNotFound, "NOT_FOUND", "document not found")
		default:
			return writeExtractError(c, err)
		}
	}
}

// GeneratePaper sends instruction + text to the model. A degraded model outcome is still a 200:
// the sentinel text is the reply and "failure" says why.
//
// @Summary Ask the model for an exam paper
// @Tags paper
// @Accept json
// @Produce json
// @Param body body generateRequest true "Instruction and extracted text"
// @Success 200 {object} service.Generation
// @Failure 400 {object} errorPayload
// @Router /api/v1/generate [post]
func GeneratePaper(svc service.PaperService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req generateRequest
		if err := c.BodyParser(&req); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid request body")
		}

		instruction := svc.DefaultInstruction()
		if req.Prompt != nil {
			instruction = *req.Prompt
		}

		return c.JSON(svc.Generate(c.UserContext(), instruction, req.Text))
	}
}

// RenderPaper lays a reply out as a PDF and returns it as a download.
//
// @Summary Render the exam paper PDF
// @Tags paper
// @Accept json
// @Produce application/pdf
// @Param body body renderRequest true "Reply text"
// @Success 200 {file} file
// @Failure 400 {object} errorPayload
// @Router /api/v1/render [post]
func RenderPaper(svc service.PaperService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req renderRequest
		if err := c.BodyParser(&req); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid request body")
		}

		out, err := svc.Render(c.UserContext(), req.Reply)
		if err != nil {
			slog.ErrorContext(c.UserContext(), "render failed", "error", err)
			return writeError(c, fiber.StatusInternalServerError, "RENDER_FAILED", "could not render paper")
		}

		c.Attachment(out.Filename)
		c.Set(fiber.HeaderContentType, out.ContentType)
		c.Set("X-Page-Count", strconv.Itoa(out.Pages))
		return c.SendStream(out.Body, int(out.Body.Size()))
	}
}

func writeExtractError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, service.ErrUnsupportedMediaType):
		return writeError(c, fiber.StatusUnsupportedMediaType, "UNSUPPORTED_MEDIA_TYPE", "only PDF files are accepted")
	case errors.Is(err, loader.ErrReaderNil):
		return writeError(c, fiber.StatusBadRequest, "FILE_REQUIRED", "file is required")
	case errors.Is(err, loader.ErrInvalidDocument):
		slog.WarnContext(c.UserContext(), "extraction failed", "error", err)
		return writeError(c, fiber.StatusUnprocessableEntity, "EXTRACTION_FAILED", "could not read text from the document")
	default:
		slog.ErrorContext(c.UserContext(), "extract", "error", err)
		return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
	}
}
