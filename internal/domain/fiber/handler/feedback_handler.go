package handler

import (
	"errors"
	"io"
	"strings"
	"time"

	"github.com/fadilmartias/cv-feedback/internal/dto"
	"github.com/fadilmartias/cv-feedback/internal/feedback"
	"github.com/fadilmartias/cv-feedback/internal/middleware"
	"github.com/fadilmartias/cv-feedback/internal/model"
	"github.com/fadilmartias/cv-feedback/internal/render"
	"github.com/fadilmartias/cv-feedback/internal/response"
	"github.com/fadilmartias/cv-feedback/internal/service"
	"github.com/fadilmartias/cv-feedback/internal/usecase"
	"github.com/fadilmartias/cv-feedback/internal/util"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

type FeedbackHandler struct {
	uc     *usecase.FeedbackUsecase
	logger zerolog.Logger
}

func NewFeedbackHandler(uc *usecase.FeedbackUsecase, logger zerolog.Logger) *FeedbackHandler {
	return &FeedbackHandler{
		uc:     uc,
		logger: logger.With().Str("component", "feedback_handler").Logger(),
	}
}

func (h *FeedbackHandler) RegisterRoutes(app *fiber.App) {
	api := app.Group("/api")
	api.Post("/reports", h.CreateReport)
	api.Post("/analyze", middleware.RateLimiter(10, time.Minute), h.Analyze)
	api.Get("/reports", h.ListReports)
	api.Get("/reports/:id", h.GetReport)
}

// CreateReport synthesizes a report from a posted scorer evaluation.
func (h *FeedbackHandler) CreateReport(c *fiber.Ctx) error {
	var req dto.EvaluationRequest
	if err := c.BodyParser(&req); err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "invalid evaluation payload",
		}, err)
	}

	report, err := h.uc.Synthesize(c.UserContext(), req)
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidEvaluation) {
			var details any
			if formErr := util.FormErrorFromValidation(err); formErr != nil {
				details = formErr.Errors
			}
			return util.ErrorResponse(c, util.ErrorResponseFormat{
				Code:    fiber.StatusUnprocessableEntity,
				Message: "invalid evaluation",
				Details: details,
			}, err)
		}
		h.logger.Error().Err(err).Msg("synthesize failed")
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Message: "failed to synthesize report",
		}, err)
	}

	data, err := toReportDTO(report)
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{Message: "failed to read report"}, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusCreated,
		Message: "Success create report",
		Data:    data,
	})
}

// Analyze scores an uploaded CV. Failures carry the failure report fragments in details.
func (h *FeedbackHandler) Analyze(c *fiber.Ctx) error {
	file, err := c.FormFile("file")
	if err != nil {
		return h.analyzeError(c, fiber.StatusBadRequest, "Nenhum arquivo enviado", err)
	}
	if file.Size > util.MaxUploadSize {
		return h.analyzeError(c, fiber.StatusRequestEntityTooLarge, "Arquivo muito grande. Máximo: 16MB", util.ErrFileTooLarge)
	}

	f, err := file.Open()
	if err != nil {
		return h.analyzeError(c, fiber.StatusBadRequest, "Não foi possível ler o arquivo", err)
	}
	defer f.Close()
	content, err := io.ReadAll(f)
	if err != nil {
		return h.analyzeError(c, fiber.StatusBadRequest, "Não foi possível ler o arquivo", err)
	}

	report, err := h.uc.Analyze(c.UserContext(), file.Filename, content)
	if err != nil {
		code, message := analyzeFailure(err)
		if code >= fiber.StatusInternalServerError {
			h.logger.Error().Err(err).Str("file", file.Filename).Msg("analyze failed")
		}
		return h.analyzeError(c, code, message, err, failureMessage(err, message))
	}

	data, err := toReportDTO(report)
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{Message: "failed to read report"}, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusCreated,
		Message: "Success analyze CV",
		Data:    data,
	})
}

func analyzeFailure(err error) (int, string) {
	switch {
	case errors.Is(err, util.ErrUnsupportedFileType):
		return fiber.StatusBadRequest, "Formato não suportado. Use PDF ou TXT"
	case errors.Is(err, util.ErrFileTooLarge):
		return fiber.StatusRequestEntityTooLarge, "Arquivo muito grande. Máximo: 16MB"
	case errors.Is(err, util.ErrContentTooShort), errors.Is(err, util.ErrNoText):
		return fiber.StatusUnprocessableEntity, "Texto insuficiente para uma avaliação significativa"
	case errors.Is(err, service.ErrScorerRejected), errors.Is(err, service.ErrScorerInvalidResponse), errors.Is(err, service.ErrCircuitOpen):
		return fiber.StatusBadGateway, "Serviço de pontuação indisponível ou com resposta inválida"
	default:
		return fiber.StatusInternalServerError, "Erro ao processar o arquivo"
	}
}

// failureMessage is the text shown in the failure report: the scorer's own
// explanation when it rejected the document, otherwise the mapped message.
func failureMessage(err error, mapped string) string {
	var rejected *service.RejectedError
	if errors.As(err, &rejected) && rejected.Message != "" {
		return rejected.Message
	}
	return mapped
}

// analyzeError answers with message; the failure report shows reportMessage when given.
func (h *FeedbackHandler) analyzeError(c *fiber.Ctx, code int, message string, err error, reportMessage ...string) error {
	shown := message
	if len(reportMessage) > 0 && reportMessage[0] != "" {
		shown = reportMessage[0]
	}
	return util.ErrorResponse(c, util.ErrorResponseFormat{
		Code:    code,
		Message: message,
		Details: fiber.Map{"fragments": feedback.FailureReport(shown)},
	}, err)
}

// GetReport answers with the stored report as json (default), html or text.
func (h *FeedbackHandler) GetReport(c *fiber.Ctx) error {
	id := c.Params("id")
	if _, err := uuid.Parse(id); err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "invalid report id",
		}, err)
	}

	format := strings.ToLower(c.Query("format", "json"))
	if format != "json" && format != "html" && format != "text" {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "format must be json, html or text",
		})
	}

	report, err := h.uc.GetReport(c.UserContext(), id)
	if errors.Is(err, usecase.ErrReportNotFound) {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusNotFound,
			Message: "report not found",
		})
	}
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{Message: "failed to get report"}, err)
	}

	frags, err := usecase.Fragments(report)
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{Message: "failed to read report"}, err)
	}

	switch format {
	case "html":
		c.Type("html", "utf-8")
		return c.SendString(render.HTML(frags))
	case "text":
		c.Type("txt", "utf-8")
		return c.SendString(render.Text(frags, nil))
	}

	data, err := toReportDTO(report)
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{Message: "failed to read report"}, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Success get report",
		Data:    data,
	})
}

func (h *FeedbackHandler) ListReports(c *fiber.Ctx) error {
	page, pageSize := usecase.NormalizePaging(c.QueryInt("page", 1), c.QueryInt("page_size", usecase.DefaultPageSize))

	reports, total, err := h.uc.ListReports(c.UserContext(), page, pageSize)
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{Message: "failed to list reports"}, err)
	}

	items := make([]dto.FeedbackReportSummaryDTO, 0, len(reports))
	for _, r := range reports {
		items = append(items, dto.FeedbackReportSummaryDTO{
			ID:        r.ID,
			Source:    r.Source,
			FileName:  r.FileName,
			Score:     r.Score,
			Verdict:   r.Verdict,
			Tier:      r.Tier,
			Approved:  r.Approved,
			CreatedAt: r.CreatedAt,
		})
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message:    "Success list reports",
		Data:       items,
		Pagination: response.NewPagination(page, pageSize, total),
	})
}

func toReportDTO(r *model.FeedbackReport) (dto.FeedbackReportDTO, error) {
	frags, err := usecase.Fragments(r)
	if err != nil {
		return dto.FeedbackReportDTO{}, err
	}
	return dto.FeedbackReportDTO{
		ID:            r.ID,
		Source:        r.Source,
		FileName:      r.FileName,
		Score:         r.Score,
		Label:         r.Label,
		IsExperienced: r.IsExperienced,
		Verdict:       r.Verdict,
		Track:         r.Track,
		Tier:          r.Tier,
		Approved:      r.Approved,
		Cutoff:        r.Cutoff,
		Subscores:     []byte(r.Subscores),
		Fragments:     frags,
		CreatedAt:     r.CreatedAt,
	}, nil
}
