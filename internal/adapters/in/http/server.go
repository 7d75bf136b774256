// Package http provides the inbound HTTP adapter. Handlers translate
// requests into commands and queries and map lifecycle errors onto
// HTTP status codes.
package http

import (
	"errors"
	"net/http"
	"time"

	"haul/internal/core/application/usecases/commands"
	"haul/internal/core/application/usecases/queries"
	"haul/internal/core/domain/model/kernel"
	"haul/internal/pkg/errs"
	"haul/internal/pkg/metrics"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	registerAccountHandler      commands.RegisterAccountCommandHandler
	attachPaymentProfileHandler commands.AttachPaymentProfileCommandHandler
	postJobHandler              commands.PostJobCommandHandler
	acceptJobHandler            commands.AcceptJobCommandHandler
	confirmCompletionHandler    commands.ConfirmCompletionCommandHandler
	reportConflictHandler       commands.ReportConflictCommandHandler

	// Query handlers
	getOpenJobsHandler queries.GetOpenJobsQueryHandler
	getJobHandler      queries.GetJobQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	registerAccountHandler commands.RegisterAccountCommandHandler,
	attachPaymentProfileHandler commands.AttachPaymentProfileCommandHandler,
	postJobHandler commands.PostJobCommandHandler,
	acceptJobHandler commands.AcceptJobCommandHandler,
	confirmCompletionHandler commands.ConfirmCompletionCommandHandler,
	reportConflictHandler commands.ReportConflictCommandHandler,
	getOpenJobsHandler queries.GetOpenJobsQueryHandler,
	getJobHandler queries.GetJobQueryHandler,
) *Server {
	return &Server{
		registerAccountHandler:      registerAccountHandler,
		attachPaymentProfileHandler: attachPaymentProfileHandler,
		postJobHandler:              postJobHandler,
		acceptJobHandler:            acceptJobHandler,
		confirmCompletionHandler:    confirmCompletionHandler,
		reportConflictHandler:       reportConflictHandler,
		getOpenJobsHandler:          getOpenJobsHandler,
		getJobHandler:               getJobHandler,
	}
}

// RegisterRoutes attaches all lifecycle endpoints plus health and metrics.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/accounts", s.RegisterAccount)
	api.POST("/accounts/:accountId/payment-profile", s.AttachPaymentProfile)

	api.POST("/jobs", s.PostJob)
	api.GET("/jobs", s.GetOpenJobs)
	api.GET("/jobs/:jobId", s.GetJob)
	api.POST("/jobs/:jobId/accept", s.AcceptJob)
	api.POST("/jobs/:jobId/confirm", s.ConfirmCompletion)
	api.POST("/jobs/:jobId/conflict", s.ReportConflict)

	e.GET("/health", s.Health)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
}

// RegisterAccount handles POST /api/v1/accounts.
func (s *Server) RegisterAccount(ctx echo.Context) error {
	var req RegisterAccountRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	accountID := kernel.NewUUID()

	cmd, err := commands.NewRegisterAccountCommand(accountID, req.DisplayName, req.Phone)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err = s.registerAccountHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreatedResponse{ID: accountID.String()})
}

// AttachPaymentProfile handles POST /api/v1/accounts/:accountId/payment-profile.
func (s *Server) AttachPaymentProfile(ctx echo.Context) error {
	accountID, err := kernel.UUIDFromString(ctx.Param("accountId"))
	if err != nil {
		return badRequest(ctx, "Invalid account id")
	}

	var req AttachPaymentProfileRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewAttachPaymentProfileCommand(accountID, req.PayerRef, req.PayeeRef)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err = s.attachPaymentProfileHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// PostJob handles POST /api/v1/jobs.
func (s *Server) PostJob(ctx echo.Context) error {
	var req PostJobRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	posterID, err := kernel.UUIDFromString(req.PosterID)
	if err != nil {
		return badRequest(ctx, "Invalid poster id")
	}

	jobID := kernel.NewUUID()

	cmd, err := commands.NewPostJobCommand(jobID, posterID, req.Title, req.Description,
		req.ContactPhone, req.OriginAddress, req.DestinationAddress, req.Price)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err = s.postJobHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	metrics.JobsPosted.Inc()
	return ctx.JSON(http.StatusCreated, CreatedResponse{ID: jobID.String()})
}

// GetOpenJobs handles GET /api/v1/jobs.
func (s *Server) GetOpenJobs(ctx echo.Context) error {
	query := queries.NewGetOpenJobsQuery()

	jobs, err := s.getOpenJobsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	response := make([]OpenJobResponse, len(jobs))
	for i, j := range jobs {
		response[i] = OpenJobResponse{
			ID:                 j.ID.String(),
			Title:              j.Title,
			Description:        j.Description,
			OriginAddress:      j.OriginAddress,
			DestinationAddress: j.DestinationAddress,
			DistanceKm:         j.DistanceKm,
			Price:              j.Price,
			CreatedAt:          j.CreatedAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetJob handles GET /api/v1/jobs/:jobId.
func (s *Server) GetJob(ctx echo.Context) error {
	jobID, err := kernel.UUIDFromString(ctx.Param("jobId"))
	if err != nil {
		return badRequest(ctx, "Invalid job id")
	}

	query, err := queries.NewGetJobQuery(jobID)
	if err != nil {
		return errorResponse(ctx, err)
	}

	detail, err := s.getJobHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, jobDetailFromQuery(detail))
}

// AcceptJob handles POST /api/v1/jobs/:jobId/accept.
func (s *Server) AcceptJob(ctx echo.Context) error {
	jobID, err := kernel.UUIDFromString(ctx.Param("jobId"))
	if err != nil {
		return badRequest(ctx, "Invalid job id")
	}

	var req AcceptJobRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	moverID, err := kernel.UUIDFromString(req.MoverID)
	if err != nil {
		return badRequest(ctx, "Invalid mover id")
	}

	cmd, err := commands.NewAcceptJobCommand(jobID, moverID)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err = s.acceptJobHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	metrics.JobsAccepted.Inc()
	return ctx.NoContent(http.StatusNoContent)
}

// ConfirmCompletion handles POST /api/v1/jobs/:jobId/confirm.
func (s *Server) ConfirmCompletion(ctx echo.Context) error {
	jobID, err := kernel.UUIDFromString(ctx.Param("jobId"))
	if err != nil {
		return badRequest(ctx, "Invalid job id")
	}

	var req ConfirmCompletionRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	side, err := commands.SideFromString(req.Side)
	if err != nil {
		return badRequest(ctx, "Side must be \"poster\" or \"mover\"")
	}

	cmd, err := commands.NewConfirmCompletionCommand(jobID, side)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err = s.confirmCompletionHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ReportConflict handles POST /api/v1/jobs/:jobId/conflict.
func (s *Server) ReportConflict(ctx echo.Context) error {
	jobID, err := kernel.UUIDFromString(ctx.Param("jobId"))
	if err != nil {
		return badRequest(ctx, "Invalid job id")
	}

	var req ReportConflictRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	reporterID, err := kernel.UUIDFromString(req.ReporterID)
	if err != nil {
		return badRequest(ctx, "Invalid reporter id")
	}

	againstID, err := kernel.UUIDFromString(req.AgainstID)
	if err != nil {
		return badRequest(ctx, "Invalid against id")
	}

	cmd, err := commands.NewReportConflictCommand(jobID, reporterID, againstID, req.Comment)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err = s.reportConflictHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	metrics.ConflictsReported.Inc()
	return ctx.NoContent(http.StatusNoContent)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

func jobDetailFromQuery(detail queries.GetJobQueryResponse) JobDetailResponse {
	resp := JobDetailResponse{
		ID:                 detail.ID.String(),
		PosterID:           detail.PosterID.String(),
		Title:              detail.Title,
		Description:        detail.Description,
		ContactPhone:       detail.ContactPhone,
		OriginAddress:      detail.OriginAddress,
		DestinationAddress: detail.DestinationAddress,
		DistanceKm:         detail.DistanceKm,
		Price:              detail.Price,
		Status:             detail.Status,
		StatusLabel:        detail.StatusLabel,
		PosterConfirmed:    detail.PosterConfirmed,
		MoverConfirmed:     detail.MoverConfirmed,
		Completed:          detail.Completed,
		InConflict:         detail.InConflict,
		ConfirmableInSec:   int64(detail.ConfirmableIn / time.Second),
		CreatedAt:          detail.CreatedAt,
		AcceptedAt:         detail.AcceptedAt,
	}

	if detail.MoverID != nil {
		moverID := detail.MoverID.String()
		resp.MoverID = &moverID
	}

	if detail.Origin != nil {
		resp.Origin = &GeoPointResponse{Lat: detail.Origin.Lat(), Lng: detail.Origin.Lng()}
	}
	if detail.Destination != nil {
		resp.Destination = &GeoPointResponse{Lat: detail.Destination.Lat(), Lng: detail.Destination.Lng()}
	}

	return resp
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, ErrorResponse{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

// errorResponse maps lifecycle errors onto HTTP status codes.
func errorResponse(ctx echo.Context, err error) error {
	status := http.StatusInternalServerError

	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		status = http.StatusNotFound
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		status = http.StatusBadRequest
	case errors.Is(err, errs.ErrPolicyViolation),
		errors.Is(err, errs.ErrInvalidTransition):
		status = http.StatusConflict
	case errors.Is(err, errs.ErrGatewayFailure),
		errors.Is(err, errs.ErrSettlementFailed):
		status = http.StatusBadGateway
	}

	return ctx.JSON(status, ErrorResponse{
		Code:    status,
		Message: err.Error(),
	})
}
