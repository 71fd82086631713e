package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/ayushqc/college-info-api/internal/model"
	"github.com/ayushqc/college-info-api/internal/response"
	"github.com/ayushqc/college-info-api/internal/service"
	"github.com/ayushqc/college-info-api/internal/validator"
)

type TimelineHandler struct {
	timelineService *service.TimelineService
	log             zerolog.Logger
}

func NewTimelineHandler(timelineService *service.TimelineService, log zerolog.Logger) *TimelineHandler {
	return &TimelineHandler{
		timelineService: timelineService,
		log:             log.With().Str("component", "timeline_handler").Logger(),
	}
}

// List godoc
// GET /api/v1/timeline?district=
func (h *TimelineHandler) List(c *gin.Context) {
	events, err := h.timelineService.List(c.Request.Context(), c.Query("district"))
	if err != nil {
		h.log.Error().Err(err).Msg("Failed to list timeline events")
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	if events == nil {
		events = []model.TimelineEvent{}
	}
	response.Success(c, http.StatusOK, gin.H{"events": events})
}

// ListByCollege godoc
// GET /api/v1/timeline/college/:collegeId
func (h *TimelineHandler) ListByCollege(c *gin.Context) {
	collegeID, err := primitive.ObjectIDFromHex(c.Param("collegeId"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	events, err := h.timelineService.ListByCollege(c.Request.Context(), collegeID)
	if err != nil {
		h.log.Error().Err(err).Str("college_id", collegeID.Hex()).Msg("Failed to list college timeline")
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	if events == nil {
		events = []model.TimelineEvent{}
	}
	response.Success(c, http.StatusOK, gin.H{"events": events})
}

// Create godoc
// POST /api/v1/timeline
func (h *TimelineHandler) Create(c *gin.Context) {
	var req model.TimelineEventRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	event := req.ToEvent()
	if err := h.timelineService.Create(c.Request.Context(), event); err != nil {
		h.log.Error().Err(err).Msg("Failed to create timeline event")
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"event": event})
}
