package handler

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/ayushqc/college-info-api/internal/model"
	"github.com/ayushqc/college-info-api/internal/repository"
	"github.com/ayushqc/college-info-api/internal/response"
	"github.com/ayushqc/college-info-api/internal/service"
	"github.com/ayushqc/college-info-api/internal/validator"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type CollegeHandler struct {
	collegeService *service.CollegeService
	exportService  *service.ExportService
	log            zerolog.Logger
}

func NewCollegeHandler(collegeService *service.CollegeService, exportService *service.ExportService, log zerolog.Logger) *CollegeHandler {
	return &CollegeHandler{
		collegeService: collegeService,
		exportService:  exportService,
		log:            log.With().Str("component", "college_handler").Logger(),
	}
}

// List godoc
// GET /api/v1/colleges?district=&program=
func (h *CollegeHandler) List(c *gin.Context) {
	filter := repository.CollegeFilter{
		District: c.Query("district"),
		Program:  c.Query("program"),
	}

	colleges, err := h.collegeService.List(c.Request.Context(), filter)
	if err != nil {
		h.log.Error().Err(err).Msg("Failed to list colleges")
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	if colleges == nil {
		colleges = []model.College{}
	}
	response.Success(c, http.StatusOK, gin.H{"colleges": colleges})
}

// Get godoc
// GET /api/v1/colleges/:id
func (h *CollegeHandler) Get(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	college, err := h.collegeService.Get(c.Request.Context(), id)
	if errors.Is(err, repository.ErrNotFound) {
		response.Fail(c, http.StatusNotFound, response.ErrNotFound)
		return
	}
	if err != nil {
		h.log.Error().Err(err).Str("id", id.Hex()).Msg("Failed to fetch college")
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"college": college})
}

// Create godoc
// POST /api/v1/colleges
func (h *CollegeHandler) Create(c *gin.Context) {
	var req model.CollegeRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	college := req.ToCollege()
	if err := h.collegeService.Create(c.Request.Context(), college); err != nil {
		h.log.Error().Err(err).Msg("Failed to create college")
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"college": college})
}

// Update godoc
// PUT /api/v1/colleges/:id
//
// Full-document replacement: the stored college becomes exactly the request
// body (re-validated), keeping only its id.
func (h *CollegeHandler) Update(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	var req model.CollegeRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	college, err := h.collegeService.Replace(c.Request.Context(), id, req.ToCollege())
	if errors.Is(err, repository.ErrNotFound) {
		response.Fail(c, http.StatusNotFound, response.ErrNotFound)
		return
	}
	if err != nil {
		h.log.Error().Err(err).Str("id", id.Hex()).Msg("Failed to update college")
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"college": college})
}

// Delete godoc
// DELETE /api/v1/colleges/:id
func (h *CollegeHandler) Delete(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	deleted, err := h.collegeService.Delete(c.Request.Context(), id)
	if errors.Is(err, repository.ErrNotFound) {
		response.Fail(c, http.StatusNotFound, response.ErrNotFound)
		return
	}
	if err != nil {
		h.log.Error().Err(err).Str("id", id.Hex()).Msg("Failed to delete college")
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"message": "college deleted successfully",
		"deleted": deleted,
	})
}

// Export godoc
// GET /api/v1/colleges/export
func (h *CollegeHandler) Export(c *gin.Context) {
	colleges, err := h.collegeService.List(c.Request.Context(), repository.CollegeFilter{})
	if err != nil {
		h.log.Error().Err(err).Msg("Failed to fetch colleges for export")
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	buf, err := h.exportService.BuildWorkbook(colleges)
	if err != nil {
		h.log.Error().Err(err).Msg("Failed to build export workbook")
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	filename := fmt.Sprintf("colleges-%s.xlsx", time.Now().UTC().Format("2006-01-02"))
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename=%q`, filename))
	c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}
