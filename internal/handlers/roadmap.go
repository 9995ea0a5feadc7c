package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/datatypes"

	"github.com/nextsteps-app/nextsteps-backend/internal/logger"
	"github.com/nextsteps-app/nextsteps-backend/internal/requestdata"
	"github.com/nextsteps-app/nextsteps-backend/internal/services"
	"github.com/nextsteps-app/nextsteps-backend/internal/types"
)

type RoadmapHandler struct {
	log            *logger.Logger
	roadmapService services.RoadmapService
}

func NewRoadmapHandler(log *logger.Logger, roadmapService services.RoadmapService) *RoadmapHandler {
	return &RoadmapHandler{
		log:            log.With("handler", "RoadmapHandler"),
		roadmapService: roadmapService,
	}
}

type generateRoadmapRequest struct {
	GoalTitle string         `json:"goalTitle" binding:"required"`
	FirstName string         `json:"firstName"`
	Surname   string         `json:"surname"`
	Skills    datatypes.JSON `json:"skills"`
	Interests datatypes.JSON `json:"interests"`
}

func (h *RoadmapHandler) Generate(c *gin.Context) {
	rd := requestdata.GetRequestData(c.Request.Context())
	if rd == nil || rd.UserID == uuid.Nil {
		RespondError(c, http.StatusUnauthorized, "unauthorized", nil)
		return
	}

	var req generateRoadmapRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}

	profile := &types.Profile{
		UserID:    rd.UserID,
		FirstName: req.FirstName,
		Surname:   req.Surname,
		GoalTitle: req.GoalTitle,
		Skills:    req.Skills,
		Interests: req.Interests,
	}

	plan, err := h.roadmapService.GenerateAndSave(c.Request.Context(), profile)
	if err != nil {
		h.log.Error("Roadmap generation failed", "error", err, "user_id", rd.UserID)
		switch {
		case errors.Is(err, services.ErrUpstreamUnavailable):
			RespondError(c, http.StatusServiceUnavailable, "model_unreachable", err)
		case errors.Is(err, services.ErrEmptyResponse):
			RespondError(c, http.StatusBadGateway, "empty_model_response", err)
		case errors.Is(err, services.ErrMalformedRoadmap):
			RespondError(c, http.StatusBadGateway, "malformed_model_output", err)
		case errors.Is(err, services.ErrValidationFailed):
			RespondError(c, http.StatusUnprocessableEntity, "roadmap_validation_failed", err)
		case errors.Is(err, services.ErrUserNotFound):
			RespondError(c, http.StatusNotFound, "user_not_found", err)
		default:
			RespondError(c, http.StatusInternalServerError, "generation_failed", err)
		}
		return
	}
	RespondOK(c, plan)
}

func (h *RoadmapHandler) GetUserRoadmaps(c *gin.Context) {
	userID, err := uuid.Parse(c.Param("userId"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_user_id", err)
		return
	}
	rows, err := h.roadmapService.ListByUser(c.Request.Context(), userID)
	if err != nil {
		h.log.Error("ListByUser failed", "error", err, "user_id", userID)
		RespondError(c, http.StatusInternalServerError, "load_roadmaps_failed", err)
		return
	}
	RespondOK(c, rows)
}

func (h *RoadmapHandler) GetRoadmap(c *gin.Context) {
	roadmapID, err := uuid.Parse(c.Param("roadmapId"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_roadmap_id", err)
		return
	}
	plan, err := h.roadmapService.GetByID(c.Request.Context(), roadmapID)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrRoadmapNotFound):
			RespondError(c, http.StatusNotFound, "roadmap_not_found", err)
		case errors.Is(err, services.ErrRoadmapCorrupted):
			RespondError(c, http.StatusInternalServerError, "roadmap_corrupted", err)
		default:
			h.log.Error("GetRoadmap failed", "error", err, "roadmap_id", roadmapID)
			RespondError(c, http.StatusInternalServerError, "load_roadmap_failed", err)
		}
		return
	}
	RespondOK(c, plan)
}

func (h *RoadmapHandler) DeleteRoadmap(c *gin.Context) {
	rd := requestdata.GetRequestData(c.Request.Context())
	if rd == nil || rd.UserID == uuid.Nil {
		RespondError(c, http.StatusUnauthorized, "unauthorized", nil)
		return
	}
	roadmapID, err := uuid.Parse(c.Param("roadmapId"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_roadmap_id", err)
		return
	}
	if err := h.roadmapService.Delete(c.Request.Context(), roadmapID, rd.UserID); err != nil {
		switch {
		case errors.Is(err, services.ErrRoadmapNotFound):
			RespondError(c, http.StatusNotFound, "roadmap_not_found", err)
		case errors.Is(err, services.ErrNotOwner):
			RespondError(c, http.StatusForbidden, "forbidden", err)
		default:
			h.log.Error("DeleteRoadmap failed", "error", err, "roadmap_id", roadmapID)
			RespondError(c, http.StatusInternalServerError, "delete_roadmap_failed", err)
		}
		return
	}
	c.Status(http.StatusNoContent)
}
