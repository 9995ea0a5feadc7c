package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/datatypes"

	"github.com/nextsteps-app/nextsteps-backend/internal/requestdata"
	"github.com/nextsteps-app/nextsteps-backend/internal/services"
	"github.com/nextsteps-app/nextsteps-backend/internal/types"
)

type ProfileHandler struct {
	profileService services.ProfileService
}

func NewProfileHandler(profileService services.ProfileService) *ProfileHandler {
	return &ProfileHandler{profileService: profileService}
}

func (h *ProfileHandler) GetProfile(c *gin.Context) {
	userID, err := uuid.Parse(c.Param("userId"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_user_id", err)
		return
	}
	profile, err := h.profileService.GetByUserID(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, services.ErrProfileNotFound) {
			RespondError(c, http.StatusNotFound, "profile_not_found", err)
			return
		}
		RespondError(c, http.StatusInternalServerError, "load_profile_failed", err)
		return
	}
	RespondOK(c, profile)
}

type upsertProfileRequest struct {
	FirstName string         `json:"firstName"`
	Surname   string         `json:"surname"`
	GoalTitle string         `json:"goalTitle"`
	Skills    datatypes.JSON `json:"skills"`
	Interests datatypes.JSON `json:"interests"`
}

func (h *ProfileHandler) UpsertProfile(c *gin.Context) {
	rd := requestdata.GetRequestData(c.Request.Context())
	if rd == nil || rd.UserID == uuid.Nil {
		RespondError(c, http.StatusUnauthorized, "unauthorized", nil)
		return
	}
	var req upsertProfileRequest
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
	saved, err := h.profileService.Upsert(c.Request.Context(), profile)
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			RespondError(c, http.StatusNotFound, "user_not_found", err)
			return
		}
		RespondError(c, http.StatusInternalServerError, "save_profile_failed", err)
		return
	}
	RespondOK(c, saved)
}
