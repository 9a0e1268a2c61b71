package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	recordUC "github.com/khanhduong/smartresume/internal/application/usecase/record"
	"github.com/khanhduong/smartresume/pkg/apperror"
)

type AchievementHandler struct {
	useCase *recordUC.AchievementUseCase
}

func NewAchievementHandler(uc *recordUC.AchievementUseCase) *AchievementHandler {
	return &AchievementHandler{useCase: uc}
}

func (h *AchievementHandler) input(c *gin.Context) (recordUC.AchievementInput, error) {
	var req AchievementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return recordUC.AchievementInput{}, apperror.NewInvalidInput("invalid request data", err)
	}

	resumeID, err := parseResumeRef(req.Resume)
	if err != nil {
		return recordUC.AchievementInput{}, err
	}
	date, err := parseDate(req.Date)
	if err != nil {
		return recordUC.AchievementInput{}, err
	}

	return recordUC.AchievementInput{
		ResumeID:    resumeID,
		Title:       req.Title,
		Date:        date,
		Issuer:      req.Issuer,
		ProofURL:    req.ProofURL,
		Description: req.Description,
	}, nil
}

func (h *AchievementHandler) Create(c *gin.Context) {
	actorID, ok := GetUserIDFromGinContext(c)
	if !ok {
		c.Error(apperror.NewUnauthorized("user not found in context", nil))
		return
	}
	in, err := h.input(c)
	if err != nil {
		c.Error(err)
		return
	}

	a, err := h.useCase.Create(c.Request.Context(), actorID, in)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, a)
}

func (h *AchievementHandler) Update(c *gin.Context) {
	actorID, id, err := actorAndID(c)
	if err != nil {
		c.Error(err)
		return
	}
	in, err := h.input(c)
	if err != nil {
		c.Error(err)
		return
	}

	a, err := h.useCase.Update(c.Request.Context(), actorID, id, in)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, a)
}

func (h *AchievementHandler) Delete(c *gin.Context) {
	actorID, id, err := actorAndID(c)
	if err != nil {
		c.Error(err)
		return
	}

	if err := h.useCase.Delete(c.Request.Context(), actorID, id); err != nil {
		c.Error(err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *AchievementHandler) Get(c *gin.Context) {
	actorID, id, err := actorAndID(c)
	if err != nil {
		c.Error(err)
		return
	}

	a, err := h.useCase.Get(c.Request.Context(), actorID, id)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, a)
}

func (h *AchievementHandler) List(c *gin.Context) {
	actorID, ok := GetUserIDFromGinContext(c)
	if !ok {
		c.Error(apperror.NewUnauthorized("user not found in context", nil))
		return
	}

	achievements, err := h.useCase.List(c.Request.Context(), actorID)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, achievements)
}
