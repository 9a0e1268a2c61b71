package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	recordUC "github.com/khanhduong/smartresume/internal/application/usecase/record"
	"github.com/khanhduong/smartresume/pkg/apperror"
)

type ExperienceHandler struct {
	useCase *recordUC.ExperienceUseCase
}

func NewExperienceHandler(uc *recordUC.ExperienceUseCase) *ExperienceHandler {
	return &ExperienceHandler{useCase: uc}
}

func (h *ExperienceHandler) input(c *gin.Context) (recordUC.ExperienceInput, error) {
	var req ExperienceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return recordUC.ExperienceInput{}, apperror.NewInvalidInput("invalid request data", err)
	}

	resumeID, err := parseResumeRef(req.Resume)
	if err != nil {
		return recordUC.ExperienceInput{}, err
	}
	start, err := parseDate(req.StartDate)
	if err != nil {
		return recordUC.ExperienceInput{}, err
	}
	end, err := parseDate(req.EndDate)
	if err != nil {
		return recordUC.ExperienceInput{}, err
	}

	return recordUC.ExperienceInput{
		ResumeID:    resumeID,
		Company:     req.Company,
		Role:        req.Role,
		StartDate:   start,
		EndDate:     end,
		Description: req.Description,
	}, nil
}

func (h *ExperienceHandler) Create(c *gin.Context) {
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

	e, err := h.useCase.Create(c.Request.Context(), actorID, in)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, e)
}

func (h *ExperienceHandler) Update(c *gin.Context) {
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

	e, err := h.useCase.Update(c.Request.Context(), actorID, id, in)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, e)
}

func (h *ExperienceHandler) Delete(c *gin.Context) {
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

func (h *ExperienceHandler) Get(c *gin.Context) {
	actorID, id, err := actorAndID(c)
	if err != nil {
		c.Error(err)
		return
	}

	e, err := h.useCase.Get(c.Request.Context(), actorID, id)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, e)
}

func (h *ExperienceHandler) List(c *gin.Context) {
	actorID, ok := GetUserIDFromGinContext(c)
	if !ok {
		c.Error(apperror.NewUnauthorized("user not found in context", nil))
		return
	}

	experiences, err := h.useCase.List(c.Request.Context(), actorID)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, experiences)
}
