package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	recordUC "github.com/khanhduong/smartresume/internal/application/usecase/record"
	"github.com/khanhduong/smartresume/pkg/apperror"
)

type EducationHandler struct {
	useCase *recordUC.EducationUseCase
}

func NewEducationHandler(uc *recordUC.EducationUseCase) *EducationHandler {
	return &EducationHandler{useCase: uc}
}

func (h *EducationHandler) input(c *gin.Context) (recordUC.EducationInput, error) {
	var req EducationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return recordUC.EducationInput{}, apperror.NewInvalidInput("invalid request data", err)
	}

	resumeID, err := parseResumeRef(req.Resume)
	if err != nil {
		return recordUC.EducationInput{}, err
	}
	start, err := parseDate(req.StartDate)
	if err != nil {
		return recordUC.EducationInput{}, err
	}
	end, err := parseDate(req.EndDate)
	if err != nil {
		return recordUC.EducationInput{}, err
	}

	return recordUC.EducationInput{
		ResumeID:  resumeID,
		Institute: req.Institute,
		Degree:    req.Degree,
		StartDate: start,
		EndDate:   end,
		Details:   req.Details,
	}, nil
}

func (h *EducationHandler) Create(c *gin.Context) {
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

func (h *EducationHandler) Update(c *gin.Context) {
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

func (h *EducationHandler) Delete(c *gin.Context) {
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

func (h *EducationHandler) Get(c *gin.Context) {
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

func (h *EducationHandler) List(c *gin.Context) {
	actorID, ok := GetUserIDFromGinContext(c)
	if !ok {
		c.Error(apperror.NewUnauthorized("user not found in context", nil))
		return
	}

	educations, err := h.useCase.List(c.Request.Context(), actorID)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, educations)
}
