package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	recordUC "github.com/khanhduong/smartresume/internal/application/usecase/record"
	"github.com/khanhduong/smartresume/pkg/apperror"
)

type SkillHandler struct {
	useCase *recordUC.SkillUseCase
}

func NewSkillHandler(uc *recordUC.SkillUseCase) *SkillHandler {
	return &SkillHandler{useCase: uc}
}

func (h *SkillHandler) input(c *gin.Context) (recordUC.SkillInput, error) {
	var req SkillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return recordUC.SkillInput{}, apperror.NewInvalidInput("invalid request data", err)
	}

	resumeID, err := parseResumeRef(req.Resume)
	if err != nil {
		return recordUC.SkillInput{}, err
	}

	return recordUC.SkillInput{
		ResumeID: resumeID,
		Name:     req.Name,
		Level:    req.Level,
	}, nil
}

func (h *SkillHandler) Create(c *gin.Context) {
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

	s, err := h.useCase.Create(c.Request.Context(), actorID, in)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, s)
}

func (h *SkillHandler) Update(c *gin.Context) {
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

	s, err := h.useCase.Update(c.Request.Context(), actorID, id, in)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, s)
}

func (h *SkillHandler) Delete(c *gin.Context) {
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

func (h *SkillHandler) Get(c *gin.Context) {
	actorID, id, err := actorAndID(c)
	if err != nil {
		c.Error(err)
		return
	}

	s, err := h.useCase.Get(c.Request.Context(), actorID, id)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, s)
}

func (h *SkillHandler) List(c *gin.Context) {
	actorID, ok := GetUserIDFromGinContext(c)
	if !ok {
		c.Error(apperror.NewUnauthorized("user not found in context", nil))
		return
	}

	skills, err := h.useCase.List(c.Request.Context(), actorID)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, skills)
}
