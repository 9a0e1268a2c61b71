package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	recordUC "github.com/khanhduong/smartresume/internal/application/usecase/record"
	"github.com/khanhduong/smartresume/pkg/apperror"
)

type ProjectHandler struct {
	useCase *recordUC.ProjectUseCase
}

func NewProjectHandler(uc *recordUC.ProjectUseCase) *ProjectHandler {
	return &ProjectHandler{useCase: uc}
}

func (h *ProjectHandler) input(c *gin.Context) (recordUC.ProjectInput, error) {
	var req ProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return recordUC.ProjectInput{}, apperror.NewInvalidInput("invalid request data", err)
	}

	resumeID, err := parseResumeRef(req.Resume)
	if err != nil {
		return recordUC.ProjectInput{}, err
	}
	start, err := parseDate(req.StartDate)
	if err != nil {
		return recordUC.ProjectInput{}, err
	}
	end, err := parseDate(req.EndDate)
	if err != nil {
		return recordUC.ProjectInput{}, err
	}

	return recordUC.ProjectInput{
		ResumeID:    resumeID,
		Title:       req.Title,
		Description: req.Description,
		TechStack:   req.TechStack,
		Link:        req.Link,
		StartDate:   start,
		EndDate:     end,
	}, nil
}

func (h *ProjectHandler) Create(c *gin.Context) {
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

	p, err := h.useCase.Create(c.Request.Context(), actorID, in)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, p)
}

func (h *ProjectHandler) Update(c *gin.Context) {
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

	p, err := h.useCase.Update(c.Request.Context(), actorID, id, in)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, p)
}

func (h *ProjectHandler) Delete(c *gin.Context) {
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

func (h *ProjectHandler) Get(c *gin.Context) {
	actorID, id, err := actorAndID(c)
	if err != nil {
		c.Error(err)
		return
	}

	p, err := h.useCase.Get(c.Request.Context(), actorID, id)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, p)
}

func (h *ProjectHandler) List(c *gin.Context) {
	actorID, ok := GetUserIDFromGinContext(c)
	if !ok {
		c.Error(apperror.NewUnauthorized("user not found in context", nil))
		return
	}

	projects, err := h.useCase.List(c.Request.Context(), actorID)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, projects)
}
