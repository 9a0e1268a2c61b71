package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	resumeUC "github.com/khanhduong/smartresume/internal/application/usecase/resume"
	"github.com/khanhduong/smartresume/pkg/apperror"
)

type ResumeHandler struct {
	resumeUseCase  *resumeUC.ResumeUseCase
	summaryUseCase *resumeUC.SummaryUseCase
	exportUseCase  *resumeUC.ExportUseCase
}

func NewResumeHandler(resumeUC *resumeUC.ResumeUseCase, summaryUC *resumeUC.SummaryUseCase, exportUC *resumeUC.ExportUseCase) *ResumeHandler {
	return &ResumeHandler{
		resumeUseCase:  resumeUC,
		summaryUseCase: summaryUC,
		exportUseCase:  exportUC,
	}
}

func actorAndID(c *gin.Context) (actorID, id uuid.UUID, err error) {
	actorID, ok := GetUserIDFromGinContext(c)
	if !ok {
		return uuid.Nil, uuid.Nil, apperror.NewUnauthorized("user not found in context", nil)
	}
	id, parseErr := uuid.Parse(c.Param("id"))
	if parseErr != nil {
		return uuid.Nil, uuid.Nil, apperror.NewInvalidInput("invalid id", parseErr)
	}
	return actorID, id, nil
}

func (h *ResumeHandler) Create(c *gin.Context) {
	actorID, ok := GetUserIDFromGinContext(c)
	if !ok {
		c.Error(apperror.NewUnauthorized("user not found in context", nil))
		return
	}
	var req CreateResumeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid request data", err))
		return
	}

	r, err := h.resumeUseCase.Create(c.Request.Context(), resumeUC.CreateResumeInput{
		OwnerID: actorID,
		Title:   req.Title,
	})
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, r)
}

func (h *ResumeHandler) Update(c *gin.Context) {
	actorID, id, err := actorAndID(c)
	if err != nil {
		c.Error(err)
		return
	}
	var req UpdateResumeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid request data", err))
		return
	}

	r, err := h.resumeUseCase.Update(c.Request.Context(), resumeUC.UpdateResumeInput{
		ResumeID: id,
		OwnerID:  actorID,
		Title:    req.Title,
	})
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, r)
}

func (h *ResumeHandler) Delete(c *gin.Context) {
	actorID, id, err := actorAndID(c)
	if err != nil {
		c.Error(err)
		return
	}

	if err := h.resumeUseCase.Delete(c.Request.Context(), id, actorID); err != nil {
		c.Error(err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *ResumeHandler) Get(c *gin.Context) {
	actorID, id, err := actorAndID(c)
	if err != nil {
		c.Error(err)
		return
	}

	detail, err := h.resumeUseCase.Get(c.Request.Context(), id, actorID)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, ToResumeDTO(detail))
}

func (h *ResumeHandler) List(c *gin.Context) {
	actorID, ok := GetUserIDFromGinContext(c)
	if !ok {
		c.Error(apperror.NewUnauthorized("user not found in context", nil))
		return
	}

	details, err := h.resumeUseCase.List(c.Request.Context(), actorID)
	if err != nil {
		c.Error(err)
		return
	}
	dtos := make([]ResumeDTO, len(details))
	for i, d := range details {
		dtos[i] = ToResumeDTO(d)
	}
	c.JSON(http.StatusOK, dtos)
}

func (h *ResumeHandler) GenerateSummary(c *gin.Context) {
	actorID, id, err := actorAndID(c)
	if err != nil {
		c.Error(err)
		return
	}

	summary, err := h.summaryUseCase.Execute(c.Request.Context(), id, actorID)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"summary": summary})
}

func (h *ResumeHandler) ExportPDF(c *gin.Context) {
	actorID, id, err := actorAndID(c)
	if err != nil {
		c.Error(err)
		return
	}

	out, err := h.exportUseCase.Execute(c.Request.Context(), id, actorID)
	if err != nil {
		c.Error(err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename=`+out.Filename)
	c.Data(http.StatusOK, "application/pdf", out.PDF)
}
