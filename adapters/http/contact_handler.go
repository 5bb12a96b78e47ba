package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	contactUC "github.com/khoahotran/portfolio-api/internal/application/usecase/contact"
	"github.com/khoahotran/portfolio-api/pkg/apperror"
	"github.com/khoahotran/portfolio-api/pkg/logger"
)

type ContactHandler struct {
	contactUseCase *contactUC.ContactUseCase
	logger         logger.Logger
}

func NewContactHandler(uc *contactUC.ContactUseCase, log logger.Logger) *ContactHandler {
	return &ContactHandler{contactUseCase: uc, logger: log}
}

func (h *ContactHandler) Submit(c *gin.Context) {
	var req SubmitContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid JSON body for contact message", err))
		return
	}
	if err := req.Validate(); err != nil {
		c.Error(apperror.NewInvalidInput(err.Error(), err))
		return
	}

	input := contactUC.SubmitMessageInput{
		Name:    req.Name,
		Email:   req.Email,
		Subject: req.Subject,
		Message: req.Message,
	}
	msg, err := h.contactUseCase.SubmitMessage(c.Request.Context(), input)
	if err != nil {
		c.Error(err)
		return
	}

	Success(c, http.StatusCreated, ToContactMessageDTO(msg), "Message sent successfully")
}

func (h *ContactHandler) ListMessages(c *gin.Context) {
	messages, err := h.contactUseCase.ListMessages(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	Success(c, http.StatusOK, nonNil(ToContactMessageDTOs(messages)), "Messages retrieved successfully")
}

func (h *ContactHandler) UnreadCount(c *gin.Context) {
	n, err := h.contactUseCase.CountUnread(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	Success(c, http.StatusOK, UnreadCountResponse{Unread: n}, "Unread count retrieved successfully")
}
