package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Miraines/StudyPlanner/backend/internal/adapters/transport/http/dto"
	"github.com/Miraines/StudyPlanner/backend/internal/adapters/transport/http/middleware"
	authsvc "github.com/Miraines/StudyPlanner/backend/internal/app/auth/service"
	studysvc "github.com/Miraines/StudyPlanner/backend/internal/app/study/service"
	customErrors "github.com/Miraines/StudyPlanner/backend/internal/domain/auth/errors"
	lg "github.com/Miraines/StudyPlanner/backend/internal/infra/log"
)

const msgInvalidBody = "Invalid request body"

type Handler struct {
	auth  authsvc.Service
	study studysvc.Service
	log   *zap.Logger
	now   func() time.Time
}

func NewHandler(auth authsvc.Service, study studysvc.Service, log *zap.Logger) *Handler {
	if log == nil {
		log = zap.NewNop()
	}
	return &Handler{auth: auth, study: study, log: log, now: time.Now}
}

func (h *Handler) Register(c *gin.Context) {
	var body dto.RegisterDTO
	if err := c.ShouldBindJSON(&body); err != nil {
		h.log.Debug("/register bind error", zap.Error(err))
		handleError(c, customErrors.NewValidation(msgInvalidBody))
		return
	}
	h.log.Info("/register", lg.Digest(body.Email))

	reg, err := h.auth.Register(c.Request.Context(), body)
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, reg)
}

func (h *Handler) Login(c *gin.Context) {
	var body dto.LoginDTO
	if err := c.ShouldBindJSON(&body); err != nil {
		h.log.Debug("/login bind error", zap.Error(err))
		handleError(c, customErrors.NewValidation(msgInvalidBody))
		return
	}
	h.log.Info("/login", lg.Digest(body.Username))

	token, err := h.auth.Login(c.Request.Context(), body)
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.LoginResponse{Token: token})
}

func (h *Handler) Profile(c *gin.Context) {
	p, err := h.study.Profile(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

func (h *Handler) Subjects(c *gin.Context) {
	out, err := h.study.Subjects(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

func (h *Handler) Progress(c *gin.Context) {
	out, err := h.study.Progress(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

func (h *Handler) Tasks(c *gin.Context) {
	out, err := h.study.Tasks(c.Request.Context(), middleware.UserID(c), c.Query("subject_id"))
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

func (h *Handler) Sessions(c *gin.Context) {
	out, err := h.study.Sessions(c.Request.Context(), middleware.UserID(c), c.Query("task_id"))
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "time": h.now().Unix()})
}

// handleError writes the caller-safe form of err. Causes of 5xx responses are
// attached to the context for RequestLogger and never reach the body.
func handleError(c *gin.Context, err error) {
	status, msg := customErrors.Response(err)
	if status >= http.StatusInternalServerError {
		_ = c.Error(err)
	}
	c.JSON(status, dto.ErrorResponse{Error: msg})
}
