package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/federalbonds/backend/internal/application"
	"github.com/federalbonds/backend/internal/interface/middleware"
	"github.com/federalbonds/backend/pkg/helpers"
	"github.com/federalbonds/backend/pkg/response"
	"github.com/federalbonds/backend/pkg/validation"
)

// ProfileHandler serves the authenticated profile dashboard, edit and delete.
type ProfileHandler struct {
	Svc     *application.ProfileService
	Logger  *logrus.Logger
	Cookies *helpers.Manager
}

func NewProfileHandler(svc *application.ProfileService, logger *logrus.Logger, cookieDomain string, cookieSecure bool) *ProfileHandler {
	return &ProfileHandler{Svc: svc, Logger: logger, Cookies: helpers.NewCookie(cookieDomain, cookieSecure)}
}

type updateProfileRequest struct {
	FirstName string `form:"first_name" binding:"required,personname"`
	LastName  string `form:"last_name" binding:"required,personname"`
	IsActive  bool   `form:"is_active"`
}

// View returns the caller's profile plus their open investments and total.
// A missing profile is recoverable: the client is told to register.
func (h *ProfileHandler) View(c *gin.Context) {
	uid := c.GetString(middleware.CtxUserIDKey)
	view, err := h.Svc.View(c.Request.Context(), uid)
	if err != nil {
		if errors.Is(err, application.ErrNotFound) {
			response.Error(c, http.StatusNotFound, "no profile yet", gin.H{"redirect": "/account/register"})
			return
		}
		h.Logger.WithError(err).WithField("user_id", uid).Error("loading profile failed")
		response.Error(c, http.StatusInternalServerError, "could not load profile", nil)
		return
	}
	response.Success(c, http.StatusOK, toProfileViewResponse(view), "profile", nil)
}

// Update edits profile fields from a multipart form; the image part is optional.
func (h *ProfileHandler) Update(c *gin.Context) {
	uid := c.GetString(middleware.CtxUserIDKey)
	var req updateProfileRequest
	if err := c.ShouldBind(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}

	in := application.UpdateInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		IsActive:  req.IsActive,
	}
	if fh, err := c.FormFile("image"); err == nil && fh != nil && fh.Size > 0 {
		f, err := fh.Open()
		if err != nil {
			response.Error(c, http.StatusBadRequest, "could not read image", nil)
			return
		}
		defer func() { _ = f.Close() }()
		in.Image = f
		in.ImageFilename = fh.Filename
		in.ImageContentType = fh.Header.Get("Content-Type")
	}

	p, err := h.Svc.Update(c.Request.Context(), uid, in)
	if err != nil {
		if errors.Is(err, application.ErrNotFound) {
			response.Error(c, http.StatusNotFound, "profile not found", nil)
			return
		}
		h.Logger.WithError(err).WithField("user_id", uid).Error("updating profile failed")
		response.Error(c, http.StatusInternalServerError, "could not update profile", nil)
		return
	}
	response.Success(c, http.StatusOK, toProfileResponse(p), "profile updated", nil)
}

// Delete removes the profile and account unless investments exist, then ends
// the session.
func (h *ProfileHandler) Delete(c *gin.Context) {
	uid := c.GetString(middleware.CtxUserIDKey)
	if err := h.Svc.Delete(c.Request.Context(), uid); err != nil {
		switch {
		case errors.Is(err, application.ErrNotFound):
			response.Error(c, http.StatusNotFound, "profile not found", nil)
		case errors.Is(err, application.ErrProfileHasInvestments):
			response.Error(c, http.StatusConflict, err.Error(), nil)
		default:
			h.Logger.WithError(err).WithField("user_id", uid).Error("deleting profile failed")
			response.Error(c, http.StatusInternalServerError, "could not delete profile", nil)
		}
		return
	}
	h.Cookies.Clear(c)
	response.Success(c, http.StatusOK, gin.H{"deleted": true}, "account deleted", nil)
}
