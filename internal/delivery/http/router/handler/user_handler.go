// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"

	deliverycontext "tasktag/internal/delivery/context"
	"tasktag/internal/delivery/http/response"
	"tasktag/internal/domain/entity"
	domainerrors "tasktag/internal/domain/errors"
	"tasktag/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// credentialsRequest is the body of both registration and login.
type credentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// userAttributes is the attribute bag of a user resource. Token is set only
// on registration and login responses.
type userAttributes struct {
	Username string `json:"username"`
	Token    string `json:"token,omitempty"`
}

// UserHandler holds dependencies for user-related handlers.
type UserHandler struct {
	uc     usecase.UserUsecase
	logger *slog.Logger
}

// NewUserHandler is the constructor for UserHandler, injected by Fx.
func NewUserHandler(uc usecase.UserUsecase, logger *slog.Logger) *UserHandler {
	return &UserHandler{
		uc:     uc,
		logger: logger,
	}
}

// Register handles the user registration request.
func (h *UserHandler) Register(c echo.Context) error {
	var req credentialsRequest
	if err := c.Bind(&req); err != nil {
		return domainerrors.ErrInvalidRegistration
	}

	output, err := h.uc.Register(c.Request().Context(), &usecase.RegisterInput{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Data(c, http.StatusCreated, userResource(output.User, output.Token))
}

// Login handles the user login request.
func (h *UserHandler) Login(c echo.Context) error {
	var req credentialsRequest
	if err := c.Bind(&req); err != nil {
		return domainerrors.ErrInvalidCredentials
	}

	output, err := h.uc.Login(c.Request().Context(), &usecase.LoginInput{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Data(c, http.StatusOK, userResource(output.User, output.Token))
}

// AutoLogin confirms that the request's credential still maps to a live
// account and returns that account.
func (h *UserHandler) AutoLogin(c echo.Context) error {
	principal, err := requestPrincipal(c)
	if err != nil {
		return err
	}

	user, err := h.uc.AutoLogin(c.Request().Context(), principal)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Data(c, http.StatusOK, userResource(user, ""))
}

// userResource renders a user as a resource object. The username doubles as
// the resource id.
func userResource(user *entity.User, token string) response.Resource {
	return response.Resource{
		ID:   user.Username,
		Type: "users",
		Attributes: userAttributes{
			Username: user.Username,
			Token:    token,
		},
	}
}

// requestPrincipal returns the principal placed on the request context by
// the authentication middleware.
func requestPrincipal(c echo.Context) (entity.Principal, error) {
	principal, ok := deliverycontext.GetPrincipal(c.Request().Context())
	if !ok {
		return entity.Principal{}, domainerrors.ErrUnauthenticated
	}

	return principal, nil
}
