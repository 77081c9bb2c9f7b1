package v1

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/CariHQ/nnp-web/internal/domain/users"
	"github.com/CariHQ/nnp-web/internal/pkg/logger"
)

// AuthHandler defines the interface for admin sign in over JSON
type AuthHandler interface {
	Login(ctx *gin.Context)
	Logout(ctx *gin.Context)
	Session(ctx *gin.Context)
}

type authHandler struct {
	authService users.AuthService
	cookie      SessionCookie
	logger      logger.Logger
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(authService users.AuthService, cookie SessionCookie, logger logger.Logger) AuthHandler {
	return &authHandler{
		authService: authService,
		cookie:      cookie,
		logger:      logger,
	}
}

// Login answers 400 when email or password is missing and 401 on bad credentials
func (handler *authHandler) Login(ctx *gin.Context) {
	var request LoginRequest
	if err := ctx.ShouldBindJSON(&request); err != nil || request.Email == "" || request.Password == "" {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Error: users.ErrMissingCredentials.Error()})
		return
	}

	result, err := handler.authService.SignIn(ctx, request.Email, request.Password, ClientInfo(ctx))
	switch {
	case errors.Is(err, users.ErrMissingCredentials):
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	case errors.Is(err, users.ErrInvalidCredentials):
		ctx.JSON(http.StatusUnauthorized, ErrorResponse{Error: err.Error()})
		return
	case err != nil:
		handler.logger.Error("Login error: ", err)
		ctx.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Internal server error"})
		return
	}

	handler.cookie.Set(ctx, result.Token)
	ctx.JSON(http.StatusOK, LoginResponse{
		Success: true,
		User:    UserResponse{ID: result.User.ID, Email: result.User.Email, Name: result.User.Name},
	})
}

func (handler *authHandler) Logout(ctx *gin.Context) {
	if err := handler.authService.SignOut(ctx, handler.cookie.Token(ctx)); err != nil {
		handler.logger.Error("Logout error: ", err)
	}
	handler.cookie.Clear(ctx)
	ctx.JSON(http.StatusOK, SuccessResponse{Success: true})
}

// Session reports the signed-in user, or {"session": null}
func (handler *authHandler) Session(ctx *gin.Context) {
	token := handler.cookie.Token(ctx)
	if token == "" {
		ctx.JSON(http.StatusOK, NewSessionResponse(nil))
		return
	}

	claims, err := handler.authService.Verify(ctx, token)
	if err != nil {
		if !errors.Is(err, users.ErrUnauthorized) {
			handler.logger.Error("Session lookup failed: ", err)
		}
		ctx.JSON(http.StatusOK, NewSessionResponse(nil))
		return
	}
	ctx.JSON(http.StatusOK, NewSessionResponse(claims))
}
