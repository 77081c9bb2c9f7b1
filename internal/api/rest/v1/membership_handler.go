package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/CariHQ/nnp-web/internal/domain/membership"
	"github.com/CariHQ/nnp-web/internal/pkg/logger"
)

// MembershipHandler defines the interface for membership applications
type MembershipHandler interface {
	Submit(ctx *gin.Context)
	List(ctx *gin.Context)
}

type membershipHandler struct {
	applicationService membership.ApplicationService
	logger             logger.Logger
}

// NewMembershipHandler creates a new MembershipHandler
func NewMembershipHandler(applicationService membership.ApplicationService, logger logger.Logger) MembershipHandler {
	return &membershipHandler{
		applicationService: applicationService,
		logger:             logger,
	}
}

func (handler *membershipHandler) Submit(ctx *gin.Context) {
	var request MembershipRequest
	if !bindJSON(ctx, &request) {
		return
	}

	application, err := handler.applicationService.Submit(ctx, request.ToDomain())
	if err != nil {
		respondError(ctx, handler.logger, err, "Failed to submit application")
		return
	}
	ctx.JSON(http.StatusCreated, gin.H{"application": NewMembershipResponse(application)})
}

func (handler *membershipHandler) List(ctx *gin.Context) {
	list, err := handler.applicationService.List(ctx)
	if err != nil {
		respondError(ctx, handler.logger, err, "Failed to fetch applications")
		return
	}

	out := make([]MembershipResponse, 0, len(list))
	for _, a := range list {
		out = append(out, NewMembershipResponse(a))
	}
	ctx.JSON(http.StatusOK, gin.H{"applications": out})
}
