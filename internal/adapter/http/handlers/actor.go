package handlers

import (
	"net/http"

	"luthier_works/internal/domain/entities"
	"luthier_works/pkg"

	"github.com/gin-gonic/gin"
)

const (
	headerUserID   = "X-User-Id"
	headerUserRole = "X-User-Role"
)

var errMissingIdentity = pkg.NewDomainErrorSimple("UNAUTHENTICATED", "Missing user identity", http.StatusUnauthorized)

// actorFrom reads the identity headers injected by the auth proxy in front
// of this service. An absent user id aborts the request with 401; an absent
// or unknown role falls back to client, the least privileged role.
func actorFrom(c *gin.Context) (entities.Actor, bool) {
	userID := c.GetHeader(headerUserID)
	if userID == "" {
		c.JSON(errMissingIdentity.HTTPStatus, errMissingIdentity.ToHTTPError())
		return entities.Actor{}, false
	}

	role := entities.Role(c.GetHeader(headerUserRole))
	switch role {
	case entities.RoleStaff, entities.RoleAdmin, entities.RoleClient:
	default:
		role = entities.RoleClient
	}

	return entities.Actor{UserID: userID, Role: role}, true
}
