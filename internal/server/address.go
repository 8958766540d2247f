package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	auditdomain "github.com/smallbiznis/coffeestore/internal/audit/domain"
)

func (s *Server) DeleteAddress(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := s.addressSvc.DeleteByID(c.Request.Context(), id); err != nil {
		AbortWithError(c, err)
		return
	}

	s.audit(c, "address.delete", auditdomain.TargetAddress, id.String(), nil)
	c.Status(http.StatusNoContent)
}
