package server

import (
	"path"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// pathID parses the :id parameter. On failure the request is aborted with
// a validation error.
func pathID(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(strings.TrimSpace(c.Param(name)))
	if err != nil || id == uuid.Nil {
		AbortWithError(c, invalidIDError())
		return uuid.Nil, false
	}
	return id, true
}

func locationFor(c *gin.Context, id string) string {
	return path.Join(c.Request.URL.Path, id)
}

// audit records a successful mutation. Failures are logged and never
// change the response.
func (s *Server) audit(c *gin.Context, action, targetType, targetID string, metadata map[string]any) {
	if s.auditSvc == nil {
		return
	}
	if err := s.auditSvc.AuditLog(c.Request.Context(), action, targetType, &targetID, metadata); err != nil {
		s.log.Warn("audit log failed",
			zap.String("action", action),
			zap.String("target_id", targetID),
			zap.Error(err),
		)
	}
}
