package server

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	addressdomain "github.com/smallbiznis/coffeestore/internal/address/domain"
	auditdomain "github.com/smallbiznis/coffeestore/internal/audit/domain"
	clientdomain "github.com/smallbiznis/coffeestore/internal/client/domain"
)

type clientRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

func (s *Server) ListClients(c *gin.Context) {
	resp, err := s.clientSvc.FindAll(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (s *Server) GetClientByID(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	resp, err := s.clientSvc.FindByID(c.Request.Context(), id)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	if resp == nil {
		c.AbortWithStatus(http.StatusNotFound)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (s *Server) CreateClient(c *gin.Context) {
	var req clientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.clientSvc.Create(c.Request.Context(), clientdomain.CreateClientRequest{
		Name:  strings.TrimSpace(req.Name),
		Email: strings.TrimSpace(req.Email),
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	s.audit(c, "client.create", auditdomain.TargetClient, resp.ID, map[string]any{
		"name":  resp.Name,
		"email": resp.Email,
	})

	c.Header("Location", locationFor(c, resp.ID))
	c.JSON(http.StatusCreated, resp)
}

func (s *Server) UpdateClient(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req clientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.clientSvc.Update(c.Request.Context(), id, clientdomain.UpdateClientRequest{
		Name:  strings.TrimSpace(req.Name),
		Email: strings.TrimSpace(req.Email),
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}
	if resp == nil {
		c.AbortWithStatus(http.StatusNotFound)
		return
	}

	s.audit(c, "client.update", auditdomain.TargetClient, resp.ID, map[string]any{
		"name":  resp.Name,
		"email": resp.Email,
	})

	c.JSON(http.StatusOK, resp)
}

func (s *Server) ActivateClient(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := s.clientSvc.Activate(c.Request.Context(), id); err != nil {
		AbortWithError(c, err)
		return
	}

	s.audit(c, "client.activate", auditdomain.TargetClient, id.String(), nil)
	c.Status(http.StatusNoContent)
}

func (s *Server) InactivateClient(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := s.clientSvc.Inactivate(c.Request.Context(), id); err != nil {
		AbortWithError(c, err)
		return
	}

	s.audit(c, "client.inactivate", auditdomain.TargetClient, id.String(), nil)
	c.Status(http.StatusNoContent)
}

func (s *Server) ListClientAddresses(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	resp, err := s.clientSvc.FindAddresses(c.Request.Context(), id)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	if resp == nil {
		resp = []addressdomain.Response{}
	}
	c.JSON(http.StatusOK, resp)
}

func (s *Server) AddClientAddress(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req addressdomain.CreateAddressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.clientSvc.AddAddress(c.Request.Context(), id, req)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	if resp == nil {
		c.AbortWithStatus(http.StatusNotFound)
		return
	}

	s.audit(c, "address.create", auditdomain.TargetAddress, resp.ID, map[string]any{
		"client_id": resp.ClientID,
		"city":      resp.City,
	})

	// No route serves a single address, so the 201 carries no Location.
	c.JSON(http.StatusCreated, resp)
}
