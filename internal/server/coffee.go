package server

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	auditdomain "github.com/smallbiznis/coffeestore/internal/audit/domain"
	coffeedomain "github.com/smallbiznis/coffeestore/internal/coffee/domain"
)

type coffeeRequest struct {
	Name  string            `json:"name"`
	Size  coffeedomain.Size `json:"size"`
	Price decimal.Decimal   `json:"price"`
}

func bindCoffeeRequest(c *gin.Context) (coffeeRequest, bool) {
	var req coffeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		if errors.Is(err, coffeedomain.ErrInvalidSize) {
			AbortWithError(c, coffeedomain.ErrInvalidSize)
			return req, false
		}
		AbortWithError(c, invalidRequestError())
		return req, false
	}
	req.Name = strings.TrimSpace(req.Name)
	return req, true
}

func (s *Server) ListCoffees(c *gin.Context) {
	resp, err := s.coffeeSvc.FindAll(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (s *Server) GetCoffeeByID(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	resp, err := s.coffeeSvc.FindByID(c.Request.Context(), id)
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

func (s *Server) CreateCoffee(c *gin.Context) {
	req, ok := bindCoffeeRequest(c)
	if !ok {
		return
	}

	resp, err := s.coffeeSvc.Create(c.Request.Context(), coffeedomain.CreateCoffeeRequest{
		Name:  req.Name,
		Size:  req.Size,
		Price: req.Price,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	s.audit(c, "coffee.create", auditdomain.TargetCoffee, resp.ID, map[string]any{
		"name":  resp.Name,
		"size":  string(resp.Size),
		"price": resp.Price.String(),
	})

	c.Header("Location", locationFor(c, resp.ID))
	c.JSON(http.StatusCreated, resp)
}

func (s *Server) UpdateCoffee(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	req, ok := bindCoffeeRequest(c)
	if !ok {
		return
	}

	resp, err := s.coffeeSvc.Update(c.Request.Context(), id, coffeedomain.UpdateCoffeeRequest{
		Name:  req.Name,
		Size:  req.Size,
		Price: req.Price,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}
	if resp == nil {
		c.AbortWithStatus(http.StatusNotFound)
		return
	}

	s.audit(c, "coffee.update", auditdomain.TargetCoffee, resp.ID, map[string]any{
		"name":  resp.Name,
		"size":  string(resp.Size),
		"price": resp.Price.String(),
	})

	c.JSON(http.StatusOK, resp)
}

func (s *Server) ActivateCoffee(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := s.coffeeSvc.Activate(c.Request.Context(), id); err != nil {
		AbortWithError(c, err)
		return
	}

	s.audit(c, "coffee.activate", auditdomain.TargetCoffee, id.String(), nil)
	c.Status(http.StatusNoContent)
}

func (s *Server) InactivateCoffee(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := s.coffeeSvc.Inactivate(c.Request.Context(), id); err != nil {
		AbortWithError(c, err)
		return
	}

	s.audit(c, "coffee.inactivate", auditdomain.TargetCoffee, id.String(), nil)
	c.Status(http.StatusNoContent)
}
