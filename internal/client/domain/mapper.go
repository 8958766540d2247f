package domain

import (
	"github.com/google/uuid"
	addressdomain "github.com/smallbiznis/coffeestore/internal/address/domain"
)

// ToResponse renders c with the given addresses. A nil address list is
// rendered as an empty array.
func ToResponse(c *Client, addresses []addressdomain.Response) Response {
	if addresses == nil {
		addresses = []addressdomain.Response{}
	}
	return Response{
		ID:        c.ID.String(),
		Name:      c.Name,
		Email:     c.Email,
		Addresses: addresses,
		Enabled:   c.Enabled,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

// ToResponseList keeps input order. Addresses are looked up per client id.
func ToResponseList(items []*Client, addresses map[uuid.UUID][]addressdomain.Response) []Response {
	out := make([]Response, 0, len(items))
	for _, item := range items {
		if item == nil {
			continue
		}
		out = append(out, ToResponse(item, addresses[item.ID]))
	}
	return out
}

func ToModel(req CreateClientRequest) *Client {
	return &Client{
		Name:  req.Name,
		Email: req.Email,
	}
}

func ApplyUpdate(c *Client, req UpdateClientRequest) {
	c.Name = req.Name
	c.Email = req.Email
}
