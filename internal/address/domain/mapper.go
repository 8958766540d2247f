package domain

import (
	"github.com/google/uuid"
)

func ToResponse(a *Address) Response {
	return Response{
		ID:           a.ID.String(),
		Street:       a.Street,
		Number:       a.Number,
		Complement:   a.Complement,
		Neighborhood: a.Neighborhood,
		City:         a.City,
		State:        a.State,
		ZipCode:      a.ZipCode,
		ClientID:     a.ClientID.String(),
		CreatedAt:    a.CreatedAt,
		UpdatedAt:    a.UpdatedAt,
	}
}

// ToResponseList keeps input order and skips nil entries.
func ToResponseList(items []*Address) []Response {
	out := make([]Response, 0, len(items))
	for _, item := range items {
		if item == nil {
			continue
		}
		out = append(out, ToResponse(item))
	}
	return out
}

// ToModel builds an unsaved Address. Identity and timestamps are left for
// the store to assign.
func ToModel(clientID uuid.UUID, req CreateAddressRequest) *Address {
	return &Address{
		Street:       req.Street,
		Number:       req.Number,
		Complement:   req.Complement,
		Neighborhood: req.Neighborhood,
		City:         req.City,
		State:        req.State,
		ZipCode:      req.ZipCode,
		ClientID:     clientID,
	}
}
