package domain

func ToResponse(c *Coffee) Response {
	return Response{
		ID:        c.ID.String(),
		Name:      c.Name,
		Size:      c.Size,
		Price:     NewPrice(c.Price),
		Enabled:   c.Enabled,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

func ToResponseList(items []*Coffee) []Response {
	out := make([]Response, 0, len(items))
	for _, item := range items {
		if item == nil {
			continue
		}
		out = append(out, ToResponse(item))
	}
	return out
}

// ToModel leaves id, enabled and timestamps for the store.
func ToModel(req CreateCoffeeRequest) *Coffee {
	return &Coffee{
		Name:  req.Name,
		Size:  req.Size,
		Price: req.Price,
	}
}

// ApplyUpdate overwrites the payload fields only.
func ApplyUpdate(c *Coffee, req UpdateCoffeeRequest) {
	c.Name = req.Name
	c.Size = req.Size
	c.Price = req.Price
}
