package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/smallbiznis/coffeestore/pkg/repository"
)

// Client is a customer of the store. Its addresses live in the address
// table and are attached when the client is mapped to a response.
type Client struct {
	repository.Model
	Name    string `gorm:"column:name;not null"`
	Email   string `gorm:"column:email"`
	Enabled bool   `gorm:"column:enabled;not null"`
}

func (Client) TableName() string {
	return "client"
}

func (c *Client) PrePersist(id uuid.UUID, now time.Time) {
	c.Model.PrePersist(id, now)
	c.Enabled = true
}
