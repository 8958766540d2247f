package domain

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/smallbiznis/coffeestore/pkg/repository"
)

type Size string

const (
	SizeSmall  Size = "SMALL"
	SizeMedium Size = "MEDIUM"
	SizeLarge  Size = "LARGE"
)

func (s Size) Valid() bool {
	switch s {
	case SizeSmall, SizeMedium, SizeLarge:
		return true
	default:
		return false
	}
}

func ParseSize(value string) (Size, error) {
	size := Size(value)
	if !size.Valid() {
		return "", ErrInvalidSize
	}
	return size, nil
}

// UnmarshalJSON rejects sizes outside the known set so bad payloads fail
// at decode time.
func (s *Size) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return ErrInvalidSize
	}
	size, err := ParseSize(raw)
	if err != nil {
		return err
	}
	*s = size
	return nil
}

type Coffee struct {
	repository.Model
	Name    string          `gorm:"column:name;not null"`
	Size    Size            `gorm:"column:size;type:varchar(16);not null"`
	Price   decimal.Decimal `gorm:"column:price;type:decimal(10,2);not null"`
	Enabled bool            `gorm:"column:enabled;not null"`
}

func (Coffee) TableName() string {
	return "coffee"
}

// PrePersist enables every coffee on first save.
func (c *Coffee) PrePersist(id uuid.UUID, now time.Time) {
	c.Model.PrePersist(id, now)
	c.Enabled = true
}
