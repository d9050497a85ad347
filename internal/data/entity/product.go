package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type ProductCategory string

const (
	CategoryIndoor  ProductCategory = "Indoor"
	CategoryOutDoor ProductCategory = "Out Door"
)

type Product struct {
	ID          uuid.UUID       `db:"id"`
	Name        string          `db:"name"`
	Price       decimal.Decimal `db:"price"`
	Category    ProductCategory `db:"category"`
	Description string          `db:"description"`
	Tags        []string        `db:"tags"`
	CreatedAt   time.Time       `db:"created_at"`
}
