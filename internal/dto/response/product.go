package response

import (
	"order-management/internal/data/entity"
)

type ProductResponse struct {
	ID          string                 `json:"id"`
	Name        string                 `json:"name"`
	Price       string                 `json:"price"`
	Category    entity.ProductCategory `json:"category"`
	Description string                 `json:"description"`
	Tags        []string               `json:"tags"`
}

func ProductToResponse(product *entity.Product) ProductResponse {
	return ProductResponse{
		ID:          product.ID.String(),
		Name:        product.Name,
		Price:       product.Price.StringFixed(2),
		Category:    product.Category,
		Description: product.Description,
		Tags:        product.Tags,
	}
}

func ProductsToResponse(products []*entity.Product) []ProductResponse {
	resp := make([]ProductResponse, len(products))
	for i, product := range products {
		resp[i] = ProductToResponse(product)
	}
	return resp
}
