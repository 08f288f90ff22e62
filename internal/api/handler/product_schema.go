package handler

type createProductRequest struct {
	Name        string  `json:"name"         validate:"required"`
	Description string  `json:"description"`
	Price       float64 `json:"price"        validate:"gte=0"`
	PictureURL  string  `json:"picture_url"  validate:"omitempty,url"`
	ProductType string  `json:"product_type"`
}

// updateProductRequest carries a partial update; absent fields stay nil and
// are not applied.
type updateProductRequest struct {
	Name        *string  `json:"name"         validate:"omitempty,min=1"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price"        validate:"omitempty,gte=0"`
	PictureURL  *string  `json:"picture_url"  validate:"omitempty,url"`
	ProductType *string  `json:"product_type"`
}

type deleteProductResponse struct {
	Deleted bool `json:"deleted"`
}

type seedResponse struct {
	Inserted int `json:"inserted"`
}
