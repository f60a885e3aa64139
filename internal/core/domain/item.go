package domain

// Item is a single inventory record. The ID is assigned by the store on
// creation and never changes or gets reused afterwards.
type Item struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
}

// ItemInput carries the user-editable fields of an item.
type ItemInput struct {
	Name     string  `json:"name"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
}
