package models

import "time"

// Vehicle purpose values: whether a vehicle is listed for rent, sale, or both.
const (
	PurposeRent = "rent"
	PurposeSale = "sale"
	PurposeBoth = "both"
)

// ValidPurpose reports whether p is one of the known purpose values.
func ValidPurpose(p string) bool {
	return p == PurposeRent || p == PurposeSale || p == PurposeBoth
}

// Vehicle represents a car or bike listed in the catalog.
type Vehicle struct {
	ID               string    `bson:"id" json:"id"`
	Name             string    `bson:"name" json:"name"`
	Type             string    `bson:"type" json:"type"` // "Car" or "Bike"
	Purpose          string    `bson:"purpose" json:"purpose"`
	City             string    `bson:"city" json:"city"`
	RentPrice        string    `bson:"rent_price" json:"rentPrice"` // display string, e.g. "₹4,500/day"
	SalePrice        string    `bson:"sale_price" json:"salePrice"`
	Rating           float64   `bson:"rating" json:"rating"`
	ImageURL         string    `bson:"image_url" json:"imageUrl"`
	Available        bool      `bson:"is_available" json:"available"`
	UnderMaintenance bool      `bson:"under_maintenance" json:"underMaintenance"`
	Status           string    `bson:"status" json:"status"`
	Capacity         int       `bson:"capacity" json:"capacity"`
	Description      string    `bson:"description" json:"description"`
	FuelType         string    `bson:"fuel_type" json:"fuelType"`
	Transmission     string    `bson:"transmission" json:"transmission"`
	Features         []string  `bson:"features,omitempty" json:"features,omitempty"`
	CreatedAt        time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt        time.Time `bson:"updated_at" json:"updatedAt"`
}

// ForRent reports whether the vehicle is listed for rental.
func (v *Vehicle) ForRent() bool {
	return v.Purpose == PurposeRent || v.Purpose == PurposeBoth
}

// ForSale reports whether the vehicle is listed for sale.
func (v *Vehicle) ForSale() bool {
	return v.Purpose == PurposeSale || v.Purpose == PurposeBoth
}
