package models

// City is a serviceable location. Deactivation is a soft delete: inactive
// cities are hidden from listings but kept for historical bookings.
type City struct {
	ID       string `bson:"id" json:"id"`
	Name     string `bson:"name" json:"name"`
	State    string `bson:"state" json:"state"`
	ImageURL string `bson:"image_url,omitempty" json:"imageUrl,omitempty"`
	Active   bool   `bson:"is_active" json:"isActive"`
}
