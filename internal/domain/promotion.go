package domain

import "time"

type Promotion struct {
	ID          string     `bson:"id" json:"id"`
	Title       string     `bson:"title" json:"title"`
	Description string     `bson:"description" json:"description"`
	Code        string     `bson:"code" json:"code"`
	Discount    string     `bson:"discount" json:"discount"`
	ExpiryDate  *time.Time `bson:"expiry_date,omitempty" json:"expiryDate,omitempty"`
	Active      bool       `bson:"active" json:"active"`
}

// ActiveAt reports whether the promotion is currently active: the flag
// is set and the expiry date, if any, has not passed.
func (p Promotion) ActiveAt(now time.Time) bool {
	if !p.Active {
		return false
	}
	if p.ExpiryDate != nil && p.ExpiryDate.Before(now) {
		return false
	}
	return true
}
