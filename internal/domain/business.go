package domain

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// BusinessDocument is the whole persisted state of one business. Every
// mutation loads it, changes a copy and writes it back as a unit.
type BusinessDocument struct {
	Name          string              `bson:"name" json:"name"`
	Description   string              `bson:"description" json:"description"`
	Category      string              `bson:"category" json:"category"`
	PriceRange    string              `bson:"price_range" json:"priceRange"`
	Social        SocialLinks         `bson:"social" json:"social"`
	Contact       Contact             `bson:"contact" json:"contact"`
	Legal         Legal               `bson:"legal" json:"legal"`
	Admin         Admin               `bson:"admin" json:"admin"`
	Subscription  Subscription        `bson:"subscription" json:"subscription"`
	Hours         map[string]DayHours `bson:"hours" json:"hours"`
	Vibes         []string            `bson:"vibes" json:"vibes"`
	Amenities     []string            `bson:"amenities" json:"amenities"`
	Menu          []Category          `bson:"menu" json:"menu"`
	Promotions    []Promotion         `bson:"promotions" json:"promotions"`
	TopPromos     []Promotion         `bson:"top_promos" json:"topPromos"`
	DailySpecials map[string]string   `bson:"daily_specials" json:"dailySpecials"`
	SocialPosts   []SocialPost        `bson:"social_posts" json:"socialPosts"`
}

type SocialLinks struct {
	Instagram string `bson:"instagram" json:"instagram"`
	Facebook  string `bson:"facebook" json:"facebook"`
}

type Contact struct {
	Phone   string `bson:"phone" json:"phone"`
	Email   string `bson:"email" json:"email"`
	Address string `bson:"address" json:"address"`
}

type Legal struct {
	RazonSocial  string `bson:"razon_social" json:"razonSocial"`
	RFC          string `bson:"rfc" json:"rfc"`
	Regimen      string `bson:"regimen" json:"regimen"`
	BusinessType string `bson:"business_type" json:"businessType"`
}

type Admin struct {
	Representative string `bson:"representative" json:"representative"`
	Position       string `bson:"position" json:"position"`
	CURP           string `bson:"curp" json:"curp"`
	DirectPhone    string `bson:"direct_phone" json:"directPhone"`
}

type Subscription struct {
	Status string `bson:"status" json:"status"`
	Plan   string `bson:"plan" json:"plan"`
}

const SubscriptionActive = "active"

// DayHours are the owner-facing opening hours, keyed by Spanish weekday
// name ("Lunes".."Domingo") with "HH:MM" strings.
type DayHours struct {
	Open  string `bson:"open" json:"open"`
	Close string `bson:"close" json:"close"`
}

type Category struct {
	ID       string    `bson:"id" json:"id"`
	Name     string    `bson:"category" json:"category"`
	Products []Product `bson:"products" json:"products"`
}

type Product struct {
	ID          string `bson:"id" json:"id"`
	Name        string `bson:"name" json:"name"`
	Description string `bson:"description" json:"description"`
	Price       Price  `bson:"price" json:"price"`
	Image       string `bson:"image" json:"image"`
	Available   bool   `bson:"available" json:"available"`
}

// Price is stored numerically but decodes from historical payloads that
// send it as a currency string ("$249", "249").
type Price float64

func (p *Price) UnmarshalJSON(data []byte) error {
	if len(data) == 0 || string(data) == "null" {
		return nil
	}

	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		s = strings.TrimSpace(strings.TrimLeft(s, "$ "))
		s = strings.ReplaceAll(s, ",", "")
		if s == "" {
			return nil
		}
		value, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return fmt.Errorf("invalid price %q: %w", s, err)
		}
		*p = Price(value)
		return nil
	}

	var value float64
	if err := json.Unmarshal(data, &value); err != nil {
		return err
	}
	*p = Price(value)
	return nil
}

// Display formats the price for the storefront ("$249", "$120.50").
func (p Price) Display() string {
	return "$" + strconv.FormatFloat(float64(p), 'f', -1, 64)
}

// Weekdays are the valid daily-special and hours keys, Monday first.
var Weekdays = []string{"Lunes", "Martes", "Miércoles", "Jueves", "Viernes", "Sábado", "Domingo"}

func IsWeekday(day string) bool {
	for _, d := range Weekdays {
		if d == day {
			return true
		}
	}
	return false
}

const PlaceholderProductImage = "https://images.unsplash.com/photo-1546069901-ba9599a7e63c?q=80&w=200&auto=format&fit=crop"

// DefaultDocument is the document substituted when the backing store is
// missing or unreadable.
func DefaultDocument() *BusinessDocument {
	return &BusinessDocument{
		Name:        "Chicago Deep Pizza",
		Description: "Las mejores pizzas estilo Chicago en Zacatecas, con bordes altos, mucho queso y los ingredientes más frescos.",
		Category:    "Pizzería",
		PriceRange:  "$$",
		Social: SocialLinks{
			Instagram: "@chicagodeeppizza",
			Facebook:  "Chicago Deep Pizza",
		},
		Contact: Contact{
			Phone:   "492 123 4567",
			Email:   "contacto@chicagodeeppizza.com",
			Address: "Av. Hidalgo #123, Centro Histórico, Zacatecas",
		},
		Legal: Legal{
			RazonSocial:  "Operadora de Alimentos Chicago S.A. de C.V.",
			RFC:          "OAC1234567A8",
			Regimen:      "Persona Moral - Régimen de Ley",
			BusinessType: "Restaurante / Establecimiento Fijo",
		},
		Admin: Admin{
			Representative: "Juan Pérez García",
			Position:       "Gerente General",
			CURP:           "PEGJ800101HZSXXXXX",
			DirectPhone:    "492 987 6543",
		},
		Subscription: Subscription{
			Status: SubscriptionActive,
			Plan:   "basic",
		},
		Vibes:     []string{"Familiar", "Con Amigos"},
		Amenities: []string{"WiFi Gratis", "Música en vivo"},
		Hours: map[string]DayHours{
			"Lunes":     {Open: "09:00", Close: "22:00"},
			"Martes":    {Open: "09:00", Close: "22:00"},
			"Miércoles": {Open: "09:00", Close: "22:00"},
			"Jueves":    {Open: "09:00", Close: "22:00"},
			"Viernes":   {Open: "09:00", Close: "23:00"},
			"Sábado":    {Open: "10:00", Close: "23:59"},
			"Domingo":   {Open: "10:00", Close: "21:00"},
		},
		Menu:          []Category{},
		Promotions:    []Promotion{},
		TopPromos:     []Promotion{},
		DailySpecials: map[string]string{},
		SocialPosts:   []SocialPost{},
	}
}

// Slug is the storefront URL identifier derived from the business name.
func (d *BusinessDocument) Slug() string {
	name := strings.ToLower(d.Name)
	name = strings.ReplaceAll(name, " ", "-")
	return name
}
