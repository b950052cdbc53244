package domain

import "time"

// Settings is the single school-wide configuration document. Writes replace
// the previous document wholesale; reads of an empty collection fall back to
// DefaultSettings.
type Settings struct {
	ID             string    `json:"id" bson:"_id"`
	SchoolName     string    `json:"school_name" bson:"school_name"`
	SchoolCode     string    `json:"school_code,omitempty" bson:"school_code,omitempty"`
	Address        string    `json:"address,omitempty" bson:"address,omitempty"`
	Phone          string    `json:"phone,omitempty" bson:"phone,omitempty"`
	Email          string    `json:"email,omitempty" bson:"email,omitempty"`
	Website        string    `json:"website,omitempty" bson:"website,omitempty"`
	Logo           string    `json:"logo,omitempty" bson:"logo,omitempty"`
	Currency       string    `json:"currency" bson:"currency"`
	CurrencySymbol string    `json:"currency_symbol" bson:"currency_symbol"`
	Timezone       string    `json:"timezone" bson:"timezone"`
	Language       string    `json:"language" bson:"language"`
	DateFormat     string    `json:"date_format" bson:"date_format"`
	TimeFormat     string    `json:"time_format" bson:"time_format"`
	UpdatedAt      time.Time `json:"updated_at" bson:"updated_at"`
}

// DefaultSettings returns the built-in settings served before an admin has
// stored any.
func DefaultSettings() *Settings {
	return &Settings{
		SchoolName:     "School Management System",
		Currency:       "USD",
		CurrencySymbol: "$",
		Timezone:       "UTC",
		Language:       "en",
		DateFormat:     "YYYY-MM-DD",
		TimeFormat:     "HH:mm",
	}
}
