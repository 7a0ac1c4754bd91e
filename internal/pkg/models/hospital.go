package models

// Hospital is an entry of the static hospital catalogue.
// Distance is overwritten when the list is ranked against a user location.
type Hospital struct {
	ID           string      `json:"id" yaml:"id"`
	Name         string      `json:"name" yaml:"name"`
	Address      string      `json:"address" yaml:"address"`
	Distance     float64     `json:"distance" yaml:"distance"`           // kilometers
	ResponseTime int         `json:"response_time" yaml:"response_time"` // minutes
	Phone        string      `json:"phone" yaml:"phone"`
	Coordinates  Coordinates `json:"coordinates" yaml:"coordinates"`
}
