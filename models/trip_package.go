package models

import "time"

type VehicleType string

const (
	VehicleCar       VehicleType = "car"
	VehicleBus       VehicleType = "bus"
	VehicleVan       VehicleType = "van"
	VehicleLuxuryCar VehicleType = "luxury_car"
)

type Vehicle struct {
	Type     VehicleType `json:"type"`
	Capacity int         `json:"capacity"`
	Name     string      `json:"name"`
}

type PriceRange struct {
	Min         float64 `json:"min"`
	Max         float64 `json:"max"`
	Description string  `json:"description"`
}

type TripPackage struct {
	ID              string       `json:"id"`
	Name            string       `json:"name"`
	Description     string       `json:"description,omitempty"`
	Destination     string       `json:"destination"`
	Duration        int          `json:"duration"`
	Price           float64      `json:"price"`
	MaxParticipants int          `json:"maxParticipants"`
	Includes        []string     `json:"includes,omitempty"`
	Highlights      []string     `json:"highlights,omitempty"`
	Vehicle         Vehicle      `json:"vehicle"`
	PriceRanges     []PriceRange `json:"priceRanges"`
	IsActive        bool         `json:"isActive"`
	Images          []string     `json:"images,omitempty"`
	CreatedAt       time.Time    `json:"createdAt"`
	UpdatedAt       time.Time    `json:"updatedAt"`
}
