package models

import (
	"fmt"
	"strings"
)

// OpenStatus is the tri-state opening-hours flag. Sources frequently omit
// opening hours entirely, so "unknown" is a first-class value.
type OpenStatus string

const (
	OpenStatusOpen    OpenStatus = "open"
	OpenStatusClosed  OpenStatus = "closed"
	OpenStatusUnknown OpenStatus = "unknown"
)

func OpenStatusFromBool(open bool) OpenStatus {
	if open {
		return OpenStatusOpen
	}
	return OpenStatusClosed
}

// LatLng is a plain coordinate pair.
type LatLng struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

func (l LatLng) String() string {
	return fmt.Sprintf("%.6f,%.6f", l.Lat, l.Lng)
}

// Place is the canonical, serializable record every place-like source is
// normalized into. All fields are plain values; nothing here holds a live
// handle into a provider SDK.
type Place struct {
	PlaceID     string     `json:"place_id"`
	Name        string     `json:"name"`
	Lat         float64    `json:"lat"`
	Lng         float64    `json:"lng"`
	Address     string     `json:"address"`
	Rating      float64    `json:"rating"`
	RatingCount int        `json:"rating_count"`
	Types       []string   `json:"types,omitempty"`
	PhoneNumber string     `json:"phone_number,omitempty"`
	Website     string     `json:"website,omitempty"`
	PhotoURLs   []string   `json:"photo_urls,omitempty"`
	OpenNow     OpenStatus `json:"open_now"`
	Reviews     []Review   `json:"reviews,omitempty"`
}

func (p Place) Location() LatLng {
	return LatLng{Lat: p.Lat, Lng: p.Lng}
}

// Review is one user review attached to a place. Every field is defaulted
// independently during normalization since sources routinely omit some.
type Review struct {
	Author       string  `json:"author"`
	Rating       float64 `json:"rating"`
	Text         string  `json:"text"`
	RelativeTime string  `json:"relative_time"`
	Time         int64   `json:"time"`
}

// SavedLocation is a Place persisted server-side under a user's account.
// ID is assigned by the locations service on create.
type SavedLocation struct {
	ID    string `json:"_id,omitempty"`
	Owner string `json:"user"`
	Place
}

// Viewport is the map camera state. Binding is one-way: store to widget.
type Viewport struct {
	Center LatLng `json:"center"`
	Zoom   int    `json:"zoom"`
}

// MapType mirrors the rendering modes the map widget supports.
type MapType string

const (
	MapTypeRoadmap   MapType = "roadmap"
	MapTypeSatellite MapType = "satellite"
	MapTypeHybrid    MapType = "hybrid"
	MapTypeTerrain   MapType = "terrain"
)

// TravelMode selects the routing profile for a directions request.
type TravelMode string

const (
	TravelModeDriving   TravelMode = "DRIVING"
	TravelModeWalking   TravelMode = "WALKING"
	TravelModeBicycling TravelMode = "BICYCLING"
	TravelModeTransit   TravelMode = "TRANSIT"
)

// QueryValue renders the mode the way the routing service expects it.
func (m TravelMode) QueryValue() string {
	return strings.ToLower(string(m))
}
