package models

// DirectionsResult is the routing service payload. It is stored and passed
// around opaquely; only Routes[0].Legs[0] is interpreted for display.
type DirectionsResult struct {
	Routes []DirectionsRoute `json:"routes"`
	Status string            `json:"status,omitempty"`
}

type DirectionsRoute struct {
	Summary  string          `json:"summary,omitempty"`
	Legs     []DirectionsLeg `json:"legs"`
	Polyline string          `json:"overview_polyline,omitempty"`
}

type DirectionsLeg struct {
	Distance     TextValue        `json:"distance"`
	Duration     TextValue        `json:"duration"`
	StartAddress string           `json:"start_address"`
	EndAddress   string           `json:"end_address"`
	StartPoint   LatLng           `json:"start_location"`
	EndPoint     LatLng           `json:"end_location"`
	Steps        []DirectionsStep `json:"steps"`
}

type DirectionsStep struct {
	Instructions string    `json:"html_instructions"`
	Distance     TextValue `json:"distance"`
	Duration     TextValue `json:"duration"`
	StartPoint   LatLng    `json:"start_location"`
	EndPoint     LatLng    `json:"end_location"`
	Maneuver     string    `json:"maneuver,omitempty"`
}

// TextValue carries both the human-readable and numeric forms of a
// distance or duration, the way the routing service reports them.
type TextValue struct {
	Text  string  `json:"text"`
	Value float64 `json:"value"`
}

// Primary returns the first leg of the first route, the only part of the
// result the UI reads. Second return is false when the result is empty.
func (d *DirectionsResult) Primary() (DirectionsLeg, bool) {
	if d == nil || len(d.Routes) == 0 || len(d.Routes[0].Legs) == 0 {
		return DirectionsLeg{}, false
	}
	return d.Routes[0].Legs[0], true
}
