package validators

// CredentialsRequest is the register/login payload accepted from the UI
// before it is sent to the auth service.
type CredentialsRequest struct {
	Username string `json:"username" validate:"required,min=3,max=64,username"`
	Password string `json:"password" validate:"required,min=6,max=128"`
}

// SavedLocationRequest is the payload for persisting a place under a
// user's account.
type SavedLocationRequest struct {
	User    string  `json:"user" validate:"required,username"`
	PlaceID string  `json:"placeId" validate:"required"`
	Name    string  `json:"name" validate:"required,max=256"`
	Lat     float64 `json:"lat" validate:"latitude_value"`
	Lng     float64 `json:"lng" validate:"longitude_value"`
}

// DirectionsRequest mirrors the route service query parameters.
type DirectionsRequest struct {
	Origin      string `json:"origin" validate:"required"`
	Destination string `json:"destination" validate:"required"`
	Mode        string `json:"mode" validate:"required,travel_mode"`
}

func ValidateCredentials(req *CredentialsRequest) ValidationErrors {
	return ValidateStruct(req)
}

func ValidateSavedLocation(req *SavedLocationRequest) ValidationErrors {
	return ValidateStruct(req)
}

func ValidateDirections(req *DirectionsRequest) ValidationErrors {
	return ValidateStruct(req)
}
