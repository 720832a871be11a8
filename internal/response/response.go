package response

// SuccessResponse is a plain confirmation.
type SuccessResponse struct {
	Message string `json:"message" example:"Operación realizada"`
}

// ErrorResponse is returned by every failing endpoint.
type ErrorResponse struct {
	// Machine readable code
	// example: VALIDATION_ERROR
	Code string `json:"code"`

	// Human readable message, shown to the customer as is
	// example: Ingresa tu nombre
	Message string `json:"message"`

	// Optional details
	Details string `json:"details,omitempty"`
}

// GeofenceErrorResponse is returned when registration is attempted away from
// the venue or without a location.
type GeofenceErrorResponse struct {
	ErrorResponse
	// Distance to the venue in metres, absent when no location was sent
	DistanceMeters *float64 `json:"distance_meters,omitempty"`
	DirectionsURL  string   `json:"directions_url"`
	// The customer may try again from closer
	Retry bool `json:"retry"`
}

// LoginErrorResponse tells the client to clear the secret field.
type LoginErrorResponse struct {
	ErrorResponse
	ClearInput bool `json:"clear_input"`
}

// TokenResponse carries the admin token pair.
type TokenResponse struct {
	// example: eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9...
	AccessToken string `json:"access_token"`

	// example: eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9...
	RefreshToken string `json:"refresh_token"`
}
