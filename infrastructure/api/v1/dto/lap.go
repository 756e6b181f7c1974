package dto

// LapCreateAttributes are the attributes of a new lap. Ticks wins over Span
// when both are given.
type LapCreateAttributes struct {
	Label string `json:"label"`
	Span  string `json:"span,omitempty"`
	Ticks *int64 `json:"ticks,omitempty"`
}

// LapCreateData is the resource object of a create request.
type LapCreateData struct {
	Type       string              `json:"type"`
	Attributes LapCreateAttributes `json:"attributes"`
}

// LapCreateRequest represents a JSON:API request to record a lap.
type LapCreateRequest struct {
	Data LapCreateData `json:"data"`
}
