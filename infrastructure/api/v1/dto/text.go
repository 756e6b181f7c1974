package dto

// Fragment is one piece of text to append. Line fragments are newline
// terminated.
type Fragment struct {
	Text string `json:"text"`
	Line bool   `json:"line"`
}

// RenderRequest builds text from fragments in order.
type RenderRequest struct {
	Fragments []Fragment `json:"fragments"`
}
