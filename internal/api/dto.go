package api

// ConvertRequest represents the request body for a conversion
type ConvertRequest struct {
	Coefficient string      `json:"coefficient"`      // Coefficient as decimal string (expression mode)
	Exponent    string      `json:"exponent"`         // Power of ten as integer string (expression mode)
	Number      *string     `json:"number,omitempty"` // Plain number with optional commas; selects plain mode
	Format      string      `json:"format"`           // "text", "html" or "annotated"; server default when empty
	Options     *OptionsDTO `json:"options"`          // Rendering options; omitted fields take defaults
}

// OptionsDTO carries rendering options. Nil fields keep their defaults.
type OptionsDTO struct {
	Ruby           *bool `json:"ruby"`             // Attach kana readings (default: true)
	AllInKanji     *bool `json:"all_in_kanji"`     // Write digits as kanji (default: false)
	RakushaToComma *bool `json:"rakusha_to_comma"` // Use "," instead of 洛叉 (default: false)
	Spacing        *bool `json:"spacing"`          // Space after every scale word (default: true)
}

// ConvertResponse represents the response for a conversion
type ConvertResponse struct {
	Normalized string     `json:"normalized"` // Normalised magnitude (e.g., "1.5e21")
	Tokens     []TokenDTO `json:"tokens"`     // Output tokens in order
	Rendered   string     `json:"rendered"`   // Tokens serialised in Format
	Format     string     `json:"format"`     // Format used for Rendered
}

// TokenDTO represents one output token
type TokenDTO struct {
	Text    string `json:"text"`              // Displayed text
	Reading string `json:"reading,omitempty"` // Kana reading
}

// ScaleDTO represents one entry of the scale table
type ScaleDTO struct {
	Ordinal int    `json:"ordinal"` // Position in the table, 0 = 倶胝
	Name    string `json:"name"`    // Scale word
	Reading string `json:"reading"` // Kana reading
	Zeros   string `json:"zeros"`   // Power of ten as decimal string
}

// ListScalesResponse represents the response for listing the scale table
type ListScalesResponse struct {
	Scales []ScaleDTO `json:"scales"` // All scales by ascending ordinal
}

// HealthResponse represents the health check response
type HealthResponse struct {
	Status string `json:"status"` // Always "ok"
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Code    string `json:"code"`    // Error code
	Message string `json:"message"` // Error message
}
