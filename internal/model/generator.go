package model

// GenerateRequest represents a password generation request.
// Pointer bools allow distinguishing between missing (nil -> default true) and explicit false.
type GenerateRequest struct {
	Length    int   `json:"length" validate:"gte=0,lte=1024"`
	Count     int   `json:"count" validate:"gte=0,lte=100"`
	Lowercase *bool `json:"lowercase"`
	Uppercase *bool `json:"uppercase"`
	Digits    *bool `json:"digits"`
	Symbols   *bool `json:"symbols"`
	Hash      bool  `json:"hash"`
}

// GeneratedPassword is one password in a generation response.
type GeneratedPassword struct {
	Password string           `json:"password"`
	Hash     string           `json:"hash,omitempty"`
	Strength StrengthResponse `json:"strength"`
}

// GenerateResponse represents a password generation response.
type GenerateResponse struct {
	Passwords []GeneratedPassword `json:"passwords"`
	Length    int                 `json:"length"`
	Count     int                 `json:"count"`
}

// StrengthRequest asks for the strength report of a password.
type StrengthRequest struct {
	Password string `json:"password"`
}

// StrengthResponse is the JSON form of a strength report.
type StrengthResponse struct {
	HasLowercase bool   `json:"has_lowercase"`
	HasUppercase bool   `json:"has_uppercase"`
	HasDigit     bool   `json:"has_digit"`
	HasSymbol    bool   `json:"has_symbol"`
	MinLength    bool   `json:"min_length"`
	GoodLength   bool   `json:"good_length"`
	Length       int    `json:"length"`
	Passed       int    `json:"passed"`
	Rating       string `json:"rating"`
}
