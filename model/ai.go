package model

// Inputs for the AI gateway proxy endpoints. Length limits guard the gateway:
// 50k characters of source text, 200 for the single-line fields.

type OptimizeTextInput struct {
	Text     string  `json:"text" validate:"required,max=50000"`
	Keyword  string  `json:"keyword" validate:"max=200"`
	Title    string  `json:"title" validate:"required,max=200"`
	Model    *string `json:"model"`
	MaxWords *int    `json:"maxWords" validate:"omitempty,gt=0,lte=1000"`
}

type GenerateAltTextInput struct {
	ImageUrl string  `json:"imageUrl" validate:"required,url"`
	Title    string  `json:"title" validate:"required,max=200"`
	Subtitle *string `json:"subtitle" validate:"omitempty,max=200"`
}
