package handler

type teamRequest struct {
	Name string `json:"name" validate:"required,min=3"`
}
