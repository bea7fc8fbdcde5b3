package common

// Body models errors as JSON in the API
type Body struct {
	Error string `json:"error" binding:"required" example:"Document update conflict."`
}

type ApiError struct {
	StatusCode int
	Body       Body
}

func (a *ApiError) Error() string {
	return a.Body.Error
}
