package services

// ServiceError is a typed error carrying the HTTP status code the failure
// maps to. Controllers translate it into the uniform error envelope.
type ServiceError struct {
	StatusCode int
	Message    string
}

func (e *ServiceError) Error() string {
	return e.Message
}
