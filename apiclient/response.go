package apiclient

//nolint:tagliatelle // the service returns snake_case
type ErrorPayload struct {
	Code             string `json:"error"`
	ErrorDescription string `json:"error_description"`
	Message          string `json:"message"`
}

// Detail returns the most specific error text the payload carries.
func (p ErrorPayload) Detail() string {
	if p.ErrorDescription != "" {
		return p.ErrorDescription
	}

	if p.Message != "" {
		return p.Message
	}

	return p.Code
}
