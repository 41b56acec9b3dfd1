package apiclient

import (
	"encoding/base64"
	"fmt"

	"github.com/go-playground/validator/v10"
)

const (
	ProductionBaseURL = "https://api.signkit.io"
	SandboxBaseURL    = "https://api-eval.signkit.io"
)

var validate = validator.New()

type Config struct {
	ClientID     string `validate:"required"`
	ClientSecret string `validate:"required"`
	Sandbox      bool
}

func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	return nil
}

func (c Config) BaseURL() string {
	if c.Sandbox {
		return SandboxBaseURL
	}

	return ProductionBaseURL
}

// EncodedCredentials returns base64(client_id:client_secret), the value the
// service expects after "Basic " in the Authorization header.
func (c Config) EncodedCredentials() string {
	return base64.StdEncoding.EncodeToString([]byte(c.ClientID + ":" + c.ClientSecret))
}
