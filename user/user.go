package user

import (
	"context"

	"github.com/andyle182810/signkit/apiclient"
)

const (
	basePath            = "/user"
	verifyEmailPath     = "/user/verifyemail"
	signatureReturnPath = "/user/setting/no_user_signature_return"
)

type Service struct {
	api *apiclient.Client
}

func New(api *apiclient.Client) *Service {
	return &Service{api: api}
}

//nolint:tagliatelle // the service expects snake_case
type CreateRequest struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	FirstName string `json:"first_name,omitempty"`
	LastName  string `json:"last_name,omitempty"`
}

type CreateResponse struct {
	ID       string `json:"id"`
	Verified int    `json:"verified"`
	Email    string `json:"email"`
}

// Create registers a new account. The endpoint authenticates the application
// credentials, not a user token.
func (s *Service) Create(ctx context.Context, req CreateRequest) (*CreateResponse, error) {
	resp, err := apiclient.PostJSON[CreateResponse](ctx, s.api, basePath, req,
		apiclient.WithAuth(apiclient.Basic()))
	if err != nil {
		return nil, err
	}

	return &resp, nil
}

//nolint:tagliatelle // the service returns snake_case
type Details struct {
	ID           string   `json:"id"`
	FirstName    string   `json:"first_name"`
	LastName     string   `json:"last_name"`
	Active       int      `json:"active"`
	Verified     int      `json:"verified"`
	Emails       []string `json:"emails"`
	PrimaryEmail string   `json:"primary_email"`
}

// Retrieve returns the account that owns the client's access token.
func (s *Service) Retrieve(ctx context.Context) (*Details, error) {
	resp, err := apiclient.GetJSON[Details](ctx, s.api, basePath)
	if err != nil {
		return nil, err
	}

	return &resp, nil
}

type VerifyEmailResponse struct {
	Status string `json:"status"`
}

// VerifyEmail asks the service to send a verification mail to the address.
func (s *Service) VerifyEmail(ctx context.Context, email string) (*VerifyEmailResponse, error) {
	body := map[string]string{"email": email}

	resp, err := apiclient.PostJSON[VerifyEmailResponse](ctx, s.api, verifyEmailPath, body,
		apiclient.WithAuth(apiclient.Basic()))
	if err != nil {
		return nil, err
	}

	return &resp, nil
}

type SettingResponse struct {
	Status string `json:"status"`
}

// DisableSignatureReturn stops the service from reusing the account's stored
// signature on future documents.
func (s *Service) DisableSignatureReturn(ctx context.Context) (*SettingResponse, error) {
	resp, err := apiclient.PutJSON[SettingResponse](ctx, s.api, signatureReturnPath, nil)
	if err != nil {
		return nil, err
	}

	return &resp, nil
}
