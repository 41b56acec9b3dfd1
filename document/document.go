package document

import (
	"context"
	"errors"
	"net/url"

	"github.com/andyle182810/signkit/apiclient"
)

var ErrEmptyDocumentID = errors.New("document: document id is empty")

type Service struct {
	api *apiclient.Client
}

func New(api *apiclient.Client) *Service {
	return &Service{api: api}
}

type RemoveResponse struct {
	Status string `json:"status"`
}

type CancelInvitesResponse struct {
	Status string `json:"status"`
}

// Remove deletes the document. Pending invites survive removal; cancel them
// first with CancelInvites when that is not wanted.
func (s *Service) Remove(ctx context.Context, documentID string) (*RemoveResponse, error) {
	if documentID == "" {
		return nil, ErrEmptyDocumentID
	}

	resp, err := apiclient.DeleteJSON[RemoveResponse](ctx, s.api, "/document/"+url.PathEscape(documentID))
	if err != nil {
		return nil, err
	}

	return &resp, nil
}

// CancelInvites withdraws every outstanding signing invite on the document.
func (s *Service) CancelInvites(ctx context.Context, documentID string) (*CancelInvitesResponse, error) {
	if documentID == "" {
		return nil, ErrEmptyDocumentID
	}

	resp, err := apiclient.PutJSON[CancelInvitesResponse](ctx, s.api,
		"/document/"+url.PathEscape(documentID)+"/cancelinvite", nil)
	if err != nil {
		return nil, err
	}

	return &resp, nil
}
