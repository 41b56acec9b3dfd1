package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/andyle182810/signkit/apiclient"
	"github.com/andyle182810/signkit/document"
	"github.com/andyle182810/signkit/oauthtoken"
)

const removeDocumentArgCount = 5

const (
	envClientID     = "SIGNKIT_CLIENT_ID"
	envClientSecret = "SIGNKIT_CLIENT_SECRET"
	envUsername     = "SIGNKIT_USERNAME"
	envPassword     = "SIGNKIT_PASSWORD"
)

var errMissingCredential = errors.New("missing credential")

type removeParams struct {
	clientID     string
	clientSecret string
	username     string
	password     string
	documentID   string
}

// resolveRemoveParams accepts either all five positionals or the document id
// alone, with client credentials and account login taken from the
// environment (godotenv has already folded an optional .env into it).
func resolveRemoveParams(args []string, getenv func(string) string) (removeParams, error) {
	if len(args) == removeDocumentArgCount {
		return removeParams{
			clientID:     args[0],
			clientSecret: args[1],
			username:     args[2],
			password:     args[3],
			documentID:   args[4],
		}, nil
	}

	params := removeParams{
		clientID:     getenv(envClientID),
		clientSecret: getenv(envClientSecret),
		username:     getenv(envUsername),
		password:     getenv(envPassword),
		documentID:   args[0],
	}

	for key, value := range map[string]string{
		envClientID:     params.clientID,
		envClientSecret: params.clientSecret,
		envUsername:     params.username,
		envPassword:     params.password,
	} {
		if value == "" {
			return removeParams{}, fmt.Errorf("%w: pass all %d positional arguments or set %s",
				errMissingCredential, removeDocumentArgCount, key)
		}
	}

	return params, nil
}

func validateRemoveArgs(_ *cobra.Command, args []string) error {
	if len(args) != 1 && len(args) != removeDocumentArgCount {
		return fmt.Errorf("accepts DOCUMENT_ID alone (credentials from environment) or all %d arguments, received %d",
			removeDocumentArgCount, len(args))
	}

	return nil
}

func newRemoveDocumentCmd() *cobra.Command {
	var (
		cancelInvites bool
		useSandbox    bool
	)

	cmd := &cobra.Command{
		Use:   "remove-document [CLIENT_ID CLIENT_SECRET USERNAME PASSWORD] DOCUMENT_ID [flags]",
		Short: "Remove a document, optionally cancelling its pending invites first",
		Long: `Remove a document. Acquires a password-grant access token for the given
account, then deletes the document by id.

Credentials may be given as positional arguments or through the environment
(SIGNKIT_CLIENT_ID, SIGNKIT_CLIENT_SECRET, SIGNKIT_USERNAME, SIGNKIT_PASSWORD),
including from a .env file in the working directory.

Examples:
  # Remove a document in production
  signkit remove-document CLIENT_ID CLIENT_SECRET user@example.com secret 0123abcd

  # Credentials from the environment or .env
  signkit remove-document 0123abcd

  # Cancel pending invites first, against the sandbox environment
  signkit remove-document 0123abcd --cancel-invites --dev`,
		Args: validateRemoveArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return removeDocument(cmd, args, cancelInvites, useSandbox)
		},
	}

	cmd.Flags().BoolVar(&cancelInvites, "cancel-invites", false,
		"Cancel pending invites before removing the document")
	cmd.Flags().BoolVar(&useSandbox, "dev", false,
		"Target the sandbox environment instead of production")

	return cmd
}

func removeDocument(cmd *cobra.Command, args []string, cancelInvites, useSandbox bool) error {
	params, err := resolveRemoveParams(args, os.Getenv)
	if err != nil {
		return err
	}

	cfg := apiclient.Config{
		ClientID:     params.clientID,
		ClientSecret: params.clientSecret,
		Sandbox:      useSandbox,
	}

	tokens := oauthtoken.New(cfg)
	provider := oauthtoken.NewCachedProvider(tokens, params.username, params.password)

	api, err := apiclient.New(cfg, apiclient.WithTokenProvider(provider))
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	docs := document.New(api)

	if cancelInvites {
		log.Debug().Str("document_id", params.documentID).Msg("cancelling pending invites")

		if _, err := docs.CancelInvites(ctx, params.documentID); err != nil {
			return err
		}
	}

	log.Debug().Str("document_id", params.documentID).Bool("sandbox", useSandbox).Msg("removing document")

	resp, err := docs.Remove(ctx, params.documentID)
	if err != nil {
		return err
	}

	if err := json.NewEncoder(os.Stdout).Encode(resp); err != nil {
		return err
	}

	_, _ = okLabel.Fprintln(os.Stderr, "Document removed")

	return nil
}
