package common

import (
	"fmt"

	"github.com/IBM/cloudant-go-sdk/cloudantv1"
	"github.com/IBM/go-sdk-core/v5/core"

	"github.com/lloydmeta/docsproxy/internal/config"
)

// CloudantErr wraps whatever the Cloudant SDK returned; its message is the service's own
type CloudantErr struct {
	Underlying error
}

func (e CloudantErr) Error() string {
	return e.Underlying.Error()
}

func (e CloudantErr) Unwrap() error {
	return e.Underlying
}

type JsonSerdesErr struct {
	Underlying error
}

func (e JsonSerdesErr) Error() string {
	return fmt.Sprintf("Error working with JSON: %v", e.Underlying)
}

func (e JsonSerdesErr) Unwrap() error {
	return e.Underlying
}

// NewClient returns a configured cloudantv1.CloudantV1 based on the given conf.
//
// An API key means IAM auth (IBM Cloudant), a user means basic auth (plain CouchDB), and
// neither means no auth at all.
func NewClient(conf config.Store) (*cloudantv1.CloudantV1, error) {
	var authenticator core.Authenticator
	switch {
	case conf.ApiKey != "":
		authenticator = &core.IamAuthenticator{ApiKey: conf.ApiKey}
	case conf.User != nil:
		authenticator = &core.BasicAuthenticator{Username: conf.User.Name, Password: conf.User.Password}
	default:
		authenticator = &core.NoAuthAuthenticator{}
	}

	service, err := cloudantv1.NewCloudantV1(&cloudantv1.CloudantV1Options{
		URL:           conf.URL,
		Authenticator: authenticator,
	})
	if err != nil {
		return nil, fmt.Errorf("could not build Cloudant client: %w", err)
	}
	return service, nil
}

// IsStatus returns true if the response is non-nil and has the given status
func IsStatus(response *core.DetailedResponse, status int) bool {
	return response != nil && response.StatusCode == status
}
