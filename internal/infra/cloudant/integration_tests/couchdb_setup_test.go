//go:build integration
// +build integration

// This package holds a single TestMain method that does setup and teardown
// of a shared CouchDB container for running integration tests against
package integration_tests

import (
	"context"
	"fmt"
	"log"
	"os"
	"testing"

	"github.com/IBM/cloudant-go-sdk/cloudantv1"
	"github.com/ory/dockertest"

	"github.com/lloydmeta/docsproxy/internal/config"
	"github.com/lloydmeta/docsproxy/internal/infra/cloudant/common"
)

// cloudantClient is filled in when TestMain is invoked, after the docker container has been set up
var cloudantClient *cloudantv1.CloudantV1

var storeConfig = config.Store{
	Kind: config.Cloudant,
	User: &config.BasicAuthUser{
		Name:     "admin",
		Password: "passw0rd",
	},
}

func TestMain(m *testing.M) {
	pool, err := dockertest.NewPool("")
	if err != nil {
		log.Fatalf("Could not connect to docker: %s", err)
	}

	options := dockertest.RunOptions{
		Repository: "couchdb",
		Tag:        "3.1.1",
		Env: []string{
			fmt.Sprintf("COUCHDB_USER=%s", storeConfig.User.Name),
			fmt.Sprintf("COUCHDB_PASSWORD=%s", storeConfig.User.Password),
		},
	}
	resource, err := pool.RunWithOptions(&options)
	if err != nil {
		log.Fatalf("Could not start resource: %s", err)
	}
	storeConfig.URL = fmt.Sprintf("http://localhost:%s", resource.GetPort("5984/tcp"))

	// the system databases are only there once CouchDB is ready to serve requests
	if err := pool.Retry(func() error {
		var err error
		cloudantClient, err = common.NewClient(storeConfig)
		if err != nil {
			return err
		}
		options := cloudantClient.NewPutDatabaseOptions("_users")
		_, resp, err := cloudantClient.PutDatabaseWithContext(context.Background(), options)
		if err != nil && !common.IsStatus(resp, 412) {
			return err
		}
		return nil
	}); err != nil {
		log.Fatalf("Could not connect to docker: %s", err)
	}

	code := m.Run()

	// You can't defer this because os.Exit doesn't care for defer
	if err := pool.Purge(resource); err != nil {
		log.Fatalf("Could not purge resource: %s", err)
	}

	os.Exit(code)
}
