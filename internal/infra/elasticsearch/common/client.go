package common

import (
	"net/http"

	"github.com/elastic/go-elasticsearch/v8"
	"go.elastic.co/apm/module/apmelasticsearch"

	"github.com/lloydmeta/docsproxy/internal/config"
)

// NewClient returns a configured elasticsearch.Client based on the given conf
func NewClient(conf config.Store) (*elasticsearch.Client, error) {
	wrappedTransport := apmelasticsearch.WrapRoundTripper(http.DefaultTransport)
	esClientConfig := elasticsearch.Config{Transport: wrappedTransport}
	if conf.URL != "" {
		esClientConfig.Addresses = []string{conf.URL}
	}
	if conf.ApiKey != "" {
		esClientConfig.APIKey = conf.ApiKey
	} else if conf.User != nil {
		esClientConfig.Username = conf.User.Name
		esClientConfig.Password = conf.User.Password
	}

	esClient, err := elasticsearch.NewClient(esClientConfig)
	if err != nil {
		return nil, err
	} else {
		return esClient, nil
	}
}
