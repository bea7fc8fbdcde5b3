package document

import (
	"context"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esapi"

	"github.com/lloydmeta/docsproxy/internal/domain/document"
	"github.com/lloydmeta/docsproxy/internal/infra/elasticsearch/common"
)

type esDatabase struct {
	client    *elasticsearch.Client
	indexName common.IndexName
}

// NewDatabase returns a document.Database backed by an ES index
func NewDatabase(client *elasticsearch.Client, indexName string) document.Database {
	return &esDatabase{client: client, indexName: common.IndexName(indexName)}
}

func (d *esDatabase) Name() string {
	return string(d.indexName)
}

func (d *esDatabase) Exists(ctx context.Context) (bool, error) {
	existsReq := esapi.IndicesExistsRequest{
		Index: []string{string(d.indexName)},
	}
	rawResp, err := existsReq.Do(ctx, d.client)
	if err != nil {
		return false, common.ElasticsearchErr{Underlying: err}
	}
	defer rawResp.Body.Close()
	switch rawResp.StatusCode {
	case 200:
		return true, nil
	case 404:
		return false, nil
	default:
		return false, common.UnexpectedEsStatusError(rawResp)
	}
}

func (d *esDatabase) Create(ctx context.Context) error {
	createReq := esapi.IndicesCreateRequest{
		Index: string(d.indexName),
	}
	rawResp, err := createReq.Do(ctx, d.client)
	if err != nil {
		return common.ElasticsearchErr{Underlying: err}
	}
	defer rawResp.Body.Close()
	if rawResp.IsError() {
		return common.UnexpectedEsStatusError(rawResp)
	}
	return nil
}
