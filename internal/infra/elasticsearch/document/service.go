package document

import (
	"bytes"
	"context"
	"encoding/json"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esapi"

	"github.com/lloydmeta/docsproxy/internal/domain/document"
	"github.com/lloydmeta/docsproxy/internal/infra/elasticsearch/common"
)

// Writes wait for a refresh so that they show up in the next List, like they would in Cloudant
var refreshPolicy = "wait_for"

// listLimit is the largest page ES hands out without scrolling
var listLimit = 10000

type EsService struct {
	client    *elasticsearch.Client
	indexName common.IndexName
	genId     func() document.Id // for mocking
}

func NewService(client *elasticsearch.Client, indexName string) document.Service {
	return &EsService{
		client:    client,
		indexName: common.IndexName(indexName),
		genId:     document.GenerateId,
	}
}

func (e *EsService) Create(ctx context.Context, doc document.Document) (*document.WriteResult, error) {
	var docId document.Id
	if id := doc.Id(); id != nil {
		docId = *id
	} else {
		docId = e.genId()
	}

	toPersistBytes, err := json.Marshal(doc.WithoutMetadata())
	if err != nil {
		return nil, common.JsonSerdesErr{Underlying: []error{err}}
	}

	createReq := esapi.CreateRequest{
		Index:      string(e.indexName),
		DocumentID: string(docId),
		Body:       bytes.NewReader(toPersistBytes),
		Refresh:    refreshPolicy,
	}
	rawResp, err := createReq.Do(ctx, e.client)
	if err != nil {
		return nil, common.ElasticsearchErr{Underlying: err}
	}
	defer rawResp.Body.Close()
	return decodeWriteResponse(rawResp)
}

func (e *EsService) List(ctx context.Context) ([]document.Document, error) {
	b, err := json.Marshal(buildListQueryBody(listLimit))
	if err != nil {
		return nil, common.JsonSerdesErr{Underlying: []error{err}}
	}
	searchReq := esapi.SearchRequest{
		Index: []string{string(e.indexName)},
		Body:  bytes.NewReader(b),
	}
	rawResp, err := searchReq.Do(ctx, e.client)
	if err != nil {
		return nil, common.ElasticsearchErr{Underlying: err}
	}
	defer rawResp.Body.Close()

	statusCode := rawResp.StatusCode
	switch {
	case 200 <= statusCode && statusCode <= 299:
		var searchResp esSearchResponse
		if err := json.NewDecoder(rawResp.Body).Decode(&searchResp); err != nil {
			return nil, common.JsonSerdesErr{Underlying: []error{err}}
		}
		docs := make([]document.Document, 0, len(searchResp.Hits.Hits))
		for _, hit := range searchResp.Hits.Hits {
			docs = append(docs, hit.toDomainDocument())
		}
		return docs, nil
	default:
		return nil, common.UnexpectedEsStatusError(rawResp)
	}
}

// Put uses the Index API with optimistic locking data taken from the revision. Without a revision
// the op_type is create, so that an existing Document conflicts instead of being overwritten.
func (e *EsService) Put(ctx context.Context, id document.Id, rev *document.Rev, doc document.Document) (*document.WriteResult, error) {
	// a _rev that could not be read as a revision
	if _, present := doc[document.RevKey]; present && rev == nil {
		return nil, document.InvalidRevision{ID: id}
	}
	toPersistBytes, err := json.Marshal(doc.WithoutMetadata())
	if err != nil {
		return nil, common.JsonSerdesErr{Underlying: []error{err}}
	}

	indexReq := esapi.IndexRequest{
		Index:      string(e.indexName),
		DocumentID: string(id),
		Body:       bytes.NewReader(toPersistBytes),
		Refresh:    refreshPolicy,
	}
	if rev != nil {
		version, err := common.VersionFromRev(id, *rev)
		if err != nil {
			return nil, err
		}
		indexReq.IfSeqNo = esapi.IntPtr(int(version.SeqNum))
		indexReq.IfPrimaryTerm = esapi.IntPtr(int(version.PrimaryTerm))
	} else {
		indexReq.OpType = "create"
	}

	rawResp, err := indexReq.Do(ctx, e.client)
	if err != nil {
		return nil, common.ElasticsearchErr{Underlying: err}
	}
	defer rawResp.Body.Close()
	return decodeWriteResponse(rawResp)
}

func (e *EsService) Delete(ctx context.Context, id document.Id, rev *document.Rev) (*document.WriteResult, error) {
	if rev == nil {
		return nil, document.InvalidRevision{ID: id}
	}
	version, err := common.VersionFromRev(id, *rev)
	if err != nil {
		return nil, err
	}

	deleteReq := esapi.DeleteRequest{
		Index:         string(e.indexName),
		DocumentID:    string(id),
		IfSeqNo:       esapi.IntPtr(int(version.SeqNum)),
		IfPrimaryTerm: esapi.IntPtr(int(version.PrimaryTerm)),
		Refresh:       refreshPolicy,
	}
	rawResp, err := deleteReq.Do(ctx, e.client)
	if err != nil {
		return nil, common.ElasticsearchErr{Underlying: err}
	}
	defer rawResp.Body.Close()
	return decodeWriteResponse(rawResp)
}

func decodeWriteResponse(rawResp *esapi.Response) (*document.WriteResult, error) {
	statusCode := rawResp.StatusCode
	switch {
	case 200 <= statusCode && statusCode <= 299:
		var response common.EsWriteResponse
		if err := json.NewDecoder(rawResp.Body).Decode(&response); err != nil {
			return nil, common.JsonSerdesErr{Underlying: []error{err}}
		}
		result := response.ToWriteResult()
		return &result, nil
	default:
		return nil, common.UnexpectedEsStatusError(rawResp)
	}
}

type jsonObjMap map[string]interface{}

func buildListQueryBody(limit int) jsonObjMap {
	return jsonObjMap{
		"from":                0,
		"size":                limit,
		"seq_no_primary_term": true,
		"sort": []jsonObjMap{
			{
				"_doc": jsonObjMap{
					"order": "asc",
				},
			},
		},
		"query": jsonObjMap{
			"match_all": jsonObjMap{},
		},
	}
}

type esSearchResponse struct {
	Hits struct {
		Hits []esHitDocument `json:"hits"`
	} `json:"hits"`
}

type esHitDocument struct {
	ID          string                 `json:"_id"`
	SeqNum      uint64                 `json:"_seq_no"`
	PrimaryTerm uint64                 `json:"_primary_term"`
	Source      map[string]interface{} `json:"_source"`
}

func (h *esHitDocument) toDomainDocument() document.Document {
	doc := make(document.Document, len(h.Source)+2)
	for k, v := range h.Source {
		doc[k] = v
	}
	version := common.Version{SeqNum: h.SeqNum, PrimaryTerm: h.PrimaryTerm}
	doc[document.IdKey] = h.ID
	doc[document.RevKey] = string(version.Rev())
	return doc
}
