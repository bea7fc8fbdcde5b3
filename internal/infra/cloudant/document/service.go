package document

import (
	"bytes"
	"context"
	"encoding/json"
	"io"

	"github.com/IBM/cloudant-go-sdk/cloudantv1"

	"github.com/lloydmeta/docsproxy/internal/domain/document"
	"github.com/lloydmeta/docsproxy/internal/infra/cloudant/common"
)

var jsonContentType = "application/json"

type CloudantService struct {
	client *cloudantv1.CloudantV1
	dbName string
}

func NewService(client *cloudantv1.CloudantV1, dbName string) document.Service {
	return &CloudantService{client: client, dbName: dbName}
}

func (s *CloudantService) Create(ctx context.Context, doc document.Document) (*document.WriteResult, error) {
	body, err := jsonBody(doc)
	if err != nil {
		return nil, err
	}
	postDocumentOptions := s.client.NewPostDocumentOptions(s.dbName).
		SetBody(body).
		SetContentType(jsonContentType)

	result, _, err := s.client.PostDocumentWithContext(ctx, postDocumentOptions)
	if err != nil {
		return nil, common.CloudantErr{Underlying: err}
	}
	return toWriteResult(result), nil
}

func (s *CloudantService) List(ctx context.Context) ([]document.Document, error) {
	postAllDocsOptions := s.client.NewPostAllDocsOptions(s.dbName).
		SetIncludeDocs(true)

	result, _, err := s.client.PostAllDocsWithContext(ctx, postAllDocsOptions)
	if err != nil {
		return nil, common.CloudantErr{Underlying: err}
	}
	docs := make([]document.Document, 0, len(result.Rows))
	for _, row := range result.Rows {
		if row.Doc == nil {
			continue
		}
		doc, err := fromCloudantDocument(row.Doc)
		if err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}
	return docs, nil
}

// Put sends the revision inside the body, as _rev, which is where Cloudant checks it
func (s *CloudantService) Put(ctx context.Context, id document.Id, rev *document.Rev, doc document.Document) (*document.WriteResult, error) {
	body, err := jsonBody(doc.WithRev(rev))
	if err != nil {
		return nil, err
	}
	putDocumentOptions := s.client.NewPutDocumentOptions(s.dbName, string(id)).
		SetBody(body).
		SetContentType(jsonContentType)

	result, _, err := s.client.PutDocumentWithContext(ctx, putDocumentOptions)
	if err != nil {
		return nil, common.CloudantErr{Underlying: err}
	}
	return toWriteResult(result), nil
}

func (s *CloudantService) Delete(ctx context.Context, id document.Id, rev *document.Rev) (*document.WriteResult, error) {
	deleteDocumentOptions := s.client.NewDeleteDocumentOptions(s.dbName, string(id))
	if rev != nil {
		deleteDocumentOptions.SetRev(string(*rev))
	}

	result, _, err := s.client.DeleteDocumentWithContext(ctx, deleteDocumentOptions)
	if err != nil {
		return nil, common.CloudantErr{Underlying: err}
	}
	return toWriteResult(result), nil
}

func jsonBody(doc document.Document) (io.ReadCloser, error) {
	b, err := json.Marshal(doc)
	if err != nil {
		return nil, common.JsonSerdesErr{Underlying: err}
	}
	return io.NopCloser(bytes.NewReader(b)), nil
}

func toWriteResult(result *cloudantv1.DocumentResult) *document.WriteResult {
	writeResult := document.WriteResult{}
	if result == nil {
		return &writeResult
	}
	if result.Ok != nil {
		writeResult.Ok = *result.Ok
	}
	if result.ID != nil {
		writeResult.ID = document.Id(*result.ID)
	}
	if result.Rev != nil {
		writeResult.Rev = document.Rev(*result.Rev)
	}
	return &writeResult
}

// The SDK's Document knows how to render its extra properties, so a trip through JSON gives
// back the body as it was stored.
func fromCloudantDocument(cloudantDoc *cloudantv1.Document) (document.Document, error) {
	b, err := json.Marshal(cloudantDoc)
	if err != nil {
		return nil, common.JsonSerdesErr{Underlying: err}
	}
	var doc document.Document
	if err := json.Unmarshal(b, &doc); err != nil {
		return nil, common.JsonSerdesErr{Underlying: err}
	}
	return doc, nil
}
