package document

import (
	"github.com/lloydmeta/docsproxy/internal/domain/document"
)

// Document is any JSON object. The store manages its _id and _rev fields.
type Document map[string]interface{}

// WriteResult is the store's answer to a create, update or delete
type WriteResult struct {
	Ok  bool   `json:"ok" example:"true"`
	ID  string `json:"id" example:"1f4bb2e0a9c54bd5a12e0c4b2d3f7a90"`
	Rev string `json:"rev" example:"1-967a00dff5e02add41819138abb3284d"`
}

func FromDomainWriteResult(result *document.WriteResult) WriteResult {
	return WriteResult{
		Ok:  result.Ok,
		ID:  string(result.ID),
		Rev: string(result.Rev),
	}
}

func FromDomainDocuments(docs []document.Document) []Document {
	apiDocs := make([]Document, 0, len(docs))
	for _, d := range docs {
		apiDocs = append(apiDocs, Document(d))
	}
	return apiDocs
}

func (d Document) ToDomain() document.Document {
	return document.Document(d)
}
