package document

import (
	"context"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/lloydmeta/docsproxy/internal/api/models/common"
	"github.com/lloydmeta/docsproxy/internal/api/models/document"
	domainDocument "github.com/lloydmeta/docsproxy/internal/domain/document"
)

// Controller is an interface that defines the methods that are available to the routing
// layer. It is framework-agnostic
type Controller interface {

	// Create submits the given Document as a new one
	Create(ctx context.Context, doc document.Document) (*document.WriteResult, *common.ApiError)

	// List returns the bodies of all Documents
	List(ctx context.Context) ([]document.Document, *common.ApiError)

	// Update writes the Document under the given id. Any _rev in the Document is taken out of it
	// and sent along as the revision being updated.
	Update(ctx context.Context, id domainDocument.Id, doc document.Document) (*document.WriteResult, *common.ApiError)

	// Delete removes the given revision of a Document
	Delete(ctx context.Context, id domainDocument.Id, rev *domainDocument.Rev) (*document.WriteResult, *common.ApiError)
}

func New(documentsService domainDocument.Service) Controller {
	return &impl{documentsService: documentsService}
}

type impl struct {
	documentsService domainDocument.Service
}

func (c *impl) Create(ctx context.Context, doc document.Document) (*document.WriteResult, *common.ApiError) {
	result, err := c.documentsService.Create(ctx, doc.ToDomain())
	if err != nil {
		return nil, handleErr(err)
	} else {
		r := document.FromDomainWriteResult(result)
		return &r, nil
	}
}

func (c *impl) List(ctx context.Context) ([]document.Document, *common.ApiError) {
	result, err := c.documentsService.List(ctx)
	if err != nil {
		return nil, handleErr(err)
	} else {
		return document.FromDomainDocuments(result), nil
	}
}

func (c *impl) Update(ctx context.Context, id domainDocument.Id, doc document.Document) (*document.WriteResult, *common.ApiError) {
	fields, rev := doc.ToDomain().SplitRev()
	result, err := c.documentsService.Put(ctx, id, rev, fields)
	if err != nil {
		return nil, handleErr(err)
	} else {
		r := document.FromDomainWriteResult(result)
		return &r, nil
	}
}

func (c *impl) Delete(ctx context.Context, id domainDocument.Id, rev *domainDocument.Rev) (*document.WriteResult, *common.ApiError) {
	result, err := c.documentsService.Delete(ctx, id, rev)
	if err != nil {
		return nil, handleErr(err)
	} else {
		r := document.FromDomainWriteResult(result)
		return &r, nil
	}
}

// Every failure of the remote store surfaces the same way, whatever its cause.
func handleErr(err error) *common.ApiError {
	log.Error().Err(err).Msg("Remote store call failed")
	return &common.ApiError{
		StatusCode: http.StatusInternalServerError,
		Body: common.Body{
			Error: err.Error(),
		},
	}
}
