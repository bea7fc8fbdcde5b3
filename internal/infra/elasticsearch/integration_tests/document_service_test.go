//go:build integration
// +build integration

package integration_tests

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lloydmeta/docsproxy/internal/domain/document"
	esdocument "github.com/lloydmeta/docsproxy/internal/infra/elasticsearch/document"
	"github.com/lloydmeta/docsproxy/internal/infra/server"
)

var ctx = context.Background()

func buildDocumentsService(t *testing.T, index string) document.Service {
	setup := server.NewSetup(esdocument.NewDatabase(esClient, index))
	assert.Error(t, setup.Check(ctx))
	assert.NoError(t, setup.RunIfNeeded(ctx))
	assert.NoError(t, setup.Check(ctx))
	// second run is a no-op
	assert.NoError(t, setup.RunIfNeeded(ctx))
	return esdocument.NewService(esClient, index)
}

func findByName(docs []document.Document, name string) document.Document {
	for _, d := range docs {
		if d["name"] == name {
			return d
		}
	}
	return nil
}

func Test_esDocumentService_lifecycle(t *testing.T) {
	service := buildDocumentsService(t, "lifecycle-test")

	created, err := service.Create(ctx, document.Document{"name": "Alice", "age": 30})
	assert.NoError(t, err)
	assert.True(t, created.Ok)
	assert.NotEmpty(t, created.ID)
	assert.NotEmpty(t, created.Rev)

	docs, err := service.List(ctx)
	assert.NoError(t, err)
	alice := findByName(docs, "Alice")
	if assert.NotNil(t, alice) {
		assert.EqualValues(t, created.ID, alice[document.IdKey])
		assert.EqualValues(t, created.Rev, alice[document.RevKey])
	}

	updated, err := service.Put(ctx, created.ID, &created.Rev, document.Document{"name": "Alice", "age": 31})
	assert.NoError(t, err)
	assert.NotEqual(t, created.Rev, updated.Rev)

	// stale
	_, err = service.Put(ctx, created.ID, &created.Rev, document.Document{"name": "Alice", "age": 32})
	assert.Error(t, err)

	docs, err = service.List(ctx)
	assert.NoError(t, err)
	alice = findByName(docs, "Alice")
	if assert.NotNil(t, alice) {
		assert.EqualValues(t, 31, alice["age"])
	}

	_, err = service.Delete(ctx, created.ID, &created.Rev)
	assert.Error(t, err)
	_, err = service.Delete(ctx, created.ID, nil)
	assert.IsType(t, document.InvalidRevision{}, err)

	deleted, err := service.Delete(ctx, created.ID, &updated.Rev)
	assert.NoError(t, err)
	assert.True(t, deleted.Ok)

	docs, err = service.List(ctx)
	assert.NoError(t, err)
	assert.Nil(t, findByName(docs, "Alice"))
}

func Test_esDocumentService_Put_withoutRev(t *testing.T) {
	service := buildDocumentsService(t, "put-without-rev-test")

	id := document.Id("bob")
	created, err := service.Put(ctx, id, nil, document.Document{"name": "Bob"})
	assert.NoError(t, err)
	assert.EqualValues(t, id, created.ID)

	_, err = service.Put(ctx, id, nil, document.Document{"name": "Bob"})
	assert.Error(t, err)
}

func Test_esDocumentService_Create_withId(t *testing.T) {
	service := buildDocumentsService(t, "create-with-id-test")

	created, err := service.Create(ctx, document.Document{document.IdKey: "carol", "name": "Carol"})
	assert.NoError(t, err)
	assert.EqualValues(t, "carol", created.ID)

	_, err = service.Create(ctx, document.Document{document.IdKey: "carol", "name": "Carol"})
	assert.Error(t, err)
}
