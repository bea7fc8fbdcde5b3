package document

import (
	"context"
	"net/http"

	"github.com/IBM/cloudant-go-sdk/cloudantv1"

	"github.com/lloydmeta/docsproxy/internal/domain/document"
	"github.com/lloydmeta/docsproxy/internal/infra/cloudant/common"
)

type cloudantDatabase struct {
	client *cloudantv1.CloudantV1
	dbName string
}

// NewDatabase returns a document.Database backed by a Cloudant database
func NewDatabase(client *cloudantv1.CloudantV1, dbName string) document.Database {
	return &cloudantDatabase{client: client, dbName: dbName}
}

func (d *cloudantDatabase) Name() string {
	return d.dbName
}

func (d *cloudantDatabase) Exists(ctx context.Context) (bool, error) {
	getDatabaseInformationOptions := d.client.NewGetDatabaseInformationOptions(d.dbName)
	_, response, err := d.client.GetDatabaseInformationWithContext(ctx, getDatabaseInformationOptions)
	if err != nil {
		if common.IsStatus(response, http.StatusNotFound) {
			return false, nil
		}
		return false, common.CloudantErr{Underlying: err}
	}
	return true, nil
}

func (d *cloudantDatabase) Create(ctx context.Context) error {
	putDatabaseOptions := d.client.NewPutDatabaseOptions(d.dbName)
	if _, _, err := d.client.PutDatabaseWithContext(ctx, putDatabaseOptions); err != nil {
		return common.CloudantErr{Underlying: err}
	}
	return nil
}
