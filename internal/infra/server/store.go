package server

import (
	"fmt"

	"github.com/lloydmeta/docsproxy/internal/config"
	"github.com/lloydmeta/docsproxy/internal/domain/document"
	cloudantCommon "github.com/lloydmeta/docsproxy/internal/infra/cloudant/common"
	cloudantDocument "github.com/lloydmeta/docsproxy/internal/infra/cloudant/document"
	esCommon "github.com/lloydmeta/docsproxy/internal/infra/elasticsearch/common"
	esDocument "github.com/lloydmeta/docsproxy/internal/infra/elasticsearch/document"
)

// UnsupportedStoreKind is returned when the configured store kind is not one we know about
type UnsupportedStoreKind struct {
	Kind config.StoreKind
}

func (e UnsupportedStoreKind) Error() string {
	return fmt.Sprintf("Unsupported store kind [%v], expected one of [%v, %v]", e.Kind, config.Cloudant, config.Elasticsearch)
}

// NewStore builds the one client handle to the remote store, and the Service and Database that
// share it. Cloudant is the default.
func NewStore(conf config.Store) (document.Service, document.Database, error) {
	switch conf.Kind {
	case config.Cloudant, "":
		client, err := cloudantCommon.NewClient(conf)
		if err != nil {
			return nil, nil, err
		}
		return cloudantDocument.NewService(client, conf.Database), cloudantDocument.NewDatabase(client, conf.Database), nil
	case config.Elasticsearch:
		client, err := esCommon.NewClient(conf)
		if err != nil {
			return nil, nil, err
		}
		return esDocument.NewService(client, conf.Database), esDocument.NewDatabase(client, conf.Database), nil
	default:
		return nil, nil, UnsupportedStoreKind{Kind: conf.Kind}
	}
}
