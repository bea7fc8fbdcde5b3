package config

import "time"

type TopLevel struct {
	Docsproxy Docsproxy `json:"docsproxy" mapstructure:"docsproxy"`
}

type Docsproxy struct {
	Server App `json:"server" mapstructure:"server"`
}

type App struct {
	BindHost        string        `json:"bind_host" mapstructure:"bind_host"`
	Port            uint          `json:"port" mapstructure:"port"`
	ShutdownTimeout time.Duration `json:"shutdown_timeout" mapstructure:"shutdown_timeout"`
	AutoSetup       bool          `json:"auto_setup" mapstructure:"auto_setup"`
	Store           Store         `json:"store" mapstructure:"store"`
	ApmClient       *ApmClient    `json:"apm,omitempty" mapstructure:"apm"`
	Logging         *Logging      `json:"logging,omitempty" mapstructure:"logging"`
}

type StoreKind string

const (
	Cloudant      StoreKind = "cloudant"
	Elasticsearch StoreKind = "elasticsearch"
)

// Store holds what is needed to reach the remote document store.
//
// Database is a Cloudant database name, or an index name for Elasticsearch.
type Store struct {
	Kind     StoreKind      `json:"kind" mapstructure:"kind"`
	URL      string         `json:"url" mapstructure:"url"`
	ApiKey   string         `json:"api_key,omitempty" mapstructure:"api_key"`
	User     *BasicAuthUser `json:"user,omitempty" mapstructure:"user"`
	Database string         `json:"database" mapstructure:"database"`
}

type Logging struct {
	Json  *bool   `json:"json,omitempty" mapstructure:"json"`
	File  *string `json:"file,omitempty" mapstructure:"file"`
	Level *string `json:"level,omitempty" mapstructure:"level"`
}

type ApmClient struct {
	Address     *string `json:"address,omitempty" mapstructure:"address"`
	SecretToken *string `json:"secret_token,omitempty" mapstructure:"secret_token"`
}

type BasicAuthUser struct {
	Name     string `json:"name" mapstructure:"name"`
	Password string `json:"password" mapstructure:"password"`
}
