package server

import (
	"context"

	"github.com/rs/zerolog/log"

	"github.com/lloydmeta/docsproxy/internal/domain/document"
)

// Setup abstracts away:
//
// 1. Setting up the remote store for running docsproxy
// 2. Checking that things are set up
type Setup interface {

	// Check returns an error if all the necessary setup is not complete
	Check(ctx context.Context) error

	// RunIfNeeded attempts to run the subroutines necessary, no more no less
	RunIfNeeded(ctx context.Context) error
}

type setupImpl struct {
	database document.Database
}

// NewSetup returns a Setup implementation
func NewSetup(database document.Database) Setup {
	return &setupImpl{database: database}
}

func (i *setupImpl) Check(ctx context.Context) error {
	if exists, err := i.database.Exists(ctx); err != nil {
		return err
	} else if !exists {
		return document.DatabaseNotInstalled{Name: i.database.Name()}
	} else {
		return nil
	}
}

func (i *setupImpl) RunIfNeeded(ctx context.Context) error {
	if err := i.Check(ctx); err != nil {
		if _, notInstalled := err.(document.DatabaseNotInstalled); notInstalled {
			log.Info().Str("database", i.database.Name()).Msg("Creating database")
			if err := i.database.Create(ctx); err != nil {
				log.Error().Err(err).Msg("Could not create database")
				return err
			}
		} else {
			return err
		}
	} else {
		log.Info().Str("database", i.database.Name()).Msg("Database exists, skipping")
	}
	log.Info().Msg("Setup complete")
	return nil
}
