package store

import "github.com/MKhiriev/fortuna/internal/logger"

// Storages bundles the repositories built on one [Pool].
type Storages struct {
	Transactor           Transactor
	UserRepository       UserRepository
	SessionRepository    SessionRepository
	WorkspaceRepository  WorkspaceRepository
	ExperimentRepository ExperimentRepository
}

// NewStorages wires every repository to db.
func NewStorages(db *Pool, logger *logger.Logger) *Storages {
	return &Storages{
		Transactor:           db,
		UserRepository:       NewUserRepository(db, logger),
		SessionRepository:    NewSessionRepository(db, logger),
		WorkspaceRepository:  NewWorkspaceRepository(db, logger),
		ExperimentRepository: NewExperimentRepository(db, logger),
	}
}
