package store

import "github.com/MKhiriev/go-social/internal/logger"

// Repositories groups the repositories handed to the service layer.
type Repositories struct {
	UserRepository UserRepository
}

// NewRepositories builds every repository over db.
func NewRepositories(db *DB, log *logger.Logger) *Repositories {
	return &Repositories{
		UserRepository: NewUserRepository(db, log),
	}
}
