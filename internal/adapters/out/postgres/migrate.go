package postgres

import (
	"marketplace/internal/adapters/out/postgres/auditrepo"
	"marketplace/internal/adapters/out/postgres/orderrepo"
	"marketplace/internal/adapters/out/postgres/outboxrepo"
	"marketplace/internal/adapters/out/postgres/verificationrepo"

	"gorm.io/gorm"
)

// Models lists every table the service owns, parents before children.
func Models() []any {
	return []any{
		&verificationrepo.ApplicationDTO{},
		&verificationrepo.DocumentDTO{},
		&verificationrepo.ReviewRecordDTO{},
		&verificationrepo.InfoRequestDTO{},
		&orderrepo.OrderDTO{},
		&orderrepo.StatusHistoryDTO{},
		&auditrepo.EntryDTO{},
		&outboxrepo.MessageDTO{},
	}
}

// Migrate creates or updates the schema.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(Models()...)
}
