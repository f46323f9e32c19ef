// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"livewell/internal/domain/repository"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// gormTransactionManager implements the domain's TransactionManager interface using GORM.
type gormTransactionManager struct {
	db *gorm.DB
}

// gormRepositoryFactory implements the domain's RepositoryFactory interface.
// Every repository it hands out shares the one transaction.
type gormRepositoryFactory struct {
	tx *gorm.DB
}

// NewMedicationRepository creates a medication repository bound to the transaction.
func (f *gormRepositoryFactory) NewMedicationRepository() repository.MedicationRepository {
	return NewMedicationRepository(f.tx)
}

// NewVaccinationRepository creates a vaccination repository bound to the transaction.
func (f *gormRepositoryFactory) NewVaccinationRepository() repository.VaccinationRepository {
	return NewVaccinationRepository(f.tx)
}

// NewTransactionManager is the constructor for gormTransactionManager.
func NewTransactionManager(db *gorm.DB) repository.TransactionManager {
	return &gormTransactionManager{db: db}
}

// Execute runs fn in one transaction. Any error from fn, or a panic, rolls it back.
func (tm *gormTransactionManager) Execute(ctx context.Context, fn func(repoFactory repository.RepositoryFactory) error) error {
	err := tm.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&gormRepositoryFactory{tx: tx})
	})
	if err != nil {
		return errors.WithMessage(err, "transaction aborted")
	}

	return nil
}
