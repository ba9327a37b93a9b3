package unitofwork

import (
	"context"

	"github.com/TanaySingh02/Farmwise2.0/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	FarmerRepository() contract.FarmerRepository
	SchemeRepository() contract.SchemeRepository
	SchemeMatchRepository() contract.SchemeMatchRepository
}
