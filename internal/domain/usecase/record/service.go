package record

import (
	coreport "github.com/amirhossein-jamali/multi-manager-coordinator/internal/domain/port/core"
	"github.com/amirhossein-jamali/multi-manager-coordinator/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/multi-manager-coordinator/internal/domain/port/usecase"
)

// RecordUseCase implements the record staging logic
type RecordUseCase struct {
	recordRepo   persistence.RecordRepository
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewRecordUseCase creates a new record use case instance
func NewRecordUseCase(
	recordRepo persistence.RecordRepository,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) usecase.RecordUseCase {
	return &RecordUseCase{
		recordRepo:   recordRepo,
		timeProvider: timeProvider,
		logger:       logger,
	}
}
