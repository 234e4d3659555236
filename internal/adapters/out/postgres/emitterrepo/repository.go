package emitterrepo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"pedidos/internal/core/domain/model/emitter"
	"pedidos/internal/core/domain/model/kernel"
	"pedidos/internal/pkg/errs"
)

// GormEmitterRepository implements EmitterRepository using GORM.
type GormEmitterRepository struct {
	db *gorm.DB
}

// NewGormEmitterRepository creates a new GORM emitter repository.
func NewGormEmitterRepository(db *gorm.DB) *GormEmitterRepository {
	return &GormEmitterRepository{db: db}
}

// Get retrieves an emitter by ID.
func (r *GormEmitterRepository) Get(ctx context.Context, id kernel.UUID) (*emitter.Emitter, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto EmitterDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("emitter", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}
