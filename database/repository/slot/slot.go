package slotRepo

import (
	"context"

	"doctorportal/models"
)

// SlotTemplateRepository exposes the treatment catalog. Templates are
// date-independent and seeded outside this service, so reads only.
type SlotTemplateRepository interface {
	GetAll(ctx context.Context) ([]models.SlotTemplate, error)
}
