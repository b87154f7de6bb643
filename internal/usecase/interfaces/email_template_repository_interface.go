package interfaces

import (
	"context"

	"notesbytes_settlement/internal/domain/entities"
)

// IEmailTemplateRepository reads CMS-managed notification templates.

type IEmailTemplateRepository interface {
	GetByKey(ctx context.Context, key string) (entities.EmailTemplate, error)
}
