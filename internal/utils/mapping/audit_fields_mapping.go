package mapping

import (
	"github.com/SscSPs/advisor_client_app/internal/core/domain"
	"github.com/SscSPs/advisor_client_app/internal/models"
)

// ToModelAuditFields converts a domain AuditFields to a model AuditFields
func ToModelAuditFields(d domain.AuditFields) models.AuditFields {
	return models.AuditFields{
		CreatedDate:  d.CreatedDate,
		ModifiedDate: d.ModifiedDate,
		ModifiedBy:   d.ModifiedBy,
	}
}

// ToDomainAuditFields converts a model AuditFields to a domain AuditFields
func ToDomainAuditFields(m models.AuditFields) domain.AuditFields {
	return domain.AuditFields{
		CreatedDate:  m.CreatedDate,
		ModifiedDate: m.ModifiedDate,
		ModifiedBy:   m.ModifiedBy,
	}
}
