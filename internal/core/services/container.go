package services

import (
	"github.com/SscSPs/bank_account_kata/internal/core/domain"
	portsrepo "github.com/SscSPs/bank_account_kata/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/bank_account_kata/internal/core/ports/services"
)

// NewContainer creates a new service container with properly initialized dependencies
func NewContainer(repos *portsrepo.RepositoryProvider, writer domain.StatementWriter) *portssvc.ServiceContainer {
	return &portssvc.ServiceContainer{
		Account: NewAccountService(
			repos.AccountRepo,
			WithStatementWriter(writer),
		),
	}
}
