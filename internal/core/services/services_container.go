package services

import (
	portsrepo "github.com/pragavigithub/EmeraldBarcode20260113/internal/core/ports/repositories"
	portssvc "github.com/pragavigithub/EmeraldBarcode20260113/internal/core/ports/services"
)

// NewServiceContainer creates a new service container with properly
// initialized dependencies.
func NewServiceContainer(repos portsrepo.RepositoryProvider, gateway portsrepo.ERPGateway) *portssvc.ServiceContainer {
	return &portssvc.ServiceContainer{
		Session:    NewSessionService(repos.SessionRepo, repos.ItemRepo, repos.ActivityLogRepo, gateway),
		QC:         NewQCService(repos.SessionRepo, repos.ItemRepo, repos.ActivityLogRepo),
		Label:      NewLabelService(repos.SessionRepo, repos.ItemRepo, repos.LabelRepo, repos.ActivityLogRepo),
		Transfer:   NewTransferService(repos.SessionRepo, repos.ItemRepo, gateway),
		MasterData: NewMasterDataService(gateway),
	}
}
