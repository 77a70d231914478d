package service

import "github.com/alexanderramin/teamlens/internal/app"

type DashboardService interface {
	app.DashboardUseCase
}

type ImportService interface {
	app.ImportSnapshotUseCase
}

type PersonaService interface {
	app.PersonaUseCase
}
