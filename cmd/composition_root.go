package cmd

import (
	"fmt"
	"log/slog"

	"tracking/internal/adapters/out/filestore"
	"tracking/internal/core/application/usecases/commands"
	"tracking/internal/core/application/usecases/queries"
	"tracking/internal/core/domain/model/fleet"
	"tracking/internal/core/domain/services"
	"tracking/internal/jobs"
)

type CompositionRoot struct {
	registry    *fleet.Registry
	reportStore *filestore.ReportStore
	sensorStore *filestore.SensorStore
	secretStore *filestore.SecretStore
	config      Config
}

func NewCompositionRoot(config Config) (CompositionRoot, error) {
	registry, err := fleet.NewRegistry(config.MovementLogCapacity)
	if err != nil {
		return CompositionRoot{}, fmt.Errorf("failed to create registry: %w", err)
	}

	reportStore, err := filestore.NewReportStore(config.MovementReportsDir)
	if err != nil {
		return CompositionRoot{}, fmt.Errorf("failed to create report store: %w", err)
	}

	sensorStore, err := filestore.NewSensorStore(config.SensorDataDir)
	if err != nil {
		return CompositionRoot{}, fmt.Errorf("failed to create sensor store: %w", err)
	}

	secretStore, err := filestore.NewSecretStore(config.SecretsDir)
	if err != nil {
		return CompositionRoot{}, fmt.Errorf("failed to create secret store: %w", err)
	}

	return CompositionRoot{
		registry:    registry,
		reportStore: reportStore,
		sensorStore: sensorStore,
		secretStore: secretStore,
		config:      config,
	}, nil
}

func (c *CompositionRoot) CreateRegisterUnitCommandHandler() commands.RegisterUnitCommandHandler {
	return commands.NewRegisterUnitCommandHandler(c.registry)
}

func (c *CompositionRoot) CreateMoveUnitCommandHandler() commands.MoveUnitCommandHandler {
	return commands.NewMoveUnitCommandHandler(c.registry)
}

func (c *CompositionRoot) CreateRenameUnitCommandHandler() commands.RenameUnitCommandHandler {
	return commands.NewRenameUnitCommandHandler(c.registry)
}

func (c *CompositionRoot) CreateDecommissionUnitCommandHandler() commands.DecommissionUnitCommandHandler {
	return commands.NewDecommissionUnitCommandHandler(c.registry)
}

func (c *CompositionRoot) CreateFireTorpedoCommandHandler() commands.FireTorpedoCommandHandler {
	return commands.NewFireTorpedoCommandHandler(c.registry, services.NewFireControl())
}

func (c *CompositionRoot) CreateArmUnitCommandHandler() commands.ArmUnitCommandHandler {
	return commands.NewArmUnitCommandHandler(c.registry, c.secretStore)
}

func (c *CompositionRoot) CreateImportMovementReportsCommandHandler() commands.ImportMovementReportsCommandHandler {
	return commands.NewImportMovementReportsCommandHandler(c.registry, c.reportStore)
}

func (c *CompositionRoot) CreateGetUnitReportQueryHandler() queries.GetUnitReportQueryHandler {
	return queries.NewGetUnitReportQueryHandler(c.registry)
}

func (c *CompositionRoot) CreateListUnitReportsQueryHandler() queries.ListUnitReportsQueryHandler {
	return queries.NewListUnitReportsQueryHandler(c.registry)
}

func (c *CompositionRoot) CreateGetMovementLogQueryHandler() queries.GetMovementLogQueryHandler {
	return queries.NewGetMovementLogQueryHandler(c.registry)
}

func (c *CompositionRoot) CreateGetFleetExtremesQueryHandler() queries.GetFleetExtremesQueryHandler {
	return queries.NewGetFleetExtremesQueryHandler(c.registry, services.NewFleetRanking())
}

func (c *CompositionRoot) CreateCountSensorErrorsQueryHandler() queries.CountSensorErrorsQueryHandler {
	return queries.NewCountSensorErrorsQueryHandler(c.registry, c.sensorStore)
}

func (c *CompositionRoot) CreateJobManager(logger *slog.Logger) (*jobs.JobManager, error) {
	return jobs.NewJobManager(
		c.CreateImportMovementReportsCommandHandler(),
		c.config.PatrolCronSpec,
		logger,
	)
}
