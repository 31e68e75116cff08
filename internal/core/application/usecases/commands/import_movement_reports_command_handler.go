package commands

import (
	"context"
	"errors"

	"tracking/internal/core/domain/model/kernel"
	"tracking/internal/core/ports"
	"tracking/internal/pkg/errs"
)

// ImportSummary describes the outcome of one movement report import run.
type ImportSummary struct {
	// Registered counts units newly created during the run.
	Registered int
	// Applied counts movements successfully applied.
	Applied int
	// Skipped counts report entries that were dropped: serials failing the
	// format rule and movements with unknown directions.
	Skipped int
}

// ImportMovementReportsCommandHandler registers units from queued movement
// reports and applies the reported movements. Bad entries are skipped, not
// fatal: one corrupt report file must not block the rest of the batch.
type ImportMovementReportsCommandHandler struct {
	registry ports.UnitRegistry
	store    ports.MovementReportStore
}

// NewImportMovementReportsCommandHandler creates a handler for movement
// report imports.
func NewImportMovementReportsCommandHandler(
	registry ports.UnitRegistry,
	store ports.MovementReportStore,
) ImportMovementReportsCommandHandler {
	return ImportMovementReportsCommandHandler{
		registry: registry,
		store:    store,
	}
}

// Handle runs the import. Serials already registered keep their current
// state and only receive the queued movements. Only store access failures
// abort the run.
func (h ImportMovementReportsCommandHandler) Handle(
	_ context.Context,
	cmd ImportMovementReportsCommand,
) (ImportSummary, error) {
	if err := cmd.Validate(); err != nil {
		return ImportSummary{}, err
	}

	values, err := h.store.ListSerials()
	if err != nil {
		return ImportSummary{}, err
	}

	var summary ImportSummary
	base, err := kernel.NewPosition(0, 0)
	if err != nil {
		return ImportSummary{}, err
	}

	for _, value := range values {
		serial, err := kernel.NewSerial(value)
		if err != nil {
			summary.Skipped++
			continue
		}

		if _, err := h.registry.Report(serial); err != nil {
			if _, err := h.registry.Register(serial, base); err != nil {
				return summary, err
			}
			summary.Registered++
		}

		applied, skipped, err := h.applyMovements(serial)
		summary.Applied += applied
		summary.Skipped += skipped
		if err != nil {
			return summary, err
		}
	}

	return summary, nil
}

func (h ImportMovementReportsCommandHandler) applyMovements(serial kernel.Serial) (applied, skipped int, err error) {
	movements, err := h.store.Movements(serial)
	if err != nil {
		return 0, 0, err
	}

	for _, movement := range movements {
		heading, err := kernel.ParseHeading(movement.Direction)
		if err != nil {
			skipped++
			continue
		}

		if _, err := h.registry.Move(serial, heading, movement.Distance); err != nil {
			// A rejected movement value is one more bad line, not a reason
			// to abandon the batch.
			if errors.Is(err, errs.ErrValueIsInvalid) {
				skipped++
				continue
			}
			return applied, skipped, err
		}
		applied++
	}

	return applied, skipped, nil
}
