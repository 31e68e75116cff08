// Package commands contains the business operations that modify fleet
// state. Each operation is a validated command value object paired with a
// handler; handlers reach the registry only through the ports.UnitRegistry
// contract. Commands follow a consistent pattern: constructor validation,
// guard check in Handle, then delegation to the domain.
package commands
