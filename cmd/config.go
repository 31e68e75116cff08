package cmd

type Config struct {
	MovementLogCapacity int
	MovementReportsDir  string
	SensorDataDir       string
	SecretsDir          string
	PatrolCronSpec      string
}
