package cmd

// Config carries all environment-driven settings. Values are kept as the
// raw strings read from the environment; consumers parse what they need.
type Config struct {
	HTTPPort   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	JWTSecret     string
	JWTIssuer     string
	JWTAccessTTL  string
	JWTRefreshTTL string

	AdminUsername string
	AdminEmail    string
	AdminPassword string

	DefaultDriverPassword string

	CapacityJobCronSpec string
}
