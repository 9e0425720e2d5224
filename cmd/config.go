package cmd

type Config struct {
	HTTPPort     string
	DBHost       string
	DBPort       string
	DBUser       string
	DBPassword   string
	DBName       string
	DBSslMode    string
	RedisAddr    string
	FCMEndpoint  string
	FCMServerKey string

	// StrictProgression requires drivers to report every intermediate
	// status instead of jumping ahead, e.g. straight from accepted to
	// delivered. Off by default.
	StrictProgression bool
}
