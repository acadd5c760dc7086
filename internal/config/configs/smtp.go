package configs

// SMTP configures the outbound mail server used for anomaly alerts. With
// empty User and Password the connection is unauthenticated, which suits
// local relays like mailhog.
type SMTP struct {
	Host     string `env:"HOST" envDefault:"localhost"`
	Port     int    `env:"PORT" envDefault:"1025"`
	User     string `env:"USER"`
	Password string `env:"PASSWORD"`
	// From is the sender address on alert emails.
	From string `env:"FROM" envDefault:"alerts@example.com"`
	// To is the recipient of alert emails.
	To string `env:"TO" envDefault:"marketing@example.com"`
}
