package graph

// Config holds configuration for the Microsoft Graph connection.
type Config struct {
	// TenantID is the directory (tenant) ID the app is registered in.
	TenantID string `mapstructure:"tenant_id" default:""`
	// ClientID is the application (client) ID.
	ClientID string `mapstructure:"client_id" default:""`
	// ClientSecret is the client secret used for the client-credentials grant.
	ClientSecret string `mapstructure:"client_secret" default:""`
	// BaseURL is the Graph API base. Overridable for tests.
	BaseURL string `mapstructure:"base_url" default:"https://graph.microsoft.com/v1.0"`
	// TimeoutSeconds is the per-request timeout in seconds.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"30"`
}
