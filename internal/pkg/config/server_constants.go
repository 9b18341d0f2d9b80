package config

// Server and proxy defaults. The port numbers mirror the deployment
// topology: the edge listens on 8000, the application server on 9000.
const (
	DefaultAppPort    = "9000"
	DefaultListenPort = "8000"
	DefaultAppHost    = "app"
)

// Shared volume layout. The application writes beneath /vol/web and the
// edge serves the same tree mounted at /vol/static.
const (
	DefaultStaticDir    = "/vol/static"
	DefaultStaticRoot   = "/vol/web/static"
	DefaultMediaRoot    = "/vol/web/media"
	DefaultStaticSource = "./static"
)

// Auth defaults
const (
	DefaultTokenTTLHours = 24
)

// Rate limiting defaults for the credential endpoints
const (
	DefaultRateLimitRequests = 10
	DefaultRateLimitWindow   = 60
)

// DefaultMaxBodyMB caps request bodies at the edge, matching the upload
// limit the previous front proxy enforced.
const DefaultMaxBodyMB = 10
