// Package config provides configuration management for the demo service.
//
// Configuration is loaded from environment variables using the env package.
// Only PORT and APP_ENV shape the public behaviour; everything else has a
// default that leaves it untouched.
//
// Example usage:
//
//	cfg, err := config.Load()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	fmt.Printf("HTTP server will listen on %s\n", cfg.GetHTTPAddr())
package config
