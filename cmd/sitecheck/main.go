// sitecheck runs the homepage and contact form checks against a live site.
//
// Usage:
//
//	sitecheck run                                  # production site, one iteration
//	sitecheck run --url http://localhost:8080 --title '^Contact Fixture$'
//	sitecheck run --config sitecheck.yaml --iterations 5
package main

import "os"

var version = "dev"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		// Cobra prints the error, we just exit non-zero
		os.Exit(1)
	}
}
