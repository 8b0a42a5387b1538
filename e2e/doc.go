//go:build e2e

// Package e2e provides end-to-end tests for the site checks.
//
// These tests are isolated from the standard test suite via build tags.
// They require a Chrome browser (auto-downloaded by Rod if not present)
// and are intended for CI pipelines or explicit local testing.
//
// Running E2E tests:
//
//	go test -tags=e2e ./e2e/...
//
// Repeating every scenario, the way a flaky form is hunted down:
//
//	go test -tags=e2e ./e2e/... -iterations=5
//
// Against the live site instead of the local fixture:
//
//	go test -tags=e2e ./e2e/... -site=https://veertec.com
//
// E2E tests use:
//   - Rod for browser automation (Chrome DevTools Protocol)
//   - the contact-fixture server as a hermetic stand-in for the site
//   - pkg/browser and pkg/scenario for the checks themselves
//
// Test isolation:
// Each test starts its own server on a random port and opens its own page.
package e2e
