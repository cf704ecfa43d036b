// Package version reports build information for captionkit binaries.
//
// Values are set at link time and fall back to the module's VCS stamp:
//
//	go build -ldflags "-X github.com/kbukum/captionkit/version.Version=1.2.0" ./cmd/captiond
package version
