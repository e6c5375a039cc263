package version

// Version is the snaketerm release version. Overridden at build time
// with -ldflags "-X github.com/snaketerm/engine/version.Version=...".
var Version = "dev"
