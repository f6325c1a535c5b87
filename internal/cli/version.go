package cli

// Version is printed by --version. Release builds set it with
// -ldflags "-X github.com/fsmiamoto/quokka-say/internal/cli.Version=v1.2.3".
var Version = "dev"
