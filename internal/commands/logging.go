package commands

import (
	"strings"

	"github.com/bonsa9/portfolio/internal/logging"
	"github.com/bonsa9/portfolio/pkg/interfaces"
)

const commandModuleRoot = "portfolio.commands"

// CommandLogger returns the logger for the named command module,
// e.g. "portfolio.commands.export".
func CommandLogger(provider interfaces.LoggerProvider, module string) interfaces.Logger {
	name := strings.TrimSpace(module)
	if name == "" {
		name = "core"
	}
	logger := logging.ModuleLogger(provider, commandModuleRoot+"."+name)
	return logging.WithFields(logger, map[string]any{
		"component":      "command",
		"command_module": name,
	})
}
