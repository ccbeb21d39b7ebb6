package commands

import (
	"strings"

	"github.com/advokati/go-directory/internal/logging"
	"github.com/advokati/go-directory/pkg/interfaces"
)

const commandModuleRoot = "directory.commands"

// CommandLogger returns a module-scoped logger for command handlers with
// structured fields identifying the command module.
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
