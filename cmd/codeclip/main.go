package main

import (
	"fmt"

	"github.com/temirov/codeclip/internal/cli"
	"github.com/temirov/codeclip/internal/utils"
)

const (
	loggerInitializationFailedMessageFormat = "failed to initialize logger: %w"
	applicationExecutionFailedMessage       = "codeclip failed"
)

// main is the entry point for the codeclip command.
func main() {
	loggerInstance, logLevel, loggerInitializationError := utils.NewApplicationLogger()
	if loggerInitializationError != nil {
		panic(fmt.Errorf(loggerInitializationFailedMessageFormat, loggerInitializationError))
	}
	defer loggerInstance.Sync()
	if applicationExecutionError := cli.Execute(loggerInstance, logLevel); applicationExecutionError != nil {
		loggerInstance.Fatal(applicationExecutionFailedMessage + ": " + applicationExecutionError.Error())
	}
}
