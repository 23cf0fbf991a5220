// Package cli provides the command line interface.
package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/temirov/codeclip/internal/collector"
	"github.com/temirov/codeclip/internal/config"
	"github.com/temirov/codeclip/internal/output"
	"github.com/temirov/codeclip/internal/services/clipboard"
	"github.com/temirov/codeclip/internal/tokenizer"
	"github.com/temirov/codeclip/internal/types"
	"github.com/temirov/codeclip/internal/utils"
)

const (
	rootUse              = "codeclip <root>"
	rootShortDescription = "copy a filtered source tree to the clipboard as Markdown"
	rootLongDescription  = `codeclip scans a directory, keeps the files that pass the filters, and copies
a Markdown document with the directory tree and every file's content to the clipboard.
Every flag can also be supplied through a CODECLIP_* environment variable, for example
CODECLIP_MAX_SIZE=100 or CODECLIP_EXCLUDE=node_modules,venv. Flags win over the environment.`
	rootUsageExample = `  # Copy Python and JavaScript sources, skipping dependencies
  codeclip ~/projects/app --extensions py,js --exclude node_modules,venv --max-size 100

  # Print two levels of a repository with token estimates
  codeclip . --max-depth 2 --tokens --print`

	extensionsFlagDescription = "comma-separated file extensions to include (default: all)"
	excludeFlagDescription    = "comma-separated directory names to skip at any depth"
	ignoreFlagDescription     = "glob pattern of paths to skip; repeatable"
	maxSizeFlagDescription    = "maximum file size in KB"
	maxDepthFlagDescription   = "maximum directory depth below the root (default: unbounded)"
	hiddenFlagDescription     = "include files and directories whose names begin with a dot"
	tokensFlagDescription     = "estimate token counts for each file"
	modelFlagDescription      = "tokenizer model used for token counting"
	printFlagDescription      = "write the document to standard output instead of the clipboard"
	noFallbackFlagDescription = "fail instead of printing the document when the clipboard is unavailable"
	versionFlagDescription    = "display application version"
	verboseFlagDescription    = "log skipped entries"

	versionFlagName = "version"
	verboseFlagName = "verbose"
	versionTemplate = "codeclip version: %s\n"

	tokenizerInitializationErrorFormat = "initialize tokenizer for %s: %w"
	writeDocumentErrorFormat           = "write document: %w"
	clipboardFallbackMessage           = "clipboard unavailable; printing document to standard output"
)

// Dependencies are the process-level collaborators of a run.
type Dependencies struct {
	Logger     *zap.Logger
	LogLevel   *zap.AtomicLevel
	Copier     clipboard.Copier
	NewCounter func(tokenizer.Config) (tokenizer.Counter, string, error)
	Stdout     io.Writer
	Stderr     io.Writer
}

func (dependencies Dependencies) withDefaults() Dependencies {
	if dependencies.Logger == nil {
		dependencies.Logger = zap.NewNop()
	}
	if dependencies.Copier == nil {
		dependencies.Copier = clipboard.NewService()
	}
	if dependencies.NewCounter == nil {
		dependencies.NewCounter = tokenizer.NewCounter
	}
	if dependencies.Stdout == nil {
		dependencies.Stdout = os.Stdout
	}
	if dependencies.Stderr == nil {
		dependencies.Stderr = os.Stderr
	}
	return dependencies
}

// Execute runs codeclip with the process arguments.
func Execute(logger *zap.Logger, level zap.AtomicLevel) error {
	return Run(os.Args[1:], Dependencies{Logger: logger, LogLevel: &level})
}

// Run executes one codeclip invocation with arguments.
func Run(arguments []string, dependencies Dependencies) error {
	if arguments == nil {
		arguments = []string{}
	}
	rootCommand := NewRootCommand(dependencies)
	rootCommand.SetArgs(normalizeBooleanFlagArguments(rootCommand.Flags(), arguments))
	return rootCommand.Execute()
}

// NewRootCommand builds the codeclip Cobra command.
func NewRootCommand(dependencies Dependencies) *cobra.Command {
	dependencies = dependencies.withDefaults()
	var showVersion bool
	var verbose bool
	var includeHidden, countTokens, printOnly, noFallback bool

	rootCommand := &cobra.Command{
		Use:           rootUse,
		Short:         rootShortDescription,
		Long:          rootLongDescription,
		Example:       rootUsageExample,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args: func(command *cobra.Command, arguments []string) error {
			if showVersion {
				return nil
			}
			if argumentsError := cobra.ExactArgs(1)(command, arguments); argumentsError != nil {
				return &types.UsageError{Message: argumentsError.Error(), Err: argumentsError}
			}
			return nil
		},
		RunE: func(command *cobra.Command, arguments []string) error {
			if showVersion {
				fmt.Fprintf(dependencies.Stdout, versionTemplate, utils.GetApplicationVersion())
				return nil
			}
			if verbose && dependencies.LogLevel != nil {
				dependencies.LogLevel.SetLevel(zap.DebugLevel)
			}
			options, readError := config.ReadOptions(arguments[0], command.Flags())
			if readError != nil {
				return readError
			}
			configuration, parseError := config.Parse(options)
			if parseError != nil {
				return parseError
			}
			return runCollection(configuration, dependencies)
		},
	}
	rootCommand.SetFlagErrorFunc(func(command *cobra.Command, flagError error) error {
		return &types.UsageError{Message: flagError.Error(), Err: flagError}
	})

	flagSet := rootCommand.Flags()
	flagSet.StringP(config.ExtensionsKey, "e", "", extensionsFlagDescription)
	flagSet.StringP(config.ExcludeKey, "x", "", excludeFlagDescription)
	flagSet.StringArrayP(config.IgnoreKey, "i", nil, ignoreFlagDescription)
	flagSet.IntP(config.MaxSizeKey, "s", config.DefaultMaxSizeKB, maxSizeFlagDescription)
	registerDepthFlag(flagSet, config.MaxDepthKey, "d", maxDepthFlagDescription)
	registerBooleanFlag(flagSet, &includeHidden, config.HiddenKey, "", hiddenFlagDescription)
	registerBooleanFlag(flagSet, &countTokens, config.TokensKey, "", tokensFlagDescription)
	flagSet.String(config.ModelKey, config.DefaultTokenModel, modelFlagDescription)
	registerBooleanFlag(flagSet, &printOnly, config.PrintKey, "p", printFlagDescription)
	registerBooleanFlag(flagSet, &noFallback, config.NoFallbackKey, "", noFallbackFlagDescription)
	flagSet.BoolVar(&showVersion, versionFlagName, false, versionFlagDescription)
	flagSet.BoolVarP(&verbose, verboseFlagName, "v", false, verboseFlagDescription)
	return rootCommand
}

// runCollection performs collection, rendering, and delivery for configuration.
func runCollection(configuration config.Configuration, dependencies Dependencies) error {
	var tokenCounter tokenizer.Counter
	var tokenModel string
	if configuration.CountTokens() {
		counter, resolvedModel, counterError := dependencies.NewCounter(tokenizer.Config{Model: configuration.TokenModel()})
		if counterError != nil {
			return fmt.Errorf(tokenizerInitializationErrorFormat, configuration.TokenModel(), counterError)
		}
		tokenCounter, tokenModel = counter, resolvedModel
	}

	result, collectError := collector.New(dependencies.Logger, tokenCounter).Collect(configuration)
	if collectError != nil {
		return collectError
	}

	document := output.DocumentFormatter{ShowTokens: tokenCounter != nil}.Format(result.Tree, result.Entries)
	summary := output.Summarize(configuration.Root(), result.Entries, result.Oversized, len(result.Warnings), tokenModel)
	filters := configuration.Describe()

	if configuration.PrintOnly() {
		return printDocument(document, summary, filters, dependencies)
	}

	copyError := dependencies.Copier.Copy(document)
	if copyError == nil {
		output.WriteSummary(dependencies.Stdout, summary, output.DestinationClipboard, filters)
		return nil
	}
	var clipboardError *types.ClipboardError
	if !errors.As(copyError, &clipboardError) {
		clipboardError = &types.ClipboardError{Err: copyError}
	}
	if !configuration.ClipboardFallback() {
		return clipboardError
	}
	dependencies.Logger.Warn(clipboardFallbackMessage, zap.Error(clipboardError))
	return printDocument(document, summary, filters, dependencies)
}

// printDocument writes the document verbatim to standard output and the summary
// to standard error so that the document can be piped.
func printDocument(document string, summary types.OutputSummary, filters string, dependencies Dependencies) error {
	if _, writeError := io.WriteString(dependencies.Stdout, document); writeError != nil {
		return fmt.Errorf(writeDocumentErrorFormat, writeError)
	}
	output.WriteSummary(dependencies.Stderr, summary, output.DestinationStandardOutput, filters)
	return nil
}
