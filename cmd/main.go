package main

import (
	"io"
	"log"
	"os"

	"github.com/ManouchehrRasoulli/notefs/pkg"
	"github.com/ManouchehrRasoulli/notefs/pkg/filehandler"
	"github.com/ManouchehrRasoulli/notefs/pkg/logger"
	"github.com/ManouchehrRasoulli/notefs/pkg/protocol"
	"github.com/spf13/cobra"
)

// app carries what every command needs once configuration has been read.
type app struct {
	cfg     *pkg.Config
	lg      *log.Logger
	status  *logger.ColorLogger
	printer *logger.ColorLogger
	enc     *protocol.Encoder
	handler *filehandler.Handler
}

var current *app

var rootConfiguration struct {
	config  string
	json    bool
	verbose bool
}

var rootCommand = &cobra.Command{
	Use:               "notefs",
	Short:             "Browse, edit and watch a notes directory",
	PersistentPreRunE: setup,
	SilenceUsage:      true,
	SilenceErrors:     true,
}

func init() {
	flags := rootCommand.PersistentFlags()
	flags.SortFlags = false
	flags.StringVarP(&rootConfiguration.config, "config", "c", pkg.DefaultConfigFile, "specify configuration file")
	flags.BoolVar(&rootConfiguration.json, "json", false, "write json frames, one per line")
	flags.BoolVarP(&rootConfiguration.verbose, "verbose", "v", false, "log filesystem operations to stderr")

	rootCommand.AddCommand(
		treeCommand,
		metaCommand,
		catCommand,
		writeCommand,
		newCommand,
		mkdirCommand,
		rmCommand,
		mvCommand,
		cpCommand,
		watchCommand,
		openCommand,
	)
}

func setup(cmd *cobra.Command, _ []string) error {
	cfg, err := pkg.ReadConfig(rootConfiguration.config, !cmd.Flags().Changed("config"))
	if err != nil {
		return err
	}

	if cfg.Log.Color != nil {
		logger.SetEnabled(*cfg.Log.Color)
	}

	var debug io.Writer = io.Discard
	if rootConfiguration.verbose || cfg.Log.Verbose {
		debug = os.Stderr
	}
	lg := log.New(debug, cfg.Log.Prefix, 1|4)

	current = &app{
		cfg:     cfg,
		lg:      lg,
		status:  logger.NewColorLogger(log.New(os.Stderr, cfg.Log.Prefix, 0)),
		printer: logger.NewColorLogger(log.New(cmd.OutOrStdout(), "", 0)),
		enc:     protocol.NewEncoder(cmd.OutOrStdout()),
		handler: filehandler.NewHandler(lg, filehandler.WithMarkdownContent(cfg.Notes.DefaultContent)),
	}

	return nil
}

// emitPath reports a single resulting path.
func (a *app) emitPath(path string) error {
	if rootConfiguration.json {
		return a.enc.Encode(protocol.PathResult, nil, protocol.PathPayload{Path: path})
	}
	a.printer.Println(path)
	return nil
}

func main() {
	err := rootCommand.Execute()
	if err == nil {
		return
	}

	if rootConfiguration.json && current != nil {
		_ = current.enc.Encode(protocol.Failure, nil, protocol.FailurePayload{Msg: err.Error()})
		os.Exit(1)
	}

	status := logger.NewColorLogger(log.New(os.Stderr, "notefs --> ", 0))
	status.Printcf(logger.ColorRed, "error notefs : %v", err)
	os.Exit(1)
}
