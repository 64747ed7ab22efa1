package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"

	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli/v3"

	"github.com/mahyarmirrashed/imgwatch/internal/config"
	"github.com/mahyarmirrashed/imgwatch/internal/notify"
	"github.com/mahyarmirrashed/imgwatch/internal/viewer"
)

// Set at build time: go build -ldflags "-X main.version=1.2.3"
var version = "dev"

func init() {
	// Configure logger to include timestamp and caller (file:line)
	log.SetFormatter(&log.TextFormatter{
		FullTimestamp: true,
		CallerPrettyfier: func(f *runtime.Frame) (string, string) {
			return "", fmt.Sprintf("%s:%d", filepath.Base(f.File), f.Line)
		},
	})
	log.SetReportCaller(true)
	log.SetLevel(log.InfoLevel)
}

// newCommand builds the CLI. Usage goes to out; run is called with the
// parsed configuration.
func newCommand(out io.Writer, run func(*config.Config) error) *cli.Command {
	return &cli.Command{
		Name:      "imgwatch",
		Usage:     "show the newest image of a directory in a fixed window",
		Version:   version,
		ArgsUsage: config.ArgsUsage,
		Writer:    out,
		// Everything is positional; negative window coordinates must not be
		// mistaken for flags.
		SkipFlagParsing: true,
		HideHelp:        true,
		Action: func(ctx context.Context, cmd *cli.Command) error {
			cfg, err := config.Parse(cmd.Args().Slice())
			if errors.Is(err, config.ErrUsage) {
				fmt.Fprintln(out, config.Usage(cmd.Name))
				return nil
			}
			if err != nil {
				return err
			}
			return run(cfg)
		},
	}
}

// startViewer opens the window and blocks until it closes.
func startViewer(cfg *config.Config) error {
	log.Infof("imgwatch %s", version)
	v := viewer.New(cfg, &notify.Desktop{Enabled: true})
	return v.Run()
}

func main() {
	if err := newCommand(os.Stdout, startViewer).Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}
