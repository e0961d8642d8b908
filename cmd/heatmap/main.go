package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/lintang-b-s/gps-heatmap/pkg/di"
	"github.com/lintang-b-s/gps-heatmap/pkg/output"

	"github.com/spf13/viper"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
)

func main() {
	log.SetFlags(0)
	app := &cli.App{
		Name:  "heatmap",
		Usage: "Merge GPX/TCX tracks into one de-duplicated set of polylines",
		Commands: []*cli.Command{
			buildCommand(),
			serveCommand(),
		},
	}
	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

// bindFlags copies every flag the user set into viper so that flags win over
// config.yaml and the environment.
func bindFlags(c *cli.Context, keys map[string]string) {
	for flag, key := range keys {
		if c.IsSet(flag) {
			viper.Set(key, c.Value(flag))
		}
	}
}

func signalContext(c *cli.Context) (context.Context, context.CancelFunc) {
	return signal.NotifyContext(c.Context, os.Interrupt, syscall.SIGTERM)
}

func buildCommand() *cli.Command {
	return &cli.Command{
		Name:  "build",
		Usage: "Parse the input directory, clean every track and write the output file",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "input",
				Aliases: []string{"i"},
				Usage:   "Directory with .gpx/.tcx files (optionally .gz)",
				Value:   "input",
			},
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Usage:   "Output file",
				Value:   "data.js",
			},
			&cli.StringFlag{
				Name:    "format",
				Aliases: []string{"f"},
				Usage:   fmt.Sprintf("Output format, one of %v", output.Formats()),
				Value:   string(output.FormatJS),
			},
			&cli.Float64Flag{
				Name:    "radius",
				Aliases: []string{"r"},
				Usage:   "Clustering radius in degrees",
				Value:   0.00035,
			},
			&cli.IntFlag{
				Name:    "workers",
				Aliases: []string{"w"},
				Usage:   "Number of files parsed concurrently",
				Value:   4,
			},
			&cli.StringFlag{
				Name:  "db",
				Usage: "Track store used by the serve command",
				Value: "tracks.db",
			},
		},
		Action: func(c *cli.Context) error {
			bindFlags(c, map[string]string{
				"input":   "INPUT_DIR",
				"output":  "OUTPUT_FILE",
				"format":  "OUTPUT_FORMAT",
				"radius":  "RADIUS",
				"workers": "WORKERS",
				"db":      "DB_PATH",
			})

			ctx, stop := signalContext(c)
			defer stop()

			b, cleanup, err := di.InitializeBuilder()
			if err != nil {
				return err
			}
			defer cleanup()

			res, err := b.Run(ctx)
			if err != nil {
				return err
			}
			fmt.Printf("\nDONE: Wrote %d tracks from %d files to '%s'. Run 'heatmap serve' to view the map.\n",
				res.Tracks, res.Files, res.OutputFile)
			return nil
		},
	}
}

func serveCommand() *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "Serve the stored tracks over HTTP together with the map viewer",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:    "port",
				Aliases: []string{"p"},
				Usage:   "Port to listen on",
				Value:   6060,
			},
			&cli.StringFlag{
				Name:  "db",
				Usage: "Track store written by the build command",
				Value: "tracks.db",
			},
		},
		Action: func(c *cli.Context) error {
			bindFlags(c, map[string]string{
				"port": "API_PORT",
				"db":   "DB_PATH",
			})

			ctx, stop := signalContext(c)
			defer stop()

			server, cleanup, err := di.InitializeTracksAPIServer()
			if err != nil {
				return err
			}
			defer cleanup()

			server.Log.Info("serving tracks", zap.Int("port", server.Config().Port))
			return server.Run(ctx)
		},
	}
}
