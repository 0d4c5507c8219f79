package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"lensconv/config"
	"lensconv/convert"
	"lensconv/state"
)

const convertHelp = `%s
SOURCE:
    what to convert, one of:
        single article: "[path_to_file]file.xml" (.nxml is accepted too)
        directory: "[path_to_directory]directory" - every article found under it, symbolic links are not followed
        article inside archive: "[path_to_archive]archive.zip[path_in_archive]/file.xml"
        directory inside archive: "[path_to_archive]archive.zip[path_in_archive]" - every article under that path

    Only .xml and .nxml files with <article> root element are picked up,
    archives nested in archives are not opened.

DESTINATION:
    output directory, file names and extensions are derived from options and
    configuration; current working directory when absent
`

const dumpConfigHelp = `%s

DESTINATION:
    file to write configuration to, STDOUT when absent

Writes effective configuration: embedded defaults merged with values from
--config file. Use --default to see embedded defaults only.
`

func convertCommand() *cli.Command {
	return &cli.Command{
		Name:         "convert",
		Usage:        "Converts JATS article(s) to specified format",
		OnUsageError: passUsageError,
		Action:       convert.Run,
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "to", Value: config.OutputFmtJson.String(),
				Usage: "output `FORMAT` (" + strings.Join(config.OutputFmtNames(), ", ") + ")"},
			&cli.StringFlag{Name: "publisher", Aliases: []string{"p"},
				Usage: "apply `PUBLISHER` enhancements regardless of publisher-name in articles (" + strings.Join(config.PublisherNames(), ", ") + ")"},
			&cli.BoolFlag{Name: "nodirs", Aliases: []string{"nd"}, Usage: "put all results directly into destination, do not mirror source directories"},
			&cli.BoolFlag{Name: "overwrite", Aliases: []string{"ow"}, Usage: "replace existing results instead of failing"},
			&cli.StringFlag{Name: "force-zip-cp",
				Usage: "decode non UTF-8 names of archive entries using `ENCODING` (IANA character set name)"},
		},
		ArgsUsage:          "SOURCE [DESTINATION]",
		CustomHelpTemplate: fmt.Sprintf(convertHelp, cli.CommandHelpTemplate),
	}
}

func dumpConfigCommand() *cli.Command {
	return &cli.Command{
		Name:  "dumpconfig",
		Usage: "Writes default or effective configuration (YAML)",
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "default", Usage: "write embedded defaults"},
		},
		OnUsageError:       passUsageError,
		Action:             dumpConfig,
		ArgsUsage:          "DESTINATION",
		CustomHelpTemplate: fmt.Sprintf(dumpConfigHelp, cli.CommandHelpTemplate),
	}
}

func dumpConfig(ctx context.Context, cmd *cli.Command) (err error) {
	env := state.EnvFromContext(ctx)

	args := cmd.Args().Slice()
	if len(args) > 1 {
		env.Log.Warn("Extra arguments ignored", zap.Strings("args", args[1:]))
	}

	var (
		data []byte
		kind = "effective"
	)
	if cmd.Bool("default") {
		kind = "default"
		data, err = config.Prepare()
	} else {
		data, err = config.Dump(env.Cfg)
	}
	if err != nil {
		return fmt.Errorf("unable to serialize configuration: %w", err)
	}

	dst := cmd.Args().First()
	if dst == "" {
		env.Log.Info("Writing configuration", zap.String("kind", kind), zap.String("to", "STDOUT"))
		_, err = os.Stdout.Write(data)
		return err
	}

	f, err := os.Create(dst)
	if err != nil {
		return fmt.Errorf("unable to create '%s': %w", dst, err)
	}
	defer multierr.AppendInvoke(&err, multierr.Close(f))

	env.Log.Info("Writing configuration", zap.String("kind", kind), zap.String("to", dst))
	if _, err = f.Write(data); err != nil {
		return fmt.Errorf("unable to write configuration: %w", err)
	}
	return nil
}
