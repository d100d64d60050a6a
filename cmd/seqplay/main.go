package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"

	"lazyseq/focusring"
	"lazyseq/internal/pipeline"
	"lazyseq/seqs"
)

const (
	ERROR_STATUS_CODE = 1
	COMMAND_NAME      = "seqplay"
	LOG_LEVEL_ENV     = "SEQPLAY_LOG_LEVEL"

	RUN_SUBCMD  = "run"
	RING_SUBCMD = "ring"
	HELP_SUBCMD = "help"

	HELP = "usage: " + COMMAND_NAME + " <command> [flags]\n\n" +
		"commands:\n" +
		"  run  [-log-level l] <pipeline.yaml>        evaluate a pipeline file and print the JSON result\n" +
		"  ring [-log-level l] -values a,b,c -moves rrl  walk a focus ring and print the focus after each move\n"
)

func main() {
	statusCode := _main(os.Args, os.Stdout, os.Stderr)
	if statusCode != 0 {
		os.Exit(statusCode)
	}
}

func _main(args []string, outW io.Writer, errW io.Writer) (statusCode int) {
	if len(args) < 2 {
		fmt.Fprint(errW, HELP)
		return ERROR_STATUS_CODE
	}

	subcommand, subcommandArgs := args[1], args[2:]

	switch subcommand {
	case HELP_SUBCMD, "--help", "-h":
		fmt.Fprint(outW, HELP)
		return 0
	case RUN_SUBCMD:
		return runSubcommand(subcommandArgs, outW, errW)
	case RING_SUBCMD:
		return ringSubcommand(subcommandArgs, outW, errW)
	default:
		fmt.Fprintf(errW, "unknown command '%s'\n%s", subcommand, HELP)
		return ERROR_STATUS_CODE
	}
}

// newLogger logs to errW in a human readable format. An empty level falls
// back to the environment, then to info.
func newLogger(errW io.Writer, level string) (zerolog.Logger, error) {
	if level == "" {
		level = os.Getenv(LOG_LEVEL_ENV)
	}
	if level == "" {
		level = zerolog.InfoLevel.String()
	}
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return zerolog.Nop(), fmt.Errorf("invalid log level %q: %w", level, err)
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: errW, NoColor: true}).
		Level(lvl).
		With().Timestamp().Str("cmd", COMMAND_NAME).
		Logger(), nil
}

func runSubcommand(args []string, outW, errW io.Writer) int {
	flags := flag.NewFlagSet(RUN_SUBCMD, flag.ContinueOnError)
	flags.SetOutput(errW)
	logLevel := flags.String("log-level", "", "log level (debug, info, warn, error); defaults to $"+LOG_LEVEL_ENV)

	if err := flags.Parse(args); err != nil {
		return ERROR_STATUS_CODE
	}

	logger, err := newLogger(errW, *logLevel)
	if err != nil {
		fmt.Fprintln(errW, err)
		return ERROR_STATUS_CODE
	}

	if flags.NArg() != 1 {
		logger.Error().Msg("expected exactly one pipeline file")
		return ERROR_STATUS_CODE
	}
	path := flags.Arg(0)

	cfg, err := pipeline.Load(path)
	if err != nil {
		logger.Error().Err(err).Str("file", path).Msg("failed to load pipeline")
		return ERROR_STATUS_CODE
	}
	logger.Debug().
		Str("file", path).
		Str("source", cfg.Source.Kind).
		Int("ops", len(cfg.Ops)).
		Str("terminal", cfg.Terminal).
		Msg("pipeline loaded")

	result, err := cfg.Run()
	if err != nil {
		logger.Error().Err(err).Str("file", path).Msg("pipeline failed")
		return ERROR_STATUS_CODE
	}

	if err := json.NewEncoder(outW).Encode(result); err != nil {
		logger.Error().Err(err).Msg("failed to write result")
		return ERROR_STATUS_CODE
	}
	return 0
}

type ringStep struct {
	Move  string `json:"move"`
	Focus string `json:"focus"`
}

func ringSubcommand(args []string, outW, errW io.Writer) int {
	flags := flag.NewFlagSet(RING_SUBCMD, flag.ContinueOnError)
	flags.SetOutput(errW)
	logLevel := flags.String("log-level", "", "log level (debug, info, warn, error); defaults to $"+LOG_LEVEL_ENV)
	values := flags.String("values", "", "comma separated ring elements")
	moves := flags.String("moves", "", "moves to perform: r (right) or l (left)")

	if err := flags.Parse(args); err != nil {
		return ERROR_STATUS_CODE
	}

	logger, err := newLogger(errW, *logLevel)
	if err != nil {
		fmt.Fprintln(errW, err)
		return ERROR_STATUS_CODE
	}

	var elements []string
	if *values != "" {
		elements = strings.Split(*values, ",")
	}

	steps, err := walkRing(elements, *moves)
	if err != nil {
		logger.Error().Err(err).Str("values", *values).Str("moves", *moves).Msg("ring walk failed")
		return ERROR_STATUS_CODE
	}
	logger.Debug().Int("elements", len(elements)).Int("moves", len(*moves)).Msg("ring walked")

	encoder := json.NewEncoder(outW)
	for _, step := range steps {
		if err := encoder.Encode(step); err != nil {
			logger.Error().Err(err).Msg("failed to write step")
			return ERROR_STATUS_CODE
		}
	}
	return 0
}

var errBadMove = errors.New("moves may only contain 'l' and 'r'")

// walkRing returns the starting focus followed by the focus after each move.
func walkRing(elements []string, moves string) ([]ringStep, error) {
	ring, err := focusring.New(seqs.Of(elements...))
	if err != nil {
		return nil, err
	}

	steps := []ringStep{{Move: "", Focus: ring.Focus()}}
	for _, move := range moves {
		switch move {
		case 'r':
			ring = ring.Right()
		case 'l':
			ring = ring.Left()
		default:
			return nil, fmt.Errorf("move %q: %w", move, errBadMove)
		}
		steps = append(steps, ringStep{Move: string(move), Focus: ring.Focus()})
	}
	return steps, nil
}
