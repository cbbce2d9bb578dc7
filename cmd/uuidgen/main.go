// Command uuidgen generates, inspects and compares version 4 UUIDs from the
// command line.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jessevdk/go-flags"
	"github.com/mgutz/ansi"

	"github.com/Wildcard209/UUID-Generator/internal/pkg/pkgentropy"
	"github.com/Wildcard209/UUID-Generator/internal/pkg/pkgerror"
	"github.com/Wildcard209/UUID-Generator/internal/pkg/pkglog"
	"github.com/Wildcard209/UUID-Generator/internal/pkg/pkguid"
	"github.com/Wildcard209/UUID-Generator/internal/uuidgen/entity"
	"github.com/Wildcard209/UUID-Generator/internal/uuidgen/usecase"
)

type options struct {
	LogLevel       string        `long:"log-level" description:"log level written to stderr" default:"warn" env:"UUIDGEN_LOG_LEVEL"`
	NoColor        bool          `long:"no-color" description:"disable coloured text output"`
	MaxCount       int           `long:"max-count" description:"largest batch generate accepts" default:"100" env:"UUIDGEN_MODULES_UUIDGEN_MAX_COUNT"`
	EntropyRetries int           `long:"entropy-retries" description:"retries after a failed entropy read" default:"2" env:"UUIDGEN_MODULES_UUIDGEN_ENTROPY_RETRIES"`
	EntropyBackoff time.Duration `long:"entropy-backoff" description:"delay before the first retry, doubled each time" default:"10ms" env:"UUIDGEN_MODULES_UUIDGEN_ENTROPY_BACKOFF"`

	Generate generateCmd `command:"generate" description:"print fresh version 4 UUIDs, one per line"`
	Inspect  inspectCmd  `command:"inspect" description:"decode a canonical UUID and show its fields"`
	Compare  compareCmd  `command:"compare" description:"report whether two UUIDs are identical"`
	SelfTest selfTestCmd `command:"selftest" description:"generate many UUIDs concurrently and check them"`
}

// cli is shared by every command.
type cli struct {
	opts   *options
	ctx    context.Context
	stdout io.Writer
	uc     *usecase.Usecase
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

func newID() (string, error) {
	return entity.NewString(pkgentropy.System{})
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	var opts options
	c := &cli{opts: &opts, ctx: ctx, stdout: stdout}
	opts.Generate.cli = c
	opts.Inspect.cli = c
	opts.Compare.cli = c
	opts.SelfTest.cli = c

	parser := flags.NewParser(&opts, flags.HelpFlag|flags.PassDoubleDash)
	parser.CommandHandler = func(cmd flags.Commander, args []string) error {
		pkglog.InitLogging(stderr, pkglog.ParseLevel(opts.LogLevel))
		ansi.DisableColors(opts.NoColor)

		if cid := pkguid.NewUUID(newID).Generate(); cid != "" {
			c.ctx = pkglog.WithCorrelationID(c.ctx, cid)
		}

		c.uc = usecase.New(usecase.Dependency{
			MaxCount:    opts.MaxCount,
			MaxRetries:  opts.EntropyRetries,
			BaseBackoff: opts.EntropyBackoff,
		})

		return cmd.Execute(args)
	}

	_, err := parser.ParseArgs(args)
	return exitCode(stdout, stderr, err)
}

// exitCode prints err and maps it onto the process exit status. Usage
// errors exit like an invalid parameter; domain errors exit with their code.
func exitCode(stdout, stderr io.Writer, err error) int {
	if err == nil {
		return 0
	}

	var ferr *flags.Error
	if errors.As(err, &ferr) {
		if ferr.Type == flags.ErrHelp {
			fmt.Fprintln(stdout, ferr.Message)
			return 0
		}
		fmt.Fprintln(stderr, ferr.Message)
		return int(pkgerror.CodeInvalidParameter)
	}

	if errors.Is(err, errSelfTestFailed) {
		fmt.Fprintln(stderr, err)
		return int(pkgerror.CodeUnknown)
	}

	var perr *pkgerror.Error
	if errors.As(err, &perr) {
		fmt.Fprintf(stderr, "%s: %s\n", perr.Code(), err)
	} else {
		fmt.Fprintln(stderr, err)
	}

	return int(pkgerror.CodeOf(err))
}
