// Command uhash drives a hash table with operations read from a script.
package main

import (
	"io"
	"os"

	"github.com/jessevdk/go-flags"
	"github.com/op/go-logging"
	"github.com/pkg/errors"
	"github.com/xyproto/env/v2"

	"github.com/theflywheel/uhash"
)

var log = logging.MustGetLogger("main")

var logFormat = logging.MustStringFormatter(
	`%{color:reset}%{color}%{time:15:04:05.000} [%{module}] [%{level}] %{message}`,
)

type Options struct {
	Capacity  int     `short:"c" long:"capacity" description:"initial number of buckets"`
	Threshold float64 `short:"t" long:"threshold" description:"load factor that triggers a resize"`
	Seed      uint64  `long:"seed" description:"seed for the hash coefficients, 0 picks a random one"`
	LogLevel  string  `short:"l" long:"loglevel" description:"set the logging level [debug, info, notice, warning, error, critical]"`
}

type Run struct{}
type ExampleCmd struct{}

var opts = Options{
	Capacity:  env.Int("UHASH_CAPACITY", uhash.DefaultCapacity),
	Threshold: uhash.DefaultLoadFactor,
	LogLevel:  env.Str("UHASH_LOGLEVEL", "warning"),
}

var (
	runCommand     Run
	exampleCommand ExampleCmd
)

var parser = flags.NewParser(&opts, flags.Default)

func main() {
	parser.AddCommand("run",
		"run a script of table operations",
		"The run command reads operations from the named file, or stdin, one per line:\n"+
			"  insert <key> <value>\n  search <key>\n  delete <key>\n  stats\n  example",
		&runCommand)
	parser.AddCommand("example",
		"build the example table",
		"The example command builds the seven entry example table and prints its stats",
		&exampleCommand)
	parser.CommandHandler = func(cmd flags.Commander, args []string) error {
		if err := setupLogging(os.Stderr, opts.LogLevel); err != nil {
			return err
		}
		return cmd.Execute(args)
	}

	if _, err := parser.Parse(); err != nil {
		os.Exit(1)
	}
}

func setupLogging(w io.Writer, level string) error {
	lvl, err := logging.LogLevel(level)
	if err != nil {
		return errors.Wrapf(err, "invalid log level %q", level)
	}
	backend := logging.NewBackendFormatter(logging.NewLogBackend(w, "", 0), logFormat)
	logging.SetBackend(backend)
	logging.SetLevel(lvl, "")
	return nil
}

func (o *Options) tableOptions() []uhash.Option {
	tableOpts := []uhash.Option{
		uhash.WithCapacity(o.Capacity),
		uhash.WithLoadFactor(o.Threshold),
	}
	if o.Seed != 0 {
		tableOpts = append(tableOpts, uhash.WithSeed(o.Seed))
	}
	return tableOpts
}

func (x *Run) Execute(args []string) error {
	var r io.Reader = os.Stdin
	if len(args) > 0 {
		f, err := os.Open(args[0])
		if err != nil {
			return errors.Wrap(err, "open script")
		}
		defer f.Close()
		r = f
	}
	return runScript(r, os.Stdout, opts.tableOptions())
}

func (x *ExampleCmd) Execute(args []string) error {
	t, err := uhash.NewExample(opts.tableOptions()...)
	if err != nil {
		return err
	}
	log.Infof("example table built with %d resizes", t.Resizes())
	_, err = io.WriteString(os.Stdout, t.Stats().String()+"\n")
	return err
}
