// Command snmpbind resolves SNMP variable bindings against the built-in MIB
// view: names to OIDs for outbound requests, OIDs to names for received
// responses, and notification templates to their binding lists.
package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"runtime/debug"

	"github.com/spf13/cobra"

	"github.com/golangsnmp/snmpbind"
	"github.com/golangsnmp/snmpbind/cmd/internal/cliutil"
)

// Exit codes.
const (
	exitOK    = 0 // success
	exitError = 1 // user error or resolution failure
)

type cli struct {
	verbose int
	format  string
	output  string
	cache   *snmpbind.Cache
	closeFn func()
}

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	var c cli
	root := c.rootCommand()
	root.SetArgs(args)
	if err := root.Execute(); err != nil {
		cliutil.PrintError("%v", err)
		return exitError
	}
	return exitOK
}

func (c *cli) rootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "snmpbind",
		Short: "Resolve SNMP variable bindings against the built-in MIB view",
		Example: `  snmpbind resolve SNMPv2-MIB::sysDescr.0 IF-MIB::ifAdminStatus.3=down
  snmpbind resolve -f request.yaml --pdu
  snmpbind translate 1.3.6.1.2.1.2.2.1.2.1
  snmpbind notify IF-MIB::linkDown --index 3 --set IF-MIB::ifAdminStatus=down
  snmpbind modules --format json`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			switch c.format {
			case formatText, formatJSON, formatYAML:
			default:
				return fmt.Errorf("unknown format %q (want text, json or yaml)", c.format)
			}
			c.cache = snmpbind.NewCache(snmpbind.WithCacheLogger(c.logger()))
			if c.output != "" {
				f, closeFn, err := cliutil.GetOutput(c.output)
				if err != nil {
					return err
				}
				cmd.SetOut(f)
				c.closeFn = closeFn
			}
			return nil
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			if c.closeFn != nil {
				c.closeFn()
			}
		},
	}
	flags := cmd.PersistentFlags()
	flags.CountVarP(&c.verbose, "verbose", "v", "debug logging, -vv for trace")
	flags.StringVar(&c.format, "format", formatText, "output format: text, json or yaml")
	flags.StringVarP(&c.output, "output", "o", "", "write output to a file instead of stdout")

	cmd.AddCommand(
		c.resolveCommand(),
		c.translateCommand(),
		c.notifyCommand(),
		c.modulesCommand(),
		versionCommand(),
	)
	return cmd
}

func (c *cli) logger() *slog.Logger {
	if c.verbose == 0 {
		return nil
	}
	level := slog.LevelDebug
	if c.verbose >= 2 {
		level = snmpbind.LevelTrace
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
}

func (c *cli) options() []snmpbind.Option {
	if logger := c.logger(); logger != nil {
		return []snmpbind.Option{snmpbind.WithLogger(logger)}
	}
	return nil
}

func versionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			version := "(devel)"
			if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
				version = info.Main.Version
			}
			fmt.Fprintf(cmd.OutOrStdout(), "snmpbind %s\n", version)
		},
	}
}

var errNoBindings = errors.New("no bindings given")
