package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/bartolsthoorn/gofba/fba"
	"github.com/bartolsthoorn/gofba/linprog"
)

// EnvPrefix is prepended to flag names to form environment variables.
// Example: --log-level becomes FLUXOPT_LOG_LEVEL.
const EnvPrefix = "FLUXOPT"

const (
	flagOutput    = "output"
	flagTolerance = "tolerance"
	flagLogLevel  = "log-level"
)

// verifyTolerance bounds the balance and bound residuals of a printed result.
const verifyTolerance = 1e-6

const (
	outputText = "text"
	outputJSON = "json"
	outputYAML = "yaml"
)

type rootCmd struct {
	vip    *viper.Viper
	out    io.Writer
	errOut io.Writer
}

// NewRootCmd builds the "fluxopt" command and its subcommands.
func NewRootCmd(out, errOut io.Writer) (*cobra.Command, error) {
	c := &rootCmd{vip: viper.New(), out: out, errOut: errOut}
	cmd := &cobra.Command{
		Use:   "fluxopt",
		Short: "Maximize P + N + Q over the steady-state flux network",
		Example: `
  fluxopt
  fluxopt --output yaml
  FLUXOPT_TOLERANCE=1e-8 fluxopt --log-level debug
  fluxopt model
`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.run()
		},
	}
	cmd.SetOut(out)
	cmd.SetErr(errOut)

	// Solve flags stay local: "fluxopt model" takes none of them.
	addFlags(cmd.Flags())
	if err := bindEnvironmentVariables(c.vip, cmd.Flags()); err != nil {
		return nil, err
	}

	cmd.AddCommand(newModelCmd(c))
	return cmd, nil
}

func addFlags(fs *pflag.FlagSet) {
	fs.StringP(flagOutput, "o", outputText, "Output format: text, json or yaml")
	fs.Float64(flagTolerance, 1e-9, "Solver optimality tolerance")
	fs.String(flagLogLevel, logrus.WarnLevel.String(), "Log level for solver diagnostics")
}

// bindEnvironmentVariables lets FLUXOPT_<FLAG> stand in for any flag that was
// not set on the command line.
func bindEnvironmentVariables(vip *viper.Viper, fs *pflag.FlagSet) error {
	vip.SetEnvPrefix(EnvPrefix)
	vip.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	vip.AutomaticEnv()
	return errors.Wrap(vip.BindPFlags(fs), "unable to bind flags")
}

func (c *rootCmd) logger() (*logrus.Logger, error) {
	level, err := logrus.ParseLevel(c.vip.GetString(flagLogLevel))
	if err != nil {
		return nil, errors.Wrap(err, "invalid --log-level")
	}
	log := logrus.New()
	log.SetOutput(c.errOut)
	log.SetLevel(level)
	log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	return log, nil
}

func (c *rootCmd) run() error {
	format := c.vip.GetString(flagOutput)
	switch format {
	case outputText, outputJSON, outputYAML:
	default:
		return errors.Errorf("unknown output format %q", format)
	}

	log, err := c.logger()
	if err != nil {
		return err
	}
	tol := c.vip.GetFloat64(flagTolerance)
	log.WithField("tolerance", tol).Debug("solving flux network")

	p := fba.Default()
	res, err := p.Solve(linprog.WithLogger(log), linprog.WithTolerance(tol))
	if err != nil {
		return errors.Wrap(err, "unable to solve flux network")
	}
	if !res.Optimal() {
		log.WithField("status", res.Status).Info(res.Message)
	}
	return c.write(format, p, res)
}

// write prints res in format after checking an optimal result against p.
func (c *rootCmd) write(format string, p fba.Problem, res fba.Result) error {
	if res.Optimal() {
		if err := p.Verify(res, verifyTolerance); err != nil {
			return errors.Wrap(err, "solution check failed")
		}
	}

	switch format {
	case outputJSON:
		return fba.WriteJSON(c.out, fba.NewReport(p, res))
	case outputYAML:
		return fba.WriteYAML(c.out, fba.NewReport(p, res))
	default:
		return fba.WriteText(c.out, res)
	}
}

func printErr(w io.Writer, err error) {
	fmt.Fprintf(w, "Error: %s\n", err)
}
