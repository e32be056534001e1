package main

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/b97tsk/rangestr"
)

const (
	_defaultFormat    = "values"
	_defaultSeparator = "\n"
	_envPrefix        = "RANGESTR"
)

type config struct {
	Lower             string `mapstructure:"lower"`
	Upper             string `mapstructure:"upper"`
	Delimiter         string `mapstructure:"delimiter"`
	ImplicitInclusion bool   `mapstructure:"implicit-inclusion"`
	Format            string `mapstructure:"format"`
	Separator         string `mapstructure:"separator"`
	Verbose           bool   `mapstructure:"verbose"`
}

func newRootCommand() *cobra.Command {
	v := viper.New()
	var configFile string

	cmd := &cobra.Command{
		Use:   "rangestr [flags] EXPR...",
		Short: "Print the integers described by a range expression",
		Long: `Print the integers described by a range expression such as "0-5,8,^3".

Elements are applied from left to right. "a-b" adds a through b, "n" adds n,
"^a-b" removes a through b. An omitted endpoint ("a-" or "-b") is taken from
--lower or --upper. Put "--" before an expression that starts with "-".`,
		Args:         cobra.MinimumNArgs(1),
		SilenceUsage: true,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			if configFile == "" {
				return nil
			}
			v.SetConfigFile(configFile)
			return v.ReadInConfig()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			var cfg config
			if err := v.Unmarshal(&cfg); err != nil {
				return err
			}
			return run(cmd.OutOrStdout(), strings.Join(args, ","), cfg)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&configFile, "config", "", "read options from a config file")
	flags.String("lower", "", "inclusive lower bound of the universe")
	flags.String("upper", "", "inclusive upper bound of the universe")
	flags.String("delimiter", rangestr.DefaultDelimiter, "delimiter between the endpoints of an element")
	flags.Bool("implicit-inclusion", false, "start from the whole universe when the first element is an exclusion")
	flags.StringP("format", "f", _defaultFormat, "output format: values, ranges, yaml or count")
	flags.StringP("separator", "s", _defaultSeparator, "separator between values")
	flags.BoolP("verbose", "v", false, "log every applied element")

	v.SetEnvPrefix(_envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if err := v.BindPFlags(flags); err != nil {
		panic(err)
	}

	return cmd
}

func newLogger(verbose bool) (*zap.Logger, error) {
	if !verbose {
		return zap.NewNop(), nil
	}
	c := zap.NewDevelopmentConfig()
	c.OutputPaths = []string{"stderr"}
	return c.Build()
}

func (cfg config) options(logger *zap.Logger) (rangestr.Options, error) {
	o := rangestr.Options{
		Delimiter:         cfg.Delimiter,
		ImplicitInclusion: cfg.ImplicitInclusion,
		Logger:            logger,
	}
	if o.Delimiter == "" {
		o.Delimiter = rangestr.DefaultDelimiter
	}
	var err error
	if o.Lower, err = parseBound(cfg.Lower); err != nil {
		return o, errors.Wrap(err, "lower")
	}
	if o.Upper, err = parseBound(cfg.Upper); err != nil {
		return o, errors.Wrap(err, "upper")
	}
	return o, nil
}

func parseBound(s string) (rangestr.Bound, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return rangestr.Unbounded, nil
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return rangestr.Unbounded, err
	}
	return rangestr.At(n), nil
}

func run(w io.Writer, expr string, cfg config) error {
	logger, err := newLogger(cfg.Verbose)
	if err != nil {
		return err
	}
	defer logger.Sync()

	opts, err := cfg.options(logger)
	if err != nil {
		return err
	}

	s, err := rangestr.ParseWith(expr, opts)
	if err != nil {
		return err
	}

	bw := bufio.NewWriter(w)

	switch cfg.Format {
	case "values":
		first := true
		for n := range s.Values() {
			if !first {
				bw.WriteString(cfg.Separator)
			}
			if _, err := bw.WriteString(strconv.FormatInt(n, 10)); err != nil {
				return err
			}
			first = false
		}
		if !first {
			bw.WriteString("\n")
		}
	case "ranges":
		fmt.Fprintln(bw, rangestr.Format(s, opts.Delimiter))
	case "yaml":
		b, err := rangestr.FormatYAML(s)
		if err != nil {
			return err
		}
		bw.Write(b)
	case "count":
		fmt.Fprintln(bw, s.Count())
	default:
		return errors.Errorf("unknown format %q", cfg.Format)
	}

	logger.Debug("done", zap.Int("intervals", s.Len()), zap.Int64("count", s.Count()))
	return bw.Flush()
}
