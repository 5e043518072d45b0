package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/fatih/color"
	"go.uber.org/zap"

	"github.com/rdeusser/intension/expr"
	"github.com/rdeusser/intension/set"
	"github.com/rdeusser/intension/zappretty"
)

type items []string

func (i *items) String() string { return strings.Join(*i, ",") }

func (i *items) Set(s string) error {
	*i = append(*i, s)
	return nil
}

type options struct {
	Expr     string
	Lower    int
	Upper    int
	Has      items
	LogLevel string
	Pretty   bool
}

func main() {
	var options options

	flags := flag.NewFlagSet("intset", flag.ContinueOnError)

	flags.StringVar(&options.Expr, "expr", "", `set expression, e.g. "evens() | singleton(3)"`)
	flags.IntVar(&options.Lower, "lower", 0, "inclusive lower bound of the enumeration window")
	flags.IntVar(&options.Upper, "upper", 0, "exclusive upper bound of the enumeration window")
	flags.Var(&options.Has, "has", "literal to test for membership; may be repeated")
	flags.StringVar(&options.LogLevel, "log-level", "info", "log level")
	flags.BoolVar(&options.Pretty, "pretty", false, "colorize log output")

	if err := flags.Parse(os.Args[1:]); err != nil {
		os.Exit(2)
	}

	logger, err := newLogger(options.LogLevel, options.Pretty)
	if err != nil {
		log.Fatalf("%+v", err)
	}
	defer logger.Sync()

	if options.Expr == "" {
		logger.Fatal("-expr is required")
	}

	e, err := expr.Compile(options.Expr)
	if err != nil {
		logger.Fatal("compiling expression", zap.String("expr", options.Expr), zap.Error(err))
	}

	logger.Info("compiled expression", zap.Stringer("set", e), zap.Stringer("domain", e.Domain()))

	for _, item := range options.Has {
		ok, err := e.Has(item)
		if err != nil {
			logger.Fatal("testing membership", zap.String("item", item), zap.Error(err))
		}

		fmt.Printf("%s\t%s\n", item, membership(ok))
	}

	// Enumerate only when a window was asked for. A window with a single
	// bound is passed through so that the missing one is reported.
	var lower, upper *int

	flags.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "lower":
			lower = &options.Lower
		case "upper":
			upper = &options.Upper
		}
	})

	if lower == nil && upper == nil {
		return
	}

	enumerator, err := e.Enumerate(lower, upper, set.WithLogger(logger.Named("enumerate")))
	if err != nil {
		logger.Fatal("enumerating", zap.Stringer("set", e), zap.Error(err))
	}

	var count int
	for n := range enumerator.All() {
		fmt.Println(n)
		count++
	}

	logger.Info("enumerated", zap.Int("count", count))
}

func newLogger(level string, pretty bool) (*zap.Logger, error) {
	cfg := zap.NewDevelopmentConfig()
	cfg.DisableStacktrace = true

	if err := cfg.Level.UnmarshalText([]byte(level)); err != nil {
		return nil, err
	}

	if pretty {
		if err := zappretty.Register(cfg.EncoderConfig); err != nil {
			return nil, err
		}
		cfg.Encoding = zappretty.Name
	}

	return cfg.Build()
}

func membership(ok bool) string {
	if ok {
		return color.GreenString("member")
	}
	return color.RedString("not a member")
}
