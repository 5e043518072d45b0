package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"go.uber.org/zap"
)

func main() {
	var print bool

	options := GeneratorOptions{
		Args: os.Args[1:],
	}

	flags := flag.NewFlagSet("gen-enum", flag.ContinueOnError)

	flags.StringVar(&options.Type, "type", "", "type name")
	flags.StringVar(&options.Dir, "dir", ".", "package directory; the output is written to dir/<type>_enum.go")
	flags.StringVar(&options.BuildTags, "tags", "", "comma-separated list of build tags to apply")
	flags.BoolVar(&print, "print", false, "print the generated code to stdout")

	if err := flags.Parse(os.Args[1:]); err != nil {
		os.Exit(2)
	}

	logger, err := zap.NewDevelopment()
	if err != nil {
		log.Fatalf("%+v", err)
	}
	defer logger.Sync()

	if len(options.Type) == 0 {
		logger.Fatal("-type is required")
	}

	generator := NewGenerator(options, logger.Named("gen-enum"))
	src, err := generator.Run()

	if print {
		fmt.Println(string(src))
	}

	if err != nil {
		logger.Fatal("generating enum", zap.String("type", options.Type), zap.Error(err))
	}
}
