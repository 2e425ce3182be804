package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/JaimeStill/promptlab/internal/api"
	"github.com/JaimeStill/promptlab/internal/config"
	"github.com/JaimeStill/promptlab/pkg/openapi"
)

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		log.Fatal(err)
	}
}

func run(args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("openapi", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	var (
		output = fs.String("o", "openapi.json", "Output file, or - for stdout")
		server = fs.String("server", "", "Server URL to list in the document")
	)
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("config load failed: %w", err)
	}

	spec := api.NewSpec(cfg)
	if *server != "" {
		spec.AddServer(*server)
	}

	if *output == "-" {
		return openapi.Encode(stdout, spec)
	}

	if err := openapi.WriteJSON(spec, *output); err != nil {
		return fmt.Errorf("write failed: %w", err)
	}
	fmt.Fprintf(stdout, "wrote %s (%d operations)\n", *output, len(spec.Operations()))
	return nil
}
