package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/bonsa9/portfolio"
)

func main() {
	if err := runExport(context.Background(), os.Args[1:], os.Stdout); err != nil {
		log.Fatalf("blog export: %v", err)
	}
}

func runExport(ctx context.Context, args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("blog-export", flag.ContinueOnError)
	configPath := fs.String("config", "", "Path to a YAML config file (optional)")
	out := fs.String("out", "posts.json", "Destination JSON file")
	pretty := fs.Bool("pretty", false, "Indent the JSON output")
	dir := fs.String("dir", "", "Read posts from a local checkout instead of GitHub")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := portfolio.LoadConfig(*configPath)
	if err != nil {
		return err
	}
	if *dir != "" {
		cfg.GitHub.BlogDir = *dir
	}
	module, err := portfolio.New(cfg)
	if err != nil {
		return fmt.Errorf("bootstrap module: %w", err)
	}

	cmd := portfolio.ExportPostsCommand{OutputPath: *out, Pretty: *pretty}
	if err := module.ExportPostsHandler().Execute(ctx, cmd); err != nil {
		return fmt.Errorf("execute export command: %w", err)
	}
	fmt.Fprintf(stdout, "posts exported to %s\n", *out)
	return nil
}
