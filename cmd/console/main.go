package main

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"

	"train_routes/internal/bootstrap"
	"train_routes/internal/config"
	"train_routes/internal/console"
	"train_routes/internal/database"
	"train_routes/internal/logger"
	"train_routes/internal/schedule"
)

func main() {
	envFile := pflag.String("env-file", "", "Read configuration from this file instead of .env")
	create := pflag.Bool("create", false, "Create a new route without asking")
	noCreate := pflag.Bool("no-create", false, "Skip route creation without asking")
	pflag.Parse()

	if *create && *noCreate {
		fmt.Println("--create and --no-create are mutually exclusive")
		os.Exit(2)
	}

	var envFiles []string
	if *envFile != "" {
		envFiles = append(envFiles, *envFile)
	}
	cfg, err := config.Load(envFiles...)
	if err != nil {
		fmt.Printf("Error: %s\n", err)
		os.Exit(1)
	}

	// Initialize structured logging to file
	log, err := logger.New(cfg)
	if err != nil {
		fmt.Printf("Error: %s\n", err)
		os.Exit(1)
	}

	if err := run(cfg, log, *create, *noCreate); err != nil {
		errorMessage := "Something went wrong: " + err.Error()
		log.Error(errorMessage)
		fmt.Println(errorMessage)
		os.Exit(1)
	}
}

func run(cfg *config.Config, log *logrus.Logger, create, noCreate bool) error {
	log.Info("Start")

	gdb, err := config.OpenDB(cfg, logger.GormLogger(log))
	if err != nil {
		return err
	}
	db := database.New(gdb, log)
	defer func() { _ = db.Close() }()

	fixture, err := bootstrap.DefaultFixture()
	if err != nil {
		return err
	}
	if err := bootstrap.New(db, fixture, log).Run(cfg.Schema); err != nil {
		return err
	}

	resolver := schedule.NewResolver(db, log)
	registry := schedule.NewRegistry(db, schedule.NewAssembler(db, resolver, log), log)
	registry.PromptDelay = cfg.PromptDelay

	var in console.LineReader
	if !noCreate {
		reader, err := console.NewReader()
		if err != nil {
			return err
		}
		defer func() { _ = reader.Close() }()
		in = reader
	}

	mode := askCreate
	switch {
	case create:
		mode = alwaysCreate
	case noCreate:
		mode = neverCreate
	}
	return session(registry, in, os.Stdout, mode)
}

type createMode int

const (
	askCreate createMode = iota
	alwaysCreate
	neverCreate
)

// routeBook is the part of the registry a console session drives.
type routeBook interface {
	CreateRouteInteractive(in console.LineReader, out io.Writer) (*schedule.Route, error)
	Reload() error
	Routes() []*schedule.Route
}

// session runs the optional creation step behind the yes/no gate and then
// prints every route. in is only read when mode is not neverCreate.
func session(book routeBook, in console.LineReader, out io.Writer, mode createMode) error {
	wanted := mode == alwaysCreate
	if mode == askCreate {
		var err error
		if wanted, err = console.Confirm(in, out, "Create a new route?"); err != nil {
			return err
		}
	}
	if wanted {
		route, err := book.CreateRouteInteractive(in, out)
		if err != nil {
			return err
		}
		_, _ = fmt.Fprintf(out, "\nCreated:\n%s\n", route)
	}

	if err := book.Reload(); err != nil {
		return err
	}
	for _, route := range book.Routes() {
		_, _ = fmt.Fprintln(out, route)
	}
	return nil
}
