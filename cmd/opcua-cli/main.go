// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

// Package main contains the opcua-cli entrypoint: a one-shot tool that
// reads or writes a single OPC-UA node value.
package main

import (
	"log"
	"os"

	"github.com/caarlos0/env/v7"
	cc "github.com/ivanpirog/coloredcobra"
	"github.com/spf13/cobra"

	"github.com/absmach/opcua-cli/cli"
	oclog "github.com/absmach/opcua-cli/logger"
	"github.com/absmach/opcua-cli/opcua/api"
	"github.com/absmach/opcua-cli/opcua/gopcua"
)

const svcName = "opcua-cli"

type config struct {
	LogLevel string `env:"OPCUA_CLI_LOG_LEVEL" envDefault:"info"`
	Hostname string `env:"OPCUA_CLI_HOSTNAME"  envDefault:"localhost"`
	Port     int    `env:"OPCUA_CLI_PORT"      envDefault:"4840"`
	Path     string `env:"OPCUA_CLI_PATH"      envDefault:"/freeopcua/server/"`
}

func main() {
	cfg := config{}
	if err := env.Parse(&cfg); err != nil {
		log.Fatalf("failed to load %s configuration : %s", svcName, err)
	}

	logger, err := oclog.New(os.Stderr, cfg.LogLevel)
	if err != nil {
		log.Fatalf("failed to init logger: %s", err)
	}

	var exitCode int
	defer oclog.ExitWithError(&exitCode)

	svc := gopcua.NewService(logger)
	svc = api.LoggingMiddleware(svc, logger)
	cli.SetService(svc)

	// Env overrides become flag defaults; explicit flags still win.
	cli.Hostname = cfg.Hostname
	cli.Port = cfg.Port
	cli.Path = cfg.Path

	rootCmd := &cobra.Command{
		Use:   svcName,
		Short: "opcua-cli reads and writes OPC-UA node values",
		Long: "opcua-cli connects to an OPC-UA server and performs a single node value read, " +
			"or a type-converted write followed by a verification read-back.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return cli.ParseConfig(cmd)
		},
		RunE: cli.RunOperation,
	}

	rootCmd.AddCommand(cli.NewBrowseCmd())
	rootCmd.AddCommand(cli.NewVersionCmd())

	cli.SetFlags(rootCmd)

	cc.Init(&cc.Config{
		RootCmd:  rootCmd,
		Headings: cc.HiCyan + cc.Bold + cc.Underline,
		Commands: cc.HiCyan + cc.Bold,
		Example:  cc.Italic,
		ExecName: cc.Bold,
		Flags:    cc.Bold,
	})

	if err := rootCmd.Execute(); err != nil {
		exitCode = 1
	}
}
