package main

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/gilliss/AttenCalc/atten"
	conf "github.com/gilliss/AttenCalc/config"
	"github.com/gilliss/AttenCalc/material"
	"github.com/gilliss/AttenCalc/runner"
	"github.com/gilliss/AttenCalc/web"
)

var log = conf.NamedLogger("main")

var (
	flagDataDir string
	flagLevel   string
	flagStrict  bool
	flagJSON    bool
	flagPort    int64
)

func main() {
	rootCmd := &cobra.Command{
		Use:          "calcatten",
		Short:        "gamma-ray attenuation calculator",
		Long:         "computes the fraction of gamma-ray intensity surviving layered shielding,\nusing NIST mass attenuation tables",
		SilenceUsage: true,
	}
	rootCmd.PersistentFlags().StringVar(&flagDataDir, "data-dir",
		"", "directory holding <material>Data.txt tables")
	rootCmd.PersistentFlags().StringVar(&flagLevel, "logging-level",
		"", "logging level, one of: panic, fatal, error, warn, info, debug")

	runCmd := &cobra.Command{
		Use:   "run <macro>",
		Short: "run a macro script",
		Long:  "executes the energy and shielding commands of a macro script and reports\nthe remaining beam intensity after each layer",
		Args:  cobra.ExactArgs(1),
		RunE:  runMacro,
	}
	runCmd.Flags().BoolVar(&flagStrict, "strict",
		false, "fail on unrecognized macro commands instead of skipping them")
	runCmd.Flags().BoolVar(&flagJSON, "json",
		false, "print the structured result as JSON on stdout")

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "serve the calculator over HTTP",
		Args:  cobra.ExactArgs(0),
		RunE:  serve,
	}
	serveCmd.Flags().Int64Var(&flagPort, "port", 0, "listen port")

	rootCmd.AddCommand(runCmd, serveCmd)
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// setup assembles config from defaults, environment and flag overrides.
func setup() (*conf.Config, error) {
	config, configErr := conf.SetupConfig()
	if configErr != nil {
		return nil, configErr
	}

	if flagDataDir != "" {
		config.DataDir = flagDataDir
	}
	if flagLevel != "" {
		config.LoggingLevel = flagLevel
	}
	if flagPort != 0 {
		config.Port = flagPort
	}
	config.Strict = flagStrict

	if checkErr := conf.Check(config); checkErr != nil {
		return nil, checkErr
	}
	if levelErr := conf.SetLoggingLevel(config.LoggingLevel); levelErr != nil {
		return nil, levelErr
	}
	return config, nil
}

func runMacro(cmd *cobra.Command, args []string) error {
	config, setupErr := setup()
	if setupErr != nil {
		return setupErr
	}

	loader := material.Loader{DataDir: config.DataDir}
	run := runner.Runner{
		Calc:   atten.Calculator{Source: material.NewCache(loader)},
		Strict: config.Strict,
	}

	res, runErr := run.RunFile(args[0])
	if runErr != nil {
		return runErr
	}

	if flagJSON {
		marshaled, marshalErr := json.Marshal(res)
		if marshalErr != nil {
			return marshalErr
		}
		fmt.Println(string(marshaled))
		return nil
	}
	fmt.Print(res.Report())
	return nil
}

func serve(cmd *cobra.Command, args []string) error {
	config, setupErr := setup()
	if setupErr != nil {
		return setupErr
	}

	router := web.NewRouter(config)
	portString := ":" + strconv.FormatInt(config.Port, 10)
	log.Infof("Listening on %v", portString)
	return http.ListenAndServe(portString, router)
}
