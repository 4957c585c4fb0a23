package main

import (
	"flag"
	"fmt"
	"os"

	pdgfilter "github.com/next-exp/pdgfilter_go/pkg"
	"github.com/next-exp/pdgfilter_go/pkg/h5"
)

var configuration pdgfilter.Configuration

var (
	logger         pdgfilter.StdLogger
	VerbosityLevel int
)

func init() {
	logger = pdgfilter.NewStdLogger(os.Stdout, os.Stderr)
}

func main() {
	var fileIn, particle string
	flag.StringVar(&fileIn, "file", "", "Input ROOT file")
	flag.StringVar(&fileIn, "f", "", "Input ROOT file (shorthand)")
	flag.StringVar(&particle, "particle", "", "PDG code of the particles to keep")
	flag.StringVar(&particle, "p", "", "PDG code of the particles to keep (shorthand)")
	configFilename := flag.String("config", "", "Configuration file path")
	flag.Parse()

	if fileIn == "" || particle == "" {
		flag.Usage()
		logger.Error("the following arguments are required: -f/--file, -p/--particle")
		os.Exit(2)
	}

	var err error
	configuration, err = pdgfilter.LoadConfiguration(*configFilename)
	if err != nil {
		message := fmt.Errorf("Error reading configuration file: %w", err)
		logger.Error(message.Error())
		os.Exit(1)
	}
	pdgfilter.SetConfiguration(configuration)
	pdgfilter.SetLogger(logger)

	VerbosityLevel = configuration.Verbosity
	if VerbosityLevel > 0 {
		pdgfilter.PrintConfiguration(configuration, logger)
	}

	particleID, err := pdgfilter.ParseParticleID(particle)
	if err != nil {
		logger.Error(err.Error())
		os.Exit(1)
	}

	var opts pdgfilter.FilterOptions
	if configuration.H5Out != "" {
		opts.Sinks = append(opts.Sinks, h5.NewExporter(configuration.H5Out, configuration.CompressionLevel))
	}

	summary, err := pdgfilter.FilterFile(fileIn, pdgfilter.BaseOutputFile, particleID, opts)
	if err != nil {
		message := fmt.Errorf("Error filtering %s: %w", fileIn, err)
		logger.Error(message.Error())
		os.Exit(1)
	}

	if !configuration.NoDB {
		if err := recordRun(summary); err != nil {
			logger.Error(err.Error())
			os.Exit(1)
		}
	}
}

func recordRun(summary pdgfilter.RunSummary) error {
	dbConn, err := pdgfilter.ConnectToDatabase(configuration.User, configuration.Passwd, configuration.Host, configuration.DBName)
	if err != nil {
		return fmt.Errorf("Error connection to database: %w", err)
	}
	defer dbConn.Close()

	if err := pdgfilter.CreateCatalog(dbConn); err != nil {
		return err
	}
	return pdgfilter.RecordRun(dbConn, summary)
}
