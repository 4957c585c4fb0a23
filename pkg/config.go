package pdgfilter

import (
	"encoding/json"
	"fmt"
	"os"
)

type Configuration struct {
	TreeName         string      `json:"tree_name"`
	HistoName        string      `json:"histo_name"`
	Verbosity        int         `json:"verbosity"`
	Compression      Compression `json:"compression"`
	CompressionLevel int         `json:"compression_level"`
	NoDB             bool        `json:"no_db"`
	Host             string      `json:"host"`
	User             string      `json:"user"`
	Passwd           string      `json:"pass"`
	DBName           string      `json:"dbname"`
	H5Out            string      `json:"h5_out"`
}

var configuration = DefaultConfiguration()

func GetConfiguration() Configuration {
	return configuration
}

func SetConfiguration(config Configuration) {
	configuration = config
}

func DefaultConfiguration() Configuration {
	return Configuration{
		TreeName:         "tree",
		HistoName:        "histo",
		Verbosity:        0,
		Compression:      Compression{Name: "zlib", Code: COMPRESS_ZLIB},
		CompressionLevel: 1,
		NoDB:             true,
	}
}

// LoadConfiguration reads a JSON configuration on top of the defaults.
// An empty filename returns the defaults.
func LoadConfiguration(filename string) (Configuration, error) {
	config := DefaultConfiguration()
	if filename == "" {
		return config, nil
	}

	data, err := os.ReadFile(filename)
	if err != nil {
		return config, err
	}
	err = json.Unmarshal(data, &config)
	if err != nil {
		return config, err
	}
	return config, nil
}

func PrintConfiguration(config Configuration, logger Logger) {
	logger.Info(fmt.Sprintf("Tree name: %s", config.TreeName), "config")
	logger.Info(fmt.Sprintf("Histo name: %s", config.HistoName), "config")
	logger.Info(fmt.Sprintf("Verbosity: %d", config.Verbosity), "config")
	logger.Info(fmt.Sprintf("Compression: %s", config.Compression), "config")
	logger.Info(fmt.Sprintf("Compression level: %d", config.CompressionLevel), "config")
	logger.Info(fmt.Sprintf("No DB: %t", config.NoDB), "config")
	logger.Info(fmt.Sprintf("Host: %s", config.Host), "config")
	logger.Info(fmt.Sprintf("DB name: %s", config.DBName), "config")
	logger.Info(fmt.Sprintf("HDF5 out: %s", config.H5Out), "config")
}
