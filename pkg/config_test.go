package pdgfilter

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadConfigurationDefaults(t *testing.T) {
	config, err := LoadConfiguration("")
	require.NoError(t, err)
	require.Equal(t, DefaultConfiguration(), config)
	require.Equal(t, "tree", config.TreeName)
	require.Equal(t, "histo", config.HistoName)
	require.Equal(t, COMPRESS_ZLIB, config.Compression.Code)
	require.True(t, config.NoDB)
}

func TestLoadConfigurationFile(t *testing.T) {
	fname := filepath.Join(t.TempDir(), "config.json")
	content := `{"verbosity": 2, "compression": "lzma", "compression_level": 5, "no_db": false, "host": "localhost", "h5_out": "out.h5"}`
	require.NoError(t, os.WriteFile(fname, []byte(content), 0o644))

	config, err := LoadConfiguration(fname)
	require.NoError(t, err)
	require.Equal(t, 2, config.Verbosity)
	require.Equal(t, Compression{Name: "lzma", Code: COMPRESS_LZMA}, config.Compression)
	require.Equal(t, 5, config.CompressionLevel)
	require.False(t, config.NoDB)
	require.Equal(t, "localhost", config.Host)
	require.Equal(t, "out.h5", config.H5Out)
	// untouched keys keep their defaults
	require.Equal(t, "tree", config.TreeName)
}

func TestLoadConfigurationErrors(t *testing.T) {
	_, err := LoadConfiguration(filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)

	fname := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(fname, []byte(`{"compression": "gzip"}`), 0o644))
	_, err = LoadConfiguration(fname)
	require.ErrorContains(t, err, "invalid Compression: gzip")
}

func TestCompressionJSON(t *testing.T) {
	for _, name := range compressionStrings {
		c, err := ParseCompression(name)
		require.NoError(t, err)
		require.Equal(t, name, c.String())

		data, err := json.Marshal(c)
		require.NoError(t, err)
		require.Equal(t, `"`+name+`"`, string(data))
	}
	require.Equal(t, "UNKNOWN", Compression{Code: 42}.String())
}

type memoryLogger struct {
	infos  []string
	errors []string
}

func (l *memoryLogger) Info(message string, module string) {
	l.infos = append(l.infos, module+": "+message)
}

func (l *memoryLogger) Error(message string) {
	l.errors = append(l.errors, message)
}

func TestPrintConfiguration(t *testing.T) {
	l := &memoryLogger{}
	PrintConfiguration(DefaultConfiguration(), l)
	require.Contains(t, l.infos, "config: Tree name: tree")
	require.Contains(t, l.infos, "config: Compression: zlib")
	require.Empty(t, l.errors)
}

func TestVerboseRunLogsCensus(t *testing.T) {
	config := DefaultConfiguration()
	config.Verbosity = 1
	useConfiguration(t, config)
	l := &memoryLogger{}
	SetLogger(l)
	t.Cleanup(func() { SetLogger(nil) })

	dir := t.TempDir()
	fileIn := filepath.Join(dir, "run001.root")
	writeFixture(t, fileIn, sampleEvents(), "", doseHisto())

	_, err := FilterFile(fileIn, OutputFilename(fileIn, pdgGamma), pdgGamma, FilterOptions{CopyHisto: true})
	require.NoError(t, err)
	require.Contains(t, l.infos, "census: PDG 22: 3 particles")
	require.Contains(t, l.infos, "census: PDG 2112: 4 particles")
	require.Contains(t, l.infos, "writer: Copied histo (TH1D) with 500 entries")
}
