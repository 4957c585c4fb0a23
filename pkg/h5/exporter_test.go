package h5

import (
	"path/filepath"
	"testing"

	hdf5 "github.com/jmbenlloch/go-hdf5"
	pdgfilter "github.com/next-exp/pdgfilter_go/pkg"
	"github.com/stretchr/testify/require"
)

var _ pdgfilter.EventSink = (*Exporter)(nil)

func filteredEvents() []pdgfilter.EscapingParticles {
	return []pdgfilter.EscapingParticles{
		{
			Pdg: []int32{22, 22},
			X:   []float64{1, 2}, Y: []float64{3, 4}, Z: []float64{5, 6},
			Theta: []float64{0.1, 0.2}, Phi: []float64{0.3, 0.4},
			E: []float64{0.511, 0.511}, Time: []float64{1e-9, 2e-9},
			InitialX: []float64{7, 8}, InitialY: []float64{9, 10}, InitialZ: []float64{11, 12},
		},
		{
			Pdg: []int32{},
			X:   []float64{}, Y: []float64{}, Z: []float64{},
			Theta: []float64{}, Phi: []float64{},
			E: []float64{}, Time: []float64{},
			InitialX: []float64{}, InitialY: []float64{}, InitialZ: []float64{},
		},
		{
			Pdg: []int32{22},
			X:   []float64{13}, Y: []float64{14}, Z: []float64{15},
			Theta: []float64{0.5}, Phi: []float64{0.6},
			E: []float64{4.4}, Time: []float64{3e-9},
			InitialX: []float64{16}, InitialY: []float64{17}, InitialZ: []float64{18},
		},
	}
}

func TestFlatten(t *testing.T) {
	eventRows, particleRows := Flatten(filteredEvents())

	require.Equal(t, []EventHDF5{
		{evt_number: 0, n_particles: 2},
		{evt_number: 1, n_particles: 0},
		{evt_number: 2, n_particles: 1},
	}, eventRows)

	require.Len(t, particleRows, 3)
	require.Equal(t, int32(0), particleRows[1].evt_number)
	require.Equal(t, 2.0, particleRows[1].x)
	require.Equal(t, 12.0, particleRows[1].initial_z)
	require.Equal(t, int32(2), particleRows[2].evt_number)
	require.Equal(t, 4.4, particleRows[2].energy)
}

func TestExporterWriteEvents(t *testing.T) {
	fname := filepath.Join(t.TempDir(), "escaping.h5")
	require.NoError(t, NewExporter(fname, 4).WriteEvents(filteredEvents()))

	f, err := hdf5.OpenFile(fname, hdf5.F_ACC_RDONLY)
	require.NoError(t, err)
	defer f.Close()

	events, err := f.OpenDataset("/Escaping/events")
	require.NoError(t, err)
	defer events.Close()
	require.Equal(t, 3, events.Space().SimpleExtentNPoints())

	particles, err := f.OpenDataset("/Escaping/particles")
	require.NoError(t, err)
	defer particles.Close()
	require.Equal(t, 3, particles.Space().SimpleExtentNPoints())

	rows := make([]ParticleHDF5, 3)
	require.NoError(t, particles.Read(&rows))
	_, want := Flatten(filteredEvents())
	require.Equal(t, want, rows)
}
