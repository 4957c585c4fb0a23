// Package h5 exports filtered escaping particles as flat HDF5 tables.
//
// /Escaping/events holds one row per event with its number of surviving
// particles; /Escaping/particles holds one row per surviving particle.
package h5

import (
	"errors"
	"fmt"

	pdgfilter "github.com/next-exp/pdgfilter_go/pkg"
)

type EventHDF5 struct {
	evt_number  int32
	n_particles int32
}

type ParticleHDF5 struct {
	evt_number int32
	pdg        int32
	x          float64
	y          float64
	z          float64
	theta      float64
	phi        float64
	energy     float64
	time       float64
	initial_x  float64
	initial_y  float64
	initial_z  float64
}

// Exporter implements pdgfilter.EventSink.
type Exporter struct {
	Filename         string
	CompressionLevel int
}

func NewExporter(filename string, compressionLevel int) *Exporter {
	return &Exporter{Filename: filename, CompressionLevel: compressionLevel}
}

// Flatten turns events into the rows of the two tables.
func Flatten(events []pdgfilter.EscapingParticles) ([]EventHDF5, []ParticleHDF5) {
	eventRows := make([]EventHDF5, len(events))
	particleRows := make([]ParticleHDF5, 0)
	for i, evt := range events {
		eventRows[i] = EventHDF5{
			evt_number:  int32(i),
			n_particles: int32(evt.Len()),
		}
		for j, pdg := range evt.Pdg {
			particleRows = append(particleRows, ParticleHDF5{
				evt_number: int32(i),
				pdg:        pdg,
				x:          evt.X[j],
				y:          evt.Y[j],
				z:          evt.Z[j],
				theta:      evt.Theta[j],
				phi:        evt.Phi[j],
				energy:     evt.E[j],
				time:       evt.Time[j],
				initial_x:  evt.InitialX[j],
				initial_y:  evt.InitialY[j],
				initial_z:  evt.InitialZ[j],
			})
		}
	}
	return eventRows, particleRows
}

func (e *Exporter) WriteEvents(events []pdgfilter.EscapingParticles) error {
	eventRows, particleRows := Flatten(events)

	file, err := createFile(e.Filename)
	if err != nil {
		return err
	}
	group, err := createGroup(file, "Escaping")
	if err != nil {
		return errors.Join(err, file.Close())
	}

	var errs []error
	eventTable, err := createTable(group, "events", EventHDF5{}, e.CompressionLevel)
	if err != nil {
		errs = append(errs, err)
	} else {
		if err := writeArrayToTable(eventTable, &eventRows, 0); err != nil {
			errs = append(errs, fmt.Errorf("error writing events table: %w", err))
		}
		if err := eventTable.Close(); err != nil {
			errs = append(errs, fmt.Errorf("error closing events table: %w", err))
		}
	}

	particleTable, err := createTable(group, "particles", ParticleHDF5{}, e.CompressionLevel)
	if err != nil {
		errs = append(errs, err)
	} else {
		if err := writeArrayToTable(particleTable, &particleRows, 0); err != nil {
			errs = append(errs, fmt.Errorf("error writing particles table: %w", err))
		}
		if err := particleTable.Close(); err != nil {
			errs = append(errs, fmt.Errorf("error closing particles table: %w", err))
		}
	}

	if err := group.Close(); err != nil {
		errs = append(errs, fmt.Errorf("error closing Escaping group: %w", err))
	}
	if err := file.Close(); err != nil {
		errs = append(errs, fmt.Errorf("error closing file: %w", err))
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}
	return nil
}
