package pdgfilter

import (
	"errors"
	"fmt"

	"go-hep.org/x/hep/groot/riofs"
)

// EventSink receives the filtered events in addition to the ROOT output.
type EventSink interface {
	WriteEvents(events []EscapingParticles) error
}

// FilterOptions selects the optional steps of FilterFile.
type FilterOptions struct {
	CopyHisto bool
	Sinks     []EventSink
}

// FilterFile reads the tree of fileIn, keeps the particles of type
// particleID and snapshots the result into fileOut. With CopyHisto the
// auxiliary histogram is copied after the tree is complete.
// The input is fully validated before fileOut is created.
func FilterFile(fileIn string, fileOut string, particleID int32, opts FilterOptions) (RunSummary, error) {
	summary := RunSummary{
		FileIn:     fileIn,
		FileOut:    fileOut,
		ParticleID: particleID,
		HistoCopy:  opts.CopyHisto,
	}

	in, err := OpenFile(fileIn)
	if err != nil {
		return summary, err
	}
	defer in.Close()

	events, err := ReadEvents(in, configuration.TreeName)
	if err != nil {
		return summary, err
	}
	if opts.CopyHisto {
		if _, err := in.Get(configuration.HistoName); err != nil {
			return summary, &ErrMissingObject{Name: configuration.HistoName, Err: err}
		}
	}

	summary.Events = len(events)
	summary.Census = Census(events)
	for _, n := range summary.Census {
		summary.Particles += n
	}
	if configuration.Verbosity > 0 {
		logCensus(summary.Census)
	}

	filtered, err := FilterEvents(events, particleID)
	if err != nil {
		return summary, err
	}
	summary.Matched = summary.Census[particleID]

	writer, err := NewWriter(fileOut, configuration.TreeName)
	if err != nil {
		return summary, err
	}
	if err := writeSnapshot(writer, filtered, in, opts); err != nil {
		return summary, errors.Join(err, writer.Close())
	}
	if err := writer.Close(); err != nil {
		return summary, err
	}

	for _, sink := range opts.Sinks {
		if err := sink.WriteEvents(filtered); err != nil {
			return summary, err
		}
	}

	if configuration.Verbosity > 0 {
		message := fmt.Sprintf("Wrote %d events with %d/%d particles of type %d to %s",
			summary.Events, summary.Matched, summary.Particles, particleID, fileOut)
		logger.Info(message, "filter")
	}
	return summary, nil
}

func writeSnapshot(writer *Writer, events []EscapingParticles, in riofs.Directory, opts FilterOptions) error {
	for i := range events {
		if err := writer.WriteEvent(&events[i]); err != nil {
			return err
		}
	}
	if err := writer.CloseTree(); err != nil {
		return err
	}
	if opts.CopyHisto {
		return writer.CopyObject(in, configuration.HistoName)
	}
	return nil
}
