package pdgfilter

import (
	"errors"
	"fmt"

	"go-hep.org/x/hep/groot/rhist"
	"go-hep.org/x/hep/groot/riofs"
	"go-hep.org/x/hep/groot/rtree"
)

// Writer snapshots filtered events into a new ROOT file.
type Writer struct {
	File       *riofs.File
	Filename   string
	TreeName   string
	Tree       rtree.Writer
	EvtCounter int
	event      EscapingParticles
	treeClosed bool
}

// NewWriter creates (or truncates) filename and books the output tree.
func NewWriter(filename string, treeName string) (*Writer, error) {
	if configuration.Verbosity > 0 {
		logger.Info(fmt.Sprintf("Creating file: %s", filename), "writer")
	}
	f, err := riofs.Create(filename)
	if err != nil {
		return nil, &ErrCreateFile{Filename: filename, Err: err}
	}

	w := &Writer{
		File:     f,
		Filename: filename,
		TreeName: treeName,
	}
	wvars := []rtree.WriteVar{{Name: BranchPdg, Value: &w.event.Pdg}}
	for i, column := range w.event.floatColumns() {
		wvars = append(wvars, rtree.WriteVar{Name: VariableList[i+1], Value: column})
	}

	w.Tree, err = rtree.NewWriter(f, treeName, wvars,
		rtree.WithTitle(treeName),
		configuration.Compression.writeOption(configuration.CompressionLevel),
	)
	if err != nil {
		errTree := fmt.Errorf("error creating tree %q in %q: %w", treeName, filename, err)
		if errClose := f.Close(); errClose != nil {
			return nil, errors.Join(errTree, errClose)
		}
		return nil, errTree
	}
	return w, nil
}

func (w *Writer) WriteEvent(evt *EscapingParticles) error {
	if w.treeClosed {
		return fmt.Errorf("tree %q already closed", w.TreeName)
	}
	w.event = *evt
	if _, err := w.Tree.Write(); err != nil {
		return fmt.Errorf("error writing entry %d: %w", w.EvtCounter, err)
	}
	w.EvtCounter++
	return nil
}

// CloseTree flushes the tree. Objects may still be added to the file
// until Close.
func (w *Writer) CloseTree() error {
	if w.treeClosed {
		return nil
	}
	w.treeClosed = true
	if err := w.Tree.Close(); err != nil {
		return fmt.Errorf("error closing tree %q: %w", w.TreeName, err)
	}
	return nil
}

// CopyObject copies the object called name from src into the output file.
// It is only allowed once the tree snapshot is complete.
func (w *Writer) CopyObject(src riofs.Directory, name string) error {
	if !w.treeClosed {
		return fmt.Errorf("cannot copy %q before tree %q is closed", name, w.TreeName)
	}
	obj, err := src.Get(name)
	if err != nil {
		return &ErrMissingObject{Name: name, Err: err}
	}
	if err := w.File.Put(name, obj); err != nil {
		return fmt.Errorf("error writing %q to %q: %w", name, w.Filename, err)
	}
	if configuration.Verbosity > 0 {
		message := fmt.Sprintf("Copied %s (%s)", name, obj.Class())
		if h, ok := obj.(rhist.H1); ok {
			message = fmt.Sprintf("%s with %d entries", message, int64(h.Entries()))
		}
		logger.Info(message, "writer")
	}
	return nil
}

func (w *Writer) Close() error {
	if configuration.Verbosity > 0 {
		logger.Info(fmt.Sprintf("Closing file %s", w.Filename), "writer")
	}
	var errs []error

	if err := w.CloseTree(); err != nil {
		errs = append(errs, err)
	}
	if err := w.File.Close(); err != nil {
		errs = append(errs, fmt.Errorf("error closing file: %w", err))
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}
	return nil
}
