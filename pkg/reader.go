package pdgfilter

import (
	"fmt"

	"go-hep.org/x/hep/groot/riofs"
	"go-hep.org/x/hep/groot/rtree"
)

func OpenFile(filename string) (*riofs.File, error) {
	f, err := riofs.Open(filename)
	if err != nil {
		return nil, &ErrOpenFile{Filename: filename, Err: err}
	}
	return f, nil
}

// GetTree looks up treeName in dir and checks that it carries every
// branch of VariableList.
func GetTree(dir riofs.Directory, treeName string) (rtree.Tree, error) {
	obj, err := dir.Get(treeName)
	if err != nil {
		return nil, &ErrMissingTree{TreeName: treeName, Err: err}
	}
	tree, ok := obj.(rtree.Tree)
	if !ok {
		return nil, &ErrMissingTree{
			TreeName: treeName,
			Err:      fmt.Errorf("object is a %s, not a tree", obj.Class()),
		}
	}
	for _, name := range VariableList {
		if tree.Branch(name) == nil {
			return nil, &ErrMissingBranch{TreeName: treeName, Branch: name}
		}
	}
	return tree, nil
}

func readVars(evt *EscapingParticles) []rtree.ReadVar {
	rvars := []rtree.ReadVar{{Name: BranchPdg, Value: &evt.Pdg}}
	for i, column := range evt.floatColumns() {
		rvars = append(rvars, rtree.ReadVar{Name: VariableList[i+1], Value: column})
	}
	return rvars
}

// ReadEvents loads every entry of the tree into memory.
func ReadEvents(dir riofs.Directory, treeName string) ([]EscapingParticles, error) {
	tree, err := GetTree(dir, treeName)
	if err != nil {
		return nil, err
	}

	var evt EscapingParticles
	r, err := rtree.NewReader(tree, readVars(&evt))
	if err != nil {
		return nil, fmt.Errorf("error creating reader for tree %q: %w", treeName, err)
	}
	defer r.Close()

	events := make([]EscapingParticles, 0, tree.Entries())
	err = r.Read(func(ctx rtree.RCtx) error {
		// The reader reuses the slices of evt between entries.
		entry := cloneEvent(&evt)
		if err := CheckLengths(&entry, ctx.Entry); err != nil {
			return err
		}
		events = append(events, entry)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("error reading tree %q: %w", treeName, err)
	}
	if configuration.Verbosity > 0 {
		message := fmt.Sprintf("Read %d entries from tree %s", len(events), treeName)
		logger.Info(message, "reader")
	}
	return events, nil
}

func cloneEvent(evt *EscapingParticles) EscapingParticles {
	entry := EscapingParticles{Pdg: cloneSlice(evt.Pdg)}
	in := evt.floatColumns()
	out := entry.floatColumns()
	for i := range in {
		*out[i] = cloneSlice(*in[i])
	}
	return entry
}

func cloneSlice[T any](values []T) []T {
	out := make([]T, len(values))
	copy(out, values)
	return out
}
