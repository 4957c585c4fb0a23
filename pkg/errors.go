package pdgfilter

import "fmt"

// ErrOpenFile represents an error when opening an input file.
type ErrOpenFile struct {
	Filename string
	Err      error
}

func (e *ErrOpenFile) Error() string {
	return fmt.Sprintf("error opening file %q: %v", e.Filename, e.Err)
}

func (e *ErrOpenFile) Unwrap() error { return e.Err }

// ErrCreateFile represents an error when creating an output file.
type ErrCreateFile struct {
	Filename string
	Err      error
}

func (e *ErrCreateFile) Error() string {
	return fmt.Sprintf("error creating file %q: %v", e.Filename, e.Err)
}

func (e *ErrCreateFile) Unwrap() error { return e.Err }

// ErrMissingTree is returned when the input file has no tree with the
// requested name.
type ErrMissingTree struct {
	TreeName string
	Err      error
}

func (e *ErrMissingTree) Error() string {
	return fmt.Sprintf("error getting tree %q: %v", e.TreeName, e.Err)
}

func (e *ErrMissingTree) Unwrap() error { return e.Err }

// ErrMissingBranch is returned when the tree lacks one of the tracked fields.
type ErrMissingBranch struct {
	TreeName string
	Branch   string
}

func (e *ErrMissingBranch) Error() string {
	return fmt.Sprintf("tree %q has no branch %q", e.TreeName, e.Branch)
}

// ErrLengthMismatch is returned when the per-particle fields of one entry
// do not all have the length of pdgEsc.
type ErrLengthMismatch struct {
	Entry    int64
	Branch   string
	Length   int
	Expected int
}

func (e *ErrLengthMismatch) Error() string {
	return fmt.Sprintf("entry %d: branch %q has %d values, %s has %d",
		e.Entry, e.Branch, e.Length, BranchPdg, e.Expected)
}

// ErrParseParticle is returned when the particle identifier is not an int32.
type ErrParseParticle struct {
	Value string
	Err   error
}

func (e *ErrParseParticle) Error() string {
	return fmt.Sprintf("invalid particle identifier %q: %v", e.Value, e.Err)
}

func (e *ErrParseParticle) Unwrap() error { return e.Err }

// ErrMissingObject is returned when an auxiliary object is absent from the
// input file.
type ErrMissingObject struct {
	Name string
	Err  error
}

func (e *ErrMissingObject) Error() string {
	return fmt.Sprintf("error getting object %q: %v", e.Name, e.Err)
}

func (e *ErrMissingObject) Unwrap() error { return e.Err }
