package pdgfilter

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
)

// Output file of the base variant. Every run overwrites it.
const BaseOutputFile = "test.root"

// ParseParticleID converts the particle identifier given on the command
// line into the type stored in pdgEsc.
func ParseParticleID(value string) (int32, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(value), 10, 32)
	if err != nil {
		return 0, &ErrParseParticle{Value: value, Err: err}
	}
	return int32(id), nil
}

// OutputFilename derives the output name of the extended variant:
// dir/run001.root and 2112 give dir/run001_2112.root.
func OutputFilename(fileIn string, particleID int32) string {
	stem := strings.TrimSuffix(fileIn, filepath.Ext(fileIn))
	return fmt.Sprintf("%s_%d.root", stem, particleID)
}

// Mask selects the particles of type particleID.
func Mask(pdg []int32, particleID int32) []bool {
	mask := make([]bool, len(pdg))
	for i, code := range pdg {
		mask[i] = code == particleID
	}
	return mask
}

// ApplyMask keeps values[i] where mask[i] is set, in order.
// The result is never nil.
func ApplyMask[T any](values []T, mask []bool) []T {
	selected := make([]T, 0, countTrue(mask))
	for i, keep := range mask {
		if keep {
			selected = append(selected, values[i])
		}
	}
	return selected
}

func countTrue(mask []bool) int {
	n := 0
	for _, v := range mask {
		if v {
			n++
		}
	}
	return n
}

// CheckLengths verifies that every field of the event has as many values
// as pdgEsc.
func CheckLengths(evt *EscapingParticles, entry int64) error {
	expected := evt.Len()
	for i, column := range evt.floatColumns() {
		if len(*column) != expected {
			return &ErrLengthMismatch{
				Entry:    entry,
				Branch:   VariableList[i+1],
				Length:   len(*column),
				Expected: expected,
			}
		}
	}
	return nil
}

// FilterEvent keeps only the particles of type particleID. The mask is
// computed once from pdgEsc and applied to all fields.
func FilterEvent(evt *EscapingParticles, particleID int32, entry int64) (EscapingParticles, error) {
	if err := CheckLengths(evt, entry); err != nil {
		return EscapingParticles{}, err
	}
	mask := Mask(evt.Pdg, particleID)

	filtered := EscapingParticles{Pdg: ApplyMask(evt.Pdg, mask)}
	in := evt.floatColumns()
	out := filtered.floatColumns()
	for i := range in {
		*out[i] = ApplyMask(*in[i], mask)
	}
	return filtered, nil
}

// FilterEvents filters every event. The number of events is preserved;
// events without matches keep empty fields.
func FilterEvents(events []EscapingParticles, particleID int32) ([]EscapingParticles, error) {
	filtered := make([]EscapingParticles, len(events))
	for i := range events {
		evt, err := FilterEvent(&events[i], particleID, int64(i))
		if err != nil {
			return nil, err
		}
		filtered[i] = evt
	}
	return filtered, nil
}
