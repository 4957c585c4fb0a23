package pdgfilter

import (
	"fmt"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// Census counts escaping particles per PDG code.
func Census(events []EscapingParticles) map[int32]int {
	counts := make(map[int32]int)
	for _, evt := range events {
		for _, code := range evt.Pdg {
			counts[code]++
		}
	}
	return counts
}

// SortedCodes returns the PDG codes of a census in increasing order.
func SortedCodes(census map[int32]int) []int32 {
	codes := maps.Keys(census)
	slices.Sort(codes)
	return codes
}

func logCensus(census map[int32]int) {
	for _, code := range SortedCodes(census) {
		message := fmt.Sprintf("PDG %d: %d particles", code, census[code])
		logger.Info(message, "census")
	}
}
