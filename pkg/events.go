package pdgfilter

// Branch names of the escaping-particle block of the simulation tree.
// The order is the order in which branches are written to the output file.
const (
	BranchPdg      = "pdgEsc"
	BranchX        = "xEsc"
	BranchY        = "yEsc"
	BranchZ        = "zEsc"
	BranchTheta    = "thetaEsc"
	BranchPhi      = "phiEsc"
	BranchE        = "eEsc"
	BranchTime     = "timeEsc"
	BranchInitialX = "initialXEsc"
	BranchInitialY = "initialYEsc"
	BranchInitialZ = "initialZEsc"
)

var VariableList = []string{
	BranchPdg,
	BranchX,
	BranchY,
	BranchZ,
	BranchTheta,
	BranchPhi,
	BranchE,
	BranchTime,
	BranchInitialX,
	BranchInitialY,
	BranchInitialZ,
}

// EscapingParticles is one entry of the tree: the parallel per-particle
// attributes of every particle leaving the world volume in one event.
type EscapingParticles struct {
	Pdg      []int32
	X        []float64
	Y        []float64
	Z        []float64
	Theta    []float64
	Phi      []float64
	E        []float64
	Time     []float64
	InitialX []float64
	InitialY []float64
	InitialZ []float64
}

// floatColumns returns the ten floating point fields in VariableList order
// (VariableList[1:]).
func (e *EscapingParticles) floatColumns() []*[]float64 {
	return []*[]float64{
		&e.X, &e.Y, &e.Z,
		&e.Theta, &e.Phi,
		&e.E, &e.Time,
		&e.InitialX, &e.InitialY, &e.InitialZ,
	}
}

// Len is the number of escaping particles in the event, as given by pdgEsc.
func (e *EscapingParticles) Len() int {
	return len(e.Pdg)
}

// RunSummary describes one filtering run.
type RunSummary struct {
	FileIn     string
	FileOut    string
	ParticleID int32
	Events     int
	Particles  int
	Matched    int
	HistoCopy  bool
	Census     map[int32]int
}
