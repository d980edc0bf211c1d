package domain

// Outcome is what happened to a single source file.
type Outcome int

const (
	// OutcomeSkipped means no capture time was found and the file was left in place.
	OutcomeSkipped Outcome = iota
	OutcomeMoved
	// OutcomePlanned means a dry run computed the move without performing it.
	OutcomePlanned
)

func (o Outcome) String() string {
	switch o {
	case OutcomeMoved:
		return "moved"
	case OutcomePlanned:
		return "planned"
	default:
		return "skipped"
	}
}

// Progress is the running tally reported after each file.
// Moved includes planned moves in a dry run.
type Progress struct {
	Processed int
	Moved     int
	Skipped   int
	Current   string
}

// Summary counts the outcomes of a whole run.
type Summary struct {
	Processed int
	Moved     int
	Planned   int
	Skipped   int
}

// Record counts one outcome.
func (s *Summary) Record(o Outcome) {
	s.Processed++
	switch o {
	case OutcomeMoved:
		s.Moved++
	case OutcomePlanned:
		s.Planned++
	default:
		s.Skipped++
	}
}
