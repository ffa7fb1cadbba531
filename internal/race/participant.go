package race

// Participant represents a registered race finisher.
type Participant struct {
	bib           string // externally supplied start number, unique key
	name          string // formatted display name
	finishTime    string // finish time text exactly as entered
	finishSeconds int    // decode of finishTime, the sort key
	timed         bool   // false when finishTime did not decode
	rank          int    // 1-based position, reassigned on every insert
}

// Bib returns the start number used as the unique key.
func (p *Participant) Bib() string {
	return p.bib
}

// Name returns the formatted display name.
func (p *Participant) Name() string {
	return p.name
}

// FinishTime returns the finish time text exactly as it was entered.
func (p *Participant) FinishTime() string {
	return p.finishTime
}

// FinishSeconds returns the decoded finish time in seconds. ok is false when
// the finish text did not decode; such a participant ranks after all timed
// participants.
func (p *Participant) FinishSeconds() (seconds int, ok bool) {
	return p.finishSeconds, p.timed
}

// Rank returns the 1-based position among all registered participants
// ordered by ascending finish time.
func (p *Participant) Rank() int {
	return p.rank
}
