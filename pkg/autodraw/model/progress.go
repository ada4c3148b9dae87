package model

// Progress is the mutable cursor over a project's workflow. It is replaced wholesale on
// every successful fetch.
//
// CurrentStep may equal the number of steps to mean "past the last step". IsComplete is
// informational and does not end the session.
type Progress struct {
	CurrentStep    int    `json:"current_step"`
	CurrentSubstep int    `json:"current_substep"`
	IsComplete     bool   `json:"is_complete"`
	LastUpdated    string `json:"last_updated"`
}

// ActiveStep reports the current step index when it points at one of n steps.
func (p Progress) ActiveStep(n int) (int, bool) {
	if p.CurrentStep < 0 || p.CurrentStep >= n {
		return 0, false
	}

	return p.CurrentStep, true
}
