package model

// QueryADLayer is the only show rule query understood today.
const QueryADLayer = "ad_layer"

// ShowRule selects geometry items for a step.
type ShowRule struct {
	Query string `json:"query"`
	Value string `json:"value"`
}

// SubstepConfig is a named unit of work within a step.
type SubstepConfig struct {
	Key       string `json:"key"`
	Label     string `json:"label"`
	Method    string `json:"method"`
	Automated bool   `json:"automated"`
}

// StepConfig is an ordered stage of the workflow. A step is identified by its index in
// WorkflowConfig.Steps.
type StepConfig struct {
	Key      string          `json:"key"`
	Label    string          `json:"label"`
	Show     []ShowRule      `json:"show"`
	Substeps []SubstepConfig `json:"substeps"`
}

// WorkflowConfig is the immutable part of a project, established by the start fetch.
type WorkflowConfig struct {
	// StepCount is informational, Len is authoritative.
	StepCount int          `json:"stepCount"`
	Steps     []StepConfig `json:"steps"`
}

// Len returns the number of steps.
func (c WorkflowConfig) Len() int {
	return len(c.Steps)
}

// Step returns the step at index i, false when i is out of range.
func (c WorkflowConfig) Step(i int) (StepConfig, bool) {
	if i < 0 || i >= len(c.Steps) {
		return StepConfig{}, false
	}

	return c.Steps[i], true
}

// Clone returns a deep copy of the configuration.
func (c WorkflowConfig) Clone() WorkflowConfig {
	out := WorkflowConfig{StepCount: c.StepCount}
	if c.Steps == nil {
		return out
	}

	out.Steps = make([]StepConfig, len(c.Steps))
	for i, step := range c.Steps {
		out.Steps[i] = StepConfig{
			Key:      step.Key,
			Label:    step.Label,
			Show:     cloneSlice(step.Show),
			Substeps: cloneSlice(step.Substeps),
		}
	}

	return out
}

func cloneSlice[T any](in []T) []T {
	if in == nil {
		return nil
	}

	out := make([]T, len(in))
	copy(out, in)

	return out
}
