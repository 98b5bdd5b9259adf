package model

// Remediation describes one failing target of a checker. Command is the
// exact invocation that reproduces the failure against the real tree, so a
// developer can fix it without knowing how the gate works internally.
type Remediation struct {
	Target  string `yaml:"target"`
	Summary string `yaml:"summary"`
	Command string `yaml:"command"`
	Output  string `yaml:"output,omitempty"`
}

// CheckOutcome is the normalized verdict of a single checker: pass/fail plus
// the remediation blocks for every failing target.
type CheckOutcome struct {
	Checker      string        `yaml:"checker"`
	Passed       bool          `yaml:"passed"`
	Remediations []Remediation `yaml:"remediations,omitempty"`
}

// RunReport aggregates the outcomes of one gate run. Overall pass requires
// every individual outcome to pass.
type RunReport struct {
	Forced   bool           `yaml:"forced"`
	Skipped  bool           `yaml:"skipped"`
	Passed   bool           `yaml:"passed"`
	Outcomes []CheckOutcome `yaml:"outcomes,omitempty"`
}
