package output

// FunctionStatus is the validation outcome of one manifest function.
type FunctionStatus struct {
	Name      string `json:"name" yaml:"name"`
	Class     string `json:"class" yaml:"class"`
	Kind      string `json:"kind" yaml:"kind"`
	Signature string `json:"signature,omitempty" yaml:"signature,omitempty"`
	Status    string `json:"status" yaml:"status"`
	ID        string `json:"id,omitempty" yaml:"id,omitempty"`
	Reason    string `json:"reason,omitempty" yaml:"reason,omitempty"`
	Error     string `json:"error,omitempty" yaml:"error,omitempty"`
}

// ValidateSummary counts validation outcomes.
type ValidateSummary struct {
	Total  int `json:"total" yaml:"total"`
	Passed int `json:"passed" yaml:"passed"`
	Failed int `json:"failed" yaml:"failed"`
}

// ValidateOutput is the structured result of the validate command.
type ValidateOutput struct {
	Manifest  string           `json:"manifest" yaml:"manifest"`
	Functions []FunctionStatus `json:"functions" yaml:"functions"`
	Summary   ValidateSummary  `json:"summary" yaml:"summary"`
}

// ClassInfo describes a loadable class.
type ClassInfo struct {
	Name        string `json:"name" yaml:"name"`
	Kind        string `json:"kind" yaml:"kind"`
	Source      string `json:"source" yaml:"source"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
}

// ClassesOutput is the structured result of the classes command.
type ClassesOutput struct {
	Classes []ClassInfo `json:"classes" yaml:"classes"`
}

// SignaturesOutput is the structured result of the signatures command.
type SignaturesOutput struct {
	Class      string   `json:"class" yaml:"class"`
	Kind       string   `json:"kind" yaml:"kind"`
	Signatures []string `json:"signatures" yaml:"signatures"`
}

// TypeInfo is one row of the type translation table.
type TypeInfo struct {
	Type      string `json:"type" yaml:"type"`
	Inspector string `json:"inspector,omitempty" yaml:"inspector,omitempty"`
	Supported bool   `json:"supported" yaml:"supported"`
}

// TypesOutput is the structured result of the types command.
type TypesOutput struct {
	Types []TypeInfo `json:"types" yaml:"types"`
}
