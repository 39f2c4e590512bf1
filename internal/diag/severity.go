package diag

// Severity ranks a diagnostic. The pipeline stages only ever emit SevError
// (every fault is fatal to its stage); the lower levels exist for the
// formatting layer and for informational notes.
type Severity uint8

const (
	// SevInfo is a remark that does not affect the outcome.
	SevInfo Severity = iota
	// SevWarning flags suspicious but still evaluable input.
	SevWarning
	// SevError is a fault: the stage that reported it produced no result.
	SevError
)

func (s Severity) String() string {
	switch s {
	case SevInfo:
		return "INFO"
	case SevWarning:
		return "WARNING"
	case SevError:
		return "ERROR"
	}
	return "UNKNOWN"
}
