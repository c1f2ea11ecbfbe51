package ports

// FillMode selects how a fixture file's bytes are produced.
type FillMode string

const (
	FillModePattern FillMode = "pattern"
	FillModeRandom  FillMode = "random"
)

// Valid reports whether m is a known fill mode.
func (m FillMode) Valid() bool {
	switch m {
	case FillModePattern, FillModeRandom:
		return true
	}
	return false
}
