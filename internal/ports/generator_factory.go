package ports

// GeneratorFactory is the port for looking up generators by FillMode.
type GeneratorFactory interface {
	// For returns a FileGenerator for the given FillMode, or an error if unsupported.
	For(m FillMode) (FileGenerator, error)
}
