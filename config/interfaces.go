package config

// IServiceConfiguration is implemented by configurations which can be loaded with Load.
type IServiceConfiguration interface {
	// Validates configuration entries.
	Validate() error
}
