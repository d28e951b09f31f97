package repositories

// RepositoryProvider holds all repository interfaces needed by services.
// This makes passing dependencies to the service container constructor cleaner.
type RepositoryProvider struct {
	// CurrencyDefinitions supplies the external currencies layered on top of the built-ins.
	// It may be nil when no file or database source is configured.
	CurrencyDefinitions CurrencyDefinitionReader
}
