package hfcache

// defaultLocator backs the package-level convenience functions. It reads
// the process environment and discards diagnostics.
var defaultLocator = New()

// CacheHome resolves the Hugging Face cache root using a default Locator.
func CacheHome() (string, error) {
	return defaultLocator.CacheHome()
}

// HubDir resolves the hub sub-cache using a default Locator.
func HubDir() (string, error) {
	return defaultLocator.HubDir()
}

// DatasetsDir resolves the datasets sub-cache using a default Locator.
func DatasetsDir() (string, error) {
	return defaultLocator.DatasetsDir()
}

// XDGCacheHome resolves the XDG cache base using a default Locator.
func XDGCacheHome() (string, error) {
	return defaultLocator.XDGCacheHome()
}

// ModelDir resolves a model's "main" snapshot directory using a default
// Locator.
func ModelDir(id string) (string, error) {
	return defaultLocator.ModelDir(id)
}

// DatasetDir resolves a dataset's "main" snapshot directory using a
// default Locator.
func DatasetDir(id string) (string, error) {
	return defaultLocator.DatasetDir(id)
}
