package material

import "sync"

var (
	initOnce   sync.Once
	initResult LoadResult
)

// Init loads the process catalog once. Later calls return the first result.
func Init(path string) LoadResult {
	initOnce.Do(func() {
		initResult = Load(path)
	})
	return initResult
}

// Default returns the process catalog, loading the built-in table if Init
// was never called.
func Default() *Catalog {
	return Init("").Catalog
}
