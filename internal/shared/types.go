package shared

// Task types follow the domain:action naming convention.
const (
	TypeStoreBook           = "catalog:store_book"
	TypeRefreshCatalogCache = "catalog:refresh_cache"
)

// Queue names.
const (
	QueueCatalog = "catalog"
)
