package health

import "context"

// DBPinger checks record store availability.
type DBPinger interface {
	Ping(ctx context.Context) error
}

// CatalogSizer reports the number of loaded knowledge records.
type CatalogSizer interface {
	Len() int
}
