package domain

import "context"

// ReferenceSource defines paginated read access to the upstream regulatory
// data store. Pages are filtered to active rows by the store.
type ReferenceSource interface {
	FetchPage(ctx context.Context, table string, offset, limit int) ([]ReferenceEntry, error)
	FetchDocumentPage(ctx context.Context, offset, limit int) ([]RegulatoryDocument, error)
}

// EntryProvider supplies the current snapshot of one reference table.
// Implementations degrade to stale or empty data instead of failing.
type EntryProvider interface {
	Get(ctx context.Context) []ReferenceEntry
}

// DocumentProvider supplies the active regulatory document set to the
// retrieval collaborator.
type DocumentProvider interface {
	ActiveDocuments(ctx context.Context) []RegulatoryDocument
}
