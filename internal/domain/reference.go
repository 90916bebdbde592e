package domain

import "time"

// Reference table names as exposed by the upstream regulatory data store.
const (
	TableGRASSubstances   = "gras_substances"
	TableNDINotifications = "ndi_notifications"
	TableNDIGrandfathered = "ndi_grandfathered"
	TableAllergens        = "major_allergens"
	TableRegulatoryDocs   = "regulatory_documents"
)

// ReferenceEntry is one canonical record from a regulatory reference table.
// The engine only ever holds read-only, time-bounded copies; the upstream
// store owns the data.
type ReferenceEntry struct {
	CanonicalName string   `json:"canonicalName"`
	Synonyms      []string `json:"synonyms,omitempty"`

	// Domain-specific metadata. NoticeNumber is set for NDI notifications,
	// CASNumber for GRAS substances.
	NoticeNumber     string `json:"noticeNumber,omitempty"`
	CASNumber        string `json:"casNumber,omitempty"`
	NotificationDate string `json:"notificationDate,omitempty"`

	IsActive bool `json:"isActive"`
}

// RegulatoryDocument is one active regulatory document record, cached for
// the retrieval/classification collaborator. The engine never interprets
// document contents.
type RegulatoryDocument struct {
	ID            string    `json:"id"`
	Title         string    `json:"title"`
	Agency        string    `json:"agency,omitempty"`
	Citation      string    `json:"citation,omitempty"`
	EffectiveDate time.Time `json:"effectiveDate,omitempty"`
	IsActive      bool      `json:"isActive"`
}
