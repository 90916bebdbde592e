package refstore

import (
	"strings"
	"time"

	"github.com/labelproof/backend/internal/domain"
)

// referencePage is the wire shape of one reference table page.
type referencePage struct {
	Rows       []referenceRow `json:"rows"`
	TotalCount int            `json:"totalCount"`
}

type referenceRow struct {
	CanonicalName    string   `json:"canonical_name"`
	Synonyms         []string `json:"synonyms"`
	NoticeNumber     string   `json:"notice_number"`
	CASNumber        string   `json:"cas_number"`
	NotificationDate string   `json:"notification_date"`
	IsActive         bool     `json:"is_active"`
}

// documentPage is the wire shape of one regulatory document page.
type documentPage struct {
	Rows       []documentRow `json:"rows"`
	TotalCount int           `json:"totalCount"`
}

type documentRow struct {
	ID            string `json:"id"`
	Title         string `json:"title"`
	Agency        string `json:"agency"`
	Citation      string `json:"citation"`
	EffectiveDate string `json:"effective_date"`
	IsActive      bool   `json:"is_active"`
}

// mapReferenceRows converts wire rows to domain entries, dropping rows
// without a canonical name and blank synonyms.
func mapReferenceRows(rows []referenceRow) []domain.ReferenceEntry {
	entries := make([]domain.ReferenceEntry, 0, len(rows))
	for _, row := range rows {
		name := strings.TrimSpace(row.CanonicalName)
		if name == "" {
			continue
		}

		var synonyms []string
		for _, s := range row.Synonyms {
			if s = strings.TrimSpace(s); s != "" {
				synonyms = append(synonyms, s)
			}
		}

		entries = append(entries, domain.ReferenceEntry{
			CanonicalName:    name,
			Synonyms:         synonyms,
			NoticeNumber:     row.NoticeNumber,
			CASNumber:        row.CASNumber,
			NotificationDate: row.NotificationDate,
			IsActive:         row.IsActive,
		})
	}
	return entries
}

func mapDocumentRows(rows []documentRow) []domain.RegulatoryDocument {
	docs := make([]domain.RegulatoryDocument, 0, len(rows))
	for _, row := range rows {
		if row.ID == "" || row.Title == "" {
			continue
		}

		var effective time.Time
		if row.EffectiveDate != "" {
			// The store serves dates as YYYY-MM-DD; unparseable values are
			// left zero rather than dropping the document.
			effective, _ = time.Parse("2006-01-02", row.EffectiveDate)
		}

		docs = append(docs, domain.RegulatoryDocument{
			ID:            row.ID,
			Title:         row.Title,
			Agency:        row.Agency,
			Citation:      row.Citation,
			EffectiveDate: effective,
			IsActive:      row.IsActive,
		})
	}
	return docs
}
