package documentrequest

import "strings"

// CategoryOther collects free-form types that are not in the catalog.
const CategoryOther = "other"

type DocumentType struct {
	Key   string
	Label string
	// Fee in centavos.
	Fee int64
}

// Catalog lists the known document types in display order. Rollups follow this order.
var Catalog = []DocumentType{
	{Key: "barangay_clearance", Label: "Barangay Clearance", Fee: 5000},
	{Key: "certificate_of_residency", Label: "Certificate of Residency", Fee: 3000},
	{Key: "certificate_of_indigency", Label: "Certificate of Indigency", Fee: 0},
	{Key: "business_clearance", Label: "Business Clearance", Fee: 20000},
	{Key: "barangay_id", Label: "Barangay ID", Fee: 10000},
	{Key: "cedula", Label: "Community Tax Certificate (Cedula)", Fee: 5000},
	{Key: CategoryOther, Label: "Other", Fee: 0},
}

var catalogIndex = func() map[string]DocumentType {
	idx := make(map[string]DocumentType, len(Catalog))
	for _, t := range Catalog {
		idx[t.Key] = t
	}
	return idx
}()

// LookupType resolves a stored type to its catalog entry. Unknown types resolve to "other".
func LookupType(raw string) (DocumentType, bool) {
	t, ok := catalogIndex[normalizeType(raw)]
	if !ok {
		return catalogIndex[CategoryOther], false
	}
	return t, true
}

// Category is the catalog key a stored type rolls up under.
func Category(raw string) string {
	t, _ := LookupType(raw)
	return t.Key
}

// Label is the display name of a stored type. Free-form types keep their own text.
func Label(raw string) string {
	if t, ok := LookupType(raw); ok {
		return t.Label
	}
	return strings.TrimSpace(raw)
}

// CatalogKeys returns the catalog keys in declared order.
func CatalogKeys() []string {
	keys := make([]string, len(Catalog))
	for i, t := range Catalog {
		keys[i] = t.Key
	}
	return keys
}

func normalizeType(raw string) string {
	return strings.ToLower(strings.TrimSpace(raw))
}
