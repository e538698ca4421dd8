package domain

import "strings"

// AmenityParseResult carries the merged amenity list plus a mismatch flag so
// callers can surface asymmetric EN/VN counts instead of silently truncating.
type AmenityParseResult struct {
	Amenities []LocalizedText
	// Mismatch is true when the EN and VN lists had different lengths.
	// Extra VN entries beyond the EN length are dropped.
	Mismatch bool
}

// ParseAmenities splits two free-text comma-separated lists and zips them by
// position. For index i the amenity is {EN: en[i], VN: vn[i]}, with VN
// falling back to the English text when absent.
func ParseAmenities(enText, vnText string) AmenityParseResult {
	en := splitList(enText)
	vn := splitList(vnText)

	out := make([]LocalizedText, 0, len(en))
	for i, e := range en {
		v := e
		if i < len(vn) {
			v = vn[i]
		}
		out = append(out, LocalizedText{EN: e, VN: v})
	}
	return AmenityParseResult{
		Amenities: out,
		Mismatch:  len(en) != len(vn),
	}
}

func splitList(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
