package domain

// Language is a supported display language code.
type Language string

const (
	LangEN Language = "EN"
	LangVN Language = "VN"
)

// Valid reports whether l is a language this system can render.
func (l Language) Valid() bool {
	return l == LangEN || l == LangVN
}

// LocalizedText holds parallel English and Vietnamese strings for the same
// semantic content. EN is the canonical text; VN may fall back to EN.
type LocalizedText struct {
	EN string `json:"EN"`
	VN string `json:"VN"`
}

// In returns the text for the requested language, falling back to English
// when the Vietnamese side is empty.
func (t LocalizedText) In(lang Language) string {
	if lang == LangVN && t.VN != "" {
		return t.VN
	}
	return t.EN
}
