package domain

import "strings"

// Ключи payload записи векторного индекса
const (
	PayloadBrand     = "brand"
	PayloadCategory  = "category"
	PayloadText      = "text"
	PayloadTechSpecs = "technical_specifications"
)

// Payload описывает метаданные вектора в индексе
type Payload map[string]string

// Embedding представляет запись векторного индекса: вектор товара с метаданными,
// ключом служит UUID товара.
type Embedding struct {
	ID      string
	Vector  []float32
	Payload Payload
}

func NewEmbedding(id string, vector []float32, payload Payload) *Embedding {
	return &Embedding{
		ID:      id,
		Vector:  vector,
		Payload: payload,
	}
}

// NewProductPayload собирает метаданные вектора товара.
// Текст совпадает с текстом, из которого построен вектор.
func NewProductPayload(brand, category, text, techSpecs string) Payload {
	return Payload{
		PayloadBrand:     brand,
		PayloadCategory:  category,
		PayloadText:      text,
		PayloadTechSpecs: techSpecs,
	}
}

// VectorMatch описывает результат поиска ближайших соседей,
// отсортированный по убыванию близости.
type VectorMatch struct {
	ID      string
	Score   float32
	Payload Payload
}

// FilterMatchesByKeywords оставляет только совпадения, у которых поле payload "text"
// содержит хотя бы одно из ключевых слов как подстроку. Сравнение чувствительно к
// регистру, без токенизации. Порядок совпадений сохраняется; результат может оказаться
// короче исходного top_k, повторный запрос не выполняется.
func FilterMatchesByKeywords(matches []VectorMatch, keywords []string) []VectorMatch {
	if len(keywords) == 0 {
		return matches
	}

	filtered := make([]VectorMatch, 0, len(matches))
	for _, match := range matches {
		text := match.Payload[PayloadText]
		for _, keyword := range keywords {
			if strings.Contains(text, keyword) {
				filtered = append(filtered, match)
				break
			}
		}
	}

	return filtered
}

// FilterKind — вид предиката нативного фильтра векторного индекса.
type FilterKind int

const (
	FilterEq FilterKind = iota // точное совпадение значения поля
	FilterIn                   // принадлежность множеству значений
)

// FieldFilter — типизированный предикат по полю payload,
// вычисляется самим индексом до усечения по top_k.
type FieldFilter struct {
	Field string
	Kind  FilterKind
	Eq    string
	In    []string
}

// NewBrandEqFilter возвращает фильтр точного совпадения бренда.
func NewBrandEqFilter(brand string) *FieldFilter {
	return &FieldFilter{
		Field: PayloadBrand,
		Kind:  FilterEq,
		Eq:    brand,
	}
}
