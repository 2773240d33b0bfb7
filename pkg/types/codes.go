package types

import "sort"

// Language is a two-letter language code accepted by the upstream API.
type Language string

// Country is a two-letter country code accepted by the upstream API.
type Country string

// Category is a top-headlines category.
type Category string

// SortKey orders search results.
type SortKey string

// Headline categories
const (
	CategoryGeneral       Category = "general"
	CategoryWorld         Category = "world"
	CategoryNation        Category = "nation"
	CategoryBusiness      Category = "business"
	CategoryTechnology    Category = "technology"
	CategoryEntertainment Category = "entertainment"
	CategorySports        Category = "sports"
	CategoryScience       Category = "science"
	CategoryHealth        Category = "health"
)

// Sort keys
const (
	SortPublishedAt SortKey = "publishedAt"
	SortRelevance   SortKey = "relevance"
)

// Article count and pagination bounds
const (
	MinArticles = 1
	MaxArticles = 100
	MinPage     = 1
)

var languageNames = map[Language]string{
	"ar": "Arabic", "zh": "Chinese", "nl": "Dutch", "en": "English",
	"fr": "French", "de": "German", "el": "Greek", "hi": "Hindi",
	"it": "Italian", "ja": "Japanese", "ml": "Malayalam", "mr": "Marathi",
	"no": "Norwegian", "pt": "Portuguese", "ro": "Romanian", "ru": "Russian",
	"es": "Spanish", "sv": "Swedish", "ta": "Tamil", "te": "Telugu", "uk": "Ukrainian",
}

var countryNames = map[Country]string{
	"au": "Australia", "br": "Brazil", "ca": "Canada", "cn": "China",
	"eg": "Egypt", "fr": "France", "de": "Germany", "gr": "Greece",
	"hk": "Hong Kong", "in": "India", "ie": "Ireland", "it": "Italy",
	"jp": "Japan", "nl": "Netherlands", "no": "Norway", "pk": "Pakistan",
	"pe": "Peru", "ph": "Philippines", "pt": "Portugal", "ro": "Romania",
	"ru": "Russian Federation", "sg": "Singapore", "es": "Spain",
	"se": "Sweden", "ch": "Switzerland", "tw": "Taiwan", "ua": "Ukraine",
	"gb": "United Kingdom", "us": "United States",
}

// categories keeps the documented order, which is also the order shown to clients.
var categories = []Category{
	CategoryGeneral, CategoryWorld, CategoryNation, CategoryBusiness, CategoryTechnology,
	CategoryEntertainment, CategorySports, CategoryScience, CategoryHealth,
}

var (
	categorySet   = make(map[Category]struct{}, len(categories))
	sortedLangs   []string
	sortedCountry []string
)

func init() {
	for _, c := range categories {
		categorySet[c] = struct{}{}
	}
	for code := range languageNames {
		sortedLangs = append(sortedLangs, string(code))
	}
	sort.Strings(sortedLangs)
	for code := range countryNames {
		sortedCountry = append(sortedCountry, string(code))
	}
	sort.Strings(sortedCountry)
}

// Valid reports whether l is a supported language code.
func (l Language) Valid() bool {
	_, ok := languageNames[l]
	return ok
}

// Name returns the English name of the language, or "" if unsupported.
func (l Language) Name() string { return languageNames[l] }

// Valid reports whether c is a supported country code.
func (c Country) Valid() bool {
	_, ok := countryNames[c]
	return ok
}

// Name returns the English name of the country, or "" if unsupported.
func (c Country) Name() string { return countryNames[c] }

func (c Category) Valid() bool {
	_, ok := categorySet[c]
	return ok
}

func (s SortKey) Valid() bool {
	return s == SortPublishedAt || s == SortRelevance
}

// SupportedLanguages returns the supported language codes in sorted order.
func SupportedLanguages() []string {
	return append([]string(nil), sortedLangs...)
}

// SupportedCountries returns the supported country codes in sorted order.
func SupportedCountries() []string {
	return append([]string(nil), sortedCountry...)
}

// SupportedCategories returns the headline categories in documented order.
func SupportedCategories() []string {
	out := make([]string, len(categories))
	for i, c := range categories {
		out[i] = string(c)
	}
	return out
}

// SupportedSortKeys returns the accepted sortby values.
func SupportedSortKeys() []string {
	return []string{string(SortPublishedAt), string(SortRelevance)}
}
