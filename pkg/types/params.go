package types

// Upstream query parameter names
const (
	ParamQuery    = "q"
	ParamLang     = "lang"
	ParamCountry  = "country"
	ParamMax      = "max"
	ParamIn       = "in"
	ParamNullable = "nullable"
	ParamFrom     = "from"
	ParamTo       = "to"
	ParamSortBy   = "sortby"
	ParamPage     = "page"
	ParamCategory = "category"
)

// SearchParams holds the arguments of a keyword news search.
// Empty strings and nil pointers mean "not supplied".
type SearchParams struct {
	Query       string
	Lang        Language
	Country     Country
	MaxArticles *int
	SearchIn    string // comma-separated: title, description, content
	Nullable    string // comma-separated: description, content, image
	From        string // ISO 8601
	To          string // ISO 8601
	SortBy      SortKey
	Page        *int
}

// HeadlinesParams holds the arguments of a top-headlines request.
type HeadlinesParams struct {
	Category    Category
	Lang        Language
	Country     Country
	MaxArticles *int
	Nullable    string
	From        string
	To          string
	Query       string
	Page        *int
}

// Int returns a pointer to v.
func Int(v int) *int { return &v }

// Validate checks the search arguments against the allow-lists and ranges.
func (p SearchParams) Validate() error {
	if p.Query == "" {
		return &ValidationError{Field: ParamQuery, Err: ErrEmptyQuery}
	}
	if err := validateCommon(p.Lang, p.Country, p.MaxArticles, p.Page); err != nil {
		return err
	}
	if p.SortBy != "" && !p.SortBy.Valid() {
		return &ValidationError{Field: ParamSortBy, Value: string(p.SortBy), Supported: SupportedSortKeys(), Err: ErrUnsupportedSortKey}
	}
	return nil
}

// Used returns only the supplied parameters keyed by their upstream names.
func (p SearchParams) Used() map[string]any {
	used := map[string]any{ParamQuery: p.Query}
	putString(used, ParamLang, string(p.Lang))
	putString(used, ParamCountry, string(p.Country))
	putInt(used, ParamMax, p.MaxArticles)
	putString(used, ParamIn, p.SearchIn)
	putString(used, ParamNullable, p.Nullable)
	putString(used, ParamFrom, p.From)
	putString(used, ParamTo, p.To)
	putString(used, ParamSortBy, string(p.SortBy))
	putInt(used, ParamPage, p.Page)
	return used
}

// Validate checks the headline arguments against the allow-lists and ranges.
func (p HeadlinesParams) Validate() error {
	if p.Category != "" && !p.Category.Valid() {
		return &ValidationError{Field: ParamCategory, Value: string(p.Category), Supported: SupportedCategories(), Err: ErrUnsupportedCategory}
	}
	return validateCommon(p.Lang, p.Country, p.MaxArticles, p.Page)
}

// Used returns only the supplied parameters keyed by their upstream names.
func (p HeadlinesParams) Used() map[string]any {
	used := make(map[string]any)
	putString(used, ParamCategory, string(p.Category))
	putString(used, ParamLang, string(p.Lang))
	putString(used, ParamCountry, string(p.Country))
	putInt(used, ParamMax, p.MaxArticles)
	putString(used, ParamNullable, p.Nullable)
	putString(used, ParamFrom, p.From)
	putString(used, ParamTo, p.To)
	putString(used, ParamQuery, p.Query)
	putInt(used, ParamPage, p.Page)
	return used
}

// EffectiveCategory returns the requested category, or general when omitted.
func (p HeadlinesParams) EffectiveCategory() Category {
	if p.Category == "" {
		return CategoryGeneral
	}
	return p.Category
}

func validateCommon(lang Language, country Country, maxArticles, page *int) error {
	if lang != "" && !lang.Valid() {
		return &ValidationError{Field: ParamLang, Value: string(lang), Supported: SupportedLanguages(), Err: ErrUnsupportedLanguage}
	}
	if country != "" && !country.Valid() {
		return &ValidationError{Field: ParamCountry, Value: string(country), Supported: SupportedCountries(), Err: ErrUnsupportedCountry}
	}
	if maxArticles != nil && (*maxArticles < MinArticles || *maxArticles > MaxArticles) {
		return &ValidationError{Field: "max_articles", Value: *maxArticles, Err: ErrArticleCountRange}
	}
	if page != nil && *page < MinPage {
		return &ValidationError{Field: ParamPage, Value: *page, Err: ErrPageRange}
	}
	return nil
}

func putString(m map[string]any, key, value string) {
	if value != "" {
		m[key] = value
	}
}

func putInt(m map[string]any, key string, value *int) {
	if value != nil {
		m[key] = *value
	}
}
