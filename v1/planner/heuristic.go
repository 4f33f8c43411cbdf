package planner

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/resguardo/inventory-query/v1/plan"
	"github.com/resguardo/inventory-query/v1/vocabulary"
)

var monthAlt = "(enero|febrero|marzo|abril|mayo|junio|julio|agosto|septiembre|setiembre|octubre|noviembre|diciembre)"

var (
	countRe    = regexp.MustCompile(`\b(cuant[oa]s?|total(es)?|conteo|cantidad|numero de)\b`)
	groupRe    = regexp.MustCompile(`\b(?:agrupad[oa]s?\s+por|por)\s+(marcas?|tipos?|modelos?|ubicacion(?:es)?|estados?|estatus|status)\b`)
	chartRe    = regexp.MustCompile(`\b(grafic[ao]s?|chart|pie|pastel|barras|distribucion|histograma)\b`)
	modelsOfRe = regexp.MustCompile(`\bmodelos\s+(?:de|del)\s+(.+)$`)
	missingRe  = regexp.MustCompile(`\bsin\s+(ubicacion|factura|oc|orden de compra|(?:numero de\s+)?serie|(?:numero de\s+)?activo|folio|fecha(?: de recepcion)?)\b`)
	searchRe   = regexp.MustCompile(`\b(busca|buscar|buscame|parecid[oa]s?|similar(?:es)?|relacionad[oa]s?|semejantes?)\b`)

	brandPhraseRe    = regexp.MustCompile(`\bmarca\s+([a-z0-9][a-z0-9\-]*)`)
	typePhraseRe     = regexp.MustCompile(`\btipo\s+([a-z0-9][a-z0-9\-]*)`)
	modelPhraseRe    = regexp.MustCompile(`\bmodelo\s+(.+)$`)
	locationPhraseRe = []*regexp.Regexp{
		regexp.MustCompile(`\bubicad[oa]s?\s+en\s+(.+)$`),
		regexp.MustCompile(`\ben\s+la\s+ubicacion\s+(.+)$`),
		regexp.MustCompile(`\bubicacion\s+(.+)$`),
		regexp.MustCompile(`\ben\s+(?:la|el|los|las)\s+((?:oficina|bodega|almacen|sucursal|sala|piso|edificio|area|planta|sitio|laboratorio|caseta|cuarto)(?:es|s)?\b.*)$`),
	}
	serialRe = regexp.MustCompile(`\b(?:numero de serie|serie|sn|s/n)\s*:?\s*([a-z0-9][a-z0-9\-]*)`)
	activeRe = regexp.MustCompile(`\b(?:numero de activo|activo)\s*:?\s*([a-z0-9][a-z0-9\-]*)`)

	proposedRe    = regexp.MustCompile(`\bpropuestas?\s+(?:de\s+|para\s+)?baja\b`)
	bajaRe        = regexp.MustCompile(`\bbajas?\b`)
	altaRe        = regexp.MustCompile(`\baltas?\b`)
	registeredRe  = regexp.MustCompile(`\bdad[oa]s?\s+de\s+alta\b`)
	withDeletedRe = regexp.MustCompile(`\b(?:incluyendo|incluso|con|y)\s+(?:los\s+|las\s+)?(?:eliminad[oa]s|deshabilitad[oa]s|inhabilitad[oa]s|borrad[oa]s)\b`)
	deletedRe     = regexp.MustCompile(`\b(?:eliminad[oa]s?|deshabilitad[oa]s?|inhabilitad[oa]s?|borrad[oa]s?)\b`)

	invoiceRe       = regexp.MustCompile(`\b(con|sin)\s+factura\b`)
	purchaseOrderRe = regexp.MustCompile(`\b(con|sin)\s+(?:oc|orden(?:es)?\s+de\s+compra)\b`)

	monthRangeRe = regexp.MustCompile(`\bentre\s+` + monthAlt + `\s+y\s+` + monthAlt + `(?:\s+(?:de|del)\s+(\d{4}))?`)
	singleMonthRe = regexp.MustCompile(`\b(?:en|de|del|durante)\s+` + monthAlt + `(?:\s+(?:de|del)?\s*(\d{4}))?\b`)
	yearRe        = regexp.MustCompile(`\b(?:(?:registrad|cread|comprad|adquirid|recibid|agregad|ingresad|dad)[oa]s?(?:\s+de\s+alta)?\s+(?:en\s+|durante\s+)?(?:el\s+)?(?:ano\s+)?|(?:en|durante)\s+el\s+ano\s+)(\d{4})\b`)
	receptionRe   = regexp.MustCompile(`\b(?:recibid[oa]s?|recepcion)\b`)
	updatedRe     = regexp.MustCompile(`\b(?:actualizad[oa]s?|modificad[oa]s?)\b`)
)

var missingKeywords = map[string]string{
	"ubicacion":       vocabulary.MissingLocation,
	"factura":         vocabulary.MissingInvoice,
	"oc":              vocabulary.MissingPurchaseOrder,
	"orden de compra": vocabulary.MissingPurchaseOrder,
	"folio":           vocabulary.MissingInternalFolio,
}

// Heuristic builds plans from keyword and phrase rules alone. It needs no network
// and always produces a plan.
type Heuristic struct {
	defaultTopK int
	now         func() time.Time
}

// NewHeuristic returns a heuristic planner. now supplies the current date for
// ranges that omit the year; nil uses time.Now.
func NewHeuristic(defaultTopK int, now func() time.Time) *Heuristic {
	if now == nil {
		now = time.Now
	}
	return &Heuristic{defaultTopK: defaultTopK, now: now}
}

// Plan derives a plan candidate from question. The result still has to pass
// through Normalize and plan.Validate.
func (h *Heuristic) Plan(question string, page plan.Pagination) *plan.Plan {
	text := vocabulary.Normalize(question)
	tokens := vocabulary.Tokens(text)

	p := plan.New(plan.IntentList, page, h.defaultTopK)
	h.extractFilters(p, text, tokens)

	groupBy := ""

	// Later rules override earlier ones.
	if countRe.MatchString(text) {
		p.Intent = plan.IntentCount
	}
	if m := groupRe.FindStringSubmatch(text); m != nil {
		p.Intent = plan.IntentGroupCount
		groupBy = dimensionOf(m[1])
	}
	if chartRe.MatchString(text) {
		p.Intent = plan.IntentGroupCount
	}
	if m := modelsOfRe.FindStringSubmatch(text); m != nil {
		p.Intent = plan.IntentGroupCount
		groupBy = vocabulary.GroupByModel
		if brands := brandsIn(m[1]); len(brands) > 0 {
			setBrands(p, brands)
		}
	}
	if m := missingRe.FindStringSubmatch(text); m != nil {
		p.Intent = plan.IntentMissing
		field := missingField(m[1])
		target, _ := vocabulary.Missing(field)
		p.Missing = &plan.MissingSpec{Kind: target.Kind, Field: field}
	}
	if searchRe.MatchString(text) {
		p.Intent = plan.IntentSearch
	}

	switch p.Intent {
	case plan.IntentGroupCount:
		if groupBy == "" {
			groupBy = dimensionByKeyword(tokens)
		}
		p.GroupBy = &groupBy
	case plan.IntentSearch:
		q := strings.TrimSpace(question)
		p.Semantic.Query = &q
	}
	if p.Intent != plan.IntentMissing {
		p.Missing = nil
	}
	if p.Missing != nil && p.Missing.Field == vocabulary.MissingLocation {
		p.Filters.Location = nil
	}

	return p
}

func (h *Heuristic) extractFilters(p *plan.Plan, text string, tokens []string) {
	f := &p.Filters

	var brands []string
	seen := map[string]bool{}
	for _, tok := range tokens {
		if b, ok := vocabulary.LookupBrand(tok); ok && !seen[b] {
			seen[b] = true
			brands = append(brands, b)
		}
		if f.Type == nil {
			if t, ok := vocabulary.LookupType(tok); ok {
				f.Type = plan.String(t)
			}
		}
	}
	setBrands(p, brands)

	if len(brands) == 0 {
		if v := capture(brandPhraseRe, text); v != "" {
			f.Brand = &v
		}
	}
	if f.Type == nil {
		if v := capture(typePhraseRe, text); v != "" {
			f.Type = &v
		}
	}
	if m := modelPhraseRe.FindStringSubmatch(text); m != nil {
		if v := leadingWords(m[1], 3); v != "" {
			f.Model = &v
		}
	}
	if v := locationIn(text); v != "" {
		f.Location = &v
	}
	if v := capture(serialRe, text); hasDigit(v) {
		f.SerialNumber = &v
	}
	if v := capture(activeRe, text); hasDigit(v) {
		f.ActiveNumber = &v
	}

	switch {
	case proposedRe.MatchString(text):
		f.Status = plan.String(vocabulary.StatusPropuestaBaja)
	case bajaRe.MatchString(text):
		f.Status = plan.String(vocabulary.StatusBaja)
	case altaRe.MatchString(text) && !registeredRe.MatchString(text):
		f.Status = plan.String(vocabulary.StatusAlta)
	}

	switch {
	case withDeletedRe.MatchString(text):
		f.Enabled = nil
	case deletedRe.MatchString(text):
		f.Enabled = plan.Bool(false)
	}

	if m := invoiceRe.FindStringSubmatch(text); m != nil {
		f.HasInvoice = plan.Bool(m[1] == "con")
	}
	if m := purchaseOrderRe.FindStringSubmatch(text); m != nil {
		f.HasPurchaseOrder = plan.Bool(m[1] == "con")
	}

	h.extractDates(f, text)
}

// extractDates applies the first matching date rule: a month range, then a single
// month, then a full year.
func (h *Heuristic) extractDates(f *plan.FilterCriteria, text string) {
	currentYear := h.now().Year()

	var from, to string
	if m := monthRangeRe.FindStringSubmatch(text); m != nil {
		a, _ := vocabulary.Month(m[1])
		b, _ := vocabulary.Month(m[2])
		if a > b {
			a, b = b, a
		}
		year := yearOr(m[3], currentYear)
		from = isoDay(year, a, 1)
		to = isoDay(year, b, lastDayOfMonth(year, b))
	} else if m := singleMonthRe.FindStringSubmatch(text); m != nil {
		month, _ := vocabulary.Month(m[1])
		year := yearOr(m[2], currentYear)
		from = isoDay(year, month, 1)
		to = isoDay(year, month, lastDayOfMonth(year, month))
	} else if m := yearRe.FindStringSubmatch(text); m != nil {
		year := yearOr(m[1], currentYear)
		from = isoDay(year, 1, 1)
		to = isoDay(year, 12, 31)
	}
	if from == "" {
		return
	}

	field := vocabulary.DateFieldCreatedAt
	switch {
	case receptionRe.MatchString(text):
		field = vocabulary.DateFieldReceptionDate
	case updatedRe.MatchString(text):
		field = vocabulary.DateFieldUpdatedAt
	}
	f.DateField = &field
	f.DateFrom = &from
	f.DateTo = &to
}

func setBrands(p *plan.Plan, brands []string) {
	switch len(brands) {
	case 0:
	case 1:
		p.Filters.Brand = plan.String(brands[0])
		p.Filters.Brands = nil
	default:
		p.Filters.Brand = nil
		p.Filters.Brands = brands
	}
}

// brandsIn returns every known brand mentioned in text, uppercased, in order.
func brandsIn(text string) []string {
	var out []string
	seen := map[string]bool{}
	for _, tok := range vocabulary.Tokens(text) {
		if b, ok := vocabulary.LookupBrand(tok); ok {
			up := strings.ToUpper(b)
			if !seen[up] {
				seen[up] = true
				out = append(out, up)
			}
		}
	}
	return out
}

func dimensionOf(word string) string {
	switch {
	case strings.HasPrefix(word, "marca"):
		return vocabulary.GroupByBrand
	case strings.HasPrefix(word, "tipo"):
		return vocabulary.GroupByType
	case strings.HasPrefix(word, "modelo"):
		return vocabulary.GroupByModel
	case strings.HasPrefix(word, "ubicacion"):
		return vocabulary.GroupByLocation
	case strings.HasPrefix(word, "estado"), word == "estatus", word == "status":
		return vocabulary.GroupByStatus
	}
	return ""
}

// dimensionByKeyword picks the first dimension named anywhere in the question,
// in fixed precedence, defaulting to location.
func dimensionByKeyword(tokens []string) string {
	present := map[string]bool{}
	for _, tok := range tokens {
		if d := dimensionOf(tok); d != "" {
			present[d] = true
		}
	}
	for _, d := range vocabulary.GroupDimensions {
		if present[d] {
			return d
		}
	}
	return vocabulary.DefaultGroupBy
}

func missingField(keyword string) string {
	if f, ok := missingKeywords[keyword]; ok {
		return f
	}
	switch {
	case strings.HasSuffix(keyword, "serie"):
		return vocabulary.MissingSerialNumber
	case strings.HasSuffix(keyword, "activo"):
		return vocabulary.MissingActiveNumber
	default:
		return vocabulary.MissingReceptionDate
	}
}

// capture returns the first submatch of re in text unless it is a stop word.
func capture(re *regexp.Regexp, text string) string {
	m := re.FindStringSubmatch(text)
	if m == nil || vocabulary.IsStopWord(m[1]) {
		return ""
	}
	return m[1]
}

// locationIn returns the first location phrase in text. A phrase right after
// "sin" names a missing location, not a place.
func locationIn(text string) string {
	for _, re := range locationPhraseRe {
		m := re.FindStringSubmatchIndex(text)
		if m == nil || negated(text[:m[0]]) {
			continue
		}
		if v := locationWords(text[m[2]:m[3]], 4); v != "" {
			return v
		}
	}
	return ""
}

func negated(prefix string) bool {
	words := strings.Fields(prefix)
	return len(words) > 0 && words[len(words)-1] == "sin"
}

// leadingWords takes up to max words from text after any leading articles,
// stopping at the first stop word.
func leadingWords(text string, max int) string {
	var words []string
	for _, w := range vocabulary.Tokens(text) {
		if len(words) == 0 && articles[w] {
			continue
		}
		if vocabulary.IsStopWord(w) || len(words) == max {
			break
		}
		words = append(words, w)
	}
	return strings.Join(words, " ")
}

// locationWords works like leadingWords but keeps a "de" or "del" that
// joins two content words, as in "oficina de sistemas".
func locationWords(text string, max int) string {
	var words []string
	connector := ""
	for _, w := range vocabulary.Tokens(text) {
		if len(words) == 0 && articles[w] {
			continue
		}
		if len(words) == max {
			break
		}
		if vocabulary.IsStopWord(w) {
			if len(words) > 0 && connector == "" && (w == "de" || w == "del") {
				connector = w
				continue
			}
			break
		}
		if connector != "" {
			if len(words)+2 > max {
				break
			}
			words = append(words, connector)
			connector = ""
		}
		words = append(words, w)
	}
	return strings.Join(words, " ")
}

var articles = map[string]bool{"el": true, "la": true, "los": true, "las": true, "un": true, "una": true}

func hasDigit(s string) bool {
	return strings.ContainsAny(s, "0123456789")
}

func yearOr(s string, fallback int) int {
	var y int
	if _, err := fmt.Sscanf(s, "%d", &y); err != nil || y < 1900 {
		return fallback
	}
	return y
}

func isoDay(year, month, day int) string {
	return fmt.Sprintf("%04d-%02d-%02d", year, month, day)
}

func lastDayOfMonth(year, month int) int {
	return time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
