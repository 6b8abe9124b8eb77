package locale

import (
	"strings"
	"sync"
	"time"

	"github.com/goodsign/monday"
	"golang.org/x/text/language"
)

var (
	builtinOnce sync.Once
	builtinSet  map[string]monday.Locale

	builtinCache sync.Map // canonical id -> Definition
)

// builtinOrdinals maps a language to its ordinal style. Languages not
// listed use "%d.".
var builtinOrdinals = map[string]string{
	"en": OrdinalEnglish,
	"fr": OrdinalFrench,
	"es": "%dº",
	"it": "%dº",
	"pt": "%dº",
}

func loadBuiltins() {
	builtinOnce.Do(func() {
		builtinSet = make(map[string]monday.Locale)
		for _, l := range monday.ListLocales() {
			builtinSet[string(l)] = l
		}
	})
}

func isBuiltin(id string) bool {
	loadBuiltins()
	_, ok := builtinSet[id]
	return ok
}

func builtinIDs() []string {
	loadBuiltins()
	ids := make([]string, 0, len(builtinSet))
	for id := range builtinSet {
		ids = append(ids, id)
	}
	return ids
}

// builtinDefinition derives a Definition from monday's name tables by
// formatting reference dates.
func builtinDefinition(id string) (Definition, bool) {
	if def, ok := builtinCache.Load(id); ok {
		return def.(Definition), true
	}
	loadBuiltins()
	ml, ok := builtinSet[id]
	if !ok {
		return Definition{}, false
	}

	def := Definition{
		Months:        make([]string, 12),
		MonthsShort:   make([]string, 12),
		Weekdays:      make([]string, 7),
		WeekdaysShort: make([]string, 7),
		WeekdaysMin:   make([]string, 7),
		Ordinal:       "%d.",
	}
	for m := 0; m < 12; m++ {
		ref := time.Date(2021, time.Month(m+1), 1, 12, 0, 0, 0, time.UTC)
		def.Months[m] = monday.Format(ref, "January", ml)
		def.MonthsShort[m] = strings.TrimSuffix(monday.Format(ref, "Jan", ml), ".")
	}
	// 2021-06-13 is a Sunday.
	sunday := time.Date(2021, 6, 13, 12, 0, 0, 0, time.UTC)
	for d := 0; d < 7; d++ {
		ref := sunday.AddDate(0, 0, d)
		def.Weekdays[d] = monday.Format(ref, "Monday", ml)
		def.WeekdaysShort[d] = strings.TrimSuffix(monday.Format(ref, "Mon", ml), ".")
		def.WeekdaysMin[d] = truncateRunes(def.WeekdaysShort[d], 2)
	}
	lang, _, _ := strings.Cut(id, "_")
	if ord, ok := builtinOrdinals[lang]; ok {
		def.Ordinal = ord
	}

	builtinCache.Store(id, def)
	return def, true
}

func english() Definition {
	def, ok := builtinDefinition(DefaultID)
	if !ok {
		return englishFallback
	}
	return def
}

// englishFallback is used if monday ever stops shipping en_US.
var englishFallback = Definition{
	Months: []string{"January", "February", "March", "April", "May", "June",
		"July", "August", "September", "October", "November", "December"},
	MonthsShort:   []string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"},
	Weekdays:      []string{"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"},
	WeekdaysShort: []string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"},
	WeekdaysMin:   []string{"Su", "Mo", "Tu", "We", "Th", "Fr", "Sa"},
	Ordinal:       OrdinalEnglish,
}

// CanonicalID maps a locale id to the form used as registry key.
// BCP 47 tags resolve to language_REGION ("en", "en-us" and "EN_us" all
// become "en_US"); ids that are not language tags are lowercased.
func CanonicalID(id string) string {
	raw := strings.TrimSpace(id)
	if raw == "" {
		return ""
	}
	tag, err := language.Parse(strings.ReplaceAll(raw, "_", "-"))
	if err != nil {
		return strings.ToLower(raw)
	}
	base, conf := tag.Base()
	if conf != language.Exact {
		return strings.ToLower(raw)
	}
	region, conf := tag.Region()
	if conf == language.No {
		return base.String()
	}
	return base.String() + "_" + region.String()
}
