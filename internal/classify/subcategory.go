package classify

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// brandAlias maps a lowercase text variant to the canonical display brand.
// Many variants collapse to one brand (latin and cyrillic spellings).
type brandAlias struct {
	variant string
	brand   string
}

var brandAliases = []brandAlias{
	{"пятерочка", "Пятёрочка"},
	{"pyaterochka", "Пятёрочка"},
	{"magnit", "Магнит"},
	{"магнит", "Магнит"},
	{"okey", "О`КЕЙ"},
	{"окей", "О`КЕЙ"},
	{"gorzdrav", "Горздрав"},
	{"горздрав", "Горздрав"},
	{"apteka", "Аптека"},
	{"аптека", "Аптека"},
	{"tele2", "Теле2"},
	{"теле2", "Теле2"},
	{"megafon", "МегаФон"},
	{"мегафон", "МегаФон"},
	{"beeline", "Билайн"},
	{"билайн", "Билайн"},
	{"mts", "МТС"},
	{"мтс", "МТС"},
	{"sberbank", "Сбербанк"},
	{"сбербанк", "Сбербанк"},
	{"alfabank", "Альфа-Банк"},
	{"альфа", "Альфа-Банк"},
	{"mcdonalds", "McDonald's"},
	{"kfc", "KFC"},
	{"burger king", "Burger King"},
	{"subway", "Subway"},
	{"rosinter", "Росинтер"},
	{"shokoladnitsa", "Шоколадница"},
	{"coffeehouse", "Кофе Хаус"},
}

var (
	locationRe = regexp.MustCompile(`RU/[^/]+/([^,\s]+)`)

	// Transfer narration patterns: "в пользу X", "получатель X", "платеж ... в X".
	narrationRes = []*regexp.Regexp{
		regexp.MustCompile(`в пользу\s+([^,\s]+)`),
		regexp.MustCompile(`получатель\s+([^,\s]+)`),
		regexp.MustCompile(`платеж.*?в\s+([^,\s]+)`),
	}

	titleCaser = cases.Title(language.Und)
)

// Subcategory extracts a human-readable merchant label from the raw
// description: known brand aliases first, then a RU/City/MERCHANT_CODE
// location tag, then transfer narration patterns. Returns "" when nothing
// meaningful is found.
func (c *Classifier) Subcategory(description string) string {
	if description == "" {
		return ""
	}

	descLower := strings.ToLower(description)

	for _, alias := range c.brands {
		if strings.Contains(descLower, alias.variant) {
			return alias.brand
		}
	}

	if m := locationRe.FindStringSubmatch(description); m != nil {
		merchant := strings.TrimSpace(strings.ReplaceAll(m[1], "_", " "))
		if utf8.RuneCountInString(merchant) > 3 {
			return titleCaser.String(strings.ToLower(merchant))
		}
	}

	for _, re := range narrationRes {
		if m := re.FindStringSubmatch(descLower); m != nil {
			company := strings.TrimSpace(m[1])
			if utf8.RuneCountInString(company) > 3 {
				return titleCaser.String(company)
			}
		}
	}

	return ""
}
