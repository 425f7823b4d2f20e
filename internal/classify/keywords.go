package classify

// keywordGroup binds a category to the merchant brand and keyword substrings
// that imply it. Groups are tested in slice order and the first match wins,
// so ordering is part of the contract.
type keywordGroup struct {
	category string
	keywords []string
}

var merchantKeywordGroups = []keywordGroup{
	{"Health", []string{
		"gorzdrav", "аптека", "pharmacy", "медицин", "больниц", "клиника",
		"hospital", "доктор", "врач", "лекарств", "поликлиника",
	}},
	{"Food", []string{
		"magnit", "магнит", "perekrestok", "перекресток", "пятерочка", "pyaterochka",
		"ашан", "auchan", "metro", "метро", "дикси", "dixi", "лента", "lenta",
		"супермаркет", "продукт", "market", "grocery",
	}},
	{"Fuel", []string{
		"lukoil", "лукойл", "rosneft", "роснефть", "газпром", "gazprom",
		"shell", "bp", "total", "азс", "заправк",
	}},
	{"Restaurants", []string{
		"mcdonalds", "макдональдс", "kfc", "burger", "бургер", "pizza",
		"пицца", "кафе", "cafe", "ресторан", "restaurant", "столов",
	}},
	{"Transport", []string{
		"metro", "метро", "такси", "taxi", "яндекс", "yandex", "uber",
		"автобус", "bus", "поезд", "train", "самолет", "plane",
	}},
	{"Entertainment", []string{
		"кино", "cinema", "театр", "theatre", "музей", "museum",
		"развлечен", "entertainment", "игр", "game", "спорт", "sport",
	}},
	{"Clothing", []string{
		"zara", "h&m", "uniqlo", "adidas", "nike", "одежд", "clothes",
		"обув", "shoes", "fashion", "мода",
	}},
	{"Financial", []string{
		"банк", "bank", "сбп", "sbp", "перевод", "transfer", "пополнение",
		"снятие", "cash", "комиссия", "commission",
	}},
}

// hintTranslations maps the coarse category labels Alpha Bank puts in its
// export to catalog categories. Matched by substring against the lowercased
// bank hint.
var hintTranslations = []struct {
	hint     string
	category string
}{
	{"продукты", "Food"},
	{"финансовые операции", "Financial"},
	{"штрафы и налоги", "Financial"},
	{"прочие операции", "Other"},
	{"транспорт", "Transport"},
	{"развлечения", "Entertainment"},
	{"здоровье", "Health"},
	{"одежда", "Clothing"},
}

// raiffeisenKeywordGroups is the coarse payment-purpose categorizer for the
// Raiffeisen CSV export, which carries no MCC information.
var raiffeisenKeywordGroups = []keywordGroup{
	{"Food", []string{"магазин", "продукты", "супермаркет", "market"}},
	{"Transport", []string{"транспорт", "метро", "автобус", "такси"}},
	{"Health", []string{"аптека", "медицин", "клиника"}},
	{"Entertainment", []string{"кафе", "ресторан", "кино", "развлечен"}},
	{"Housing", []string{"коммунальн", "жку", "электричеств"}},
	{"Salary", []string{"зарплата", "salary", "доход"}},
}

// sberbankKeywordGroups is the coarse categorizer for Sberbank statement
// lines, which describe operations rather than merchants.
var sberbankKeywordGroups = []keywordGroup{
	{"Food", []string{"покупка", "магазин", "супермаркет"}},
	{"Transport", []string{"метро", "транспорт", "такси"}},
	{"Health", []string{"аптека", "медицина"}},
	{"Entertainment", []string{"кафе", "ресторан"}},
	{"Financial", []string{"перевод", "пополнение"}},
}
