package classify

import "strconv"

// mccEntry maps a range of merchant-category codes to one category. Single
// codes use from == to.
type mccEntry struct {
	category string
	from     int
	to       int
}

// mccEntries lists every known MCC assignment in definition order. The table
// is many-to-one and intentionally contains overlapping definitions; when a
// code appears more than once, the last definition wins at map construction
// time.
var mccEntries = []mccEntry{
	// Auto service and parts
	{"Auto", 4784, 4784}, {"Auto", 5013, 5013}, {"Auto", 5271, 5271},
	{"Auto", 5511, 5511}, {"Auto", 5521, 5521}, {"Auto", 5531, 5533},
	{"Auto", 5551, 5551}, {"Auto", 5561, 5561}, {"Auto", 5571, 5571},
	{"Auto", 5592, 5592}, {"Auto", 5598, 5599}, {"Auto", 7511, 7511},
	{"Auto", 7523, 7523}, {"Auto", 7531, 7531}, {"Auto", 7534, 7535},
	{"Auto", 7538, 7538}, {"Auto", 7542, 7542}, {"Auto", 7549, 7549},

	// Fuel stations
	{"Fuel", 5172, 5172}, {"Fuel", 5541, 5542}, {"Fuel", 5552, 5552},
	{"Fuel", 5983, 5983}, {"Fuel", 9752, 9752},

	// Accessories and repairs
	{"Accessories", 5948, 5948}, {"Accessories", 7251, 7251},
	{"Accessories", 7631, 7631},

	// Active recreation
	{"Entertainment", 7032, 7032}, {"Entertainment", 7932, 7933},
	{"Entertainment", 7996, 7996}, {"Entertainment", 7998, 7999},
	{"Entertainment", 7941, 7941}, {"Entertainment", 7992, 7992},
	{"Entertainment", 7997, 7997},

	// Alcohol
	{"Alcohol", 5921, 5921},

	// Pharmacies
	{"Health", 5122, 5122}, {"Health", 5912, 5912},

	// Car rental
	{"Transport", 3351, 3398}, {"Transport", 3400, 3410},
	{"Transport", 3412, 3423}, {"Transport", 3425, 3439},
	{"Transport", 3441, 3441}, {"Transport", 7512, 7513},
	{"Transport", 7519, 7519},

	// Children's goods
	{"Children", 5641, 5641}, {"Children", 5945, 5945},

	// Home and renovation
	{"Home", 780, 780}, {"Home", 1520, 1520}, {"Home", 1711, 1711},
	{"Home", 1731, 1731}, {"Home", 1740, 1740}, {"Home", 1750, 1750},
	{"Home", 1761, 1761}, {"Home", 1771, 1771}, {"Home", 2842, 2842},
	{"Home", 5021, 5021}, {"Home", 5039, 5039}, {"Home", 5046, 5046},
	{"Home", 5051, 5051}, {"Home", 5072, 5072}, {"Home", 5074, 5074},
	{"Home", 5085, 5085}, {"Home", 5198, 5198}, {"Home", 5200, 5200},
	{"Home", 5211, 5211}, {"Home", 5231, 5231}, {"Home", 5251, 5251},
	{"Home", 5261, 5261}, {"Home", 5712, 5714}, {"Home", 5718, 5719},
	{"Home", 5950, 5950}, {"Home", 5996, 5996}, {"Home", 7217, 7217},
	{"Home", 7641, 7641}, {"Home", 7692, 7692}, {"Home", 7699, 7699},

	// Pets
	{"Pets", 742, 742}, {"Pets", 5995, 5995},

	// Health services and goods
	{"Health", 4119, 4119}, {"Health", 5047, 5047}, {"Health", 5975, 5976},
	{"Health", 8011, 8011}, {"Health", 8021, 8021}, {"Health", 8031, 8031},
	{"Health", 8041, 8044}, {"Health", 8049, 8050}, {"Health", 8062, 8062},
	{"Health", 8071, 8071}, {"Health", 8099, 8099},

	// Cafes and restaurants
	{"Restaurants", 5811, 5813},

	// Books
	{"Books", 2741, 2741}, {"Books", 5111, 5111}, {"Books", 5192, 5192},
	{"Books", 5942, 5943}, {"Books", 5994, 5994},

	// Beauty
	{"Beauty", 5977, 5977}, {"Beauty", 7230, 7230}, {"Beauty", 7297, 7298},

	// Culture and arts
	{"Culture", 5970, 5972}, {"Culture", 7911, 7911}, {"Culture", 7922, 7922},
	{"Culture", 7991, 7991}, {"Culture", 7829, 7829}, {"Culture", 7832, 7832},
	{"Culture", 7841, 7841}, {"Culture", 5733, 5733}, {"Culture", 5735, 5735},
	{"Culture", 7929, 7929},

	// Marketplaces
	{"Shopping", 5262, 5262}, {"Shopping", 5300, 5300},
	{"Shopping", 5399, 5399}, {"Shopping", 5964, 5964},

	// Medical services (refines the generic Health assignments above)
	{"Medical", 4119, 4119}, {"Medical", 5047, 5047}, {"Medical", 8011, 8011},
	{"Medical", 8021, 8021}, {"Medical", 8031, 8031}, {"Medical", 8041, 8043},
	{"Medical", 8049, 8050}, {"Medical", 8062, 8062}, {"Medical", 8071, 8071},
	{"Medical", 8099, 8099},

	// Education
	{"Education", 8211, 8211}, {"Education", 8220, 8220},
	{"Education", 8241, 8241}, {"Education", 8244, 8244},
	{"Education", 8249, 8249}, {"Education", 8299, 8299},
	{"Education", 8351, 8351},

	// Clothing and footwear
	{"Clothing", 5137, 5137}, {"Clothing", 5139, 5139},
	{"Clothing", 5611, 5611}, {"Clothing", 5621, 5621},
	{"Clothing", 5631, 5631}, {"Clothing", 5651, 5651},
	{"Clothing", 5661, 5661}, {"Clothing", 5681, 5681},
	{"Clothing", 5691, 5691}, {"Clothing", 5699, 5699},
	{"Clothing", 5931, 5931}, {"Clothing", 7296, 7296},

	// Car purchase
	{"Auto", 5521, 5521}, {"Auto", 5551, 5551}, {"Auto", 5561, 5561},
	{"Auto", 5571, 5571}, {"Auto", 5592, 5592}, {"Auto", 5598, 5599},

	// Groceries
	{"Food", 5310, 5311}, {"Food", 5331, 5331}, {"Food", 5411, 5411},
	{"Food", 5422, 5422}, {"Food", 5441, 5441}, {"Food", 5451, 5451},
	{"Food", 5462, 5462}, {"Food", 5499, 5499}, {"Food", 7278, 7278},
	{"Food", 9751, 9751},

	// Entertainment
	{"Entertainment", 5733, 5733}, {"Entertainment", 5945, 5947},
	{"Entertainment", 5949, 5949}, {"Entertainment", 5970, 5972},
	{"Entertainment", 5998, 5998}, {"Entertainment", 7032, 7032},
	{"Entertainment", 7221, 7221}, {"Entertainment", 7395, 7395},
	{"Entertainment", 7829, 7829}, {"Entertainment", 7832, 7832},
	{"Entertainment", 7841, 7841}, {"Entertainment", 7911, 7911},
	{"Entertainment", 7922, 7922}, {"Entertainment", 7929, 7929},
	{"Entertainment", 7932, 7933}, {"Entertainment", 7941, 7941},
	{"Entertainment", 7991, 7994}, {"Entertainment", 7996, 7999},

	// Communication, internet and TV
	{"Communication", 4813, 4816}, {"Communication", 4821, 4821},
	{"Communication", 4899, 4899}, {"Communication", 7372, 7372},
	{"Communication", 7375, 7375},

	// Sporting goods
	{"Sports", 5655, 5655}, {"Sports", 5940, 5941},

	// Supermarkets (marketplace codes double as grocery chains here)
	{"Food", 5262, 5262}, {"Food", 5300, 5300}, {"Food", 5399, 5399},
	{"Food", 5964, 5964},

	// Taxi
	{"Transport", 4121, 4121},

	// Electronics
	{"Electronics", 5044, 5045}, {"Electronics", 5065, 5065},
	{"Electronics", 5722, 5722}, {"Electronics", 5732, 5732},
	{"Electronics", 5978, 5978}, {"Electronics", 5997, 5997},
	{"Electronics", 7379, 7379}, {"Electronics", 7622, 7623},
	{"Electronics", 7629, 7629},

	// Passenger transport
	{"Transport", 4011, 4112}, {"Transport", 4131, 4131},
	{"Transport", 4729, 4729}, {"Transport", 4789, 4789},

	// Fast food
	{"Fastfood", 5814, 5814},

	// Hobby
	{"Hobby", 5946, 5947}, {"Hobby", 5949, 5949}, {"Hobby", 5998, 5998},
	{"Hobby", 7221, 7221}, {"Hobby", 7395, 7395}, {"Hobby", 7993, 7994},

	// Flowers
	{"Flowers", 5193, 5193}, {"Flowers", 5992, 5992},

	// Digital goods
	{"Digital", 5734, 5735}, {"Digital", 5815, 5818},

	// Jewelry
	{"Jewelry", 5094, 5094}, {"Jewelry", 5944, 5944},

	// Ecosystem subscription codes (Yandex, Sber)
	{"Ecosystem", 3990, 3991},
}

// buildMCCTable flattens mccEntries into a code-keyed lookup map.
func buildMCCTable() map[string]string {
	table := make(map[string]string)
	for _, e := range mccEntries {
		for code := e.from; code <= e.to; code++ {
			table[formatMCC(code)] = e.category
		}
	}
	return table
}

// formatMCC renders a code as the 4-digit form found in statement text.
func formatMCC(code int) string {
	s := strconv.Itoa(code)
	for len(s) < 4 {
		s = "0" + s
	}
	return s
}
