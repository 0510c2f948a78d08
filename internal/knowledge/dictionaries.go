package knowledge

// The dictionaries below are the static domain vocabulary the classifier
// scores queries against. They are compiled into an immutable Store value at
// startup and never mutated afterwards.

func setOf(words ...string) map[string]bool {
	s := make(map[string]bool, len(words))
	for _, w := range words {
		s[w] = true
	}
	return s
}

var defaultBrands = setOf(
	"bosch", "mann", "brembo", "ate", "ferodo", "trw", "textar",
	"bilstein", "kyb", "sachs", "monroe", "ngk", "denso", "champion",
	"varta", "exide", "yuasa", "castrol", "mobil", "shell", "total",
	"motul", "mahle", "continental", "zimmermann", "beru",
	"ebc", "hiflo", "kn", "bmc", "did", "rk", "regina", "galfer",
	"delphi", "lucas", "hella", "valeo", "luk", "schaeffler",
	"bmw", "mercedes", "audi", "volkswagen", "toyota", "ford", "opel",
)

var defaultLuxuryBrands = setOf(
	"ferrari", "lamborghini", "porsche", "bentley", "rolls", "royce",
	"maserati", "aston", "martin", "mclaren", "bugatti", "pagani",
	"koenigsegg", "lotus", "alpine", "alfa", "romeo",
)

var defaultCategories = setOf(
	"klocki", "tarcza", "tarcze", "filtr", "filtry",
	"amortyzator", "amortyzatory", "świeca", "świece", "akumulator",
	"akumulatory", "olej", "oleje", "hamulce", "hamulcowe",
	"zawieszenie", "zapłon", "zapłonowa", "elektryka", "łańcuch",
	"napęd", "napędowy", "sprzęgło", "rozrząd", "pasek", "chłodzenie",
	"wydech", "tłumik", "katalizator", "wahacz", "łożysko", "piasta",
	"opony", "opona", "felgi", "felga", "koła", "koło",
)

var defaultCarModels = setOf(
	"golf", "passat", "polo", "tiguan", "touran", "caddy", "transporter",
	"corolla", "yaris", "avensis", "rav4", "hilux", "camry", "auris",
	"focus", "fiesta", "mondeo", "kuga", "transit", "ranger", "mustang",
	"astra", "corsa", "insignia", "mokka", "zafira", "vectra", "meriva",
	"clio", "megane", "scenic", "captur", "kadjar", "trafic", "master",
	"civic", "accord", "crv", "jazz", "hrv", "odyssey", "pilot",
	"octavia", "fabia", "superb", "kodiaq", "karoq", "scala", "kamiq",
	"i30", "i20", "tucson", "santa", "kona", "ioniq", "genesis",
	"sprinter", "vito",
)

var defaultMotorcycleTerms = setOf(
	"yamaha", "honda", "suzuki", "kawasaki", "ducati",
	"harley", "davidson", "triumph", "aprilia", "ktm", "husqvarna",
	"cbr", "gsx", "ninja", "panigale", "sportster", "street",
	"r1", "r6", "r3", "mt07", "mt09", "mt10", "fz6", "fz1",
)

var defaultCommonTerms = setOf(
	"przód", "tył", "przedni", "przednia", "tylny", "tylna", "lewy", "prawy",
	"diesel", "benzyna", "tdi", "tsi", "cdi", "hdi", "tdci",
	"sport", "racing", "premium", "heavy", "duty", "performance",
	"komplet", "zestaw", "para", "sztuka", "szt", "oryginał",
	"zamiennik", "oe", "oem", "aftermarket", "tuning", "ceramiczne",
	"zimowe", "letnie", "całoroczne", "wielosezonowe",
)

// defaultGeneralWords is the general-language dictionary: real words that
// carry some product context but are not themselves domain vocabulary.
var defaultGeneralWords = setOf(
	"część", "części", "samochód", "samochodu", "auto", "pojazd", "silnik",
	"skrzynia", "bieg", "biegów", "szyba", "lusterko", "drzwi", "maska",
	"bagażnik", "kierownica", "deska", "rozdzielcza", "fotel", "siedzenie",
	"zderzak", "błotnik", "reflektor", "lampa", "światło", "światła",
	"wycieraczka", "wycieraczki", "pióro", "klapa", "próg", "słupek",
	"sportowe", "terenowe", "miejskie", "szosowe", "motocykl", "motor",
)

// defaultStopWords are connective noise tokens that never carry product
// meaning on their own.
var defaultStopWords = setOf(
	"i", "a", "o", "u", "w", "z", "za", "do", "na", "od", "po", "przy",
	"dla", "bez", "pod", "nad", "się", "to", "ten", "ta", "te",
	"the", "an", "of", "in", "on", "at", "for", "with", "and", "or",
)

// defaultConnectives extends the stop words with question words,
// quantifiers and possessives that show up in conversational product
// queries. The structural detector must never treat these as an unknown
// brand; the list grew out of real false positives and is expected to keep
// evolving.
var defaultConnectives = setOf(
	"jak", "jaki", "jaka", "jakie", "ile", "czy", "gdzie", "kiedy",
	"który", "która", "które", "coś", "czego", "czegoś", "czym",
	"mój", "moja", "moje", "mojego", "mojej", "swój", "swoje",
	"szukam", "potrzebuję", "potrzebuje", "chcę", "chce", "mam",
	"proszę", "poproszę", "kupię", "kupie",
	"my", "your", "some", "any", "what", "which", "how", "need", "want",
)

// defaultFoodWords are non-automotive domain words whose presence makes a
// parts query absurd. A food word combined with a parts category
// ("klocki do pizzy") is noise, not lost demand.
var defaultFoodWords = setOf(
	"pizza", "pizzy", "pizzę", "kebab", "kebaba", "burger", "burgera",
	"frytki", "frytek", "chleb", "chleba", "bułka", "bułki", "masło",
	"ser", "sera", "mleko", "mleka", "kawa", "kawy", "herbata", "herbaty",
	"piwo", "piwa", "zupa", "zupy", "ciasto", "ciasta", "sushi",
	"obiad", "obiadu", "kolacja", "śniadanie", "jedzenie", "jedzenia",
	"lody", "lodów", "czekolada", "cukier", "sól", "pieprz",
)

// defaultFillerWords are greetings and chat filler. They only matter for
// queries with no recognized domain token at all.
var defaultFillerWords = setOf(
	"hej", "cześć", "czesc", "siema", "witam", "dzień", "dobry",
	"hello", "hi", "test", "testy", "testing", "dzięki", "dziekuje",
	"ok", "okej", "lol", "xd", "haha", "hehe", "elo", "nara",
)

// defaultKeyboardRuns are adjacent-key sequences typical of keyboard
// mashing. Matched as substrings of a token.
var defaultKeyboardRuns = []string{
	"qwerty", "qwert", "qwer", "werty", "asdfg", "asdf", "sdfg",
	"zxcvb", "zxcv", "xcvb", "qaz", "wsx", "edc",
	"qwe", "asd", "zxc",
}

// defaultGibberish are letter n-grams that essentially never occur in
// Polish or in part vocabulary.
var defaultGibberish = []string{
	"xq", "qx", "qv", "vq", "jq", "qj", "fq", "qg",
	"zzz", "qqq", "xxx", "vvv", "jjj",
}

// defaultTypoCorrections maps frequently observed misspellings and
// shorthands to their canonical token. Applied once, before all scoring.
var defaultTypoCorrections = map[string]string{
	"kloki":      "klocki",
	"klocek":     "klocki",
	"klockow":    "klocki",
	"filetr":     "filtr",
	"fitr":       "filtr",
	"amortyztor": "amortyzator",
	"swieca":     "świeca",
	"swica":      "świeca",
	"lozysko":    "łożysko",
	"lancuch":    "łańcuch",
	"bosh":       "bosch",
	"boshc":      "bosch",
	"mersedes":   "mercedes",
	"ferari":     "ferrari",
	"wv":         "volkswagen",
	"vw":         "volkswagen",
	"mb":         "mercedes",
	"yam":        "yamaha",
	"gol":        "golf",
	"sprin":      "sprinter",
}

// defaultPluralFold folds plural and inflected category forms onto the form
// the catalog uses, so "filtry mann" and "filtr mann" score identically.
var defaultPluralFold = map[string]string{
	"filtry":       "filtr",
	"filtrów":      "filtr",
	"tarczy":       "tarcza",
	"świec":        "świeca",
	"oleju":        "olej",
	"olejów":       "olej",
	"paski":        "pasek",
	"pasków":       "pasek",
	"łożyska":      "łożysko",
	"łożysk":       "łożysko",
	"amortyzatora": "amortyzator",
	"akumulatora":  "akumulator",
	"opon":         "opony",
}

// defaultCodePatterns are regular expressions recognizing vehicle model
// codes and part numbers (E90, 320i, A4, W204). Tokens are lowercase by the
// time they reach the store, so the patterns are case-insensitive.
var defaultCodePatterns = []string{
	`(?i)^[a-z0-9]{2,}\d{3,}`,
	`(?i)^\d{3,4}[a-z]{1,3}$`,
	`(?i)^[a-z]{1,3}\d{1,3}$`,
}
