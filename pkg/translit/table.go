package translit

// rules is the ordered replacement table. Earlier rules win when sources overlap,
// so entries must not be sorted or deduplicated.
var rules = []Rule{
	{Token: "0", Sources: []string{"°", "₀", "۰", "０"}},
	{Token: "1", Sources: []string{"¹", "₁", "۱", "１"}},
	{Token: "2", Sources: []string{"²", "₂", "۲", "２"}},
	{Token: "3", Sources: []string{"³", "₃", "۳", "３"}},
	{Token: "4", Sources: []string{"⁴", "₄", "۴", "٤", "４"}},
	{Token: "5", Sources: []string{"⁵", "₅", "۵", "٥", "５"}},
	{Token: "6", Sources: []string{"⁶", "₆", "۶", "٦", "６"}},
	{Token: "7", Sources: []string{"⁷", "₇", "۷", "７"}},
	{Token: "8", Sources: []string{"⁸", "₈", "۸", "８"}},
	{Token: "9", Sources: []string{"⁹", "₉", "۹", "９"}},
	{Token: "a", Sources: []string{
		"à", "á", "ả", "ã", "ạ", "ă", "ắ", "ằ", "ẳ", "ẵ",
		"ặ", "â", "ấ", "ầ", "ẩ", "ẫ", "ậ", "ā", "ą", "å",
		"α", "ά", "ἀ", "ἁ", "ἂ", "ἃ", "ἄ", "ἅ", "ἆ", "ἇ",
		"ᾀ", "ᾁ", "ᾂ", "ᾃ", "ᾄ", "ᾅ", "ᾆ", "ᾇ", "ὰ", "ά",
		"ᾰ", "ᾱ", "ᾲ", "ᾳ", "ᾴ", "ᾶ", "ᾷ", "а", "أ", "အ",
		"\u102c", "\u102b", "ǻ", "ǎ", "ª", "ა", "अ", "ا", "ａ", "ä",
	}},
	{Token: "b", Sources: []string{"б", "β", "ب", "ဗ", "ბ", "ｂ"}},
	{Token: "c", Sources: []string{"ç", "ć", "č", "ĉ", "ċ", "ｃ"}},
	{Token: "d", Sources: []string{
		"ď", "ð", "đ", "ƌ", "ȡ", "ɖ", "ɗ", "ᵭ", "ᶁ", "ᶑ",
		"д", "δ", "د", "ض", "ဍ", "ဒ", "დ", "ｄ",
	}},
	{Token: "e", Sources: []string{
		"é", "è", "ẻ", "ẽ", "ẹ", "ê", "ế", "ề", "ể", "ễ",
		"ệ", "ë", "ē", "ę", "ě", "ĕ", "ė", "ε", "έ", "ἐ",
		"ἑ", "ἒ", "ἓ", "ἔ", "ἕ", "ὲ", "έ", "е", "ё", "э",
		"є", "ə", "ဧ", "\u1031", "\u1032", "ე", "ए", "إ", "ئ", "ｅ",
	}},
	{Token: "f", Sources: []string{"ф", "φ", "ف", "ƒ", "ფ", "ｆ"}},
	{Token: "g", Sources: []string{
		"ĝ", "ğ", "ġ", "ģ", "г", "ґ", "γ", "ဂ", "გ", "گ",
		"ｇ",
	}},
	{Token: "h", Sources: []string{"ĥ", "ħ", "η", "ή", "ح", "ه", "ဟ", "\u103e", "ჰ", "ｈ"}},
	{Token: "i", Sources: []string{
		"í", "ì", "ỉ", "ĩ", "ị", "î", "ï", "ī", "ĭ", "į",
		"ı", "ι", "ί", "ϊ", "ΐ", "ἰ", "ἱ", "ἲ", "ἳ", "ἴ",
		"ἵ", "ἶ", "ἷ", "ὶ", "ί", "ῐ", "ῑ", "ῒ", "ΐ", "ῖ",
		"ῗ", "і", "ї", "и", "ဣ", "\u102d", "\u102e", "ည\u103a", "ǐ", "ი",
		"इ", "ی", "ｉ",
	}},
	{Token: "j", Sources: []string{"ĵ", "ј", "Ј", "ჯ", "ج", "ｊ"}},
	{Token: "k", Sources: []string{
		"ķ", "ĸ", "к", "κ", "Ķ", "ق", "ك", "က", "კ", "ქ",
		"ک", "ｋ",
	}},
	{Token: "l", Sources: []string{
		"ł", "ľ", "ĺ", "ļ", "ŀ", "л", "λ", "ل", "လ", "ლ",
		"ｌ",
	}},
	{Token: "m", Sources: []string{"м", "μ", "م", "မ", "მ", "ｍ"}},
	{Token: "n", Sources: []string{
		"ñ", "ń", "ň", "ņ", "ŉ", "ŋ", "ν", "н", "ن", "န",
		"ნ", "ｎ",
	}},
	{Token: "o", Sources: []string{
		"ó", "ò", "ỏ", "õ", "ọ", "ô", "ố", "ồ", "ổ", "ỗ",
		"ộ", "ơ", "ớ", "ờ", "ở", "ỡ", "ợ", "ø", "ō", "ő",
		"ŏ", "ο", "ὀ", "ὁ", "ὂ", "ὃ", "ὄ", "ὅ", "ὸ", "ό",
		"о", "و", "θ", "\u102d\u102f", "ǒ", "ǿ", "º", "ო", "ओ", "ｏ",
		"ö",
	}},
	{Token: "p", Sources: []string{"п", "π", "ပ", "პ", "پ", "ｐ"}},
	{Token: "q", Sources: []string{"ყ", "ｑ"}},
	{Token: "r", Sources: []string{"ŕ", "ř", "ŗ", "р", "ρ", "ر", "რ", "ｒ"}},
	{Token: "s", Sources: []string{
		"ś", "š", "ş", "с", "σ", "ș", "ς", "س", "ص", "စ",
		"ſ", "ს", "ｓ",
	}},
	{Token: "t", Sources: []string{
		"ť", "ţ", "т", "τ", "ț", "ت", "ط", "ဋ", "တ", "ŧ",
		"თ", "ტ", "ｔ",
	}},
	{Token: "u", Sources: []string{
		"ú", "ù", "ủ", "ũ", "ụ", "ư", "ứ", "ừ", "ử", "ữ",
		"ự", "û", "ū", "ů", "ű", "ŭ", "ų", "µ", "у", "ဉ",
		"\u102f", "\u1030", "ǔ", "ǖ", "ǘ", "ǚ", "ǜ", "უ", "उ", "ｕ",
		"ў", "ü",
	}},
	{Token: "v", Sources: []string{"в", "ვ", "ϐ", "ｖ"}},
	{Token: "w", Sources: []string{"ŵ", "ω", "ώ", "ဝ", "\u103d", "ｗ"}},
	{Token: "x", Sources: []string{"χ", "ξ", "ｘ"}},
	{Token: "y", Sources: []string{
		"ý", "ỳ", "ỷ", "ỹ", "ỵ", "ÿ", "ŷ", "й", "ы", "υ",
		"ϋ", "ύ", "ΰ", "ي", "ယ", "ｙ",
	}},
	{Token: "z", Sources: []string{"ź", "ž", "ż", "з", "ζ", "ز", "ဇ", "ზ", "ｚ"}},
	{Token: "aa", Sources: []string{"ع", "आ", "آ"}},
	{Token: "ae", Sources: []string{"æ", "ǽ"}},
	{Token: "ai", Sources: []string{"ऐ"}},
	{Token: "ch", Sources: []string{"ч", "ჩ", "ჭ", "چ"}},
	{Token: "dj", Sources: []string{"ђ", "đ"}},
	{Token: "dz", Sources: []string{"џ", "ძ"}},
	{Token: "ei", Sources: []string{"ऍ"}},
	{Token: "gh", Sources: []string{"غ", "ღ"}},
	{Token: "ii", Sources: []string{"ई"}},
	{Token: "ij", Sources: []string{"ĳ"}},
	{Token: "kh", Sources: []string{"х", "خ", "ხ"}},
	{Token: "lj", Sources: []string{"љ"}},
	{Token: "nj", Sources: []string{"њ"}},
	{Token: "oe", Sources: []string{"œ", "ؤ"}},
	{Token: "oi", Sources: []string{"ऑ"}},
	{Token: "oii", Sources: []string{"ऒ"}},
	{Token: "ps", Sources: []string{"ψ"}},
	{Token: "sh", Sources: []string{"ш", "შ", "ش"}},
	{Token: "shch", Sources: []string{"щ"}},
	{Token: "ss", Sources: []string{"ß"}},
	{Token: "sx", Sources: []string{"ŝ"}},
	{Token: "th", Sources: []string{"þ", "ϑ", "ث", "ذ", "ظ"}},
	{Token: "ts", Sources: []string{"ц", "ც", "წ"}},
	{Token: "uu", Sources: []string{"ऊ"}},
	{Token: "ya", Sources: []string{"я"}},
	{Token: "yu", Sources: []string{"ю"}},
	{Token: "zh", Sources: []string{"ж", "ჟ", "ژ"}},
	{Token: "(c)", Sources: []string{"©"}},
	{Token: "A", Sources: []string{
		"Á", "À", "Ả", "Ã", "Ạ", "Ă", "Ắ", "Ằ", "Ẳ", "Ẵ",
		"Ặ", "Â", "Ấ", "Ầ", "Ẩ", "Ẫ", "Ậ", "Å", "Ā", "Ą",
		"Α", "Ά", "Ἀ", "Ἁ", "Ἂ", "Ἃ", "Ἄ", "Ἅ", "Ἆ", "Ἇ",
		"ᾈ", "ᾉ", "ᾊ", "ᾋ", "ᾌ", "ᾍ", "ᾎ", "ᾏ", "Ᾰ", "Ᾱ",
		"Ὰ", "Ά", "ᾼ", "А", "Ǻ", "Ǎ", "Ａ", "Ä",
	}},
	{Token: "B", Sources: []string{"Б", "Β", "ब", "Ｂ"}},
	{Token: "C", Sources: []string{"Ç", "Ć", "Č", "Ĉ", "Ċ", "Ｃ"}},
	{Token: "D", Sources: []string{
		"Ď", "Ð", "Đ", "Ɖ", "Ɗ", "Ƌ", "ᴅ", "ᴆ", "Д", "Δ",
		"Ｄ",
	}},
	{Token: "E", Sources: []string{
		"É", "È", "Ẻ", "Ẽ", "Ẹ", "Ê", "Ế", "Ề", "Ể", "Ễ",
		"Ệ", "Ë", "Ē", "Ę", "Ě", "Ĕ", "Ė", "Ε", "Έ", "Ἐ",
		"Ἑ", "Ἒ", "Ἓ", "Ἔ", "Ἕ", "Έ", "Ὲ", "Е", "Ё", "Э",
		"Є", "Ə", "Ｅ",
	}},
	{Token: "F", Sources: []string{"Ф", "Φ", "Ｆ"}},
	{Token: "G", Sources: []string{"Ğ", "Ġ", "Ģ", "Г", "Ґ", "Γ", "Ｇ"}},
	{Token: "H", Sources: []string{"Η", "Ή", "Ħ", "Ｈ"}},
	{Token: "I", Sources: []string{
		"Í", "Ì", "Ỉ", "Ĩ", "Ị", "Î", "Ï", "Ī", "Ĭ", "Į",
		"İ", "Ι", "Ί", "Ϊ", "Ἰ", "Ἱ", "Ἳ", "Ἴ", "Ἵ", "Ἶ",
		"Ἷ", "Ῐ", "Ῑ", "Ὶ", "Ί", "И", "І", "Ї", "Ǐ", "ϒ",
		"Ｉ",
	}},
	{Token: "J", Sources: []string{"Ｊ"}},
	{Token: "K", Sources: []string{"К", "Κ", "Ｋ"}},
	{Token: "L", Sources: []string{"Ĺ", "Ł", "Л", "Λ", "Ļ", "Ľ", "Ŀ", "ल", "Ｌ"}},
	{Token: "M", Sources: []string{"М", "Μ", "Ｍ"}},
	{Token: "N", Sources: []string{"Ń", "Ñ", "Ň", "Ņ", "Ŋ", "Н", "Ν", "Ｎ"}},
	{Token: "O", Sources: []string{
		"Ó", "Ò", "Ỏ", "Õ", "Ọ", "Ô", "Ố", "Ồ", "Ổ", "Ỗ",
		"Ộ", "Ơ", "Ớ", "Ờ", "Ở", "Ỡ", "Ợ", "Ø", "Ō", "Ő",
		"Ŏ", "Ο", "Ό", "Ὀ", "Ὁ", "Ὂ", "Ὃ", "Ὄ", "Ὅ", "Ὸ",
		"Ό", "О", "Θ", "Ө", "Ǒ", "Ǿ", "Ｏ", "Ö",
	}},
	{Token: "P", Sources: []string{"П", "Π", "Ｐ"}},
	{Token: "Q", Sources: []string{"Ｑ"}},
	{Token: "R", Sources: []string{"Ř", "Ŕ", "Р", "Ρ", "Ŗ", "Ｒ"}},
	{Token: "S", Sources: []string{"Ş", "Ŝ", "Ș", "Š", "Ś", "С", "Σ", "Ｓ"}},
	{Token: "T", Sources: []string{"Ť", "Ţ", "Ŧ", "Ț", "Т", "Τ", "Ｔ"}},
	{Token: "U", Sources: []string{
		"Ú", "Ù", "Ủ", "Ũ", "Ụ", "Ư", "Ứ", "Ừ", "Ử", "Ữ",
		"Ự", "Û", "Ū", "Ů", "Ű", "Ŭ", "Ų", "У", "Ǔ", "Ǖ",
		"Ǘ", "Ǚ", "Ǜ", "Ｕ", "Ў", "Ü",
	}},
	{Token: "V", Sources: []string{"В", "Ｖ"}},
	{Token: "W", Sources: []string{"Ω", "Ώ", "Ŵ", "Ｗ"}},
	{Token: "X", Sources: []string{"Χ", "Ξ", "Ｘ"}},
	{Token: "Y", Sources: []string{
		"Ý", "Ỳ", "Ỷ", "Ỹ", "Ỵ", "Ÿ", "Ῠ", "Ῡ", "Ὺ", "Ύ",
		"Ы", "Й", "Υ", "Ϋ", "Ŷ", "Ｙ",
	}},
	{Token: "Z", Sources: []string{"Ź", "Ž", "Ż", "З", "Ζ", "Ｚ"}},
	{Token: "AE", Sources: []string{"Æ", "Ǽ"}},
	{Token: "Ch", Sources: []string{"Ч"}},
	{Token: "Dj", Sources: []string{"Ђ"}},
	{Token: "Dz", Sources: []string{"Џ"}},
	{Token: "Gx", Sources: []string{"Ĝ"}},
	{Token: "Hx", Sources: []string{"Ĥ"}},
	{Token: "Ij", Sources: []string{"Ĳ"}},
	{Token: "Jx", Sources: []string{"Ĵ"}},
	{Token: "Kh", Sources: []string{"Х"}},
	{Token: "Lj", Sources: []string{"Љ"}},
	{Token: "Nj", Sources: []string{"Њ"}},
	{Token: "Oe", Sources: []string{"Œ"}},
	{Token: "Ps", Sources: []string{"Ψ"}},
	{Token: "Sh", Sources: []string{"Ш"}},
	{Token: "Shch", Sources: []string{"Щ"}},
	{Token: "Ss", Sources: []string{"ẞ"}},
	{Token: "Th", Sources: []string{"Þ"}},
	{Token: "Ts", Sources: []string{"Ц"}},
	{Token: "Ya", Sources: []string{"Я"}},
	{Token: "Yu", Sources: []string{"Ю"}},
	{Token: "Zh", Sources: []string{"Ж"}},
	{Token: " ", Sources: []string{
		"\u00a0", "\u2000", "\u2001", "\u2002", "\u2003", "\u2004", "\u2005", "\u2006", "\u2007", "\u2008",
		"\u2009", "\u200a", "\u202f", "\u205f", "\u3000", "\uffa0",
	}},
}
