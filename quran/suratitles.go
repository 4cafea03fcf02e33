package quran

// suraNamesInOrder is the canonical title of each of the 114 suras, in
// Qur'ān order; suraNamesInOrder[0] names sura 1.
var suraNamesInOrder = [114]string{
	"الفاتحة", "البقرة", "آل عمران", "النساء", "المائدة", "الأنعام", "الأعراف",
	"الأنفال", "التوبة", "يونس", "هود", "يوسف", "الرعد", "إبراهيم", "الحجر",
	"النحل", "الإسراء", "الكهف", "مريم", "طه", "الأنبياء", "الحج", "المؤمنون",
	"النور", "الفرقان", "الشعراء", "النمل", "القصص", "العنكبوت", "الروم",
	"لقمان", "السجدة", "الأحزاب", "سبأ", "فاطر", "يس", "الصافات", "ص",
	"الزمر", "غافر", "فصلت", "الشورى", "الزخرف", "الدخان", "الجاثية",
	"الأحقاف", "محمد", "الفتح", "الحجرات", "ق", "الذاريات", "الطور", "النجم",
	"القمر", "الرحمن", "الواقعة", "الحديد", "المجادلة", "الحشر", "الممتحنة",
	"الصف", "الجمعة", "المنافقون", "التغابن", "الطلاق", "التحريم", "الملك",
	"القلم", "الحاقة", "المعارج", "نوح", "الجن", "المزمل", "المدثر",
	"القيامة", "الإنسان", "المرسلات", "النبأ", "النازعات", "عبس", "التكوير",
	"الانفطار", "المطففين", "الانشقاق", "البروج", "الطارق", "الأعلى",
	"الغاشية", "الفجر", "البلد", "الشمس", "الليل", "الضحى", "الشرح",
	"التين", "العلق", "القدر", "البينة", "الزلزلة", "العاديات", "القارعة",
	"التكاثر", "العصر", "الهمزة", "الفيل", "قريش", "الماعون", "الكوثر",
	"الكافرون", "النصر", "المسد", "الإخلاص", "الفلق", "الناس",
}

// suraEpithets lists additional classical epithets for suras that are
// commonly referred to by names other than their canonical title.
var suraEpithets = map[string]int{
	"أم القرآن":    1,
	"أم الكتاب":    1,
	"السبع المثاني": 1,
	"فسطاط القرآن": 2,
	"قلب القرآن":   36,
}

// SuraTitles maps every canonical sura title and classical epithet to
// its 1-based sura number. Build uses it, via indexSuraNames, to seed
// sura_names: each key is normalised and recorded against the
// token-id span of the sura it names.
var SuraTitles = func() map[string]int {
	m := make(map[string]int, len(suraNamesInOrder)+len(suraEpithets))
	for i, name := range suraNamesInOrder {
		m[name] = i + 1
	}
	for name, sura := range suraEpithets {
		m[name] = sura
	}
	return m
}()
