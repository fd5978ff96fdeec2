package reference

const (
	countrySaudi = "المملكة العربية السعودية"
	countryUAE   = "الإمارات العربية المتحدة"
	countryEgypt = "مصر"
)

// Default returns the reference tables the field force works with.
func Default() *Data {
	return New(defaultCountries(), defaultBrands(), defaultClassifications(), defaultSpecialties(), defaultDoctors())
}

func defaultCountries() []Country {
	return []Country{
		{Name: countrySaudi, Areas: []Area{
			{Name: "المنطقة الشرقية", Cities: []string{"الدمام", "الخبر", "الظهران"}},
			{Name: "المنطقة الوسطى", Cities: []string{"الرياض", "الخرج", "المجمعة"}},
			{Name: "المنطقة الغربية", Cities: []string{"جدة", "مكة المكرمة", "المدينة المنورة"}},
		}},
		{Name: countryUAE, Areas: []Area{
			{Name: "إمارة دبي", Cities: []string{"دبي", "جبل علي"}},
			{Name: "إمارة أبوظبي", Cities: []string{"أبوظبي", "العين"}},
			{Name: "إمارة الشارقة", Cities: []string{"الشارقة", "خورفكان"}},
		}},
		{Name: countryEgypt, Areas: []Area{
			{Name: "القاهرة الكبرى", Cities: []string{"القاهرة", "الجيزة", "6 أكتوبر"}},
			{Name: "الإسكندرية", Cities: []string{"الإسكندرية", "برج العرب"}},
			{Name: "الدلتا", Cities: []string{"المنصورة", "طنطا"}},
		}},
	}
}

func defaultBrands() []string {
	return []string{"فايزر", "نوفارتس", "روش", "سانوفي", "باير"}
}

func defaultClassifications() []string {
	return []string{"Class A", "Class B", "Class C"}
}

func defaultSpecialties() []string {
	return []string{
		"أمراض القلب",
		"أمراض الباطنة",
		"طب الأطفال",
		"أمراض النساء والتوليد",
		"جراحة العظام",
		"طب العيون",
		"الأمراض الجلدية",
		"الأنف والأذن والحنجرة",
		"الطب النفسي",
		"المخ والأعصاب",
	}
}

func defaultDoctors() []DoctorProfile {
	return []DoctorProfile{
		{
			Name:      "د. أحمد محمد",
			Products1: []string{"Panadol", "Brufen"}, Products2: []string{"Nexium", "Lipitor"}, Products3: []string{"Concor", "Glucophage"},
			Country: countrySaudi, Area: "المنطقة الشرقية", City: "الدمام", Address: "شارع الملك فهد، حي النور",
			Brand: "فايزر", Classification: "Class A", Specialty: "أمراض القلب",
		},
		{
			Name:      "د. سارة خالد",
			Products1: []string{"Augmentin", "Amoxil"}, Products2: []string{"Zithromax", "Crestor"}, Products3: []string{"Ventolin", "Lantus"},
			Country: countryUAE, Area: "إمارة دبي", City: "دبي", Address: "شارع الشيخ زايد، برج الخليج",
			Brand: "نوفارتس", Classification: "Class B", Specialty: "طب الأطفال",
		},
		{
			Name:      "د. محمد عبدالله",
			Products1: []string{"Voltaren", "Panadol"}, Products2: []string{"Plavix", "Nexium"}, Products3: []string{"Januvia", "Concor"},
			Country: countryEgypt, Area: "القاهرة الكبرى", City: "القاهرة", Address: "شارع التحرير، وسط البلد",
			Brand: "روش", Classification: "Class A", Specialty: "أمراض الباطنة",
		},
		{
			Name:      "د. فاطمة علي",
			Products1: []string{"Brufen", "Voltaren"}, Products2: []string{"Lipitor", "Zithromax"}, Products3: []string{"Glucophage", "Ventolin"},
			Country: countrySaudi, Area: "المنطقة الغربية", City: "جدة", Address: "شارع فلسطين، حي الروضة",
			Brand: "سانوفي", Classification: "Class B", Specialty: "أمراض النساء والتوليد",
		},
		{
			Name:      "د. عمر حسن",
			Products1: []string{"Amoxil", "Augmentin"}, Products2: []string{"Crestor", "Plavix"}, Products3: []string{"Lantus", "Januvia"},
			Country: countryUAE, Area: "إمارة أبوظبي", City: "أبوظبي", Address: "شارع الكورنيش، برج المارينا",
			Brand: "باير", Classification: "Class C", Specialty: "جراحة العظام",
		},
		{
			Name:      "د. ليلى أحمد",
			Products1: []string{"Panadol", "Amoxil"}, Products2: []string{"Nexium", "Crestor"}, Products3: []string{"Concor", "Lantus"},
			Country: countryEgypt, Area: "الإسكندرية", City: "الإسكندرية", Address: "طريق الحرية، سموحة",
			Brand: "فايزر", Classification: "Class A", Specialty: "طب العيون",
		},
		{
			Name:      "د. خالد العمري",
			Products1: []string{"Voltaren", "Brufen"}, Products2: []string{"Lipitor", "Plavix"}, Products3: []string{"Glucophage", "Januvia"},
			Country: countrySaudi, Area: "المنطقة الوسطى", City: "الرياض", Address: "طريق الملك عبدالله، حي الورود",
			Brand: "نوفارتس", Classification: "Class B", Specialty: "الأمراض الجلدية",
		},
		{
			Name:      "د. نورة السعيد",
			Products1: []string{"Augmentin", "Panadol"}, Products2: []string{"Zithromax", "Nexium"}, Products3: []string{"Ventolin", "Concor"},
			Country: countryUAE, Area: "إمارة الشارقة", City: "الشارقة", Address: "شارع الاتحاد، المجاز",
			Brand: "روش", Classification: "Class C", Specialty: "الأنف والأذن والحنجرة",
		},
		{
			Name:      "د. طارق حسين",
			Products1: []string{"Brufen", "Amoxil"}, Products2: []string{"Crestor", "Lipitor"}, Products3: []string{"Lantus", "Glucophage"},
			Country: countryEgypt, Area: "الدلتا", City: "المنصورة", Address: "شارع الجمهورية، حي الجامعة",
			Brand: "سانوفي", Classification: "Class A", Specialty: "الطب النفسي",
		},
		{
			Name:      "د. رنا محمود",
			Products1: []string{"Voltaren", "Augmentin"}, Products2: []string{"Plavix", "Zithromax"}, Products3: []string{"Januvia", "Ventolin"},
			Country: countrySaudi, Area: "المنطقة الشرقية", City: "الخبر", Address: "شارع الأمير تركي، حي اليرموك",
			Brand: "باير", Classification: "Class B", Specialty: "المخ والأعصاب",
		},
	}
}
