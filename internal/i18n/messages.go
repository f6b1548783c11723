package i18n

var messages = map[Language]map[string]string{
	English: {
		"booking.submitted":             "Booking Submitted!",
		"booking.submitted.description": "We will contact you soon to confirm.",
		"booking.failed":                "Booking Failed",
		"booking.failed.description":    "Something went wrong. Please try again.",
		"booking.book_now":              "Book Now",
		"booking.select_cruise":         "Select Cruise",
		"booking.departure_date":        "Departure Date",
		"booking.cabin_type":            "Cabin Type",
		"booking.adults":                "Adults",
		"booking.children":              "Children",
		"booking.total_price":           "Total Price",
		"cabin.double":                  "Double",
		"cabin.single":                  "Single",
		"cabin.triple":                  "Triple",
		"cruise.nights":                 "Nights",
		"cruise.days":                   "Days",
		"hero.tagline":                  "Luxury Nile Cruise Experience",
		"hero.description":              "Embark on a journey through ancient Egypt aboard our magnificent 5-star cruise. Discover timeless temples and breathtaking landscapes in unparalleled luxury.",
		"hero.luxury_rooms":             "Luxury Rooms",
		"hero.royal_suites":             "Royal Suites",
		"accommodations.tagline":        "Accommodations",
		"accommodations.title":          "Luxury Cabins & Suites",
		"accommodations.description":    "72 meticulously designed accommodations combining timeless elegance with modern comfort.",
		"accommodations.rooms":          "Cabins",
		"accommodations.suites":         "Suites",
		"included.title":                "What's Included",
		"gallery.title":                 "Gallery",
		"contact.title":                 "Contact Us",
		"error.validation":              "Please check the form fields.",
		"error.rate_limited":            "Too many booking requests. Please try again later.",
	},
	Arabic: {
		"booking.submitted":             "تم إرسال الحجز!",
		"booking.submitted.description": "سنتواصل معك قريباً",
		"booking.failed":                "فشل الحجز",
		"booking.failed.description":    "حدث خطأ ما. يرجى المحاولة مرة أخرى.",
		"booking.book_now":              "احجز الآن",
		"booking.select_cruise":         "اختر الرحلة",
		"booking.departure_date":        "تاريخ المغادرة",
		"booking.cabin_type":            "نوع الكابينة",
		"booking.adults":                "البالغين",
		"booking.children":              "الأطفال",
		"booking.total_price":           "السعر الإجمالي",
		"cabin.double":                  "مزدوجة",
		"cabin.single":                  "فردية",
		"cabin.triple":                  "ثلاثية",
		"cruise.nights":                 "ليالٍ",
		"cruise.days":                   "أيام",
		"hero.tagline":                  "تجربة رحلة نيلية فاخرة",
		"hero.luxury_rooms":             "غرفة فاخرة",
		"hero.royal_suites":             "أجنحة ملكية",
		"accommodations.tagline":        "الإقامة",
		"accommodations.title":          "كبائن وأجنحة فاخرة",
		"accommodations.rooms":          "كابينة",
		"accommodations.suites":         "أجنحة",
		"included.title":                "ما هو مشمول",
		"gallery.title":                 "معرض الصور",
		"contact.title":                 "اتصل بنا",
		"error.validation":              "يرجى التحقق من حقول النموذج.",
		"error.rate_limited":            "طلبات حجز كثيرة. يرجى المحاولة لاحقاً.",
	},
}
