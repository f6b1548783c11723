package catalog

import "time"

var (
	checkIn = Activity{Time: "Arrival", Icon: "ship",
		Title:       Text{EN: "Check-in on the Boat", AR: "تسجيل الوصول على المركب"},
		Description: Text{EN: "Airport pickup and assistance with check-in procedures"}}
	lunchOnBoard = Activity{Time: "12:30", Icon: "utensils",
		Title:       Text{EN: "Lunch on Board", AR: "الغداء على متن المركب"},
		Description: Text{EN: "Buffet with Egyptian and international cuisine"}}
	dinnerOnBoard = Activity{Time: "19:00", Icon: "music",
		Title:       Text{EN: "Dinner on Board", AR: "العشاء على متن المركب"},
		Description: Text{EN: "Gourmet dinner with live music"}}
	breakfastBeforeTours = Activity{Time: "07:00", Icon: "coffee",
		Title:       Text{EN: "Breakfast on Board", AR: "الإفطار على متن المركب"},
		Description: Text{EN: "Full breakfast before tours"}}
	edfuTemple = Activity{Time: "08:00", Icon: "landmark",
		Title:       Text{EN: "Edfu Temple Tour", AR: "جولة معبد إدفو"},
		Description: Text{EN: "Visit the magnificent Temple of Horus in excellent condition"}}
	egyptianParty = Activity{Time: "20:00", Icon: "music",
		Title:       Text{EN: "Egyptian Party", AR: "حفلة مصرية"},
		Description: Text{EN: "Evening celebration with traditional music, dance, and costumes"}}
	finalBreakfast = Activity{Time: "07:00", Icon: "coffee",
		Title:       Text{EN: "Breakfast on Board", AR: "الإفطار على متن المركب"},
		Description: Text{EN: "Final breakfast before departure"}}
	checkOut = Activity{Time: "08:00", Icon: "ship",
		Title:       Text{EN: "Check-out & Transfer", AR: "تسجيل المغادرة والنقل"},
		Description: Text{EN: "Boat checkout and airport transfer"}}
)

func komOmboTemple(at string) Activity {
	return Activity{Time: at, Icon: "landmark",
		Title:       Text{EN: "Kom Ombo Temple", AR: "معبد كوم أمبو"},
		Description: Text{EN: "Explore the dual temple of Sobek and Horus"}}
}

func aswanTours(at string) Activity {
	return Activity{Time: at, Icon: "landmark",
		Title:       Text{EN: "Aswan Tours", AR: "جولات أسوان"},
		Description: Text{EN: "Visit Philae Temple and Botanical Gardens"}}
}

var (
	locLuxor  = Text{EN: "Luxor", AR: "الأقصر"}
	locAswan  = Text{EN: "Aswan", AR: "أسوان"}
	locEsna   = Text{EN: "Esna", AR: "إسنا"}
	arrival   = Text{EN: "Arrival & Check-in", AR: "الوصول وتسجيل الدخول"}
	departure = Text{EN: "Check-out & Departure", AR: "المغادرة"}
)

var routes = []Route{
	{
		ID:        RouteLuxorAswan,
		Title:     Text{EN: "Luxor to Aswan", AR: "الأقصر إلى أسوان"},
		Nights:    4,
		Days:      5,
		Departure: time.Monday,
		Schedule:  Text{EN: "Every Monday", AR: "كل يوم اثنين"},
		Pricing:   Pricing{Double: 480, Single: 720, Triple: 460, Child: 240},
		Itinerary: []ItineraryDay{
			{Day: 1, Title: arrival, Location: locLuxor, Weekday: time.Monday, Activities: []Activity{
				checkIn,
				lunchOnBoard,
				{Time: "14:00", Icon: "landmark",
					Title:       Text{EN: "West Bank Tour", AR: "جولة البر الغربي"},
					Description: Text{EN: "Visit Valley of the Kings and Hatshepsut Temple with expert guide"}},
				dinnerOnBoard,
			}},
			{Day: 2, Title: Text{EN: "East Bank & Sailing", AR: "البر الشرقي والإبحار"}, Location: locEsna, Weekday: time.Tuesday, Activities: []Activity{
				{Time: "08:00", Icon: "landmark",
					Title:       Text{EN: "East Bank Tour", AR: "جولة البر الشرقي"},
					Description: Text{EN: "Explore Karnak Temple and Luxor Temple on the Nile"}},
				{Time: "14:00", Icon: "ship",
					Title:       Text{EN: "Sail to Edfu", AR: "الإبحار إلى إدفو"},
					Description: Text{EN: "Depart at 2 PM, pass through Esna Lock, head to Edfu"}},
				{Time: "13:00 & 19:00", Icon: "utensils",
					Title:       Text{EN: "Lunch & Dinner on Board", AR: "الغداء والعشاء على متن المركب"},
					Description: Text{EN: "Enjoy meals during peaceful sailing"}},
			}},
			{Day: 3, Title: Text{EN: "Edfu & Kom Ombo", AR: "إدفو وكوم أمبو"}, Location: Text{EN: "Edfu & Kom Ombo", AR: "إدفو وكوم أمبو"}, Weekday: time.Wednesday, Activities: []Activity{
				breakfastBeforeTours,
				edfuTemple,
				{Time: "12:00", Icon: "ship",
					Title:       Text{EN: "Sail to Kom Ombo", AR: "الإبحار إلى كوم أمبو"},
					Description: Text{EN: "Lunch on board, then sail to Kom Ombo"}},
				komOmboTemple("16:00"),
				egyptianParty,
			}},
			{Day: 4, Title: Text{EN: "Aswan & Nubian Show", AR: "أسوان والعرض النوبي"}, Location: locAswan, Weekday: time.Thursday, Activities: []Activity{
				aswanTours("08:00"),
				{Time: "20:00", Icon: "music",
					Title:       Text{EN: "Nubian Show", AR: "العرض النوبي"},
					Description: Text{EN: "Traditional Nubian performance with music, dance, and refreshments"}},
			}},
			{Day: 5, Title: departure, Location: locAswan, Weekday: time.Friday, Activities: []Activity{
				finalBreakfast,
				checkOut,
			}},
		},
	},
	{
		ID:        RouteAswanLuxor,
		Title:     Text{EN: "Aswan to Luxor", AR: "أسوان إلى الأقصر"},
		Nights:    3,
		Days:      4,
		Departure: time.Friday,
		Schedule:  Text{EN: "Every Friday", AR: "كل يوم جمعة"},
		Pricing:   Pricing{Double: 360, Single: 540, Triple: 345, Child: 180},
		Itinerary: []ItineraryDay{
			{Day: 1, Title: arrival, Location: locAswan, Weekday: time.Friday, Activities: []Activity{
				checkIn,
				lunchOnBoard,
				aswanTours("14:00"),
				dinnerOnBoard,
			}},
			{Day: 2, Title: Text{EN: "Aswan & Kom Ombo", AR: "أسوان وكوم أمبو"}, Location: locAswan, Weekday: time.Saturday, Activities: []Activity{
				{Time: "08:00", Icon: "utensils",
					Title:       Text{EN: "Lunch on Board", AR: "الغداء على متن المركب"},
					Description: Text{EN: "Buffet before sailing"}},
				{Time: "09:00", Icon: "landmark",
					Title:       Text{EN: "Additional Aswan Tours", AR: "جولات إضافية في أسوان"},
					Description: Text{EN: "Visit Unfinished Obelisk & High Dam"}},
				{Time: "14:00", Icon: "ship",
					Title:       Text{EN: "Sail to Kom Ombo", AR: "الإبحار إلى كوم أمبو"},
					Description: Text{EN: "Depart at 2 PM, navigate to Kom Ombo"}},
				komOmboTemple("17:00"),
				egyptianParty,
			}},
			{Day: 3, Title: Text{EN: "Edfu & Luxor", AR: "إدفو والأقصر"}, Location: locEsna, Weekday: time.Sunday, Activities: []Activity{
				breakfastBeforeTours,
				edfuTemple,
				{Time: "12:00", Icon: "ship",
					Title:       Text{EN: "Sail to Luxor", AR: "الإبحار إلى الأقصر"},
					Description: Text{EN: "Lunch on board, sail to Luxor, pass through Esna Lock"}},
				{Time: "20:00", Icon: "music",
					Title:       Text{EN: "Oriental Dance Show", AR: "عرض الرقص الشرقي"},
					Description: Text{EN: "Traditional belly dance performance after dinner"}},
			}},
			{Day: 4, Title: departure, Location: locLuxor, Weekday: time.Monday, Activities: []Activity{
				finalBreakfast,
				checkOut,
			}},
		},
	},
}
