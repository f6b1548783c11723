package catalog

import "strings"

// Inclusion is an item covered by every cruise package
type Inclusion struct {
	Icon        string
	Title       Text
	Description Text
}

var inclusions = []Inclusion{
	{Icon: "bed", Title: Text{EN: "Accommodation", AR: "الإقامة"}, Description: Text{EN: "Luxury cabin with Nile view", AR: "كابينة فاخرة بإطلالة على النيل"}},
	{Icon: "utensils", Title: Text{EN: "Meals", AR: "الوجبات"}, Description: Text{EN: "Breakfast, lunch, dinner buffet daily", AR: "بوفيه إفطار وغداء وعشاء يومياً"}},
	{Icon: "map", Title: Text{EN: "Tours", AR: "الجولات"}, Description: Text{EN: "All temple visits with expert guide", AR: "زيارة جميع المعابد مع مرشد خبير"}},
	{Icon: "car", Title: Text{EN: "Transfers", AR: "التنقلات"}, Description: Text{EN: "Airport pickup and return", AR: "الاستقبال من المطار والعودة"}},
	{Icon: "music", Title: Text{EN: "Entertainment", AR: "الترفيه"}, Description: Text{EN: "Egyptian party & oriental show", AR: "حفلة مصرية وعرض شرقي"}},
	{Icon: "camera", Title: Text{EN: "Videography", AR: "التصوير"}, Description: Text{EN: "Professional videos & photos", AR: "فيديوهات وصور احترافية"}},
}

// Inclusions returns the package inclusions in display order
func Inclusions() []Inclusion {
	out := make([]Inclusion, len(inclusions))
	copy(out, inclusions)
	return out
}

// Amenity is a feature of an accommodation type
type Amenity struct {
	Icon string
	Text Text
}

// Accommodation is a cabin category aboard the boat
type Accommodation struct {
	Type        Text
	Count       int
	Unit        Text
	SizeSqm     int
	Bedding     Text
	Description Text
	Images      []string
	Amenities   []Amenity
	Highlight   bool
}

var accommodations = []Accommodation{
	{
		Type:        Text{EN: "Standard Cabin", AR: "كابينة قياسية"},
		Count:       70,
		Unit:        Text{EN: "Cabins", AR: "كابينة"},
		SizeSqm:     18,
		Bedding:     Text{EN: "Twin or Double Bed", AR: "سريران منفصلان أو سرير مزدوج"},
		Description: Text{EN: "Our Standard Cabins offer a perfect blend of comfort and elegance. Each cabin features panoramic windows with stunning Nile views, creating a serene retreat after a day of exploration."},
		Images:      []string{"room-1.jpg", "room-2.jpg", "room-3.jpg"},
		Amenities: []Amenity{
			{Icon: "bed", Text: Text{EN: "Premium bedding", AR: "مفروشات فاخرة"}},
			{Icon: "eye", Text: Text{EN: "Panoramic Nile view", AR: "إطلالة بانورامية على النيل"}},
			{Icon: "bath", Text: Text{EN: "Private en-suite bathroom", AR: "حمام خاص"}},
			{Icon: "wind", Text: Text{EN: "Individual air conditioning", AR: "تكييف فردي"}},
			{Icon: "tv", Text: Text{EN: "Flat-screen TV", AR: "تلفاز بشاشة مسطحة"}},
			{Icon: "wifi", Text: Text{EN: "Wi-Fi access", AR: "إنترنت لاسلكي"}},
			{Icon: "coffee", Text: Text{EN: "Tea/Coffee facilities", AR: "أدوات الشاي والقهوة"}},
			{Icon: "shield-check", Text: Text{EN: "In-room safe", AR: "خزنة داخل الغرفة"}},
		},
	},
	{
		Type:        Text{EN: "Royal Suite", AR: "الجناح الملكي"},
		Count:       2,
		Unit:        Text{EN: "Suites", AR: "أجنحة"},
		SizeSqm:     35,
		Bedding:     Text{EN: "King Size Bed", AR: "سرير كينج"},
		Description: Text{EN: "Experience the pinnacle of luxury in our Royal Suites. Featuring a separate living area, private balcony, and premium amenities, these suites offer an unparalleled Nile cruise experience."},
		Images:      []string{"room-4.jpg"},
		Amenities: []Amenity{
			{Icon: "bed", Text: Text{EN: "King-size premium bed", AR: "سرير كينج فاخر"}},
			{Icon: "eye", Text: Text{EN: "Private balcony", AR: "شرفة خاصة"}},
			{Icon: "bath", Text: Text{EN: "Luxury bathroom with tub", AR: "حمام فاخر مع حوض استحمام"}},
			{Icon: "wind", Text: Text{EN: "Climate control", AR: "تحكم في المناخ"}},
			{Icon: "tv", Text: Text{EN: "Large flat-screen TV", AR: "تلفاز كبير بشاشة مسطحة"}},
			{Icon: "wifi", Text: Text{EN: "High-speed Wi-Fi", AR: "إنترنت لاسلكي فائق السرعة"}},
			{Icon: "coffee", Text: Text{EN: "Mini bar & refreshments", AR: "ميني بار ومشروبات"}},
			{Icon: "shield-check", Text: Text{EN: "VIP amenities", AR: "مزايا كبار الشخصيات"}},
		},
		Highlight: true,
	},
}

// Accommodations returns the cabin categories in display order
func Accommodations() []Accommodation {
	out := make([]Accommodation, len(accommodations))
	copy(out, accommodations)
	return out
}

// GalleryCategory groups gallery images
type GalleryCategory string

const (
	CategoryAll      GalleryCategory = "All"
	CategoryExterior GalleryCategory = "Exterior"
	CategoryInterior GalleryCategory = "Interior"
	CategoryCabins   GalleryCategory = "Cabins"
	CategoryDining   GalleryCategory = "Dining"
	CategoryDeck     GalleryCategory = "Deck"
)

// GalleryCategories lists the filter choices, All first
var GalleryCategories = []GalleryCategory{
	CategoryAll, CategoryExterior, CategoryInterior, CategoryCabins, CategoryDining, CategoryDeck,
}

var categoryNames = map[GalleryCategory]Text{
	CategoryAll:      {EN: "All", AR: "الكل"},
	CategoryExterior: {EN: "Exterior", AR: "الخارج"},
	CategoryInterior: {EN: "Interior", AR: "الداخل"},
	CategoryCabins:   {EN: "Cabins", AR: "الكبائن"},
	CategoryDining:   {EN: "Dining", AR: "المطاعم"},
	CategoryDeck:     {EN: "Deck", AR: "السطح"},
}

// ParseGalleryCategory matches a category name case-insensitively.
// An empty name selects All.
func ParseGalleryCategory(s string) (GalleryCategory, bool) {
	if strings.TrimSpace(s) == "" {
		return CategoryAll, true
	}
	for _, c := range GalleryCategories {
		if strings.EqualFold(string(c), strings.TrimSpace(s)) {
			return c, true
		}
	}
	return "", false
}

// GalleryImage is a photo of the boat
type GalleryImage struct {
	File     string
	Alt      Text
	Category GalleryCategory
}

var gallery = []GalleryImage{
	{File: "cruise-exterior.jpg", Alt: Text{EN: "Prince Omar Cruise Exterior", AR: "المظهر الخارجي لباخرة الأمير عمر"}, Category: CategoryExterior},
	{File: "cruise-night.jpg", Alt: Text{EN: "Cruise at Night", AR: "الباخرة ليلاً"}, Category: CategoryExterior},
	{File: "lobby.jpg", Alt: Text{EN: "Grand Lobby with Bar", AR: "الردهة الكبرى مع البار"}, Category: CategoryInterior},
	{File: "bar-lounge.jpg", Alt: Text{EN: "Bar Lounge Area", AR: "صالة البار"}, Category: CategoryInterior},
	{File: "bar-seating.jpg", Alt: Text{EN: "Bar Seating Area", AR: "جلسات البار"}, Category: CategoryInterior},
	{File: "corridor.jpg", Alt: Text{EN: "Cabin Corridor", AR: "ممر الكبائن"}, Category: CategoryInterior},
	{File: "restaurant.jpg", Alt: Text{EN: "Main Restaurant", AR: "المطعم الرئيسي"}, Category: CategoryDining},
	{File: "restaurant-private.jpg", Alt: Text{EN: "Private Dining Room", AR: "غرفة الطعام الخاصة"}, Category: CategoryDining},
	{File: "pool.jpg", Alt: Text{EN: "Swimming Pool & Sun Deck", AR: "حمام السباحة والسطح الشمسي"}, Category: CategoryDeck},
	{File: "sundeck.jpg", Alt: Text{EN: "Sun Deck with Nile View", AR: "السطح الشمسي بإطلالة على النيل"}, Category: CategoryDeck},
	{File: "sundeck-seating.jpg", Alt: Text{EN: "Sun Deck Seating Area", AR: "جلسات السطح الشمسي"}, Category: CategoryDeck},
	{File: "room-1.jpg", Alt: Text{EN: "Standard Twin Cabin", AR: "كابينة قياسية بسريرين"}, Category: CategoryCabins},
	{File: "room-2.jpg", Alt: Text{EN: "Standard Twin Cabin View", AR: "إطلالة الكابينة القياسية"}, Category: CategoryCabins},
	{File: "room-3.jpg", Alt: Text{EN: "Standard Double Cabin", AR: "كابينة قياسية مزدوجة"}, Category: CategoryCabins},
	{File: "room-4.jpg", Alt: Text{EN: "Deluxe Double Cabin", AR: "كابينة ديلوكس مزدوجة"}, Category: CategoryCabins},
	{File: "suite.jpg", Alt: Text{EN: "Royal Suite", AR: "الجناح الملكي"}, Category: CategoryCabins},
}

// Gallery returns the images of a category in display order; All returns every image
func Gallery(category GalleryCategory) []GalleryImage {
	out := make([]GalleryImage, 0, len(gallery))
	for _, img := range gallery {
		if category == CategoryAll || img.Category == category {
			out = append(out, img)
		}
	}
	return out
}

// Contact lists the operator's contact channels
type Contact struct {
	WhatsApp string `json:"whatsapp"`
	Phone    string `json:"phone"`
	Email    string `json:"email"`
}

// WhatsAppURL returns the chat link of the operator's WhatsApp number
func (c Contact) WhatsAppURL() string {
	return "https://wa.me/" + c.WhatsApp
}
