package domain

// Bundled dataset used to seed any collection missing from storage.
// Every call returns fresh values so callers may mutate them freely.

func DefaultCategories() []Category {
	return []Category{
		{ID: "1", NameAr: "المقبلات", NameEn: "Appetizers", Image: "https://images.unsplash.com/photo-1541518763669-27fef04b14ea?q=80&w=200&auto=format&fit=crop"},
		{ID: "2", NameAr: "الأطباق الرئيسية", NameEn: "Main Courses", Image: "https://images.unsplash.com/photo-1544025162-d76694265947?q=80&w=200&auto=format&fit=crop"},
		{ID: "3", NameAr: "السندويشات", NameEn: "Sandwiches", Image: "https://images.unsplash.com/photo-1521390188846-e2a3a97453a0?q=80&w=200&auto=format&fit=crop"},
		{ID: "4", NameAr: "السلطات", NameEn: "Salads", Image: "https://images.unsplash.com/photo-1512621776951-a57141f2eefd?q=80&w=200&auto=format&fit=crop"},
		{ID: "5", NameAr: "المشروبات", NameEn: "Drinks", Image: "https://images.unsplash.com/photo-1544145945-f904253d0c7b?q=80&w=200&auto=format&fit=crop"},
		{ID: "6", NameAr: "الحلويات", NameEn: "Desserts", Image: "https://images.unsplash.com/photo-1551024601-bec78aea704b?q=80&w=200&auto=format&fit=crop"},
	}
}

func DefaultProducts() []Product {
	return []Product{
		{
			ID:            "p1",
			CategoryID:    "1",
			NameAr:        "حمص بيروتي",
			NameEn:        "Beiruti Hummus",
			DescriptionAr: "حمص مطحون مع الثوم والبقدونس والليمون وزيت الزيتون البكر",
			DescriptionEn: "Mashed chickpeas with garlic, parsley, lemon and extra virgin olive oil",
			Price:         15,
			Image:         "https://images.unsplash.com/photo-1577906030559-facc47b08124?q=80&w=400&auto=format&fit=crop",
			MostRequested: true,
		},
		{
			ID:            "p2",
			CategoryID:    "2",
			NameAr:        "مشاوي مشكلة",
			NameEn:        "Mixed Grill",
			DescriptionAr: "تشكيلة فاخرة من اللحم والدجاج والكباب المشوي على الفحم",
			DescriptionEn: "Assortment of grilled meat, chicken, and charcoal-grilled kebab",
			Price:         65,
			Image:         "https://images.unsplash.com/photo-1529193591184-b1d58069ecdd?q=80&w=400&auto=format&fit=crop",
			MostRequested: true,
		},
		{
			ID:            "p3",
			CategoryID:    "3",
			NameAr:        "شاورما دجاج",
			NameEn:        "Chicken Shawarma",
			DescriptionAr: "دجاج متبل بخلطة أروى السرية مع صلصة الثوم والمخلل",
			DescriptionEn: "Marinated chicken with Arwa secret blend, garlic sauce and pickles",
			Price:         25,
			Image:         "https://images.unsplash.com/photo-1529006557810-274b9b2fc783?q=80&w=400&auto=format&fit=crop",
			MostRequested: true,
		},
		{
			ID:            "p4",
			CategoryID:    "4",
			NameAr:        "فتوش",
			NameEn:        "Fattoush",
			DescriptionAr: "سلطة خضار طازجة مع الخبز المحمص ودبس الرمان الجبلي",
			DescriptionEn: "Fresh vegetable salad with toasted bread and mountain pomegranate molasses",
			Price:         18,
			Image:         "https://images.unsplash.com/photo-1540420773420-3366772f4999?q=80&w=400&auto=format&fit=crop",
			MostRequested: false,
		},
		{
			ID:            "p5",
			CategoryID:    "5",
			NameAr:        "شاي عدني",
			NameEn:        "Adani Tea",
			DescriptionAr: "شاي بالحليب مع الهيل والبهارات العدنية التقليدية",
			DescriptionEn: "Milk tea with cardamom and traditional Adani spices",
			Price:         8,
			Image:         "https://images.unsplash.com/photo-1544787210-2827448b3dc3?q=80&w=400&auto=format&fit=crop",
			MostRequested: true,
		},
	}
}

func DefaultDesign() DesignConfig {
	opacity := 0.1
	scale := 150.0
	return DesignConfig{
		MainFont:               "Cairo",
		PrimaryTextColor:       "#FFBA22",
		ProductName:            TextStyle{Color: "#F7F3ED", Weight: "700", Font: "Cairo"},
		CategoryTitle:          TextStyle{Color: "#FFBA22", Weight: "700"},
		SliderLineColor:        "#F7F3ED",
		Section1Bg:             "#0D403E",
		Section2Bg:             "#0D403E",
		Section3Bg:             "#F7F3ED",
		BackgroundImagePattern: "",
		PatternOpacity:         &opacity,
		PatternScale:           &scale,
	}
}

func DefaultConfig() RestaurantConfig {
	return RestaurantConfig{
		NameAr:             "مطعم أروى",
		NameEn:             "Arwa Restaurant",
		Logo:               "https://images.unsplash.com/photo-1550966841-3ee3ad15fed0?q=80&w=200&auto=format&fit=crop",
		Phone:              "+966 50 123 4567",
		LocationAr:         "الرياض، المملكة العربية السعودية",
		LocationEn:         "Riyadh, Saudi Arabia",
		WhatsApp:           "966501234567",
		ShowFooterPhone:    true,
		ShowFooterWhatsApp: true,
		Status:             StatusOpen,
		AutoHours:          AutoHours{Open: "08:00", Close: "23:00"},
		Design:             DefaultDesign(),
		SliderImages: []string{
			"https://images.unsplash.com/photo-1504674900247-0877df9cc836?q=80&w=800&auto=format&fit=crop",
			"https://images.unsplash.com/photo-1473093226795-af9932fe5856?q=80&w=800&auto=format&fit=crop",
			"https://images.unsplash.com/photo-1555939594-58d7cb561ad1?q=80&w=800&auto=format&fit=crop",
		},
		BottomSliderImages: []string{
			"https://images.unsplash.com/photo-1541014741259-df529411b96a?q=80&w=300&auto=format&fit=crop",
			"https://images.unsplash.com/photo-1563729784474-d77dbb933a9e?q=80&w=300&auto=format&fit=crop",
		},
		BottomFloatingImage: "https://images.unsplash.com/photo-1565299624946-b28f40a0ae38?q=80&w=300&auto=format&fit=crop",
		SocialLinks: []SocialLink{
			{ID: "s1", Platform: PlatformFacebook, URL: "https://facebook.com/arwarestaurant", IsActive: true},
			{ID: "s2", Platform: PlatformInstagram, URL: "https://instagram.com/arwa_food", IsActive: true},
			{ID: "s3", Platform: PlatformTwitter, URL: "https://twitter.com/arwarest", IsActive: true},
		},
	}
}

func DefaultUsers() []User {
	return []User{
		{ID: "1", Username: "admin", Password: "admin", Role: RoleAdmin, Permissions: []string{"full"}},
		{ID: "2", Username: "staff", Password: "staff", Role: RoleStaff, Permissions: []string{"edit", "publish"}},
	}
}

// TeaserPhrases rotate under the storefront hero.
func TeaserPhrases() []string {
	return []string{
		"جرّب الطعم الحقيقي",
		"نكهة تكررها",
		"وجبتك الجاية تبدأ من هنا",
		"طعم يستاهل الانتظار",
		"خيارك المفضل اليوم",
	}
}
