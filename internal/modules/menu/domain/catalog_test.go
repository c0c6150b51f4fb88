package domain

import "testing"

func TestCartTotals(t *testing.T) {
	items := []CartItem{
		{Product: Product{ID: "a", Price: 15}, Quantity: 1},
		{Product: Product{ID: "b", Price: 25}, Quantity: 2},
		{Product: Product{ID: "c", Price: 0.1}, Quantity: 3},
	}
	if got := CartTotal(items).String(); got != "65.3" {
		t.Fatalf("expected total 65.3 got %s", got)
	}
	if got := CartCount(items); got != 6 {
		t.Fatalf("expected count 6 got %d", got)
	}
	if got := CartTotal(nil).String(); got != "0" {
		t.Fatalf("expected empty total 0 got %s", got)
	}
}

func TestCatalogQueries(t *testing.T) {
	products := DefaultProducts()
	if got := len(MostRequestedProducts(products)); got != 4 {
		t.Fatalf("expected 4 most requested products got %d", got)
	}
	inMains := ProductsInCategory(products, "2")
	if len(inMains) != 1 || inMains[0].ID != "p2" {
		t.Fatalf("unexpected main courses %+v", inMains)
	}
	if got := ProductsInCategory(products, "404"); got == nil || len(got) != 0 {
		t.Fatalf("expected empty non-nil slice got %#v", got)
	}
}

func TestLocalization(t *testing.T) {
	p := DefaultProducts()[0]
	cases := []struct {
		lang      Language
		name      string
		direction string
		currency  string
		added     string
	}{
		{lang: LanguageArabic, name: "حمص بيروتي", direction: DirectionRTL, currency: "ر.س", added: "تمت الإضافة بنجاح"},
		{lang: LanguageEnglish, name: "Beiruti Hummus", direction: DirectionLTR, currency: "SAR", added: "Added successfully"},
	}
	for _, tc := range cases {
		if p.Name(tc.lang) != tc.name || tc.lang.Direction() != tc.direction || tc.lang.Currency() != tc.currency {
			t.Fatalf("unexpected localization for %s", tc.lang)
		}
		if got := NotificationText(NotificationAdded, tc.lang); got != tc.added {
			t.Fatalf("NotificationText(%s) expected %q got %q", tc.lang, tc.added, got)
		}
	}
	if NormalizeLanguage("fr") != LanguageArabic || NormalizeLanguage(" EN ") != LanguageEnglish {
		t.Fatalf("unexpected language normalisation")
	}
}

func TestConfigCloneIsIndependent(t *testing.T) {
	original := DefaultConfig()
	clone := original.Clone()
	clone.SliderImages[0] = "changed"
	clone.SocialLinks[0].URL = "changed"
	*clone.Design.PatternScale = 1
	if original.SliderImages[0] == "changed" || original.SocialLinks[0].URL == "changed" || *original.Design.PatternScale != 150 {
		t.Fatalf("clone aliases the original")
	}
	if got := len(original.ActiveSocialLinks()); got != 3 {
		t.Fatalf("expected 3 active links got %d", got)
	}
}

func TestNormalizePlatformAndRole(t *testing.T) {
	if NormalizePlatform("Instagram") != PlatformInstagram || NormalizePlatform("myspace") != PlatformOther {
		t.Fatalf("unexpected platform normalisation")
	}
	if NormalizeRole("ADMIN") != RoleAdmin || NormalizeRole("chef") != RoleStaff {
		t.Fatalf("unexpected role normalisation")
	}
	u := DefaultUsers()[0].Public()
	if u.Password != "" {
		t.Fatalf("Public must strip the password")
	}
}
