package listing

import (
	"strings"
	"testing"
)

func strPtr(s string) *string { return &s }

func intPtr(n int) *int { return &n }

func floatPtr(f float64) *float64 { return &f }

func baseAttributes() Attributes {
	return Attributes{
		Purpose:      PurposeRent,
		Category:     CategoryResidential,
		PropertyType: "2BHK Apartment",
		City:         "Pune",
		Locality:     "Baner",
		Pincode:      "411045",
		Address:      "12 Hilltop Road",
		Price:        25000,
		ListedBy:     ListedByOwner,
	}
}

func TestDescribeDeterministic(t *testing.T) {
	attrs := baseAttributes()
	attrs.HasLift = true
	attrs.HasPool = true
	attrs.NearMetro = true

	first := Describe(attrs)
	for i := 0; i < 5; i++ {
		if got := Describe(attrs); got != first {
			t.Fatalf("invocation %d produced different output:\n%q\nvs\n%q", i, got, first)
		}
	}
}

func TestDescribeThreeParagraphs(t *testing.T) {
	for _, category := range []Category{
		CategoryResidential,
		CategoryCommercial,
		CategoryIndustrial,
		CategoryAgricultural,
		CategoryInstitutional,
		CategoryPGCoLiving,
	} {
		attrs := baseAttributes()
		attrs.Category = category
		parts := strings.Split(Describe(attrs), "\n\n")
		if len(parts) != 3 {
			t.Fatalf("category %s: expected 3 paragraphs, got %d", category, len(parts))
		}
		for i, p := range parts {
			if strings.TrimSpace(p) == "" {
				t.Fatalf("category %s: paragraph %d is empty", category, i+1)
			}
		}
	}
}

func TestAmenityCanonicalOrder(t *testing.T) {
	attrs := baseAttributes()
	// set in reverse of the canonical order; output must not care
	attrs.NearMetro = true
	attrs.HasVideoDoorbell = true
	attrs.HasCCTV = true
	attrs.HasSecurity = true
	attrs.HasAC = true
	attrs.HasWifi = true
	attrs.HasPool = true
	attrs.HasGym = true
	attrs.HasParking = true
	attrs.HasLift = true

	got := amenityClause(attrs.Amenities)
	want := "Lift, Reserved Parking, Gymnasium, Swimming Pool, High-speed WiFi, Air Conditioning, " +
		"24/7 Security, CCTV Surveillance, Video Doorbell, Near Metro Station"
	if got != want {
		t.Fatalf("amenity clause order:\ngot  %q\nwant %q", got, want)
	}
}

func TestAmenityFallbackPhrase(t *testing.T) {
	attrs := baseAttributes()
	// geyser, fire safety, and intercom carry no narrative phrase
	attrs.HasGeyser = true
	attrs.HasFireSafety = true
	attrs.HasIntercom = true

	if got := amenityClause(attrs.Amenities); got != "essential amenities" {
		t.Fatalf("expected fallback phrase, got %q", got)
	}
	if !strings.Contains(Describe(attrs), "essential amenities") {
		t.Fatal("description should contain the fallback amenity phrase")
	}
}

func TestCategoryDispatch(t *testing.T) {
	cases := []struct {
		category Category
		want     templateFamily
	}{
		{CategoryAgricultural, familyAgricultural},
		{CategoryCommercial, familyCommercialIndustrial},
		{CategoryIndustrial, familyCommercialIndustrial},
		{CategoryPGCoLiving, familyPGCoLiving},
		{CategoryResidential, familyResidential},
		{CategoryInstitutional, familyResidential},
		{Category("Someday/Unknown"), familyResidential},
	}
	for _, tc := range cases {
		if got := familyFor(tc.category); got != tc.want {
			t.Fatalf("category %q: family %d, want %d", tc.category, got, tc.want)
		}
	}
}

func TestAgriculturalDefaults(t *testing.T) {
	attrs := Attributes{
		Purpose:      PurposeResale,
		Category:     CategoryAgricultural,
		PropertyType: "Farmland",
		City:         "Nashik",
		Locality:     "Sinnar",
		Pincode:      "422103",
		Address:      "Survey 41, Sinnar",
		Price:        5200000,
		ListedBy:     ListedByOwner,
	}

	parts := strings.Split(Describe(attrs), "\n\n")
	if len(parts) != 3 {
		t.Fatalf("expected 3 paragraphs, got %d", len(parts))
	}
	second := parts[1]
	if !strings.Contains(second, "fertile soil") {
		t.Fatalf("second paragraph should default soil to fertile: %q", second)
	}
	if !strings.Contains(second, "natural sources") {
		t.Fatalf("second paragraph should default irrigation to natural sources: %q", second)
	}
}

func TestAgriculturalAreaPrefersAcres(t *testing.T) {
	attrs := baseAttributes()
	attrs.Category = CategoryAgricultural
	attrs.PlotAreaSqft = floatPtr(43560)
	attrs.PlotAreaAcres = floatPtr(2.5)

	desc := Describe(attrs)
	if !strings.Contains(desc, "approx 2.5 acres") {
		t.Fatalf("expected acres to win over sqft: %q", desc)
	}
}

func TestAgriculturalAreaZeroFallsThrough(t *testing.T) {
	attrs := baseAttributes()
	attrs.Category = CategoryAgricultural
	attrs.PlotAreaAcres = floatPtr(0)
	attrs.PlotAreaSqft = floatPtr(43560)

	desc := Describe(attrs)
	if !strings.Contains(desc, "approx 43560 sqft") {
		t.Fatalf("expected zero acres to fall through to sqft: %q", desc)
	}

	attrs.PlotAreaSqft = floatPtr(0)
	if desc := Describe(attrs); !strings.Contains(desc, "approx N/A") {
		t.Fatalf("expected zero area to fall through to the default: %q", desc)
	}
}

func TestCommercialPowerLoadDefault(t *testing.T) {
	attrs := baseAttributes()
	attrs.Category = CategoryCommercial

	if desc := Describe(attrs); !strings.Contains(desc, "0 KVA power load") {
		t.Fatalf("expected default power load: %q", desc)
	}

	attrs.PowerLoadKVA = intPtr(75)
	if desc := Describe(attrs); !strings.Contains(desc, "75 KVA power load") {
		t.Fatalf("expected supplied power load: %q", desc)
	}
}

func TestListedByBranch(t *testing.T) {
	attrs := baseAttributes()

	if desc := Describe(attrs); !strings.HasPrefix(desc, "Directly listed by Owner,") {
		t.Fatalf("owner listing should use the direct phrasing: %q", desc)
	}

	attrs.ListedBy = ListedByBroker
	if desc := Describe(attrs); !strings.HasPrefix(desc, "Listed by Broker,") {
		t.Fatalf("broker listing should use the third-party phrasing: %q", desc)
	}

	// the branch is two-way, not enum-exhaustive
	attrs.ListedBy = ListedBy("Cooperative")
	if desc := Describe(attrs); !strings.HasPrefix(desc, "Listed by Cooperative,") {
		t.Fatalf("unknown listed_by should fall into the third-party branch: %q", desc)
	}
}

func TestResidentialTenantText(t *testing.T) {
	attrs := baseAttributes()

	if desc := Describe(attrs); !strings.Contains(desc, "Perfectly suited for Anyone.") {
		t.Fatalf("absent tenant preference should default to Anyone: %q", desc)
	}

	attrs.TenantPreference = strPtr("Any")
	if desc := Describe(attrs); !strings.Contains(desc, "Ideal for families and professionals.") {
		t.Fatalf("tenant preference Any should use the generic phrasing: %q", desc)
	}

	attrs.TenantPreference = strPtr("Working Couples")
	if desc := Describe(attrs); !strings.Contains(desc, "Perfectly suited for Working Couples.") {
		t.Fatalf("explicit tenant preference should be surfaced: %q", desc)
	}
}

func TestPGCoLivingTenantDefault(t *testing.T) {
	attrs := baseAttributes()
	attrs.Category = CategoryPGCoLiving

	if desc := Describe(attrs); !strings.Contains(desc, "Students & Professionals") {
		t.Fatalf("PG family should default the tenant preference: %q", desc)
	}
}
