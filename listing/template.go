package listing

import (
	"fmt"
	"strconv"
	"strings"
)

// Defaults substituted when an optional field is absent. Absence always
// yields readable prose, never an empty placeholder.
const (
	defaultSoil           = "fertile"
	defaultIrrigation     = "natural sources"
	defaultArea           = "N/A"
	defaultTenantResi     = "Anyone"
	defaultTenantPG       = "Students & Professionals"
	fallbackAmenityClause = "essential amenities"
)

// templateFamily selects which paragraph skeleton renders a listing.
type templateFamily int

const (
	familyAgricultural templateFamily = iota
	familyCommercialIndustrial
	familyPGCoLiving
	familyResidential
)

// familyFor dispatches on category. Priority order matters: Agricultural
// wins over everything, then Commercial/Industrial, then PG/Co-living;
// Residential and any unmatched category fall through to the default.
func familyFor(category Category) templateFamily {
	switch category {
	case CategoryAgricultural:
		return familyAgricultural
	case CategoryCommercial, CategoryIndustrial:
		return familyCommercialIndustrial
	case CategoryPGCoLiving:
		return familyPGCoLiving
	default:
		return familyResidential
	}
}

// Describe renders a listing's attributes into a three-paragraph marketing
// description. It is pure and deterministic: identical attributes produce
// byte-identical output, and it never fails because absent optional fields
// degrade to named defaults.
func Describe(a Attributes) string {
	intro := introClause(a.ListedBy)
	features := amenityClause(a.Amenities)

	var p1, p2, p3 string
	switch familyFor(a.Category) {
	case familyAgricultural:
		p1, p2, p3 = renderAgricultural(a, intro)
	case familyCommercialIndustrial:
		p1, p2, p3 = renderCommercialIndustrial(a, intro, features)
	case familyPGCoLiving:
		p1, p2, p3 = renderPGCoLiving(a, intro, features)
	case familyResidential:
		p1, p2, p3 = renderResidential(a, intro, features)
	}

	return p1 + "\n\n" + p2 + "\n\n" + p3
}

// amenityClause collects the human-readable phrase for every amenity flag
// that is set, in canonical order regardless of how the input arrived.
func amenityClause(am Amenities) string {
	var phrases []string
	add := func(on bool, phrase string) {
		if on {
			phrases = append(phrases, phrase)
		}
	}
	add(am.HasLift, "Lift")
	add(am.HasParking, "Reserved Parking")
	add(am.HasGym, "Gymnasium")
	add(am.HasPool, "Swimming Pool")
	add(am.HasWifi, "High-speed WiFi")
	add(am.HasAC, "Air Conditioning")
	add(am.HasSecurity, "24/7 Security")
	add(am.HasCCTV, "CCTV Surveillance")
	add(am.HasVideoDoorbell, "Video Doorbell")
	add(am.NearMetro, "Near Metro Station")

	if len(phrases) == 0 {
		return fallbackAmenityClause
	}
	return strings.Join(phrases, ", ")
}

// introClause phrases who placed the listing. Only "Owner" gets the
// direct-listing wording; every other value, known or not, names the
// third party.
func introClause(listedBy ListedBy) string {
	if listedBy == ListedByOwner {
		return fmt.Sprintf("Directly listed by %s,", listedBy)
	}
	return fmt.Sprintf("Listed by %s,", listedBy)
}

func renderAgricultural(a Attributes, intro string) (string, string, string) {
	soil := stringOr(a.SoilType, defaultSoil)
	irrigation := stringOr(a.IrrigationSource, defaultIrrigation)
	area := plotArea(a)

	p1 := fmt.Sprintf("%s this Prime %s available for %s in the peaceful vicinity of %s, %s. "+
		"This fertile land is perfect for farming, organic cultivation, or as a long-term investment asset. "+
		"Away from the city noise, it offers a serene environment.",
		intro, a.PropertyType, a.Purpose, a.Locality, a.City)

	p2 := fmt.Sprintf("The land features %s soil tailored for high-yield crops and is supported by %s for consistent water supply. "+
		"With an area of approx %s, it provides ample space for varied agricultural activities or farmhouse construction.",
		soil, irrigation, area)

	p3 := fmt.Sprintf("An excellent opportunity for investors and farmers alike. "+
		"This %s in %s holds immense potential for appreciation. Contact us to explore this green investment today!",
		a.PropertyType, a.City)

	return p1, p2, p3
}

func renderCommercialIndustrial(a Attributes, intro, features string) (string, string, string) {
	power := fmt.Sprintf("%d KVA power load", intOr(a.PowerLoadKVA, 0))

	p1 := fmt.Sprintf("%s this Strategically located %s available for %s in the business hub of %s, %s. "+
		"This property offers high visibility and excellent connectivity, making it an ideal choice for your business operations.",
		intro, a.PropertyType, a.Purpose, a.Locality, a.City)

	p2 := fmt.Sprintf("Designed for efficiency, the property comes with %s and modern infrastructure. It includes %s. "+
		"The layout is optimized for smooth workflow and logistics, suitable for offices, showrooms, or industrial units.",
		power, features)

	p3 := fmt.Sprintf("Boost your business presence in %s with this premium location. "+
		"Perfect for startups, established firms, or industrial setups. Schedule a site visit now!",
		a.City)

	return p1, p2, p3
}

func renderPGCoLiving(a Attributes, intro, features string) (string, string, string) {
	tenant := stringOr(a.TenantPreference, defaultTenantPG)

	p1 := fmt.Sprintf("%s budget-friendly and comfortable %s available in %s, %s. "+
		"Ideally situated near colleges and IT parks, offering a hassle-free living experience for %s.",
		intro, a.PropertyType, a.Locality, a.City, tenant)

	p2 := fmt.Sprintf("This fully managed property offers %s. "+
		"Residents can enjoy a community lifestyle with clean, well-maintained rooms and common areas. "+
		"High-speed internet and security ensure you can work or study without interruption.",
		features)

	p3 := fmt.Sprintf("Move into a safe and social environment in %s. "+
		"Slots are filling fast! Contact us immediately to book your bed/room.",
		a.City)

	return p1, p2, p3
}

func renderResidential(a Attributes, intro, features string) (string, string, string) {
	tenant := stringOr(a.TenantPreference, defaultTenantResi)
	tenantText := fmt.Sprintf("Perfectly suited for %s.", tenant)
	if tenant == "Any" {
		tenantText = "Ideal for families and professionals."
	}

	p1 := fmt.Sprintf("%s check out this premium %s available for %s in the heart of %s, %s. "+
		"This property offers a perfect blend of modern architecture and convenient living. "+
		"Situated in a prime location, it provides easy access to schools, hospitals, and shopping centers.",
		intro, a.PropertyType, a.Purpose, a.Locality, a.City)

	p2 := fmt.Sprintf("The property boasts %s. It is spacious, well-ventilated, and designed to provide maximum comfort. "+
		"Whether you are looking for a peaceful environment or a vibrant community, this property checks all the boxes. "+
		"The interiors are tastefully done (if furnished), ensuring a luxurious lifestyle.",
		features)

	p3 := fmt.Sprintf("%s Don't miss out on this opportunity to live in one of the most sought-after neighborhoods in %s. "+
		"Contact us today to schedule a viewing and make this your new home!",
		tenantText, a.City)

	return p1, p2, p3
}

// plotArea prefers acres over square feet, rendering the first non-zero
// value with trailing zeros trimmed. Zero counts as absent and falls
// through to the next unit.
func plotArea(a Attributes) string {
	switch {
	case a.PlotAreaAcres != nil && *a.PlotAreaAcres != 0:
		return strconv.FormatFloat(*a.PlotAreaAcres, 'f', -1, 64) + " acres"
	case a.PlotAreaSqft != nil && *a.PlotAreaSqft != 0:
		return strconv.FormatFloat(*a.PlotAreaSqft, 'f', -1, 64) + " sqft"
	default:
		return defaultArea
	}
}

func stringOr(v *string, fallback string) string {
	if v != nil && *v != "" {
		return *v
	}
	return fallback
}

func intOr(v *int, fallback int) int {
	if v != nil {
		return *v
	}
	return fallback
}
