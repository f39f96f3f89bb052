package listing

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrInvalidAttributes signals a create/update payload missing required
// fields or carrying malformed values.
var ErrInvalidAttributes = errors.New("listing: invalid attributes")

// Purpose says whether a property is offered for rent or resale.
type Purpose string

const (
	PurposeRent   Purpose = "Rent"
	PurposeResale Purpose = "Resale"
)

// Category is the top-level property classification. It drives which
// template family renders the description and which optional fields are
// surfaced; it never rejects fields that don't apply.
type Category string

const (
	CategoryResidential   Category = "Residential"
	CategoryCommercial    Category = "Commercial"
	CategoryIndustrial    Category = "Industrial"
	CategoryAgricultural  Category = "Agricultural"
	CategoryInstitutional Category = "Institutional"
	CategoryPGCoLiving    Category = "PG/Co-living"
)

// ListedBy identifies who placed the listing.
type ListedBy string

const (
	ListedByOwner   ListedBy = "Owner"
	ListedByBroker  ListedBy = "Broker"
	ListedByBuilder ListedBy = "Builder"
)

// Amenities is the fixed set of boolean features a property may carry.
type Amenities struct {
	HasLift          bool `bson:"has_lift" json:"has_lift"`
	HasParking       bool `bson:"has_parking" json:"has_parking"`
	HasGym           bool `bson:"has_gym" json:"has_gym"`
	HasPool          bool `bson:"has_pool" json:"has_pool"`
	NearMetro        bool `bson:"near_metro" json:"near_metro"`
	HasSecurity      bool `bson:"has_security" json:"has_security"`
	HasCCTV          bool `bson:"has_cctv" json:"has_cctv"`
	HasWifi          bool `bson:"has_wifi" json:"has_wifi"`
	HasAC            bool `bson:"has_ac" json:"has_ac"`
	HasGeyser        bool `bson:"has_geyser" json:"has_geyser"`
	HasVideoDoorbell bool `bson:"has_video_doorbell" json:"has_video_doorbell"`
	HasFireSafety    bool `bson:"has_fire_safety" json:"has_fire_safety"`
	HasIntercom      bool `bson:"has_intercom" json:"has_intercom"`
}

// Attributes is the client-supplied portion of a listing, shared by create
// and update requests. Optional fields are pointers: nil means "absent",
// which the templating engine renders with a named default rather than a
// zero. Unknown JSON fields in the payload are ignored by the decoder.
type Attributes struct {
	// Always required
	Purpose      Purpose  `bson:"purpose" json:"purpose"`
	Category     Category `bson:"category" json:"category"`
	PropertyType string   `bson:"property_type" json:"property_type"`
	IsPlot       bool     `bson:"is_plot" json:"is_plot"`
	City         string   `bson:"city" json:"city"`
	Locality     string   `bson:"locality" json:"locality"`
	Pincode      string   `bson:"pincode" json:"pincode"`
	Landmark     *string  `bson:"landmark,omitempty" json:"landmark,omitempty"`
	Address      string   `bson:"address" json:"address"`

	// Building specifications (residential-like)
	Bedrooms    *int    `bson:"bedrooms,omitempty" json:"bedrooms,omitempty"`
	Bathrooms   *int    `bson:"bathrooms,omitempty" json:"bathrooms,omitempty"`
	FloorNumber *int    `bson:"floor_number,omitempty" json:"floor_number,omitempty"`
	TotalFloors *int    `bson:"total_floors,omitempty" json:"total_floors,omitempty"`
	Furnishing  *string `bson:"furnishing,omitempty" json:"furnishing,omitempty"`

	// Commercial / industrial
	PowerLoadKVA    *int     `bson:"power_load_kva,omitempty" json:"power_load_kva,omitempty"`
	CeilingHeightFt *float64 `bson:"ceiling_height_ft,omitempty" json:"ceiling_height_ft,omitempty"`
	ConferenceRooms *int     `bson:"conference_rooms,omitempty" json:"conference_rooms,omitempty"`

	// Land / agricultural
	PlotAreaSqft     *float64 `bson:"plot_area_sqft,omitempty" json:"plot_area_sqft,omitempty"`
	PlotAreaAcres    *float64 `bson:"plot_area_acres,omitempty" json:"plot_area_acres,omitempty"`
	SoilType         *string  `bson:"soil_type,omitempty" json:"soil_type,omitempty"`
	IrrigationSource *string  `bson:"irrigation_source,omitempty" json:"irrigation_source,omitempty"`
	BoundaryWall     *bool    `bson:"boundary_wall,omitempty" json:"boundary_wall,omitempty"`

	// Financials
	Price       float64  `bson:"price" json:"price"`
	Deposit     *float64 `bson:"deposit,omitempty" json:"deposit,omitempty"`
	Maintenance *float64 `bson:"maintenance,omitempty" json:"maintenance,omitempty"`
	Negotiable  bool     `bson:"negotiable" json:"negotiable"`

	Amenities `bson:",inline"`

	TenantPreference *string `bson:"tenant_preference,omitempty" json:"tenant_preference,omitempty"`

	// Ownership & contact
	ListedBy     ListedBy `bson:"listed_by" json:"listed_by"`
	ContactName  *string  `bson:"contact_name,omitempty" json:"contact_name,omitempty"`
	ContactPhone *string  `bson:"contact_phone,omitempty" json:"contact_phone,omitempty"`

	Images []string `bson:"images" json:"images"`
}

// Validate checks the always-required fields. Category-specific presence is
// deliberately not enforced: a Commercial listing may carry bedrooms, the
// templating engine just won't surface them.
func (a *Attributes) Validate() error {
	var missing []string
	require := func(name, value string) {
		if strings.TrimSpace(value) == "" {
			missing = append(missing, name)
		}
	}
	require("purpose", string(a.Purpose))
	require("category", string(a.Category))
	require("property_type", a.PropertyType)
	require("city", a.City)
	require("locality", a.Locality)
	require("pincode", a.Pincode)
	require("address", a.Address)
	if len(missing) > 0 {
		return fmt.Errorf("%w: missing required fields: %s", ErrInvalidAttributes, strings.Join(missing, ", "))
	}
	if a.Price < 0 {
		return fmt.Errorf("%w: price must be non-negative", ErrInvalidAttributes)
	}
	return nil
}

// normalize fills the documented field defaults after a successful Validate.
func (a *Attributes) normalize() {
	if a.ListedBy == "" {
		a.ListedBy = ListedByOwner
	}
	if a.Images == nil {
		a.Images = []string{}
	}
}

// Listing is a persisted property record. Identity and owner are immutable
// after creation; Description is regenerated before every write.
type Listing struct {
	ID         string `bson:"id" json:"id"`
	UserID     string `bson:"user_id" json:"user_id"`
	Attributes `bson:",inline"`

	Description string    `bson:"ai_description" json:"ai_description"`
	CreatedAt   time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt   time.Time `bson:"updated_at" json:"updated_at"`
}
