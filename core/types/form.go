// Package types - Intake domain types
// The form snapshot and its closed enumerations.
package types

import "strings"

// PropertyStatus identifies the status of the property
type PropertyStatus string

const (
	PropertyVacant     PropertyStatus = "vacant"
	PropertyDeveloped  PropertyStatus = "developed"
	PropertyCommercial PropertyStatus = "commercial"
)

// String returns the string representation
func (p PropertyStatus) String() string {
	return string(p)
}

// IsValid reports whether the value is a known property status
func (p PropertyStatus) IsValid() bool {
	switch p {
	case PropertyVacant, PropertyDeveloped, PropertyCommercial:
		return true
	}
	return false
}

// AreaBucket is the approximate project area
type AreaBucket string

const (
	AreaUnderHalf   AreaBucket = "underHalf"
	AreaHalfToOne   AreaBucket = "halfToOne"
	AreaOneToThree  AreaBucket = "oneToThree"
	AreaThreeToFive AreaBucket = "threeToFive"
	AreaOverFive    AreaBucket = "overFive"
)

func (a AreaBucket) String() string {
	return string(a)
}

// IsValid reports whether the value is a known area bucket
func (a AreaBucket) IsValid() bool {
	switch a {
	case AreaUnderHalf, AreaHalfToOne, AreaOneToThree, AreaThreeToFive, AreaOverFive:
		return true
	}
	return false
}

// Service identifies a requested service
type Service string

const (
	ServiceForestryMulching   Service = "forestryMulching"
	ServiceDefensibleSpace    Service = "defensibleSpace"
	ServiceSelectiveClearing  Service = "selectiveClearing"
	ServiceAccessCreation     Service = "accessCreation"
	ServiceDitchingDrainage   Service = "ditchingDrainage"
	ServiceCulvertInstall     Service = "culvertInstallation"
	ServiceBasePrepCompaction Service = "basePrepCompaction"
	ServiceDrivewayWork       Service = "drivewayWork"
	ServiceStumpGrinding      Service = "stumpGrinding"
)

func (s Service) String() string {
	return string(s)
}

// AllServices lists every service in catalog order
var AllServices = []Service{
	ServiceForestryMulching,
	ServiceDefensibleSpace,
	ServiceSelectiveClearing,
	ServiceAccessCreation,
	ServiceDitchingDrainage,
	ServiceCulvertInstall,
	ServiceBasePrepCompaction,
	ServiceDrivewayWork,
	ServiceStumpGrinding,
}

// Vegetation identifies a vegetation type present on site
type Vegetation string

const (
	VegetationLightBrush    Vegetation = "lightBrush"
	VegetationWillowBrush   Vegetation = "willowBrush"
	VegetationMixedSaplings Vegetation = "mixedBrushSaplings"
	VegetationBrushTimber   Vegetation = "brushTimber"
	VegetationTimberOnly    Vegetation = "timberOnly"
	VegetationDenseWoody    Vegetation = "denseWoody"
)

func (v Vegetation) String() string {
	return string(v)
}

// IsTimberTrigger reports whether this vegetation type requires a
// timber handling selection.
func (v Vegetation) IsTimberTrigger() bool {
	return v == VegetationBrushTimber || v == VegetationTimberOnly
}

// AllVegetation lists every vegetation type in catalog order
var AllVegetation = []Vegetation{
	VegetationLightBrush,
	VegetationWillowBrush,
	VegetationMixedSaplings,
	VegetationBrushTimber,
	VegetationTimberOnly,
	VegetationDenseWoody,
}

// Terrain is the dominant terrain profile
type Terrain string

const (
	TerrainFlat    Terrain = "flat"
	TerrainRolling Terrain = "rolling"
	TerrainSteep   Terrain = "steep"
)

func (t Terrain) String() string {
	return string(t)
}

// IsValid reports whether the value is a known terrain profile
func (t Terrain) IsValid() bool {
	switch t {
	case TerrainFlat, TerrainRolling, TerrainSteep:
		return true
	}
	return false
}

// Access describes site access conditions
type Access string

const (
	AccessRoad    Access = "road"
	AccessLimited Access = "limited"
	AccessNone    Access = "noAccess"
)

func (a Access) String() string {
	return string(a)
}

// IsValid reports whether the value is a known access condition
func (a Access) IsValid() bool {
	switch a {
	case AccessRoad, AccessLimited, AccessNone:
		return true
	}
	return false
}

// GroundCondition describes current ground conditions
type GroundCondition string

const (
	GroundDry       GroundCondition = "dry"
	GroundSaturated GroundCondition = "saturated"
)

func (g GroundCondition) String() string {
	return string(g)
}

// IsValid reports whether the value is a known ground condition
func (g GroundCondition) IsValid() bool {
	return g == GroundDry || g == GroundSaturated
}

// Waterways is the answer to the waterways / sensitive areas question
type Waterways string

const (
	WaterwaysYes    Waterways = "yes"
	WaterwaysNo     Waterways = "no"
	WaterwaysUnsure Waterways = "unsure"
)

func (w Waterways) String() string {
	return string(w)
}

// IsValid reports whether the value is a known waterways answer
func (w Waterways) IsValid() bool {
	switch w {
	case WaterwaysYes, WaterwaysNo, WaterwaysUnsure:
		return true
	}
	return false
}

// TimberHandling is the timber handling method
type TimberHandling string

const (
	TimberStack  TimberHandling = "stack"
	TimberRemove TimberHandling = "remove"
	TimberMulch  TimberHandling = "mulch"
)

func (t TimberHandling) String() string {
	return string(t)
}

// IsValid reports whether the value is a known handling method
func (t TimberHandling) IsValid() bool {
	switch t {
	case TimberStack, TimberRemove, TimberMulch:
		return true
	}
	return false
}

// AllTimberHandling lists every handling method in catalog order
var AllTimberHandling = []TimberHandling{TimberStack, TimberRemove, TimberMulch}

// SupportNeed identifies additional access / drainage / compaction work
type SupportNeed string

const (
	SupportClearingOnly SupportNeed = "clearingOnly"
	SupportDitching     SupportNeed = "ditching"
	SupportCulverts     SupportNeed = "culverts"
	SupportCompaction   SupportNeed = "compaction"
)

func (s SupportNeed) String() string {
	return string(s)
}

// AllSupportNeeds lists every support need in catalog order
var AllSupportNeeds = []SupportNeed{
	SupportClearingOnly,
	SupportDitching,
	SupportCulverts,
	SupportCompaction,
}

// PhotoRef is an opaque reference to an attached site photo.
// The engine never reads photo content; only the metadata travels.
type PhotoRef struct {
	// Name is the original file name
	Name string `json:"name"`

	// Size is the file size in bytes, if known
	Size int64 `json:"size,omitempty"`
}

// Form is one immutable submission snapshot of the estimate request
// form. The presentation layer assembles it field by field and freezes
// it at submission time; no pipeline stage mutates it.
type Form struct {
	// Contact
	FullName string `json:"fullName"`
	Phone    string `json:"phone"`
	Email    string `json:"email"`

	// Property
	PropertyStatus PropertyStatus `json:"propertyStatus"`
	ProjectAddress string         `json:"projectAddress,omitempty"`
	City           string         `json:"city"`
	County         string         `json:"county"`
	DistanceMiles  float64        `json:"distanceMiles"`

	// Scope
	Area            AreaBucket      `json:"area"`
	Services        []Service       `json:"services"`
	Vegetation      []Vegetation    `json:"vegetation"`
	Terrain         Terrain         `json:"terrain"`
	Access          Access          `json:"access"`
	GroundCondition GroundCondition `json:"groundCondition"`
	Waterways       Waterways       `json:"waterways"`

	// Conditional fields
	TimberHandling   TimberHandling `json:"timberHandling,omitempty"`
	StumpCount       int            `json:"stumpCount,omitempty"`
	AvgStumpDiameter float64        `json:"avgStumpDiameter,omitempty"`

	// Support needs
	SupportNeeds []SupportNeed `json:"supportNeeds,omitempty"`

	// Permit acknowledgement
	PermitAck bool `json:"permitAck"`

	// Photo references (metadata only)
	Photos []PhotoRef `json:"photos,omitempty"`
}

// HasService reports whether the service was requested
func (f *Form) HasService(s Service) bool {
	for _, svc := range f.Services {
		if svc == s {
			return true
		}
	}
	return false
}

// HasSupportNeed reports whether the support need was selected
func (f *Form) HasSupportNeed(n SupportNeed) bool {
	for _, need := range f.SupportNeeds {
		if need == n {
			return true
		}
	}
	return false
}

// HasTimber reports whether any selected vegetation type carries
// timber over 8".
func (f *Form) HasTimber() bool {
	for _, v := range f.Vegetation {
		if v.IsTimberTrigger() {
			return true
		}
	}
	return false
}

// HasBrush reports whether any selected vegetation type is a
// non-timber type.
func (f *Form) HasBrush() bool {
	for _, v := range f.Vegetation {
		if !v.IsTimberTrigger() {
			return true
		}
	}
	return false
}

// RequiresTimberHandling reports whether a timber handling selection
// is required for this form.
func (f *Form) RequiresTimberHandling() bool {
	return f.HasTimber()
}

// HasExactAddress reports whether a street address or parcel
// description was provided.
func (f *Form) HasExactAddress() bool {
	return strings.TrimSpace(f.ProjectAddress) != ""
}
