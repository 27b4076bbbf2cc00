package extract

import (
	"fmt"
	"strings"

	"github.com/samber/lo"

	"github.com/gyeh/schedh/internal/model"
	"github.com/gyeh/schedh/internal/normalize"
	"github.com/gyeh/schedh/internal/xmldoc"
)

const (
	facilityGroup        = "HospitalFacilitiesGrp"
	facilitySummary      = "HospitalFacilitiesGrp"
	facilityPolicyGroup  = "HospitalFcltyPoliciesPrctcGrp"
	positionalFacilities = 2
)

var facilityFlatFields = []string{
	"SubordinateHospitalName",
	"SubordinateHospitalEIN",
	"LicensedHospitalInd",
	"GeneralMedicalAndSurgicalInd",
	"ChildrensHospitalInd",
	"TeachingHospitalInd",
	"CriticalAccessHospitalInd",
	"ResearchFacilityInd",
}

// facilityPolicyFields are read as descendants of the policy wrapper. The
// CHNA "other" checkbox is the wrapper's OtherInd.
var (
	facilityPolicyFields = model.SectionFields(model.SectionFacilityPolicies)
	policyElementAlias   = map[string]string{"CHNAOtherInd": "OtherInd"}
)

func facilityAddress(n int) address {
	p := fmt.Sprintf("FacilityNum%d", n)
	return address{
		line1:   p + "Street",
		city:    p + "City",
		state:   p + "State",
		zip:     p + "ZIP",
		country: p + "Country",
	}
}

func (f fields) facilities(sched *xmldoc.Element) {
	f.text("HospitalFacilitiesCnt", sched.Find("HospitalFacilitiesCnt"))

	groups := sched.FindAll(facilityGroup)
	if len(groups) == 0 {
		f.null(facilitySummary)
	} else {
		entries := lo.Map(groups, func(g *xmldoc.Element, _ int) string {
			return deref(normalize.Text(g.Find("FacilityNum"))) + "|" + deref(facilityName(g))
		})
		summary := strings.Join(entries, ";")
		f[facilitySummary] = &summary
	}

	// Only the first two facilities in document order get their own columns.
	for i := 0; i < positionalFacilities; i++ {
		n := i + 1
		nameField := fmt.Sprintf("FacilityNum%dBusinessName", n)
		addr := facilityAddress(n)
		if i >= len(groups) {
			f.null(nameField)
			f.null(addr.names()...)
			continue
		}
		g := groups[i]
		f[nameField] = facilityName(g)
		if us := g.Find("USAddress"); us != nil {
			f.usAddress(us, addr)
		} else {
			f.null(addr.names()...)
		}
	}

	for _, name := range facilityFlatFields {
		f.text(name, sched.Find(name))
	}
}

func facilityName(g *xmldoc.Element) *string {
	return normalize.Text(g.Find("BusinessName").Find("BusinessNameLine1Txt"))
}

// facilityPolicies reads the Part V section B checkboxes and narrative fields
// from the first policy wrapper. Without a wrapper all of them are null.
func (f fields) facilityPolicies(sched *xmldoc.Element) {
	wrapper := sched.Find(facilityPolicyGroup)
	if wrapper == nil {
		f.null(facilityPolicyFields...)
		return
	}
	for _, name := range facilityPolicyFields {
		elem := name
		if alias, ok := policyElementAlias[name]; ok {
			elem = alias
		}
		f.text(name, wrapper.Find(elem))
	}
}

var otherFacilityAddress = address{
	line1: "OthHlthCareFcltsGrp_AddressLine1Txt",
	city:  "OthHlthCareFcltsGrp_CityNm",
	state: "OthHlthCareFcltsGrp_StateAbbreviationCd",
	zip:   "OthHlthCareFcltsGrp_ZIPCd",
}

const otherFacilityName = "OthHlthCareFcltsGrp_BusinessName"

// otherFacilities reads the first non-hospital health care facility (Part V
// section D). Each missing level of nesting nulls what it would have held.
func (f fields) otherFacilities(sched *xmldoc.Element) {
	grp := sched.Find("OthHlthCareFcltsNotHospitalGrp").Find("OthHlthCareFcltsGrp")
	if grp == nil {
		f.null(otherFacilityName)
		f.null(otherFacilityAddress.names()...)
		return
	}
	f.text(otherFacilityName, grp.Find("BusinessNameLine1Txt"))
	if us := grp.Find("USAddress"); us != nil {
		f.usAddress(us, otherFacilityAddress)
	} else {
		f.null(otherFacilityAddress.names()...)
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
