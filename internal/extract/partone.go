package extract

import (
	"github.com/gyeh/schedh/internal/normalize"
	"github.com/gyeh/schedh/internal/xmldoc"
)

// partIIndicators maps Part I output fields to the element they are read from.
// Values pass through as raw trimmed text.
var partIIndicators = []struct{ field, element string }{
	{"FinancialAssistancePolicy", "FinancialAssistancePolicyInd"},
	{"WrittenPolicyInd", "WrittenPolicyInd"},
	{"HospitalPolicyInd_AllHospitalsPolicyInd", "AllHospitalsPolicyInd"},
	{"HospitalPolicyInd_MostHospitalsPolicyInd", "MostHospitalsPolicyInd"},
	{"HospitalPolicyInd_IndivHospitalTailoredPolicyInd", "IndivHospitalTailoredPolicyInd"},
	{"FPGReferenceFreeCareInd_Percent100Ind", "Percent100Ind"},
	{"FPGReferenceFreeCareInd_Percent150Ind", "Percent150Ind"},
	{"FPGReferenceFreeCareInd_Percent200Ind", "Percent200Ind"},
	{"FPGReferenceFreeCareInd_FreeCareOtherPct", "FreeCareOtherPct"},
	{"FPGReferenceDiscountedCareInd_Percent200DInd", "Percent200DInd"},
	{"FPGReferenceDiscountedCareInd_Percent250Ind", "Percent250Ind"},
	{"FPGReferenceDiscountedCareInd_Percent300Ind", "Percent300Ind"},
	{"FPGReferenceDiscountedCareInd_Percent350Ind", "Percent350Ind"},
	{"FPGReferenceDiscountedCareInd_Percent400Ind", "Percent400Ind"},
	{"FreeCareMedicallyIndigentInd", "FreeCareMedicallyIndigentInd"},
	{"FinancialAssistanceBudgetInd", "FinancialAssistanceBudgetInd"},
	{"ExpensesExceedBudgetInd", "ExpensesExceedBudgetInd"},
	{"UnableToProvideCareInd", "UnableToProvideCareInd"},
	{"AnnualCommunityBnftReportInd", "AnnualCommunityBnftReportInd"},
	{"ReportPublicallyAvailableInd", "ReportPublicallyAvailableInd"},
}

const discountedCareOtherField = "FPGReferenceDiscountedCareInd_DiscountedCareOthPercentageGrp"

// benefitGroups are the Part I line 7 and Part II worksheet groups. Each one
// carries the same four amounts and is emitted under its own element name.
var benefitGroups = []string{
	// Part I
	"FinancialAssistanceAtCostTyp",
	"UnreimbursedMedicaidGrp",
	"UnreimbursedCostsGrp",
	"TotalFinancialAssistanceTyp",
	"CommunityHealthServicesGrp",
	"HealthProfessionsEducationGrp",
	"SubsidizedHealthServicesGrp",
	"ResearchGrp",
	"CashAndInKindContributionsGrp",
	"TotalOtherBenefitsGrp",
	"TotalCommunityBenefitsGrp",

	// Part II. "Communtity" is the schema's spelling.
	"PhysicalImprvAndHousingGrp",
	"EconomicDevelopmentGrp",
	"CommunitySupportGrp",
	"EnvironmentalImprovementsGrp",
	"LeadershipDevelopmentGrp",
	"CoalitionBuildingGrp",
	"HealthImprovementAdvocacyGrp",
	"WorkforceDevelopmentGrp",
	"OtherCommuntityBuildingActyGrp",
	"TotalCommuntityBuildingActyGrp",
}

var benefitSubfields = []string{
	"TotalCommunityBenefitExpnsAmt",
	"DirectOffsettingRevenueAmt",
	"NetCommunityBenefitExpnsAmt",
	"TotalExpensePct",
}

func (f fields) partI(sched *xmldoc.Element) {
	for _, ind := range partIIndicators {
		f.text(ind.field, sched.Find(ind.element))
	}

	// The "other" discounted-care percentage is the one Part I value with a
	// sentinel: present group with no value reads "Not Provided".
	if grp := sched.Find("DiscountedCareOthPercentageGrp"); grp != nil {
		v := normalize.Sentinel(normalize.Text(grp.Find("DiscountedCareOtherPct")))
		f[discountedCareOtherField] = &v
	} else {
		f[discountedCareOtherField] = nil
	}
}
