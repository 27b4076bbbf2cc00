package extract

import "github.com/gyeh/schedh/internal/xmldoc"

var partIIIFields = []string{
	"BadDebtExpenseReportedInd",
	"BadDebtExpenseAmt",
	"BadDebtExpenseAttributableAmt",
	"ReimbursedByMedicareAmt",
	"CostOfCareReimbursedByMedcrAmt",
	"MedicareSurplusOrShortfallAmt",
	"CostAccountingSystemInd",
	"CostToChargeRatioInd",
	"WrittenDebtCollectionPolicyInd",
	"FinancialAssistancePrvsnInd",
}

const (
	managementGroup  = "ManagementCoAndJntVenturesGrp"
	managementPrefix = "ManagementCompany"
)

var managementSubfields = []string{
	"BusinessNameLine1Txt",
	"PrimaryActivitiesTxt",
	"OrgProfitOrOwnershipPct",
	"OfcrEtcProfitOrOwnershipPct",
	"PhysiciansProfitOrOwnershipPct",
}

func (f fields) partIII(sched *xmldoc.Element) {
	for _, name := range partIIIFields {
		f.text(name, sched.Find(name))
	}

	// Medicare costing "other" lives under CostingMethodologyUsedGrp. The
	// policy wrapper has its own OtherInd, read in facilityPolicies.
	if cmu := sched.Find("CostingMethodologyUsedGrp"); cmu != nil {
		f.text("CostingMethodologyOtherInd", cmu.Find("OtherInd"))
	} else {
		f.null("CostingMethodologyOtherInd")
	}
}
