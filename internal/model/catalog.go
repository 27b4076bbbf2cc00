package model

// Section groups catalog fields by the part of the return they come from.
type Section string

const (
	SectionRelease          Section = "release"
	SectionFiler            Section = "filer"
	SectionFinancial        Section = "financial"
	SectionPartI            Section = "part_i"
	SectionPartIGroups      Section = "part_i_groups"
	SectionPartII           Section = "part_ii"
	SectionPartIII          Section = "part_iii"
	SectionPartIV           Section = "part_iv"
	SectionFacilities       Section = "facilities"
	SectionFacilityPolicies Section = "facility_policies"
	SectionSupplemental     Section = "supplemental"
	SectionOtherFacilities  Section = "other_facilities"
)

// Field is one column of the flattened Schedule H table.
type Field struct {
	Name    string  // logical name used during extraction, e.g. "ResearchGrp_TotalExpensePct"
	Column  string  // output column abbreviation, e.g. "IRS_RSCHNCBEP"
	Section Section
}

// Catalog lists every output field in fixed output order.
var Catalog = []Field{
	// Release provenance
	{Name: "ReleaseYear", Column: "IRS_RELEASEYEAR", Section: SectionRelease},
	{Name: "ReleaseSource", Column: "IRS_RELEASESITE", Section: SectionRelease},
	{Name: "ReleaseDownload", Column: "IRS_RELEASEDOWN", Section: SectionRelease},
	{Name: "ReleaseFileName", Column: "IRS_RELEASETEOS", Section: SectionRelease},

	// Filing identity
	{Name: "FileName", Column: "IRS_RELEASEXML", Section: SectionFiler},
	{Name: "TaxPeriodBeginDt", Column: "IRS_TAXPERBEGDT", Section: SectionFiler},
	{Name: "TaxPeriodEndDt", Column: "IRS_TAXPERENDDT", Section: SectionFiler},
	{Name: "TaxYr", Column: "IRS_TAXYEAR", Section: SectionFiler},
	{Name: "PreparationDt", Column: "IRS_PREPAREDT", Section: SectionFiler},
	{Name: "Filer_EIN", Column: "IRS_FILER_EIN", Section: SectionFiler},
	{Name: "Filer_BusinessName", Column: "IRS_FLRBUSNAME", Section: SectionFiler},
	{Name: "Filer_BusinessNameControlTxt", Column: "IRS_FLRBUSNMTXT", Section: SectionFiler},
	{Name: "Filer_PhoneNum", Column: "IRS_FLRPHONENUM", Section: SectionFiler},
	{Name: "Filer_AddressLine1Txt", Column: "IRS_FLRADDRESS", Section: SectionFiler},
	{Name: "Filer_CityNm", Column: "IRS_FLRCITYNAME", Section: SectionFiler},
	{Name: "Filer_StateAbbreviationCd", Column: "IRS_FLRSTATEABB", Section: SectionFiler},
	{Name: "Filer_ZIPCd", Column: "IRS_FLRZIPCODE", Section: SectionFiler},
	{Name: "Filer_Country", Column: "IRS_FLRCOUNTRY", Section: SectionFiler},

	// Core 990 totals, read outside Schedule H
	{Name: "TotalEmployeeCnt", Column: "IRS_TOTEMPCNT", Section: SectionFinancial},
	{Name: "TotalGrossUBIAmt", Column: "IRS_TOTGRUBIAMT", Section: SectionFinancial},
	{Name: "NetUnrelatedBusTxblIncmAmt", Column: "IRS_NETUBIAMT", Section: SectionFinancial},
	{Name: "PYContributionsGrantsAmt", Column: "IRS_PYCNTGRTAMT", Section: SectionFinancial},
	{Name: "CYContributionsGrantsAmt", Column: "IRS_CYCNTGRTAMT", Section: SectionFinancial},
	{Name: "PYProgramServiceRevenueAmt", Column: "IRS_PYPSREVAMT", Section: SectionFinancial},
	{Name: "CYProgramServiceRevenueAmt", Column: "IRS_CYPSREVAMT", Section: SectionFinancial},
	{Name: "PYInvestmentIncomeAmt", Column: "IRS_PYINVINCAMT", Section: SectionFinancial},
	{Name: "CYInvestmentIncomeAmt", Column: "IRS_CYINVINCAMT", Section: SectionFinancial},
	{Name: "PYOtherRevenueAmt", Column: "IRS_PYOTHREVAMT", Section: SectionFinancial},
	{Name: "CYOtherRevenueAmt", Column: "IRS_CYOTHREVAMT", Section: SectionFinancial},
	{Name: "PYTotalRevenueAmt", Column: "IRS_PYTOTREVAMT", Section: SectionFinancial},
	{Name: "CYTotalRevenueAmt", Column: "IRS_CYTOTREVAMT", Section: SectionFinancial},
	{Name: "PYGrantsAndSimilarPaidAmt", Column: "IRS_PYGASPAIAMT", Section: SectionFinancial},
	{Name: "CYGrantsAndSimilarPaidAmt", Column: "IRS_CYGASPAIAMT", Section: SectionFinancial},
	{Name: "PYBenefitsPaidToMembersAmt", Column: "IRS_PYBENPTMAMT", Section: SectionFinancial},
	{Name: "CYBenefitsPaidToMembersAmt", Column: "IRS_CYBENPTMAMT", Section: SectionFinancial},
	{Name: "PYSalariesCompEmpBnftPaidAmt", Column: "IRS_PYSCEBPAMT", Section: SectionFinancial},
	{Name: "CYSalariesCompEmpBnftPaidAmt", Column: "IRS_CYSCEBPAMT", Section: SectionFinancial},
	{Name: "PYTotalProfFndrsngExpnsAmt", Column: "IRS_PYTPFEXPAMT", Section: SectionFinancial},
	{Name: "CYTotalProfFndrsngExpnsAmt", Column: "IRS_CYTPFEXPAMT", Section: SectionFinancial},
	{Name: "CYTotalFundraisingExpenseAmt", Column: "IRS_CYTFEXPAMT", Section: SectionFinancial},
	{Name: "PYOtherExpensesAmt", Column: "IRS_PYOTHEXPAMT", Section: SectionFinancial},
	{Name: "CYOtherExpensesAmt", Column: "IRS_CYOTHEXPAMT", Section: SectionFinancial},
	{Name: "PYTotalExpensesAmt", Column: "IRS_PYTOTEXPAMT", Section: SectionFinancial},
	{Name: "CYTotalExpensesAmt", Column: "IRS_CYTOTEXPAMT", Section: SectionFinancial},
	{Name: "PYRevenuesLessExpensesAmt", Column: "IRS_PYREVLEXAMT", Section: SectionFinancial},
	{Name: "CYRevenuesLessExpensesAmt", Column: "IRS_CYREVLEXAMT", Section: SectionFinancial},
	{Name: "TotalAssetsBOYAmt", Column: "IRS_TLASSBOYAMT", Section: SectionFinancial},
	{Name: "TotalAssetsEOYAmt", Column: "IRS_TLASSEOYAMT", Section: SectionFinancial},
	{Name: "TotalLiabilitiesBOYAmt", Column: "IRS_TLLBLBOYAMT", Section: SectionFinancial},
	{Name: "TotalLiabilitiesEOYAmt", Column: "IRS_TLLBLEOYAMT", Section: SectionFinancial},
	{Name: "NetAssetsOrFundBalancesBOYAmt", Column: "IRS_NAOFBBOYAMT", Section: SectionFinancial},
	{Name: "NetAssetsOrFundBalancesEOYAmt", Column: "IRS_NAOFBEOYAMT", Section: SectionFinancial},

	// Part I financial assistance policy
	{Name: "FinancialAssistancePolicy", Column: "IRS_FNASPOLYN", Section: SectionPartI},
	{Name: "WrittenPolicyInd", Column: "IRS_FAPWRTNYN", Section: SectionPartI},
	{Name: "HospitalPolicyInd_AllHospitalsPolicyInd", Column: "IRS_FAPALLHSP", Section: SectionPartI},
	{Name: "HospitalPolicyInd_MostHospitalsPolicyInd", Column: "IRS_FAPMSTHSP", Section: SectionPartI},
	{Name: "HospitalPolicyInd_IndivHospitalTailoredPolicyInd", Column: "IRS_FAPTLRHSP", Section: SectionPartI},
	{Name: "FPGReferenceFreeCareInd_Percent100Ind", Column: "IRS_FAPFCPG100", Section: SectionPartI},
	{Name: "FPGReferenceFreeCareInd_Percent150Ind", Column: "IRS_FAPFCPG150", Section: SectionPartI},
	{Name: "FPGReferenceFreeCareInd_Percent200Ind", Column: "IRS_FAPFCPG200", Section: SectionPartI},
	{Name: "FPGReferenceFreeCareInd_FreeCareOtherPct", Column: "IRS_FAPFCPGOTH", Section: SectionPartI},
	{Name: "FPGReferenceDiscountedCareInd_Percent200DInd", Column: "IRS_FAPDCPG200", Section: SectionPartI},
	{Name: "FPGReferenceDiscountedCareInd_Percent250Ind", Column: "IRS_FAPDCPG250", Section: SectionPartI},
	{Name: "FPGReferenceDiscountedCareInd_Percent300Ind", Column: "IRS_FAPDCPG300", Section: SectionPartI},
	{Name: "FPGReferenceDiscountedCareInd_Percent350Ind", Column: "IRS_FAPDCPG350", Section: SectionPartI},
	{Name: "FPGReferenceDiscountedCareInd_Percent400Ind", Column: "IRS_FAPDCPG400", Section: SectionPartI},
	{Name: "FPGReferenceDiscountedCareInd_DiscountedCareOthPercentageGrp", Column: "IRS_FAPDCPGOTH", Section: SectionPartI},
	{Name: "FreeCareMedicallyIndigentInd", Column: "IRS_FDCRMEDIND", Section: SectionPartI},
	{Name: "FinancialAssistanceBudgetInd", Column: "IRS_FNASBDGT", Section: SectionPartI},
	{Name: "ExpensesExceedBudgetInd", Column: "IRS_EXPEXCBDGT", Section: SectionPartI},
	{Name: "UnableToProvideCareInd", Column: "IRS_UNTOPRFDCR", Section: SectionPartI},
	{Name: "AnnualCommunityBnftReportInd", Column: "IRS_PRANCMBNRT", Section: SectionPartI},
	{Name: "ReportPublicallyAvailableInd", Column: "IRS_CBRPUBAVL", Section: SectionPartI},

	// Part I line 7 worksheet groups
	{Name: "FinancialAssistanceAtCostTyp_TotalCommunityBenefitExpnsAmt", Column: "IRS_FAACTCBEA", Section: SectionPartIGroups},
	{Name: "FinancialAssistanceAtCostTyp_DirectOffsettingRevenueAmt", Column: "IRS_FAACDORVA", Section: SectionPartIGroups},
	{Name: "FinancialAssistanceAtCostTyp_NetCommunityBenefitExpnsAmt", Column: "IRS_FAACNCBEA", Section: SectionPartIGroups},
	{Name: "FinancialAssistanceAtCostTyp_TotalExpensePct", Column: "IRS_FAACNCBEP", Section: SectionPartIGroups},
	{Name: "UnreimbursedMedicaidGrp_TotalCommunityBenefitExpnsAmt", Column: "IRS_UMCDTCBEA", Section: SectionPartIGroups},
	{Name: "UnreimbursedMedicaidGrp_DirectOffsettingRevenueAmt", Column: "IRS_UMCDDORVA", Section: SectionPartIGroups},
	{Name: "UnreimbursedMedicaidGrp_NetCommunityBenefitExpnsAmt", Column: "IRS_UMCDNCBEA", Section: SectionPartIGroups},
	{Name: "UnreimbursedMedicaidGrp_TotalExpensePct", Column: "IRS_UMCDNCBEP", Section: SectionPartIGroups},
	{Name: "UnreimbursedCostsGrp_TotalCommunityBenefitExpnsAmt", Column: "IRS_OMTGTCBEA", Section: SectionPartIGroups},
	{Name: "UnreimbursedCostsGrp_DirectOffsettingRevenueAmt", Column: "IRS_OMTGDORVA", Section: SectionPartIGroups},
	{Name: "UnreimbursedCostsGrp_NetCommunityBenefitExpnsAmt", Column: "IRS_OMTGNCBEA", Section: SectionPartIGroups},
	{Name: "UnreimbursedCostsGrp_TotalExpensePct", Column: "IRS_OMTGNCBEP", Section: SectionPartIGroups},
	{Name: "TotalFinancialAssistanceTyp_TotalCommunityBenefitExpnsAmt", Column: "IRS_TFMTCBEA", Section: SectionPartIGroups},
	{Name: "TotalFinancialAssistanceTyp_DirectOffsettingRevenueAmt", Column: "IRS_TFMTDORVA", Section: SectionPartIGroups},
	{Name: "TotalFinancialAssistanceTyp_NetCommunityBenefitExpnsAmt", Column: "IRS_TFMTNCBEA", Section: SectionPartIGroups},
	{Name: "TotalFinancialAssistanceTyp_TotalExpensePct", Column: "IRS_TFMTNCBEP", Section: SectionPartIGroups},
	{Name: "CommunityHealthServicesGrp_TotalCommunityBenefitExpnsAmt", Column: "IRS_CHISTCBEA", Section: SectionPartIGroups},
	{Name: "CommunityHealthServicesGrp_DirectOffsettingRevenueAmt", Column: "IRS_CHISDORVA", Section: SectionPartIGroups},
	{Name: "CommunityHealthServicesGrp_NetCommunityBenefitExpnsAmt", Column: "IRS_CHISNCBEA", Section: SectionPartIGroups},
	{Name: "CommunityHealthServicesGrp_TotalExpensePct", Column: "IRS_CHISNCBEP", Section: SectionPartIGroups},
	{Name: "HealthProfessionsEducationGrp_TotalCommunityBenefitExpnsAmt", Column: "IRS_HPEDTCBEA", Section: SectionPartIGroups},
	{Name: "HealthProfessionsEducationGrp_DirectOffsettingRevenueAmt", Column: "IRS_HPEDDORVA", Section: SectionPartIGroups},
	{Name: "HealthProfessionsEducationGrp_NetCommunityBenefitExpnsAmt", Column: "IRS_HPEDNCBEA", Section: SectionPartIGroups},
	{Name: "HealthProfessionsEducationGrp_TotalExpensePct", Column: "IRS_HPEDNCBEP", Section: SectionPartIGroups},
	{Name: "SubsidizedHealthServicesGrp_TotalCommunityBenefitExpnsAmt", Column: "IRS_SBHSTCBEA", Section: SectionPartIGroups},
	{Name: "SubsidizedHealthServicesGrp_DirectOffsettingRevenueAmt", Column: "IRS_SBHSDORVA", Section: SectionPartIGroups},
	{Name: "SubsidizedHealthServicesGrp_NetCommunityBenefitExpnsAmt", Column: "IRS_SBHSNCBEA", Section: SectionPartIGroups},
	{Name: "SubsidizedHealthServicesGrp_TotalExpensePct", Column: "IRS_SBHSNCBEP", Section: SectionPartIGroups},
	{Name: "ResearchGrp_TotalCommunityBenefitExpnsAmt", Column: "IRS_RSCHTCBEA", Section: SectionPartIGroups},
	{Name: "ResearchGrp_DirectOffsettingRevenueAmt", Column: "IRS_RSCHDORVA", Section: SectionPartIGroups},
	{Name: "ResearchGrp_NetCommunityBenefitExpnsAmt", Column: "IRS_RSCHNCBEA", Section: SectionPartIGroups},
	{Name: "ResearchGrp_TotalExpensePct", Column: "IRS_RSCHNCBEP", Section: SectionPartIGroups},
	{Name: "CashAndInKindContributionsGrp_TotalCommunityBenefitExpnsAmt", Column: "IRS_CIKCTCBEA", Section: SectionPartIGroups},
	{Name: "CashAndInKindContributionsGrp_DirectOffsettingRevenueAmt", Column: "IRS_CIKCDORVA", Section: SectionPartIGroups},
	{Name: "CashAndInKindContributionsGrp_NetCommunityBenefitExpnsAmt", Column: "IRS_CIKCNCBEA", Section: SectionPartIGroups},
	{Name: "CashAndInKindContributionsGrp_TotalExpensePct", Column: "IRS_CIKCNCBEP", Section: SectionPartIGroups},
	{Name: "TotalOtherBenefitsGrp_TotalCommunityBenefitExpnsAmt", Column: "IRS_TOBNTCBEA", Section: SectionPartIGroups},
	{Name: "TotalOtherBenefitsGrp_DirectOffsettingRevenueAmt", Column: "IRS_TOBNDORVA", Section: SectionPartIGroups},
	{Name: "TotalOtherBenefitsGrp_NetCommunityBenefitExpnsAmt", Column: "IRS_TOBNNCBEA", Section: SectionPartIGroups},
	{Name: "TotalOtherBenefitsGrp_TotalExpensePct", Column: "IRS_TOBNNCBEP", Section: SectionPartIGroups},
	{Name: "TotalCommunityBenefitsGrp_TotalCommunityBenefitExpnsAmt", Column: "IRS_TCBNTCBEA", Section: SectionPartIGroups},
	{Name: "TotalCommunityBenefitsGrp_DirectOffsettingRevenueAmt", Column: "IRS_TCBNDORVA", Section: SectionPartIGroups},
	{Name: "TotalCommunityBenefitsGrp_NetCommunityBenefitExpnsAmt", Column: "IRS_TCBNNCBEA", Section: SectionPartIGroups},
	{Name: "TotalCommunityBenefitsGrp_TotalExpensePct", Column: "IRS_TCBNNCBEP", Section: SectionPartIGroups},

	// Part II community building
	{Name: "PhysicalImprvAndHousingGrp_TotalCommunityBenefitExpnsAmt", Column: "IRS_PIAHTCBEA", Section: SectionPartII},
	{Name: "PhysicalImprvAndHousingGrp_DirectOffsettingRevenueAmt", Column: "IRS_PIAHDORVA", Section: SectionPartII},
	{Name: "PhysicalImprvAndHousingGrp_NetCommunityBenefitExpnsAmt", Column: "IRS_PIAHNCBEA", Section: SectionPartII},
	{Name: "PhysicalImprvAndHousingGrp_TotalExpensePct", Column: "IRS_PIAHNCBEP", Section: SectionPartII},
	{Name: "EconomicDevelopmentGrp_TotalCommunityBenefitExpnsAmt", Column: "IRS_ECDVTCBEA", Section: SectionPartII},
	{Name: "EconomicDevelopmentGrp_DirectOffsettingRevenueAmt", Column: "IRS_ECDVDORVA", Section: SectionPartII},
	{Name: "EconomicDevelopmentGrp_NetCommunityBenefitExpnsAmt", Column: "IRS_ECDVNCBEA", Section: SectionPartII},
	{Name: "EconomicDevelopmentGrp_TotalExpensePct", Column: "IRS_ECDVNCBEP", Section: SectionPartII},
	{Name: "CommunitySupportGrp_TotalCommunityBenefitExpnsAmt", Column: "IRS_CSPTTCBEA", Section: SectionPartII},
	{Name: "CommunitySupportGrp_DirectOffsettingRevenueAmt", Column: "IRS_CSPTDORVA", Section: SectionPartII},
	{Name: "CommunitySupportGrp_NetCommunityBenefitExpnsAmt", Column: "IRS_CSPTNCBEA", Section: SectionPartII},
	{Name: "CommunitySupportGrp_TotalExpensePct", Column: "IRS_CSPTNCBEP", Section: SectionPartII},
	{Name: "EnvironmentalImprovementsGrp_TotalCommunityBenefitExpnsAmt", Column: "IRS_ENVITCBEA", Section: SectionPartII},
	{Name: "EnvironmentalImprovementsGrp_DirectOffsettingRevenueAmt", Column: "IRS_ENVIDORVA", Section: SectionPartII},
	{Name: "EnvironmentalImprovementsGrp_NetCommunityBenefitExpnsAmt", Column: "IRS_ENVINCBEA", Section: SectionPartII},
	{Name: "EnvironmentalImprovementsGrp_TotalExpensePct", Column: "IRS_ENVINCBEP", Section: SectionPartII},
	{Name: "LeadershipDevelopmentGrp_TotalCommunityBenefitExpnsAmt", Column: "IRS_LDATTCBEA", Section: SectionPartII},
	{Name: "LeadershipDevelopmentGrp_DirectOffsettingRevenueAmt", Column: "IRS_LDATDORVA", Section: SectionPartII},
	{Name: "LeadershipDevelopmentGrp_NetCommunityBenefitExpnsAmt", Column: "IRS_LDATNCBEA", Section: SectionPartII},
	{Name: "LeadershipDevelopmentGrp_TotalExpensePct", Column: "IRS_LDATNCBEP", Section: SectionPartII},
	{Name: "CoalitionBuildingGrp_TotalCommunityBenefitExpnsAmt", Column: "IRS_CBLDTCBEA", Section: SectionPartII},
	{Name: "CoalitionBuildingGrp_DirectOffsettingRevenueAmt", Column: "IRS_CBLDDORVA", Section: SectionPartII},
	{Name: "CoalitionBuildingGrp_NetCommunityBenefitExpnsAmt", Column: "IRS_CBLDNCBEA", Section: SectionPartII},
	{Name: "CoalitionBuildingGrp_TotalExpensePct", Column: "IRS_CBLDNCBEP", Section: SectionPartII},
	{Name: "HealthImprovementAdvocacyGrp_TotalCommunityBenefitExpnsAmt", Column: "IRS_CHAITCBEA", Section: SectionPartII},
	{Name: "HealthImprovementAdvocacyGrp_DirectOffsettingRevenueAmt", Column: "IRS_CHAIDORVA", Section: SectionPartII},
	{Name: "HealthImprovementAdvocacyGrp_NetCommunityBenefitExpnsAmt", Column: "IRS_CHAINCBEA", Section: SectionPartII},
	{Name: "HealthImprovementAdvocacyGrp_TotalExpensePct", Column: "IRS_CHAINCBEP", Section: SectionPartII},
	{Name: "WorkforceDevelopmentGrp_TotalCommunityBenefitExpnsAmt", Column: "IRS_WKDVTCBEA", Section: SectionPartII},
	{Name: "WorkforceDevelopmentGrp_DirectOffsettingRevenueAmt", Column: "IRS_WKDVDORVA", Section: SectionPartII},
	{Name: "WorkforceDevelopmentGrp_NetCommunityBenefitExpnsAmt", Column: "IRS_WKDVNCBEA", Section: SectionPartII},
	{Name: "WorkforceDevelopmentGrp_TotalExpensePct", Column: "IRS_WKDVNCBEP", Section: SectionPartII},
	{Name: "OtherCommuntityBuildingActyGrp_TotalCommunityBenefitExpnsAmt", Column: "IRS_OCBATCBEA", Section: SectionPartII},
	{Name: "OtherCommuntityBuildingActyGrp_DirectOffsettingRevenueAmt", Column: "IRS_OCBADORVA", Section: SectionPartII},
	{Name: "OtherCommuntityBuildingActyGrp_NetCommunityBenefitExpnsAmt", Column: "IRS_OCBANCBEA", Section: SectionPartII},
	{Name: "OtherCommuntityBuildingActyGrp_TotalExpensePct", Column: "IRS_OCBANCBEP", Section: SectionPartII},
	{Name: "TotalCommuntityBuildingActyGrp_TotalCommunityBenefitExpnsAmt", Column: "IRS_TCBATCBEA", Section: SectionPartII},
	{Name: "TotalCommuntityBuildingActyGrp_DirectOffsettingRevenueAmt", Column: "IRS_TCBADORVA", Section: SectionPartII},
	{Name: "TotalCommuntityBuildingActyGrp_NetCommunityBenefitExpnsAmt", Column: "IRS_TCBANCBEA", Section: SectionPartII},
	{Name: "TotalCommuntityBuildingActyGrp_TotalExpensePct", Column: "IRS_TCBANCBEP", Section: SectionPartII},

	// Part III
	{Name: "BadDebtExpenseReportedInd", Column: "IRS_RPBDHFMA15", Section: SectionPartIII},
	{Name: "BadDebtExpenseAmt", Column: "IRS_BADDBTTLAMT", Section: SectionPartIII},
	{Name: "BadDebtExpenseAttributableAmt", Column: "IRS_BADDBTATFAP", Section: SectionPartIII},
	{Name: "ReimbursedByMedicareAmt", Column: "IRS_TTLMCRREV", Section: SectionPartIII},
	{Name: "CostOfCareReimbursedByMedcrAmt", Column: "IRS_TTLMCRCST", Section: SectionPartIII},
	{Name: "MedicareSurplusOrShortfallAmt", Column: "IRS_TTLMCRSRPLS", Section: SectionPartIII},
	{Name: "CostAccountingSystemInd", Column: "IRS_MCRCMUCAS", Section: SectionPartIII},
	{Name: "CostToChargeRatioInd", Column: "IRS_MCRCMUCCR", Section: SectionPartIII},
	{Name: "CostingMethodologyOtherInd", Column: "IRS_MCRCMUOTH", Section: SectionPartIII},
	{Name: "WrittenDebtCollectionPolicyInd", Column: "IRS_DBTCOLWRT", Section: SectionPartIII},
	{Name: "FinancialAssistancePrvsnInd", Column: "IRS_DBTCOLFAP", Section: SectionPartIII},

	// Part IV
	{Name: "ManagementCompany_BusinessNameLine1Txt", Column: "IRS_MCJVNAME", Section: SectionPartIV},
	{Name: "ManagementCompany_PrimaryActivitiesTxt", Column: "IRS_MCJVDOPA", Section: SectionPartIV},
	{Name: "ManagementCompany_OrgProfitOrOwnershipPct", Column: "IRS_MJORGPRFPCT", Section: SectionPartIV},
	{Name: "ManagementCompany_OfcrEtcProfitOrOwnershipPct", Column: "IRS_MJODTPRFPCT", Section: SectionPartIV},
	{Name: "ManagementCompany_PhysiciansProfitOrOwnershipPct", Column: "IRS_MJMDSPRFPCT", Section: SectionPartIV},

	// Part V section A
	{Name: "HospitalFacilitiesCnt", Column: "IRS_TOTCNTFCLTY", Section: SectionFacilities},
	{Name: "HospitalFacilitiesGrp", Column: "IRS_LSTALLFCLTY", Section: SectionFacilities},
	{Name: "FacilityNum1BusinessName", Column: "IRS_FC1BUSNAME", Section: SectionFacilities},
	{Name: "FacilityNum1Street", Column: "IRS_FC1ADDRESS", Section: SectionFacilities},
	{Name: "FacilityNum1City", Column: "IRS_FC1CITYNAME", Section: SectionFacilities},
	{Name: "FacilityNum1State", Column: "IRS_FC1STATEABB", Section: SectionFacilities},
	{Name: "FacilityNum1ZIP", Column: "IRS_FC1ZIPCODE", Section: SectionFacilities},
	{Name: "FacilityNum1Country", Column: "IRS_FC1COUNTRY", Section: SectionFacilities},
	{Name: "FacilityNum2BusinessName", Column: "IRS_FC2BUSNAME", Section: SectionFacilities},
	{Name: "FacilityNum2Street", Column: "IRS_FC2ADDRESS", Section: SectionFacilities},
	{Name: "FacilityNum2City", Column: "IRS_FC2CITYNAME", Section: SectionFacilities},
	{Name: "FacilityNum2State", Column: "IRS_FC2STATEABB", Section: SectionFacilities},
	{Name: "FacilityNum2ZIP", Column: "IRS_FC2ZIPCODE", Section: SectionFacilities},
	{Name: "FacilityNum2Country", Column: "IRS_FC2COUNTRY", Section: SectionFacilities},
	{Name: "SubordinateHospitalName", Column: "IRS_SUBHSPNAME", Section: SectionFacilities},
	{Name: "SubordinateHospitalEIN", Column: "IRS_SUBHSPEIN", Section: SectionFacilities},
	{Name: "LicensedHospitalInd", Column: "IRS_FCISLICHSP", Section: SectionFacilities},
	{Name: "GeneralMedicalAndSurgicalInd", Column: "IRS_FCISGMSHSP", Section: SectionFacilities},
	{Name: "ChildrensHospitalInd", Column: "IRS_FCISCLDHSP", Section: SectionFacilities},
	{Name: "TeachingHospitalInd", Column: "IRS_FCISTCHHSP", Section: SectionFacilities},
	{Name: "CriticalAccessHospitalInd", Column: "IRS_FCISCRAHSP", Section: SectionFacilities},
	{Name: "ResearchFacilityInd", Column: "IRS_FCISRSRCHF", Section: SectionFacilities},

	// Part V section B
	{Name: "FirstLicensedCYOrPYInd", Column: "IRS_CHNAVB1", Section: SectionFacilityPolicies},
	{Name: "TaxExemptHospitalCYOrPYInd", Column: "IRS_CHNAVB2", Section: SectionFacilityPolicies},
	{Name: "CHNAConductedInd", Column: "IRS_CHNAVB3", Section: SectionFacilityPolicies},
	{Name: "CommunityDefinitionInd", Column: "IRS_CHNAVB3A", Section: SectionFacilityPolicies},
	{Name: "CommunityDemographicsInd", Column: "IRS_CHNAVB3B", Section: SectionFacilityPolicies},
	{Name: "ExistingResourcesInd", Column: "IRS_CHNAVB3C", Section: SectionFacilityPolicies},
	{Name: "HowDataObtainedInd", Column: "IRS_CHNAVB3D", Section: SectionFacilityPolicies},
	{Name: "CommunityHealthNeedsInd", Column: "IRS_CHNAVB3E", Section: SectionFacilityPolicies},
	{Name: "OtherHealthIssuesInd", Column: "IRS_CHNAVB3F", Section: SectionFacilityPolicies},
	{Name: "CommunityHlthNeedsIdProcessInd", Column: "IRS_CHNAVB3G", Section: SectionFacilityPolicies},
	{Name: "ConsultingProcessInd", Column: "IRS_CHNAVB3H", Section: SectionFacilityPolicies},
	{Name: "PriorCHNAImpactInd", Column: "IRS_CHNAVB3I", Section: SectionFacilityPolicies},
	{Name: "CHNAOtherInd", Column: "IRS_CHNAVB3J", Section: SectionFacilityPolicies},
	{Name: "CHNAConductedYr", Column: "IRS_CHNAVB4", Section: SectionFacilityPolicies},
	{Name: "TakeIntoAccountOthersInputInd", Column: "IRS_CHNAVB5", Section: SectionFacilityPolicies},
	{Name: "CHNAConductedWithOtherFcltsInd", Column: "IRS_CHNAVB6A", Section: SectionFacilityPolicies},
	{Name: "CHNAConductedWithNonFcltsInd", Column: "IRS_CHNAVB6B", Section: SectionFacilityPolicies},
	{Name: "CHNAReportWidelyAvailableInd", Column: "IRS_CHNAVB7", Section: SectionFacilityPolicies},
	{Name: "RptAvailableOnOwnWebsiteInd", Column: "IRS_CHNAVB7A", Section: SectionFacilityPolicies},
	{Name: "OwnWebsiteURLTxt", Column: "IRS_CHNAVB7AURL", Section: SectionFacilityPolicies},
	{Name: "OtherWebsiteInd", Column: "IRS_CHNAVB7B", Section: SectionFacilityPolicies},
	{Name: "OtherWebsiteURLTxt", Column: "IRS_CHNAVB7BURL", Section: SectionFacilityPolicies},
	{Name: "PaperCopyPublicInspectionInd", Column: "IRS_CHNAVB7C", Section: SectionFacilityPolicies},
	{Name: "RptAvailableThruOtherMethodInd", Column: "IRS_CHNAVB7D", Section: SectionFacilityPolicies},
	{Name: "ImplementationStrategyAdoptInd", Column: "IRS_CHNAVB8", Section: SectionFacilityPolicies},
	{Name: "ImplementationStrategyAdptYr", Column: "IRS_CHNAVB9", Section: SectionFacilityPolicies},
	{Name: "StrategyPostedWebsiteInd", Column: "IRS_CHNAVB10", Section: SectionFacilityPolicies},
	{Name: "StrategyWebsiteURLTxt", Column: "IRS_CHNAVB10A", Section: SectionFacilityPolicies},
	{Name: "StrategyAttachedInd", Column: "IRS_CHNAVB10B", Section: SectionFacilityPolicies},
	{Name: "BinaryAttachment", Column: "IRS_CHNAVB10B2", Section: SectionFacilityPolicies},
	{Name: "OrganizationIncurExciseTaxInd", Column: "IRS_CHNAVB12A", Section: SectionFacilityPolicies},
	{Name: "Form4720FiledInd", Column: "IRS_CHNAVB12B", Section: SectionFacilityPolicies},
	{Name: "ExciseReportForm4720ForAllAmt", Column: "IRS_CHNAVB12C", Section: SectionFacilityPolicies},
	{Name: "EligCriteriaExplainedInd", Column: "IRS_FAPVB13", Section: SectionFacilityPolicies},
	{Name: "FPGFamilyIncmLmtFreeDscntInd", Column: "IRS_FAPVB13A", Section: SectionFacilityPolicies},
	{Name: "FPGFamilyIncmLmtFreeCarePct", Column: "IRS_FAPVB13AFC", Section: SectionFacilityPolicies},
	{Name: "FPGFamilyIncmLmtDscntCarePct", Column: "IRS_FAPVB13ADC", Section: SectionFacilityPolicies},
	{Name: "IncomeLevelCriteriaInd", Column: "IRS_FAPVB13B", Section: SectionFacilityPolicies},
	{Name: "AssetLevelCriteriaInd", Column: "IRS_FAPVB13C", Section: SectionFacilityPolicies},
	{Name: "MedicalIndigencyCriteriaInd", Column: "IRS_FAPVB13D", Section: SectionFacilityPolicies},
	{Name: "InsuranceStatusCriteriaInd", Column: "IRS_FAPVB13E", Section: SectionFacilityPolicies},
	{Name: "UnderinsuranceStatCriteriaInd", Column: "IRS_FAPVB13F", Section: SectionFacilityPolicies},
	{Name: "ResidencyCriteriaInd", Column: "IRS_FAPVB13G", Section: SectionFacilityPolicies},
	{Name: "OtherCriteriaInd", Column: "IRS_FAPVB13H", Section: SectionFacilityPolicies},
	{Name: "ExplainedBasisInd", Column: "IRS_FAPVB14", Section: SectionFacilityPolicies},
	{Name: "AppFinancialAsstExplnInd", Column: "IRS_FAPVB15", Section: SectionFacilityPolicies},
	{Name: "DescribedInfoInd", Column: "IRS_FAPVB15A", Section: SectionFacilityPolicies},
	{Name: "DescribedSuprtDocInd", Column: "IRS_FAPVB15B", Section: SectionFacilityPolicies},
	{Name: "ProvidedHospitalContactInd", Column: "IRS_FAPVB15C", Section: SectionFacilityPolicies},
	{Name: "ProvidedNonprofitContactInd", Column: "IRS_FAPVB15D", Section: SectionFacilityPolicies},
	{Name: "OtherMethodInd", Column: "IRS_FAPVB15E", Section: SectionFacilityPolicies},
	{Name: "IncludesPublicityMeasuresInd", Column: "IRS_FAPVB16", Section: SectionFacilityPolicies},
	{Name: "FAPAvailableOnWebsiteInd", Column: "IRS_FAPVB16A", Section: SectionFacilityPolicies},
	{Name: "FAPAvailableOnWebsiteURLTxt", Column: "IRS_FAPVB16AURL", Section: SectionFacilityPolicies},
	{Name: "FAPAppAvailableOnWebsiteInd", Column: "IRS_FAPVB16B", Section: SectionFacilityPolicies},
	{Name: "FAPAppAvailableOnWebsiteURLTxt", Column: "IRS_FAPVB16BURL", Section: SectionFacilityPolicies},
	{Name: "FAPSummaryOnWebsiteInd", Column: "IRS_FAPVB16C", Section: SectionFacilityPolicies},
	{Name: "FAPSummaryOnWebsiteURLTxt", Column: "IRS_FAPVB16CURL", Section: SectionFacilityPolicies},
	{Name: "FAPAvlblOnRequestNoChargeInd", Column: "IRS_FAPVB16D", Section: SectionFacilityPolicies},
	{Name: "FAPAppAvlblOnRequestNoChrgInd", Column: "IRS_FAPVB16E", Section: SectionFacilityPolicies},
	{Name: "FAPSumAvlblOnRequestNoChrgInd", Column: "IRS_FAPVB16F", Section: SectionFacilityPolicies},
	{Name: "NotifiedFAPCopyBillDisplayInd", Column: "IRS_FAPVB16G", Section: SectionFacilityPolicies},
	{Name: "CommuntityNotifiedFAPInd", Column: "IRS_FAPVB16H", Section: SectionFacilityPolicies},
	{Name: "FAPTranslatedInd", Column: "IRS_FAPVB16I", Section: SectionFacilityPolicies},
	{Name: "OtherPublicityInd", Column: "IRS_FAPVB16J", Section: SectionFacilityPolicies},
	{Name: "FAPActionsOnNonpaymentInd", Column: "IRS_BACVB17", Section: SectionFacilityPolicies},
	{Name: "PermitReportToCreditAgencyInd", Column: "IRS_BACVB18A", Section: SectionFacilityPolicies},
	{Name: "PermitSellingDebtInd", Column: "IRS_BACVB18B", Section: SectionFacilityPolicies},
	{Name: "PermitDeferDenyRqrPaymentInd", Column: "IRS_BACVB18C", Section: SectionFacilityPolicies},
	{Name: "PermitLegalJudicialProcessInd", Column: "IRS_BACVB18D", Section: SectionFacilityPolicies},
	{Name: "PermitOtherActionsInd", Column: "IRS_BACVB18E", Section: SectionFacilityPolicies},
	{Name: "PermitNoActionsInd", Column: "IRS_BACVB18F", Section: SectionFacilityPolicies},
	{Name: "CollectionActivitiesInd", Column: "IRS_BACVB19", Section: SectionFacilityPolicies},
	{Name: "ReportingToCreditAgencyInd", Column: "IRS_BACVB19A", Section: SectionFacilityPolicies},
	{Name: "EngagedSellingDebtInd", Column: "IRS_BACVB19B", Section: SectionFacilityPolicies},
	{Name: "EngageDeferDenyRqrPaymentInd", Column: "IRS_BACVB19C", Section: SectionFacilityPolicies},
	{Name: "EngagedLegalJudicialProcessInd", Column: "IRS_BACVB19D", Section: SectionFacilityPolicies},
	{Name: "OtherActionsInd", Column: "IRS_BACVB19E", Section: SectionFacilityPolicies},
	{Name: "ProvidedWrittenNoticeInd", Column: "IRS_BACVB20A", Section: SectionFacilityPolicies},
	{Name: "MadeEffortOrallyNotifyInd", Column: "IRS_BACVB20B", Section: SectionFacilityPolicies},
	{Name: "ProcessedFAPApplicationInd", Column: "IRS_BACVB20C", Section: SectionFacilityPolicies},
	{Name: "MadePresumptiveEligDetermInd", Column: "IRS_BACVB20D", Section: SectionFacilityPolicies},
	{Name: "OtherActionsTakenInd", Column: "IRS_BACVB20E", Section: SectionFacilityPolicies},
	{Name: "NoneMadeInd", Column: "IRS_BACVB20F", Section: SectionFacilityPolicies},
	{Name: "NondisEmergencyCarePolicyInd", Column: "IRS_EMCVB21", Section: SectionFacilityPolicies},
	{Name: "NoEmergencyCareInd", Column: "IRS_EMCVB21A", Section: SectionFacilityPolicies},
	{Name: "NoEmergencyCarePolicyInd", Column: "IRS_EMCVB21B", Section: SectionFacilityPolicies},
	{Name: "EmergencyCareLimitedInd", Column: "IRS_EMCVB21C", Section: SectionFacilityPolicies},
	{Name: "OtherReasonInd", Column: "IRS_EMCVB21D", Section: SectionFacilityPolicies},
	{Name: "LookBackMedicareInd", Column: "IRS_EMCVB22A", Section: SectionFacilityPolicies},
	{Name: "LookBackMedicarePrivateInd", Column: "IRS_EMCVB22B", Section: SectionFacilityPolicies},
	{Name: "LookBackMedicaidMedcrPrvtInd", Column: "IRS_EMCVB22C", Section: SectionFacilityPolicies},
	{Name: "ProspectiveMedicareMedicaidInd", Column: "IRS_EMCVB22D", Section: SectionFacilityPolicies},
	{Name: "AmountsGenerallyBilledInd", Column: "IRS_EMCVB23", Section: SectionFacilityPolicies},
	{Name: "GrossChargesInd", Column: "IRS_EMCVB24", Section: SectionFacilityPolicies},

	// Part VI
	{Name: "SupplementalFacilityNum", Column: "IRS_TOTCNTOHF", Section: SectionSupplemental},

	// Part V section D
	{Name: "OthHlthCareFcltsGrp_BusinessName", Column: "IRS_OHFBUSNAME", Section: SectionOtherFacilities},
	{Name: "OthHlthCareFcltsGrp_AddressLine1Txt", Column: "IRS_OHFADDRESS", Section: SectionOtherFacilities},
	{Name: "OthHlthCareFcltsGrp_CityNm", Column: "IRS_OHFCITYNAME", Section: SectionOtherFacilities},
	{Name: "OthHlthCareFcltsGrp_StateAbbreviationCd", Column: "IRS_OHFSTATEABB", Section: SectionOtherFacilities},
	{Name: "OthHlthCareFcltsGrp_ZIPCd", Column: "IRS_OHFZIPCODE", Section: SectionOtherFacilities},
}

var catalogIndex = func() map[string]int {
	m := make(map[string]int, len(Catalog))
	for i, f := range Catalog {
		m[f.Name] = i
	}
	return m
}()

// Columns returns the output column abbreviations in catalog order.
func Columns() []string {
	cols := make([]string, len(Catalog))
	for i, f := range Catalog {
		cols[i] = f.Column
	}
	return cols
}

// FieldIndex returns the catalog position of the named field, or ok=false.
func FieldIndex(name string) (int, bool) {
	i, ok := catalogIndex[name]
	return i, ok
}

// FieldByColumn returns the field with the given output abbreviation, or ok=false.
func FieldByColumn(column string) (Field, bool) {
	for _, f := range Catalog {
		if f.Column == column {
			return f, true
		}
	}
	return Field{}, false
}

// SectionFields returns the logical names of every field in the section, in catalog order.
func SectionFields(s Section) []string {
	var names []string
	for _, f := range Catalog {
		if f.Section == s {
			names = append(names, f.Name)
		}
	}
	return names
}
