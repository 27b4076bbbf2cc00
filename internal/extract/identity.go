package extract

import (
	"github.com/gyeh/schedh/internal/normalize"
	"github.com/gyeh/schedh/internal/xmldoc"
)

const usaCountry = "USA"

// address names the five output fields an address block fills.
type address struct {
	line1, city, state, zip, country string
}

var filerAddress = address{
	line1:   "Filer_AddressLine1Txt",
	city:    "Filer_CityNm",
	state:   "Filer_StateAbbreviationCd",
	zip:     "Filer_ZIPCd",
	country: "Filer_Country",
}

func (a address) names() []string {
	names := []string{a.line1, a.city, a.state, a.zip}
	if a.country != "" {
		names = append(names, a.country)
	}
	return names
}

// identity reads the return header: tax period, filer and filer address.
func (f fields) identity(doc *xmldoc.Element, fileName string) {
	f["FileName"] = normalize.Lit(fileName)
	for _, name := range []string{"TaxPeriodBeginDt", "TaxPeriodEndDt", "TaxYr", "PreparationDt"} {
		f.text(name, doc.Find(name))
	}

	filer := doc.Find("Filer")
	if filer == nil {
		f.null("Filer_EIN", "Filer_BusinessName", "Filer_BusinessNameControlTxt", "Filer_PhoneNum")
		f.null(filerAddress.names()...)
	} else {
		f.text("Filer_EIN", filer.Find("EIN"))
		f.text("Filer_BusinessName", filer.Find("BusinessName").Find("BusinessNameLine1Txt"))
		f.text("Filer_BusinessNameControlTxt", filer.Find("BusinessNameControlTxt"))
		f.text("Filer_PhoneNum", filer.Find("PhoneNum"))
		f.filerAddress(filer)
	}

	supp := doc.Find("SupplementalInformationGrp")
	f.text("SupplementalFacilityNum", supp.NextSibling("FacilityNum"))
}

// filerAddress prefers a domestic address, falls back to a foreign one, and
// nulls all five fields when neither is present.
func (f fields) filerAddress(filer *xmldoc.Element) {
	a := filerAddress
	if us := filer.Find("USAddress"); us != nil {
		f.usAddress(us, a)
		return
	}
	if fa := filer.Find("ForeignAddress"); fa != nil {
		f.text(a.line1, fa.Find("AddressLine1Txt"))
		f.text(a.city, fa.Find("CityNm"))
		f.text(a.state, fa.Find("ProvinceOrStateNm"))
		f.text(a.zip, fa.Find("ForeignPostalCd"))
		f.text(a.country, fa.Find("CountryCd"))
		return
	}
	f.null(a.names()...)
}

// usAddress reads a USAddress block. An empty country name skips the literal.
func (f fields) usAddress(us *xmldoc.Element, a address) {
	f.text(a.line1, us.Find("AddressLine1Txt"))
	f.text(a.city, us.Find("CityNm"))
	f.text(a.state, us.Find("StateAbbreviationCd"))
	f.text(a.zip, us.Find("ZIPCd"))
	if a.country != "" {
		f[a.country] = normalize.Lit(usaCountry)
	}
}
