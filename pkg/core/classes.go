package core

// UnknownLipidType is the fallback family for class tags outside the
// RefMet nomenclature.
const UnknownLipidType = "unknown lipid type"

// ClassFamilies maps short RefMet class tags to their full family names.
var ClassFamilies = map[string]string{
	"CAR":         "Fatty esters",
	"CoA":         "Fatty esters",
	"FAHFA":       "Fatty esters",
	"FA":          "Fatty acids",
	"DG":          "Diradylglycerols",
	"DAG":         "Diradylglycerols",
	"DGDG":        "Glycosyldiradylglycerols",
	"MGDG":        "Glycosyldiradylglycerols",
	"MG":          "Monoradylglycerols",
	"MeDAG":       "Triradylglycerols",
	"TG":          "Triradylglycerols",
	"TAG":         "Triradylglycerols",
	"CL":          "Cardiolipins",
	"CDP-DG":      "CDP-Glycerols",
	"LPA":         "Glycerophosphates",
	"PA":          "Glycerophosphates",
	"LPC":         "Glycerophosphocholines",
	"PC":          "Glycerophosphocholines",
	"LPE":         "Glycerophosphoethanolamines",
	"PE":          "Glycerophosphoethanolamines",
	"LPG":         "Glycerophosphoglycerols",
	"LPGP":        "Glycerophosphoglycerols",
	"PG":          "Glycerophosphoglycerols",
	"PIP2":        "Glycerophosphoinositol phosphates",
	"PIP3":        "Glycerophosphoinositol phosphates",
	"LPI":         "Glycerophosphoinositols",
	"LPIP":        "Glycerophosphoinositols",
	"PI":          "Glycerophosphoinositols",
	"LPS":         "Glycerophosphoserines",
	"PS":          "Glycerophosphoserines",
	"CPA":         "Other Glycerophospholipids",
	"1-DeoxyCer":  "Ceramides",
	"Cer":         "Ceramides",
	"CerP":        "Ceramides",
	"PI-Cer":      "Ceramides",
	"GD3":         "Glycosphingolipids",
	"GM1":         "Glycosphingolipids",
	"GM2":         "Glycosphingolipids",
	"GM3":         "Glycosphingolipids",
	"GalCer":      "Glycosphingolipids",
	"GlcCer":      "Glycosphingolipids",
	"HexCer":      "Glycosphingolipids",
	"Hex2Cer":     "Glycosphingolipids",
	"LacCer":      "Glycosphingolipids",
	"Gb3":         "Glycosphingolipids",
	"Sulfatide":   "Glycosphingolipids",
	"PE-Cer":      "Phosphosphingolipids",
	"SM":          "Sphingomyelins",
	"CE":          "Sterol esters",
	"FC":          "Sterols",
	"Iso":         "Sphingoid bases",
}

// FamilyOf returns the full family name for a short class tag, or
// UnknownLipidType when the tag is not part of the nomenclature.
func FamilyOf(class string) string {
	if family, ok := ClassFamilies[class]; ok {
		return family
	}
	return UnknownLipidType
}

// Family returns the full family name of the identifier's lipid class.
func (id *LipidIdentifier) Family() string {
	if id.Class == "" {
		return UnknownLipidType
	}
	return FamilyOf(id.Class)
}
