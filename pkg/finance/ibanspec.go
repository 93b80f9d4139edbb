package finance

// IBANSpec describes the national IBAN format of a country: the total
// length and a registered example. French overseas territories and the
// British crown dependencies use the IBAN of their mainland, so their
// examples carry a different country code than their own.
type IBANSpec struct {
	Country string
	Length  int
	Example string
}

// franceExample is shared by France and its overseas territories.
const franceExample = "FR1420041010050500013M02606"

// britainExample is shared by the United Kingdom and its crown
// dependencies.
const britainExample = "GB29NWBK60161331926819"

var ibanSpecs = map[string]IBANSpec{
	"AL": {Country: "AL", Length: 28, Example: "AL47212110090000000235698741"},
	"DZ": {Country: "DZ", Length: 24, Example: "DZ4000400174401001050486"},
	"AD": {Country: "AD", Length: 24, Example: "AD1200012030200359100100"},
	"AO": {Country: "AO", Length: 25, Example: "AO06000600000100037131174"},
	"AT": {Country: "AT", Length: 20, Example: "AT611904300235473201"},
	"AZ": {Country: "AZ", Length: 28, Example: "AZ21NABZ00000000137010001944"},
	"BH": {Country: "BH", Length: 22, Example: "BH29BMAG1299123456BH00"},
	"BE": {Country: "BE", Length: 16, Example: "BE68539007547034"},
	"BJ": {Country: "BJ", Length: 28, Example: "BJ11B00610100400271101192591"},
	"BA": {Country: "BA", Length: 20, Example: "BA391290079401028494"},
	"BR": {Country: "BR", Length: 29, Example: "BR9700360305000010009795493P1"},
	"BG": {Country: "BG", Length: 22, Example: "BG80BNBG96611020345678"},
	"BF": {Country: "BF", Length: 27, Example: "BF1030134020015400945000643"},
	"BI": {Country: "BI", Length: 16, Example: "BI43201011067444"},
	"CM": {Country: "CM", Length: 27, Example: "CM2110003001000500000605306"},
	"CV": {Country: "CV", Length: 25, Example: "CV64000300004547069110176"},
	"CF": {Country: "CF", Length: 27, Example: "CF4220001000010120069700160"},
	"CG": {Country: "CG", Length: 27, Example: "CG5230011000202151234567890"},
	"CR": {Country: "CR", Length: 21, Example: "CR0515202001026284066"},
	"CI": {Country: "CI", Length: 28, Example: "CI05A00060174100178530011852"},
	"HR": {Country: "HR", Length: 21, Example: "HR1210010051863000160"},
	"CY": {Country: "CY", Length: 28, Example: "CY17002001280000001200527600"},
	"CZ": {Country: "CZ", Length: 24, Example: "CZ6508000000192000145399"},
	"DK": {Country: "DK", Length: 18, Example: "DK5000400440116243"},
	"DO": {Country: "DO", Length: 28, Example: "DO28BAGR00000001212453611324"},
	"EG": {Country: "EG", Length: 27, Example: "EG1100006001880800100014553"},
	"EE": {Country: "EE", Length: 20, Example: "EE382200221020145685"},
	"FO": {Country: "FO", Length: 18, Example: "FO1464600009692713"},
	"FI": {Country: "FI", Length: 18, Example: "FI2112345600000785"},
	"FR": {Country: "FR", Length: 27, Example: franceExample},
	"GF": {Country: "GF", Length: 27, Example: franceExample},
	"PF": {Country: "PF", Length: 27, Example: franceExample},
	"GA": {Country: "GA", Length: 27, Example: "GA2140002000055602673300064"},
	"GE": {Country: "GE", Length: 22, Example: "GE29NB0000000101904917"},
	"DE": {Country: "DE", Length: 22, Example: "DE89370400440532013000"},
	"GI": {Country: "GI", Length: 23, Example: "GI75NWBK000000007099453"},
	"GR": {Country: "GR", Length: 27, Example: "GR1601101250000000012300695"},
	"GL": {Country: "GL", Length: 18, Example: "GL8964710001000206"},
	"GP": {Country: "GP", Length: 27, Example: franceExample},
	"GT": {Country: "GT", Length: 28, Example: "GT82TRAJ01020000001210029690"},
	"GG": {Country: "GG", Length: 22, Example: britainExample},
	"HU": {Country: "HU", Length: 28, Example: "HU42117730161111101800000000"},
	"IS": {Country: "IS", Length: 26, Example: "IS140159260076545510730339"},
	"IR": {Country: "IR", Length: 26, Example: "IR580540105180021273113007"},
	"IE": {Country: "IE", Length: 22, Example: "IE29AIBK93115212345678"},
	"IM": {Country: "IM", Length: 22, Example: britainExample},
	"IL": {Country: "IL", Length: 23, Example: "IL620108000000099999999"},
	"IT": {Country: "IT", Length: 27, Example: "IT60X0542811101000000123456"},
	"JE": {Country: "JE", Length: 22, Example: britainExample},
	"JO": {Country: "JO", Length: 30, Example: "JO94CBJO0010000000000131000302"},
	"KZ": {Country: "KZ", Length: 20, Example: "KZ176010251000042993"},
	"KW": {Country: "KW", Length: 30, Example: "KW74NBOK0000000000001000372151"},
	"LV": {Country: "LV", Length: 21, Example: "LV80BANK0000435195001"},
	"LB": {Country: "LB", Length: 28, Example: "LB30099900000001001925579115"},
	"LI": {Country: "LI", Length: 21, Example: "LI21088100002324013AA"},
	"LT": {Country: "LT", Length: 20, Example: "LT121000011101001000"},
	"LU": {Country: "LU", Length: 20, Example: "LU280019400644750000"},
	"MK": {Country: "MK", Length: 19, Example: "MK07300000000042425"},
	"MG": {Country: "MG", Length: 27, Example: "MG4600005030010101914016056"},
	"ML": {Country: "ML", Length: 28, Example: "ML03D00890170001002120000447"},
	"MT": {Country: "MT", Length: 31, Example: "MT84MALT011000012345MTLCAST001S"},
	"MQ": {Country: "MQ", Length: 27, Example: franceExample},
	"MR": {Country: "MR", Length: 27, Example: "MR1300012000010000002037372"},
	"MU": {Country: "MU", Length: 30, Example: "MU17BOMM0101101030300200000MUR"},
	"MD": {Country: "MD", Length: 24, Example: "MD24AG000225100013104168"},
	"MC": {Country: "MC", Length: 27, Example: "MC5813488000010051108001292"},
	"ME": {Country: "ME", Length: 22, Example: "ME25505000012345678951"},
	"MZ": {Country: "MZ", Length: 25, Example: "MZ59000100000011834194157"},
	"NL": {Country: "NL", Length: 18, Example: "NL91ABNA0417164300"},
	"NC": {Country: "NC", Length: 27, Example: franceExample},
	"NO": {Country: "NO", Length: 15, Example: "NO9386011117947"},
	"PK": {Country: "PK", Length: 24, Example: "PK24SCBL0000001171495101"},
	"PS": {Country: "PS", Length: 29, Example: "PS92PALS000000000400123456702"},
	"PL": {Country: "PL", Length: 28, Example: "PL27114020040000300201355387"},
	"QA": {Country: "QA", Length: 29, Example: "QA58DOHB00001234567890ABCDEFG"},
	"PT": {Country: "PT", Length: 25, Example: "PT50000201231234567890154"},
	"RE": {Country: "RE", Length: 27, Example: franceExample},
	"RO": {Country: "RO", Length: 24, Example: "RO49AAAA1B31007593840000"},
	"PM": {Country: "PM", Length: 27, Example: franceExample},
	"SM": {Country: "SM", Length: 27, Example: "SM86U0322509800000000270100"},
	"ST": {Country: "ST", Length: 25, Example: "ST68000100010051845310112"},
	"SA": {Country: "SA", Length: 24, Example: "SA0380000000608010167519"},
	"SN": {Country: "SN", Length: 28, Example: "SN12K00100152000025690007542"},
	"RS": {Country: "RS", Length: 22, Example: "RS35260005601001611379"},
	"SK": {Country: "SK", Length: 24, Example: "SK3112000000198742637541"},
	"SI": {Country: "SI", Length: 19, Example: "SI56191000000123438"},
	"ES": {Country: "ES", Length: 24, Example: "ES9121000418450200051332"},
	"SE": {Country: "SE", Length: 24, Example: "SE3550000000054910000003"},
	"CH": {Country: "CH", Length: 21, Example: "CH9300762011623852957"},
	"TN": {Country: "TN", Length: 24, Example: "TN5914207207100707129648"},
	"TR": {Country: "TR", Length: 26, Example: "TR330006100519786457841326"},
	"UA": {Country: "UA", Length: 29, Example: "UA573543470006762462054925026"},
	"AE": {Country: "AE", Length: 23, Example: "AE260211000000230064016"},
	"GB": {Country: "GB", Length: 22, Example: britainExample},
	"VG": {Country: "VG", Length: 24, Example: "VG96VPVG0000012345678901"},
	"WF": {Country: "WF", Length: 27, Example: franceExample},
}

// SpecFor returns the national IBAN format of the supplied ISO 3166
// alpha-2 country code. The second return value is false when the
// country has no registered format.
func SpecFor(countryCode string) (IBANSpec, bool) {
	spec, ok := ibanSpecs[countryCode]
	return spec, ok
}

// SupportsIBAN reports whether the supplied ISO 3166 alpha-2 country
// code has a registered IBAN format.
func SupportsIBAN(countryCode string) bool {
	_, ok := ibanSpecs[countryCode]
	return ok
}
