// ICAO FIR identifiers mapped to ISO 3166-1 alpha-2 country codes.
//
// See https://en.wikipedia.org/wiki/Flight_information_region
package lookup

var firCountries = map[string][]string{
	"AGGG": {"SB"},
	"ANAU": {"NR"},
	"AYPM": {"PG"},
	"BGGL": {"GL", "DK"},
	"BIRD": {"IS"},
	"CZEG": {"CA"},
	"CZQM": {"CA"},
	"CZQX": {"CA"},
	"CZUL": {"CA"},
	"CZVR": {"CA"},
	"CZWG": {"CA"},
	"CZYZ": {"CA"},
	"DAAA": {"DZ"},
	"DGAC": {"GH"},
	"DIII": {"CI"},
	"DNKK": {"NG"},
	"DRRR": {"NE"},
	"DTTC": {"TN"},
	"EZZZ": {"BE"},
	"EBBU": {"BE", "LU"},
	"EDGG": {"DE"},
	"EDMM": {"DE"},
	"EDUU": {"DE"},
	"EDVV": {"DE"},
	"EDWW": {"DE"},
	"EDYY": {"BE", "DE", "NL"},
	"EETT": {"EE"},
	"EFIN": {"FI"},
	"EGGX": {"UK"},
	"EGPX": {"UK"},
	"EGQQ": {"UK"},
	"EGTT": {"UK"},
	"EHAA": {"NL"},
	"EISN": {"IE"},
	"EKDK": {"DK"},
	"ENOB": {"NO"},
	"ENOR": {"NO"},
	"EPWW": {"PL"},
	"ESAA": {"SE"},
	"ESMM": {"SE"},
	"ESOS": {"SE"},
	"EVRR": {"LV"},
	"EYVL": {"LT"},
	"FABL": {"ZA"},
	"FACA": {"ZA"},
	"FACT": {"ZA"},
	"FADN": {"ZA"},
	"FAJO": {"ZA"},
	"FAJX": {"ZA"},
	"FAPX": {"ZA"},
	"FBGR": {"BW"},
	"FCCC": {"CD"},
	"FIMM": {"MU"},
	"FKKK": {"CM"},
	"FLFI": {"ZM"},
	"FMCX": {"KM"},
	"FMMM": {"MG"},
	"FNAN": {"AO"},
	"FOOO": {"GA"},
	"FQBE": {"MZ"},
	"FSSS": {"SC"},
	"FTTT": {"TD"},
	"FVHF": {"ZW"},
	"FWLL": {"MW"},
	"FYWF": {"NA"},
	"FZZA": {"CG"},
	"GCCC": {"ES"},
	"GLRB": {"LR"},
	"GMMM": {"MA"},
	"GOOO": {"SN"},
	"GVSC": {"CV"},
	"HAAA": {"ET"},
	"HBBA": {"BI"},
	"HCSM": {"SO"},
	"HECC": {"EG"},
	"HHAA": {"EG"},
	"HKNA": {"KE"},
	"HLLL": {"LY"},
	"HRYR": {"RW"},
	"HSSS": {"SD"},
	"HTDC": {"TZ"},
	"HUEC": {"UG"},
	"KZAB": {"US"},
	"KZAK": {"US"},
	"KZAU": {"US"},
	"KZBW": {"US"},
	"KZDC": {"US"},
	"KZDV": {"US"},
	"KZFW": {"US"},
	"KZHU": {"US"},
	"KZID": {"US"},
	"KZJX": {"US"},
	"KZKC": {"US"},
	"KZLA": {"US"},
	"KZLC": {"US"},
	"KZMA": {"US"},
	"KZME": {"US"},
	"KZMP": {"US"},
	"KZNY": {"US"},
	"KZOA": {"US"},
	"KZOB": {"US"},
	"KZSE": {"US"},
	"KZTL": {"US"},
	"KZWY": {"US"},
	"LAAA": {"AL"},
	"LBSR": {"BG"},
	"LBWR": {"BG"},
	"LCCC": {"CY"},
	"LDZO": {"HR"},
	"LECB": {"ES"},
	"LECM": {"ES"},
	"LECS": {"ES"},
	"LFBB": {"FR"},
	"LFEE": {"FR"},
	"LFFF": {"FR"},
	"LFMM": {"FR"},
	"LFRR": {"FR"},
	"LGGG": {"GR"},
	"LHCC": {"HU"},
	"LIBB": {"IT"},
	"LIMM": {"IT"},
	"LIRR": {"IT"},
	"LJLA": {"SI"},
	"LKAA": {"CZ"},
	"LLLL": {"IL"},
	"LMMM": {"MT"},
	"LOVV": {"AT"},
	"LPPC": {"PT"},
	"LPPO": {"PT"},
	"LQSB": {"BA"},
	"LRBB": {"RO"},
	"LSAG": {"CH"},
	"LSAS": {"CH"},
	"LSAZ": {"CH"},
	"LTAA": {"TR"},
	"LTBB": {"TR"},
	"LUUU": {"MD"},
	"LWSS": {"MK"},
	"LYBA": {"RS"},
	"LZBB": {"SK"},
	"MDCS": {"DO"},
	"MHTG": {"HN"},
	"MKJK": {"JM"},
	"MMFO": {"MX"},
	"MMFR": {"MX"},
	"MPZL": {"PA"},
	"MTEG": {"HT"},
	"MUFH": {"CU"},
	"MYNA": {"BS"},
	"NFFF": {"FJ"},
	"NTTT": {"PF", "FR"},
	"NWWX": {"NC", "FR"},
	"NZZC": {"NZ"},
	"NZZO": {"NZ"},
	"OAKX": {"AF"},
	"OBBB": {"BH"},
	"OEJD": {"SA"},
	"OIIX": {"IR"},
	"OJAC": {"JO"},
	"OKAC": {"KW"},
	"OLBB": {"LB"},
	"OMAE": {"AE"},
	"OOMM": {"OM"},
	"OPKR": {"PK"},
	"OPLR": {"PK"},
	"ORBB": {"IQ"},
	"ORMM": {"IQ"},
	"OSTT": {"SY"},
	"OYSC": {"YE"},
	"PAZA": {"US"},
	"PAZN": {"US"},
	"PHZH": {"US"},
	"RCAA": {"TW"},
	"RJJJ": {"JA"},
	"RKRR": {"KR"},
	"RPHI": {"PH"},
	"SACF": {"AR"},
	"SACU": {"AR"},
	"SAEF": {"AR"},
	"SAEU": {"AR"},
	"SAMF": {"AR"},
	"SAMV": {"AR"},
	"SARR": {"AR"},
	"SAVF": {"AR"},
	"SAVU": {"AR"},
	"SBAO": {"BR"},
	"SBAZ": {"BR"},
	"SBBS": {"BR"},
	"SBCW": {"BR"},
	"SBRE": {"BR"},
	"SCCZ": {"CL"},
	"SCEZ": {"CL"},
	"SCFZ": {"CL"},
	"SCIZ": {"CL"},
	"SCTZ": {"CL"},
	"SEFG": {"EC"},
	"SGFA": {"PY"},
	"SKEC": {"CO"},
	"SKED": {"CO"},
	"SLLF": {"BO"},
	"SMPM": {"SR"},
	"SOOO": {"GF", "FR"},
	"SPIM": {"PU"},
	"SUEO": {"UY"},
	"SVZM": {"VE"},
	"SYGC": {"GY"},
	"TJZS": {"PR", "US"},
	"TNCF": {"CW", "NL"},
	"TTZP": {"TT"},
	"UAAX": {"KZ"},
	"UACX": {"KZ"},
	"UAFX": {"KG"},
	"UASS": {"KZ"},
	"UDDD": {"AM"},
	"UEMH": {"RU"},
	"UENN": {"RU"},
	"UESS": {"RU"},
	"UESU": {"RU"},
	"UEVV": {"RU"},
	"UGEE": {"RU"},
	"UGGG": {"GE"},
	"UHBI": {"RU"},
	"UHHH": {"RU"},
	"UHMI": {"RU"},
	"UHMM": {"RU"},
	"UHMP": {"RU"},
	"UHNN": {"RU"},
	"UHPT": {"RU"},
	"UHPU": {"RU"},
	"UHSH": {"RU"},
	"UIKB": {"RU"},
	"UIKK": {"RU"},
	"UKBV": {"UA"},
	"UKCV": {"UA"},
	"UKDV": {"UA"},
	"UKFV": {"UA"},
	"UKHV": {"UA"},
	"UKLV": {"UA"},
	"UKOV": {"UA"},
	"ULLL": {"RU"},
	"ULOL": {"RU"},
	"UMKD": {"RU"},
	"UMMV": {"BY"},
	"UNLL": {"RU"},
	"UOTT": {"RU"},
	"URRV": {"RU"},
	"USDK": {"RU"},
	"USHB": {"RU"},
	"USHH": {"RU"},
	"UTAK": {"TM"},
	"UTNR": {"UZ"},
	"UTSD": {"UZ"},
	"UTTR": {"UZ"},
	"UUWV": {"RU"},
	"UUYW": {"RU"},
	"UUYY": {"RU"},
	"UWOO": {"RU"},
	"VABF": {"IN"},
	"VCCC": {"LK"},
	"VDPF": {"KH"},
	"VECF": {"IN"},
	"VGFR": {"BD"},
	"VHHK": {"HK"},
	"VIDF": {"IN"},
	"VLIV": {"LA"},
	"VLVT": {"LA"},
	"VNSM": {"NP"},
	"VOMF": {"IN"},
	"VRMF": {"MV"},
	"VTBB": {"TH"},
	"VVHM": {"VN"},
	"VVHN": {"VN"},
	"VYMD": {"MM"},
	"VYYF": {"MM"},
	"WAAF": {"ID"},
	"WAAZ": {"ID"},
	"WABZ": {"ID"},
	"WADZ": {"ID"},
	"WAJZ": {"ID"},
	"WAKZ": {"ID"},
	"WALZ": {"ID"},
	"WAMZ": {"ID"},
	"WAOZ": {"ID"},
	"WAPZ": {"ID"},
	"WATZ": {"ID"},
	"WBFC": {"BN", "MY"},
	"WIIF": {"ID"},
	"WIIZ": {"ID"},
	"WIMZ": {"ID"},
	"WIOZ": {"ID"},
	"WIPZ": {"ID"},
	"WMFC": {"MY"},
	"WSJC": {"SG"},
	"YBBB": {"AU"},
	"YMMM": {"AU"},
	"ZBPE": {"CH"},
	"ZGJD": {"CH"},
	"ZGZU": {"CH"},
	"ZHWH": {"CH"},
	"ZJSA": {"CH"},
	"ZKKP": {"KP"},
	"ZLHW": {"CH"},
	"ZMUB": {"MN"},
	"ZPKM": {"CH"},
	"ZSHA": {"CH"},
	"ZWUQ": {"CH"},
	"ZYSH": {"CH"},
}
