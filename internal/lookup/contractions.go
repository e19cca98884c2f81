// Approved NOTAM contractions and their expansions.
//
// See https://www.notams.faa.gov/downloads/contractions.pdf
package lookup

var contractions = map[string]string{
	"AP LGT": "AIRPORT LIGHTING",
	"BA FAIR": "BRAKING ACTION FAIR",
	"BA NIL": "BRAKING ACTION NIL",
	"BA POOR": "BRAKING ACTION POOR",
	"DEP PROC": "DEPARTURE PROCEDURE",
	"FAN MKR": "FAN MARKER",
	"TDZ LGT": "TOUCHDOWN ZONE LIGHTS",
	"VOR VHF": "OMNI DIRECTIONAL RADIO RANGE",
	"ABN": "AIRPORT BEACON",
	"ABV": "ABOVE",
	"ACC": "AREA CONTROL CENTER",
	"ACCUM": "ACCUMULATE",
	"ACFT": "AIRCRAFT",
	"ACR": "AIR CARRIER",
	"ACT": "ACTIVE",
	"ADJ": "ADJACENT",
	"ADZD": "ADVISED",
	"AFD": "AIRPORT FACILITY DIRECTORY",
	"AGL": "ABOVE GROUND LEVEL",
	"ALS": "APPROACH LIGHTING SYSTEM",
	"ALT": "ALTITUDE",
	"ALTM": "ALTIMETER",
	"ALTN": "ALTERNATE",
	"ALTNLY": "ALTERNATELY",
	"ALSTG": "ALTIMETER SETTING",
	"AMDT": "AMENDMENT",
	"AMGR": "AIRPORT MANAGER",
	"AMOS": "AUTOMATIC METEOROLOGICAL OBSERVING SYSTEM",
	"AP": "AIRPORT",
	"APCH": "APPROACH",
	"APP": "APPROACH CONTROL",
	"ARFF": "AIRCRAFT RESCUE AND FIRE FIGHTING",
	"ARR": "ARRIVAL",
	"ASOS": "AUTOMATIC SURFACE OBSERVING SYSTEM",
	"ASPH": "ASPHALT",
	"ATC": "AIR TRAFFIC CONTROL",
	"ATCCC": "AIR TRAFFIC CONTROL COMMAND CENTER",
	"ATIS": "AUTOMATIC TERMINAL INFORMATION SERVICE",
	"AUTOB": "AUTOMATIC WEATHER REPORTING SYSTEM",
	"AUTH": "AUTHORITY",
	"AVBL": "AVAILABLE",
	"AWOS": "AUTOMATIC WEATHER OBSERVING SYSTEM",
	"AWY": "AIRWAY",
	"AZM": "AZIMUTH",
	"BC": "BACK COURSE",
	"BCN": "BEACON",
	"BERM": "SNOWBANKS CONTAINING EARTH",
	"BLW": "BELOW",
	"BND": "BOUND",
	"BRG": "BEARING",
	"BYD": "BEYOND",
	"CAAS": "CLASS A AIRSPACE",
	"CAT": "CATEGORY",
	"CBAS": "CLASS B AIRSPACE",
	"CBSA": "CLASS B SURFACE AREA",
	"CCAS": "CLASS C AIRSPACE",
	"CCLKWS": "COUNTERCLOCKWISE",
	"CCSA": "CLASS C SURFACE AREA",
	"CD": "CLEARANCE DELIVERY",
	"CDAS": "CLASS D AIRSPACE",
	"CDSA": "CLASS D SURFACE AREA",
	"CEAS": "CLASS E AIRSPACE",
	"CESA": "CLASS E SURFACE AREA",
	"CFR": "CODE OF FEDERAL REGULATIONS",
	"CGAS": "CLASS G AIRSPACE",
	"CHAN": "CHANNEL",
	"CHG": "CHANGE OR MODIFICATION",
	"CIG": "CEILING",
	"CK": "CHECK",
	"CL": "CENTRE LINE",
	"CLKWS": "CLOCKWISE",
	"CLR": "CLEAR",
	"CLSD": "CLOSED",
	"CMB": "CLIMB",
	"CMSND": "COMMISSIONED",
	"CNL": "CANCEL",
	"CNTRLN": "CENTERLINE",
	"COM": "COMMUNICATIONS",
	"CONC": "CONCRETE",
	"CPD": "COUPLED",
	"CRS": "COURSE",
	"CTC": "CONTACT",
	"CTL": "CONTROL",
	"DALGT": "DAYLIGHT",
	"DCMSN": "DECOMMISSION",
	"DCMSND": "DECOMMISSIONED",
	"DCT": "DIRECT",
	"DEGS": "DEGREES",
	"DEP": "DEPARTURE",
	"DH": "DECISION HEIGHT",
	"DISABLD": "DISABLED",
	"DIST": "DISTANCE",
	"DLA": "DELAY OR DELAYED",
	"DLT": "DELETE",
	"DLY": "DAILY",
	"DME": "DISTANCE MEASURING EQUIPMENT",
	"DMSTN": "DEMONSTRATION",
	"DP": "DEWPOINT TEMPERATURE",
	"DRFT": "SNOWBANKS CAUSED BY WIND",
	"DSPLCD": "DISPLACED",
	"E": "EAST",
	"EB": "EASTBOUND",
	"EFAS": "EN ROUTE FLIGHT ADVISORY SERVICE",
	"ELEV": "ELEVATION",
	"ENG": "ENGINE",
	"ENRT": "EN ROUTE",
	"ENTR": "ENTIRE",
	"EXC": "EXCEPT",
	"FAC": "FACILITY OR FACILITIES",
	"FAF": "FINAL APPROACH FIX",
	"FDC": "FLIGHT DATA CENTER",
	"FM": "FROM",
	"FNA": "FINAL APPROACH",
	"FPM": "FEET PER MINUTE",
	"FREQ": "FREQUENCY",
	"FRH": "FLY RUNWAY HEADING",
	"FRI": "FRIDAY",
	"FRZN": "FROZEN",
	"FSS": "FLIGHT SERVICE STATION",
	"FT": "FOOT",
	"GC": "GROUND CONTROL",
	"GCA": "GROUND CONTROL APPROACH",
	"GCO": "GROUND COMMUNICATIONS OUTLET",
	"GOVT": "GOVERNMENT",
	"GP": "GLIDE PATH",
	"GPS": "GLOBAL POSITIONING SYSTEM",
	"GRVL": "GRAVEL",
	"HAA": "HEIGHT ABOVE AIRPORT",
	"HAT": "HEIGHT ABOVE TOUCHDOWN",
	"HDG": "HEADING",
	"HEL": "HELICOPTER",
	"HELI": "HELIPORT",
	"HIRL": "HIGH INTENSITY RUNWAY LIGHTS",
	"HIWAS": "HAZARDOUS INFLIGHT WEATHER ADVISORY SERVICE",
	"HLDG": "HOLDING",
	"HOL": "HOLIDAY",
	"HP": "HOLDING PATTERN",
	"HR": "HOUR",
	"IAF": "INITIAL APPROACH FIX",
	"IAP": "INSTRUMENT APPROACH PROCEDURE",
	"INBD": "INBOUND",
	"ID": "IDENTIFICATION",
	"IDENT": "IDENTIFY",
	"IF": "INTERMEDIATE FIX",
	"ILS": "INSTRUMENT LANDING SYSTEM",
	"IM": "INNER MARKER",
	"IMC": "INSTRUMENT METEOROLOGICAL CONDITIONS",
	"IN": "INCH",
	"INDEFLY": "INDEFINITELY",
	"INFO": "INFORMATION",
	"INOP": "INOPERATIVE",
	"INSTR": "INSTRUMENT",
	"INT": "INTERSECTION",
	"INTL": "INTERNATIONAL",
	"INTST": "INTENSITY",
	"IR": "ICE ON RUNWAY",
	"KT": "KNOTS",
	"L": "LEFT",
	"LAA": "LOCAL AIRPORT ADVISORY",
	"LAT": "LATITUDE",
	"LAWRS": "LIMITED AVIATION WEATHER REPORTING STATION",
	"LB": "POUNDS",
	"LC": "LOCAL CONTROL",
	"LOC": "LOCAL",
	"LCTD": "LOCATED",
	"LDA": "LOCALIZER TYPE DIRECTIONAL AID",
	"LGT": "LIGHT OR LIGHTING",
	"LGTD": "LIGHTED",
	"LIRL": "LOW INTENSITY RUNWAY LIGHTS",
	"LLWAS": "LOW LEVEL WIND SHEAR ALERT SYSTEM",
	"LM": "COMPASS LOCATOR AT ILS MIDDLE MARKER",
	"LDG": "LANDING",
	"LLZ": "LOCALIZER",
	"LO": "COMPASS LOCATOR AT ILS OUTER MARKER",
	"LONG": "LONGITUDE",
	"LRN": "LONG RANGE NAVIGATION",
	"LSR": "LOOSE SNOW ON RUNWAY",
	"LT": "LEFT TURN",
	"MAG": "MAGNETIC",
	"MAINT": "MAINTENANCE",
	"MALS": "MEDIUM INTENSITY APPROACH LIGHT SYSTEM",
	"MALSF": "MEDIUM INTENSITY APPROACH LIGHT SYSTEM WITH SEQUENCED FLASHERS",
	"MALSR": "MEDIUM INTENSITY APPROACH LIGHT SYSTEM WITH RUNWAY ALIGNMENT INDICATOR LIGHTS",
	"MAPT": "MISSED APPROACH POINT",
	"MCA": "MINIMUM CROSSING ALTITUDE",
	"MDA": "MINIMUM DESCENT ALTITUDE",
	"MEA": "MINIMUM EN ROUTE ALTITUDE",
	"MED": "MEDIUM",
	"MIN": "MINUTES",
	"MIRL": "MEDIUM INTENSITY RUNWAY LIGHTS",
	"MKR": "MARKER",
	"MLS": "MICROWAVE LANDING SYSTEM",
	"MM": "MIDDLE MARKER",
	"MNM": "MINIMUM",
	"MNT": "MONITOR",
	"MOC": "MINIMUM OBSTRUCTION CLEARANCE",
	"MON": "MONDAY",
	"MRA": "MINIMUM RECEPTION ALTITUDE",
	"MSA": "MINIMUM SAFE ALTITUDE",
	"MSAW": "MINIMUM SAFE ALTITUDE WARNING",
	"MSG": "MESSAGE",
	"MSL": "MEAN SEA LEVEL",
	"MU": "MU METERS",
	"MUD": "MUD",
	"MUNI": "MUNICIPAL",
	"N": "NORTH",
	"NA": "NOT AUTHORIZED",
	"NAV": "NAVIGATION",
	"NB": "NORTHBOUND",
	"NDB": "NONDIRECTIONAL RADIO BEACON",
	"NE": "NORTHEAST",
	"NGT": "NIGHT",
	"NM": "NAUTICAL MILES",
	"NMR": "NAUTICAL MILE RADIUS",
	"NONSTD": "NONSTANDARD",
	"NOPT": "NO PROCEDURE TURN REQUIRED",
	"NR": "NUMBER",
	"NTAP": "NOTICE TO AIR MISSIONS PUBLICATION",
	"NW": "NORTHWEST",
	"OBSC": "OBSCURED",
	"OBST": "OBSTACLE",
	"OM": "OUTER MARKER",
	"OPR": "OPERATE",
	"OPS": "OPERATIONS",
	"ORIG": "ORIGINAL",
	"OTS": "OUT OF SERVICE",
	"OVR": "OVER",
	"PAEW": "PERSONNEL AND EQUIPMENT WORKING",
	"PAX": "PASSENGERS",
	"PAPI": "PRECISION APPROACH PATH INDICATOR",
	"PAR": "PRECISION APPROACH RADAR",
	"PARL": "PARALLEL",
	"PAT": "PATTERN",
	"PCL": "PILOT CONTROLLED LIGHTING",
	"PERM": "PERMANENT",
	"PJE": "PARACHUTE JUMPING EXERCISE",
	"PLA": "PRACTICE LOW APPROACH",
	"PLW": "PLOW",
	"PN": "PRIOR NOTICE REQUIRED",
	"PPR": "PRIOR PERMISSION REQUIRED",
	"PRN": "PSUEDO RANDOM NOISE",
	"PROC": "PROCEDURE",
	"PROP": "PROPELLER",
	"PSR": "PACKED SNOW ON RUNWAY",
	"PTCHY": "PATCHY",
	"PTN": "PROCEDURE TURN",
	"PVT": "PRIVATE",
	"RAIL": "RUNWAY ALIGNMENT INDICATOR LIGHTS",
	"RAMOS": "REMOTE AUTOMATIC METEOROLOGICAL OBSERVING SYSTEM",
	"RCAG": "REMOTE COMMUNICATION AIR GROUND FACILITY",
	"RCL": "RUNWAY CENTER LINE",
	"RCLL": "RUNWAY CENTER LINE LIGHTS",
	"RCO": "REMOTE COMMUNICATION OUTLET",
	"REC": "RECEIVE OR RECEIVER",
	"REIL": "RUNWAY END IDENTIFIER LIGHTS",
	"RELCTD": "RELOCATED",
	"REP": "REPORT",
	"RLLS": "RUNWAY LEAD IN LIGHT SYSTEM",
	"RMNDR": "REMAINDER",
	"RMK": "REMARKS",
	"RNAV": "AREA NAVIGATION",
	"RPLC": "REPLACE",
	"RQRD": "REQUIRED",
	"RRL": "RUNWAY REMAINING LIGHTS",
	"RSR": "EN ROUTE SURVEILLANCE RADAR",
	"RSVN": "RESERVATION",
	"RT": "RIGHT TURN",
	"RTE": "ROUTE",
	"RTR": "REMOTE TRANSMITTER RECEIVER",
	"RTS": "RETURN TO SERVICE",
	"RUF": "ROUGH",
	"RVR": "RUNWAY VISUAL RANGE",
	"RVRM": "RUNWAY VISUAL RANGE MIDPOINT",
	"RVRR": "RUNWAY VISUAL RANGE ROLLOUT",
	"RVRT": "RUNWAY VISUAL RANGE TOUCHDOWN",
	"RWY": "RUNWAY",
	"S": "SOUTH",
	"SA": "SAND",
	"SAT": "SATURDAY",
	"SAWRS": "SUPPLEMENTARY AVIATION WEATHER REPORTING STATION",
	"SB": "SOUTHBOUND",
	"SDF": "SIMPLIFIED DIRECTIONAL FACILITY",
	"SE": "SOUTHEAST",
	"SFL": "SEQUENCE FLASHING LIGHTS",
	"SIMUL": "SIMULTANEOUS",
	"SIR": "PACKED SNOW AND ICE ON RUNWAY",
	"SKED": "SCHEDULE",
	"SLR": "SLUSH ON RUNWAY",
	"SN": "SNOW",
	"SNBNK": "SNOWBANKS CAUSED BY PLOWING",
	"SNGL": "SINGLE",
	"SPD": "SPEED",
	"SSALF": "SIMPLIFIED SHORT APPROACH LIGHTING WITH SEQUENCE FLASHERS",
	"SSALR": "SIMPLIFIED SHORT APPROACH LIGHTING WITH RUNWAY ALIGNMENT INDICATOR LIGHTS",
	"SSALS": "SIMPLIFIED SHORT APPROACH LIGHTING SYSTEM",
	"SSR": "SECONDARY SURVEILLANCE RADAR",
	"STA": "STRAIGHT IN APPROACH",
	"STAR": "STANDARD TERMINAL ARRIVAL",
	"SUN": "SUNDAY",
	"SVC": "SERVICE",
	"SVN": "SATELLITE VEHICLE NUMBER",
	"SW": "SOUTHWEST",
	"SWEPT": "SWEPT",
	"T": "TEMPERATURE",
	"TACAN": "TACTICAL AIR NAVIGATIONAL AID",
	"TAR": "TERMINAL AREA SURVEILLANCE RADAR",
	"TDWR": "TERMINAL DOPPLER WEATHER RADAR",
	"TDZ": "TOUCHDOWN ZONE",
	"TEMPO": "TEMPORARY OR TEMPORARILY",
	"TFC": "TRAFFIC",
	"TFR": "TEMPORARY FLIGHT RESTRICTION",
	"TGL": "TOUCH AND GO LANDINGS",
	"THN": "THIN",
	"THR": "THRESHOLD",
	"THRU": "THROUGH",
	"THU": "THURSDAY",
	"TIL": "UNTIL",
	"TKOF": "TAKEOFF",
	"TM": "TRAFFIC MANAGEMENT",
	"TMPA": "TRAFFIC MANAGEMENT PROGRAM ALERT",
	"TRML": "TERMINAL",
	"TRNG": "TRAINING",
	"TRSN": "TRANSITION",
	"TSNT": "TRANSIENT",
	"TUE": "TUESDAY",
	"TWR": "AIRPORT CONTROL TOWER",
	"TWY": "TAXIWAY",
	"UAV": "UNMANNED AIR VEHICLES",
	"UFN": "UNTIL FURTHER NOTICE",
	"UNAVBL": "UNAVAILABLE",
	"UNLGTD": "UNLIGHTED",
	"UNMKD": "UNMARKED",
	"UNMNT": "UNMONITORED",
	"UNREL": "UNRELIABLE",
	"UNUSBL": "UNUSABLE",
	"VASI": "VISUAL APPROACH SLOPE INDICATOR SYSTEM",
	"VDP": "VISUAL DESCENT POINT",
	"VIA": "BY WAY OF",
	"VICE": "VERSUS",
	"VIS": "VISIBILITY",
	"VMC": "VISUAL METEOROLOGICAL CONDITIONS",
	"VOL": "VOLUME",
	"VORTAC": "VOR AND TACAN",
	"W": "WEST",
	"WB": "WESTBOUND",
	"WED": "WEDNESDAY",
	"WEF": "WITH EFFECT FROM OR EFFECTIVE FROM",
	"WI": "WITHIN",
	"WIE": "WITH IMMEDIATE EFFECT OR EFFECTIVE IMMEDIATELY",
	"WIP": "WORK IN PROGRESS",
	"WKDAYS": "MONDAY THROUGH FRIDAY",
	"WKEND": "SATURDAY AND SUNDAY",
	"WND": "WIND",
	"WPT": "WAYPOINT",
	"WSR": "WET SNOW ON RUNWAY",
	"WTR": "WATER ON RUNWAY",
	"WX": "WEATHER",
}
