// Q code condition identifiers.
//
// See https://www.faa.gov/air_traffic/publications/atpubs/notam_html/appendix_b.html
package lookup

var conditions = map[string]string{
	"AC": "withdrawn_for_maintenance",
	"AD": "available_for_daylight_operation",
	"AF": "flight_checked_and_found_reliable",
	"AG": "operating_but_ground_checked_only",
	"AH": "hours_of_service",
	"AK": "resumed_normal_operations",
	"AL": "operative_subject_to_previously_published_conditions",
	"AM": "military_operations_only",
	"AN": "available_for_night_operation",
	"AO": "operational",
	"AP": "available_with_prior_permission",
	"AR": "available_on_request",
	"AS": "unserviceable",
	"AU": "not_available",
	"AW": "completely_withdrawn",
	"AX": "previously_announced_shutdown_canceled",
	"CA": "activated",
	"CC": "completed",
	"CD": "deactivated",
	"CE": "erected",
	"CF": "operating_frequency_changed",
	"CG": "downgraded",
	"CH": "changed",
	"CI": "identification_changed",
	"CL": "realigned",
	"CM": "displaced",
	"CN": "canceled",
	"CO": "operating",
	"CP": "operating_on_reduced_power",
	"CR": "temporarily_replaced",
	"CS": "installed",
	"CT": "on_test",
	"HA": "braking_action",
	"HB": "friction_coefficient",
	"HC": "covered_by_compacted_snow",
	"HD": "covered_by_dry_snow",
	"HE": "covered_by_water",
	"HF": "free_of_snow_and_ice",
	"HG": "grass_cutting_in_progress",
	"HH": "hazard",
	"HI": "covered_by_ice",
	"HJ": "launch_planned",
	"HK": "bird_migration_in_progress",
	"HL": "snow_clearance_completed",
	"HM": "marked",
	"HN": "covered_by_wet_snow",
	"HO": "obscured_by_snow",
	"HP": "snow_clearance_in_progress",
	"HQ": "operation_canceled",
	"HR": "standing_water",
	"HS": "sanding_in_progress",
	"HT": "approach_according_to_signal_area_only",
	"HU": "launch_in_progress",
	"HV": "work_completed",
	"HW": "work_in_progress",
	"HX": "concentration_of_birds",
	"HY": "snow_banks_exist",
	"HZ": "covered_by_frozen_ruts",
	"KK": "checklist",
	"LA": "operating_on_auxiliary_power_supply",
	"LB": "reserved_for_aircraft_based_therein",
	"LC": "closed",
	"LD": "unsafe",
	"LE": "operating_without_auxiliary_power_supply",
	"LF": "interference",
	"LG": "operating_without_identification",
	"LH": "unserviceable_for_heavier_aircraft",
	"LI": "closed_to_ifr_operations",
	"LK": "operating_as_fixed_light",
	"LL": "usable_for_smaller_only",
	"LN": "closed_to_night_operations",
	"LP": "prohibited",
	"LR": "restricted_to_runways_and_taxiways",
	"LS": "subject_to_interruption",
	"LT": "limited",
	"LV": "closed_to_vfr_operations",
	"LW": "will_take_place",
	"LX": "operating_but_caution_advised",
	"TT": "trigger",
	"XX": "other",
}
