// Q code subject identifiers.
//
// See https://www.faa.gov/air_traffic/publications/atpubs/notam_html/appendix_b.html
package lookup

var subjects = map[string]string{
	"AA": "minimum_altitude",
	"AC": "class_bcde_surface_area",
	"AD": "air_defense_identification_zone",
	"AE": "control_area",
	"AF": "flight_information_region",
	"AH": "upper_control_area",
	"AL": "minimum_usable_flight_level",
	"AN": "area_navigation_route",
	"AO": "oceanic_control_area",
	"AP": "reporting_point",
	"AR": "ats_route",
	"AT": "terminal_control_area",
	"AU": "upper_flight_information_region",
	"AV": "upper_advisory_area",
	"AX": "significant_point",
	"AZ": "aerodrome_traffic_zone",
	"CA": "air_ground_facility",
	"CB": "automatic_dependent_surveillance_broadcast",
	"CC": "automatic_dependent_surveillance_contract",
	"CD": "controller_pilot_data_link",
	"CE": "en_route_surveillance_radar",
	"CG": "ground_controlled_approach_system",
	"CL": "selective_calling_system",
	"CM": "surface_movement_radar",
	"CP": "precision_approach_radar",
	"CR": "surveillance_radar_element_of_par",
	"CS": "secondary_surveillance_radar",
	"CT": "terminal_area_surveillance_radar",
	"FA": "aerodrome",
	"FB": "friction_measuring_device",
	"FC": "ceiling_measurement_equipment",
	"FD": "docking_system",
	"FE": "oxygen",
	"FF": "fire_fighting_and_rescue",
	"FG": "ground_movement_control",
	"FH": "helicopter_alighting_area",
	"FI": "aircraft_de_icing",
	"FJ": "oils",
	"FL": "landing_direction_indicator",
	"FM": "meteorological_service",
	"FO": "fog_dispersal_system",
	"FP": "heliport",
	"FS": "snow_removal_equipment",
	"FT": "transmissometer",
	"FU": "fuel_availability",
	"FW": "wind_direction_indicator",
	"FZ": "customs",
	"GA": "gnss_airfield_specific_operations",
	"GW": "gnss_area_wide_operations",
	"IC": "instrument_landing_system",
	"ID": "dme_associated_with_ils",
	"IG": "glide_path",
	"II": "inner_marker",
	"IL": "localizer",
	"IM": "middle_marker",
	"IN": "localizer_without_ils",
	"IO": "outer_marker",
	"IS": "ils_category_1",
	"IT": "ils_category_2",
	"IU": "ils_category_3",
	"IW": "microwave_landing_system",
	"IX": "locator_outer",
	"IY": "locator_middle",
	"KK": "checklist",
	"LA": "approach_lighting_system",
	"LB": "aerodrome_beacon",
	"LC": "runway_centre_line_lights",
	"LD": "landing_direction_indicator_lights",
	"LE": "runway_edge_lights",
	"LF": "sequenced_flashing_lights",
	"LG": "pilot_controlled_lighting",
	"LH": "high_intensity_runway_lights",
	"LI": "runway_end_identifier_lights",
	"LJ": "runway_alignment_indicator_lights",
	"LK": "category_2_components_of_als",
	"LL": "low_intensity_runway_lights",
	"LM": "medium_intensity_runway_lights",
	"LP": "precision_approach_path_indicator",
	"LR": "all_landing_area_lighting_facilities",
	"LS": "stopway_lights",
	"LT": "threshold_lights",
	"LU": "helicopter_approach_path_indicator",
	"LV": "visual_approach_slope_indicator_system",
	"LW": "heliport_lighting",
	"LX": "taxiway_centre_line_lights",
	"LY": "taxiway_edge_lights",
	"LZ": "runway_touchdown_zone_lights",
	"MA": "movement_area",
	"MB": "bearing_strength",
	"MC": "clearway",
	"MD": "declared_distances",
	"MG": "taxiing_guidance_system",
	"MH": "runway_arresting_gear",
	"MK": "parking_area",
	"MM": "daylight_markings",
	"MN": "apron",
	"MO": "stopbar",
	"MP": "aircraft_stands",
	"MR": "runway",
	"MS": "stopway",
	"MT": "threshold",
	"MU": "runway_turning_bay",
	"MW": "strip_shoulder",
	"MX": "taxiway",
	"MY": "rapid_exit_taxiway",
	"NA": "all_radio_navigation_facilities",
	"NB": "nondirectional_radio_beacon",
	"NC": "decca",
	"ND": "dme",
	"NF": "fan_marker",
	"NL": "locator",
	"NM": "vor_dme",
	"NN": "tacan",
	"NO": "omega",
	"NT": "vortac",
	"NV": "vor",
	"OA": "aeronautical_information_service",
	"OB": "obstacle",
	"OE": "aircraft_entry_requirements",
	"OL": "obstacle_lights",
	"OR": "rescue_coordination_centre",
	"PA": "standard_instrument_arrival",
	"PB": "standard_vfr_arrival",
	"PC": "contingency_procedures",
	"PD": "standard_instrument_departure",
	"PE": "standard_vfr_departure",
	"PF": "flow_control_procedure",
	"PH": "holding_procedure",
	"PI": "instrument_approach_procedure",
	"PK": "vfr_approach_procedure",
	"PL": "flight_plan_processing",
	"PM": "aerodrome_operating_minima",
	"PN": "noise_operating_restriction",
	"PO": "obstacle_clearance_altitude",
	"PR": "radio_failure_procedure",
	"PT": "transition_altitude_or_level",
	"PU": "missed_approach_procedure",
	"PX": "minimum_holding_altitude",
	"PZ": "adiz_procedure",
	"RA": "airspace_reservation",
	"RD": "danger_area",
	"RM": "military_operating_area",
	"RO": "overflying",
	"RP": "prohibited_area",
	"RR": "restricted_area",
	"RT": "temporary_restricted_area",
	"SA": "automatic_terminal_information_service",
	"SB": "ats_reporting_office",
	"SC": "area_control_centre",
	"SE": "flight_information_service",
	"SF": "aerodrome_flight_information_service",
	"SL": "flow_control_centre",
	"SO": "oceanic_area_control_centre",
	"SP": "approach_control_service",
	"SS": "flight_service_station",
	"ST": "aerodrome_control_tower",
	"SU": "upper_area_control_centre",
	"SV": "volmet_broadcast",
	"SY": "upper_advisory_service",
	"WA": "air_display",
	"WB": "aerobatics",
	"WC": "captive_balloon_or_kite",
	"WD": "demolition_of_explosives",
	"WE": "exercises",
	"WF": "air_refueling",
	"WG": "glider_flying",
	"WH": "blasting",
	"WJ": "banner_towing",
	"WL": "ascent_of_free_balloon",
	"WM": "missile_gun_firing",
	"WP": "parachute_paragliding_or_hang_gliding",
	"WR": "radioactive_or_toxic_materials",
	"WS": "blowing_gas",
	"WT": "mass_movement_of_aircraft",
	"WU": "unmanned_aircraft",
	"WV": "formation_flight",
	"WW": "volcanic_activity",
	"WY": "aerial_survey",
	"WZ": "model_flying",
	"XX": "other",
}
