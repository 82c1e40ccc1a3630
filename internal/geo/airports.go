package geo

import "strings"

// airports maps IATA codes to the reference point of the airport. The table is
// curated by hand and never changes at runtime.
var airports = map[string]Coordinate{
	// North America - United States
	"ATL": {Lat: 33.6407, Lng: -84.4277},  // Atlanta
	"LAX": {Lat: 33.9416, Lng: -118.4085}, // Los Angeles
	"ORD": {Lat: 41.9742, Lng: -87.9073},  // Chicago O'Hare
	"DFW": {Lat: 32.8998, Lng: -97.0403},  // Dallas/Fort Worth
	"DEN": {Lat: 39.8561, Lng: -104.6737}, // Denver
	"JFK": {Lat: 40.6413, Lng: -73.7781},  // New York JFK
	"SFO": {Lat: 37.6213, Lng: -122.3790}, // San Francisco
	"SEA": {Lat: 47.4502, Lng: -122.3088}, // Seattle
	"LAS": {Lat: 36.0840, Lng: -115.1537}, // Las Vegas
	"MCO": {Lat: 28.4312, Lng: -81.3081},  // Orlando
	"EWR": {Lat: 40.6895, Lng: -74.1745},  // Newark
	"CLT": {Lat: 35.2140, Lng: -80.9431},  // Charlotte
	"PHX": {Lat: 33.4373, Lng: -112.0078}, // Phoenix
	"IAH": {Lat: 29.9902, Lng: -95.3368},  // Houston
	"MIA": {Lat: 25.7959, Lng: -80.2870},  // Miami
	"BOS": {Lat: 42.3656, Lng: -71.0096},  // Boston
	"MSP": {Lat: 44.8848, Lng: -93.2223},  // Minneapolis
	"DTW": {Lat: 42.2125, Lng: -83.3534},  // Detroit
	"PHL": {Lat: 39.8729, Lng: -75.2437},  // Philadelphia
	"LGA": {Lat: 40.7769, Lng: -73.8740},  // New York LaGuardia
	"FLL": {Lat: 26.0742, Lng: -80.1506},  // Fort Lauderdale
	"BWI": {Lat: 39.1773, Lng: -76.6684},  // Baltimore
	"DCA": {Lat: 38.8512, Lng: -77.0402},  // Washington Reagan
	"IAD": {Lat: 38.9531, Lng: -77.4565},  // Washington Dulles
	"SLC": {Lat: 40.7899, Lng: -111.9791}, // Salt Lake City
	"SAN": {Lat: 32.7338, Lng: -117.1933}, // San Diego
	"TPA": {Lat: 27.9775, Lng: -82.5350},  // Tampa
	"PDX": {Lat: 45.5898, Lng: -122.5951}, // Portland
	"STL": {Lat: 38.7499, Lng: -90.3699},  // St. Louis
	"HNL": {Lat: 21.3187, Lng: -157.9225}, // Honolulu
	"AUS": {Lat: 30.1945, Lng: -97.67},    // Austin
	"BNA": {Lat: 36.1263, Lng: -86.6774},  // Nashville
	"OAK": {Lat: 37.7213, Lng: -122.2208}, // Oakland
	"SJC": {Lat: 37.3639, Lng: -121.9289}, // San Jose
	"DAL": {Lat: 32.8472, Lng: -96.8517},  // Dallas Love Field
	"HOU": {Lat: 29.6454, Lng: -95.2789},  // Houston Hobby
	"MDW": {Lat: 41.7868, Lng: -87.7522},  // Chicago Midway
	"RDU": {Lat: 35.8776, Lng: -78.7875},  // Raleigh-Durham
	"SMF": {Lat: 38.6954, Lng: -121.5908}, // Sacramento
	"SNA": {Lat: 33.6762, Lng: -117.8681}, // Orange County
	"MCI": {Lat: 39.2976, Lng: -94.7139},  // Kansas City
	"SAT": {Lat: 29.5337, Lng: -98.4698},  // San Antonio
	"PIT": {Lat: 40.4915, Lng: -80.2329},  // Pittsburgh
	"CVG": {Lat: 39.0533, Lng: -84.6630},  // Cincinnati
	"IND": {Lat: 39.7173, Lng: -86.2944},  // Indianapolis
	"CLE": {Lat: 41.4117, Lng: -81.8498},  // Cleveland
	"CMH": {Lat: 39.9980, Lng: -82.8919},  // Columbus
	"MKE": {Lat: 42.9472, Lng: -87.8966},  // Milwaukee
	"PBI": {Lat: 26.6832, Lng: -80.0956},  // West Palm Beach
	"RSW": {Lat: 26.5364, Lng: -81.7552},  // Fort Myers
	"BDL": {Lat: 41.9389, Lng: -72.6832},  // Hartford
	"MEM": {Lat: 35.0424, Lng: -89.9767},  // Memphis
	"ABQ": {Lat: 35.0402, Lng: -106.6090}, // Albuquerque
	"BUF": {Lat: 42.9405, Lng: -78.7322},  // Buffalo
	"ONT": {Lat: 34.0560, Lng: -117.6012}, // Ontario CA
	"ANC": {Lat: 61.1743, Lng: -149.9962}, // Anchorage
	"BOI": {Lat: 43.5644, Lng: -116.2228}, // Boise

	// Canada
	"YYZ": {Lat: 43.6777, Lng: -79.6248},  // Toronto
	"YVR": {Lat: 49.1967, Lng: -123.1815}, // Vancouver
	"YUL": {Lat: 45.4657, Lng: -73.7455},  // Montreal
	"YYC": {Lat: 51.1225, Lng: -114.0108}, // Calgary
	"YEG": {Lat: 53.3097, Lng: -113.5801}, // Edmonton
	"YOW": {Lat: 45.3192, Lng: -75.6692},  // Ottawa
	"YWG": {Lat: 49.9100, Lng: -97.2399},  // Winnipeg
	"YHZ": {Lat: 44.8808, Lng: -63.5086},  // Halifax

	// Mexico & Central America
	"MEX": {Lat: 19.4363, Lng: -99.0721},  // Mexico City
	"CUN": {Lat: 21.0365, Lng: -86.8771},  // Cancun
	"GDL": {Lat: 20.5218, Lng: -103.3111}, // Guadalajara
	"MTY": {Lat: 25.7785, Lng: -100.1072}, // Monterrey
	"PVR": {Lat: 20.6801, Lng: -105.2544}, // Puerto Vallarta
	"SJD": {Lat: 23.1518, Lng: -109.7211}, // Los Cabos
	"PTY": {Lat: 9.0714, Lng: -79.3834},   // Panama City
	"SJO": {Lat: 9.9939, Lng: -84.2088},   // San Jose CR

	// South America
	"GRU": {Lat: -23.4356, Lng: -46.4731}, // São Paulo
	"GIG": {Lat: -22.8099, Lng: -43.2505}, // Rio de Janeiro
	"EZE": {Lat: -34.8222, Lng: -58.5358}, // Buenos Aires
	"BOG": {Lat: 4.7016, Lng: -74.1469},   // Bogotá
	"LIM": {Lat: -12.0219, Lng: -77.1143}, // Lima
	"SCL": {Lat: -33.3930, Lng: -70.7858}, // Santiago
	"UIO": {Lat: -0.1292, Lng: -78.3575},  // Quito

	// Europe - UK & Ireland
	"LHR": {Lat: 51.4700, Lng: -0.4543}, // London Heathrow
	"LGW": {Lat: 51.1537, Lng: -0.1821}, // London Gatwick
	"LCY": {Lat: 51.5048, Lng: 0.0495},  // London City
	"STN": {Lat: 51.8850, Lng: 0.2389},  // London Stansted
	"MAN": {Lat: 53.3537, Lng: -2.2750}, // Manchester
	"EDI": {Lat: 55.9500, Lng: -3.3725}, // Edinburgh
	"DUB": {Lat: 53.4213, Lng: -6.2701}, // Dublin
	"GLA": {Lat: 55.8642, Lng: -4.4331}, // Glasgow

	// Europe - Western
	"CDG": {Lat: 49.0097, Lng: 2.5479},  // Paris CDG
	"ORY": {Lat: 48.7233, Lng: 2.3794},  // Paris Orly
	"AMS": {Lat: 52.3105, Lng: 4.7683},  // Amsterdam
	"FRA": {Lat: 50.0379, Lng: 8.5622},  // Frankfurt
	"MUC": {Lat: 48.3537, Lng: 11.7750}, // Munich
	"BCN": {Lat: 41.2974, Lng: 2.0833},  // Barcelona
	"MAD": {Lat: 40.4983, Lng: -3.5676}, // Madrid
	"FCO": {Lat: 41.8003, Lng: 12.2389}, // Rome
	"MXP": {Lat: 45.6306, Lng: 8.7281},  // Milan Malpensa
	"VCE": {Lat: 45.5053, Lng: 12.3519}, // Venice
	"LIS": {Lat: 38.7742, Lng: -9.1342}, // Lisbon
	"BRU": {Lat: 50.9010, Lng: 4.4856},  // Brussels
	"ZRH": {Lat: 47.4582, Lng: 8.5556},  // Zurich
	"GVA": {Lat: 46.2381, Lng: 6.1090},  // Geneva
	"VIE": {Lat: 48.1103, Lng: 16.5697}, // Vienna
	"CPH": {Lat: 55.6180, Lng: 12.6508}, // Copenhagen
	"OSL": {Lat: 60.1939, Lng: 11.1004}, // Oslo
	"ARN": {Lat: 59.6519, Lng: 17.9186}, // Stockholm
	"HEL": {Lat: 60.3172, Lng: 24.9633}, // Helsinki

	// Europe - Eastern & Southern
	"ATH": {Lat: 37.9364, Lng: 23.9445}, // Athens
	"IST": {Lat: 41.2753, Lng: 28.7519}, // Istanbul
	"WAW": {Lat: 52.1657, Lng: 20.9671}, // Warsaw
	"PRG": {Lat: 50.1008, Lng: 14.2600}, // Prague
	"BUD": {Lat: 47.4360, Lng: 19.2556}, // Budapest
	"OTP": {Lat: 44.5711, Lng: 26.0850}, // Bucharest
	"SOF": {Lat: 42.6952, Lng: 23.4114}, // Sofia

	// Middle East
	"DXB": {Lat: 25.2532, Lng: 55.3657}, // Dubai
	"DOH": {Lat: 25.2731, Lng: 51.6081}, // Doha
	"AUH": {Lat: 24.4330, Lng: 54.6511}, // Abu Dhabi
	"CAI": {Lat: 30.1219, Lng: 31.4056}, // Cairo
	"TLV": {Lat: 32.0114, Lng: 34.8867}, // Tel Aviv
	"AMM": {Lat: 31.7226, Lng: 35.9932}, // Amman
	"BEY": {Lat: 33.8211, Lng: 35.4884}, // Beirut
	"JED": {Lat: 21.6796, Lng: 39.1564}, // Jeddah
	"RUH": {Lat: 24.9578, Lng: 46.6988}, // Riyadh

	// Asia - East
	"HND": {Lat: 35.5494, Lng: 139.7798}, // Tokyo Haneda
	"NRT": {Lat: 35.7720, Lng: 140.3929}, // Tokyo Narita
	"PEK": {Lat: 40.0799, Lng: 116.6031}, // Beijing
	"PVG": {Lat: 31.1443, Lng: 121.8083}, // Shanghai Pudong
	"ICN": {Lat: 37.4602, Lng: 126.4407}, // Seoul Incheon
	"HKG": {Lat: 22.3080, Lng: 113.9185}, // Hong Kong
	"TPE": {Lat: 25.0797, Lng: 121.2342}, // Taipei
	"MNL": {Lat: 14.5086, Lng: 121.0198}, // Manila
	"SIN": {Lat: 1.3644, Lng: 103.9915},  // Singapore
	"KUL": {Lat: 2.7456, Lng: 101.7099},  // Kuala Lumpur
	"BKK": {Lat: 13.6900, Lng: 100.7501}, // Bangkok
	"CGK": {Lat: -6.1256, Lng: 106.6559}, // Jakarta

	// Asia - South & Central
	"DEL": {Lat: 28.5562, Lng: 77.1000}, // Delhi
	"BOM": {Lat: 19.0896, Lng: 72.8656}, // Mumbai
	"BLR": {Lat: 13.1979, Lng: 77.7063}, // Bangalore
	"HYD": {Lat: 17.2403, Lng: 78.4294}, // Hyderabad
	"MAA": {Lat: 12.9941, Lng: 80.1709}, // Chennai
	"CCU": {Lat: 22.6547, Lng: 88.4467}, // Kolkata
	"CMB": {Lat: 7.1808, Lng: 79.8841},  // Colombo
	"KHI": {Lat: 24.9065, Lng: 67.1608}, // Karachi
	"ISB": {Lat: 33.6169, Lng: 73.0997}, // Islamabad

	// Oceania
	"SYD": {Lat: -33.9399, Lng: 151.1753}, // Sydney
	"MEL": {Lat: -37.6733, Lng: 144.8433}, // Melbourne
	"BNE": {Lat: -27.3942, Lng: 153.1218}, // Brisbane
	"PER": {Lat: -31.9403, Lng: 115.9672}, // Perth
	"AKL": {Lat: -37.0082, Lng: 174.7850}, // Auckland
	"CHC": {Lat: -43.4894, Lng: 172.5319}, // Christchurch
	"WLG": {Lat: -41.3272, Lng: 174.8049}, // Wellington

	// Africa
	"JNB": {Lat: -26.1392, Lng: 28.2460}, // Johannesburg
	"CPT": {Lat: -33.9715, Lng: 18.6021}, // Cape Town
	"ADD": {Lat: 8.9779, Lng: 38.7991},   // Addis Ababa
	"NBO": {Lat: -1.3192, Lng: 36.9278},  // Nairobi
	"LOS": {Lat: 6.5774, Lng: 3.3213},    // Lagos
	"ACC": {Lat: 5.6052, Lng: -0.1719},   // Accra
	"ALG": {Lat: 36.6910, Lng: 3.2154},   // Algiers
	"TUN": {Lat: 36.8510, Lng: 10.2272},  // Tunis
	"CMN": {Lat: 33.3676, Lng: -7.5898},  // Casablanca
}

// LookupAirport returns the coordinate of the airport with the given IATA
// code. The code is matched case-insensitively; unknown codes report false.
func LookupAirport(code string) (Coordinate, bool) {
	c, ok := airports[strings.ToUpper(strings.TrimSpace(code))]
	return c, ok
}

// AirportCount returns the number of airports in the table.
func AirportCount() int {
	return len(airports)
}
