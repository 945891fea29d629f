package countrycode

// shortNames maps ISO 3166-1 short names to alpha-2 codes. Alpha-3 codes are
// derived from these through x/text region data.
var shortNames = map[string]string{
	"Afghanistan":                            "AF",
	"Åland Islands":                          "AX",
	"Albania":                                "AL",
	"Algeria":                                "DZ",
	"American Samoa":                         "AS",
	"Andorra":                                "AD",
	"Angola":                                 "AO",
	"Anguilla":                               "AI",
	"Antarctica":                             "AQ",
	"Antigua and Barbuda":                    "AG",
	"Argentina":                              "AR",
	"Armenia":                                "AM",
	"Aruba":                                  "AW",
	"Australia":                              "AU",
	"Austria":                                "AT",
	"Azerbaijan":                             "AZ",
	"Bahamas":                                "BS",
	"Bahrain":                                "BH",
	"Bangladesh":                             "BD",
	"Barbados":                               "BB",
	"Belarus":                                "BY",
	"Belgium":                                "BE",
	"Belize":                                 "BZ",
	"Benin":                                  "BJ",
	"Bermuda":                                "BM",
	"Bhutan":                                 "BT",
	"Bolivia, Plurinational State of":        "BO",
	"Bosnia and Herzegovina":                 "BA",
	"Botswana":                               "BW",
	"Brazil":                                 "BR",
	"Brunei Darussalam":                      "BN",
	"Bulgaria":                               "BG",
	"Burkina Faso":                           "BF",
	"Burundi":                                "BI",
	"Cabo Verde":                             "CV",
	"Cambodia":                               "KH",
	"Cameroon":                               "CM",
	"Canada":                                 "CA",
	"Cayman Islands":                         "KY",
	"Central African Republic":               "CF",
	"Chad":                                   "TD",
	"Chile":                                  "CL",
	"China":                                  "CN",
	"Colombia":                               "CO",
	"Comoros":                                "KM",
	"Congo":                                  "CG",
	"Congo, The Democratic Republic of the":  "CD",
	"Costa Rica":                             "CR",
	"Côte d'Ivoire":                          "CI",
	"Croatia":                                "HR",
	"Cuba":                                   "CU",
	"Curaçao":                                "CW",
	"Cyprus":                                 "CY",
	"Czechia":                                "CZ",
	"Denmark":                                "DK",
	"Djibouti":                               "DJ",
	"Dominica":                               "DM",
	"Dominican Republic":                     "DO",
	"Ecuador":                                "EC",
	"Egypt":                                  "EG",
	"El Salvador":                            "SV",
	"Equatorial Guinea":                      "GQ",
	"Eritrea":                                "ER",
	"Estonia":                                "EE",
	"Eswatini":                               "SZ",
	"Ethiopia":                               "ET",
	"Faroe Islands":                          "FO",
	"Fiji":                                   "FJ",
	"Finland":                                "FI",
	"France":                                 "FR",
	"French Polynesia":                       "PF",
	"Gabon":                                  "GA",
	"Gambia":                                 "GM",
	"Georgia":                                "GE",
	"Germany":                                "DE",
	"Ghana":                                  "GH",
	"Gibraltar":                              "GI",
	"Greece":                                 "GR",
	"Greenland":                              "GL",
	"Grenada":                                "GD",
	"Guam":                                   "GU",
	"Guatemala":                              "GT",
	"Guinea":                                 "GN",
	"Guinea-Bissau":                          "GW",
	"Guyana":                                 "GY",
	"Haiti":                                  "HT",
	"Honduras":                               "HN",
	"Hong Kong":                              "HK",
	"Hungary":                                "HU",
	"Iceland":                                "IS",
	"India":                                  "IN",
	"Indonesia":                              "ID",
	"Iran, Islamic Republic of":              "IR",
	"Iraq":                                   "IQ",
	"Ireland":                                "IE",
	"Israel":                                 "IL",
	"Italy":                                  "IT",
	"Jamaica":                                "JM",
	"Japan":                                  "JP",
	"Jordan":                                 "JO",
	"Kazakhstan":                             "KZ",
	"Kenya":                                  "KE",
	"Kiribati":                               "KI",
	"Korea, Democratic People's Republic of": "KP",
	"Korea, Republic of":                     "KR",
	"Kuwait":                                 "KW",
	"Kyrgyzstan":                             "KG",
	"Lao People's Democratic Republic":       "LA",
	"Latvia":                                 "LV",
	"Lebanon":                                "LB",
	"Lesotho":                                "LS",
	"Liberia":                                "LR",
	"Libya":                                  "LY",
	"Liechtenstein":                          "LI",
	"Lithuania":                              "LT",
	"Luxembourg":                             "LU",
	"Macao":                                  "MO",
	"Madagascar":                             "MG",
	"Malawi":                                 "MW",
	"Malaysia":                               "MY",
	"Maldives":                               "MV",
	"Mali":                                   "ML",
	"Malta":                                  "MT",
	"Mauritania":                             "MR",
	"Mauritius":                              "MU",
	"Mexico":                                 "MX",
	"Moldova, Republic of":                   "MD",
	"Monaco":                                 "MC",
	"Mongolia":                               "MN",
	"Montenegro":                             "ME",
	"Montserrat":                             "MS",
	"Morocco":                                "MA",
	"Mozambique":                             "MZ",
	"Myanmar":                                "MM",
	"Namibia":                                "NA",
	"Nepal":                                  "NP",
	"Netherlands":                            "NL",
	"New Caledonia":                          "NC",
	"New Zealand":                            "NZ",
	"Nicaragua":                              "NI",
	"Niger":                                  "NE",
	"Nigeria":                                "NG",
	"North Macedonia":                        "MK",
	"Norway":                                 "NO",
	"Oman":                                   "OM",
	"Pakistan":                               "PK",
	"Palestine, State of":                    "PS",
	"Panama":                                 "PA",
	"Papua New Guinea":                       "PG",
	"Paraguay":                               "PY",
	"Peru":                                   "PE",
	"Philippines":                            "PH",
	"Poland":                                 "PL",
	"Portugal":                               "PT",
	"Puerto Rico":                            "PR",
	"Qatar":                                  "QA",
	"Romania":                                "RO",
	"Russian Federation":                     "RU",
	"Rwanda":                                 "RW",
	"Saint Kitts and Nevis":                  "KN",
	"Saint Lucia":                            "LC",
	"Saint Vincent and the Grenadines":       "VC",
	"Samoa":                                  "WS",
	"San Marino":                             "SM",
	"Sao Tome and Principe":                  "ST",
	"Saudi Arabia":                           "SA",
	"Senegal":                                "SN",
	"Serbia":                                 "RS",
	"Seychelles":                             "SC",
	"Sierra Leone":                           "SL",
	"Singapore":                              "SG",
	"Slovakia":                               "SK",
	"Slovenia":                               "SI",
	"Solomon Islands":                        "SB",
	"Somalia":                                "SO",
	"South Africa":                           "ZA",
	"South Sudan":                            "SS",
	"Spain":                                  "ES",
	"Sri Lanka":                              "LK",
	"Sudan":                                  "SD",
	"Suriname":                               "SR",
	"Sweden":                                 "SE",
	"Switzerland":                            "CH",
	"Syrian Arab Republic":                   "SY",
	"Taiwan, Province of China":              "TW",
	"Tajikistan":                             "TJ",
	"Tanzania, United Republic of":           "TZ",
	"Thailand":                               "TH",
	"Timor-Leste":                            "TL",
	"Togo":                                   "TG",
	"Tonga":                                  "TO",
	"Trinidad and Tobago":                    "TT",
	"Tunisia":                                "TN",
	"Turkmenistan":                           "TM",
	"Türkiye":                                "TR",
	"Uganda":                                 "UG",
	"Ukraine":                                "UA",
	"United Arab Emirates":                   "AE",
	"United Kingdom":                         "GB",
	"United States":                          "US",
	"Uruguay":                                "UY",
	"Uzbekistan":                             "UZ",
	"Vanuatu":                                "VU",
	"Venezuela, Bolivarian Republic of":      "VE",
	"Viet Nam":                               "VN",
	"Yemen":                                  "YE",
	"Zambia":                                 "ZM",
	"Zimbabwe":                               "ZW",
}

// commonNames are the everyday names football tables use where they differ
// from the ISO short name.
var commonNames = map[string]string{
	"Bolivia":                  "BO",
	"Cape Verde":               "CV",
	"Czech Republic":           "CZ",
	"DR Congo":                 "CD",
	"Iran":                     "IR",
	"Ivory Coast":              "CI",
	"Laos":                     "LA",
	"Moldova":                  "MD",
	"North Korea":              "KP",
	"Republic of Ireland":      "IE",
	"Russia":                   "RU",
	"South Korea":              "KR",
	"Syria":                    "SY",
	"Taiwan":                   "TW",
	"Tanzania":                 "TZ",
	"Turkey":                   "TR",
	"USA":                      "US",
	"United States of America": "US",
	"Venezuela":                "VE",
	"Vietnam":                  "VN",
}
