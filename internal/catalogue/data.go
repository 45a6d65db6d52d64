package catalogue

import "github.com/pkordes/travel-tracker/internal/domain"

// entries is the reference table. Codes follow ISO 3166-1 alpha-3 where one
// exists; XKX, SOL and NCY are the codes used for entities without one.
var entries = []entry{
	{"AFG", "Afghanistan", domain.Asia, false},
	{"ALB", "Albania", domain.Europe, false},
	{"DZA", "Algeria", domain.Africa, false},
	{"ASM", "American Samoa", domain.Oceania, true},
	{"AND", "Andorra", domain.Europe, false},
	{"AGO", "Angola", domain.Africa, false},
	{"AIA", "Anguilla", domain.NorthAmerica, true},
	{"ATG", "Antigua and Barbuda", domain.NorthAmerica, false},
	{"ARG", "Argentina", domain.SouthAmerica, false},
	{"ARM", "Armenia", domain.Asia, false},
	{"ABW", "Aruba", domain.NorthAmerica, true},
	{"AUS", "Australia", domain.Oceania, false},
	{"AUT", "Austria", domain.Europe, false},
	{"AZE", "Azerbaijan", domain.Asia, false},
	{"BHS", "Bahamas", domain.NorthAmerica, false},
	{"BHR", "Bahrain", domain.Asia, false},
	{"BGD", "Bangladesh", domain.Asia, false},
	{"BRB", "Barbados", domain.NorthAmerica, false},
	{"BLR", "Belarus", domain.Europe, false},
	{"BEL", "Belgium", domain.Europe, false},
	{"BLZ", "Belize", domain.NorthAmerica, false},
	{"BEN", "Benin", domain.Africa, false},
	{"BMU", "Bermuda", domain.NorthAmerica, true},
	{"BTN", "Bhutan", domain.Asia, false},
	{"BOL", "Bolivia", domain.SouthAmerica, false},
	{"BES", "Caribbean Netherlands", domain.NorthAmerica, true},
	{"BIH", "Bosnia and Herzegovina", domain.Europe, false},
	{"BWA", "Botswana", domain.Africa, false},
	{"BRA", "Brazil", domain.SouthAmerica, false},
	{"IOT", "British Indian Ocean Territory", domain.Asia, true},
	{"VGB", "British Virgin Islands", domain.NorthAmerica, true},
	{"BRN", "Brunei", domain.Asia, false},
	{"BGR", "Bulgaria", domain.Europe, false},
	{"BFA", "Burkina Faso", domain.Africa, false},
	{"BDI", "Burundi", domain.Africa, false},
	{"CPV", "Cabo Verde", domain.Africa, false},
	{"KHM", "Cambodia", domain.Asia, false},
	{"CMR", "Cameroon", domain.Africa, false},
	{"CAN", "Canada", domain.NorthAmerica, false},
	{"CYM", "Cayman Islands", domain.NorthAmerica, true},
	{"CAF", "Central African Republic", domain.Africa, false},
	{"TCD", "Chad", domain.Africa, false},
	{"CHL", "Chile", domain.SouthAmerica, false},
	{"CHN", "China", domain.Asia, false},
	{"CXR", "Christmas Island", domain.Oceania, true},
	{"CCK", "Cocos (Keeling) Islands", domain.Oceania, true},
	{"COL", "Colombia", domain.SouthAmerica, false},
	{"COM", "Comoros", domain.Africa, false},
	{"COG", "Congo", domain.Africa, false},
	{"COD", "Democratic Republic of the Congo", domain.Africa, false},
	{"COK", "Cook Islands", domain.Oceania, true},
	{"CRI", "Costa Rica", domain.NorthAmerica, false},
	{"CIV", "Côte d'Ivoire", domain.Africa, false},
	{"HRV", "Croatia", domain.Europe, false},
	{"CUB", "Cuba", domain.NorthAmerica, false},
	{"CUW", "Curaçao", domain.NorthAmerica, true},
	{"CYP", "Cyprus", domain.Europe, false},
	{"CZE", "Czechia", domain.Europe, false},
	{"DNK", "Denmark", domain.Europe, false},
	{"DJI", "Djibouti", domain.Africa, false},
	{"DMA", "Dominica", domain.NorthAmerica, false},
	{"DOM", "Dominican Republic", domain.NorthAmerica, false},
	{"ECU", "Ecuador", domain.SouthAmerica, false},
	{"EGY", "Egypt", domain.Africa, false},
	{"SLV", "El Salvador", domain.NorthAmerica, false},
	{"GNQ", "Equatorial Guinea", domain.Africa, false},
	{"ERI", "Eritrea", domain.Africa, false},
	{"EST", "Estonia", domain.Europe, false},
	{"SWZ", "Eswatini", domain.Africa, false},
	{"ETH", "Ethiopia", domain.Africa, false},
	{"FLK", "Falkland Islands", domain.SouthAmerica, true},
	{"FRO", "Faroe Islands", domain.Europe, true},
	{"FJI", "Fiji", domain.Oceania, false},
	{"FIN", "Finland", domain.Europe, false},
	{"FRA", "France", domain.Europe, false},
	{"GUF", "French Guiana", domain.SouthAmerica, true},
	{"PYF", "French Polynesia", domain.Oceania, true},
	{"GAB", "Gabon", domain.Africa, false},
	{"GMB", "Gambia", domain.Africa, false},
	{"GEO", "Georgia", domain.Asia, false},
	{"DEU", "Germany", domain.Europe, false},
	{"GHA", "Ghana", domain.Africa, false},
	{"GIB", "Gibraltar", domain.Europe, true},
	{"GRC", "Greece", domain.Europe, false},
	{"GRL", "Greenland", domain.NorthAmerica, true},
	{"GRD", "Grenada", domain.NorthAmerica, false},
	{"GLP", "Guadeloupe", domain.NorthAmerica, true},
	{"GUM", "Guam", domain.Oceania, true},
	{"GTM", "Guatemala", domain.NorthAmerica, false},
	{"GGY", "Guernsey", domain.Europe, true},
	{"GIN", "Guinea", domain.Africa, false},
	{"GNB", "Guinea-Bissau", domain.Africa, false},
	{"GUY", "Guyana", domain.SouthAmerica, false},
	{"HTI", "Haiti", domain.NorthAmerica, false},
	{"VAT", "Holy See", domain.Europe, false},
	{"HND", "Honduras", domain.NorthAmerica, false},
	{"HKG", "Hong Kong", domain.Asia, true},
	{"HUN", "Hungary", domain.Europe, false},
	{"ISL", "Iceland", domain.Europe, false},
	{"IND", "India", domain.Asia, false},
	{"IDN", "Indonesia", domain.Asia, false},
	{"IRN", "Iran", domain.Asia, false},
	{"IRQ", "Iraq", domain.Asia, false},
	{"IRL", "Ireland", domain.Europe, false},
	{"IMN", "Isle of Man", domain.Europe, true},
	{"ISR", "Israel", domain.Asia, false},
	{"ITA", "Italy", domain.Europe, false},
	{"JAM", "Jamaica", domain.NorthAmerica, false},
	{"JPN", "Japan", domain.Asia, false},
	{"JEY", "Jersey", domain.Europe, true},
	{"JOR", "Jordan", domain.Asia, false},
	{"KAZ", "Kazakhstan", domain.Asia, false},
	{"KEN", "Kenya", domain.Africa, false},
	{"KIR", "Kiribati", domain.Oceania, false},
	{"XKX", "Kosovo", domain.Europe, true},
	{"KWT", "Kuwait", domain.Asia, false},
	{"KGZ", "Kyrgyzstan", domain.Asia, false},
	{"LAO", "Laos", domain.Asia, false},
	{"LVA", "Latvia", domain.Europe, false},
	{"LBN", "Lebanon", domain.Asia, false},
	{"LSO", "Lesotho", domain.Africa, false},
	{"LBR", "Liberia", domain.Africa, false},
	{"LBY", "Libya", domain.Africa, false},
	{"LIE", "Liechtenstein", domain.Europe, false},
	{"LTU", "Lithuania", domain.Europe, false},
	{"LUX", "Luxembourg", domain.Europe, false},
	{"MAC", "Macao", domain.Asia, true},
	{"MDG", "Madagascar", domain.Africa, false},
	{"MWI", "Malawi", domain.Africa, false},
	{"MYS", "Malaysia", domain.Asia, false},
	{"MDV", "Maldives", domain.Asia, false},
	{"MLI", "Mali", domain.Africa, false},
	{"MLT", "Malta", domain.Europe, false},
	{"MHL", "Marshall Islands", domain.Oceania, false},
	{"MTQ", "Martinique", domain.NorthAmerica, true},
	{"MRT", "Mauritania", domain.Africa, false},
	{"MUS", "Mauritius", domain.Africa, false},
	{"MYT", "Mayotte", domain.Africa, true},
	{"MEX", "Mexico", domain.NorthAmerica, false},
	{"FSM", "Micronesia", domain.Oceania, false},
	{"MDA", "Moldova", domain.Europe, false},
	{"MCO", "Monaco", domain.Europe, false},
	{"MNG", "Mongolia", domain.Asia, false},
	{"MNE", "Montenegro", domain.Europe, false},
	{"MSR", "Montserrat", domain.NorthAmerica, true},
	{"MAR", "Morocco", domain.Africa, false},
	{"MOZ", "Mozambique", domain.Africa, false},
	{"MMR", "Myanmar", domain.Asia, false},
	{"NAM", "Namibia", domain.Africa, false},
	{"NRU", "Nauru", domain.Oceania, false},
	{"NPL", "Nepal", domain.Asia, false},
	{"NLD", "Netherlands", domain.Europe, false},
	{"NCL", "New Caledonia", domain.Oceania, true},
	{"NZL", "New Zealand", domain.Oceania, false},
	{"NIC", "Nicaragua", domain.NorthAmerica, false},
	{"NER", "Niger", domain.Africa, false},
	{"NGA", "Nigeria", domain.Africa, false},
	{"NIU", "Niue", domain.Oceania, true},
	{"NFK", "Norfolk Island", domain.Oceania, true},
	{"PRK", "North Korea", domain.Asia, false},
	{"MKD", "North Macedonia", domain.Europe, false},
	{"NCY", "Northern Cyprus", domain.Europe, true},
	{"MNP", "Northern Mariana Islands", domain.Oceania, true},
	{"NOR", "Norway", domain.Europe, false},
	{"OMN", "Oman", domain.Asia, false},
	{"PAK", "Pakistan", domain.Asia, false},
	{"PLW", "Palau", domain.Oceania, false},
	{"PSE", "Palestine", domain.Asia, false},
	{"PAN", "Panama", domain.NorthAmerica, false},
	{"PNG", "Papua New Guinea", domain.Oceania, false},
	{"PRY", "Paraguay", domain.SouthAmerica, false},
	{"PER", "Peru", domain.SouthAmerica, false},
	{"PHL", "Philippines", domain.Asia, false},
	{"PCN", "Pitcairn Islands", domain.Oceania, true},
	{"POL", "Poland", domain.Europe, false},
	{"PRT", "Portugal", domain.Europe, false},
	{"PRI", "Puerto Rico", domain.NorthAmerica, true},
	{"QAT", "Qatar", domain.Asia, false},
	{"REU", "Réunion", domain.Africa, true},
	{"ROU", "Romania", domain.Europe, false},
	{"RUS", "Russia", domain.Europe, false},
	{"RWA", "Rwanda", domain.Africa, false},
	{"BLM", "Saint Barthélemy", domain.NorthAmerica, true},
	{"SHN", "Saint Helena", domain.Africa, true},
	{"KNA", "Saint Kitts and Nevis", domain.NorthAmerica, false},
	{"LCA", "Saint Lucia", domain.NorthAmerica, false},
	{"MAF", "Saint Martin", domain.NorthAmerica, true},
	{"SPM", "Saint Pierre and Miquelon", domain.NorthAmerica, true},
	{"VCT", "Saint Vincent and the Grenadines", domain.NorthAmerica, false},
	{"WSM", "Samoa", domain.Oceania, false},
	{"SMR", "San Marino", domain.Europe, false},
	{"STP", "São Tomé and Príncipe", domain.Africa, false},
	{"SAU", "Saudi Arabia", domain.Asia, false},
	{"SEN", "Senegal", domain.Africa, false},
	{"SRB", "Serbia", domain.Europe, false},
	{"SYC", "Seychelles", domain.Africa, false},
	{"SLE", "Sierra Leone", domain.Africa, false},
	{"SGP", "Singapore", domain.Asia, false},
	{"SXM", "Sint Maarten", domain.NorthAmerica, true},
	{"SVK", "Slovakia", domain.Europe, false},
	{"SVN", "Slovenia", domain.Europe, false},
	{"SLB", "Solomon Islands", domain.Oceania, false},
	{"SOM", "Somalia", domain.Africa, false},
	{"SOL", "Somaliland", domain.Africa, true},
	{"ZAF", "South Africa", domain.Africa, false},
	{"KOR", "South Korea", domain.Asia, false},
	{"SSD", "South Sudan", domain.Africa, false},
	{"ESP", "Spain", domain.Europe, false},
	{"LKA", "Sri Lanka", domain.Asia, false},
	{"SDN", "Sudan", domain.Africa, false},
	{"SUR", "Suriname", domain.SouthAmerica, false},
	{"SJM", "Svalbard and Jan Mayen", domain.Europe, true},
	{"SWE", "Sweden", domain.Europe, false},
	{"CHE", "Switzerland", domain.Europe, false},
	{"SYR", "Syria", domain.Asia, false},
	{"TWN", "Taiwan", domain.Asia, true},
	{"TJK", "Tajikistan", domain.Asia, false},
	{"TZA", "Tanzania", domain.Africa, false},
	{"THA", "Thailand", domain.Asia, false},
	{"TLS", "Timor-Leste", domain.Asia, false},
	{"TGO", "Togo", domain.Africa, false},
	{"TKL", "Tokelau", domain.Oceania, true},
	{"TON", "Tonga", domain.Oceania, false},
	{"TTO", "Trinidad and Tobago", domain.NorthAmerica, false},
	{"TUN", "Tunisia", domain.Africa, false},
	{"TUR", "Türkiye", domain.Asia, false},
	{"TKM", "Turkmenistan", domain.Asia, false},
	{"TCA", "Turks and Caicos Islands", domain.NorthAmerica, true},
	{"TUV", "Tuvalu", domain.Oceania, false},
	{"UGA", "Uganda", domain.Africa, false},
	{"UKR", "Ukraine", domain.Europe, false},
	{"ARE", "United Arab Emirates", domain.Asia, false},
	{"GBR", "United Kingdom", domain.Europe, false},
	{"USA", "United States", domain.NorthAmerica, false},
	{"UMI", "United States Minor Outlying Islands", domain.Oceania, true},
	{"VIR", "United States Virgin Islands", domain.NorthAmerica, true},
	{"URY", "Uruguay", domain.SouthAmerica, false},
	{"UZB", "Uzbekistan", domain.Asia, false},
	{"VUT", "Vanuatu", domain.Oceania, false},
	{"VEN", "Venezuela", domain.SouthAmerica, false},
	{"VNM", "Vietnam", domain.Asia, false},
	{"WLF", "Wallis and Futuna", domain.Oceania, true},
	{"ESH", "Western Sahara", domain.Africa, true},
	{"YEM", "Yemen", domain.Asia, false},
	{"ZMB", "Zambia", domain.Africa, false},
	{"ZWE", "Zimbabwe", domain.Africa, false},
	{"ALA", "Åland Islands", domain.Europe, true},
}
