package countries

// Builtin returns the built-in reference table of ~250 countries, used
// when no scraped side file is present. Callers get a fresh slice.
func Builtin() []Country {
	return []Country{
		{Name: "Andorra", Capital: "Andorra la Vella", Population: 84000, Area: 468.0},
		{Name: "United Arab Emirates", Capital: "Abu Dhabi", Population: 4975593, Area: 82880.0},
		{Name: "Afghanistan", Capital: "Kabul", Population: 29121286, Area: 647500.0},
		{Name: "Antigua and Barbuda", Capital: "St. John's", Population: 86754, Area: 443.0},
		{Name: "Anguilla", Capital: "The Valley", Population: 13254, Area: 102.0},
		{Name: "Albania", Capital: "Tirana", Population: 2986952, Area: 28748.0},
		{Name: "Armenia", Capital: "Yerevan", Population: 2968000, Area: 29800.0},
		{Name: "Angola", Capital: "Luanda", Population: 13068161, Area: 1246700.0},
		{Name: "Antarctica", Capital: "None", Population: 0, Area: 14000000.0},
		{Name: "Argentina", Capital: "Buenos Aires", Population: 41343201, Area: 2766890.0},
		{Name: "American Samoa", Capital: "Pago Pago", Population: 57881, Area: 199.0},
		{Name: "Austria", Capital: "Vienna", Population: 8205000, Area: 83858.0},
		{Name: "Australia", Capital: "Canberra", Population: 21515754, Area: 7686850.0},
		{Name: "Aruba", Capital: "Oranjestad", Population: 71566, Area: 193.0},
		{Name: "Åland", Capital: "Mariehamn", Population: 26711, Area: 1580.0},
		{Name: "Azerbaijan", Capital: "Baku", Population: 8303512, Area: 86600.0},
		{Name: "Bosnia and Herzegovina", Capital: "Sarajevo", Population: 4590000, Area: 51129.0},
		{Name: "Barbados", Capital: "Bridgetown", Population: 285653, Area: 431.0},
		{Name: "Bangladesh", Capital: "Dhaka", Population: 156118464, Area: 144000.0},
		{Name: "Belgium", Capital: "Brussels", Population: 10403000, Area: 30510.0},
		{Name: "Burkina Faso", Capital: "Ouagadougou", Population: 16241811, Area: 274200.0},
		{Name: "Bulgaria", Capital: "Sofia", Population: 7148785, Area: 110910.0},
		{Name: "Bahrain", Capital: "Manama", Population: 738004, Area: 665.0},
		{Name: "Burundi", Capital: "Bujumbura", Population: 9863117, Area: 27830.0},
		{Name: "Benin", Capital: "Porto-Novo", Population: 9056010, Area: 112620.0},
		{Name: "Saint Barthélemy", Capital: "Gustavia", Population: 8450, Area: 21.0},
		{Name: "Bermuda", Capital: "Hamilton", Population: 65365, Area: 53.0},
		{Name: "Brunei", Capital: "Bandar Seri Begawan", Population: 395027, Area: 5770.0},
		{Name: "Bolivia", Capital: "Sucre", Population: 9947418, Area: 1098580.0},
		{Name: "Bonaire", Capital: "Kralendijk", Population: 18012, Area: 328.0},
		{Name: "Brazil", Capital: "Brasília", Population: 201103330, Area: 8511965.0},
		{Name: "Bahamas", Capital: "Nassau", Population: 301790, Area: 13940.0},
		{Name: "Bhutan", Capital: "Thimphu", Population: 699847, Area: 47000.0},
		{Name: "Bouvet Island", Capital: "None", Population: 0, Area: 49.0},
		{Name: "Botswana", Capital: "Gaborone", Population: 2029307, Area: 600370.0},
		{Name: "Belarus", Capital: "Minsk", Population: 9685000, Area: 207600.0},
		{Name: "Belize", Capital: "Belmopan", Population: 314522, Area: 22966.0},
		{Name: "Canada", Capital: "Ottawa", Population: 33679000, Area: 9984670.0},
		{Name: "Cocos [Keeling] Islands", Capital: "West Island", Population: 628, Area: 14.0},
		{Name: "Democratic Republic of the Congo", Capital: "Kinshasa", Population: 70916439, Area: 2345410.0},
		{Name: "Central African Republic", Capital: "Bangui", Population: 4844927, Area: 622984.0},
		{Name: "Republic of the Congo", Capital: "Brazzaville", Population: 3039126, Area: 342000.0},
		{Name: "Switzerland", Capital: "Bern", Population: 7581000, Area: 41290.0},
		{Name: "Ivory Coast", Capital: "Yamoussoukro", Population: 21058798, Area: 322460.0},
		{Name: "Cook Islands", Capital: "Avarua", Population: 21388, Area: 240.0},
		{Name: "Chile", Capital: "Santiago", Population: 16746491, Area: 756950.0},
		{Name: "Cameroon", Capital: "Yaoundé", Population: 19294149, Area: 475440.0},
		{Name: "China", Capital: "Beijing", Population: 1330044000, Area: 9596960.0},
		{Name: "Colombia", Capital: "Bogotá", Population: 47790000, Area: 1138910.0},
		{Name: "Costa Rica", Capital: "San José", Population: 4516220, Area: 51100.0},
		{Name: "Cuba", Capital: "Havana", Population: 11423000, Area: 110860.0},
		{Name: "Cape Verde", Capital: "Praia", Population: 508659, Area: 4033.0},
		{Name: "Curacao", Capital: "Willemstad", Population: 141766, Area: 444.0},
		{Name: "Christmas Island", Capital: "Flying Fish Cove", Population: 1500, Area: 135.0},
		{Name: "Cyprus", Capital: "Nicosia", Population: 1102677, Area: 9250.0},
		{Name: "Czech Republic", Capital: "Prague", Population: 10476000, Area: 78866.0},
		{Name: "Germany", Capital: "Berlin", Population: 81802257, Area: 357021.0},
		{Name: "Djibouti", Capital: "Djibouti", Population: 740528, Area: 23000.0},
		{Name: "Denmark", Capital: "Copenhagen", Population: 5484000, Area: 43094.0},
		{Name: "Dominica", Capital: "Roseau", Population: 72813, Area: 754.0},
		{Name: "Dominican Republic", Capital: "Santo Domingo", Population: 9823821, Area: 48730.0},
		{Name: "Algeria", Capital: "Algiers", Population: 34586184, Area: 2381740.0},
		{Name: "Ecuador", Capital: "Quito", Population: 14790608, Area: 283560.0},
		{Name: "Estonia", Capital: "Tallinn", Population: 1291170, Area: 45226.0},
		{Name: "Egypt", Capital: "Cairo", Population: 80471869, Area: 1001450.0},
		{Name: "Western Sahara", Capital: "El Aaiún", Population: 273008, Area: 266000.0},
		{Name: "Eritrea", Capital: "Asmara", Population: 5792984, Area: 121320.0},
		{Name: "Spain", Capital: "Madrid", Population: 46505963, Area: 504782.0},
		{Name: "Ethiopia", Capital: "Addis Ababa", Population: 88013491, Area: 1127127.0},
		{Name: "Finland", Capital: "Helsinki", Population: 5244000, Area: 337030.0},
		{Name: "Fiji", Capital: "Suva", Population: 875983, Area: 18270.0},
		{Name: "Falkland Islands", Capital: "Stanley", Population: 2638, Area: 12173.0},
		{Name: "Micronesia", Capital: "Palikir", Population: 107708, Area: 702.0},
		{Name: "Faroe Islands", Capital: "Tórshavn", Population: 48228, Area: 1399.0},
		{Name: "France", Capital: "Paris", Population: 64768389, Area: 547030.0},
		{Name: "Gabon", Capital: "Libreville", Population: 1545255, Area: 267667.0},
		{Name: "United Kingdom", Capital: "London", Population: 62348447, Area: 244820.0},
		{Name: "Grenada", Capital: "St. George's", Population: 107818, Area: 344.0},
		{Name: "Georgia", Capital: "Tbilisi", Population: 4630000, Area: 69700.0},
		{Name: "French Guiana", Capital: "Cayenne", Population: 195506, Area: 83534.0},
		{Name: "Guernsey", Capital: "St. Peter Port", Population: 65228, Area: 78.0},
		{Name: "Ghana", Capital: "Accra", Population: 24339838, Area: 239460.0},
		{Name: "Gibraltar", Capital: "Gibraltar", Population: 27884, Area: 6.5},
		{Name: "Greenland", Capital: "Nuuk", Population: 56375, Area: 2166086.0},
		{Name: "Gambia", Capital: "Banjul", Population: 1593256, Area: 11300.0},
		{Name: "Guinea", Capital: "Conakry", Population: 10324025, Area: 245857.0},
		{Name: "Guadeloupe", Capital: "Basse-Terre", Population: 443000, Area: 1780.0},
		{Name: "Equatorial Guinea", Capital: "Malabo", Population: 1014999, Area: 28051.0},
		{Name: "Greece", Capital: "Athens", Population: 11000000, Area: 131940.0},
		{Name: "South Georgia and the South Sandwich Islands", Capital: "Grytviken", Population: 30, Area: 3903.0},
		{Name: "Guatemala", Capital: "Guatemala City", Population: 13550440, Area: 108890.0},
		{Name: "Guam", Capital: "Hagåtña", Population: 159358, Area: 549.0},
		{Name: "Guinea-Bissau", Capital: "Bissau", Population: 1565126, Area: 36120.0},
		{Name: "Guyana", Capital: "Georgetown", Population: 748486, Area: 214970.0},
		{Name: "Hong Kong", Capital: "Hong Kong", Population: 6898686, Area: 1092.0},
		{Name: "Heard Island and McDonald Islands", Capital: "None", Population: 0, Area: 412.0},
		{Name: "Honduras", Capital: "Tegucigalpa", Population: 7989415, Area: 112090.0},
		{Name: "Croatia", Capital: "Zagreb", Population: 4284889, Area: 56542.0},
		{Name: "Haiti", Capital: "Port-au-Prince", Population: 9648924, Area: 27750.0},
		{Name: "Hungary", Capital: "Budapest", Population: 9982000, Area: 93030.0},
		{Name: "Indonesia", Capital: "Jakarta", Population: 242968342, Area: 1919440.0},
		{Name: "Ireland", Capital: "Dublin", Population: 4622917, Area: 70280.0},
		{Name: "Israel", Capital: "Jerusalem", Population: 7353985, Area: 20770.0},
		{Name: "Isle of Man", Capital: "Douglas", Population: 75049, Area: 572.0},
		{Name: "India", Capital: "New Delhi", Population: 1173108018, Area: 3287590.0},
		{Name: "British Indian Ocean Territory", Capital: "Diego Garcia", Population: 4000, Area: 60.0},
		{Name: "Iraq", Capital: "Baghdad", Population: 29671605, Area: 437072.0},
		{Name: "Iran", Capital: "Tehran", Population: 76923300, Area: 1648000.0},
		{Name: "Iceland", Capital: "Reykjavik", Population: 308910, Area: 103000.0},
		{Name: "Italy", Capital: "Rome", Population: 60340328, Area: 301230.0},
		{Name: "Jersey", Capital: "Saint Helier", Population: 90812, Area: 116.0},
		{Name: "Jamaica", Capital: "Kingston", Population: 2847232, Area: 10991.0},
		{Name: "Jordan", Capital: "Amman", Population: 6407085, Area: 92300.0},
		{Name: "Japan", Capital: "Tokyo", Population: 127288000, Area: 377835.0},
		{Name: "Kenya", Capital: "Nairobi", Population: 40046566, Area: 582650.0},
		{Name: "Kyrgyzstan", Capital: "Bishkek", Population: 5776500, Area: 198500.0},
		{Name: "Cambodia", Capital: "Phnom Penh", Population: 14453680, Area: 181040.0},
		{Name: "Kiribati", Capital: "Tarawa", Population: 92533, Area: 811.0},
		{Name: "Comoros", Capital: "Moroni", Population: 773407, Area: 2170.0},
		{Name: "Saint Kitts and Nevis", Capital: "Basseterre", Population: 51134, Area: 261.0},
		{Name: "North Korea", Capital: "Pyongyang", Population: 22912177, Area: 120540.0},
		{Name: "South Korea", Capital: "Seoul", Population: 48422644, Area: 98480.0},
		{Name: "Kuwait", Capital: "Kuwait City", Population: 2789132, Area: 17820.0},
		{Name: "Cayman Islands", Capital: "George Town", Population: 44270, Area: 262.0},
		{Name: "Kazakhstan", Capital: "Astana", Population: 15340000, Area: 2717300.0},
		{Name: "Laos", Capital: "Vientiane", Population: 6368162, Area: 236800.0},
		{Name: "Lebanon", Capital: "Beirut", Population: 4125247, Area: 10400.0},
		{Name: "Saint Lucia", Capital: "Castries", Population: 160922, Area: 616.0},
		{Name: "Liechtenstein", Capital: "Vaduz", Population: 35000, Area: 160.0},
		{Name: "Sri Lanka", Capital: "Colombo", Population: 21513990, Area: 65610.0},
		{Name: "Liberia", Capital: "Monrovia", Population: 3685076, Area: 111370.0},
		{Name: "Lesotho", Capital: "Maseru", Population: 1919552, Area: 30355.0},
		{Name: "Lithuania", Capital: "Vilnius", Population: 2944459, Area: 65200.0},
		{Name: "Luxembourg", Capital: "Luxembourg", Population: 497538, Area: 2586.0},
		{Name: "Latvia", Capital: "Riga", Population: 2217969, Area: 64589.0},
		{Name: "Libya", Capital: "Tripoli", Population: 6461454, Area: 1759540.0},
		{Name: "Morocco", Capital: "Rabat", Population: 31627428, Area: 446550.0},
		{Name: "Monaco", Capital: "Monaco", Population: 32965, Area: 2.02},
		{Name: "Moldova", Capital: "Chișinău", Population: 4324000, Area: 33843.0},
		{Name: "Montenegro", Capital: "Podgorica", Population: 666730, Area: 13812.0},
		{Name: "Saint Martin", Capital: "Marigot", Population: 35925, Area: 53.0},
		{Name: "Madagascar", Capital: "Antananarivo", Population: 21281844, Area: 587040.0},
		{Name: "Marshall Islands", Capital: "Majuro", Population: 65859, Area: 181.0},
		{Name: "Macedonia", Capital: "Skopje", Population: 2061000, Area: 25333.0},
		{Name: "Mali", Capital: "Bamako", Population: 13796354, Area: 1240000.0},
		{Name: "Myanmar", Capital: "Naypyidaw", Population: 53414374, Area: 678500.0},
		{Name: "Mongolia", Capital: "Ulaanbaatar", Population: 3086918, Area: 1565000.0},
		{Name: "Macao", Capital: "Macao", Population: 449198, Area: 254.0},
		{Name: "Northern Mariana Islands", Capital: "Saipan", Population: 53883, Area: 477.0},
		{Name: "Martinique", Capital: "Fort-de-France", Population: 432900, Area: 1180.0},
		{Name: "Mauritania", Capital: "Nouakchott", Population: 3205060, Area: 1030700.0},
		{Name: "Montserrat", Capital: "Plymouth", Population: 9341, Area: 102.0},
		{Name: "Malta", Capital: "Valletta", Population: 403000, Area: 316.0},
		{Name: "Mauritius", Capital: "Port Louis", Population: 1294104, Area: 2040.0},
		{Name: "Maldives", Capital: "Malé", Population: 395650, Area: 300.0},
		{Name: "Malawi", Capital: "Lilongwe", Population: 15447500, Area: 118480.0},
		{Name: "Mexico", Capital: "Mexico City", Population: 112468855, Area: 1972550.0},
		{Name: "Malaysia", Capital: "Kuala Lumpur", Population: 28274729, Area: 329750.0},
		{Name: "Mozambique", Capital: "Maputo", Population: 22061451, Area: 801590.0},
		{Name: "Namibia", Capital: "Windhoek", Population: 2128471, Area: 825418.0},
		{Name: "New Caledonia", Capital: "Nouméa", Population: 216494, Area: 18575.0},
		{Name: "Niger", Capital: "Niamey", Population: 15878271, Area: 1267000.0},
		{Name: "Norfolk Island", Capital: "Kingston", Population: 1828, Area: 34.6},
		{Name: "Nigeria", Capital: "Abuja", Population: 154000000, Area: 923768.0},
		{Name: "Nicaragua", Capital: "Managua", Population: 5995928, Area: 129494.0},
		{Name: "Netherlands", Capital: "Amsterdam", Population: 16645000, Area: 41526.0},
		{Name: "Norway", Capital: "Oslo", Population: 5009150, Area: 324220.0},
		{Name: "Nepal", Capital: "Kathmandu", Population: 28951852, Area: 140800.0},
		{Name: "Nauru", Capital: "Yaren", Population: 10065, Area: 21.0},
		{Name: "Niue", Capital: "Alofi", Population: 2166, Area: 260.0},
		{Name: "New Zealand", Capital: "Wellington", Population: 4252277, Area: 268680.0},
		{Name: "Oman", Capital: "Muscat", Population: 2967717, Area: 212460.0},
		{Name: "Panama", Capital: "Panama City", Population: 3410676, Area: 78200.0},
		{Name: "Peru", Capital: "Lima", Population: 29907003, Area: 1285220.0},
		{Name: "French Polynesia", Capital: "Papeete", Population: 270485, Area: 4167.0},
		{Name: "Papua New Guinea", Capital: "Port Moresby", Population: 6064515, Area: 462840.0},
		{Name: "Philippines", Capital: "Manila", Population: 99900177, Area: 300000.0},
		{Name: "Pakistan", Capital: "Islamabad", Population: 184404791, Area: 803940.0},
		{Name: "Poland", Capital: "Warsaw", Population: 38500000, Area: 312685.0},
		{Name: "Saint Pierre and Miquelon", Capital: "Saint-Pierre", Population: 7012, Area: 242.0},
		{Name: "Pitcairn", Capital: "Adamstown", Population: 46, Area: 47.0},
		{Name: "Puerto Rico", Capital: "San Juan", Population: 3916632, Area: 9104.0},
		{Name: "Palestine", Capital: "East Jerusalem", Population: 3800000, Area: 5970.0},
		{Name: "Portugal", Capital: "Lisbon", Population: 10676000, Area: 92391.0},
		{Name: "Palau", Capital: "Ngerulmud", Population: 19907, Area: 458.0},
		{Name: "Paraguay", Capital: "Asunción", Population: 6375830, Area: 406750.0},
		{Name: "Qatar", Capital: "Doha", Population: 840926, Area: 11437.0},
		{Name: "Réunion", Capital: "Saint-Denis", Population: 776948, Area: 2517.0},
		{Name: "Romania", Capital: "Bucharest", Population: 21959278, Area: 237500.0},
		{Name: "Serbia", Capital: "Belgrade", Population: 7344847, Area: 88361.0},
		{Name: "Russia", Capital: "Moscow", Population: 140702000, Area: 17100000.0},
		{Name: "Rwanda", Capital: "Kigali", Population: 11055976, Area: 26338.0},
		{Name: "Saudi Arabia", Capital: "Riyadh", Population: 25731776, Area: 1960582.0},
		{Name: "Solomon Islands", Capital: "Honiara", Population: 559198, Area: 28450.0},
		{Name: "Seychelles", Capital: "Victoria", Population: 88340, Area: 455.0},
		{Name: "Sudan", Capital: "Khartoum", Population: 35000000, Area: 1861484.0},
		{Name: "Sweden", Capital: "Stockholm", Population: 9828655, Area: 449964.0},
		{Name: "Singapore", Capital: "Singapore", Population: 4701069, Area: 692.7},
		{Name: "Saint Helena", Capital: "Jamestown", Population: 7460, Area: 410.0},
		{Name: "Slovenia", Capital: "Ljubljana", Population: 2007000, Area: 20273.0},
		{Name: "Svalbard and Jan Mayen", Capital: "Longyearbyen", Population: 2550, Area: 62049.0},
		{Name: "Slovakia", Capital: "Bratislava", Population: 5455000, Area: 48845.0},
		{Name: "Sierra Leone", Capital: "Freetown", Population: 5245695, Area: 71740.0},
		{Name: "San Marino", Capital: "San Marino", Population: 31477, Area: 61.2},
		{Name: "Senegal", Capital: "Dakar", Population: 12323252, Area: 196190.0},
		{Name: "Somalia", Capital: "Mogadishu", Population: 10112453, Area: 637657.0},
		{Name: "Suriname", Capital: "Paramaribo", Population: 492829, Area: 163270.0},
		{Name: "South Sudan", Capital: "Juba", Population: 8260490, Area: 644329.0},
		{Name: "São Tomé and Príncipe", Capital: "São Tomé", Population: 175808, Area: 1001.0},
		{Name: "El Salvador", Capital: "San Salvador", Population: 6052064, Area: 21040.0},
		{Name: "Sint Maarten", Capital: "Philipsburg", Population: 37429, Area: 21.0},
		{Name: "Syria", Capital: "Damascus", Population: 22198110, Area: 185180.0},
		{Name: "Swaziland", Capital: "Mbabane", Population: 1354051, Area: 17363.0},
		{Name: "Turks and Caicos Islands", Capital: "Cockburn Town", Population: 20556, Area: 430.0},
		{Name: "Chad", Capital: "N'Djamena", Population: 10543464, Area: 1284000.0},
		{Name: "French Southern Territories", Capital: "Port-aux-Français", Population: 140, Area: 7829.0},
		{Name: "Togo", Capital: "Lomé", Population: 6587239, Area: 56785.0},
		{Name: "Thailand", Capital: "Bangkok", Population: 67089500, Area: 514000.0},
		{Name: "Tajikistan", Capital: "Dushanbe", Population: 7487489, Area: 143100.0},
		{Name: "Tokelau", Capital: "None", Population: 1466, Area: 10.0},
		{Name: "East Timor", Capital: "Dili", Population: 1154625, Area: 15007.0},
		{Name: "Turkmenistan", Capital: "Ashgabat", Population: 4940916, Area: 488100.0},
		{Name: "Tunisia", Capital: "Tunis", Population: 10589025, Area: 163610.0},
		{Name: "Tonga", Capital: "Nuku'alofa", Population: 122580, Area: 748.0},
		{Name: "Turkey", Capital: "Ankara", Population: 77804122, Area: 780580.0},
		{Name: "Trinidad and Tobago", Capital: "Port of Spain", Population: 1228691, Area: 5128.0},
		{Name: "Tuvalu", Capital: "Funafuti", Population: 10472, Area: 26.0},
		{Name: "Taiwan", Capital: "Taipei", Population: 22894384, Area: 35980.0},
		{Name: "Tanzania", Capital: "Dodoma", Population: 41892895, Area: 945087.0},
		{Name: "Ukraine", Capital: "Kiev", Population: 45415596, Area: 603700.0},
		{Name: "Uganda", Capital: "Kampala", Population: 33398682, Area: 236040.0},
		{Name: "U.S. Minor Outlying Islands", Capital: "None", Population: 0, Area: 0.0},
		{Name: "United States", Capital: "Washington", Population: 310232863, Area: 9629091.0},
		{Name: "Uruguay", Capital: "Montevideo", Population: 3477000, Area: 176220.0},
		{Name: "Uzbekistan", Capital: "Tashkent", Population: 27865738, Area: 447400.0},
		{Name: "Vatican City", Capital: "Vatican City", Population: 921, Area: 0.44},
		{Name: "Saint Vincent and the Grenadines", Capital: "Kingstown", Population: 104217, Area: 389.0},
		{Name: "Venezuela", Capital: "Caracas", Population: 27223228, Area: 912050.0},
		{Name: "British Virgin Islands", Capital: "Road Town", Population: 21730, Area: 153.0},
		{Name: "U.S. Virgin Islands", Capital: "Charlotte Amalie", Population: 108708, Area: 352.0},
		{Name: "Vietnam", Capital: "Hanoi", Population: 89571130, Area: 329560.0},
		{Name: "Vanuatu", Capital: "Port Vila", Population: 221552, Area: 12200.0},
		{Name: "Wallis and Futuna", Capital: "Mata-Utu", Population: 16025, Area: 274.0},
		{Name: "Samoa", Capital: "Apia", Population: 192001, Area: 2944.0},
		{Name: "Kosovo", Capital: "Pristina", Population: 1800000, Area: 10908.0},
		{Name: "Yemen", Capital: "Sanaa", Population: 23495361, Area: 527970.0},
		{Name: "Mayotte", Capital: "Mamoudzou", Population: 159042, Area: 374.0},
		{Name: "South Africa", Capital: "Pretoria", Population: 49000000, Area: 1219912.0},
		{Name: "Zambia", Capital: "Lusaka", Population: 13460305, Area: 752614.0},
		{Name: "Zimbabwe", Capital: "Harare", Population: 11651858, Area: 390580.0},
	}
}
