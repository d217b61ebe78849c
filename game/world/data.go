package world

// cityTable is indexed by City. Map adds the reverse of every declared
// edge, so a one-sided neighbour entry still yields an undirected graph.
var cityTable = [NumCities + 1]CityInfo{
	Algiers: {ID: Algiers, Name: "Algiers", Color: Black, Country: "Algeria", Population: 2_946_000, Density: 6_500,
		Neighbors: []City{Cairo, Istanbul, Madrid, Paris}},
	Atlanta: {ID: Atlanta, Name: "Atlanta", Color: Blue, Country: "United States", Population: 4_715_000, Density: 700,
		Neighbors: []City{Chicago, Miami, Washington}},
	Baghdad: {ID: Baghdad, Name: "Baghdad", Color: Black, Country: "Iraq", Population: 6_204_000, Density: 10_400,
		Neighbors: []City{Cairo, Istanbul, Karachi, Riyadh, Tehran}},
	Bangkok: {ID: Bangkok, Name: "Bangkok", Color: Red, Country: "Thailand", Population: 7_151_000, Density: 3_200,
		Neighbors: []City{Chennai, HoChiMinhCity, HongKong, Jakarta, Kolkata}},
	Beijing: {ID: Beijing, Name: "Beijing", Color: Red, Country: "People's Republic of China", Population: 17_311_000, Density: 5_000,
		Neighbors: []City{Seoul, Shanghai}},
	Bogota: {ID: Bogota, Name: "Bogotá", Color: Yellow, Country: "Colombia", Population: 8_702_000, Density: 21_000,
		Neighbors: []City{BuenosAires, Lima, MexicoCity, Miami, SaoPaulo}},
	BuenosAires: {ID: BuenosAires, Name: "Buenos Aires", Color: Yellow, Country: "Argentina", Population: 13_639_000, Density: 5_200,
		Neighbors: []City{Bogota, SaoPaulo}},
	Cairo: {ID: Cairo, Name: "Cairo", Color: Black, Country: "Egypt", Population: 14_718_000, Density: 8_900,
		Neighbors: []City{Algiers, Baghdad, Istanbul, Khartoum, Riyadh}},
	Chennai: {ID: Chennai, Name: "Chennai", Color: Black, Country: "India", Population: 8_865_000, Density: 14_600,
		Neighbors: []City{Bangkok, Delhi, Jakarta, Kolkata, Mumbai}},
	Chicago: {ID: Chicago, Name: "Chicago", Color: Blue, Country: "United States", Population: 9_121_000, Density: 1_300,
		Neighbors: []City{Atlanta, LosAngeles, MexicoCity, Montreal, SanFrancisco}},
	Delhi: {ID: Delhi, Name: "Delhi", Color: Black, Country: "India", Population: 22_242_000, Density: 11_500,
		Neighbors: []City{Chennai, Karachi, Kolkata, Mumbai, Tehran}},
	Essen: {ID: Essen, Name: "Essen", Color: Blue, Country: "Germany", Population: 575_000, Density: 2_800,
		Neighbors: []City{London, Milan, Paris, SaintPetersburg}},
	HoChiMinhCity: {ID: HoChiMinhCity, Name: "Ho Chi Minh City", Color: Red, Country: "Vietnam", Population: 8_314_000, Density: 9_900,
		Neighbors: []City{Bangkok, HongKong, Jakarta, Manila}},
	HongKong: {ID: HongKong, Name: "Hong Kong", Color: Red, Country: "People's Republic of China", Population: 7_106_000, Density: 25_900,
		Neighbors: []City{Bangkok, HoChiMinhCity, Kolkata, Manila, Shanghai, Taipei}},
	Istanbul: {ID: Istanbul, Name: "Istanbul", Color: Black, Country: "Turkey", Population: 13_576_000, Density: 9_700,
		Neighbors: []City{Algiers, Baghdad, Cairo, Milan, Moscow, SaintPetersburg}},
	Jakarta: {ID: Jakarta, Name: "Jakarta", Color: Red, Country: "Indonesia", Population: 26_063_000, Density: 9_400,
		Neighbors: []City{Bangkok, Chennai, HoChiMinhCity, Sydney}},
	Johannesburg: {ID: Johannesburg, Name: "Johannesburg", Color: Yellow, Country: "South Africa", Population: 3_888_000, Density: 2_400,
		Neighbors: []City{Kinshasa, Khartoum}},
	Karachi: {ID: Karachi, Name: "Karachi", Color: Black, Country: "Pakistan", Population: 20_711_000, Density: 25_800,
		Neighbors: []City{Baghdad, Delhi, Mumbai, Riyadh, Tehran}},
	Khartoum: {ID: Khartoum, Name: "Khartoum", Color: Yellow, Country: "Sudan", Population: 4_887_000, Density: 4_500,
		Neighbors: []City{Cairo, Johannesburg, Kinshasa, Lagos}},
	Kinshasa: {ID: Kinshasa, Name: "Kinshasa", Color: Yellow, Country: "Democratic Republic of the Congo", Population: 9_046_000, Density: 15_500,
		Neighbors: []City{Johannesburg, Khartoum, Lagos}},
	Kolkata: {ID: Kolkata, Name: "Kolkata", Color: Black, Country: "India", Population: 14_374_000, Density: 11_900,
		Neighbors: []City{Bangkok, Chennai, Delhi, HongKong}},
	Lagos: {ID: Lagos, Name: "Lagos", Color: Yellow, Country: "Nigeria", Population: 11_547_000, Density: 12_700,
		Neighbors: []City{Khartoum, Kinshasa, SaoPaulo}},
	Lima: {ID: Lima, Name: "Lima", Color: Yellow, Country: "Peru", Population: 9_121_000, Density: 14_100,
		Neighbors: []City{Bogota, MexicoCity, Santiago}},
	London: {ID: London, Name: "London", Color: Blue, Country: "United Kingdom", Population: 8_586_000, Density: 5_300,
		Neighbors: []City{Essen, Madrid, NewYork, Paris}},
	LosAngeles: {ID: LosAngeles, Name: "Los Angeles", Color: Yellow, Country: "United States", Population: 14_900_000, Density: 2_400,
		Neighbors: []City{Chicago, MexicoCity, SanFrancisco, Sydney}},
	Madrid: {ID: Madrid, Name: "Madrid", Color: Blue, Country: "Spain", Population: 5_427_000, Density: 5_700,
		Neighbors: []City{Algiers, London, NewYork, Paris, SaoPaulo}},
	Manila: {ID: Manila, Name: "Manila", Color: Red, Country: "Philippines", Population: 20_767_000, Density: 14_400,
		Neighbors: []City{HoChiMinhCity, HongKong, SanFrancisco, Sydney, Taipei}},
	MexicoCity: {ID: MexicoCity, Name: "Mexico City", Color: Yellow, Country: "Mexico", Population: 19_463_000, Density: 9_500,
		Neighbors: []City{Bogota, Chicago, Lima, LosAngeles, Miami}},
	Miami: {ID: Miami, Name: "Miami", Color: Yellow, Country: "United States", Population: 5_582_000, Density: 1_700,
		Neighbors: []City{Atlanta, Bogota, MexicoCity, Washington}},
	Milan: {ID: Milan, Name: "Milan", Color: Blue, Country: "Italy", Population: 5_232_000, Density: 2_800,
		Neighbors: []City{Essen, Istanbul, Paris}},
	Montreal: {ID: Montreal, Name: "Montréal", Color: Blue, Country: "Canada", Population: 3_429_000, Density: 2_200,
		Neighbors: []City{Chicago, NewYork, Washington}},
	Moscow: {ID: Moscow, Name: "Moscow", Color: Black, Country: "Russia", Population: 15_512_000, Density: 3_500,
		Neighbors: []City{Istanbul, SaintPetersburg, Tehran}},
	Mumbai: {ID: Mumbai, Name: "Mumbai", Color: Black, Country: "India", Population: 16_910_000, Density: 30_900,
		Neighbors: []City{Chennai, Delhi, Karachi}},
	NewYork: {ID: NewYork, Name: "New York", Color: Blue, Country: "United States", Population: 20_464_000, Density: 1_800,
		Neighbors: []City{London, Madrid, Montreal, Washington}},
	Osaka: {ID: Osaka, Name: "Osaka", Color: Red, Country: "Japan", Population: 2_871_000, Density: 13_000,
		Neighbors: []City{Taipei, Tokyo}},
	Paris: {ID: Paris, Name: "Paris", Color: Blue, Country: "France", Population: 10_755_000, Density: 3_800,
		Neighbors: []City{Algiers, Essen, London, Madrid, Milan}},
	Riyadh: {ID: Riyadh, Name: "Riyadh", Color: Black, Country: "Saudi Arabia", Population: 5_037_000, Density: 3_400,
		Neighbors: []City{Baghdad, Cairo, Karachi}},
	SaintPetersburg: {ID: SaintPetersburg, Name: "Saint Petersburg", Color: Blue, Country: "Russia", Population: 4_879_000, Density: 4_100,
		Neighbors: []City{Essen, Istanbul, Moscow}},
	SanFrancisco: {ID: SanFrancisco, Name: "San Francisco", Color: Blue, Country: "United States", Population: 5_864_000, Density: 2_100,
		Neighbors: []City{Chicago, LosAngeles, Manila, Tokyo}},
	Santiago: {ID: Santiago, Name: "Santiago", Color: Yellow, Country: "Chile", Population: 6_015_000, Density: 6_500,
		Neighbors: []City{Lima}},
	SaoPaulo: {ID: SaoPaulo, Name: "São Paulo", Color: Yellow, Country: "Brazil", Population: 20_186_000, Density: 6_400,
		Neighbors: []City{Bogota, BuenosAires, Lagos, Madrid}},
	Seoul: {ID: Seoul, Name: "Seoul", Color: Red, Country: "South Korea", Population: 22_547_000, Density: 10_400,
		Neighbors: []City{Beijing, Shanghai, Tokyo}},
	Shanghai: {ID: Shanghai, Name: "Shanghai", Color: Red, Country: "People's Republic of China", Population: 13_482_000, Density: 2_200,
		Neighbors: []City{Beijing, HongKong, Seoul, Taipei, Tokyo}},
	Sydney: {ID: Sydney, Name: "Sydney", Color: Red, Country: "Australia", Population: 3_785_000, Density: 2_100,
		Neighbors: []City{Jakarta, LosAngeles, Manila}},
	Taipei: {ID: Taipei, Name: "Taipei", Color: Red, Country: "Taiwan", Population: 8_338_000, Density: 7_300,
		Neighbors: []City{HongKong, Manila, Osaka, Shanghai}},
	Tehran: {ID: Tehran, Name: "Tehran", Color: Black, Country: "Iran", Population: 7_419_000, Density: 9_500,
		Neighbors: []City{Baghdad, Delhi, Karachi, Moscow}},
	Tokyo: {ID: Tokyo, Name: "Tokyo", Color: Red, Country: "Japan", Population: 13_189_000, Density: 6_030,
		Neighbors: []City{Osaka, SanFrancisco, Seoul, Shanghai}},
	Washington: {ID: Washington, Name: "Washington", Color: Blue, Country: "United States", Population: 4_679_000, Density: 1_400,
		Neighbors: []City{Atlanta, Miami, Montreal, NewYork}},
}
