package catalog

// defaultLocations is the micromarket site table. Ids are stable keys used by
// the curated pick rows and alert templates.
var defaultLocations = []Location{
	{
		ID:            "loc_usc_campus",
		Name:          "USC Campus Center",
		Type:          "office",
		Address:       "3607 Trousdale Pkwy, Los Angeles, CA 90089",
		Contact:       "operations@usc.edu",
		Capacity:      1200,
		OccupancyRate: 0.82,
	},
	{
		ID:            "loc_tech_campus",
		Name:          "Tech Campus",
		Type:          "office",
		Address:       "1 Silicon Alley, Los Angeles, CA 90001",
		Contact:       "facilities@techcampus.com",
		Capacity:      1500,
		OccupancyRate: 0.78,
	},
	{
		ID:            "loc_hotel_dena",
		Name:          "Hotel Dena",
		Type:          "hotel",
		Address:       "303 Cordova St, Pasadena, CA 91101",
		Contact:       "ops@hoteldena.com",
		Capacity:      500,
		OccupancyRate: 0.89,
	},
	{
		ID:            "loc_airport_terminal_b",
		Name:          "Airport Terminal B",
		Type:          "airport",
		Address:       "1 World Way, Los Angeles, CA 90045",
		Contact:       "terminalb@lawa.org",
		Capacity:      2500,
		OccupancyRate: 0.76,
	},
	{
		ID:            "loc_downtown_plaza",
		Name:          "Downtown Plaza",
		Type:          "retail",
		Address:       "100 Market St, Los Angeles, CA 90012",
		Contact:       "retail@downtownplaza.com",
		Capacity:      900,
		OccupancyRate: 0.71,
	},
	{
		ID:            "loc_medical_center",
		Name:          "Medical Center",
		Type:          "hospital",
		Address:       "1200 N State St, Los Angeles, CA 90033",
		Contact:       "nutrition@medcenter.org",
		Capacity:      600,
		OccupancyRate: 0.95,
	},
	{
		ID:            "loc_westin_sf",
		Name:          "Westin St. Francis - San Francisco",
		Type:          "hotel",
		Address:       "335 Powell St, San Francisco, CA 94102",
		Contact:       "operations@westin-sf.com",
		Capacity:      1195,
		OccupancyRate: 0.78,
	},
	{
		ID:            "loc_marriott_nyc",
		Name:          "Marriott Marquis - Times Square",
		Type:          "hotel",
		Address:       "1535 Broadway, New York, NY 10036",
		Contact:       "inventory@marriott-marquis.com",
		Capacity:      1966,
		OccupancyRate: 0.85,
	},
	{
		ID:            "loc_hilton_chicago",
		Name:          "Hilton Chicago O'Hare Airport",
		Type:          "hotel",
		Address:       "O'Hare International Airport, Chicago, IL 60666",
		Contact:       "micromarket@hilton-ohare.com",
		Capacity:      858,
		OccupancyRate: 0.72,
	},
	{
		ID:            "loc_tech_campus_austin",
		Name:          "TechCorp Campus - Austin",
		Type:          "office",
		Address:       "300 W 6th St, Austin, TX 78701",
		Contact:       "facilities@techcorp.com",
		Capacity:      2500,
		OccupancyRate: 0.65, // hybrid work
	},
	{
		ID:            "loc_hospital_boston",
		Name:          "Boston Medical Center - Staff Lounge",
		Type:          "hospital",
		Address:       "1 Boston Medical Center Pl, Boston, MA 02118",
		Contact:       "nutrition@bmc.org",
		OccupancyRate: 0.95, // 24/7 operation
	},
}

// defaultProducts is the product table. The first block are the ids the
// curated pick rows and alert templates reference.
var defaultProducts = []Product{
	{ID: "prod_healthy_protein_bar", Name: "Healthy Protein Bar", Category: "Snacks", Price: 2.25, Unit: "each", Supplier: "Protein Co"},
	{ID: "prod_coffee_to_go_premium", Name: "Coffee To-Go Premium", Category: "Beverages", Price: 3.50, Unit: "each", Supplier: "Local Roastery"},
	{ID: "prod_pepsi_diet_20oz", Name: "Pepsi Diet 20oz", Category: "Beverages", Price: 2.75, Unit: "each", Supplier: "PepsiCo"},
	{ID: "prod_monster_energy", Name: "Monster Energy", Category: "Beverages", Price: 3.15, Unit: "each", Supplier: "Monster"},
	{ID: "prod_travel_snack_mix", Name: "Travel Snack Mix", Category: "Snacks", Price: 2.25, Unit: "each", Supplier: "Travel Snacks"},
	{ID: "prod_coke_20oz", Name: "Coca-Cola 20oz", Category: "Beverages", Price: 2.75, Unit: "each", Supplier: "Coca-Cola Co"},
	{ID: "prod_life_water_20oz", Name: "Life Water Premium 20oz", Category: "Beverages", Price: 2.75, Unit: "each", Supplier: "PepsiCo"},
	{ID: "prod_starbucks_frappuccino", Name: "Starbucks Frappuccino", Category: "Beverages", Price: 4.25, Unit: "each", Supplier: "Starbucks"},
	{ID: "prod_red_bull_energy", Name: "Red Bull Energy", Category: "Beverages", Price: 3.15, Unit: "each", Supplier: "Red Bull"},
	{ID: "prod_gatorade_sports", Name: "Gatorade Sports", Category: "Beverages", Price: 2.75, Unit: "each", Supplier: "PepsiCo"},

	{ID: "prod_coke_can", Name: "Coca-Cola Classic 12oz", Category: "Beverages", Price: 2.50, Unit: "each", Supplier: "Coca-Cola Co"},
	{ID: "prod_pepsi_can", Name: "Pepsi 12oz", Category: "Beverages", Price: 2.50, Unit: "each", Supplier: "PepsiCo"},
	{ID: "prod_water_bottle", Name: "Dasani Water 16.9oz", Category: "Beverages", Price: 2.00, Unit: "each", Supplier: "Coca-Cola Co"},
	{ID: "prod_redbull", Name: "Red Bull Energy 8.4oz", Category: "Beverages", Price: 3.50, Unit: "each", Supplier: "Red Bull GmbH"},
	{ID: "prod_coffee_cold", Name: "Starbucks Frappuccino 13.7oz", Category: "Beverages", Price: 4.25, Unit: "each", Supplier: "Starbucks"},
	{ID: "prod_gatorade", Name: "Gatorade Fruit Punch 20oz", Category: "Beverages", Price: 2.75, Unit: "each", Supplier: "PepsiCo"},
	{ID: "prod_orange_juice", Name: "Tropicana Orange Juice 14oz", Category: "Beverages", Price: 3.50, Unit: "each", Supplier: "PepsiCo"},

	{ID: "prod_lays_classic", Name: "Lay's Classic Chips 1.5oz", Category: "Snacks", Price: 1.75, Unit: "each", Supplier: "Frito-Lay"},
	{ID: "prod_doritos", Name: "Doritos Nacho Cheese 1.75oz", Category: "Snacks", Price: 1.75, Unit: "each", Supplier: "Frito-Lay"},
	{ID: "prod_pringles", Name: "Pringles Original 5.5oz", Category: "Snacks", Price: 3.25, Unit: "each", Supplier: "Kellogg's"},
	{ID: "prod_snickers", Name: "Snickers Bar 1.86oz", Category: "Snacks", Price: 1.50, Unit: "each", Supplier: "Mars Inc"},
	{ID: "prod_kind_bar", Name: "KIND Bar Almond & Coconut", Category: "Snacks", Price: 2.25, Unit: "each", Supplier: "KIND LLC"},
	{ID: "prod_trail_mix", Name: "Nature Valley Trail Mix 1.2oz", Category: "Snacks", Price: 2.00, Unit: "each", Supplier: "General Mills"},

	{ID: "prod_sandwich_turkey", Name: "Turkey & Swiss Sandwich", Category: "Fresh Food", Price: 6.99, Unit: "each", Supplier: "Local Deli"},
	{ID: "prod_salad_caesar", Name: "Caesar Salad Bowl", Category: "Fresh Food", Price: 7.50, Unit: "each", Supplier: "Fresh Express"},
	{ID: "prod_yogurt_greek", Name: "Chobani Greek Yogurt 5.3oz", Category: "Fresh Food", Price: 2.25, Unit: "each", Supplier: "Chobani"},
	{ID: "prod_fruit_cup", Name: "Fresh Fruit Cup 8oz", Category: "Fresh Food", Price: 4.50, Unit: "each", Supplier: "Del Monte"},

	{ID: "prod_gum_mint", Name: "Extra Mint Gum", Category: "Miscellaneous", Price: 1.25, Unit: "each", Supplier: "Mars Wrigley"},
	{ID: "prod_advil", Name: "Advil Pain Reliever 2-pack", Category: "Health", Price: 2.50, Unit: "each", Supplier: "Pfizer"},
	{ID: "prod_hand_sanitizer", Name: "Purell Hand Sanitizer 2oz", Category: "Health", Price: 3.00, Unit: "each", Supplier: "GOJO"},
}
