package menu

// In-room dining menu for the Grand Vista Toronto property.
func defaultCategories() []Category {
	cats := []Category{
		{
			Key:  "to_share",
			Name: "To Share",
			Items: []Item{
				{Name: "Truffle Fries", Description: "Shaved Parmesan, Truffle Aioli", Price: 17},
				{Name: "Steamed Edamame", Description: "Everything but the Bagel Spice, Lemon", Price: 9},
				{Name: "Pita and House Dips", Description: "Smoked Aubergine and Garlic, Classic Hummus, Grilled Capsicum and Feta, served with warm pita", Price: 26},
				{Name: "Tuna Tacos", Description: "Flour Tortilla, Seared Sesame Tuna, Cilantro, Jalapeño, Avocado, Red Cabbage, Mango and Chili Salsa", Price: 28},
				{Name: "Buffalo Chicken Wings", Description: "Vegetable Crudités, Ranch Dressing", Price: 26},
				{Name: "Caviar - Kristal", Description: "Traditional Accoutrements, Potato Blinis, Shallots, Chives, Crème Fraîche, Egg (30g)", Price: 225},
				{Name: "Caviar - Ossetra Prestige", Description: "Traditional Accoutrements, Potato Blinis, Shallots, Chives, Crème Fraîche, Egg (50g)", Price: 325},
			},
		},
		{
			Key:  "soups_salads",
			Name: "Soups and Salads",
			Items: []Item{
				{Name: "Soup of the Day", Description: "Please inquire", Price: 17},
				{Name: "Hearty Chicken Noodle", Description: "Carrot, Celery, Onion, Chicken, Macaroni", Price: 20},
				{Name: "Beetroot and Stracciatella Cheese Salad", Description: "Artisanal Leaf, Grapefruit, Orange, Pistachios, Local Honey, Champagne Vinaigrette", Price: 26},
				{Name: "Fall Salad", Description: "Artisanal Leaf, Squash, Apple, Pumpkin Goat Cheese, Sunflower Seeds, Cranberry, Apple Cider Dressing", Price: 26},
				{Name: "Classic Caesar", Description: "Baby Gem, Croutons, Bacon Bits, Parmigiano Reggiano", Price: 24},
				{Name: "Falafel", Description: "Cos Lettuce, Radish, Pomegranate, Parsley, Mint, Capsicum, Heirloom Tomato, Cucumber, Sumac, Treacle Dressing", Price: 23},
			},
		},
		{
			Key:  "enhancements",
			Name: "Enhancements",
			Items: []Item{
				{Name: "Avocado", Price: 11},
				{Name: "Grilled Tofu", Price: 12},
				{Name: "Rotisserie Chicken Breast", Price: 15},
				{Name: "Atlantic Salmon (6 oz.)", Price: 18},
				{Name: "Garlic Prawns", Price: 18},
			},
		},
		{
			Key:  "sandwiches",
			Name: "Sandwiches",
			Items: []Item{
				{Name: "d|Burger", Description: "Top Sirloin, Caramelized Onions, Sautéed Mushrooms, Provolone Cheese, Tomato, Lettuce, House Sauce", Price: 38},
				{Name: "Grilled Chicken Club", Description: "Double-Smoked Bacon, Cheddar Cheese, Fried Egg, Lettuce, Tomato, Garlic Aïoli", Price: 35},
				{Name: "Buffalo Chicken Caesar Wrap", Description: "Flour Tortilla, Cos Lettuce, Parmesan, Buffalo-Tossed Breaded Chicken, Caesar Dressing", Price: 26},
				{Name: "Short Rib Sandwich", Description: "Braised Beef, Coleslaw, Smoked Barbecue Sauce, Dill Pickles", Price: 32},
				{Name: "Mediterranean Garden Toast", Description: "Courgette, Aubergine, Carrot, Red Capsicum Spread, Toasted Sourdough", Price: 19},
			},
		},
		{
			Key:  "entrees",
			Name: "Entrées",
			Items: []Item{
				{Name: "Herb-Crusted Beef Tenderloin (7 oz.)", Description: "Chive Pomme Purée, Heirloom Carrots, with Peppercorn Jus or Red Wine Jus", Price: 54},
				{Name: "Corn-Fed Rotisserie Chicken", Description: "Roasted Baby Red Potatoes, Seasonal Vegetables, Chicken Jus", Price: 38},
				{Name: "Grilled Maple-Glazed Salmon", Description: "Red Capsicum Couscous, Asparagus, Shirazi Salsa", Price: 40},
				{Name: "Crispy Sesame Chicken", Description: "Crunchy Shallots, Courgette, Red Capsicum, Peanuts, Spring Onion, Kung Pao Sauce, Steamed Jasmine Rice", Price: 34},
				{Name: "Salmon Poke Bowl", Description: "Sushi Rice, Wakame, Avocado, Edamame, Radish-Green Onion, Tofu, Tobiko, Ponzu Dressing", Price: 33},
			},
		},
		{
			Key:  "sides",
			Name: "Sides",
			Items: []Item{
				{Name: "Pomme Purée", Price: 12},
				{Name: "Steamed Jasmine Rice", Price: 12},
				{Name: "House Green Salad", Price: 12},
				{Name: "Steamed Vegetables", Price: 12},
				{Name: "French Fries", Price: 12},
				{Name: "Truffle Fries", Price: 14},
				{Name: "Macaroni and Cheese", Price: 14},
			},
		},
		{
			Key:  "pasta",
			Name: "Pasta",
			Items: []Item{
				{Name: "Classic Bolognese", Description: "Rigatoni, Beef Bolognese Sauce", Price: 27},
				{Name: "Basil Pesto Orecchiette", Description: "Green Beans, Cherry Tomato, Creamy Pesto Sauce, Parmesan", Price: 25},
				{Name: "Pasta Al Pomodoro", Description: "Basil, Parmigiano Reggiano, Extra Virgin Olive Oil; Pasta options: Orecchiette, Rigatoni, or Gluten-Free", Price: 22},
			},
		},
		{
			Key:  "dessert",
			Name: "Dessert",
			Items: []Item{
				{Name: "Chocolate Caramel Mousse", Description: "Dark Chocolate Mousse, Caramel Insert, Chocolate Brownie, Cocoa Nib Crunch", Price: 18},
				{Name: "Raspberry-Cashew Cheesecake", Description: "Cashew Cheesecake, Raspberry Gel, Vanilla Shortbread", Price: 17},
				{Name: "Banana Pudding", Description: "Banana Diplomate, Vanilla Crumble, Caramelized Banana", Price: 18},
				{Name: "Matcha Raspberry Tiramisu", Description: "Matcha Mascarpone Cream, Freeze-Dried Raspberry, Lady Finger Sponge", Price: 18},
				{Name: "House-made Ice Cream and Sorbet", Description: "Two scoops", Price: 12},
			},
		},
	}

	// Stamp each item with its owning category's display name so search
	// results can be spoken with their section.
	for ci := range cats {
		for ii := range cats[ci].Items {
			cats[ci].Items[ii].Category = cats[ci].Name
		}
	}
	return cats
}
