// README: Sample catalogue for the seeder.
package main

import "roamhaven/internal/modules/listing"

var sampleListings = []listing.CreateCommand{
	{
		Title:       "Lakeview Cottage",
		Description: "A cozy cottage overlooking the lake, minutes from the old town.",
		Price:       1200,
		Location:    "Nashik",
		Country:     "India",
		Category:    "rooms",
	},
	{
		Title:       "Cozy Beachfront Cottage",
		Description: "Escape to this charming beachfront cottage for a relaxing getaway.",
		Price:       1500,
		Location:    "Malibu",
		Country:     "United States",
		Category:    "trending",
	},
	{
		Title:       "Modern Loft in Downtown",
		Description: "Stay in the heart of the city in this stylish loft apartment.",
		Price:       1200,
		Location:    "New York City",
		Country:     "United States",
		Category:    "iconic_cities",
	},
	{
		Title:       "Mountain Retreat",
		Description: "Unplug and unwind in this peaceful mountain cabin with stunning views.",
		Price:       1000,
		Location:    "Aspen",
		Country:     "United States",
		Category:    "mountains",
	},
	{
		Title:       "Historic Canal House",
		Description: "A narrow 17th-century house on a quiet canal, bicycles included.",
		Price:       1800,
		Location:    "Amsterdam",
		Country:     "Netherlands",
		Category:    "iconic_cities",
	},
	{
		Title:       "Secluded Treehouse Getaway",
		Description: "Live among the treetops in this unique treehouse experience.",
		Price:       800,
		Location:    "Portland",
		Country:     "United States",
		Category:    "camping",
	},
	{
		Title:       "Beachfront Paradise",
		Description: "Step out of your door onto the sand at this beachfront villa.",
		Price:       2000,
		Location:    "Cancun",
		Country:     "Mexico",
		Category:    "pools",
	},
	{
		Title:       "Rustic Cabin by the Lake",
		Description: "Spend days fishing and kayaking from this rustic lakeside cabin.",
		Price:       900,
		Location:    "Lake Tahoe",
		Country:     "United States",
		Category:    "camping",
	},
	{
		Title:       "Luxury Castle Stay",
		Description: "Live like royalty in this restored medieval castle.",
		Price:       4000,
		Location:    "Edinburgh",
		Country:     "United Kingdom",
		Category:    "castles",
	},
	{
		Title:       "Arctic Aurora Igloo",
		Description: "Watch the northern lights from a heated glass igloo.",
		Price:       3500,
		Location:    "Rovaniemi",
		Country:     "Finland",
		Category:    "arctic",
	},
	{
		Title:       "Farm Stay in the Countryside",
		Description: "Feed the animals and enjoy fresh produce on a working farm.",
		Price:       700,
		Location:    "Pune",
		Country:     "India",
		Category:    "farms",
	},
	{
		Title:       "Goa Beach Shack",
		Description: "A laid-back shack steps from the shore, hammock included.",
		Price:       600,
		Location:    "Goa",
		Country:     "India",
		Category:    "trending",
	},
}
