package recommender

// SeedItems es el dataset local estático. Se usa al construir el catálogo
// cuando Mongo no está disponible (política de degradar a local) y en el
// modo consola/demo.
func SeedItems() []Item {
	return []Item{
		{Name: "Python Tutorial", Category: "Programming", Tags: []string{"python", "programming", "coding", "tutorial", "beginner"}, Difficulty: "beginner", DurationMin: 45, Popularity: 0.5},
		{Name: "Machine Learning Crash Course", Category: "AI & ML", Tags: []string{"machine learning", "ai", "data science", "algorithms"}, Difficulty: "intermediate", DurationMin: 120, Popularity: 0.5},
		{Name: "Web Development Full Course", Category: "Web Development", Tags: []string{"html", "css", "javascript", "web", "frontend"}, Difficulty: "beginner", DurationMin: 180, Popularity: 0.5},
		{Name: "React Native Mobile Apps", Category: "Mobile Development", Tags: []string{"react", "mobile", "apps", "javascript"}, Difficulty: "intermediate", DurationMin: 95, Popularity: 0.5},

		{Name: "Gaming Laptop Review 2024", Category: "Gaming", Tags: []string{"gaming", "laptop", "review", "tech", "hardware"}, Difficulty: "beginner", DurationMin: 25, Popularity: 0.5},
		{Name: "Valorant Gameplay Tips", Category: "Gaming", Tags: []string{"valorant", "fps", "gaming", "esports", "tips"}, Difficulty: "intermediate", DurationMin: 18, Popularity: 0.5},
		{Name: "Best RPG Games 2024", Category: "Gaming", Tags: []string{"rpg", "games", "review", "entertainment"}, Difficulty: "beginner", DurationMin: 32, Popularity: 0.5},

		{Name: "Pop Music Mix 2024", Category: "Music", Tags: []string{"pop", "music", "mix", "entertainment", "charts"}, Difficulty: "beginner", DurationMin: 60, Popularity: 0.5},
		{Name: "Arabic Music Classics", Category: "Music", Tags: []string{"arabic", "music", "classic", "nostalgia"}, Difficulty: "beginner", DurationMin: 45, Popularity: 0.5},
		{Name: "Jazz Relaxation Playlist", Category: "Music", Tags: []string{"jazz", "relax", "music", "study"}, Difficulty: "beginner", DurationMin: 90, Popularity: 0.5},

		{Name: "Full Body Workout", Category: "Fitness", Tags: []string{"workout", "fitness", "exercise", "health"}, Difficulty: "intermediate", DurationMin: 40, Popularity: 0.5},
		{Name: "Yoga for Beginners", Category: "Fitness", Tags: []string{"yoga", "meditation", "health", "wellness"}, Difficulty: "beginner", DurationMin: 30, Popularity: 0.5},
		{Name: "Nutrition Guide", Category: "Fitness", Tags: []string{"nutrition", "diet", "health", "food"}, Difficulty: "beginner", DurationMin: 35, Popularity: 0.5},

		{Name: "iPhone 15 Review", Category: "Mobile", Tags: []string{"iphone", "apple", "review", "mobile", "tech"}, Difficulty: "beginner", DurationMin: 22, Popularity: 0.5},
		{Name: "Android vs iOS Comparison", Category: "Mobile", Tags: []string{"android", "ios", "comparison", "mobile"}, Difficulty: "beginner", DurationMin: 28, Popularity: 0.5},
		{Name: "Smartphone Camera Tips", Category: "Mobile", Tags: []string{"camera", "photography", "mobile", "tips"}, Difficulty: "intermediate", DurationMin: 19, Popularity: 0.5},

		{Name: "Netflix Top 10 Series", Category: "Entertainment", Tags: []string{"netflix", "series", "entertainment", "movies"}, Difficulty: "beginner", DurationMin: 15, Popularity: 0.5},
		{Name: "Marvel Movies Timeline", Category: "Entertainment", Tags: []string{"marvel", "movies", "superhero", "comics"}, Difficulty: "beginner", DurationMin: 38, Popularity: 0.5},
		{Name: "Arabic Drama Review", Category: "Entertainment", Tags: []string{"arabic", "drama", "series", "ramadan"}, Difficulty: "beginner", DurationMin: 20, Popularity: 0.5},

		{Name: "Stock Market Basics", Category: "Finance", Tags: []string{"stocks", "investment", "finance", "money"}, Difficulty: "beginner", DurationMin: 50, Popularity: 0.5},
		{Name: "Freelancing Guide 2024", Category: "Business", Tags: []string{"freelancing", "work", "online", "business"}, Difficulty: "intermediate", DurationMin: 55, Popularity: 0.5},
		{Name: "E-commerce Tutorial", Category: "Business", Tags: []string{"ecommerce", "business", "online", "shop"}, Difficulty: "intermediate", DurationMin: 70, Popularity: 0.5},

		{Name: "Arabic Food Recipes", Category: "Cooking", Tags: []string{"cooking", "food", "recipes", "arabic"}, Difficulty: "intermediate", DurationMin: 40, Popularity: 0.5},
		{Name: "Healthy Breakfast Ideas", Category: "Cooking", Tags: []string{"healthy", "food", "breakfast", "nutrition"}, Difficulty: "beginner", DurationMin: 25, Popularity: 0.5},
		{Name: "Dessert Recipes", Category: "Cooking", Tags: []string{"dessert", "sweet", "recipes", "baking"}, Difficulty: "intermediate", DurationMin: 35, Popularity: 0.5},
	}
}
