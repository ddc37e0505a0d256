package recipes

import "github.com/mealplanhq/mealplan-hub/internal/domain"

// seedCatalog returns the static starter dataset: 36 recipes across the four
// meal types and three difficulty tiers. Inserted once when the store is
// empty; ids are stable so re-seeding is a no-op.
func seedCatalog() []domain.Recipe {
	return []domain.Recipe{
		{
			ID:          "b1",
			Name:        "Greek Yogurt Parfait",
			Description: "Creamy yogurt layered with fresh berries and crunchy granola",
			Ingredients: []domain.Ingredient{
				{Name: "Greek yogurt", Amount: 1, Unit: "cup"},
				{Name: "Mixed berries", Amount: 0.5, Unit: "cup"},
				{Name: "Granola", Amount: 0.25, Unit: "cup"},
				{Name: "Honey", Amount: 1, Unit: "tbsp"},
			},
			Instructions: []string{
				"Add half the yogurt to a glass or bowl",
				"Layer half the berries on top",
				"Add remaining yogurt",
				"Top with remaining berries and granola",
				"Drizzle with honey",
			},
			PrepTimeMinutes: 5,
			CookTimeMinutes: 0,
			Servings:        1,
			Nutrition:       domain.NutritionInfo{Calories: 320, ProteinGrams: 18, CarbsGrams: 42, FatGrams: 8, FiberGrams: 4, SodiumMg: 80},
			Tags:            []string{"quick", "no-cook", "high-protein"},
			Difficulty:      domain.SkillBeginner,
			HealthGoals:     []domain.HealthGoal{domain.GoalBuildMuscle, domain.GoalGeneralWellness},
			DietaryInfo:     []domain.DietaryRestriction{domain.DietVegetarian, domain.DietGlutenFree},
			MealType:        domain.MealBreakfast,
			Substitutions:   map[string]string{"Greek yogurt": "coconut yogurt", "Honey": "maple syrup"},
		},
		{
			ID:          "b2",
			Name:        "Avocado Toast",
			Description: "Creamy avocado on crispy whole grain toast with a perfect egg",
			Ingredients: []domain.Ingredient{
				{Name: "Whole grain bread", Amount: 2, Unit: "slices"},
				{Name: "Avocado", Amount: 1},
				{Name: "Egg", Amount: 1},
				{Name: "Salt", Unit: "to taste"},
				{Name: "Red pepper flakes", Unit: "pinch"},
			},
			Instructions: []string{
				"Toast the bread until golden",
				"Mash the avocado with a fork",
				"Fry or poach the egg to your liking",
				"Spread avocado on toast",
				"Top with egg, salt, and red pepper flakes",
			},
			PrepTimeMinutes: 5,
			CookTimeMinutes: 5,
			Servings:        1,
			Nutrition:       domain.NutritionInfo{Calories: 380, ProteinGrams: 14, CarbsGrams: 32, FatGrams: 24, FiberGrams: 10, SodiumMg: 320},
			Tags:            []string{"quick", "healthy-fats"},
			Difficulty:      domain.SkillBeginner,
			HealthGoals:     []domain.HealthGoal{domain.GoalHeartHealth, domain.GoalMoreEnergy, domain.GoalGeneralWellness},
			DietaryInfo:     []domain.DietaryRestriction{domain.DietVegetarian, domain.DietDairyFree},
			MealType:        domain.MealBreakfast,
			Substitutions:   map[string]string{"Whole grain bread": "gluten-free bread", "Egg": "cherry tomatoes"},
		},
		{
			ID:          "b3",
			Name:        "Overnight Oats",
			Description: "Prep tonight, grab and go tomorrow morning",
			Ingredients: []domain.Ingredient{
				{Name: "Rolled oats", Amount: 0.5, Unit: "cup"},
				{Name: "Milk", Amount: 0.5, Unit: "cup"},
				{Name: "Greek yogurt", Amount: 0.25, Unit: "cup"},
				{Name: "Chia seeds", Amount: 1, Unit: "tbsp"},
				{Name: "Banana", Amount: 0.5},
				{Name: "Peanut butter", Amount: 1, Unit: "tbsp"},
			},
			Instructions: []string{
				"Combine oats, milk, yogurt, and chia seeds in a jar",
				"Stir well to combine",
				"Refrigerate overnight (or at least 4 hours)",
				"In the morning, top with sliced banana and peanut butter",
			},
			PrepTimeMinutes: 5,
			CookTimeMinutes: 0,
			Servings:        1,
			Nutrition:       domain.NutritionInfo{Calories: 420, ProteinGrams: 16, CarbsGrams: 58, FatGrams: 14, FiberGrams: 8, SodiumMg: 150},
			Tags:            []string{"meal-prep", "no-cook", "grab-and-go"},
			Difficulty:      domain.SkillBeginner,
			HealthGoals:     []domain.HealthGoal{domain.GoalMoreEnergy, domain.GoalGeneralWellness},
			DietaryInfo:     []domain.DietaryRestriction{domain.DietVegetarian},
			MealType:        domain.MealBreakfast,
			Substitutions:   map[string]string{"Milk": "almond milk", "Peanut butter": "almond butter", "Greek yogurt": "coconut yogurt"},
		},
		{
			ID:          "b4",
			Name:        "Scrambled Eggs with Spinach",
			Description: "Fluffy eggs packed with iron-rich spinach",
			Ingredients: []domain.Ingredient{
				{Name: "Eggs", Amount: 3},
				{Name: "Spinach", Amount: 1, Unit: "cup"},
				{Name: "Butter", Amount: 1, Unit: "tbsp"},
				{Name: "Salt", Unit: "to taste"},
				{Name: "Black pepper", Unit: "to taste"},
			},
			Instructions: []string{
				"Whisk eggs in a bowl with salt and pepper",
				"Melt butter in a pan over medium-low heat",
				"Add spinach and cook until wilted (1 minute)",
				"Pour in eggs and gently stir with a spatula",
				"Remove from heat when still slightly wet",
			},
			PrepTimeMinutes: 3,
			CookTimeMinutes: 5,
			Servings:        1,
			Nutrition:       domain.NutritionInfo{Calories: 280, ProteinGrams: 20, CarbsGrams: 2, FatGrams: 22, FiberGrams: 1, SodiumMg: 380},
			Tags:            []string{"quick", "high-protein", "low-carb"},
			Difficulty:      domain.SkillBeginner,
			HealthGoals:     []domain.HealthGoal{domain.GoalLoseFat, domain.GoalBuildMuscle},
			DietaryInfo:     []domain.DietaryRestriction{domain.DietVegetarian, domain.DietGlutenFree},
			MealType:        domain.MealBreakfast,
			Substitutions:   map[string]string{"Butter": "olive oil", "Spinach": "kale"},
		},
		{
			ID:          "b5",
			Name:        "Banana Peanut Butter Smoothie",
			Description: "Creamy, filling smoothie ready in minutes",
			Ingredients: []domain.Ingredient{
				{Name: "Banana", Amount: 1, Unit: "frozen"},
				{Name: "Peanut butter", Amount: 2, Unit: "tbsp"},
				{Name: "Milk", Amount: 1, Unit: "cup"},
				{Name: "Honey", Amount: 1, Unit: "tsp"},
				{Name: "Ice cubes", Amount: 0.5, Unit: "cup"},
			},
			Instructions: []string{
				"Add all ingredients to a blender",
				"Blend until smooth",
				"Pour into a glass and enjoy",
			},
			PrepTimeMinutes: 5,
			CookTimeMinutes: 0,
			Servings:        1,
			Nutrition:       domain.NutritionInfo{Calories: 380, ProteinGrams: 12, CarbsGrams: 48, FatGrams: 16, FiberGrams: 5, SodiumMg: 200},
			Tags:            []string{"quick", "no-cook", "grab-and-go"},
			Difficulty:      domain.SkillBeginner,
			HealthGoals:     []domain.HealthGoal{domain.GoalBuildMuscle, domain.GoalMoreEnergy},
			DietaryInfo:     []domain.DietaryRestriction{domain.DietVegetarian, domain.DietGlutenFree},
			MealType:        domain.MealBreakfast,
			Substitutions:   map[string]string{"Milk": "oat milk", "Peanut butter": "almond butter"},
		},
		{
			ID:          "b6",
			Name:        "Simple Oatmeal with Berries",
			Description: "Warm, comforting oatmeal with fresh berries",
			Ingredients: []domain.Ingredient{
				{Name: "Quick oats", Amount: 0.5, Unit: "cup"},
				{Name: "Water", Amount: 1, Unit: "cup"},
				{Name: "Mixed berries", Amount: 0.5, Unit: "cup"},
				{Name: "Honey", Amount: 1, Unit: "tbsp"},
				{Name: "Cinnamon", Unit: "pinch"},
			},
			Instructions: []string{
				"Bring water to a boil",
				"Stir in oats and reduce heat",
				"Cook for 2-3 minutes, stirring occasionally",
				"Top with berries, honey, and cinnamon",
			},
			PrepTimeMinutes: 2,
			CookTimeMinutes: 5,
			Servings:        1,
			Nutrition:       domain.NutritionInfo{Calories: 280, ProteinGrams: 6, CarbsGrams: 56, FatGrams: 4, FiberGrams: 6, SodiumMg: 10},
			Tags:            []string{"quick", "heart-healthy", "fiber-rich"},
			Difficulty:      domain.SkillBeginner,
			HealthGoals:     []domain.HealthGoal{domain.GoalHeartHealth, domain.GoalGeneralWellness},
			DietaryInfo:     []domain.DietaryRestriction{domain.DietVegetarian, domain.DietDairyFree, domain.DietVegan},
			MealType:        domain.MealBreakfast,
			Substitutions:   map[string]string{"Honey": "maple syrup", "Quick oats": "rolled oats"},
		},
		{
			ID:          "b7",
			Name:        "Veggie Omelette",
			Description: "Fluffy omelette loaded with colorful vegetables",
			Ingredients: []domain.Ingredient{
				{Name: "Eggs", Amount: 3},
				{Name: "Bell pepper", Amount: 0.25, Unit: "cup diced"},
				{Name: "Onion", Amount: 0.25, Unit: "cup diced"},
				{Name: "Mushrooms", Amount: 0.25, Unit: "cup sliced"},
				{Name: "Cheese", Amount: 0.25, Unit: "cup shredded"},
				{Name: "Butter", Amount: 1, Unit: "tbsp"},
				{Name: "Salt", Unit: "to taste"},
			},
			Instructions: []string{
				"Whisk eggs with salt in a bowl",
				"Sauté vegetables in butter until soft",
				"Pour eggs over vegetables",
				"Cook until edges set, then add cheese",
				"Fold omelette in half and serve",
			},
			PrepTimeMinutes: 10,
			CookTimeMinutes: 8,
			Servings:        1,
			Nutrition:       domain.NutritionInfo{Calories: 380, ProteinGrams: 24, CarbsGrams: 8, FatGrams: 28, FiberGrams: 2, SodiumMg: 520},
			Tags:            []string{"high-protein", "low-carb"},
			Difficulty:      domain.SkillIntermediate,
			HealthGoals:     []domain.HealthGoal{domain.GoalLoseFat, domain.GoalBuildMuscle},
			DietaryInfo:     []domain.DietaryRestriction{domain.DietVegetarian, domain.DietGlutenFree},
			MealType:        domain.MealBreakfast,
			Substitutions:   map[string]string{"Cheese": "nutritional yeast", "Butter": "olive oil"},
		},
		{
			ID:          "b8",
			Name:        "Protein Pancakes",
			Description: "Fluffy pancakes with extra protein for muscle building",
			Ingredients: []domain.Ingredient{
				{Name: "Oats", Amount: 0.5, Unit: "cup"},
				{Name: "Banana", Amount: 1},
				{Name: "Eggs", Amount: 2},
				{Name: "Protein powder", Amount: 1, Unit: "scoop"},
				{Name: "Baking powder", Amount: 0.5, Unit: "tsp"},
				{Name: "Maple syrup", Amount: 2, Unit: "tbsp"},
			},
			Instructions: []string{
				"Blend oats, banana, eggs, protein powder, and baking powder",
				"Heat a non-stick pan over medium heat",
				"Pour batter to form pancakes",
				"Flip when bubbles form on surface",
				"Serve with maple syrup",
			},
			PrepTimeMinutes: 5,
			CookTimeMinutes: 15,
			Servings:        2,
			Nutrition:       domain.NutritionInfo{Calories: 420, ProteinGrams: 28, CarbsGrams: 52, FatGrams: 12, FiberGrams: 6, SodiumMg: 280},
			Tags:            []string{"high-protein", "meal-prep-friendly"},
			Difficulty:      domain.SkillIntermediate,
			HealthGoals:     []domain.HealthGoal{domain.GoalBuildMuscle},
			DietaryInfo:     []domain.DietaryRestriction{domain.DietVegetarian},
			MealType:        domain.MealBreakfast,
			Substitutions:   map[string]string{"Protein powder": "extra oats", "Maple syrup": "fresh fruit"},
		},
		{
			ID:          "l1",
			Name:        "Chicken Caesar Salad",
			Description: "Classic salad with grilled chicken and creamy dressing",
			Ingredients: []domain.Ingredient{
				{Name: "Romaine lettuce", Amount: 3, Unit: "cups"},
				{Name: "Grilled chicken breast", Amount: 4, Unit: "oz"},
				{Name: "Parmesan cheese", Amount: 2, Unit: "tbsp"},
				{Name: "Caesar dressing", Amount: 2, Unit: "tbsp"},
				{Name: "Croutons", Amount: 0.25, Unit: "cup"},
			},
			Instructions: []string{
				"Chop lettuce and place in a bowl",
				"Slice grilled chicken",
				"Top lettuce with chicken, parmesan, and croutons",
				"Drizzle with Caesar dressing",
				"Toss gently and serve",
			},
			PrepTimeMinutes: 10,
			CookTimeMinutes: 0,
			Servings:        1,
			Nutrition:       domain.NutritionInfo{Calories: 420, ProteinGrams: 38, CarbsGrams: 18, FatGrams: 22, FiberGrams: 4, SodiumMg: 680},
			Tags:            []string{"high-protein", "classic"},
			Difficulty:      domain.SkillBeginner,
			HealthGoals:     []domain.HealthGoal{domain.GoalBuildMuscle, domain.GoalLoseFat},
			DietaryInfo:     []domain.DietaryRestriction{domain.DietGlutenFree},
			MealType:        domain.MealLunch,
			Substitutions:   map[string]string{"Croutons": "chickpeas", "Caesar dressing": "olive oil and lemon"},
		},
		{
			ID:          "l2",
			Name:        "Turkey & Avocado Wrap",
			Description: "Protein-packed wrap with creamy avocado",
			Ingredients: []domain.Ingredient{
				{Name: "Whole wheat tortilla", Amount: 1, Unit: "large"},
				{Name: "Turkey breast slices", Amount: 4, Unit: "oz"},
				{Name: "Avocado", Amount: 0.5},
				{Name: "Lettuce", Amount: 2, Unit: "leaves"},
				{Name: "Tomato", Amount: 2, Unit: "slices"},
				{Name: "Mustard", Amount: 1, Unit: "tbsp"},
			},
			Instructions: []string{
				"Lay tortilla flat",
				"Spread mashed avocado and mustard",
				"Layer turkey, lettuce, and tomato",
				"Roll tightly, tucking in the sides",
				"Cut in half diagonally",
			},
			PrepTimeMinutes: 8,
			CookTimeMinutes: 0,
			Servings:        1,
			Nutrition:       domain.NutritionInfo{Calories: 380, ProteinGrams: 32, CarbsGrams: 28, FatGrams: 16, FiberGrams: 8, SodiumMg: 520},
			Tags:            []string{"high-protein", "portable", "no-cook"},
			Difficulty:      domain.SkillBeginner,
			HealthGoals:     []domain.HealthGoal{domain.GoalLoseFat, domain.GoalBuildMuscle},
			DietaryInfo:     []domain.DietaryRestriction{domain.DietDairyFree},
			MealType:        domain.MealLunch,
			Substitutions:   map[string]string{"Whole wheat tortilla": "lettuce wraps", "Turkey": "chicken breast"},
		},
		{
			ID:          "l3",
			Name:        "Mediterranean Quinoa Bowl",
			Description: "Colorful bowl with quinoa, veggies, and feta",
			Ingredients: []domain.Ingredient{
				{Name: "Cooked quinoa", Amount: 1, Unit: "cup"},
				{Name: "Cucumber", Amount: 0.5, Unit: "cup diced"},
				{Name: "Cherry tomatoes", Amount: 0.5, Unit: "cup halved"},
				{Name: "Feta cheese", Amount: 2, Unit: "tbsp crumbled"},
				{Name: "Kalamata olives", Amount: 6},
				{Name: "Olive oil", Amount: 1, Unit: "tbsp"},
				{Name: "Lemon juice", Amount: 1, Unit: "tbsp"},
			},
			Instructions: []string{
				"Place quinoa in a bowl",
				"Top with cucumber, tomatoes, feta, and olives",
				"Drizzle with olive oil and lemon juice",
				"Toss gently and serve",
			},
			PrepTimeMinutes: 10,
			CookTimeMinutes: 0,
			Servings:        1,
			Nutrition:       domain.NutritionInfo{Calories: 380, ProteinGrams: 12, CarbsGrams: 42, FatGrams: 18, FiberGrams: 6, SodiumMg: 420},
			Tags:            []string{"vegetarian", "mediterranean", "heart-healthy"},
			Difficulty:      domain.SkillBeginner,
			HealthGoals:     []domain.HealthGoal{domain.GoalHeartHealth, domain.GoalGeneralWellness},
			DietaryInfo:     []domain.DietaryRestriction{domain.DietVegetarian, domain.DietGlutenFree},
			MealType:        domain.MealLunch,
			Substitutions:   map[string]string{"Feta": "tofu crumbles", "Quinoa": "brown rice"},
		},
		{
			ID:          "l4",
			Name:        "Tuna Salad Lettuce Wraps",
			Description: "Light, protein-rich lunch with no bread",
			Ingredients: []domain.Ingredient{
				{Name: "Canned tuna", Amount: 5, Unit: "oz drained"},
				{Name: "Greek yogurt", Amount: 2, Unit: "tbsp"},
				{Name: "Celery", Amount: 0.25, Unit: "cup diced"},
				{Name: "Red onion", Amount: 2, Unit: "tbsp diced"},
				{Name: "Butter lettuce", Amount: 4, Unit: "leaves"},
				{Name: "Lemon juice", Amount: 1, Unit: "tsp"},
			},
			Instructions: []string{
				"Mix tuna, yogurt, celery, onion, and lemon juice",
				"Season with salt and pepper",
				"Spoon mixture into lettuce leaves",
				"Serve immediately",
			},
			PrepTimeMinutes: 10,
			CookTimeMinutes: 0,
			Servings:        1,
			Nutrition:       domain.NutritionInfo{Calories: 220, ProteinGrams: 32, CarbsGrams: 6, FatGrams: 8, FiberGrams: 1, SodiumMg: 380},
			Tags:            []string{"low-carb", "high-protein", "no-cook"},
			Difficulty:      domain.SkillBeginner,
			HealthGoals:     []domain.HealthGoal{domain.GoalLoseFat, domain.GoalBuildMuscle},
			DietaryInfo:     []domain.DietaryRestriction{domain.DietGlutenFree, domain.DietDairyFree},
			MealType:        domain.MealLunch,
			Substitutions:   map[string]string{"Greek yogurt": "mayo", "Tuna": "canned chicken"},
		},
		{
			ID:          "l5",
			Name:        "Black Bean Quesadilla",
			Description: "Cheesy quesadilla with fiber-rich black beans",
			Ingredients: []domain.Ingredient{
				{Name: "Flour tortilla", Amount: 1, Unit: "large"},
				{Name: "Black beans", Amount: 0.5, Unit: "cup drained"},
				{Name: "Shredded cheese", Amount: 0.25, Unit: "cup"},
				{Name: "Salsa", Amount: 2, Unit: "tbsp"},
				{Name: "Sour cream", Amount: 1, Unit: "tbsp"},
			},
			Instructions: []string{
				"Heat tortilla in a pan over medium heat",
				"Spread beans and cheese on half the tortilla",
				"Fold tortilla in half",
				"Cook 2 minutes per side until golden and cheese melts",
				"Serve with salsa and sour cream",
			},
			PrepTimeMinutes: 5,
			CookTimeMinutes: 5,
			Servings:        1,
			Nutrition:       domain.NutritionInfo{Calories: 420, ProteinGrams: 18, CarbsGrams: 52, FatGrams: 16, FiberGrams: 10, SodiumMg: 680},
			Tags:            []string{"vegetarian", "quick", "comfort-food"},
			Difficulty:      domain.SkillBeginner,
			HealthGoals:     []domain.HealthGoal{domain.GoalGeneralWellness, domain.GoalMoreEnergy},
			DietaryInfo:     []domain.DietaryRestriction{domain.DietVegetarian},
			MealType:        domain.MealLunch,
			Substitutions:   map[string]string{"Sour cream": "Greek yogurt", "Flour tortilla": "corn tortilla"},
		},
		{
			ID:          "l6",
			Name:        "Caprese Sandwich",
			Description: "Fresh mozzarella, tomato, and basil on crusty bread",
			Ingredients: []domain.Ingredient{
				{Name: "Ciabatta roll", Amount: 1},
				{Name: "Fresh mozzarella", Amount: 3, Unit: "oz sliced"},
				{Name: "Tomato", Amount: 1, Unit: "sliced"},
				{Name: "Fresh basil", Amount: 5, Unit: "leaves"},
				{Name: "Balsamic glaze", Amount: 1, Unit: "tbsp"},
				{Name: "Olive oil", Amount: 1, Unit: "tsp"},
			},
			Instructions: []string{
				"Slice ciabatta roll in half",
				"Drizzle olive oil on both halves",
				"Layer mozzarella, tomato, and basil",
				"Drizzle with balsamic glaze",
				"Close sandwich and serve",
			},
			PrepTimeMinutes: 8,
			CookTimeMinutes: 0,
			Servings:        1,
			Nutrition:       domain.NutritionInfo{Calories: 450, ProteinGrams: 22, CarbsGrams: 38, FatGrams: 24, FiberGrams: 3, SodiumMg: 480},
			Tags:            []string{"vegetarian", "italian", "no-cook"},
			Difficulty:      domain.SkillBeginner,
			HealthGoals:     []domain.HealthGoal{domain.GoalGeneralWellness},
			DietaryInfo:     []domain.DietaryRestriction{domain.DietVegetarian},
			MealType:        domain.MealLunch,
			Substitutions:   map[string]string{"Ciabatta": "gluten-free bread", "Mozzarella": "vegan cheese"},
		},
		{
			ID:          "l7",
			Name:        "Asian Chicken Stir-Fry",
			Description: "Quick stir-fry with chicken and colorful vegetables",
			Ingredients: []domain.Ingredient{
				{Name: "Chicken breast", Amount: 6, Unit: "oz sliced"},
				{Name: "Broccoli florets", Amount: 1, Unit: "cup"},
				{Name: "Bell pepper", Amount: 0.5, Unit: "cup sliced"},
				{Name: "Soy sauce", Amount: 2, Unit: "tbsp"},
				{Name: "Sesame oil", Amount: 1, Unit: "tbsp"},
				{Name: "Garlic", Amount: 2, Unit: "cloves minced"},
				{Name: "Ginger", Amount: 1, Unit: "tsp minced"},
				{Name: "Brown rice", Amount: 1, Unit: "cup cooked"},
			},
			Instructions: []string{
				"Heat sesame oil in a wok or large pan",
				"Cook chicken until browned, set aside",
				"Stir-fry garlic and ginger for 30 seconds",
				"Add vegetables and cook until crisp-tender",
				"Return chicken, add soy sauce, toss to coat",
				"Serve over brown rice",
			},
			PrepTimeMinutes: 15,
			CookTimeMinutes: 12,
			Servings:        2,
			Nutrition:       domain.NutritionInfo{Calories: 420, ProteinGrams: 36, CarbsGrams: 38, FatGrams: 14, FiberGrams: 4, SodiumMg: 720},
			Tags:            []string{"high-protein", "asian"},
			Difficulty:      domain.SkillIntermediate,
			HealthGoals:     []domain.HealthGoal{domain.GoalBuildMuscle, domain.GoalLoseFat},
			DietaryInfo:     []domain.DietaryRestriction{domain.DietDairyFree},
			MealType:        domain.MealLunch,
			Substitutions:   map[string]string{"Soy sauce": "coconut aminos", "Brown rice": "cauliflower rice"},
		},
		{
			ID:          "l8",
			Name:        "Salmon Poke Bowl",
			Description: "Hawaiian-inspired bowl with fresh salmon",
			Ingredients: []domain.Ingredient{
				{Name: "Sushi-grade salmon", Amount: 4, Unit: "oz cubed"},
				{Name: "Sushi rice", Amount: 1, Unit: "cup cooked"},
				{Name: "Avocado", Amount: 0.5, Unit: "sliced"},
				{Name: "Cucumber", Amount: 0.5, Unit: "cup sliced"},
				{Name: "Edamame", Amount: 0.25, Unit: "cup"},
				{Name: "Soy sauce", Amount: 1, Unit: "tbsp"},
				{Name: "Sesame seeds", Amount: 1, Unit: "tsp"},
			},
			Instructions: []string{
				"Place rice in a bowl",
				"Arrange salmon, avocado, cucumber, and edamame on top",
				"Drizzle with soy sauce",
				"Sprinkle with sesame seeds",
			},
			PrepTimeMinutes: 15,
			CookTimeMinutes: 0,
			Servings:        1,
			Nutrition:       domain.NutritionInfo{Calories: 520, ProteinGrams: 32, CarbsGrams: 48, FatGrams: 22, FiberGrams: 6, SodiumMg: 580},
			Tags:            []string{"omega-3", "heart-healthy", "no-cook"},
			Difficulty:      domain.SkillIntermediate,
			HealthGoals:     []domain.HealthGoal{domain.GoalHeartHealth, domain.GoalBuildMuscle},
			DietaryInfo:     []domain.DietaryRestriction{domain.DietDairyFree, domain.DietGlutenFree},
			MealType:        domain.MealLunch,
			Substitutions:   map[string]string{"Salmon": "tofu", "Soy sauce": "coconut aminos"},
		},
		{
			ID:          "d1",
			Name:        "Sheet Pan Chicken & Vegetables",
			Description: "Easy one-pan dinner with minimal cleanup",
			Ingredients: []domain.Ingredient{
				{Name: "Chicken thighs", Amount: 4},
				{Name: "Broccoli", Amount: 2, Unit: "cups"},
				{Name: "Sweet potato", Amount: 1, Unit: "cubed"},
				{Name: "Olive oil", Amount: 2, Unit: "tbsp"},
				{Name: "Italian seasoning", Amount: 1, Unit: "tsp"},
				{Name: "Garlic powder", Amount: 0.5, Unit: "tsp"},
			},
			Instructions: []string{
				"Preheat oven to 425°F (220°C)",
				"Toss vegetables with olive oil and seasonings",
				"Season chicken with remaining spices",
				"Arrange everything on a sheet pan",
				"Roast 25-30 minutes until chicken is cooked through",
			},
			PrepTimeMinutes: 10,
			CookTimeMinutes: 30,
			Servings:        4,
			Nutrition:       domain.NutritionInfo{Calories: 380, ProteinGrams: 28, CarbsGrams: 22, FatGrams: 20, FiberGrams: 4, SodiumMg: 380},
			Tags:            []string{"one-pan", "meal-prep", "family-friendly"},
			Difficulty:      domain.SkillBeginner,
			HealthGoals:     []domain.HealthGoal{domain.GoalBuildMuscle, domain.GoalGeneralWellness},
			DietaryInfo:     []domain.DietaryRestriction{domain.DietGlutenFree, domain.DietDairyFree},
			MealType:        domain.MealDinner,
			Substitutions:   map[string]string{"Chicken thighs": "chicken breast", "Sweet potato": "butternut squash"},
		},
		{
			ID:          "d2",
			Name:        "Baked Salmon with Asparagus",
			Description: "Heart-healthy salmon with roasted asparagus",
			Ingredients: []domain.Ingredient{
				{Name: "Salmon fillet", Amount: 6, Unit: "oz"},
				{Name: "Asparagus", Amount: 1, Unit: "bunch"},
				{Name: "Lemon", Amount: 0.5},
				{Name: "Olive oil", Amount: 1, Unit: "tbsp"},
				{Name: "Garlic", Amount: 2, Unit: "cloves minced"},
				{Name: "Dill", Amount: 1, Unit: "tsp"},
			},
			Instructions: []string{
				"Preheat oven to 400°F (200°C)",
				"Place salmon and asparagus on a baking sheet",
				"Drizzle with olive oil, sprinkle garlic and dill",
				"Squeeze lemon over everything",
				"Bake 15-18 minutes",
			},
			PrepTimeMinutes: 8,
			CookTimeMinutes: 18,
			Servings:        1,
			Nutrition:       domain.NutritionInfo{Calories: 420, ProteinGrams: 38, CarbsGrams: 8, FatGrams: 26, FiberGrams: 4, SodiumMg: 280},
			Tags:            []string{"omega-3", "heart-healthy", "one-pan"},
			Difficulty:      domain.SkillBeginner,
			HealthGoals:     []domain.HealthGoal{domain.GoalHeartHealth, domain.GoalLoseFat},
			DietaryInfo:     []domain.DietaryRestriction{domain.DietGlutenFree, domain.DietDairyFree},
			MealType:        domain.MealDinner,
			Substitutions:   map[string]string{"Salmon": "cod", "Asparagus": "green beans"},
		},
		{
			ID:          "d3",
			Name:        "Turkey Taco Lettuce Wraps",
			Description: "Low-carb tacos using lettuce as shells",
			Ingredients: []domain.Ingredient{
				{Name: "Ground turkey", Amount: 8, Unit: "oz"},
				{Name: "Taco seasoning", Amount: 1, Unit: "tbsp"},
				{Name: "Butter lettuce", Amount: 6, Unit: "leaves"},
				{Name: "Diced tomatoes", Amount: 0.5, Unit: "cup"},
				{Name: "Shredded cheese", Amount: 0.25, Unit: "cup"},
				{Name: "Sour cream", Amount: 2, Unit: "tbsp"},
			},
			Instructions: []string{
				"Brown turkey in a pan over medium heat",
				"Add taco seasoning and a splash of water",
				"Simmer 5 minutes",
				"Spoon turkey into lettuce leaves",
				"Top with tomatoes, cheese, and sour cream",
			},
			PrepTimeMinutes: 5,
			CookTimeMinutes: 15,
			Servings:        2,
			Nutrition:       domain.NutritionInfo{Calories: 320, ProteinGrams: 28, CarbsGrams: 8, FatGrams: 20, FiberGrams: 2, SodiumMg: 520},
			Tags:            []string{"low-carb", "high-protein", "family-friendly"},
			Difficulty:      domain.SkillBeginner,
			HealthGoals:     []domain.HealthGoal{domain.GoalLoseFat, domain.GoalBuildMuscle},
			DietaryInfo:     []domain.DietaryRestriction{domain.DietGlutenFree},
			MealType:        domain.MealDinner,
			Substitutions:   map[string]string{"Ground turkey": "ground chicken", "Sour cream": "Greek yogurt"},
		},
		{
			ID:          "d4",
			Name:        "Pasta Primavera",
			Description: "Colorful vegetable pasta with garlic and olive oil",
			Ingredients: []domain.Ingredient{
				{Name: "Whole wheat pasta", Amount: 8, Unit: "oz"},
				{Name: "Zucchini", Amount: 1, Unit: "sliced"},
				{Name: "Cherry tomatoes", Amount: 1, Unit: "cup halved"},
				{Name: "Bell pepper", Amount: 1, Unit: "sliced"},
				{Name: "Garlic", Amount: 3, Unit: "cloves minced"},
				{Name: "Olive oil", Amount: 3, Unit: "tbsp"},
				{Name: "Parmesan cheese", Amount: 0.25, Unit: "cup grated"},
			},
			Instructions: []string{
				"Cook pasta according to package directions",
				"Sauté garlic in olive oil",
				"Add vegetables and cook until tender",
				"Toss with drained pasta",
				"Top with parmesan and serve",
			},
			PrepTimeMinutes: 10,
			CookTimeMinutes: 20,
			Servings:        4,
			Nutrition:       domain.NutritionInfo{Calories: 380, ProteinGrams: 14, CarbsGrams: 52, FatGrams: 14, FiberGrams: 8, SodiumMg: 280},
			Tags:            []string{"vegetarian", "family-friendly"},
			Difficulty:      domain.SkillBeginner,
			HealthGoals:     []domain.HealthGoal{domain.GoalGeneralWellness, domain.GoalMoreEnergy},
			DietaryInfo:     []domain.DietaryRestriction{domain.DietVegetarian},
			MealType:        domain.MealDinner,
			Substitutions:   map[string]string{"Whole wheat pasta": "gluten-free pasta", "Parmesan": "nutritional yeast"},
		},
		{
			ID:          "d5",
			Name:        "Grilled Chicken Breast with Quinoa",
			Description: "Simple grilled chicken with protein-packed quinoa",
			Ingredients: []domain.Ingredient{
				{Name: "Chicken breast", Amount: 6, Unit: "oz"},
				{Name: "Quinoa", Amount: 0.5, Unit: "cup dry"},
				{Name: "Olive oil", Amount: 1, Unit: "tbsp"},
				{Name: "Lemon juice", Amount: 2, Unit: "tbsp"},
				{Name: "Dried oregano", Amount: 1, Unit: "tsp"},
				{Name: "Salt", Unit: "to taste"},
			},
			Instructions: []string{
				"Marinate chicken in olive oil, lemon, and oregano",
				"Cook quinoa according to package directions",
				"Grill or pan-sear chicken 6-7 minutes per side",
				"Let chicken rest 5 minutes, then slice",
				"Serve over quinoa",
			},
			PrepTimeMinutes: 10,
			CookTimeMinutes: 20,
			Servings:        1,
			Nutrition:       domain.NutritionInfo{Calories: 480, ProteinGrams: 44, CarbsGrams: 34, FatGrams: 18, FiberGrams: 4, SodiumMg: 320},
			Tags:            []string{"high-protein", "meal-prep"},
			Difficulty:      domain.SkillBeginner,
			HealthGoals:     []domain.HealthGoal{domain.GoalBuildMuscle, domain.GoalLoseFat},
			DietaryInfo:     []domain.DietaryRestriction{domain.DietGlutenFree, domain.DietDairyFree},
			MealType:        domain.MealDinner,
			Substitutions:   map[string]string{"Quinoa": "brown rice", "Chicken breast": "tofu"},
		},
		{
			ID:          "d6",
			Name:        "Vegetable Stir-Fry with Tofu",
			Description: "Quick vegetarian stir-fry packed with protein",
			Ingredients: []domain.Ingredient{
				{Name: "Firm tofu", Amount: 8, Unit: "oz cubed"},
				{Name: "Broccoli", Amount: 1, Unit: "cup"},
				{Name: "Snap peas", Amount: 0.5, Unit: "cup"},
				{Name: "Carrots", Amount: 0.5, Unit: "cup sliced"},
				{Name: "Soy sauce", Amount: 2, Unit: "tbsp"},
				{Name: "Sesame oil", Amount: 1, Unit: "tbsp"},
				{Name: "Rice", Amount: 1, Unit: "cup cooked"},
			},
			Instructions: []string{
				"Press tofu to remove excess water",
				"Pan-fry tofu until golden on all sides",
				"Remove tofu, add vegetables to pan",
				"Stir-fry vegetables until crisp-tender",
				"Return tofu, add soy sauce, toss to combine",
				"Serve over rice",
			},
			PrepTimeMinutes: 15,
			CookTimeMinutes: 15,
			Servings:        2,
			Nutrition:       domain.NutritionInfo{Calories: 380, ProteinGrams: 18, CarbsGrams: 42, FatGrams: 16, FiberGrams: 6, SodiumMg: 680},
			Tags:            []string{"vegan", "high-protein", "quick"},
			Difficulty:      domain.SkillBeginner,
			HealthGoals:     []domain.HealthGoal{domain.GoalGeneralWellness, domain.GoalHeartHealth},
			DietaryInfo:     []domain.DietaryRestriction{domain.DietVegan, domain.DietVegetarian, domain.DietDairyFree},
			MealType:        domain.MealDinner,
			Substitutions:   map[string]string{"Tofu": "tempeh", "Rice": "cauliflower rice"},
		},
		{
			ID:          "d7",
			Name:        "Herb-Crusted Pork Tenderloin",
			Description: "Juicy pork with a flavorful herb crust",
			Ingredients: []domain.Ingredient{
				{Name: "Pork tenderloin", Amount: 1, Unit: "lb"},
				{Name: "Dijon mustard", Amount: 2, Unit: "tbsp"},
				{Name: "Fresh rosemary", Amount: 1, Unit: "tbsp chopped"},
				{Name: "Fresh thyme", Amount: 1, Unit: "tbsp chopped"},
				{Name: "Garlic", Amount: 3, Unit: "cloves minced"},
				{Name: "Olive oil", Amount: 2, Unit: "tbsp"},
				{Name: "Roasted potatoes", Amount: 2, Unit: "cups"},
			},
			Instructions: []string{
				"Preheat oven to 425°F (220°C)",
				"Mix mustard, herbs, and garlic",
				"Coat pork with herb mixture",
				"Sear pork in olive oil on all sides",
				"Transfer to oven and roast 20-25 minutes",
				"Rest 10 minutes before slicing",
				"Serve with roasted potatoes",
			},
			PrepTimeMinutes: 15,
			CookTimeMinutes: 30,
			Servings:        4,
			Nutrition:       domain.NutritionInfo{Calories: 380, ProteinGrams: 32, CarbsGrams: 24, FatGrams: 18, FiberGrams: 3, SodiumMg: 280},
			Tags:            []string{"lean-protein", "impressive"},
			Difficulty:      domain.SkillIntermediate,
			HealthGoals:     []domain.HealthGoal{domain.GoalBuildMuscle, domain.GoalGeneralWellness},
			DietaryInfo:     []domain.DietaryRestriction{domain.DietGlutenFree, domain.DietDairyFree},
			MealType:        domain.MealDinner,
			Substitutions:   map[string]string{"Pork tenderloin": "chicken breast"},
		},
		{
			ID:          "d8",
			Name:        "Shrimp Scampi",
			Description: "Garlicky shrimp in white wine sauce over pasta",
			Ingredients: []domain.Ingredient{
				{Name: "Shrimp", Amount: 1, Unit: "lb peeled"},
				{Name: "Linguine", Amount: 8, Unit: "oz"},
				{Name: "Butter", Amount: 3, Unit: "tbsp"},
				{Name: "Garlic", Amount: 5, Unit: "cloves minced"},
				{Name: "White wine", Amount: 0.5, Unit: "cup"},
				{Name: "Lemon juice", Amount: 3, Unit: "tbsp"},
				{Name: "Parsley", Amount: 0.25, Unit: "cup chopped"},
				{Name: "Red pepper flakes", Amount: 0.25, Unit: "tsp"},
			},
			Instructions: []string{
				"Cook pasta according to package directions",
				"Sauté garlic in butter until fragrant",
				"Add shrimp, cook 2 minutes per side",
				"Add wine and lemon juice, simmer 2 minutes",
				"Toss with drained pasta",
				"Top with parsley and red pepper flakes",
			},
			PrepTimeMinutes: 15,
			CookTimeMinutes: 20,
			Servings:        4,
			Nutrition:       domain.NutritionInfo{Calories: 420, ProteinGrams: 28, CarbsGrams: 46, FatGrams: 14, FiberGrams: 2, SodiumMg: 520},
			Tags:            []string{"seafood", "date-night", "italian"},
			Difficulty:      domain.SkillIntermediate,
			HealthGoals:     []domain.HealthGoal{domain.GoalBuildMuscle, domain.GoalHeartHealth},
			MealType:        domain.MealDinner,
			Substitutions:   map[string]string{"Linguine": "zucchini noodles", "Butter": "olive oil"},
		},
		{
			ID:          "d9",
			Name:        "Stuffed Bell Peppers",
			Description: "Colorful peppers filled with seasoned beef and rice",
			Ingredients: []domain.Ingredient{
				{Name: "Bell peppers", Amount: 4, Unit: "large"},
				{Name: "Ground beef", Amount: 1, Unit: "lb lean"},
				{Name: "Cooked rice", Amount: 1, Unit: "cup"},
				{Name: "Diced tomatoes", Amount: 1, Unit: "can"},
				{Name: "Onion", Amount: 0.5, Unit: "cup diced"},
				{Name: "Italian seasoning", Amount: 1, Unit: "tsp"},
				{Name: "Mozzarella cheese", Amount: 0.5, Unit: "cup shredded"},
			},
			Instructions: []string{
				"Preheat oven to 375°F (190°C)",
				"Cut tops off peppers and remove seeds",
				"Brown beef with onion, drain excess fat",
				"Mix beef with rice, tomatoes, and seasoning",
				"Stuff peppers with mixture",
				"Bake 35-40 minutes",
				"Top with cheese last 5 minutes",
			},
			PrepTimeMinutes: 20,
			CookTimeMinutes: 45,
			Servings:        4,
			Nutrition:       domain.NutritionInfo{Calories: 380, ProteinGrams: 28, CarbsGrams: 26, FatGrams: 18, FiberGrams: 4, SodiumMg: 480},
			Tags:            []string{"family-friendly", "meal-prep"},
			Difficulty:      domain.SkillIntermediate,
			HealthGoals:     []domain.HealthGoal{domain.GoalBuildMuscle, domain.GoalGeneralWellness},
			DietaryInfo:     []domain.DietaryRestriction{domain.DietGlutenFree},
			MealType:        domain.MealDinner,
			Substitutions:   map[string]string{"Ground beef": "ground turkey", "Rice": "quinoa"},
		},
		{
			ID:          "d10",
			Name:        "Lemon Herb Roasted Chicken",
			Description: "Perfectly roasted whole chicken with herbs",
			Ingredients: []domain.Ingredient{
				{Name: "Whole chicken", Amount: 4, Unit: "lb"},
				{Name: "Lemon", Amount: 2},
				{Name: "Fresh thyme", Amount: 6, Unit: "sprigs"},
				{Name: "Fresh rosemary", Amount: 4, Unit: "sprigs"},
				{Name: "Garlic", Amount: 1, Unit: "head"},
				{Name: "Butter", Amount: 4, Unit: "tbsp softened"},
				{Name: "Olive oil", Amount: 2, Unit: "tbsp"},
			},
			Instructions: []string{
				"Preheat oven to 425°F (220°C)",
				"Pat chicken dry with paper towels",
				"Rub butter under and over the skin",
				"Stuff cavity with lemon, herbs, and garlic",
				"Drizzle with olive oil, season generously",
				"Roast 1 hour 15 minutes until golden",
				"Rest 15 minutes before carving",
			},
			PrepTimeMinutes: 20,
			CookTimeMinutes: 75,
			Servings:        6,
			Nutrition:       domain.NutritionInfo{Calories: 380, ProteinGrams: 36, CarbsGrams: 2, FatGrams: 24, SodiumMg: 320},
			Tags:            []string{"sunday-dinner", "impressive", "meal-prep"},
			Difficulty:      domain.SkillIntermediate,
			HealthGoals:     []domain.HealthGoal{domain.GoalBuildMuscle, domain.GoalGeneralWellness},
			DietaryInfo:     []domain.DietaryRestriction{domain.DietGlutenFree},
			MealType:        domain.MealDinner,
			Substitutions:   map[string]string{"Butter": "olive oil"},
		},
		{
			ID:          "s1",
			Name:        "Apple Slices with Almond Butter",
			Description: "Sweet and satisfying snack with healthy fats",
			Ingredients: []domain.Ingredient{
				{Name: "Apple", Amount: 1, Unit: "medium"},
				{Name: "Almond butter", Amount: 2, Unit: "tbsp"},
			},
			Instructions: []string{
				"Slice apple into wedges",
				"Serve with almond butter for dipping",
			},
			PrepTimeMinutes: 3,
			CookTimeMinutes: 0,
			Servings:        1,
			Nutrition:       domain.NutritionInfo{Calories: 280, ProteinGrams: 6, CarbsGrams: 32, FatGrams: 16, FiberGrams: 6, SodiumMg: 5},
			Tags:            []string{"quick", "no-cook", "portable"},
			Difficulty:      domain.SkillBeginner,
			HealthGoals:     []domain.HealthGoal{domain.GoalMoreEnergy, domain.GoalGeneralWellness},
			DietaryInfo:     []domain.DietaryRestriction{domain.DietVegan, domain.DietGlutenFree, domain.DietDairyFree},
			MealType:        domain.MealSnack,
			Substitutions:   map[string]string{"Almond butter": "peanut butter"},
		},
		{
			ID:          "s2",
			Name:        "Greek Yogurt with Honey",
			Description: "Creamy protein-rich snack",
			Ingredients: []domain.Ingredient{
				{Name: "Greek yogurt", Amount: 1, Unit: "cup"},
				{Name: "Honey", Amount: 1, Unit: "tbsp"},
				{Name: "Walnuts", Amount: 2, Unit: "tbsp chopped"},
			},
			Instructions: []string{
				"Place yogurt in a bowl",
				"Drizzle with honey",
				"Top with walnuts",
			},
			PrepTimeMinutes: 2,
			CookTimeMinutes: 0,
			Servings:        1,
			Nutrition:       domain.NutritionInfo{Calories: 280, ProteinGrams: 18, CarbsGrams: 26, FatGrams: 12, FiberGrams: 1, SodiumMg: 80},
			Tags:            []string{"quick", "high-protein", "no-cook"},
			Difficulty:      domain.SkillBeginner,
			HealthGoals:     []domain.HealthGoal{domain.GoalBuildMuscle, domain.GoalGeneralWellness},
			DietaryInfo:     []domain.DietaryRestriction{domain.DietVegetarian, domain.DietGlutenFree},
			MealType:        domain.MealSnack,
			Substitutions:   map[string]string{"Honey": "maple syrup", "Walnuts": "almonds"},
		},
		{
			ID:          "s3",
			Name:        "Hummus with Veggie Sticks",
			Description: "Fiber-rich vegetables with creamy hummus",
			Ingredients: []domain.Ingredient{
				{Name: "Hummus", Amount: 0.25, Unit: "cup"},
				{Name: "Carrot sticks", Amount: 0.5, Unit: "cup"},
				{Name: "Celery sticks", Amount: 0.5, Unit: "cup"},
				{Name: "Cucumber slices", Amount: 0.5, Unit: "cup"},
			},
			Instructions: []string{
				"Arrange vegetables on a plate",
				"Serve with hummus for dipping",
			},
			PrepTimeMinutes: 5,
			CookTimeMinutes: 0,
			Servings:        1,
			Nutrition:       domain.NutritionInfo{Calories: 180, ProteinGrams: 6, CarbsGrams: 22, FatGrams: 8, FiberGrams: 6, SodiumMg: 320},
			Tags:            []string{"quick", "vegan", "no-cook"},
			Difficulty:      domain.SkillBeginner,
			HealthGoals:     []domain.HealthGoal{domain.GoalLoseFat, domain.GoalHeartHealth},
			DietaryInfo:     []domain.DietaryRestriction{domain.DietVegan, domain.DietGlutenFree, domain.DietDairyFree},
			MealType:        domain.MealSnack,
			Substitutions:   map[string]string{"Hummus": "guacamole"},
		},
		{
			ID:          "s4",
			Name:        "String Cheese and Grapes",
			Description: "Classic protein and fruit combo",
			Ingredients: []domain.Ingredient{
				{Name: "String cheese", Amount: 1, Unit: "stick"},
				{Name: "Grapes", Amount: 1, Unit: "cup"},
			},
			Instructions: []string{
				"Serve cheese with grapes",
			},
			PrepTimeMinutes: 1,
			CookTimeMinutes: 0,
			Servings:        1,
			Nutrition:       domain.NutritionInfo{Calories: 180, ProteinGrams: 8, CarbsGrams: 24, FatGrams: 6, FiberGrams: 1, SodiumMg: 180},
			Tags:            []string{"quick", "portable", "kid-friendly"},
			Difficulty:      domain.SkillBeginner,
			HealthGoals:     []domain.HealthGoal{domain.GoalGeneralWellness, domain.GoalMoreEnergy},
			DietaryInfo:     []domain.DietaryRestriction{domain.DietVegetarian, domain.DietGlutenFree},
			MealType:        domain.MealSnack,
			Substitutions:   map[string]string{"String cheese": "cheese cubes"},
		},
		{
			ID:          "s5",
			Name:        "Trail Mix",
			Description: "Energy-boosting mix of nuts and dried fruit",
			Ingredients: []domain.Ingredient{
				{Name: "Almonds", Amount: 0.25, Unit: "cup"},
				{Name: "Dried cranberries", Amount: 2, Unit: "tbsp"},
				{Name: "Dark chocolate chips", Amount: 1, Unit: "tbsp"},
				{Name: "Pumpkin seeds", Amount: 2, Unit: "tbsp"},
			},
			Instructions: []string{
				"Combine all ingredients in a container",
				"Mix well and portion as needed",
			},
			PrepTimeMinutes: 2,
			CookTimeMinutes: 0,
			Servings:        2,
			Nutrition:       domain.NutritionInfo{Calories: 280, ProteinGrams: 8, CarbsGrams: 24, FatGrams: 18, FiberGrams: 4, SodiumMg: 5},
			Tags:            []string{"portable", "no-cook", "meal-prep"},
			Difficulty:      domain.SkillBeginner,
			HealthGoals:     []domain.HealthGoal{domain.GoalMoreEnergy, domain.GoalGeneralWellness},
			DietaryInfo:     []domain.DietaryRestriction{domain.DietVegan, domain.DietGlutenFree, domain.DietDairyFree},
			MealType:        domain.MealSnack,
			Substitutions:   map[string]string{"Almonds": "cashews", "Dried cranberries": "raisins"},
		},
		{
			ID:          "s6",
			Name:        "Hard-Boiled Eggs",
			Description: "Perfect protein snack, easy to prep ahead",
			Ingredients: []domain.Ingredient{
				{Name: "Eggs", Amount: 2, Unit: "large"},
				{Name: "Salt", Unit: "to taste"},
			},
			Instructions: []string{
				"Place eggs in a pot, cover with water",
				"Bring to a boil",
				"Remove from heat, cover, let sit 12 minutes",
				"Transfer to ice bath",
				"Peel and season with salt",
			},
			PrepTimeMinutes: 2,
			CookTimeMinutes: 15,
			Servings:        1,
			Nutrition:       domain.NutritionInfo{Calories: 140, ProteinGrams: 12, CarbsGrams: 1, FatGrams: 10, SodiumMg: 280},
			Tags:            []string{"high-protein", "meal-prep", "portable"},
			Difficulty:      domain.SkillBeginner,
			HealthGoals:     []domain.HealthGoal{domain.GoalBuildMuscle, domain.GoalLoseFat},
			DietaryInfo:     []domain.DietaryRestriction{domain.DietVegetarian, domain.DietGlutenFree, domain.DietDairyFree},
			MealType:        domain.MealSnack,
		},
		{
			ID:          "s7",
			Name:        "Cottage Cheese with Pineapple",
			Description: "Tropical twist on a protein-rich snack",
			Ingredients: []domain.Ingredient{
				{Name: "Cottage cheese", Amount: 0.5, Unit: "cup"},
				{Name: "Pineapple chunks", Amount: 0.5, Unit: "cup"},
			},
			Instructions: []string{
				"Place cottage cheese in a bowl",
				"Top with pineapple chunks",
			},
			PrepTimeMinutes: 2,
			CookTimeMinutes: 0,
			Servings:        1,
			Nutrition:       domain.NutritionInfo{Calories: 160, ProteinGrams: 14, CarbsGrams: 18, FatGrams: 2, FiberGrams: 1, SodiumMg: 380},
			Tags:            []string{"high-protein", "quick", "no-cook"},
			Difficulty:      domain.SkillBeginner,
			HealthGoals:     []domain.HealthGoal{domain.GoalBuildMuscle, domain.GoalGeneralWellness},
			DietaryInfo:     []domain.DietaryRestriction{domain.DietVegetarian, domain.DietGlutenFree},
			MealType:        domain.MealSnack,
			Substitutions:   map[string]string{"Pineapple": "peaches"},
		},
		{
			ID:          "s8",
			Name:        "Rice Cakes with Avocado",
			Description: "Light and satisfying crunchy snack",
			Ingredients: []domain.Ingredient{
				{Name: "Rice cakes", Amount: 2},
				{Name: "Avocado", Amount: 0.5},
				{Name: "Everything bagel seasoning", Amount: 1, Unit: "tsp"},
			},
			Instructions: []string{
				"Mash avocado with a fork",
				"Spread on rice cakes",
				"Sprinkle with seasoning",
			},
			PrepTimeMinutes: 3,
			CookTimeMinutes: 0,
			Servings:        1,
			Nutrition:       domain.NutritionInfo{Calories: 200, ProteinGrams: 3, CarbsGrams: 22, FatGrams: 12, FiberGrams: 5, SodiumMg: 180},
			Tags:            []string{"quick", "vegan", "no-cook"},
			Difficulty:      domain.SkillBeginner,
			HealthGoals:     []domain.HealthGoal{domain.GoalHeartHealth, domain.GoalGeneralWellness},
			DietaryInfo:     []domain.DietaryRestriction{domain.DietVegan, domain.DietGlutenFree, domain.DietDairyFree},
			MealType:        domain.MealSnack,
			Substitutions:   map[string]string{"Rice cakes": "whole grain crackers"},
		},
		{
			ID:          "s9",
			Name:        "Edamame",
			Description: "Protein-packed Japanese snack",
			Ingredients: []domain.Ingredient{
				{Name: "Frozen edamame", Amount: 1, Unit: "cup in pods"},
				{Name: "Sea salt", Amount: 0.5, Unit: "tsp"},
			},
			Instructions: []string{
				"Microwave or boil edamame until heated through",
				"Drain and sprinkle with sea salt",
				"Squeeze pods to eat the beans",
			},
			PrepTimeMinutes: 1,
			CookTimeMinutes: 4,
			Servings:        1,
			Nutrition:       domain.NutritionInfo{Calories: 120, ProteinGrams: 11, CarbsGrams: 10, FatGrams: 5, FiberGrams: 4, SodiumMg: 280},
			Tags:            []string{"high-protein", "vegan", "quick"},
			Difficulty:      domain.SkillBeginner,
			HealthGoals:     []domain.HealthGoal{domain.GoalBuildMuscle, domain.GoalHeartHealth},
			DietaryInfo:     []domain.DietaryRestriction{domain.DietVegan, domain.DietGlutenFree, domain.DietDairyFree},
			MealType:        domain.MealSnack,
		},
		{
			ID:          "s10",
			Name:        "Banana with Peanut Butter",
			Description: "Classic energy-boosting combo",
			Ingredients: []domain.Ingredient{
				{Name: "Banana", Amount: 1, Unit: "medium"},
				{Name: "Peanut butter", Amount: 2, Unit: "tbsp"},
			},
			Instructions: []string{
				"Slice banana or eat whole",
				"Dip or spread with peanut butter",
			},
			PrepTimeMinutes: 2,
			CookTimeMinutes: 0,
			Servings:        1,
			Nutrition:       domain.NutritionInfo{Calories: 290, ProteinGrams: 8, CarbsGrams: 34, FatGrams: 16, FiberGrams: 4, SodiumMg: 140},
			Tags:            []string{"quick", "no-cook", "pre-workout"},
			Difficulty:      domain.SkillBeginner,
			HealthGoals:     []domain.HealthGoal{domain.GoalMoreEnergy, domain.GoalBuildMuscle},
			DietaryInfo:     []domain.DietaryRestriction{domain.DietVegan, domain.DietGlutenFree, domain.DietDairyFree},
			MealType:        domain.MealSnack,
			Substitutions:   map[string]string{"Peanut butter": "almond butter"},
		},
	}
}
